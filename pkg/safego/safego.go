package safego

import "github.com/caiflower/httpfs/pkg/e"

func Go(fn func()) {
	go func() {
		defer e.OnError("safeGo")

		fn()
	}()
}
