package safego

import (
	"sync"
	"testing"
)

func TestGoRecoversPanic(t *testing.T) {
	done := make(chan struct{})
	Go(func() {
		defer close(done)
		panic("boom")
	})
	<-done
}

func TestGoRuns(t *testing.T) {
	wg := sync.WaitGroup{}
	count := 0

	wg.Add(1)
	Go(func() {
		count++
		wg.Done()
	})
	wg.Wait()

	if count != 1 {
		t.Fatalf("count = %d, want 1", count)
	}
}
