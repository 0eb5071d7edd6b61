package limiter

import (
	"fmt"
	"testing"
	"time"
)

func TestTokenBucket(t *testing.T) {
	bucket := NewTokenBucket(1000)
	bucket.Startup()
	defer bucket.Close()

	success := 0
	failed := 0
	for i := 0; i < 10000; i++ {
		if ok := bucket.TakeTokenNonBlocking(); ok {
			success++
		} else {
			failed++
		}
	}

	fmt.Printf("success: %d, failed: %d\n", success, failed)
	if success < 1000 {
		t.Fatalf("success = %d, want at least the initial bucket size", success)
	}
	if failed == 0 {
		t.Fatal("expected some takes to fail once the bucket drained")
	}
}

func TestTokenBucketRefill(t *testing.T) {
	bucket := NewTokenBucket(1000)
	bucket.Startup()
	defer bucket.Close()

	for bucket.TakeTokenNonBlocking() {
	}

	// 桶空之后等待重新放入令牌
	time.Sleep(100 * time.Millisecond)
	if !bucket.TakeTokenNonBlocking() {
		t.Fatal("expected a token after refill interval")
	}
}

func TestTokenBucketWithTimeout(t *testing.T) {
	bucket := NewTokenBucket(10)
	bucket.Startup()
	defer bucket.Close()

	if !bucket.TakeTokenWithTimeout(1 * time.Second) {
		t.Fatal("expected token before timeout")
	}
}
