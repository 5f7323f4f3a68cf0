package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestLimiterStartsWithFullBucket(t *testing.T) {
	rl := NewLimiter(1.0, 10.0)
	if got := rl.CurrentTokens(); got < 9.9 {
		t.Errorf("CurrentTokens() = %f, want a full bucket of 10", got)
	}
}

func TestLimiterBurstThenBlocks(t *testing.T) {
	rl := NewLimiter(100.0, 3.0)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := rl.Wait(ctx); err != nil {
			t.Fatalf("burst acquire %d failed: %v", i, err)
		}
	}
	if got := rl.CurrentTokens(); got >= 1.0 {
		t.Errorf("bucket should be drained, have %f tokens", got)
	}

	// Refill is 100/sec, so the next token arrives within ~10ms.
	start := time.Now()
	if err := rl.Wait(ctx); err != nil {
		t.Fatalf("post-burst acquire failed: %v", err)
	}
	if waited := time.Since(start); waited > 500*time.Millisecond {
		t.Errorf("waited %v for a token at 100/sec refill", waited)
	}
}

func TestLimiterWaitHonorsCancellation(t *testing.T) {
	// Near-zero refill so Wait cannot succeed after the bucket drains.
	rl := NewLimiter(0.001, 1.0)
	ctx := context.Background()
	if err := rl.Wait(ctx); err != nil {
		t.Fatalf("initial acquire failed: %v", err)
	}

	cancelCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()

	err := rl.Wait(cancelCtx)
	if err != context.DeadlineExceeded {
		t.Errorf("Wait returned %v, want context.DeadlineExceeded", err)
	}
}

func TestLimiterCapsAtBurstCapacity(t *testing.T) {
	rl := NewLimiter(1000.0, 5.0)
	time.Sleep(20 * time.Millisecond)
	if got := rl.CurrentTokens(); got > 5.0 {
		t.Errorf("CurrentTokens() = %f, want at most the burst capacity 5", got)
	}
}
