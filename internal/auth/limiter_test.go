package auth

import (
	"testing"
	"time"
)

func testClock(start time.Time) (*time.Time, func() time.Time) {
	cur := start
	return &cur, func() time.Time { return cur }
}

func TestAttemptLimiter_BlocksAtThreshold(t *testing.T) {
	t.Parallel()
	l := NewAttemptLimiter(time.Minute, 3, 5*time.Minute)
	cur, clock := testClock(time.Unix(1_700_000_000, 0))
	l.now = clock

	if ok, _ := l.Allow(); !ok {
		t.Fatal("fresh limiter must allow")
	}
	if blocked, _ := l.Failure(); blocked {
		t.Fatal("first failure must not block")
	}
	if blocked, _ := l.Failure(); blocked {
		t.Fatal("second failure must not block")
	}
	blocked, rest := l.Failure()
	if !blocked || rest != 5*time.Minute {
		t.Fatalf("third failure: blocked=%v rest=%v", blocked, rest)
	}
	if ok, rest := l.Allow(); ok || rest <= 0 {
		t.Fatalf("blocked limiter: ok=%v rest=%v", ok, rest)
	}

	*cur = cur.Add(5*time.Minute + time.Second)
	if ok, _ := l.Allow(); !ok {
		t.Fatal("limiter must allow after the block lifts")
	}
}

func TestAttemptLimiter_WindowSlides(t *testing.T) {
	t.Parallel()
	l := NewAttemptLimiter(time.Minute, 3, 5*time.Minute)
	cur, clock := testClock(time.Unix(1_700_000_000, 0))
	l.now = clock

	l.Failure()
	l.Failure()
	// the old failures fall out of the window before the third arrives
	*cur = cur.Add(2 * time.Minute)
	if blocked, _ := l.Failure(); blocked {
		t.Fatal("stale failures must not count toward the threshold")
	}
}

func TestAttemptLimiter_SuccessResets(t *testing.T) {
	t.Parallel()
	l := NewAttemptLimiter(time.Minute, 3, 5*time.Minute)
	l.Failure()
	l.Failure()
	l.Success()
	if blocked, _ := l.Failure(); blocked {
		t.Fatal("success must clear accumulated failures")
	}
}
