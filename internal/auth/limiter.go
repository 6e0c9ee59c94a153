package auth

import (
	"sync"
	"time"
)

// AttemptLimiter places a temporary block on unlock attempts after repeated
// failures inside a sliding window. State is in-memory only: the gate serves a
// single process on a single device.
type AttemptLimiter struct {
	mu           sync.Mutex
	window       time.Duration
	threshold    int
	blockFor     time.Duration
	failures     []time.Time
	blockedUntil time.Time
	now          func() time.Time
}

// NewAttemptLimiter constructs a limiter blocking for blockFor once threshold
// failures accumulate within window.
func NewAttemptLimiter(window time.Duration, threshold int, blockFor time.Duration) *AttemptLimiter {
	return &AttemptLimiter{
		window:    window,
		threshold: threshold,
		blockFor:  blockFor,
		now:       time.Now,
	}
}

// Allow reports whether an unlock attempt may proceed and, when blocked, how
// long until the block lifts.
func (l *AttemptLimiter) Allow() (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if rest := l.blockedUntil.Sub(l.now()); rest > 0 {
		return false, rest
	}
	return true, 0
}

// Failure records a failed attempt; it reports whether the failure tripped the
// block and for how long.
func (l *AttemptLimiter) Failure() (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)
	kept := l.failures[:0]
	for _, t := range l.failures {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	l.failures = append(kept, now)

	if len(l.failures) >= l.threshold {
		l.blockedUntil = now.Add(l.blockFor)
		l.failures = l.failures[:0]
		return true, l.blockFor
	}
	return false, 0
}

// Success resets the failure count after a successful unlock.
func (l *AttemptLimiter) Success() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.failures = l.failures[:0]
	l.blockedUntil = time.Time{}
}
