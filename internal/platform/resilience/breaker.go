package resilience

import (
	"errors"
	"sync"
	"time"
)

// ErrOpen is returned by Allow while the breaker is cooling off.
var ErrOpen = errors.New("breaker is open")

type BreakerState string

const (
	BreakerClosed BreakerState = "closed"
	BreakerOpen   BreakerState = "open"
)

// Breaker trips after a run of consecutive failures and fails fast until the
// cooloff elapses. It has no half-open probe accounting: the poll loop is the
// only caller and issues requests one at a time, so the first call after the
// cooloff is the probe.
type Breaker struct {
	mu sync.Mutex

	threshold int
	cooloff   time.Duration

	failures int
	openedAt time.Time
	now      func() time.Time
}

func NewBreaker(threshold int, cooloff time.Duration) *Breaker {
	if threshold < 1 {
		threshold = 1
	}
	if cooloff <= 0 {
		cooloff = time.Minute
	}

	return &Breaker{
		threshold: threshold,
		cooloff:   cooloff,
		now:       time.Now,
	}
}

// Allow reports whether a call may proceed. While open it returns ErrOpen
// until the cooloff has elapsed; the call that then proceeds decides the
// breaker's fate via Record.
func (b *Breaker) Allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.failures < b.threshold {
		return nil
	}
	if b.now().Sub(b.openedAt) < b.cooloff {
		return ErrOpen
	}
	return nil
}

// Record feeds one call outcome into the breaker.
func (b *Breaker) Record(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err == nil {
		b.failures = 0
		b.openedAt = time.Time{}
		return
	}

	b.failures++
	if b.failures >= b.threshold {
		b.openedAt = b.now()
	}
}

func (b *Breaker) State() BreakerState {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.failures >= b.threshold && b.now().Sub(b.openedAt) < b.cooloff {
		return BreakerOpen
	}
	return BreakerClosed
}
