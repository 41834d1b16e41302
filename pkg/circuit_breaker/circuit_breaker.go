package circuit_breaker

import (
	"errors"
	"sync"
	"time"
)

type State uint8

const (
	Closed State = iota + 1
	Open
	HalfOpen
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case Open:
		return "open"
	case HalfOpen:
		return "half-open"
	}
	return "unknown"
}

type Config struct {
	// Window is the number of most recent calls tracked.
	Window int `envconfig:"CB_WINDOW" default:"10"`
	// Timeout is how long the breaker stays open before probing.
	Timeout time.Duration `envconfig:"CB_TIMEOUT" default:"10s"`
	// FailureRatio of the window that opens the breaker.
	FailureRatio float64 `envconfig:"CB_FAILURE_RATIO" default:"0.5"`
	// RecoveryRequests successful trial requests needed to close again.
	RecoveryRequests int `envconfig:"CB_RECOVERY_REQUESTS" default:"3"`
}

type CircuitBreaker interface {
	Call(fn func() error) error
	State() State
	Reset()
}

var ErrOpen = errors.New("circuit breaker is open")

type breaker struct {
	mu  sync.Mutex
	cfg Config
	now func() time.Time

	state    State
	openedAt time.Time
	// ring of call outcomes, true means failed
	window    []bool
	pos       int
	successes int
}

func New(cfg Config) CircuitBreaker {
	if cfg.Window <= 0 {
		cfg.Window = 10
	}
	return &breaker{
		cfg:    cfg,
		now:    time.Now,
		state:  Closed,
		window: make([]bool, cfg.Window),
	}
}

func (b *breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *breaker) Call(fn func() error) error {
	b.mu.Lock()
	if b.state == Open {
		if b.now().Sub(b.openedAt) <= b.cfg.Timeout {
			b.mu.Unlock()
			return ErrOpen
		}
		b.state = HalfOpen
		b.successes = 0
	}
	b.mu.Unlock()

	err := fn()

	b.mu.Lock()
	defer b.mu.Unlock()

	b.window[b.pos] = err != nil
	b.pos = (b.pos + 1) % len(b.window)

	if b.state == HalfOpen {
		if err != nil {
			b.trip()
			return err
		}
		b.successes++
		if b.successes >= b.cfg.RecoveryRequests {
			b.reset()
		}
		return nil
	}

	fails := 0
	for _, failed := range b.window {
		if failed {
			fails++
		}
	}
	if float64(fails)/float64(len(b.window)) >= b.cfg.FailureRatio {
		b.trip()
	}
	return err
}

func (b *breaker) trip() {
	b.state = Open
	b.successes = 0
	b.openedAt = b.now()
}

func (b *breaker) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.reset()
}

func (b *breaker) reset() {
	for i := range b.window {
		b.window[i] = false
	}
	b.successes = 0
	b.pos = 0
	b.state = Closed
}
