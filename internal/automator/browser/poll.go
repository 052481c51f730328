package browser

import (
	"fmt"
	"strings"
	"time"
)

const DefaultPollInterval = 500 * time.Millisecond

// Condition is evaluated against live UI state. An error means "not yet";
// the last one is reported if the wait times out.
type Condition func() (bool, error)

type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type systemClock struct{}

func (systemClock) Now() time.Time        { return time.Now() }
func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }

// Poller blocks the calling goroutine until a condition holds or a timeout
// elapses. It never retries past the deadline.
type Poller struct {
	interval time.Duration
	clock    Clock
}

type PollerOption func(*Poller)

// WithInterval sets the pause between two evaluations.
func WithInterval(d time.Duration) PollerOption {
	return func(p *Poller) {
		if d > 0 {
			p.interval = d
		}
	}
}

// WithClock replaces the wall clock, mostly for tests.
func WithClock(c Clock) PollerOption {
	return func(p *Poller) {
		p.clock = c
	}
}

func NewPoller(opts ...PollerOption) *Poller {
	p := &Poller{
		interval: DefaultPollInterval,
		clock:    systemClock{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Until evaluates cond immediately and then once per interval until it
// returns true. It returns an error wrapping ErrTimeout once the deadline has
// passed.
func (p *Poller) Until(timeout time.Duration, cond Condition) error {
	deadline := p.clock.Now().Add(timeout)

	var lastErr error
	for {
		ok, err := cond()
		if err == nil && ok {
			return nil
		}
		if err != nil {
			lastErr = err
		}

		remaining := deadline.Sub(p.clock.Now())
		if remaining <= 0 {
			if lastErr != nil {
				return fmt.Errorf("%w after %s: %v", ErrTimeout, timeout, lastErr)
			}
			return fmt.Errorf("%w after %s", ErrTimeout, timeout)
		}

		p.clock.Sleep(min(p.interval, remaining))
	}
}

// AttributeEquals waits until the attribute of el equals want.
func (p *Poller) AttributeEquals(el Element, name, want string, timeout time.Duration) error {
	var last string
	err := p.Until(timeout, func() (bool, error) {
		v, err := el.Attribute(name)
		if err != nil {
			return false, err
		}
		last = v
		return v == want, nil
	})
	if err != nil {
		return fmt.Errorf("attribute %q is %q, want %q: %w", name, last, want, err)
	}
	return nil
}

// URLSuffix waits until the current URL of d ends with suffix.
func (p *Poller) URLSuffix(d Driver, suffix string, timeout time.Duration) error {
	var last string
	err := p.Until(timeout, func() (bool, error) {
		u, err := d.CurrentURL()
		if err != nil {
			return false, err
		}
		last = u
		return strings.HasSuffix(u, suffix), nil
	})
	if err != nil {
		return fmt.Errorf("url %q does not end with %q: %w", last, suffix, err)
	}
	return nil
}

// ElementEnabled waits until el stops being disabled.
func (p *Poller) ElementEnabled(el Element, timeout time.Duration) error {
	if err := p.Until(timeout, el.Enabled); err != nil {
		return fmt.Errorf("element still disabled: %w", err)
	}
	return nil
}
