package privatbank

import (
	"log/slog"
	"time"

	"github.com/grez-lucas/sendmoney-automator/internal/automator/browser"
)

const DefaultWaitTimeout = 10 * time.Second

const (
	stepMain         = "step1"
	stepConfirmation = "step2"
)

type options struct {
	logger  *slog.Logger
	timeout time.Duration
	poller  *browser.Poller
}

type Option func(*options)

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithTimeout bounds every wait for the wizard UI.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithPoller replaces the default poller used by the Sender.
func WithPoller(p *browser.Poller) Option {
	return func(o *options) {
		if p != nil {
			o.poller = p
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		logger:  slog.Default(),
		timeout: DefaultWaitTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.poller == nil {
		o.poller = browser.NewPoller()
	}
	return o
}
