package gateway

// Functional options that configure the Gateway during New. Kept in a
// standalone file so the available knobs are visible at a glance.

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Option mutates the Gateway during New.
type Option func(*Gateway)

// WithHTTPClient injects a custom *http.Client, e.g. for transport
// timeouts or a fake transport in tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(g *Gateway) {
		if hc != nil {
			g.http = hc
		}
	}
}

// WithLogger attaches a structured logger for request diagnostics.
func WithLogger(log *zap.Logger) Option {
	return func(g *Gateway) {
		if log != nil {
			g.log = log
		}
	}
}

// WithClock overrides the reference-date source used by the mock
// fallback, keeping its output deterministic in tests.
func WithClock(now func() time.Time) Option {
	return func(g *Gateway) {
		if now != nil {
			g.now = now
		}
	}
}
