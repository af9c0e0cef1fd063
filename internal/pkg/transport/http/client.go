// Package http builds the retrying HTTP client shared by the explorer and
// webhook adapters. It wraps hashicorp/go-retryablehttp and routes its logs
// through the application logger.
package http

import (
	"context"
	"time"

	"github.com/gabapcia/paynotify/internal/pkg/logger"

	"github.com/hashicorp/go-retryablehttp"
)

type config struct {
	timeout      time.Duration // per request, retries excluded
	retryWaitMin time.Duration
	retryWaitMax time.Duration
	retryMax     int
	component    string // value of the "http.client" log field
}

// Option configures the HTTP client.
type Option func(*config)

// leveledLogger adapts the application logger to retryablehttp.LeveledLogger.
// retryablehttp does not pass a context, so entries carry no trace fields.
type leveledLogger struct {
	component string
}

var _ retryablehttp.LeveledLogger = leveledLogger{}

func (l leveledLogger) kv(keysAndValues []any) []any {
	return append([]any{"http.client", l.component}, keysAndValues...)
}

func (l leveledLogger) Error(msg string, keysAndValues ...any) {
	logger.Error(context.Background(), msg, l.kv(keysAndValues)...)
}

func (l leveledLogger) Info(msg string, keysAndValues ...any) {
	logger.Debug(context.Background(), msg, l.kv(keysAndValues)...)
}

func (l leveledLogger) Debug(msg string, keysAndValues ...any) {
	logger.Debug(context.Background(), msg, l.kv(keysAndValues)...)
}

func (l leveledLogger) Warn(msg string, keysAndValues ...any) {
	logger.Warn(context.Background(), msg, l.kv(keysAndValues)...)
}

// NewClient returns a retryablehttp.Client configured with opts.
//
// When every attempt fails, the client returns the last response instead of a
// generic "giving up" error, so callers can inspect its status code.
//
// Defaults:
//
//   - timeout:      5 seconds
//   - retryWaitMin: 1 second
//   - retryWaitMax: 5 seconds
//   - retryMax:     2 retries
func NewClient(opts ...Option) *retryablehttp.Client {
	cfg := config{
		timeout:      5 * time.Second,
		retryWaitMin: 1 * time.Second,
		retryWaitMax: 5 * time.Second,
		retryMax:     2,
		component:    "default",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	client := retryablehttp.NewClient()
	client.Logger = leveledLogger{component: cfg.component}
	client.HTTPClient.Timeout = cfg.timeout
	client.RetryWaitMin = cfg.retryWaitMin
	client.RetryWaitMax = cfg.retryWaitMax
	client.RetryMax = cfg.retryMax
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler
	return client
}

// WithTimeout sets the maximum duration of a single attempt. Default: 5 seconds.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithRetryWaitMin sets the minimum delay between attempts. Default: 1 second.
func WithRetryWaitMin(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMin = d
	}
}

// WithRetryWaitMax sets the maximum delay between attempts. Default: 5 seconds.
func WithRetryWaitMax(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMax = d
	}
}

// WithRetryMax sets the number of retries after the first attempt. Default: 2.
func WithRetryMax(n int) Option {
	return func(c *config) {
		c.retryMax = n
	}
}

// WithComponent names the client in its log entries, e.g. "blockscout".
func WithComponent(name string) Option {
	return func(c *config) {
		c.component = name
	}
}
