// Package poller runs the transfer notification cycle on a fixed interval.
package poller

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gabapcia/paynotify/internal/pkg/logger"
	"github.com/gabapcia/paynotify/internal/pkg/resilience/retry"
	"github.com/gabapcia/paynotify/internal/pkg/x/chflow"
	"github.com/gabapcia/paynotify/internal/transfers"
)

var ErrServiceAlreadyStarted = errors.New("service already started")

const reportChannelBufferSize = 10

// Cycle is the unit of work run on every tick.
type Cycle interface {
	HandleTransferNotifications(ctx context.Context) (transfers.CycleReport, error)
}

type Service interface {
	// Start runs a cycle immediately and then once per interval until ctx is
	// done or Close is called. The report of every successful cycle is sent on
	// the returned channel, which is closed when the poller stops.
	Start(ctx context.Context) (<-chan transfers.CycleReport, error)
	Close()
}

type cycleFailureHandler func(ctx context.Context, err error)

type retryHandler func(ctx context.Context, attempt uint, err error)

type closeFunc func()

type service struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc closeFunc

	cycle    Cycle
	interval time.Duration
	retry    retry.Retry

	cycleFailureHandler cycleFailureHandler
}

var _ Service = (*service)(nil)

func (s *service) Start(ctx context.Context) (<-chan transfers.CycleReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return nil, ErrServiceAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)

	var (
		reportCh = make(chan transfers.CycleReport, reportChannelBufferSize)
		done     = make(chan struct{})
	)

	go func() {
		defer close(done)
		defer close(reportCh)
		s.run(ctx, reportCh)
	}()

	s.closeFunc = func() {
		cancel()
		<-done
	}
	s.isStarted = true
	return reportCh, nil
}

func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}
	s.isStarted = false
	s.closeFunc = nil
}

func (s *service) run(ctx context.Context, reportCh chan<- transfers.CycleReport) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		if report, ok := s.runCycle(ctx); ok {
			if !chflow.Send(ctx, reportCh, report) {
				return
			}
		}

		if _, ok := chflow.Receive(ctx, ticker.C); !ok {
			return
		}
	}
}

// runCycle runs one cycle with retries and reports whether it succeeded.
func (s *service) runCycle(ctx context.Context) (transfers.CycleReport, bool) {
	var report transfers.CycleReport
	err := s.retry.Execute(ctx, func() (err error) {
		report, err = s.cycle.HandleTransferNotifications(ctx)
		return err
	})
	if err != nil {
		if ctx.Err() == nil {
			s.cycleFailureHandler(ctx, err)
		}
		return transfers.CycleReport{}, false
	}

	return report, true
}

// isRetryable rejects the errors a retry cannot fix. A missing watermark needs
// an operator and an overlapping cycle is already doing the work.
func isRetryable(err error) bool {
	return !errors.Is(err, transfers.ErrCycleInProgress) &&
		!errors.Is(err, transfers.ErrNoWatermarkFound)
}

func defaultOnCycleFailure(ctx context.Context, err error) {
	logger.Error(ctx, "transfer notification cycle failed", "error", err)
}

func defaultOnRetry(ctx context.Context, attempt uint, err error) {
	logger.Warn(ctx, "retrying transfer notification cycle",
		"cycle.attempt", attempt+1,
		"error", err,
	)
}

type config struct {
	interval            time.Duration
	retryAttempts       uint
	retryDelay          time.Duration
	retryHandler        retryHandler
	cycleFailureHandler cycleFailureHandler
}

type Option func(*config)

// New returns a poller for cycle.
//
// Defaults:
//   - interval:       5 seconds
//   - retry attempts: 3, starting at 1 second apart
func New(cycle Cycle, opts ...Option) *service {
	cfg := config{
		interval:            5 * time.Second,
		retryAttempts:       3,
		retryDelay:          time.Second,
		retryHandler:        defaultOnRetry,
		cycleFailureHandler: defaultOnCycleFailure,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		cycle:    cycle,
		interval: cfg.interval,
		retry: retry.New(
			retry.WithAttempts(cfg.retryAttempts),
			retry.WithDelay(cfg.retryDelay),
			retry.WithRetryIf(isRetryable),
			retry.WithOnRetry(cfg.retryHandler),
		),
		cycleFailureHandler: cfg.cycleFailureHandler,
	}
}

// WithInterval sets the delay between two cycles.
func WithInterval(d time.Duration) Option {
	return func(c *config) {
		c.interval = d
	}
}

// WithRetry sets how many times a failing cycle is attempted within one tick,
// and the base delay between attempts.
func WithRetry(attempts uint, delay time.Duration) Option {
	return func(c *config) {
		c.retryAttempts = attempts
		c.retryDelay = delay
	}
}

// WithRetryHandler sets the function called before a failing cycle is attempted
// again, with the context of that cycle. The default logs the error.
func WithRetryHandler(f retryHandler) Option {
	return func(c *config) {
		c.retryHandler = f
	}
}

// WithCycleFailureHandler sets the function called when a cycle still fails
// after its retries. The default logs the error.
func WithCycleFailureHandler(f cycleFailureHandler) Option {
	return func(c *config) {
		c.cycleFailureHandler = f
	}
}
