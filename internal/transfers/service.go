// Package transfers reconciles the transfers reported by the native, gold and
// stable ledgers, notifies the users involved in each of them once, and keeps
// track of the last block for which every notification was delivered.
package transfers

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gabapcia/paynotify/internal/pkg/logger"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const (
	instrumentationName = "github.com/gabapcia/paynotify/internal/transfers"

	// defaultSafetyMargin is the number of blocks below the watermark for which
	// processed entries are still kept in memory.
	defaultSafetyMargin = 100
)

// Service runs the reconciliation cycle.
type Service interface {
	// HandleTransferNotifications runs one cycle: it reads the watermark and
	// the chain head, fetches the three ledgers from the block after the
	// watermark up to that head, filters exchange settlements, notifies every
	// new transfer and, only if every notification succeeded, advances the
	// watermark to the highest notified block.
	//
	// Transfers above the lowest block reached by all three ledgers are left
	// for a later cycle.
	//
	// Returns ErrCycleInProgress if another cycle is still running, a
	// *FetchError if any ledger could not be fetched, or an error wrapping
	// ErrDeliveryFailed if any notification failed. The watermark is left
	// untouched in every error case.
	HandleTransferNotifications(ctx context.Context) (CycleReport, error)
}

type metrics struct {
	sent   metric.Int64Counter
	failed metric.Int64Counter
	cycles metric.Int64Counter
}

type service struct {
	mu sync.Mutex // held for a whole cycle

	sources          Sources
	watermarkStorage WatermarkStorage
	notifier         PaymentNotifier

	processed             *processedSet
	safetyMargin          uint64
	retryFailedDeliveries bool

	tracer  trace.Tracer
	metrics metrics
}

var _ Service = (*service)(nil)

func (s *service) HandleTransferNotifications(ctx context.Context) (CycleReport, error) {
	if !s.mu.TryLock() {
		return CycleReport{}, ErrCycleInProgress
	}
	defer s.mu.Unlock()

	ctx, span := s.tracer.Start(ctx, "transfers.HandleTransferNotifications")
	defer span.End()

	report, err := s.handleTransferNotifications(ctx)

	span.SetAttributes(
		attribute.Int64("cycle.previous_watermark", int64(report.PreviousWatermark)),
		attribute.Int64("cycle.watermark", int64(report.Watermark)),
		attribute.Int("cycle.dispatched", report.Dispatched),
	)
	s.metrics.cycles.Add(ctx, 1, metric.WithAttributes(
		attribute.Bool("cycle.advanced", report.Advanced),
		attribute.Bool("cycle.failed", err != nil),
	))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	return report, err
}

func (s *service) handleTransferNotifications(ctx context.Context) (CycleReport, error) {
	lastBlock, err := s.watermarkStorage.LastBlockNotified(ctx)
	if err != nil {
		return CycleReport{}, fmt.Errorf("load watermark: %w", err)
	}

	report := CycleReport{
		PreviousWatermark: lastBlock,
		Watermark:         lastBlock,
		Range:             BlockRange{From: lastBlock + 1},
	}

	head, err := s.sources.Head.LatestBlockNumber(ctx)
	if err != nil {
		return report, &FetchError{Source: SourceHead, Range: report.Range, Err: err}
	}

	report.Range.To = head
	if head <= lastBlock {
		logger.Debug(ctx, "no new block since the watermark",
			"cycle.watermark", lastBlock,
			"chain.head", head,
		)
		report.Reconciled = head
		return report, nil
	}

	gold, native, stable, err := s.fetchAll(ctx, report.Range)
	if err != nil {
		return report, err
	}

	report.LatestBlocks = map[string]uint64{
		SourceGold:   gold.LatestBlock,
		SourceNative: native.LatestBlock,
		SourceStable: stable.LatestBlock,
	}

	// Every ledger must have seen a block before any of its transfers is
	// classified, or an exchange leg may be missing its counterpart.
	report.Reconciled = min(head, gold.LatestBlock, native.LatestBlock, stable.LatestBlock)
	if report.Reconciled < head {
		logger.Warn(ctx, "ledgers lag behind the chain head, later blocks wait for the next cycle",
			"chain.head", head,
			"cycle.reconciled", report.Reconciled,
			"source.gold.latest_block", gold.LatestBlock,
			"source.native.latest_block", native.LatestBlock,
			"source.stable.latest_block", stable.LatestBlock,
		)
	}

	candidates := FilterAndJoinTransfers(
		gold.Transfers.UpTo(report.Reconciled),
		native.Transfers.UpTo(report.Reconciled),
		stable.Transfers.UpTo(report.Reconciled),
	)
	report.Candidates = len(candidates)

	dispatched, err := s.notifyForNewTransfers(ctx, candidates)
	report.Dispatched = len(dispatched)
	if err != nil {
		return report, err
	}

	newBlock, ok := highestBlock(dispatched)
	if !ok || newBlock <= lastBlock {
		return report, nil
	}

	stored, err := s.watermarkStorage.SetLastBlockNotified(ctx, newBlock)
	if err != nil {
		return report, fmt.Errorf("store watermark %d: %w", newBlock, err)
	}

	report.Watermark = stored
	report.Advanced = true

	if stored > s.safetyMargin {
		evicted := s.processed.EvictBelow(stored - s.safetyMargin)
		logger.Debug(ctx, "evicted processed transfers",
			"cycle.watermark", stored,
			"processed.evicted", evicted,
			"processed.size", s.processed.Len(),
		)
	}

	return report, nil
}

// fetchAll fetches the three ledgers concurrently. The first failure cancels
// the other fetches and is returned as a *FetchError.
func (s *service) fetchAll(ctx context.Context, r BlockRange) (gold, native, stable FetchResult, err error) {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		gold, err = s.fetchTransfers(gctx, SourceGold, s.sources.Gold, r)
		return err
	})
	g.Go(func() (err error) {
		native, err = s.fetchTransfers(gctx, SourceNative, s.sources.Native, r)
		return err
	})
	g.Go(func() (err error) {
		stable, err = s.fetchTransfers(gctx, SourceStable, s.sources.Stable, r)
		return err
	})

	if err := g.Wait(); err != nil {
		return FetchResult{}, FetchResult{}, FetchResult{}, err
	}

	return gold, native, stable, nil
}

func (s *service) fetchTransfers(ctx context.Context, name string, source Source, r BlockRange) (FetchResult, error) {
	ctx, span := s.tracer.Start(ctx, "transfers.FetchTransfers",
		trace.WithAttributes(
			attribute.String("source.name", name),
			attribute.Int64("range.from", int64(r.From)),
			attribute.Int64("range.to", int64(r.To)),
		),
	)
	defer span.End()

	result, err := source.FetchTransfers(ctx, r)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		var fetchErr *FetchError
		if errors.As(err, &fetchErr) {
			return FetchResult{}, err
		}
		return FetchResult{}, &FetchError{Source: name, Range: r, Err: err}
	}

	span.SetAttributes(
		attribute.Int("source.transactions", result.Transfers.Len()),
		attribute.Int64("source.latest_block", int64(result.LatestBlock)),
	)
	return result, nil
}

// highestBlock returns the highest block number among transfers, and false
// when transfers is empty.
func highestBlock(transfers []Transfer) (uint64, bool) {
	if len(transfers) == 0 {
		return 0, false
	}

	highest := transfers[0].BlockNumber
	for _, t := range transfers[1:] {
		highest = max(highest, t.BlockNumber)
	}
	return highest, true
}

type config struct {
	safetyMargin          uint64
	retryFailedDeliveries bool
	tracerProvider        trace.TracerProvider
	meterProvider         metric.MeterProvider
}

// Option configures the service.
type Option func(*config)

// New creates the reconciliation service for the given ledgers and chain head,
// watermark storage and notification provider.
//
// Defaults:
//   - safety margin: 100 blocks
//   - failed deliveries are retried on the next cycle
//   - global OpenTelemetry tracer and meter providers
func New(sources Sources, ws WatermarkStorage, notifier PaymentNotifier, opts ...Option) *service {
	cfg := config{
		safetyMargin:          defaultSafetyMargin,
		retryFailedDeliveries: true,
		tracerProvider:        otel.GetTracerProvider(),
		meterProvider:         otel.GetMeterProvider(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		sources:               sources,
		watermarkStorage:      ws,
		notifier:              notifier,
		processed:             newProcessedSet(),
		safetyMargin:          cfg.safetyMargin,
		retryFailedDeliveries: cfg.retryFailedDeliveries,
		tracer:                cfg.tracerProvider.Tracer(instrumentationName),
		metrics:               newMetrics(cfg.meterProvider.Meter(instrumentationName)),
	}
}

func newMetrics(meter metric.Meter) metrics {
	var fallback noop.Meter

	sent, err := meter.Int64Counter("paynotify.notifications.sent",
		metric.WithDescription("Payment notifications delivered"))
	if err != nil {
		sent, _ = fallback.Int64Counter("paynotify.notifications.sent")
	}

	failed, err := meter.Int64Counter("paynotify.notifications.failed",
		metric.WithDescription("Payment notifications rejected or lost"))
	if err != nil {
		failed, _ = fallback.Int64Counter("paynotify.notifications.failed")
	}

	cycles, err := meter.Int64Counter("paynotify.cycles",
		metric.WithDescription("Reconciliation cycles run"))
	if err != nil {
		cycles, _ = fallback.Int64Counter("paynotify.cycles")
	}

	return metrics{sent: sent, failed: failed, cycles: cycles}
}

// WithSafetyMargin sets how many blocks below the watermark processed
// transfers are kept in memory. Default: 100.
func WithSafetyMargin(blocks uint64) Option {
	return func(c *config) {
		c.safetyMargin = blocks
	}
}

// WithRetryFailedDeliveries sets whether a transfer whose notification failed
// is released from the processed set, so that the next cycle (which fetches the
// same range again) notifies it again. When false, a failed transfer is never
// notified again during the lifetime of the process. Default: true.
func WithRetryFailedDeliveries(retry bool) Option {
	return func(c *config) {
		c.retryFailedDeliveries = retry
	}
}

// WithTracerProvider sets the tracer provider used for cycle spans.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *config) {
		c.tracerProvider = tp
	}
}

// WithMeterProvider sets the meter provider used for notification counters.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *config) {
		c.meterProvider = mp
	}
}
