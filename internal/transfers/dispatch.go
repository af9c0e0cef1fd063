package transfers

import (
	"context"
	"errors"
	"sync"

	"github.com/gabapcia/paynotify/internal/pkg/logger"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// notifyForNewTransfers sends one payment notification per transfer that was
// not notified before, and returns the transfers a notification was issued for.
//
// Every transfer is checked and marked in the processed set sequentially,
// before any send starts, so a transfer listed twice in the same batch is only
// sent once. Sends then run concurrently and the call waits for all of them.
//
// If any send fails, the returned error joins ErrDeliveryFailed with one
// *DeliveryError per failed transfer. The returned slice still lists every
// issued notification, failed ones included.
func (s *service) notifyForNewTransfers(ctx context.Context, candidates []Transfer) ([]Transfer, error) {
	accepted := make([]Transfer, 0, len(candidates))
	for _, t := range candidates {
		if !s.processed.Mark(t) {
			logger.Debug(ctx, "transfer already notified",
				"transfer.tx_hash", t.TxHash,
				"transfer.block_number", t.BlockNumber,
				"transfer.log_index", t.LogIndex,
			)
			continue
		}

		accepted = append(accepted, t)
	}

	var (
		wg   sync.WaitGroup
		errs = make([]error, len(accepted))
	)
	for i, t := range accepted {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = s.sendPaymentNotification(ctx, t)
		}()
	}
	wg.Wait()

	var failures []error
	for i, err := range errs {
		if err == nil {
			continue
		}

		if s.retryFailedDeliveries {
			s.processed.Release(accepted[i])
		}
		failures = append(failures, &DeliveryError{Transfer: accepted[i], Err: err})
	}

	if len(failures) > 0 {
		return accepted, errors.Join(append([]error{ErrDeliveryFailed}, failures...)...)
	}

	return accepted, nil
}

// sendPaymentNotification converts the transfer amount and hands the
// notification to the PaymentNotifier.
func (s *service) sendPaymentNotification(ctx context.Context, t Transfer) error {
	ctx, span := s.tracer.Start(ctx, "transfers.SendPaymentNotification",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("transfer.tx_hash", t.TxHash),
			attribute.Int64("transfer.block_number", int64(t.BlockNumber)),
			attribute.String("transfer.currency", t.Currency),
		),
	)
	defer span.End()

	currencyAttr := metric.WithAttributes(attribute.String("currency", t.Currency))

	err := s.deliver(ctx, t)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.metrics.failed.Add(ctx, 1, currencyAttr)

		logger.Error(ctx, "payment notification failed",
			"transfer.tx_hash", t.TxHash,
			"transfer.block_number", t.BlockNumber,
			"transfer.currency", t.Currency,
			"error", err,
		)
		return err
	}

	s.metrics.sent.Add(ctx, 1, currencyAttr)
	logger.Info(ctx, "payment notification sent",
		"transfer.tx_hash", t.TxHash,
		"transfer.block_number", t.BlockNumber,
		"transfer.currency", t.Currency,
	)
	return nil
}

func (s *service) deliver(ctx context.Context, t Transfer) error {
	amount, err := ConvertWeiValue(t.Value)
	if err != nil {
		return err
	}

	return s.notifier.SendPaymentNotification(ctx, t.Sender, t.Recipient, amount, t.Currency, t.Metadata())
}
