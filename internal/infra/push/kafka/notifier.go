// Package kafka publishes payment notifications to a Kafka topic, one message
// per notification keyed by recipient.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/gabapcia/paynotify/internal/infra/push"
	"github.com/gabapcia/paynotify/internal/transfers"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/gabapcia/paynotify/internal/infra/push/kafka"

// messageWriter is the subset of *kafka.Writer the notifier needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// headerCarrier lets the OTel propagator write into Kafka headers.
type headerCarrier struct {
	headers []kafka.Header
}

var _ propagation.TextMapCarrier = (*headerCarrier)(nil)

func (c *headerCarrier) Get(key string) string {
	for _, h := range c.headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func (c *headerCarrier) Set(key, value string) {
	for i, h := range c.headers {
		if h.Key == key {
			c.headers[i].Value = []byte(value)
			return
		}
	}
	c.headers = append(c.headers, kafka.Header{Key: key, Value: []byte(value)})
}

func (c *headerCarrier) Keys() []string {
	keys := make([]string, 0, len(c.headers))
	for _, h := range c.headers {
		keys = append(keys, h.Key)
	}
	return keys
}

type notifier struct {
	writer     messageWriter
	propagator propagation.TextMapPropagator
	tracer     trace.Tracer
}

var _ transfers.PaymentNotifier = (*notifier)(nil)

func (n *notifier) SendPaymentNotification(ctx context.Context, sender, recipient, amount, currency string, metadata map[string]string) error {
	notification := push.NewNotification(sender, recipient, amount, currency, metadata)

	ctx, span := n.tracer.Start(ctx, "kafka.PublishPaymentNotification",
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			attribute.String("notification.idempotency_key", notification.IdempotencyKey),
			attribute.String("transfer.tx_hash", metadata["txHash"]),
		),
	)
	defer span.End()

	payload, err := json.Marshal(notification)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	carrier := headerCarrier{headers: []kafka.Header{
		{Key: "idempotency-key", Value: []byte(notification.IdempotencyKey)},
	}}
	n.propagator.Inject(ctx, &carrier)

	err = n.writer.WriteMessages(ctx, kafka.Message{
		Key:     []byte(recipient),
		Value:   payload,
		Headers: carrier.headers,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

// Close flushes pending messages and releases the writer.
func (n *notifier) Close() error {
	return n.writer.Close()
}

func newNotifier(writer messageWriter) *notifier {
	return &notifier{
		writer:     writer,
		propagator: otel.GetTextMapPropagator(),
		tracer:     otel.Tracer(instrumentationName),
	}
}

// NewNotifier returns a PaymentNotifier writing to topic on brokers. Writes
// are synchronous and wait for every in-sync replica.
func NewNotifier(brokers []string, topic string) (*notifier, error) {
	if len(brokers) == 0 {
		return nil, errors.New("kafka brokers are required")
	}
	if topic == "" {
		return nil, errors.New("kafka topic is required")
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: 10 * time.Millisecond,
	}
	return newNotifier(writer), nil
}
