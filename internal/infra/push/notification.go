// Package push holds what the notification transports share: the wire
// payload and its idempotency key.
package push

import (
	"strings"

	"github.com/google/uuid"
)

// namespace scopes the idempotency keys of this service.
var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/gabapcia/paynotify"))

// Notification is the payload delivered for one transfer.
type Notification struct {
	IdempotencyKey string            `json:"idempotencyKey"`
	Sender         string            `json:"sender"`
	Recipient      string            `json:"recipient"`
	Amount         string            `json:"amount"`
	Currency       string            `json:"currency,omitempty"`
	Metadata       map[string]string `json:"metadata"`
}

// IdempotencyKey derives a stable UUID from the transfer identity found in
// metadata, so that a redelivered notification carries the same key.
func IdempotencyKey(metadata map[string]string) string {
	name := strings.Join([]string{
		metadata["txHash"],
		metadata["logIndex"],
		metadata["currency"],
		metadata["sender"],
		metadata["recipient"],
		metadata["value"],
	}, "|")
	return uuid.NewSHA1(namespace, []byte(name)).String()
}

// NewNotification builds the payload and its idempotency key.
func NewNotification(sender, recipient, amount, currency string, metadata map[string]string) Notification {
	return Notification{
		IdempotencyKey: IdempotencyKey(metadata),
		Sender:         sender,
		Recipient:      recipient,
		Amount:         amount,
		Currency:       currency,
		Metadata:       metadata,
	}
}
