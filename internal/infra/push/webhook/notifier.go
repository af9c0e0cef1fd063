// Package webhook delivers payment notifications as JSON POST requests.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gabapcia/paynotify/internal/infra/push"
	"github.com/gabapcia/paynotify/internal/transfers"

	"github.com/hashicorp/go-retryablehttp"
)

// ErrUnexpectedStatus is returned when the endpoint answers with a non-2xx
// status.
var ErrUnexpectedStatus = errors.New("unexpected webhook response status")

// maxErrorBody bounds how much of a rejected response is kept in the error.
const maxErrorBody = 512

type notifier struct {
	url        string
	authToken  string
	httpClient *retryablehttp.Client
}

var _ transfers.PaymentNotifier = (*notifier)(nil)

func (n *notifier) SendPaymentNotification(ctx context.Context, sender, recipient, amount, currency string, metadata map[string]string) error {
	notification := push.NewNotification(sender, recipient, amount, currency, metadata)

	body, err := json.Marshal(notification)
	if err != nil {
		return err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", notification.IdempotencyKey)
	if n.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+n.authToken)
	}

	res, err := n.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
		return fmt.Errorf("%w: %d %s", ErrUnexpectedStatus, res.StatusCode, bytes.TrimSpace(detail))
	}

	_, _ = io.Copy(io.Discard, res.Body)
	return nil
}

type Option func(*notifier)

// WithAuthToken sends token as a bearer Authorization header.
func WithAuthToken(token string) Option {
	return func(n *notifier) {
		n.authToken = token
	}
}

// NewNotifier returns a PaymentNotifier posting to url.
func NewNotifier(httpClient *retryablehttp.Client, url string, opts ...Option) *notifier {
	n := &notifier{
		url:        url,
		httpClient: httpClient,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}
