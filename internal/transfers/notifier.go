package transfers

import "context"

// PaymentNotifier delivers a push notification about a transfer to the users
// involved in it.
type PaymentNotifier interface {
	// SendPaymentNotification sends one notification.
	//
	// Parameters:
	//   - sender, recipient: the accounts involved in the transfer.
	//   - amount: the transferred value in display units.
	//   - currency: the asset tag, empty for the reserve ledger.
	//   - metadata: the full transfer record in string form.
	//
	// Returns:
	//   - An error if the provider rejected the notification or the transport failed.
	SendPaymentNotification(ctx context.Context, sender, recipient, amount, currency string, metadata map[string]string) error
}
