package transfers

import "context"

// WatermarkStorage persists the last block number for which every qualifying
// transfer was notified.
type WatermarkStorage interface {
	// LastBlockNotified returns the stored watermark, or ErrNoWatermarkFound if
	// none was ever stored.
	LastBlockNotified(ctx context.Context) (uint64, error)

	// SetLastBlockNotified stores block as the new watermark and returns the
	// value that is now persisted. Storing the same value twice is a no-op.
	SetLastBlockNotified(ctx context.Context, block uint64) (uint64, error)
}
