package transfers

import (
	"errors"
	"fmt"
)

var (
	// ErrCycleInProgress is returned when a notification cycle is requested
	// while another one is still running.
	ErrCycleInProgress = errors.New("notification cycle already in progress")

	// ErrNoWatermarkFound is returned by WatermarkStorage implementations when
	// no watermark was ever stored.
	ErrNoWatermarkFound = errors.New("no watermark found")

	// ErrDeliveryFailed heads the joined error returned when at least one
	// notification of a batch could not be delivered.
	ErrDeliveryFailed = errors.New("payment notification delivery failed")
)

// FetchError reports that a Source could not produce its transfers for a
// block range, or that the chain head bounding that range could not be read,
// either because the explorer call failed or because the payload could not be
// decoded.
type FetchError struct {
	Source string // Name of the failing source (gold, native, stable, head)
	Range  BlockRange
	Err    error
}

func (e *FetchError) Error() string {
	if e.Source == SourceHead {
		return fmt.Sprintf("fetch chain head after block %d: %v", e.Range.From-1, e.Err)
	}
	if e.Range.To == 0 {
		return fmt.Sprintf("fetch %s transfers from block %d: %v", e.Source, e.Range.From, e.Err)
	}
	return fmt.Sprintf("fetch %s transfers in blocks %d-%d: %v", e.Source, e.Range.From, e.Range.To, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// DeliveryError reports that the notification for a single transfer was
// rejected by the provider or lost in transport.
type DeliveryError struct {
	Transfer Transfer
	Err      error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("notify transfer %s (block %d): %v", e.Transfer.TxHash, e.Transfer.BlockNumber, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}
