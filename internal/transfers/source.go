package transfers

import "context"

// BlockRange is an inclusive range of block numbers. A zero To means the range
// is open-ended and extends to the latest block known by the source.
type BlockRange struct {
	From uint64
	To   uint64
}

// Source produces the transfers recorded by one ledger (native, gold or stable)
// inside a block range.
type Source interface {
	// FetchTransfers returns the transfers confirmed within r, grouped by
	// transaction hash, together with the highest block the source scanned.
	// When r is bounded, a source that scanned the whole range reports r.To.
	//
	// Any transport or decoding failure must be returned as an error; a
	// partial result is never acceptable.
	FetchTransfers(ctx context.Context, r BlockRange) (FetchResult, error)
}

// HeadSource reports the latest block of the chain. It is read once per cycle
// and bounds the range requested from every ledger.
type HeadSource interface {
	LatestBlockNumber(ctx context.Context) (uint64, error)
}

// Sources groups the three ledgers a cycle reconciles and the head they are
// read up to.
type Sources struct {
	Head   HeadSource
	Gold   Source
	Native Source
	Stable Source
}
