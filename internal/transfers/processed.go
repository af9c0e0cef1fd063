package transfers

import (
	"github.com/gabapcia/paynotify/internal/pkg/types"
)

// transferKey identifies one transfer instance. The currency and log index are
// part of the key so that two ledgers reporting the same transaction hash are
// never mistaken for one another.
type transferKey struct {
	TxHash    string
	LogIndex  uint64
	Currency  string
	Sender    string
	Recipient string
	Value     string
}

func keyOf(t Transfer) transferKey {
	return transferKey{
		TxHash:    t.TxHash,
		LogIndex:  t.LogIndex,
		Currency:  t.Currency,
		Sender:    t.Sender,
		Recipient: t.Recipient,
		Value:     t.Value,
	}
}

// processedSet records the transfers a notification was already accepted for.
//
// Entries are bucketed by block number so that whole blocks can be evicted once
// the watermark moved past them; a block below the watermark is never fetched
// again, hence its entries can never be needed again.
//
// processedSet is not safe for concurrent use. It is owned by a single cycle at
// a time.
type processedSet struct {
	byBlock types.DefaultMap[uint64, types.Set[transferKey]]
}

func newProcessedSet() *processedSet {
	return &processedSet{
		byBlock: types.NewDefaultMap[uint64](func() types.Set[transferKey] {
			return types.NewSet[transferKey]()
		}),
	}
}

// Has reports whether t was already marked.
func (p *processedSet) Has(t Transfer) bool {
	keys, ok := p.byBlock.Lookup(t.BlockNumber)
	if !ok {
		return false
	}

	return keys.Has(keyOf(t))
}

// Mark records t. It returns false when t was already present.
func (p *processedSet) Mark(t Transfer) bool {
	if p.Has(t) {
		return false
	}

	p.byBlock.Get(t.BlockNumber).Add(keyOf(t))
	return true
}

// Release forgets t so that a later cycle may notify it again.
func (p *processedSet) Release(t Transfer) {
	keys, ok := p.byBlock.Lookup(t.BlockNumber)
	if !ok {
		return
	}

	keys.Delete(keyOf(t))
	if len(keys) == 0 {
		p.byBlock.Delete(t.BlockNumber)
	}
}

// EvictBelow drops every entry recorded for a block lower than block.
func (p *processedSet) EvictBelow(block uint64) int {
	evicted := 0
	for height, keys := range p.byBlock.ToMap() {
		if height < block {
			evicted += len(keys)
			p.byBlock.Delete(height)
		}
	}
	return evicted
}

// Len returns the number of recorded transfers.
func (p *processedSet) Len() int {
	total := 0
	for _, keys := range p.byBlock.ToMap() {
		total += len(keys)
	}
	return total
}
