package transfers

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// weiDecimals is the number of decimal places between the smallest unit (wei)
// and the display unit of every supported asset.
const weiDecimals = 18

// Transfer is the normalized representation of a single value transfer,
// independent of the ledger that reported it.
//
// A Transfer is treated as an immutable value once a Source produced it.
type Transfer struct {
	Sender      string `validate:"required"`         // Account that sent the value
	Recipient   string `validate:"required"`         // Account that received the value
	Value       string `validate:"required,numeric"` // Amount in the smallest unit, as a decimal string
	BlockNumber uint64 // Block in which the transfer was confirmed
	TxHash      string `validate:"required"` // Transaction identifier
	Timestamp   int64  // Seconds since epoch
	Currency    string // Asset tag; empty for the reserve (gold) ledger
	LogIndex    uint64 // Position of the event log inside its block
}

// Metadata returns the full record in transport form, with numeric fields
// coerced to strings.
func (t Transfer) Metadata() map[string]string {
	metadata := map[string]string{
		"sender":      t.Sender,
		"recipient":   t.Recipient,
		"value":       t.Value,
		"blockNumber": strconv.FormatUint(t.BlockNumber, 10),
		"txHash":      t.TxHash,
		"timestamp":   strconv.FormatInt(t.Timestamp, 10),
		"logIndex":    strconv.FormatUint(t.LogIndex, 10),
	}

	if t.Currency != "" {
		metadata["currency"] = t.Currency
	}

	return metadata
}

// ConvertWeiValue converts a decimal string expressed in the smallest unit
// into the display unit, keeping full precision and dropping trailing zeros.
//
//	ConvertWeiValue("1500000000000000000") // "1.5"
func ConvertWeiValue(value string) (string, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return "", err
	}

	return d.Shift(-weiDecimals).String(), nil
}

// TransferSet is an ordered mapping from transaction hash to the transfers
// reported for that transaction. Hashes keep the order of their first insertion.
//
// The zero value is an empty set ready to use.
type TransferSet struct {
	hashes []string
	byHash map[string][]Transfer
}

// NewTransferSet builds a TransferSet from the given transfers, grouping them
// by transaction hash while preserving their order.
func NewTransferSet(transfers ...Transfer) TransferSet {
	var set TransferSet
	for _, t := range transfers {
		set.Add(t)
	}
	return set
}

// Add appends a transfer to the list of its transaction hash.
func (s *TransferSet) Add(t Transfer) {
	if s.byHash == nil {
		s.byHash = make(map[string][]Transfer)
	}

	if _, ok := s.byHash[t.TxHash]; !ok {
		s.hashes = append(s.hashes, t.TxHash)
	}
	s.byHash[t.TxHash] = append(s.byHash[t.TxHash], t)
}

// Has reports whether at least one transfer was recorded for txHash.
func (s TransferSet) Has(txHash string) bool {
	_, ok := s.byHash[txHash]
	return ok
}

// Get returns the transfers recorded for txHash, in insertion order.
func (s TransferSet) Get(txHash string) []Transfer {
	return s.byHash[txHash]
}

// Hashes returns all transaction hashes in insertion order.
func (s TransferSet) Hashes() []string {
	return s.hashes
}

// Len returns the number of distinct transaction hashes.
func (s TransferSet) Len() int {
	return len(s.hashes)
}

// All returns every transfer in the set, hash by hash, in insertion order.
func (s TransferSet) All() []Transfer {
	all := make([]Transfer, 0, len(s.hashes))
	for _, hash := range s.hashes {
		all = append(all, s.byHash[hash]...)
	}
	return all
}

// UpTo returns the transfers recorded at or below block, keeping the order of
// s.
func (s TransferSet) UpTo(block uint64) TransferSet {
	var kept TransferSet
	for _, t := range s.All() {
		if t.BlockNumber <= block {
			kept.Add(t)
		}
	}
	return kept
}

// FetchResult is what a Source returns for one block range: the transfers it
// decoded, grouped by transaction, and the highest block it scanned.
type FetchResult struct {
	Transfers   TransferSet
	LatestBlock uint64
}
