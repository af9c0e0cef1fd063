package blockscout

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/paynotify/internal/transfers"
)

// defaultPageSize is the maximum number of logs the getLogs action returns
// for a single query.
const defaultPageSize = 1000

// ErrPageTruncated is returned when a single block fills a whole page, so the
// explorer may have dropped some of its logs.
var ErrPageTruncated = errors.New("explorer page truncated inside a block")

type source struct {
	client   Client
	name     string
	address  string
	topic0   string
	currency string
	pageSize int
}

var _ transfers.Source = (*source)(nil)

// FetchTransfers implements transfers.Source. LatestBlock is r.To for a
// bounded range; for an open range it is the highest block among the returned
// logs, or r.From-1 when there are none.
//
// A full page is followed by another query starting at the highest block of
// that page, whose logs are dropped from the first page and fetched again, so
// that no block is ever split across two pages. A block holding more logs
// than a page cannot be read whole and fails with ErrPageTruncated.
func (s *source) FetchTransfers(ctx context.Context, r transfers.BlockRange) (transfers.FetchResult, error) {
	result := transfers.FetchResult{}
	if r.From > 0 {
		result.LatestBlock = r.From - 1
	}

	from := r.From
	for {
		logs, err := s.client.GetLogs(ctx, LogQuery{
			Address:   s.address,
			Topic0:    s.topic0,
			FromBlock: from,
			ToBlock:   r.To,
		})
		if err != nil {
			return transfers.FetchResult{}, &transfers.FetchError{Source: s.name, Range: r, Err: err}
		}

		decoded, err := s.decode(logs)
		if err != nil {
			return transfers.FetchResult{}, &transfers.FetchError{Source: s.name, Range: r, Err: err}
		}

		if s.pageSize <= 0 || len(logs) < s.pageSize {
			s.collect(&result, decoded)
			if r.To != 0 {
				result.LatestBlock = max(result.LatestBlock, r.To)
			}
			return result, nil
		}

		highest := decoded[len(decoded)-1].BlockNumber
		for _, t := range decoded {
			highest = max(highest, t.BlockNumber)
		}

		if highest == from {
			err := fmt.Errorf("%w: block %d holds at least %d logs", ErrPageTruncated, highest, len(logs))
			return transfers.FetchResult{}, &transfers.FetchError{Source: s.name, Range: r, Err: err}
		}

		partial := make([]transfers.Transfer, 0, len(decoded))
		for _, t := range decoded {
			if t.BlockNumber < highest {
				partial = append(partial, t)
			}
		}
		s.collect(&result, partial)
		from = highest
	}
}

func (s *source) decode(logs []Log) ([]transfers.Transfer, error) {
	decoded := make([]transfers.Transfer, 0, len(logs))
	for _, log := range logs {
		t, err := DecodeTransferLog(log, s.currency)
		if err != nil {
			return nil, err
		}
		decoded = append(decoded, t)
	}
	return decoded, nil
}

func (s *source) collect(result *transfers.FetchResult, decoded []transfers.Transfer) {
	for _, t := range decoded {
		result.Transfers.Add(t)
		result.LatestBlock = max(result.LatestBlock, t.BlockNumber)
	}
}

type SourceOption func(*source)

// WithPageSize sets the number of logs after which the explorer is assumed
// to have truncated its answer. Default: 1000.
func WithPageSize(n int) SourceOption {
	return func(s *source) {
		s.pageSize = n
	}
}

// NewSource returns a transfers.Source reading the logs emitted by address
// with topic0, tagging every decoded transfer with currency. name identifies
// the source in errors and logs.
func NewSource(client Client, name, address, topic0, currency string, opts ...SourceOption) *source {
	s := &source{
		client:   client,
		name:     name,
		address:  address,
		topic0:   topic0,
		currency: currency,
		pageSize: defaultPageSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
