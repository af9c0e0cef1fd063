package blockscout

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/gabapcia/paynotify/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/paynotify/internal/pkg/types"
	"github.com/gabapcia/paynotify/internal/transfers"
)

type logFilter struct {
	FromBlock string   `json:"fromBlock"`
	ToBlock   string   `json:"toBlock"`
	Address   string   `json:"address"`
	Topics    []string `json:"topics"`
}

type blockHeader struct {
	Timestamp types.Hex `json:"timestamp"`
}

type rpcSource struct {
	conn     jsonrpc.Client
	name     string
	address  string
	topic0   string
	currency string
}

var _ transfers.Source = (*rpcSource)(nil)

func hexUint(v uint64) string {
	return "0x" + strconv.FormatUint(v, 16)
}

func (s *rpcSource) blockTimestamp(ctx context.Context, block string) (string, error) {
	raw, err := s.conn.Fetch(ctx, "eth_getBlockByNumber", block, false)
	if err != nil {
		return "", err
	}

	var header *blockHeader
	if err := json.Unmarshal(raw, &header); err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if header == nil {
		return "", fmt.Errorf("%w: block %s not found", ErrMalformedResponse, block)
	}
	return string(header.Timestamp), nil
}

func (s *rpcSource) fetch(ctx context.Context, r transfers.BlockRange) (transfers.FetchResult, error) {
	to := r.To
	if to == 0 {
		latest, err := blockNumber(ctx, s.conn)
		if err != nil {
			return transfers.FetchResult{}, err
		}
		to = latest
	}

	result := transfers.FetchResult{LatestBlock: to}
	if to < r.From {
		result.LatestBlock = max(r.From, 1) - 1
		return result, nil
	}

	raw, err := s.conn.Fetch(ctx, "eth_getLogs", logFilter{
		FromBlock: hexUint(r.From),
		ToBlock:   hexUint(to),
		Address:   s.address,
		Topics:    []string{s.topic0},
	})
	if err != nil {
		return transfers.FetchResult{}, err
	}

	var logs []Log
	if err := json.Unmarshal(raw, &logs); err != nil {
		return transfers.FetchResult{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	// eth_getLogs carries no timestamp, it comes from the block header.
	timestamps := make(map[string]string)
	for i, log := range logs {
		ts, ok := timestamps[log.BlockNumber]
		if !ok {
			if ts, err = s.blockTimestamp(ctx, log.BlockNumber); err != nil {
				return transfers.FetchResult{}, err
			}
			timestamps[log.BlockNumber] = ts
		}
		logs[i].TimeStamp = ts

		t, err := DecodeTransferLog(logs[i], s.currency)
		if err != nil {
			return transfers.FetchResult{}, err
		}
		result.Transfers.Add(t)
	}

	return result, nil
}

// FetchTransfers implements transfers.Source. An open range is closed at the
// current head, which is reported as LatestBlock.
func (s *rpcSource) FetchTransfers(ctx context.Context, r transfers.BlockRange) (transfers.FetchResult, error) {
	result, err := s.fetch(ctx, r)
	if err != nil {
		return transfers.FetchResult{}, &transfers.FetchError{Source: s.name, Range: r, Err: err}
	}
	return result, nil
}

// NewRPCSource returns a transfers.Source reading logs with eth_getLogs, as
// served by the explorer eth-rpc endpoint or any node.
func NewRPCSource(conn jsonrpc.Client, name, address, topic0, currency string) *rpcSource {
	return &rpcSource{
		conn:     conn,
		name:     name,
		address:  address,
		topic0:   topic0,
		currency: currency,
	}
}
