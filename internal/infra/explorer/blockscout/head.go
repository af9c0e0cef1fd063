package blockscout

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gabapcia/paynotify/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/paynotify/internal/pkg/types"
	"github.com/gabapcia/paynotify/internal/transfers"
)

type head struct {
	client Client
}

var _ transfers.HeadSource = (*head)(nil)

func (h *head) LatestBlockNumber(ctx context.Context) (uint64, error) {
	return h.client.BlockNumber(ctx)
}

// NewHead returns a transfers.HeadSource reading the latest block indexed by
// the explorer REST API.
func NewHead(client Client) *head {
	return &head{client: client}
}

type rpcHead struct {
	conn jsonrpc.Client
}

var _ transfers.HeadSource = (*rpcHead)(nil)

func (h *rpcHead) LatestBlockNumber(ctx context.Context) (uint64, error) {
	return blockNumber(ctx, h.conn)
}

// NewRPCHead returns a transfers.HeadSource calling eth_blockNumber.
func NewRPCHead(conn jsonrpc.Client) *rpcHead {
	return &rpcHead{conn: conn}
}

func blockNumber(ctx context.Context, conn jsonrpc.Client) (uint64, error) {
	raw, err := conn.Fetch(ctx, "eth_blockNumber")
	if err != nil {
		return 0, err
	}

	var number types.Hex
	if err := json.Unmarshal(raw, &number); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return number.Uint64()
}
