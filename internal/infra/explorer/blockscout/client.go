// Package blockscout reads ERC-20 Transfer logs from a Blockscout explorer and
// exposes them as transfers.Source implementations, either through the
// Etherscan-compatible REST API or through the explorer's eth-rpc endpoint.
package blockscout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gabapcia/paynotify/internal/pkg/types"

	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/ratelimit"
)

var (
	// ErrMalformedResponse is returned when the explorer answer cannot be decoded.
	ErrMalformedResponse = errors.New("malformed explorer response")

	// ErrExplorerReturnedError is returned when the explorer rejects a query.
	ErrExplorerReturnedError = errors.New("explorer returned an error")
)

// Messages sent with status "0" when a query simply matched nothing.
var emptyResultMessages = []string{"No records found", "No logs found"}

// Log is one event log as returned by the explorer. Numeric fields are 0x
// hex quantities.
type Log struct {
	TransactionIndex    string   `json:"transactionIndex"`
	TransactionHash     string   `json:"transactionHash"`
	Topics              []string `json:"topics"`
	TimeStamp           string   `json:"timeStamp"`
	LogIndex            string   `json:"logIndex"`
	GatewayFeeRecipient string   `json:"gatewayFeeRecipient"`
	GatewayFee          string   `json:"gatewayFee"`
	GasUsed             string   `json:"gasUsed"`
	GasPrice            string   `json:"gasPrice"`
	FeeCurrency         string   `json:"feeCurrency"`
	Data                string   `json:"data"`
	BlockNumber         string   `json:"blockNumber"`
	Address             string   `json:"address"`
}

type response struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

// LogQuery selects logs emitted by Address with Topic0 as first topic in the
// inclusive block range [FromBlock, ToBlock]. A zero ToBlock means latest.
type LogQuery struct {
	Address   string
	Topic0    string
	FromBlock uint64
	ToBlock   uint64
}

func (q LogQuery) values() url.Values {
	toBlock := "latest"
	if q.ToBlock != 0 {
		toBlock = strconv.FormatUint(q.ToBlock, 10)
	}

	return url.Values{
		"module":    {"logs"},
		"action":    {"getLogs"},
		"fromBlock": {strconv.FormatUint(q.FromBlock, 10)},
		"toBlock":   {toBlock},
		"address":   {q.Address},
		"topic0":    {q.Topic0},
	}
}

// blockNumberResponse is the eth_block_number action answer, shaped as a
// JSON-RPC response rather than the usual status envelope.
type blockNumberResponse struct {
	Result types.Hex `json:"result"`
	Error  *struct {
		Message string `json:"message"`
	} `json:"error"`
}

type Client interface {
	// GetLogs returns the logs matching q, oldest first. An empty slice is
	// returned when nothing matched.
	GetLogs(ctx context.Context, q LogQuery) ([]Log, error)

	// BlockNumber returns the latest block indexed by the explorer.
	BlockNumber(ctx context.Context) (uint64, error)
}

type client struct {
	baseURL    string
	httpClient *retryablehttp.Client
	limiter    ratelimit.Limiter // shared by every source using the client
}

var _ Client = (*client)(nil)

func (c *client) get(ctx context.Context, query url.Values, v any) error {
	endpoint := c.baseURL + "/api?" + query.Encode()

	c.limiter.Take()

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return fmt.Errorf("%w: unexpected status %d", ErrExplorerReturnedError, res.StatusCode)
	}

	if err := json.NewDecoder(res.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return nil
}

func (c *client) GetLogs(ctx context.Context, q LogQuery) ([]Log, error) {
	var data response
	if err := c.get(ctx, q.values(), &data); err != nil {
		return nil, err
	}
	return data.logs()
}

func (c *client) BlockNumber(ctx context.Context) (uint64, error) {
	var data blockNumberResponse
	query := url.Values{"module": {"block"}, "action": {"eth_block_number"}}
	if err := c.get(ctx, query, &data); err != nil {
		return 0, err
	}

	if data.Error != nil {
		return 0, fmt.Errorf("%w: %s", ErrExplorerReturnedError, data.Error.Message)
	}
	if data.Result == "" {
		return 0, fmt.Errorf("%w: missing block number", ErrMalformedResponse)
	}

	head, err := data.Result.Uint64()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return head, nil
}

func (r response) logs() ([]Log, error) {
	switch r.Status {
	case "1":
		var logs []Log
		if err := json.Unmarshal(r.Result, &logs); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
		}
		return logs, nil
	case "0":
		for _, msg := range emptyResultMessages {
			if strings.EqualFold(r.Message, msg) {
				return []Log{}, nil
			}
		}
		return nil, fmt.Errorf("%w: %s", ErrExplorerReturnedError, r.Message)
	default:
		return nil, fmt.Errorf("%w: unknown status %q", ErrMalformedResponse, r.Status)
	}
}

type ClientOption func(*client)

// WithRateLimit caps the client at rps requests per second. Retries made by the
// underlying HTTP client are not counted. Default: unlimited.
func WithRateLimit(rps int) ClientOption {
	return func(c *client) {
		if rps > 0 {
			c.limiter = ratelimit.New(rps, ratelimit.WithoutSlack)
		}
	}
}

// NewClient returns a Client for the explorer at baseURL, e.g.
// "https://explorer.celo.org/mainnet".
func NewClient(httpClient *retryablehttp.Client, baseURL string, opts ...ClientOption) *client {
	c := &client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		limiter:    ratelimit.NewUnlimited(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
