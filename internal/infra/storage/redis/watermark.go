package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/gabapcia/paynotify/internal/transfers"

	"github.com/redis/go-redis/v9"
)

// advanceScript stores ARGV[1] unless the stored watermark is already higher,
// and returns the watermark that ends up stored.
var advanceScript = redis.NewScript(`
local current = redis.call('GET', KEYS[1])
if current and tonumber(current) >= tonumber(ARGV[1]) then
	return current
end
redis.call('SET', KEYS[1], ARGV[1])
return ARGV[1]
`)

// watermarkKey returns "paynotify:watermark:<name>".
func watermarkKey(name string) string {
	return fmt.Sprintf("%s:watermark:%s", keyPrefix, name)
}

type watermarkStorage struct {
	conn *redis.Client
	key  string
}

var _ transfers.WatermarkStorage = (*watermarkStorage)(nil)

func (w *watermarkStorage) LastBlockNotified(ctx context.Context) (uint64, error) {
	val, err := w.conn.Get(ctx, w.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = transfers.ErrNoWatermarkFound
		}
		return 0, err
	}

	return strconv.ParseUint(val, 10, 64)
}

// SetLastBlockNotified stores block atomically unless a higher watermark is
// already stored, so concurrent writers can never move it backwards.
func (w *watermarkStorage) SetLastBlockNotified(ctx context.Context, block uint64) (uint64, error) {
	val, err := advanceScript.Run(ctx, w.conn, []string{w.key}, strconv.FormatUint(block, 10)).Text()
	if err != nil {
		return 0, err
	}

	return strconv.ParseUint(val, 10, 64)
}

// OverwriteLastBlockNotified stores block even if it is lower than the
// current watermark.
func (w *watermarkStorage) OverwriteLastBlockNotified(ctx context.Context, block uint64) error {
	return w.conn.Set(ctx, w.key, strconv.FormatUint(block, 10), 0).Err()
}

// NewWatermarkStorage returns the watermark named name, stored through c.
func NewWatermarkStorage(c *client, name string) *watermarkStorage {
	return &watermarkStorage{
		conn: c.conn,
		key:  watermarkKey(name),
	}
}
