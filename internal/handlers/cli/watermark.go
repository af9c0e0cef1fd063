package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/gabapcia/paynotify/internal/pkg/logger"
	"github.com/gabapcia/paynotify/internal/transfers"

	"github.com/urfave/cli/v3"
)

// WatermarkStore is the watermark storage as seen by an operator: unlike the
// pipeline, it may move the watermark backwards.
type WatermarkStore interface {
	LastBlockNotified(ctx context.Context) (uint64, error)
	OverwriteLastBlockNotified(ctx context.Context, block uint64) error
}

// SeedWatermark stores block as the watermark unless one already exists.
// It reports whether the store was written.
func SeedWatermark(ctx context.Context, ws WatermarkStore, block uint64) (bool, error) {
	_, err := ws.LastBlockNotified(ctx)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, transfers.ErrNoWatermarkFound) {
		return false, err
	}

	if err := ws.OverwriteLastBlockNotified(ctx, block); err != nil {
		return false, err
	}

	logger.Info(ctx, "watermark seeded", "cycle.watermark", block)
	return true, nil
}

// watermarkCommand groups the watermark subcommands.
//
// Usage example:
//
//	paynotify watermark get
//	paynotify watermark set --block 152
func watermarkCommand(ws WatermarkStore) *cli.Command {
	return &cli.Command{
		Name:        "watermark",
		Description: "Inspect or change the last block for which every transfer was notified.",
		Usage:       "Manages the stored watermark.",
		Commands: []*cli.Command{
			getWatermarkCommand(ws),
			setWatermarkCommand(ws),
		},
	}
}

func getWatermarkCommand(ws WatermarkStore) *cli.Command {
	return &cli.Command{
		Name:        "get",
		Description: "Print the stored watermark.",
		Usage:       "Prints the last notified block number.",
		Action: func(ctx context.Context, c *cli.Command) error {
			block, err := ws.LastBlockNotified(ctx)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(c.Root().Writer, block)
			return err
		},
	}
}

func setWatermarkCommand(ws WatermarkStore) *cli.Command {
	return &cli.Command{
		Name:        "set",
		Description: "Store a watermark, even if lower than the current one. Transfers after it are notified again.",
		Usage:       "Overwrites the last notified block number. Must provide the block.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "block",
				Usage:    "Block number to store as the watermark",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			block, err := strconv.ParseUint(c.String("block"), 10, 64)
			if err != nil {
				return fmt.Errorf("invalid block number %q: %w", c.String("block"), err)
			}

			if err := ws.OverwriteLastBlockNotified(ctx, block); err != nil {
				return err
			}

			logger.Info(ctx, "watermark overwritten", "cycle.watermark", block)
			return nil
		},
	}
}
