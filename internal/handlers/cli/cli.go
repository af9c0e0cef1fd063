package cli

import (
	"context"
	"os"

	"github.com/gabapcia/paynotify/internal/transfers"

	"github.com/urfave/cli/v3"
)

// Poller runs the notification cycle in the background.
type Poller interface {
	Start(ctx context.Context) (<-chan transfers.CycleReport, error)
	Close()
}

// Cycle runs a single reconciliation cycle.
type Cycle interface {
	HandleTransferNotifications(ctx context.Context) (transfers.CycleReport, error)
}

func newApp(p Poller, cycle Cycle, ws WatermarkStore) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "paynotify",
		Description:           "Command-line interface for running the paynotify transfer notification pipeline.",
		Usage:                 "paynotify [command] [flags]",
		Commands: []*cli.Command{
			startCommand(p),
			runOnceCommand(cycle),
			watermarkCommand(ws),
		},
	}
}

// Run parses os.Args and executes the matching command:
//
//   - `start`: polls the explorer and notifies transfers until interrupted.
//   - `run-once`: runs a single cycle and exits.
//   - `watermark get|set`: inspects or rewinds the stored watermark.
func Run(ctx context.Context, p Poller, cycle Cycle, ws WatermarkStore) error {
	return newApp(p, cycle, ws).Run(ctx, os.Args)
}
