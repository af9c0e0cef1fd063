package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/gabapcia/paynotify/internal/pkg/logger"
	"github.com/gabapcia/paynotify/internal/transfers"

	"github.com/urfave/cli/v3"
)

func logReport(ctx context.Context, report transfers.CycleReport) {
	logger.Info(ctx, "transfer notification cycle finished",
		"cycle.previous_watermark", report.PreviousWatermark,
		"cycle.watermark", report.Watermark,
		"cycle.from_block", report.Range.From,
		"cycle.to_block", report.Range.To,
		"cycle.reconciled", report.Reconciled,
		"cycle.candidates", report.Candidates,
		"cycle.dispatched", report.Dispatched,
		"cycle.advanced", report.Advanced,
	)
}

// startCommand returns the command that runs the poller until SIGINT or
// SIGTERM is received.
//
// Usage example:
//
//	paynotify start
func startCommand(p Poller) *cli.Command {
	return &cli.Command{
		Name:        "start",
		Description: "Starts polling the block explorer and notifying new transfers.",
		Usage:       "Runs the notification pipeline. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			reports, err := p.Start(ctx)
			if err != nil {
				return err
			}
			defer p.Close()

			for {
				select {
				case <-ctx.Done():
					return nil
				case report, ok := <-reports:
					if !ok {
						return nil
					}
					logReport(ctx, report)
				}
			}
		},
	}
}

// runOnceCommand returns the command that runs a single cycle. A failed cycle
// is returned as the command error.
//
// Usage example:
//
//	paynotify run-once
func runOnceCommand(cycle Cycle) *cli.Command {
	return &cli.Command{
		Name:        "run-once",
		Description: "Runs a single transfer notification cycle and exits.",
		Usage:       "Fetches the blocks after the watermark once, notifies new transfers and advances the watermark.",
		Action: func(ctx context.Context, c *cli.Command) error {
			report, err := cycle.HandleTransferNotifications(ctx)
			if err != nil {
				return err
			}

			logReport(ctx, report)
			return nil
		},
	}
}
