package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gabapcia/paynotify/internal/config"
	"github.com/gabapcia/paynotify/internal/handlers/cli"
	"github.com/gabapcia/paynotify/internal/infra/explorer/blockscout"
	"github.com/gabapcia/paynotify/internal/infra/push/kafka"
	"github.com/gabapcia/paynotify/internal/infra/push/webhook"
	"github.com/gabapcia/paynotify/internal/infra/storage/redis"
	"github.com/gabapcia/paynotify/internal/infra/storage/sqlite"
	"github.com/gabapcia/paynotify/internal/pkg/logger"
	"github.com/gabapcia/paynotify/internal/pkg/telemetry"
	httptransport "github.com/gabapcia/paynotify/internal/pkg/transport/http"
	"github.com/gabapcia/paynotify/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/paynotify/internal/poller"
	"github.com/gabapcia/paynotify/internal/transfers"
)

type watermarkStore interface {
	transfers.WatermarkStorage
	cli.WatermarkStore
}

type closeFunc func() error

func newWatermarkStore(ctx context.Context, cfg config.Config) (watermarkStore, closeFunc, error) {
	switch cfg.WatermarkDriver {
	case config.WatermarkDriverSQLite:
		ws, err := sqlite.NewWatermarkStorage(ctx, cfg.SQLitePath, cfg.WatermarkKey)
		if err != nil {
			return nil, nil, err
		}
		return ws, ws.Close, nil
	default:
		client, err := redis.NewClient(ctx, cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, nil, err
		}
		return redis.NewWatermarkStorage(client, cfg.WatermarkKey), client.Close, nil
	}
}

func newNotifier(cfg config.Config) (transfers.PaymentNotifier, closeFunc, error) {
	switch cfg.NotifierDriver {
	case config.NotifierDriverKafka:
		n, err := kafka.NewNotifier(cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			return nil, nil, err
		}
		return n, n.Close, nil
	default:
		httpClient := httptransport.NewClient(
			httptransport.WithTimeout(cfg.WebhookTimeout),
			httptransport.WithComponent("webhook"),
		)

		var opts []webhook.Option
		if cfg.WebhookAuthToken != "" {
			opts = append(opts, webhook.WithAuthToken(cfg.WebhookAuthToken))
		}
		return webhook.NewNotifier(httpClient, cfg.WebhookURL, opts...), func() error { return nil }, nil
	}
}

func newSources(cfg config.Config) transfers.Sources {
	httpClient := httptransport.NewClient(
		httptransport.WithTimeout(cfg.ExplorerTimeout),
		httptransport.WithRetryMax(cfg.ExplorerRetryMax),
		httptransport.WithComponent("blockscout"),
	)

	if cfg.ExplorerAPI == config.ExplorerAPIRPC {
		conn := jsonrpc.NewClient(httpClient.StandardClient(), strings.TrimRight(cfg.ExplorerURL, "/")+"/api/eth-rpc")
		return transfers.Sources{
			Head:   blockscout.NewRPCHead(conn),
			Gold:   blockscout.NewRPCSource(conn, transfers.SourceGold, cfg.GoldTokenAddress, cfg.TransferTopic, ""),
			Native: blockscout.NewRPCSource(conn, transfers.SourceNative, cfg.NativeTransferAddress, cfg.TransferTopic, cfg.NativeCurrency),
			Stable: blockscout.NewRPCSource(conn, transfers.SourceStable, cfg.StableTokenAddress, cfg.TransferTopic, cfg.StableCurrency),
		}
	}

	client := blockscout.NewClient(httpClient, cfg.ExplorerURL, blockscout.WithRateLimit(cfg.ExplorerRateLimit))
	pageSize := blockscout.WithPageSize(cfg.ExplorerPageSize)
	return transfers.Sources{
		Head:   blockscout.NewHead(client),
		Gold:   blockscout.NewSource(client, transfers.SourceGold, cfg.GoldTokenAddress, cfg.TransferTopic, "", pageSize),
		Native: blockscout.NewSource(client, transfers.SourceNative, cfg.NativeTransferAddress, cfg.TransferTopic, cfg.NativeCurrency, pageSize),
		Stable: blockscout.NewSource(client, transfers.SourceStable, cfg.StableTokenAddress, cfg.TransferTopic, cfg.StableCurrency, pageSize),
	}
}

func run(ctx context.Context) (err error) {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.TelemetryEnabled {
		shutdown, initErr := telemetry.Init(ctx, cfg.ServiceName)
		if initErr != nil {
			return fmt.Errorf("failed to initialize telemetry: %w", initErr)
		}
		defer func() {
			err = errors.Join(err, shutdown(context.Background()))
		}()
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ws, closeStore, err := newWatermarkStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open watermark storage: %w", err)
	}
	defer func() { _ = closeStore() }()

	if cfg.InitialWatermark != nil {
		if _, err := cli.SeedWatermark(ctx, ws, *cfg.InitialWatermark); err != nil {
			return fmt.Errorf("failed to seed watermark: %w", err)
		}
	}

	notifier, closeNotifier, err := newNotifier(cfg)
	if err != nil {
		return fmt.Errorf("failed to create notifier: %w", err)
	}
	defer func() { _ = closeNotifier() }()

	svc := transfers.New(newSources(cfg), ws, notifier,
		transfers.WithSafetyMargin(cfg.ProcessedSafetyMargin),
		transfers.WithRetryFailedDeliveries(cfg.RetryFailedDeliveries),
	)

	p := poller.New(svc,
		poller.WithInterval(cfg.PollInterval),
		poller.WithRetry(cfg.CycleRetryAttempts, cfg.CycleRetryDelay),
	)

	return cli.Run(ctx, p, svc, ws)
}

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
