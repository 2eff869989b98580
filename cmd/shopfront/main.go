package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/treysl/shopfront/internal/api"
	cartapp "github.com/treysl/shopfront/internal/cart/app"
	checkoutapp "github.com/treysl/shopfront/internal/checkout/app"
	"github.com/treysl/shopfront/internal/cli"
	"github.com/treysl/shopfront/internal/kv"
	"github.com/treysl/shopfront/internal/session"
	"github.com/treysl/shopfront/pkg/config"
	"github.com/treysl/shopfront/pkg/logger"
	"github.com/treysl/shopfront/pkg/shutdown"
)

func main() {
	cfg := config.Load()
	log := logger.New(os.Stderr, logger.Options{
		Service: "shopfront",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
	})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	store := mustStore(cfg, log)
	defer store.Close()

	cartSvc := cartapp.NewService(store, log)
	sess := session.NewManager(store)
	apiClient := api.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, log)
	checkoutSvc := checkoutapp.NewService(cartSvc, apiClient)

	app := &cli.App{
		Cart:     cartSvc,
		Session:  sess,
		Backend:  apiClient,
		Checkout: checkoutSvc,
		Log:      log,
		Out:      os.Stdout,
		In:       os.Stdin,
	}

	root := cli.New(app)
	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, cli.MessageFor(err))
		os.Exit(1)
	}
}

func mustStore(cfg config.Config, log *slog.Logger) kv.Store {
	if cfg.Ephemeral {
		return kv.NewMemory()
	}

	store, err := kv.OpenBolt(cfg.StatePath())
	if err != nil {
		log.Error("state db open failed", slog.Any("err", err), slog.String("path", cfg.StatePath()))
		os.Exit(1)
	}
	return store
}
