package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/wx-shi/btc-dashboard/internal/config"
	"github.com/wx-shi/btc-dashboard/internal/explorer"
	"github.com/wx-shi/btc-dashboard/internal/price"
	"github.com/wx-shi/btc-dashboard/internal/server"
	"github.com/wx-shi/btc-dashboard/internal/store"
	"github.com/wx-shi/btc-dashboard/pkg"
)

var (
	flagconf string
)

func init() {
	flag.StringVar(&flagconf, "conf", "./config.yaml", "config path, eg: -conf config.yaml")
}

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig(flagconf)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, _ := pkg.NewLogger(cfg.LogLevel)
	defer logger.Sync()

	// Initialize KV store for watched address and starred set
	st, err := store.NewStore(cfg.Store, logger)
	if err != nil {
		logger.Fatal("Error initializing store", zap.Error(err))
	}
	defer func() {
		if err := st.Close(); err != nil {
			logger.Fatal("Store::Close", zap.Error(err))
		}
	}()

	// Block-explorer client
	exp := explorer.NewClient(cfg.Explorer, logger)

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())

	// Start price feed refresher
	feed := price.NewFeed(cfg.Price, logger)
	feed.Start(ctx)

	// Setup signal handling for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// Start HTTP server
	httpServer := server.NewServer(cfg.Server, cfg.Ledger, logger, st, exp, feed)
	httpServer.Run()

	// Wait for signal
	<-sigCh
	logger.Info("Shutting down...")

	// Shutdown context
	cancel()

	// Shutdown HTTP server
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Error shutting down HTTP server", zap.Error(err))
	}
}
