// partdex-ingest loads a directory of supplier CSV price lists into the
// inventory store.
//
// Usage:
//
//	partdex-ingest <input_dir>
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/partdex/partdex/internal/config"
	dbRedis "github.com/partdex/partdex/internal/db/redis"
	"github.com/partdex/partdex/internal/ingest"
	logpkg "github.com/partdex/partdex/internal/logger"
	partsrepo "github.com/partdex/partdex/internal/repository/parts"
	"github.com/partdex/partdex/internal/version"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <input_dir>\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "  input_dir: directory containing CSV price lists")
		os.Exit(1)
	}
	inputDir := os.Args[1]

	env := config.GetEnv()
	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting price list ingest",
		zap.String("version", version.Version),
		zap.String("input_dir", inputDir),
		zap.Strings("db_addrs", cfg.Database.Addrs),
	)

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Username: cfg.Database.Username,
		Password: cfg.Database.Password,
		DB:       cfg.Database.DB,
	})
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}

	ing := ingest.New(partsrepo.New(store), logger).WithBatchSize(cfg.Ingest.BatchSize)

	report, err := ing.IngestDir(ctx, inputDir)
	if err != nil {
		logger.Fatal("Ingest failed", zap.Error(err), zap.Int64("records", report.Records))
	}

	logger.Info("Ingest complete",
		zap.Int64("records", report.Records),
		zap.Int("files", len(report.Files)),
		zap.Int("failed_files", len(report.Failed())),
		zap.Duration("took", report.Took),
	)
	for _, f := range report.Failed() {
		logger.Warn("failed file", zap.String("file", f.File), zap.Error(f.Err))
	}
}
