package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	_ "github.com/ClickHouse/clickhouse-go/v2"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/clickhouse"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

type config struct {
	ClickhouseDSN string `long:"clickhouse-dsn" env:"MINT_GATEWAY_CLICKHOUSE_DSN" default:"clickhouse://localhost:9000/default?x-multi-statement=true" description:"ClickHouse DSN of the mint journal"`
	MigrationsDir string `long:"migrations-dir" env:"MINT_GATEWAY_MIGRATIONS_DIR" default:"migrations/clickhouse" description:"directory with journal migrations"`
	Steps         int    `long:"steps" env:"MINT_GATEWAY_MIGRATIONS_STEPS" description:"apply N migrations (negative rolls back); 0 applies all pending"`
}

func main() {
	cfg := config{}

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.Parse(&cfg); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := migrateJournal(ctx, cfg, logger.Named("migrations")); err != nil {
		logger.Fatal("journal migration failed", zap.Error(err))
	}
}

func migrateJournal(ctx context.Context, cfg config, logger *zap.Logger) error {
	dir, err := filepath.Abs(cfg.MigrationsDir)
	if err != nil {
		return fmt.Errorf("resolve migrations dir: %w", err)
	}
	if info, err := os.Stat(dir); err != nil {
		return fmt.Errorf("stat migrations dir: %w", err)
	} else if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	m, err := migrate.New("file://"+filepath.ToSlash(dir), cfg.ClickhouseDSN)
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil || dbErr != nil {
			logger.Warn("close migrate", zap.NamedError("source", srcErr), zap.NamedError("database", dbErr))
		}
	}()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			m.GracefulStop <- true
		case <-done:
		}
	}()

	if cfg.Steps != 0 {
		err = m.Steps(cfg.Steps)
	} else {
		err = m.Up()
	}
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("journal schema is up to date", zap.String("dir", dir))
		return nil
	}
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		logger.Info("journal schema rolled back completely")
		return nil
	}
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	logger.Info("journal schema migrated", zap.Uint("version", version), zap.Bool("dirty", dirty))
	return nil
}
