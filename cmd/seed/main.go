// Command seed ensures the default accounts and catalog entries exist.
// Entries already present are left untouched, so it is safe to run against
// a live database.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/balco/tracker/internal/tracker/app"
	"github.com/balco/tracker/internal/tracker/service"
	"github.com/balco/tracker/pkg/slogx"
)

func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	if err := run(cfg); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}

func run(cfg app.Config) error {
	logger := slogx.New(slogx.Config{
		Service: "tracker-seed",
		Version: app.BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = slogx.WithContext(ctx, logger)

	data, err := service.LoadSeed(cfg.SeedFile)
	if err != nil {
		return fmt.Errorf("load seed data: %w", err)
	}

	db, err := app.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	// OpenStore degrades to the offline store; seeding has nothing to write to.
	if err := db.Ping(ctx); err != nil {
		return fmt.Errorf("database %s unreachable: %w", cfg.Database.Driver, err)
	}

	seeder := &service.Seeder{Store: db, Cost: cfg.PasswordCost}
	report, err := seeder.Seed(ctx, data)
	if err != nil {
		return err
	}

	logger.Info("seed complete",
		"users_created", report.UsersCreated,
		"users_skipped", report.UsersSkipped,
		"product_types_created", report.ProductTypesCreated,
		"product_types_skipped", report.ProductTypesSkipped,
		"colors_created", report.ColorsCreated,
		"colors_skipped", report.ColorsSkipped,
	)
	return nil
}
