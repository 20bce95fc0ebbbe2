// Command seedparticipants loads market participants from an actor register
// workbook into the database.
// Usage: go run ./cmd/seedparticipants [path]
// Default path: db/seeds/market_participants.xlsx
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"charges/internal/config"
	"charges/internal/logging"
	"charges/internal/registry"
	"charges/internal/repository/postgres"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	path := "db/seeds/market_participants.xlsx"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	participants, rowErrs, err := registry.ReadMarketParticipants(f)
	if err != nil {
		return err
	}
	for _, re := range rowErrs {
		logger.Warn("skipping row", zap.Int("row", re.Row), zap.String("reason", re.Reason))
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	repo := postgres.NewMarketParticipantRepo(db)
	ctx := context.Background()
	for i := range participants {
		if err := repo.Upsert(ctx, &participants[i]); err != nil {
			return fmt.Errorf("seeding %s: %w", participants[i].MarketParticipantID, err)
		}
	}

	logger.Info("seeded market participants",
		zap.String("path", path),
		zap.Int("count", len(participants)),
		zap.Int("skipped", len(rowErrs)),
	)
	return nil
}
