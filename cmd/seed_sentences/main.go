package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"speak-byte/cmd/seed_sentences/internal/seedmodels"
	"speak-byte/internal/config"
	"speak-byte/internal/database"
	"speak-byte/internal/domain"
	"speak-byte/internal/logger"
	"speak-byte/internal/repository"

	"go.uber.org/zap"
)

const (
	defaultSeedFilePath = "configs/seed_data/sentences.json"
)

func main() {
	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	seedFilePath := defaultSeedFilePath
	if len(os.Args) > 1 {
		seedFilePath = os.Args[1]
	}

	log.Info("Loading seed data from file", zap.String("path", seedFilePath))
	byteValue, err := os.ReadFile(seedFilePath)
	if err != nil {
		log.Fatal("Failed to read seed file", zap.String("path", seedFilePath), zap.Error(err))
	}

	var seeds []seedmodels.SeedSentence
	if err := json.Unmarshal(byteValue, &seeds); err != nil {
		log.Fatal("Failed to unmarshal seed data", zap.Error(err))
	}

	db, err := database.NewSQLXOracleDB(cfg.DB.Driver, cfg.GetDSN())
	if err != nil {
		log.Fatal("Failed to connect to Oracle database", zap.Error(err))
	}
	defer db.Close()

	txManager := repository.NewTransactionManagerAdapter(db)
	sentenceRepo := repository.NewSQLXSentenceRepository(db)

	saved, err := seedSentences(ctx, txManager, sentenceRepo, seeds)
	if err != nil {
		log.Fatal("Seeding failed, transaction rolled back", zap.Error(err))
	}
	log.Info("Sentence seeding completed", zap.Int("saved", saved))
}

// seedSentences saves all sentences in one transaction. Entries without a
// number or English text are skipped.
func seedSentences(ctx context.Context, tm domain.TransactionManager, repo domain.SentenceRepository, seeds []seedmodels.SeedSentence) (int, error) {
	log := logger.Get()
	saved := 0
	err := tm.WithTransaction(ctx, func(txCtx context.Context) error {
		for _, s := range seeds {
			if s.No <= 0 || s.EN == "" {
				log.Warn("Skipping invalid seed sentence", zap.Int("no", s.No))
				continue
			}
			sentence := &domain.TargetSentence{No: s.No, EN: s.EN, KO: s.KO, AudioURL: s.AudioURL}
			if err := repo.SaveSentence(txCtx, sentence); err != nil {
				return fmt.Errorf("failed to save sentence %d: %w", s.No, err)
			}
			saved++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return saved, nil
}
