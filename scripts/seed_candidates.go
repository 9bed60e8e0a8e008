package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"alfredoptarigan/hrms-assistant/internal/config"
	applog "alfredoptarigan/hrms-assistant/internal/logger"
	"alfredoptarigan/hrms-assistant/internal/repositories"
)

// Seeds the candidate directory with the default talent pool. Existing
// tables are left untouched.
func main() {
	cfg := config.Load()

	log, err := applog.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("🚀 starting candidate seeding")

	db, err := config.InitDatabase(cfg, log)
	if err != nil {
		log.Fatal("❌ failed to initialize database", zap.Error(err))
	}

	repo := repositories.NewCandidateRepository(db)
	candidates := repositories.DefaultCandidates()

	inserted, err := repo.Seed(candidates)
	if err != nil {
		log.Fatal("❌ failed to seed candidates", zap.Error(err))
	}

	if inserted == 0 {
		log.Info("⚠️  candidate table already populated, nothing to do")
		return
	}

	for _, c := range candidates {
		log.Info("seeded candidate", zap.String("name", c.Name), zap.String("role", c.Role))
	}
	log.Info("✅ candidate seeding completed", zap.Int("inserted", inserted))
}
