package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/justsurfingit/jobtrackr/internal/config"
	"github.com/justsurfingit/jobtrackr/internal/database"
	"github.com/justsurfingit/jobtrackr/internal/logger"
	"github.com/justsurfingit/jobtrackr/internal/seed"
	"go.uber.org/zap"
)

func main() {
	seedFlag := flag.Uint64("seed", 0, "random seed for reproducible data (0 picks one from the clock)")
	flag.Parse()

	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = log.Sync() }()

	db, err := database.Connect(cfg.DatabaseURL, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	if raw, err := db.DB(); err == nil {
		defer raw.Close()
	}

	s := *seedFlag
	if s == 0 {
		s = uint64(time.Now().UnixNano())
	}
	log.Info("seeding applications", zap.Uint64("seed", s), zap.Int("rows", seed.SampleSize))

	gen := seed.NewGenerator(rand.New(rand.NewPCG(s, s>>1|1)), time.Now())
	summary, err := seed.Run(context.Background(), db, gen, log)
	if err != nil {
		log.Fatal("seed failed", zap.Error(err))
	}

	fmt.Printf("Created %d records\n", summary.Total)
	fmt.Println("\nStatus distribution:")
	for _, sc := range summary.ByStatus {
		fmt.Printf("  %s: %d\n", sc.Status, sc.Count)
	}
	fmt.Printf("\nSoft deleted records: %d\n", summary.Deleted)
}
