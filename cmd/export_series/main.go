package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"franceMiningCounter/config"
	"franceMiningCounter/internal/adapters/logger"
	"franceMiningCounter/internal/app"
	"franceMiningCounter/internal/domain"
	"franceMiningCounter/internal/render"
	"franceMiningCounter/internal/utils"
)

var outDir = flag.String("dir", "data", "directory receiving the CSV file")

func main() {
	flag.Parse()

	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}

	// 2. Initialize Logger
	appLogger := logger.NewStdLogger(cfg.LogLevel, nil)
	ctx := context.Background()

	// 3. Initialize Sources and Feed
	sources, err := app.NewSources(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize data sources: %v", err)
	}
	feed, err := app.NewLiveFeed(sources.Blocks, sources.Prices, sources.Hashes, cfg.Fallbacks, appLogger)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize live feed: %v", err)
	}
	renderer, err := render.New()
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize renderer: %v", err)
	}
	service, err := app.NewService(cfg, appLogger, feed, renderer)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize service: %v", err)
	}

	today := time.Now()
	fmt.Printf("Computing series for %s...\n", today.Format("2006-01-02"))
	res := service.Compute(ctx, today)

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("FATAL: Failed to create %s: %v", *outDir, err)
	}
	filename := filepath.Join(*outDir, fmt.Sprintf("series_%s.csv", today.Format("20060102")))
	err = utils.WritePointsToCSV(map[string][]domain.Point{
		"hist":  res.HistPoints,
		"power": res.PowerPoints,
	}, []string{"hist", "power"}, filename)
	if err != nil {
		appLogger.Error(ctx, err, "Error writing CSV")
		log.Fatalf("Error writing CSV: %v", err)
	}
	appLogger.Info(ctx, "Saved to", map[string]interface{}{
		"filename": filename,
		"hist":     len(res.HistPoints),
		"power":    len(res.PowerPoints),
	})
}
