package main

import (
	"context"
	"log" // Use standard log only for fatal errors before or outside the logger
	"time"

	"github.com/google/uuid"

	"franceMiningCounter/config"
	"franceMiningCounter/internal/adapters/logger"
	"franceMiningCounter/internal/app"
	"franceMiningCounter/internal/render"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}

	// 2. Initialize Logger
	appLogger := logger.NewStdLogger(cfg.LogLevel, nil).With(map[string]interface{}{"run": uuid.NewString()})
	ctx := context.Background()
	appLogger.Debug(ctx, "Logger initialized", map[string]interface{}{"level": cfg.LogLevel.String()})

	// 3. Initialize Data Sources
	sources, err := app.NewSources(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize data sources: %v", err)
	}
	feed, err := app.NewLiveFeed(sources.Blocks, sources.Prices, sources.Hashes, cfg.Fallbacks, appLogger)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize live feed: %v", err)
	}

	// 4. Initialize Renderer
	renderer, err := render.New()
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize renderer: %v", err)
	}

	// 5. Initialize Application Service
	service, err := app.NewService(cfg, appLogger, feed, renderer)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize service: %v", err)
	}

	// 6. Generate the page
	if _, err := service.Generate(ctx, time.Now()); err != nil {
		log.Fatalf("FATAL: Failed to generate %s: %v", cfg.OutputPath, err)
	}
}
