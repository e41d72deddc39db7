package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"SurgeAlertBot/config"
	"SurgeAlertBot/internal/handlers"
	"SurgeAlertBot/internal/models"
	"SurgeAlertBot/internal/operations/alert"
	"SurgeAlertBot/internal/operations/market"
	"SurgeAlertBot/internal/operations/scan"
	"SurgeAlertBot/internal/repositories"
	"SurgeAlertBot/internal/services/analysis"
	"SurgeAlertBot/internal/services/indicators"
	"SurgeAlertBot/internal/services/logging"
	"SurgeAlertBot/internal/services/strategy"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	logging.InitLogger()
	defer logging.Logger.Sync()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logging.Logger.Fatal("Failed to load config", zap.Error(err))
	}

	// Optional alert journal
	var alertRepo *repositories.AlertRepository
	if cfg.Database.Enabled() {
		db := setupDatabase(cfg.Database)
		alertRepo = repositories.NewAlertRepository(db)
	}

	// Market-data source for the configured exchange
	source, err := market.NewSource(cfg.Market.Exchange, cfg.Market.BaseURL, cfg.Scanner.RequestTimeout)
	if err != nil {
		logging.Logger.Fatal("Failed to create market source", zap.Error(err))
	}

	sender := alert.NewTelegramSender(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Scanner.RequestTimeout)

	// Detection pipeline
	engine := indicators.NewEngine(cfg.Detection.RSIPeriod)
	strat := strategy.NewShortSurgeStrategy(strategy.Thresholds{
		MinReturnPct:   cfg.Detection.MinReturnPct,
		MinRSI:         cfg.Detection.MinRSI,
		MinVolumeSpike: cfg.Detection.MinVolumeSpike,
	})
	analyzer := analysis.NewSymbolAnalyzer(source, engine, strat)
	scanner := scan.NewScanner(source, analyzer, sender, alertRepo, cfg.Scanner.MaxConcurrency)
	scanHandler := handlers.NewScanHandler(scanner, cfg.Scanner.Interval)

	// Setup context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logging.Logger.Info("Shutting down...")
		cancel()
	}()

	logging.Logger.Info("Scanning futures market",
		zap.String("exchange", cfg.Market.Exchange),
		zap.Duration("interval", cfg.Scanner.Interval))

	scanHandler.Run(ctx)

	logging.Logger.Info("Shutdown complete")
}

func setupDatabase(dbConfig config.DatabaseConfig) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		dbConfig.Host,
		dbConfig.Port,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		logging.Logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := db.AutoMigrate(&models.Alert{}); err != nil {
		logging.Logger.Fatal("Failed to migrate database", zap.Error(err))
	}

	return db
}
