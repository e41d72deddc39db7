package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

func Load() (*config, error) {
	// .env is optional; deployments may set the environment directly.
	godotenv.Load()

	cfg := &config{
		Telegram: TelegramConfig{
			BotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
			ChatID:   os.Getenv("TELEGRAM_CHAT_ID"),
		},
		Market: MarketConfig{
			Exchange: envString("EXCHANGE", "lbank"),
			BaseURL:  envString("LBANK_BASE_URL", "https://api.lbank.info/api"),
		},
		Database: DatabaseConfig{
			Host:     os.Getenv("DB_HOST"),
			Port:     envInt("DB_PORT", 5432),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			DBName:   os.Getenv("DB_NAME"),
		},
		Detection: DetectionConfig{
			MinReturnPct:   envFloat("MIN_RETURN_PCT", 80.0),
			MinRSI:         envFloat("MIN_RSI", 85.0),
			MinVolumeSpike: envFloat("MIN_VOLUME_SPIKE", 3.0),
			RSIPeriod:      envInt("RSI_PERIOD", 14),
		},
		Scanner: ScannerConfig{
			Interval:       envDuration("SCAN_INTERVAL", time.Minute),
			RequestTimeout: envDuration("REQUEST_TIMEOUT", 10*time.Second),
			MaxConcurrency: envInt("MAX_CONCURRENCY", 8),
		},
	}

	if cfg.Telegram.BotToken == "" || cfg.Telegram.ChatID == "" {
		return nil, errors.New("TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID must be set")
	}

	return cfg, nil
}

// helper env(string) with default
func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	i, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}
	return i
}

func envFloat(key string, def float64) float64 {
	f, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return def
	}
	return f
}

func envDuration(key string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return def
	}
	return d
}
