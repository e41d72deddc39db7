package config

import "time"

type config struct {
	Telegram  TelegramConfig
	Market    MarketConfig
	Database  DatabaseConfig
	Detection DetectionConfig
	Scanner   ScannerConfig
}

type TelegramConfig struct {
	BotToken string
	ChatID   string
}

type MarketConfig struct {
	Exchange string // "lbank" (default) or "binance"
	BaseURL  string // LBank REST base URL
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

// Enabled reports whether the alert journal should be wired up. The scanner
// runs fine without a database; the journal is operator convenience.
func (d DatabaseConfig) Enabled() bool {
	return d.Host != ""
}

type DetectionConfig struct {
	MinReturnPct   float64
	MinRSI         float64
	MinVolumeSpike float64
	RSIPeriod      int
}

type ScannerConfig struct {
	Interval       time.Duration
	RequestTimeout time.Duration
	MaxConcurrency int
}
