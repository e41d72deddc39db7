package models

import (
	"time"
)

// Alert is a detected short-surge event for one symbol. It is created by the
// symbol analyzer, delivered once via Telegram, optionally journaled, and
// then discarded — there is no retry state and no cross-cycle memory.
type Alert struct {
	ID          string    `gorm:"primaryKey;type:uuid"`
	Symbol      string    `gorm:"index;not null"`
	LastPrice   float64   `gorm:"type:decimal(20,8)"`
	ReturnPct   float64   // 1h return in %, rounded to 2 decimals
	RSI         float64   // 0-100
	VolumeSpike float64   // latest volume / trailing mean
	ChartURL    string    `gorm:"-"`
	Message     string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"index"`
}

// TableName sets the table name for Alert model
func (Alert) TableName() string {
	return "alerts"
}
