package repositories

import (
	"errors"
	"time"

	"SurgeAlertBot/internal/models"

	"gorm.io/gorm"
)

// AlertRepository journals emitted alerts for operators. The scanner never
// reads it back — detection stays stateless across cycles.
type AlertRepository struct {
	db *gorm.DB
}

// NewAlertRepository creates a new instance of AlertRepository
func NewAlertRepository(db *gorm.DB) *AlertRepository {
	return &AlertRepository{db: db}
}

// Create adds a new Alert record to the database
func (r *AlertRepository) Create(alert *models.Alert) error {
	if alert == nil {
		return errors.New("alert cannot be nil")
	}
	return r.db.Create(alert).Error
}

// FindRecent retrieves the most recently emitted alerts, newest first
func (r *AlertRepository) FindRecent(limit int) ([]models.Alert, error) {
	if limit <= 0 {
		limit = 50
	}
	var alerts []models.Alert
	err := r.db.Order("created_at DESC").Limit(limit).Find(&alerts).Error
	return alerts, err
}

// FindBySymbol retrieves alerts for a symbol emitted since the given time
func (r *AlertRepository) FindBySymbol(symbol string, since time.Time) ([]models.Alert, error) {
	if symbol == "" {
		return nil, errors.New("invalid symbol")
	}
	var alerts []models.Alert
	err := r.db.Where("symbol = ? AND created_at >= ?", symbol, since).
		Order("created_at ASC").
		Find(&alerts).Error
	return alerts, err
}
