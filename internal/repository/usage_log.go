package repository

import (
	"errors"

	"bicycle-maintenance-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UsageLogRepository handles database operations for usage log entries.
// The log is append-only: there are no update or single-row delete methods.
type UsageLogRepository struct {
	db *gorm.DB
}

// NewUsageLogRepository creates a new usage log repository
func NewUsageLogRepository(db *gorm.DB) *UsageLogRepository {
	return &UsageLogRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *UsageLogRepository) WithTx(tx *gorm.DB) *UsageLogRepository {
	return &UsageLogRepository{db: tx}
}

// Create appends a log entry
func (r *UsageLogRepository) Create(entry *models.UsageLogEntry) error {
	return r.db.Create(entry).Error
}

// LastEntry returns the most recent entry for a trackable, or nil when the
// trackable has no log yet
func (r *UsageLogRepository) LastEntry(trackableType models.TrackableType, trackableID uuid.UUID) (*models.UsageLogEntry, error) {
	var entry models.UsageLogEntry
	err := r.db.
		Where("trackable_type = ? AND trackable_id = ?", trackableType, trackableID).
		Order("created_at DESC").
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// GetByTrackable returns a trackable's full log, oldest first
func (r *UsageLogRepository) GetByTrackable(trackableType models.TrackableType, trackableID uuid.UUID) ([]models.UsageLogEntry, error) {
	var entries []models.UsageLogEntry
	err := r.db.
		Where("trackable_type = ? AND trackable_id = ?", trackableType, trackableID).
		Order("created_at").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// GetMaintenanceHistory returns a trackable's maintenance entries, most
// recent first
func (r *UsageLogRepository) GetMaintenanceHistory(trackableType models.TrackableType, trackableID uuid.UUID) ([]models.UsageLogEntry, error) {
	var entries []models.UsageLogEntry
	err := r.db.
		Where("trackable_type = ? AND trackable_id = ? AND event_type = ?",
			trackableType, trackableID, models.UsageEventMaintenance).
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// SumIncreaseDeltas sums new_value - previous_value over all increase
// entries, i.e. the total distance ever ridden regardless of resets
func (r *UsageLogRepository) SumIncreaseDeltas(trackableType models.TrackableType, trackableID uuid.UUID) (float64, error) {
	var total float64
	err := r.db.Model(&models.UsageLogEntry{}).
		Where("trackable_type = ? AND trackable_id = ? AND event_type = ?",
			trackableType, trackableID, models.UsageEventIncrease).
		Select("COALESCE(SUM(new_value - previous_value), 0)").
		Scan(&total).Error
	return total, err
}
