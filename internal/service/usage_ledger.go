package service

import (
	"fmt"
	"time"

	"bicycle-maintenance-backend/internal/database/models"
	apperrors "bicycle-maintenance-backend/internal/errors"
	"bicycle-maintenance-backend/internal/logger"
	"bicycle-maintenance-backend/internal/repository"

	"gorm.io/gorm"
)

// duplicateLogWindow guards against a single logical update being logged
// twice through external double calls. Suppression applies to the increase
// path only; maintenance resets are always logged.
const duplicateLogWindow = time.Second

// defaultMaintenanceNotes is used when a reset carries no caller notes
const defaultMaintenanceNotes = "Maintenance performed"

// UsageLedger maintains the append-only kilometre log for trackables
// (bicycles and components) and keeps their distance counters in sync with
// it. Every distance change and its log entry commit atomically.
type UsageLedger struct {
	db   *gorm.DB
	logs *repository.UsageLogRepository
	log  *logger.Logger
}

// NewUsageLedger creates a new usage ledger
func NewUsageLedger(db *gorm.DB, logs *repository.UsageLogRepository) *UsageLedger {
	return &UsageLedger{
		db:   db,
		logs: logs,
		log:  logger.New(),
	}
}

// WithTx returns a copy of the ledger bound to the given transaction.
// Nested use inside an outer transaction is safe; gorm falls back to
// savepoints.
func (l *UsageLedger) WithTx(tx *gorm.DB) *UsageLedger {
	return &UsageLedger{db: tx, logs: l.logs.WithTx(tx), log: l.log}
}

// Increase adds distance to a trackable and appends an increase log entry.
// Amounts <= 0 are rejected before any state changes.
func (l *UsageLedger) Increase(t models.Trackable, amount float64, notes string) error {
	if amount <= 0 {
		return apperrors.NewValidationError(
			"Distance amount must be greater than zero",
			"The distance value must be a positive number",
		)
	}

	return l.db.Transaction(func(tx *gorm.DB) error {
		previous := t.CurrentDistance()
		next := previous + amount

		if err := l.writeDistance(tx, t, next); err != nil {
			return err
		}

		if next < previous {
			l.log.Warnf("unexpected kilometre change: %g -> %g", previous, next)
		}

		if notes == "" {
			notes = fmt.Sprintf("Kilometres increased from %g to %g", previous, next)
		}

		trackableType, trackableID := t.TrackableRef()
		entry := &models.UsageLogEntry{
			TrackableType: trackableType,
			TrackableID:   trackableID,
			EventType:     models.UsageEventIncrease,
			PreviousValue: previous,
			NewValue:      next,
			Notes:         notes,
		}

		logs := l.logs.WithTx(tx)
		last, err := logs.LastEntry(trackableType, trackableID)
		if err != nil {
			return err
		}
		if isDuplicateEntry(last, entry) {
			return nil
		}
		return logs.Create(entry)
	})
}

// Adjust sets a trackable's distance to an absolute value and appends an
// increase log entry carrying the raw before/after values, so direct
// counter edits stay visible in the log. Setting the current value is a
// no-op. A downward adjustment is logged with a warning.
func (l *UsageLedger) Adjust(t models.Trackable, value float64, notes string) error {
	if value < 0 {
		return apperrors.NewValidationError(
			"Distance value must not be negative",
			"The distance value must be zero or a positive number",
		)
	}

	return l.db.Transaction(func(tx *gorm.DB) error {
		previous := t.CurrentDistance()
		if value == previous {
			return nil
		}

		if err := l.writeDistance(tx, t, value); err != nil {
			return err
		}

		if value < previous {
			l.log.Warnf("unexpected kilometre change: %g -> %g", previous, value)
		}

		if notes == "" {
			notes = fmt.Sprintf("Kilometres adjusted from %g to %g", previous, value)
		}

		trackableType, trackableID := t.TrackableRef()
		entry := &models.UsageLogEntry{
			TrackableType: trackableType,
			TrackableID:   trackableID,
			EventType:     models.UsageEventIncrease,
			PreviousValue: previous,
			NewValue:      value,
			Notes:         notes,
		}

		logs := l.logs.WithTx(tx)
		last, err := logs.LastEntry(trackableType, trackableID)
		if err != nil {
			return err
		}
		if isDuplicateEntry(last, entry) {
			return nil
		}
		return logs.Create(entry)
	})
}

// Reset sets a trackable's distance to zero and appends a maintenance log
// entry. Resets are never suppressed.
func (l *UsageLedger) Reset(t models.Trackable, notes string) error {
	if notes == "" {
		notes = defaultMaintenanceNotes
	}

	return l.db.Transaction(func(tx *gorm.DB) error {
		previous := t.CurrentDistance()

		if err := l.writeDistance(tx, t, 0); err != nil {
			return err
		}

		trackableType, trackableID := t.TrackableRef()
		return l.logs.WithTx(tx).Create(&models.UsageLogEntry{
			TrackableType: trackableType,
			TrackableID:   trackableID,
			EventType:     models.UsageEventMaintenance,
			PreviousValue: previous,
			NewValue:      0,
			Notes:         notes,
		})
	})
}

// LifetimeDistance returns the total distance ever ridden, independent of
// maintenance resets
func (l *UsageLedger) LifetimeDistance(t models.Trackable) (float64, error) {
	trackableType, trackableID := t.TrackableRef()
	return l.logs.SumIncreaseDeltas(trackableType, trackableID)
}

// MaintenanceHistory returns all maintenance entries, most recent first
func (l *UsageLedger) MaintenanceHistory(t models.Trackable) ([]models.UsageLogEntry, error) {
	trackableType, trackableID := t.TrackableRef()
	return l.logs.GetMaintenanceHistory(trackableType, trackableID)
}

// LastMaintenanceAt returns when the trackable was last maintained, or nil
func (l *UsageLedger) LastMaintenanceAt(t models.Trackable) (*time.Time, error) {
	history, err := l.MaintenanceHistory(t)
	if err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return nil, nil
	}
	return &history[0].CreatedAt, nil
}

func (l *UsageLedger) writeDistance(tx *gorm.DB, t models.Trackable, value float64) error {
	t.SetDistance(value)
	return tx.Model(t).Update("kilometres", value).Error
}

// isDuplicateEntry reports whether the candidate matches the most recent
// entry on event type and both values, within the suppression window
func isDuplicateEntry(last, candidate *models.UsageLogEntry) bool {
	if last == nil {
		return false
	}
	return last.EventType == candidate.EventType &&
		last.PreviousValue == candidate.PreviousValue &&
		last.NewValue == candidate.NewValue &&
		time.Since(last.CreatedAt) < duplicateLogWindow
}
