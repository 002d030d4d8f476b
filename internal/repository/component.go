package repository

import (
	"time"

	"bicycle-maintenance-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ComponentRepository handles database operations for components
type ComponentRepository struct {
	db *gorm.DB
}

// NewComponentRepository creates a new component repository
func NewComponentRepository(db *gorm.DB) *ComponentRepository {
	return &ComponentRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *ComponentRepository) WithTx(tx *gorm.DB) *ComponentRepository {
	return &ComponentRepository{db: tx}
}

// Create creates a new component
func (r *ComponentRepository) Create(component *models.Component) error {
	return r.db.Create(component).Error
}

// GetByID retrieves a component by ID
func (r *ComponentRepository) GetByID(id uuid.UUID) (*models.Component, error) {
	var component models.Component
	err := r.db.First(&component, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &component, nil
}

// GetByIDForBicycle retrieves a component by ID scoped to a bicycle
func (r *ComponentRepository) GetByIDForBicycle(id, bicycleID uuid.UUID) (*models.Component, error) {
	var component models.Component
	err := r.db.First(&component, "id = ? AND bicycle_id = ?", id, bicycleID).Error
	if err != nil {
		return nil, err
	}
	return &component, nil
}

// GetByBicycle retrieves every component ever attached to a bicycle
func (r *ComponentRepository) GetByBicycle(bicycleID uuid.UUID) ([]models.Component, error) {
	var components []models.Component
	err := r.db.Where("bicycle_id = ?", bicycleID).Order("created_at").Find(&components).Error
	if err != nil {
		return nil, err
	}
	return components, nil
}

// GetActiveByBicycle retrieves the currently mounted components of a bicycle
func (r *ComponentRepository) GetActiveByBicycle(bicycleID uuid.UUID) ([]models.Component, error) {
	var components []models.Component
	err := r.db.Where("bicycle_id = ? AND status = ?", bicycleID, models.ComponentStatusActive).
		Order("created_at").Find(&components).Error
	if err != nil {
		return nil, err
	}
	return components, nil
}

// GetActiveByBicycleAndType retrieves the active components in one slot
func (r *ComponentRepository) GetActiveByBicycleAndType(bicycleID uuid.UUID, componentType models.ComponentType) ([]models.Component, error) {
	var components []models.Component
	err := r.db.Where("bicycle_id = ? AND component_type = ? AND status = ?",
		bicycleID, componentType, models.ComponentStatusActive).
		Order("created_at").Find(&components).Error
	if err != nil {
		return nil, err
	}
	return components, nil
}

// CountActive counts active components in a slot, optionally excluding one
// component (self-exclusion when validating an update).
func (r *ComponentRepository) CountActive(bicycleID uuid.UUID, componentType models.ComponentType, excludeID *uuid.UUID) (int64, error) {
	query := r.db.Model(&models.Component{}).
		Where("bicycle_id = ? AND component_type = ? AND status = ?",
			bicycleID, componentType, models.ComponentStatusActive)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	var count int64
	err := query.Count(&count).Error
	return count, err
}

// Update updates a component
func (r *ComponentRepository) Update(component *models.Component) error {
	return r.db.Save(component).Error
}

// Retire marks a component as replaced at the given time. The transition is
// terminal; distance and usage logs are left untouched.
func (r *ComponentRepository) Retire(component *models.Component, at time.Time) error {
	component.Status = models.ComponentStatusReplaced
	component.ReplacedAt = &at
	return r.db.Model(component).Updates(map[string]interface{}{
		"status":      models.ComponentStatusReplaced,
		"replaced_at": at,
	}).Error
}

// Delete deletes a component and its usage log entries
func (r *ComponentRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("trackable_type = ? AND trackable_id = ?", models.TrackableTypeComponent, id).
			Delete(&models.UsageLogEntry{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Component{}, "id = ?", id).Error
	})
}
