package repository

import (
	"bicycle-maintenance-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BicycleRepository handles database operations for bicycles
type BicycleRepository struct {
	db *gorm.DB
}

// NewBicycleRepository creates a new bicycle repository
func NewBicycleRepository(db *gorm.DB) *BicycleRepository {
	return &BicycleRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *BicycleRepository) WithTx(tx *gorm.DB) *BicycleRepository {
	return &BicycleRepository{db: tx}
}

// Create creates a new bicycle
func (r *BicycleRepository) Create(bicycle *models.Bicycle) error {
	return r.db.Create(bicycle).Error
}

// GetByID retrieves a bicycle by ID
func (r *BicycleRepository) GetByID(id uuid.UUID) (*models.Bicycle, error) {
	var bicycle models.Bicycle
	err := r.db.First(&bicycle, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &bicycle, nil
}

// GetByIDForUser retrieves a bicycle by ID scoped to its owner
func (r *BicycleRepository) GetByIDForUser(id, userID uuid.UUID) (*models.Bicycle, error) {
	var bicycle models.Bicycle
	err := r.db.First(&bicycle, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return nil, err
	}
	return &bicycle, nil
}

// GetWithComponents retrieves a bicycle with all its components preloaded
func (r *BicycleRepository) GetWithComponents(id uuid.UUID) (*models.Bicycle, error) {
	var bicycle models.Bicycle
	err := r.db.Preload("Components").First(&bicycle, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &bicycle, nil
}

// GetAllByUser retrieves all bicycles owned by a user
func (r *BicycleRepository) GetAllByUser(userID uuid.UUID) ([]models.Bicycle, error) {
	var bicycles []models.Bicycle
	err := r.db.Where("user_id = ?", userID).Order("created_at").Find(&bicycles).Error
	if err != nil {
		return nil, err
	}
	return bicycles, nil
}

// LockByID loads a bicycle row with a FOR UPDATE lock. Callers use this
// inside a transaction to serialize slot-limit checks against concurrent
// component creation.
func (r *BicycleRepository) LockByID(id uuid.UUID) (*models.Bicycle, error) {
	var bicycle models.Bicycle
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&bicycle, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &bicycle, nil
}

// Update updates a bicycle
func (r *BicycleRepository) Update(bicycle *models.Bicycle) error {
	return r.db.Save(bicycle).Error
}

// Delete deletes a bicycle; components, services and usage logs cascade
func (r *BicycleRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// usage log rows are polymorphic, no FK cascade covers them
		var componentIDs []uuid.UUID
		if err := tx.Model(&models.Component{}).Where("bicycle_id = ?", id).Pluck("id", &componentIDs).Error; err != nil {
			return err
		}
		if len(componentIDs) > 0 {
			if err := tx.Where("trackable_type = ? AND trackable_id IN ?", models.TrackableTypeComponent, componentIDs).
				Delete(&models.UsageLogEntry{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("trackable_type = ? AND trackable_id = ?", models.TrackableTypeBicycle, id).
			Delete(&models.UsageLogEntry{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Bicycle{}, "id = ?", id).Error
	})
}
