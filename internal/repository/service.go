package repository

import (
	"bicycle-maintenance-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceRepository handles database operations for services and their
// replacement/action children
type ServiceRepository struct {
	db *gorm.DB
}

// NewServiceRepository creates a new service repository
func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *ServiceRepository) WithTx(tx *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: tx}
}

// Create creates a new service
func (r *ServiceRepository) Create(service *models.Service) error {
	return r.db.Create(service).Error
}

// CreateReplacement creates a component replacement audit record
func (r *ServiceRepository) CreateReplacement(replacement *models.ComponentReplacement) error {
	return r.db.Create(replacement).Error
}

// CreateAction creates a maintenance action record
func (r *ServiceRepository) CreateAction(action *models.MaintenanceAction) error {
	return r.db.Create(action).Error
}

// GetByID retrieves a service by ID
func (r *ServiceRepository) GetByID(id uuid.UUID) (*models.Service, error) {
	var service models.Service
	err := r.db.First(&service, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &service, nil
}

// GetWithChildren retrieves a service with replacements and actions preloaded
func (r *ServiceRepository) GetWithChildren(id uuid.UUID) (*models.Service, error) {
	var service models.Service
	err := r.db.
		Preload("ComponentReplacements").
		Preload("MaintenanceActions").
		First(&service, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &service, nil
}

// GetByBicycle retrieves a bicycle's services, most recent first
func (r *ServiceRepository) GetByBicycle(bicycleID uuid.UUID) ([]models.Service, error) {
	var services []models.Service
	err := r.db.
		Preload("ComponentReplacements").
		Preload("MaintenanceActions").
		Where("bicycle_id = ?", bicycleID).
		Order("performed_at DESC").
		Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}

// GetReplacementsByBicycleAndType retrieves a bicycle's replacement history
// for one component type, most recent service first
func (r *ServiceRepository) GetReplacementsByBicycleAndType(bicycleID uuid.UUID, componentType models.ComponentType) ([]models.ComponentReplacement, error) {
	var replacements []models.ComponentReplacement
	err := r.db.
		Joins("JOIN services ON services.id = component_replacements.service_id").
		Where("services.bicycle_id = ? AND component_replacements.component_type = ?", bicycleID, componentType).
		Order("services.performed_at DESC").
		Find(&replacements).Error
	if err != nil {
		return nil, err
	}
	return replacements, nil
}
