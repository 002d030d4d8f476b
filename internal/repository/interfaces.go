package repository

import (
	"time"

	"bicycle-maintenance-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Delete(id uuid.UUID) error
}

// BicycleRepositoryInterface defines the interface for bicycle repository operations
type BicycleRepositoryInterface interface {
	Create(bicycle *models.Bicycle) error
	GetByID(id uuid.UUID) (*models.Bicycle, error)
	GetByIDForUser(id, userID uuid.UUID) (*models.Bicycle, error)
	GetWithComponents(id uuid.UUID) (*models.Bicycle, error)
	GetAllByUser(userID uuid.UUID) ([]models.Bicycle, error)
	Update(bicycle *models.Bicycle) error
	Delete(id uuid.UUID) error
}

// ComponentRepositoryInterface defines the interface for component repository operations
type ComponentRepositoryInterface interface {
	Create(component *models.Component) error
	GetByID(id uuid.UUID) (*models.Component, error)
	GetByIDForBicycle(id, bicycleID uuid.UUID) (*models.Component, error)
	GetByBicycle(bicycleID uuid.UUID) ([]models.Component, error)
	GetActiveByBicycle(bicycleID uuid.UUID) ([]models.Component, error)
	GetActiveByBicycleAndType(bicycleID uuid.UUID, componentType models.ComponentType) ([]models.Component, error)
	CountActive(bicycleID uuid.UUID, componentType models.ComponentType, excludeID *uuid.UUID) (int64, error)
	Update(component *models.Component) error
	Retire(component *models.Component, at time.Time) error
	Delete(id uuid.UUID) error
}

// ServiceRepositoryInterface defines the interface for service repository operations
type ServiceRepositoryInterface interface {
	Create(service *models.Service) error
	CreateReplacement(replacement *models.ComponentReplacement) error
	CreateAction(action *models.MaintenanceAction) error
	GetByID(id uuid.UUID) (*models.Service, error)
	GetWithChildren(id uuid.UUID) (*models.Service, error)
	GetByBicycle(bicycleID uuid.UUID) ([]models.Service, error)
	GetReplacementsByBicycleAndType(bicycleID uuid.UUID, componentType models.ComponentType) ([]models.ComponentReplacement, error)
}

// UsageLogRepositoryInterface defines the interface for usage log repository operations
type UsageLogRepositoryInterface interface {
	Create(entry *models.UsageLogEntry) error
	LastEntry(trackableType models.TrackableType, trackableID uuid.UUID) (*models.UsageLogEntry, error)
	GetByTrackable(trackableType models.TrackableType, trackableID uuid.UUID) ([]models.UsageLogEntry, error)
	GetMaintenanceHistory(trackableType models.TrackableType, trackableID uuid.UUID) ([]models.UsageLogEntry, error)
	SumIncreaseDeltas(trackableType models.TrackableType, trackableID uuid.UUID) (float64, error)
}
