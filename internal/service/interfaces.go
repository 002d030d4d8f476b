package service

import (
	"time"

	"bicycle-maintenance-backend/internal/database/models"
	"bicycle-maintenance-backend/internal/wear"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	Register(req *RegisterRequest) (*AuthResponse, error)
	Login(req *LoginRequest) (*AuthResponse, error)
	GetByID(id uuid.UUID) (*models.User, error)
}

// BicycleServiceInterface defines the interface for bicycle service
type BicycleServiceInterface interface {
	Create(userID uuid.UUID, req *CreateBicycleRequest) (*models.Bicycle, error)
	GetForUser(bicycleID, userID uuid.UUID) (*models.Bicycle, error)
	ListForUser(userID uuid.UUID) ([]models.Bicycle, error)
	Update(bicycleID, userID uuid.UUID, req *UpdateBicycleRequest) (*models.Bicycle, error)
	Delete(bicycleID, userID uuid.UUID) error
	WearLimits(bicycleID, userID uuid.UUID) (wear.Limits, error)
	Recommendations(bicycleID, userID uuid.UUID) ([]string, error)
	ComponentStatus(bicycleID, userID uuid.UUID) (*wear.StatusReport, error)
	ServiceHistory(bicycleID, userID uuid.UUID) ([]models.Service, error)
	ReplacementHistory(bicycleID, userID uuid.UUID, componentType models.ComponentType) ([]models.ComponentReplacement, error)
	MaintenanceHistory(bicycleID, userID uuid.UUID) ([]models.UsageLogEntry, error)
	LastMaintenanceAt(bicycleID, userID uuid.UUID) (*time.Time, error)
}

// ComponentServiceInterface defines the interface for component service
type ComponentServiceInterface interface {
	Create(bicycleID uuid.UUID, req *CreateComponentRequest) (*models.Component, error)
	GetForBicycle(componentID, bicycleID uuid.UUID) (*models.Component, error)
	ListForBicycle(bicycleID uuid.UUID, activeOnly bool) ([]models.Component, error)
	Update(componentID, bicycleID uuid.UUID, req *UpdateComponentRequest) (*models.Component, error)
	Delete(componentID, bicycleID uuid.UUID) error
}

// MaintenanceServiceInterface defines the interface for maintenance recording
type MaintenanceServiceInterface interface {
	RecordMaintenance(bicycleID uuid.UUID, opts MaintenanceOptions) (*models.Service, error)
}

// RideServiceInterface defines the interface for ride recording
type RideServiceInterface interface {
	RecordRide(bicycleID uuid.UUID, distance float64, notes string) error
}
