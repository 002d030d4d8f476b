package service

import (
	"errors"
	"time"

	"bicycle-maintenance-backend/internal/database/models"
	apperrors "bicycle-maintenance-backend/internal/errors"
	"bicycle-maintenance-backend/internal/repository"
	"bicycle-maintenance-backend/internal/wear"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BicycleService handles bicycle CRUD and wear reporting
type BicycleService struct {
	bicycleRepo *repository.BicycleRepository
	serviceRepo *repository.ServiceRepository
	ledger      *UsageLedger
	validator   *validator.Validate
}

// NewBicycleService creates a new bicycle service
func NewBicycleService(bicycleRepo *repository.BicycleRepository, serviceRepo *repository.ServiceRepository, ledger *UsageLedger, validator *validator.Validate) *BicycleService {
	return &BicycleService{
		bicycleRepo: bicycleRepo,
		serviceRepo: serviceRepo,
		ledger:      ledger,
		validator:   validator,
	}
}

// CreateBicycleRequest carries the attributes for a new bicycle
type CreateBicycleRequest struct {
	Name        string             `json:"name" validate:"required,min=1,max=100"`
	Brand       string             `json:"brand" validate:"required,min=1,max=100"`
	Model       string             `json:"model" validate:"required,min=1,max=100"`
	Terrain     models.Terrain     `json:"terrain"`
	Weather     models.Weather     `json:"weather"`
	Particulate models.Particulate `json:"particulate"`
}

// UpdateBicycleRequest carries updatable bicycle attributes
type UpdateBicycleRequest struct {
	Name        *string             `json:"name" validate:"omitempty,min=1,max=100"`
	Brand       *string             `json:"brand" validate:"omitempty,min=1,max=100"`
	Model       *string             `json:"model" validate:"omitempty,min=1,max=100"`
	Terrain     *models.Terrain     `json:"terrain"`
	Weather     *models.Weather     `json:"weather"`
	Particulate *models.Particulate `json:"particulate"`
}

// Create registers a bicycle for an owner
func (s *BicycleService) Create(userID uuid.UUID, req *CreateBicycleRequest) (*models.Bicycle, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("Invalid bicycle attributes", validationDetails(err)...)
	}
	if err := validateEnvironment(req.Terrain, req.Weather, req.Particulate); err != nil {
		return nil, err
	}

	bicycle := &models.Bicycle{
		UserID:      userID,
		Name:        req.Name,
		Brand:       req.Brand,
		Model:       req.Model,
		Terrain:     req.Terrain,
		Weather:     req.Weather,
		Particulate: req.Particulate,
	}
	if err := s.bicycleRepo.Create(bicycle); err != nil {
		return nil, err
	}
	return bicycle, nil
}

// GetForUser retrieves a bicycle scoped to its owner. Bicycles of other
// users surface as not found.
func (s *BicycleService) GetForUser(bicycleID, userID uuid.UUID) (*models.Bicycle, error) {
	bicycle, err := s.bicycleRepo.GetByIDForUser(bicycleID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBicycleNotFound
		}
		return nil, err
	}
	return bicycle, nil
}

// ListForUser returns all bicycles of an owner
func (s *BicycleService) ListForUser(userID uuid.UUID) ([]models.Bicycle, error) {
	return s.bicycleRepo.GetAllByUser(userID)
}

// Update applies partial updates to a bicycle
func (s *BicycleService) Update(bicycleID, userID uuid.UUID, req *UpdateBicycleRequest) (*models.Bicycle, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("Invalid bicycle attributes", validationDetails(err)...)
	}

	bicycle, err := s.GetForUser(bicycleID, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		bicycle.Name = *req.Name
	}
	if req.Brand != nil {
		bicycle.Brand = *req.Brand
	}
	if req.Model != nil {
		bicycle.Model = *req.Model
	}
	if req.Terrain != nil {
		bicycle.Terrain = *req.Terrain
	}
	if req.Weather != nil {
		bicycle.Weather = *req.Weather
	}
	if req.Particulate != nil {
		bicycle.Particulate = *req.Particulate
	}
	if err := validateEnvironment(bicycle.Terrain, bicycle.Weather, bicycle.Particulate); err != nil {
		return nil, err
	}

	if err := s.bicycleRepo.Update(bicycle); err != nil {
		return nil, err
	}
	return bicycle, nil
}

// Delete destroys a bicycle; components, services and usage logs cascade
func (s *BicycleService) Delete(bicycleID, userID uuid.UUID) error {
	bicycle, err := s.GetForUser(bicycleID, userID)
	if err != nil {
		return err
	}
	return s.bicycleRepo.Delete(bicycle.ID)
}

// WearLimits returns the bicycle's environment-adjusted wear limits
func (s *BicycleService) WearLimits(bicycleID, userID uuid.UUID) (wear.Limits, error) {
	bicycle, err := s.GetForUser(bicycleID, userID)
	if err != nil {
		return nil, err
	}
	return wear.AdjustedLimits(wear.EnvironmentFor(bicycle)), nil
}

// Recommendations returns maintenance advice for worn components
func (s *BicycleService) Recommendations(bicycleID, userID uuid.UUID) ([]string, error) {
	if _, err := s.GetForUser(bicycleID, userID); err != nil {
		return nil, err
	}
	bicycle, err := s.bicycleRepo.GetWithComponents(bicycleID)
	if err != nil {
		return nil, err
	}
	limits := wear.AdjustedLimits(wear.EnvironmentFor(bicycle))
	return wear.Recommendations(bicycle, limits), nil
}

// ComponentStatus returns the full wear status report for a bicycle
func (s *BicycleService) ComponentStatus(bicycleID, userID uuid.UUID) (*wear.StatusReport, error) {
	if _, err := s.GetForUser(bicycleID, userID); err != nil {
		return nil, err
	}
	bicycle, err := s.bicycleRepo.GetWithComponents(bicycleID)
	if err != nil {
		return nil, err
	}

	lifetime, err := s.ledger.LifetimeDistance(bicycle)
	if err != nil {
		return nil, err
	}
	lastMaintenance, err := s.ledger.LastMaintenanceAt(bicycle)
	if err != nil {
		return nil, err
	}

	limits := wear.AdjustedLimits(wear.EnvironmentFor(bicycle))
	report := wear.Status(bicycle, limits, lifetime, lastMaintenance)
	return &report, nil
}

// ServiceHistory returns the bicycle's services, most recent first
func (s *BicycleService) ServiceHistory(bicycleID, userID uuid.UUID) ([]models.Service, error) {
	if _, err := s.GetForUser(bicycleID, userID); err != nil {
		return nil, err
	}
	return s.serviceRepo.GetByBicycle(bicycleID)
}

// ReplacementHistory returns the bicycle's replacement records for one
// component type, most recent first
func (s *BicycleService) ReplacementHistory(bicycleID, userID uuid.UUID, componentType models.ComponentType) ([]models.ComponentReplacement, error) {
	if !componentType.IsValid() {
		return nil, apperrors.NewValidationError("Invalid component type: " + string(componentType))
	}
	if _, err := s.GetForUser(bicycleID, userID); err != nil {
		return nil, err
	}
	return s.serviceRepo.GetReplacementsByBicycleAndType(bicycleID, componentType)
}

// MaintenanceHistory returns the bicycle's maintenance log entries, most
// recent first
func (s *BicycleService) MaintenanceHistory(bicycleID, userID uuid.UUID) ([]models.UsageLogEntry, error) {
	bicycle, err := s.GetForUser(bicycleID, userID)
	if err != nil {
		return nil, err
	}
	return s.ledger.MaintenanceHistory(bicycle)
}

// LastMaintenanceAt returns when the bicycle was last serviced, or nil
func (s *BicycleService) LastMaintenanceAt(bicycleID, userID uuid.UUID) (*time.Time, error) {
	bicycle, err := s.GetForUser(bicycleID, userID)
	if err != nil {
		return nil, err
	}
	return s.ledger.LastMaintenanceAt(bicycle)
}

func validateEnvironment(t models.Terrain, w models.Weather, p models.Particulate) error {
	var details []string
	if !t.IsValid() {
		details = append(details, "terrain must be one of flat, hilly, mountainous")
	}
	if !w.IsValid() {
		details = append(details, "weather must be one of dry, mixed, wet")
	}
	if !p.IsValid() {
		details = append(details, "particulate must be one of low, medium, high")
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("Invalid riding environment", details...)
	}
	return nil
}
