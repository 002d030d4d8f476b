package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"bicycle-maintenance-backend/internal/database/models"
	apperrors "bicycle-maintenance-backend/internal/errors"
	"bicycle-maintenance-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ComponentService owns the component lifecycle: creation under slot
// limits, the terminal active -> replaced transition, and component CRUD.
type ComponentService struct {
	db            *gorm.DB
	componentRepo *repository.ComponentRepository
	bicycleRepo   *repository.BicycleRepository
	ledger        *UsageLedger
	validator     *validator.Validate
}

// NewComponentService creates a new component service
func NewComponentService(db *gorm.DB, componentRepo *repository.ComponentRepository, bicycleRepo *repository.BicycleRepository, ledger *UsageLedger, validator *validator.Validate) *ComponentService {
	return &ComponentService{
		db:            db,
		componentRepo: componentRepo,
		bicycleRepo:   bicycleRepo,
		ledger:        ledger,
		validator:     validator,
	}
}

// CreateComponentRequest carries the attributes for a new component
type CreateComponentRequest struct {
	ComponentType models.ComponentType `json:"component_type" validate:"required"`
	Brand         string               `json:"brand" validate:"required,min=2,max=50"`
	Model         string               `json:"model" validate:"required,min=1,max=50"`
	Kilometres    float64              `json:"kilometres" validate:"gte=0"`
}

// UpdateComponentRequest carries updatable component attributes
type UpdateComponentRequest struct {
	Brand      *string  `json:"brand" validate:"omitempty,min=2,max=50"`
	Model      *string  `json:"model" validate:"omitempty,min=1,max=50"`
	Kilometres *float64 `json:"kilometres" validate:"omitempty,gte=0"`
}

// Create mounts a new active component on a bicycle. It fails validation
// when the slot already holds its maximum number of active components. The
// bicycle row is locked for the duration of the check-then-create so
// concurrent creations cannot overshoot the limit.
func (s *ComponentService) Create(bicycleID uuid.UUID, req *CreateComponentRequest) (*models.Component, error) {
	if !req.ComponentType.IsValid() {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("Invalid component type: %s", req.ComponentType),
		)
	}
	req.Brand = normalizeName(req.Brand)
	req.Model = normalizeName(req.Model)
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("Invalid component attributes", validationDetails(err)...)
	}

	component := &models.Component{
		BicycleID:     bicycleID,
		ComponentType: req.ComponentType,
		Brand:         req.Brand,
		Model:         req.Model,
		Kilometres:    req.Kilometres,
		Status:        models.ComponentStatusActive,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.bicycleRepo.WithTx(tx).LockByID(bicycleID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrBicycleNotFound
			}
			return err
		}
		if err := s.checkSlotLimit(tx, component, nil); err != nil {
			return err
		}
		return s.componentRepo.WithTx(tx).Create(component)
	})
	if err != nil {
		return nil, err
	}
	return component, nil
}

// Retire transitions a component to replaced at the given time. The
// transition is terminal and does not touch distance or usage logs.
func (s *ComponentService) Retire(component *models.Component, at time.Time) error {
	if component.Status == models.ComponentStatusReplaced {
		return apperrors.NewValidationError("Component is already replaced")
	}
	return s.componentRepo.Retire(component, at)
}

// GetForBicycle retrieves one component scoped to a bicycle
func (s *ComponentService) GetForBicycle(componentID, bicycleID uuid.UUID) (*models.Component, error) {
	component, err := s.componentRepo.GetByIDForBicycle(componentID, bicycleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrComponentNotFound
		}
		return nil, err
	}
	return component, nil
}

// ListForBicycle returns a bicycle's components, active ones only when
// activeOnly is set
func (s *ComponentService) ListForBicycle(bicycleID uuid.UUID, activeOnly bool) ([]models.Component, error) {
	if activeOnly {
		return s.componentRepo.GetActiveByBicycle(bicycleID)
	}
	return s.componentRepo.GetByBicycle(bicycleID)
}

// Update applies partial updates to a component. Changing status is not
// supported here; retirement goes through Retire. A kilometres change is
// routed through the usage ledger so the counter and the append-only log
// cannot diverge.
func (s *ComponentService) Update(componentID, bicycleID uuid.UUID, req *UpdateComponentRequest) (*models.Component, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("Invalid component attributes", validationDetails(err)...)
	}

	component, err := s.GetForBicycle(componentID, bicycleID)
	if err != nil {
		return nil, err
	}

	if req.Brand != nil {
		component.Brand = normalizeName(*req.Brand)
	}
	if req.Model != nil {
		component.Model = normalizeName(*req.Model)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.componentRepo.WithTx(tx).Update(component); err != nil {
			return err
		}
		if req.Kilometres != nil {
			return s.ledger.WithTx(tx).Adjust(component, *req.Kilometres, "")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return component, nil
}

// Delete removes a component and its usage log entries
func (s *ComponentService) Delete(componentID, bicycleID uuid.UUID) error {
	component, err := s.GetForBicycle(componentID, bicycleID)
	if err != nil {
		return err
	}
	return s.componentRepo.Delete(component.ID)
}

// checkSlotLimit enforces the max-active invariant for the component's
// slot. excludeID skips the component itself when it is already persisted.
func (s *ComponentService) checkSlotLimit(tx *gorm.DB, component *models.Component, excludeID *uuid.UUID) error {
	slot := component.ComponentType.Slot()
	count, err := s.componentRepo.WithTx(tx).CountActive(component.BicycleID, component.ComponentType, excludeID)
	if err != nil {
		return err
	}
	if count >= int64(slot.MaxActive) {
		article := "a"
		suffix := ""
		if slot.MaxActive > 1 {
			article = fmt.Sprintf("%d", slot.MaxActive)
			suffix = "s"
		}
		return apperrors.NewValidationError(
			fmt.Sprintf("Bicycle already has %s active %s%s", article, component.ComponentType, suffix),
		)
	}
	return nil
}

// normalizeName trims and collapses interior whitespace
func normalizeName(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// validationDetails flattens validator errors into human-readable strings
func validationDetails(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, fmt.Sprintf("%s failed on the '%s' rule", fe.Field(), fe.Tag()))
	}
	return details
}
