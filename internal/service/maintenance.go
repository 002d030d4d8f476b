package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"bicycle-maintenance-backend/internal/database/models"
	apperrors "bicycle-maintenance-backend/internal/errors"
	"bicycle-maintenance-backend/internal/logger"
	"bicycle-maintenance-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ComponentSpec identifies a replacement part by brand and model. The
// rules match what component creation enforces so a part accepted here
// would also be accepted through CRUD.
type ComponentSpec struct {
	Brand string `json:"brand" validate:"required,min=2,max=50"`
	Model string `json:"model" validate:"required,min=1,max=50"`
}

// SpecList accepts either a single spec object or an array of specs in
// JSON, so singular slots can be written as one object while plural slots
// take an array.
type SpecList []ComponentSpec

// UnmarshalJSON accepts `{...}` as a one-element list or `[...]` verbatim
func (l *SpecList) UnmarshalJSON(data []byte) error {
	var many []ComponentSpec
	if err := json.Unmarshal(data, &many); err == nil {
		*l = many
		return nil
	}
	var one ComponentSpec
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	*l = SpecList{one}
	return nil
}

// MaintenanceActionInput is one non-replacing service activity
type MaintenanceActionInput struct {
	ComponentType   string `json:"component_type"`
	ActionPerformed string `json:"action_performed"`
	Notes           string `json:"notes"`
}

// MaintenanceOptions shapes a recordMaintenance request
type MaintenanceOptions struct {
	Notes              string                                `json:"notes"`
	FullService        bool                                  `json:"full_service"`
	DefaultBrand       string                                `json:"default_brand"`
	DefaultModel       string                                `json:"default_model"`
	Exceptions         map[models.ComponentType]ComponentSpec `json:"exceptions"`
	Replacements       map[models.ComponentType]SpecList      `json:"replacements"`
	MaintenanceActions []MaintenanceActionInput              `json:"maintenance_actions"`
}

// MaintenanceService records services against bicycles: it creates the
// Service row, resets the bicycle's distance, retires and replaces
// components, and appends maintenance actions, all inside one transaction.
type MaintenanceService struct {
	db            *gorm.DB
	bicycleRepo   *repository.BicycleRepository
	componentRepo *repository.ComponentRepository
	serviceRepo   *repository.ServiceRepository
	ledger        *UsageLedger
	validator     *validator.Validate
	log           *logger.Logger
}

// NewMaintenanceService creates a new maintenance service
func NewMaintenanceService(db *gorm.DB, bicycleRepo *repository.BicycleRepository, componentRepo *repository.ComponentRepository, serviceRepo *repository.ServiceRepository, ledger *UsageLedger) *MaintenanceService {
	return &MaintenanceService{
		db:            db,
		bicycleRepo:   bicycleRepo,
		componentRepo: componentRepo,
		serviceRepo:   serviceRepo,
		ledger:        ledger,
		validator:     validator.New(),
		log:           logger.New(),
	}
}

// RecordMaintenance records one service for a bicycle. Either every row it
// touches commits or none do. Validation and not-found failures pass
// through; anything unexpected is logged and re-signalled as an opaque
// internal failure after rollback.
func (s *MaintenanceService) RecordMaintenance(bicycleID uuid.UUID, opts MaintenanceOptions) (*models.Service, error) {
	if err := s.validateOptions(&opts); err != nil {
		return nil, err
	}

	var serviceID uuid.UUID
	err := s.db.Transaction(func(tx *gorm.DB) error {
		bicycle, err := s.bicycleRepo.WithTx(tx).LockByID(bicycleID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrBicycleNotFound
			}
			return err
		}

		now := time.Now()
		serviceType := models.ServiceTypePartialReplacement
		if opts.FullService {
			serviceType = models.ServiceTypeFullService
		}

		svc := &models.Service{
			BicycleID:   bicycle.ID,
			PerformedAt: now,
			ServiceType: serviceType,
			Notes:       opts.Notes,
		}
		if err := s.serviceRepo.WithTx(tx).Create(svc); err != nil {
			return apperrors.NewValidationError("Failed to create service record", err.Error())
		}
		serviceID = svc.ID

		if err := s.ledger.WithTx(tx).Reset(bicycle, opts.Notes); err != nil {
			return s.asValidation("Failed to record bicycle maintenance", err)
		}

		if opts.FullService {
			for _, slot := range models.AllComponentTypes() {
				spec := ComponentSpec{Brand: opts.DefaultBrand, Model: opts.DefaultModel}
				if exception, ok := opts.Exceptions[slot]; ok {
					spec = exception
				}
				if err := s.replaceSlot(tx, bicycle, svc, slot, SpecList{spec}, now); err != nil {
					return err
				}
			}
		} else {
			for _, slot := range models.AllComponentTypes() {
				specs, ok := opts.Replacements[slot]
				if !ok {
					continue
				}
				if err := s.replaceSlot(tx, bicycle, svc, slot, specs, now); err != nil {
					return err
				}
			}
		}

		for _, action := range opts.MaintenanceActions {
			if err := s.serviceRepo.WithTx(tx).CreateAction(&models.MaintenanceAction{
				ServiceID:       svc.ID,
				ComponentType:   action.ComponentType,
				ActionPerformed: action.ActionPerformed,
				Notes:           action.Notes,
			}); err != nil {
				return apperrors.NewValidationError("Failed to record maintenance action", err.Error())
			}
		}

		return nil
	})
	if err != nil {
		if apperrors.IsValidation(err) || apperrors.IsNotFound(err) {
			return nil, err
		}
		s.log.WithError(err).WithField("bicycle_id", bicycleID).Error("failed to record maintenance")
		return nil, apperrors.NewInternalError("An unexpected error occurred during maintenance recording", err)
	}

	return s.serviceRepo.GetWithChildren(serviceID)
}

// validateOptions surfaces malformed input before any mutation happens
func (s *MaintenanceService) validateOptions(opts *MaintenanceOptions) error {
	if opts.Notes == "" {
		opts.Notes = defaultMaintenanceNotes
	}

	if opts.FullService {
		var missing []string
		if opts.DefaultBrand == "" {
			missing = append(missing, "Default brand is required for a full service")
		}
		if opts.DefaultModel == "" {
			missing = append(missing, "Default model is required for a full service")
		}
		if len(missing) > 0 {
			return apperrors.NewValidationError(missing[0], missing...)
		}
		opts.DefaultBrand = normalizeName(opts.DefaultBrand)
		opts.DefaultModel = normalizeName(opts.DefaultModel)
		defaults := ComponentSpec{Brand: opts.DefaultBrand, Model: opts.DefaultModel}
		if err := s.validator.Struct(&defaults); err != nil {
			return apperrors.NewValidationError("Invalid default replacement spec", validationDetails(err)...)
		}
		for slot, spec := range opts.Exceptions {
			if !slot.IsValid() {
				return apperrors.NewValidationError(fmt.Sprintf("Invalid component type: %s", slot))
			}
			if err := s.validateSpec(slot, &spec); err != nil {
				return err
			}
			opts.Exceptions[slot] = spec
		}
	}

	for slot, specs := range opts.Replacements {
		if !slot.IsValid() {
			return apperrors.NewValidationError(fmt.Sprintf("Invalid component type: %s", slot))
		}
		if len(specs) == 0 {
			return apperrors.NewValidationError(
				fmt.Sprintf("Replacement spec for %s must not be empty", slot),
			)
		}
		slotCfg := slot.Slot()
		if !slotCfg.Plural && len(specs) > 1 {
			return apperrors.NewValidationError(
				fmt.Sprintf("Slot %s holds a single component, got %d replacement specs", slot, len(specs)),
			)
		}
		if len(specs) > slotCfg.MaxActive {
			return apperrors.NewValidationError(
				fmt.Sprintf("Slot %s holds at most %d components, got %d replacement specs", slot, slotCfg.MaxActive, len(specs)),
			)
		}
		for i := range specs {
			if err := s.validateSpec(slot, &specs[i]); err != nil {
				return err
			}
		}
	}

	for i, action := range opts.MaintenanceActions {
		if action.ComponentType == "" || action.ActionPerformed == "" {
			return apperrors.NewValidationError(
				"Maintenance actions must include component_type and action_performed",
				fmt.Sprintf("maintenance action %d is incomplete", i+1),
			)
		}
	}

	return nil
}

// validateSpec normalizes a replacement spec and holds it to the same
// brand and model rules as component creation
func (s *MaintenanceService) validateSpec(slot models.ComponentType, spec *ComponentSpec) error {
	spec.Brand = normalizeName(spec.Brand)
	spec.Model = normalizeName(spec.Model)
	if spec.Brand == "" || spec.Model == "" {
		return apperrors.NewValidationError(
			fmt.Sprintf("Replacement spec for %s must include brand and model", slot),
		)
	}
	if err := s.validator.Struct(spec); err != nil {
		return apperrors.NewValidationError(
			fmt.Sprintf("Invalid replacement spec for %s", slot), validationDetails(err)...,
		)
	}
	return nil
}

// replaceSlot retires every active component in the slot, snapshots them,
// creates the replacements, and writes exactly one audit record for the
// slot.
func (s *MaintenanceService) replaceSlot(tx *gorm.DB, bicycle *models.Bicycle, svc *models.Service, slot models.ComponentType, specs SpecList, now time.Time) error {
	components := s.componentRepo.WithTx(tx)

	actives, err := components.GetActiveByBicycleAndType(bicycle.ID, slot)
	if err != nil {
		return err
	}

	oldSpecs, err := snapshotSpecs(actives, slot)
	if err != nil {
		return err
	}

	for i := range actives {
		if err := components.Retire(&actives[i], now); err != nil {
			return s.asValidation(fmt.Sprintf("Failed to retire %s", slot), err)
		}
	}

	units := replacementUnits(slot, len(actives), len(specs))
	newComponents := make([]models.Component, 0, units)
	for i := 0; i < units; i++ {
		spec := specs[0]
		if len(specs) == units {
			spec = specs[i]
		}
		component := models.Component{
			BicycleID:     bicycle.ID,
			ComponentType: slot,
			Brand:         spec.Brand,
			Model:         spec.Model,
			Kilometres:    0,
			Status:        models.ComponentStatusActive,
		}
		if err := components.Create(&component); err != nil {
			return s.asValidation(fmt.Sprintf("Failed to create replacement %s", slot), err)
		}
		newComponents = append(newComponents, component)
	}

	newSpecs, err := snapshotSpecs(newComponents, slot)
	if err != nil {
		return err
	}

	return s.serviceRepo.WithTx(tx).CreateReplacement(&models.ComponentReplacement{
		ServiceID:         svc.ID,
		ComponentType:     slot,
		OldComponentSpecs: oldSpecs,
		NewComponentSpecs: newSpecs,
		Reason:            fmt.Sprintf("Replaced during %s", svc.ServiceType),
	})
}

// replacementUnits decides how many new components a slot receives:
// singular slots always get one; plural slots match the prior active
// count, falling back to the explicit spec count and finally the slot
// maximum when the slot was empty.
func replacementUnits(slot models.ComponentType, activeCount, specCount int) int {
	cfg := slot.Slot()
	if !cfg.Plural {
		return 1
	}
	if activeCount > 0 {
		return activeCount
	}
	if specCount > 1 {
		return specCount
	}
	return cfg.MaxActive
}

// snapshotSpecs serializes components as a replacement audit snapshot:
// a single object for singular slots, an array for plural slots, null for
// an empty set.
func snapshotSpecs(components []models.Component, slot models.ComponentType) (json.RawMessage, error) {
	if len(components) == 0 {
		return nil, nil
	}

	snapshots := make([]models.ComponentSpecSnapshot, len(components))
	for i, c := range components {
		snapshots[i] = models.ComponentSpecSnapshot{
			Brand:      c.Brand,
			Model:      c.Model,
			Kilometres: c.Kilometres,
			Status:     string(c.Status),
		}
	}

	if !slot.Slot().Plural {
		return json.Marshal(snapshots[0])
	}
	return json.Marshal(snapshots)
}

// asValidation converts an error into a validation failure unless it is
// already one of the typed failures
func (s *MaintenanceService) asValidation(message string, err error) error {
	if apperrors.IsValidation(err) || apperrors.IsNotFound(err) {
		return err
	}
	return apperrors.NewValidationError(message, err.Error())
}
