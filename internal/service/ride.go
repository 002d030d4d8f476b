package service

import (
	"errors"
	"fmt"

	apperrors "bicycle-maintenance-backend/internal/errors"
	"bicycle-maintenance-backend/internal/logger"
	"bicycle-maintenance-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// componentRideNotes is the fixed note written to each component's log
// when a ride is propagated from its bicycle
const componentRideNotes = "Component distance updated from bicycle ride"

// RideService propagates ride distance to a bicycle and all its active
// components atomically
type RideService struct {
	db            *gorm.DB
	bicycleRepo   *repository.BicycleRepository
	componentRepo *repository.ComponentRepository
	ledger        *UsageLedger
	log           *logger.Logger
}

// NewRideService creates a new ride service
func NewRideService(db *gorm.DB, bicycleRepo *repository.BicycleRepository, componentRepo *repository.ComponentRepository, ledger *UsageLedger) *RideService {
	return &RideService{
		db:            db,
		bicycleRepo:   bicycleRepo,
		componentRepo: componentRepo,
		ledger:        ledger,
		log:           logger.New(),
	}
}

// RecordRide adds distance to the bicycle and every active component in
// one transaction. A non-positive distance is rejected before any
// persistence is touched; missing slots are skipped.
func (s *RideService) RecordRide(bicycleID uuid.UUID, distance float64, notes string) error {
	if distance <= 0 {
		return apperrors.NewValidationError(
			"Ride distance must be greater than zero",
			"The distance value must be a positive number",
		)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		bicycle, err := s.bicycleRepo.WithTx(tx).GetByID(bicycleID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrBicycleNotFound
			}
			return err
		}

		ledger := s.ledger.WithTx(tx)
		if err := ledger.Increase(bicycle, distance, notes); err != nil {
			return s.rideValidation("Failed to update bicycle kilometres", err)
		}

		actives, err := s.componentRepo.WithTx(tx).GetActiveByBicycle(bicycle.ID)
		if err != nil {
			return err
		}
		for i := range actives {
			component := &actives[i]
			if err := ledger.Increase(component, distance, componentRideNotes); err != nil {
				return s.rideValidation(
					fmt.Sprintf("Failed to update %s kilometres", component.ComponentType), err)
			}
		}

		return nil
	})
	if err != nil {
		if apperrors.IsValidation(err) || apperrors.IsNotFound(err) {
			return err
		}
		s.log.WithError(err).WithField("bicycle_id", bicycleID).Error("failed to record ride")
		return apperrors.NewInternalError("An unexpected error occurred while recording the ride", err)
	}
	return nil
}

func (s *RideService) rideValidation(message string, err error) error {
	if apperrors.IsValidation(err) || apperrors.IsNotFound(err) {
		return err
	}
	return apperrors.NewValidationError(message, err.Error())
}
