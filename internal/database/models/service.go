package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Service is one maintenance event recorded against a bicycle. It is
// immutable after creation except through its owned children.
type Service struct {
	BaseModel
	BicycleID   uuid.UUID   `json:"bicycle_id" gorm:"type:uuid;not null;index" validate:"required"`
	PerformedAt time.Time   `json:"performed_at" gorm:"not null" validate:"required"`
	ServiceType ServiceType `json:"service_type" gorm:"type:varchar(30);not null" validate:"required"`
	Notes       string      `json:"notes" gorm:"type:text;not null" validate:"required"`

	Bicycle               Bicycle                `json:"-" gorm:"foreignKey:BicycleID;constraint:OnDelete:CASCADE"`
	ComponentReplacements []ComponentReplacement `json:"component_replacements,omitempty" gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
	MaintenanceActions    []MaintenanceAction    `json:"maintenance_actions,omitempty" gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Service
func (Service) TableName() string {
	return "services"
}

// IsFullService reports whether every slot was replaced in this service
func (s *Service) IsFullService() bool {
	return s.ServiceType == ServiceTypeFullService
}

// ComponentsReplaced lists the distinct component types replaced
func (s *Service) ComponentsReplaced() []ComponentType {
	seen := map[ComponentType]bool{}
	var out []ComponentType
	for _, r := range s.ComponentReplacements {
		if !seen[r.ComponentType] {
			seen[r.ComponentType] = true
			out = append(out, r.ComponentType)
		}
	}
	return out
}

// ComponentReplacement is the audit record for one replaced slot. Replacing
// both tires in one service yields a single record whose spec snapshots are
// arrays of two.
type ComponentReplacement struct {
	BaseModel
	ServiceID         uuid.UUID       `json:"service_id" gorm:"type:uuid;not null;index" validate:"required"`
	ComponentType     ComponentType   `json:"component_type" gorm:"type:varchar(20);not null;index" validate:"required"`
	OldComponentSpecs json.RawMessage `json:"old_component_specs,omitempty" gorm:"type:jsonb"`
	NewComponentSpecs json.RawMessage `json:"new_component_specs" gorm:"type:jsonb;not null" validate:"required"`
	Reason            string          `json:"reason" gorm:"type:text;not null" validate:"required"`

	Service Service `json:"-" gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ComponentReplacement
func (ComponentReplacement) TableName() string {
	return "component_replacements"
}

// ComponentSpecSnapshot captures a component's identity at replacement time
type ComponentSpecSnapshot struct {
	Brand      string  `json:"brand"`
	Model      string  `json:"model"`
	Kilometres float64 `json:"kilometres"`
	Status     string  `json:"status"`
}

// MaintenanceAction records service activity that did not replace a
// component, e.g. cleaning or adjustment.
type MaintenanceAction struct {
	BaseModel
	ServiceID       uuid.UUID `json:"service_id" gorm:"type:uuid;not null;index" validate:"required"`
	ComponentType   string    `json:"component_type" gorm:"size:50;not null" validate:"required"`
	ActionPerformed string    `json:"action_performed" gorm:"type:text;not null" validate:"required"`
	Notes           string    `json:"notes" gorm:"type:text"`

	Service Service `json:"-" gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for MaintenanceAction
func (MaintenanceAction) TableName() string {
	return "maintenance_actions"
}
