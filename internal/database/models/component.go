package models

import (
	"time"

	"github.com/google/uuid"
)

// Component is a replaceable part attached to a bicycle. A component stays
// on record after replacement; only active ones accrue distance or count
// toward slot limits.
type Component struct {
	BaseModel
	BicycleID     uuid.UUID       `json:"bicycle_id" gorm:"type:uuid;not null;index:idx_component_bicycle_type,priority:1" validate:"required"`
	ComponentType ComponentType   `json:"component_type" gorm:"type:varchar(20);not null;index:idx_component_bicycle_type,priority:2" validate:"required"`
	Brand         string          `json:"brand" gorm:"size:50;not null" validate:"required,min=2,max=50"`
	Model         string          `json:"model" gorm:"size:50;not null" validate:"required,min=1,max=50"`
	Kilometres    float64         `json:"kilometres" gorm:"not null;default:0" validate:"gte=0"`
	Status        ComponentStatus `json:"status" gorm:"type:varchar(20);not null;default:'active'"`
	ReplacedAt    *time.Time      `json:"replaced_at,omitempty"`

	Bicycle Bicycle `json:"-" gorm:"foreignKey:BicycleID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Component
func (Component) TableName() string {
	return "components"
}

// TrackableRef identifies the component in the usage ledger
func (c *Component) TrackableRef() (TrackableType, uuid.UUID) {
	return TrackableTypeComponent, c.ID
}

// CurrentDistance returns the distance accrued since installation or reset
func (c *Component) CurrentDistance() float64 {
	return c.Kilometres
}

// SetDistance updates the in-memory distance counter
func (c *Component) SetDistance(v float64) {
	c.Kilometres = v
}

// IsActive reports whether the component is still mounted
func (c *Component) IsActive() bool {
	return c.Status == ComponentStatusActive
}
