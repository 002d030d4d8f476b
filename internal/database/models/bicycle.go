package models

import (
	"github.com/google/uuid"
)

// Bicycle is the root entity: it owns components, services and its own
// usage log. Destroying a bicycle cascades to all of them.
type Bicycle struct {
	BaseModel
	UserID     uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name       string    `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Brand      string    `json:"brand" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Model      string    `json:"model" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Kilometres float64   `json:"kilometres" gorm:"not null;default:0"`

	// Riding environment; empty means unset and is treated as mild
	Terrain     Terrain     `json:"terrain" gorm:"type:varchar(20)"`
	Weather     Weather     `json:"weather" gorm:"type:varchar(20)"`
	Particulate Particulate `json:"particulate" gorm:"type:varchar(20)"`

	User       User        `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Components []Component `json:"components,omitempty" gorm:"foreignKey:BicycleID;constraint:OnDelete:CASCADE"`
	Services   []Service   `json:"services,omitempty" gorm:"foreignKey:BicycleID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Bicycle
func (Bicycle) TableName() string {
	return "bicycles"
}

// TrackableRef identifies the bicycle in the usage ledger
func (b *Bicycle) TrackableRef() (TrackableType, uuid.UUID) {
	return TrackableTypeBicycle, b.ID
}

// CurrentDistance returns the cumulative distance since last maintenance
func (b *Bicycle) CurrentDistance() float64 {
	return b.Kilometres
}

// SetDistance updates the in-memory distance counter
func (b *Bicycle) SetDistance(v float64) {
	b.Kilometres = v
}

// ActiveComponents filters the loaded components down to active ones of
// the given type. Components must have been preloaded.
func (b *Bicycle) ActiveComponents(t ComponentType) []*Component {
	var out []*Component
	for i := range b.Components {
		c := &b.Components[i]
		if c.ComponentType == t && c.Status == ComponentStatusActive {
			out = append(out, c)
		}
	}
	return out
}

// AllActiveComponents returns every active component in slot order
func (b *Bicycle) AllActiveComponents() []*Component {
	var out []*Component
	for _, t := range AllComponentTypes() {
		out = append(out, b.ActiveComponents(t)...)
	}
	return out
}
