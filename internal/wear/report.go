package wear

import (
	"fmt"
	"math"
	"time"

	"bicycle-maintenance-backend/internal/database/models"
)

// ComponentState is one component's wear reading against its limit
type ComponentState struct {
	Kilometres     float64 `json:"kilometres"`
	WearLimit      int     `json:"wear_limit"`
	WearPercentage int     `json:"wear_percentage"`
}

// BicycleState summarises the bicycle itself within a status report
type BicycleState struct {
	Kilometres         float64           `json:"kilometres"`
	LifetimeKilometres float64           `json:"lifetime_kilometres"`
	LastMaintenance    *time.Time        `json:"last_maintenance,omitempty"`
	RidingEnvironment  map[string]string `json:"riding_environment"`
}

// StatusReport combines the bicycle summary with per-slot wear readings
type StatusReport struct {
	Bicycle   BicycleState     `json:"bicycle"`
	Chain     *ComponentState  `json:"chain"`
	Cassette  *ComponentState  `json:"cassette"`
	Chainring *ComponentState  `json:"chainring"`
	Tires     []ComponentState `json:"tires"`
	Brakepads []ComponentState `json:"brakepads"`
}

// Recommendations lists human-readable maintenance advice for every active
// component that has exceeded its adjusted wear limit. The bicycle's
// components must be preloaded.
func Recommendations(b *models.Bicycle, limits Limits) []string {
	recs := []string{}

	if c := firstActive(b, models.ComponentTypeChain); c != nil && int(c.Kilometres) > limits[models.ComponentTypeChain] {
		recs = append(recs, "Chain needs replacement")
	}
	if c := firstActive(b, models.ComponentTypeCassette); c != nil && int(c.Kilometres) > limits[models.ComponentTypeCassette] {
		recs = append(recs, "Cassette needs inspection")
	}
	if c := firstActive(b, models.ComponentTypeChainring); c != nil && int(c.Kilometres) > limits[models.ComponentTypeChainring] {
		recs = append(recs, "Chainring needs inspection")
	}
	for i, tire := range b.ActiveComponents(models.ComponentTypeTire) {
		if int(tire.Kilometres) > limits[models.ComponentTypeTire] {
			recs = append(recs, fmt.Sprintf("Tire %d needs replacement", i+1))
		}
	}
	for i, pad := range b.ActiveComponents(models.ComponentTypeBrakepad) {
		if int(pad.Kilometres) > limits[models.ComponentTypeBrakepad] {
			recs = append(recs, fmt.Sprintf("Brake pad %d needs inspection", i+1))
		}
	}

	return recs
}

// Status builds the full wear status report for a bicycle. Lifetime
// distance and last maintenance come from the usage ledger and are passed
// in by the caller.
func Status(b *models.Bicycle, limits Limits, lifetime float64, lastMaintenance *time.Time) StatusReport {
	report := StatusReport{
		Bicycle: BicycleState{
			Kilometres:         b.Kilometres,
			LifetimeKilometres: lifetime,
			LastMaintenance:    lastMaintenance,
			RidingEnvironment:  EnvironmentFor(b).Describe(),
		},
		Chain:     singularState(b, models.ComponentTypeChain, limits),
		Cassette:  singularState(b, models.ComponentTypeCassette, limits),
		Chainring: singularState(b, models.ComponentTypeChainring, limits),
		Tires:     pluralState(b, models.ComponentTypeTire, limits),
		Brakepads: pluralState(b, models.ComponentTypeBrakepad, limits),
	}
	return report
}

func firstActive(b *models.Bicycle, t models.ComponentType) *models.Component {
	active := b.ActiveComponents(t)
	if len(active) == 0 {
		return nil
	}
	return active[0]
}

func componentState(c *models.Component, limit int) ComponentState {
	return ComponentState{
		Kilometres:     c.Kilometres,
		WearLimit:      limit,
		WearPercentage: int(math.Round(c.Kilometres / float64(limit) * 100)),
	}
}

func singularState(b *models.Bicycle, t models.ComponentType, limits Limits) *ComponentState {
	c := firstActive(b, t)
	if c == nil {
		return nil
	}
	state := componentState(c, limits[t])
	return &state
}

func pluralState(b *models.Bicycle, t models.ComponentType, limits Limits) []ComponentState {
	active := b.ActiveComponents(t)
	states := make([]ComponentState, 0, len(active))
	for _, c := range active {
		states = append(states, componentState(c, limits[t]))
	}
	return states
}
