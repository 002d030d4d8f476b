// Package wear computes environment-adjusted wear limits for bicycle
// components. It is pure computation: no state, no I/O, no failure modes.
// Unknown environment values behave like the mild defaults.
package wear

import (
	"math"

	"bicycle-maintenance-backend/internal/database/models"
)

// Environment is the riding environment of a bicycle. Empty fields count
// as unset and apply no multiplier.
type Environment struct {
	Terrain     models.Terrain
	Weather     models.Weather
	Particulate models.Particulate
}

// EnvironmentFor extracts the riding environment from a bicycle
func EnvironmentFor(b *models.Bicycle) Environment {
	return Environment{
		Terrain:     b.Terrain,
		Weather:     b.Weather,
		Particulate: b.Particulate,
	}
}

// Limits maps each component type to a wear-limit distance in kilometres
type Limits map[models.ComponentType]int

// Multipliers maps each component type to a wear-rate multiplier
type Multipliers map[models.ComponentType]float64

// BaseLimits returns the manufacturer-neutral wear limits in kilometres
func BaseLimits() Limits {
	return Limits{
		models.ComponentTypeChain:     3500,
		models.ComponentTypeCassette:  10000,
		models.ComponentTypeChainring: 18000,
		models.ComponentTypeTire:      5500,
		models.ComponentTypeBrakepad:  4000,
	}
}

// WearMultipliers computes the combined wear multiplier per component type
// as the product of the terrain, weather and particulate factors. Braking
// components wear fastest on severe terrain, drivetrain components suffer
// most from weather and grit; tires are comparatively insensitive.
func WearMultipliers(env Environment) Multipliers {
	m := Multipliers{
		models.ComponentTypeChain:     1.0,
		models.ComponentTypeCassette:  1.0,
		models.ComponentTypeChainring: 1.0,
		models.ComponentTypeTire:      1.0,
		models.ComponentTypeBrakepad:  1.0,
	}

	switch env.Terrain {
	case models.TerrainHilly:
		m[models.ComponentTypeChain] *= 1.2
		m[models.ComponentTypeCassette] *= 1.3
		m[models.ComponentTypeChainring] *= 1.2
		m[models.ComponentTypeTire] *= 1.1
		m[models.ComponentTypeBrakepad] *= 1.5
	case models.TerrainMountainous:
		m[models.ComponentTypeChain] *= 1.4
		m[models.ComponentTypeCassette] *= 1.6
		m[models.ComponentTypeChainring] *= 1.4
		m[models.ComponentTypeTire] *= 1.2
		m[models.ComponentTypeBrakepad] *= 2.0
	}

	switch env.Weather {
	case models.WeatherMixed:
		m[models.ComponentTypeChain] *= 1.2
		m[models.ComponentTypeCassette] *= 1.1
		m[models.ComponentTypeChainring] *= 1.1
		m[models.ComponentTypeBrakepad] *= 1.2
	case models.WeatherWet:
		m[models.ComponentTypeChain] *= 1.5
		m[models.ComponentTypeCassette] *= 1.3
		m[models.ComponentTypeChainring] *= 1.2
		m[models.ComponentTypeBrakepad] *= 1.5
	}

	switch env.Particulate {
	case models.ParticulateMedium:
		m[models.ComponentTypeChain] *= 1.3
		m[models.ComponentTypeCassette] *= 1.2
		m[models.ComponentTypeChainring] *= 1.1
		m[models.ComponentTypeTire] *= 1.1
	case models.ParticulateHigh:
		m[models.ComponentTypeChain] *= 1.6
		m[models.ComponentTypeCassette] *= 1.4
		m[models.ComponentTypeChainring] *= 1.3
		m[models.ComponentTypeTire] *= 1.2
		m[models.ComponentTypeBrakepad] *= 1.3
	}

	return m
}

// AdjustedLimits returns base limit divided by the wear multiplier per
// component type, rounded to the nearest kilometre. Multipliers are always
// >= 1 and bounded, so every adjusted limit is a strictly positive integer.
func AdjustedLimits(env Environment) Limits {
	base := BaseLimits()
	mults := WearMultipliers(env)

	limits := make(Limits, len(base))
	for t, b := range base {
		limits[t] = int(math.Round(float64(b) / mults[t]))
	}
	return limits
}

// TerrainDescription returns a human-readable description of the terrain
func TerrainDescription(t models.Terrain) string {
	switch t {
	case models.TerrainFlat:
		return "Flat terrain"
	case models.TerrainHilly:
		return "Hilly terrain"
	case models.TerrainMountainous:
		return "Mountainous terrain"
	default:
		return "Unknown terrain"
	}
}

// WeatherDescription returns a human-readable description of the weather
func WeatherDescription(w models.Weather) string {
	switch w {
	case models.WeatherDry:
		return "Dry conditions"
	case models.WeatherMixed:
		return "Mixed weather conditions"
	case models.WeatherWet:
		return "Wet conditions"
	default:
		return "Unknown weather conditions"
	}
}

// ParticulateDescription returns a human-readable description of grit exposure
func ParticulateDescription(p models.Particulate) string {
	switch p {
	case models.ParticulateLow:
		return "Low particulate"
	case models.ParticulateMedium:
		return "Medium particulate"
	case models.ParticulateHigh:
		return "High particulate"
	default:
		return "Unknown particulate level"
	}
}

// Describe renders the environment as human-readable attribute descriptions
func (e Environment) Describe() map[string]string {
	return map[string]string{
		"terrain":     TerrainDescription(e.Terrain),
		"weather":     WeatherDescription(e.Weather),
		"particulate": ParticulateDescription(e.Particulate),
	}
}
