package models

// ComponentType identifies a replaceable component slot on a bicycle
type ComponentType string

const (
	ComponentTypeChain     ComponentType = "chain"
	ComponentTypeCassette  ComponentType = "cassette"
	ComponentTypeChainring ComponentType = "chainring"
	ComponentTypeTire      ComponentType = "tire"
	ComponentTypeBrakepad  ComponentType = "brakepad"
)

// AllComponentTypes lists every slot in the order used for full services
func AllComponentTypes() []ComponentType {
	return []ComponentType{
		ComponentTypeChain,
		ComponentTypeCassette,
		ComponentTypeChainring,
		ComponentTypeTire,
		ComponentTypeBrakepad,
	}
}

// IsValid checks if the ComponentType is valid
func (t ComponentType) IsValid() bool {
	switch t {
	case ComponentTypeChain, ComponentTypeCassette, ComponentTypeChainring, ComponentTypeTire, ComponentTypeBrakepad:
		return true
	}
	return false
}

// SlotConfig describes how many active components a slot may hold
type SlotConfig struct {
	Plural    bool
	MaxActive int
}

// slot limits are domain constants; tires and brakepads come in pairs
var slotConfigs = map[ComponentType]SlotConfig{
	ComponentTypeChain:     {Plural: false, MaxActive: 1},
	ComponentTypeCassette:  {Plural: false, MaxActive: 1},
	ComponentTypeChainring: {Plural: false, MaxActive: 1},
	ComponentTypeTire:      {Plural: true, MaxActive: 2},
	ComponentTypeBrakepad:  {Plural: true, MaxActive: 2},
}

// Slot returns the slot configuration for the component type
func (t ComponentType) Slot() SlotConfig {
	return slotConfigs[t]
}

// ComponentStatus represents the lifecycle status of a component
type ComponentStatus string

const (
	ComponentStatusActive   ComponentStatus = "active"
	ComponentStatusReplaced ComponentStatus = "replaced"
)

// IsValid checks if the ComponentStatus is valid
func (s ComponentStatus) IsValid() bool {
	return s == ComponentStatusActive || s == ComponentStatusReplaced
}

// ServiceType classifies a recorded maintenance service
type ServiceType string

const (
	ServiceTypeFullService        ServiceType = "full_service"
	ServiceTypePartialReplacement ServiceType = "partial_replacement"
	ServiceTypeTuneUp             ServiceType = "tune_up"
	ServiceTypeEmergencyRepair    ServiceType = "emergency_repair"
	ServiceTypeInspection         ServiceType = "inspection"
)

// IsValid checks if the ServiceType is valid
func (s ServiceType) IsValid() bool {
	switch s {
	case ServiceTypeFullService, ServiceTypePartialReplacement, ServiceTypeTuneUp, ServiceTypeEmergencyRepair, ServiceTypeInspection:
		return true
	}
	return false
}

// UsageEventType classifies a usage log entry
type UsageEventType string

const (
	UsageEventIncrease    UsageEventType = "increase"
	UsageEventMaintenance UsageEventType = "maintenance"
)

// Terrain describes the terrain a bicycle is ridden on
type Terrain string

const (
	TerrainFlat        Terrain = "flat"
	TerrainHilly       Terrain = "hilly"
	TerrainMountainous Terrain = "mountainous"
)

// Weather describes the typical riding weather
type Weather string

const (
	WeatherDry   Weather = "dry"
	WeatherMixed Weather = "mixed"
	WeatherWet   Weather = "wet"
)

// Particulate describes dust/grit exposure while riding
type Particulate string

const (
	ParticulateLow    Particulate = "low"
	ParticulateMedium Particulate = "medium"
	ParticulateHigh   Particulate = "high"
)

// IsValid accepts the empty value; unset environment attributes are allowed
func (t Terrain) IsValid() bool {
	switch t {
	case "", TerrainFlat, TerrainHilly, TerrainMountainous:
		return true
	}
	return false
}

func (w Weather) IsValid() bool {
	switch w {
	case "", WeatherDry, WeatherMixed, WeatherWet:
		return true
	}
	return false
}

func (p Particulate) IsValid() bool {
	switch p {
	case "", ParticulateLow, ParticulateMedium, ParticulateHigh:
		return true
	}
	return false
}
