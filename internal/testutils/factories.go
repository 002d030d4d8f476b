package testutils

import (
	"fmt"
	"time"

	"bicycle-maintenance-backend/internal/database/models"

	"github.com/google/uuid"
)

// FactorySet bundles the model factories used across test suites
type FactorySet struct {
	User      *UserFactory
	Bicycle   *BicycleFactory
	Component *ComponentFactory
}

// NewFactorySet creates a FactorySet with all factories ready
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:      NewUserFactory(),
		Bicycle:   NewBicycleFactory(),
		Component: NewComponentFactory(),
	}
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: "Test Rider",
		// Unique email per instance so suites can create several users
		Email:        fmt.Sprintf("rider-%s@test.com", id.String()[:8]),
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	u := f.Create()
	u.Email = email
	return u
}

// BicycleFactory provides methods to create test Bicycle data
type BicycleFactory struct{}

// NewBicycleFactory creates a new BicycleFactory
func NewBicycleFactory() *BicycleFactory {
	return &BicycleFactory{}
}

// Create creates a test Bicycle with default values and a mild environment
func (f *BicycleFactory) Create(userID uuid.UUID) *models.Bicycle {
	return &models.Bicycle{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:      userID,
		Name:        "Commuter",
		Brand:       "Canyon",
		Model:       "Endurace CF 7",
		Kilometres:  0,
		Terrain:     models.TerrainFlat,
		Weather:     models.WeatherDry,
		Particulate: models.ParticulateLow,
	}
}

// WithEnvironment sets a custom riding environment
func (f *BicycleFactory) WithEnvironment(userID uuid.UUID, terrain models.Terrain, weather models.Weather, particulate models.Particulate) *models.Bicycle {
	b := f.Create(userID)
	b.Terrain = terrain
	b.Weather = weather
	b.Particulate = particulate
	return b
}

// ComponentFactory provides methods to create test Component data
type ComponentFactory struct{}

// NewComponentFactory creates a new ComponentFactory
func NewComponentFactory() *ComponentFactory {
	return &ComponentFactory{}
}

// Create creates an active test Component of the given type
func (f *ComponentFactory) Create(bicycleID uuid.UUID, componentType models.ComponentType) *models.Component {
	return &models.Component{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		BicycleID:     bicycleID,
		ComponentType: componentType,
		Brand:         "Shimano",
		Model:         "105",
		Kilometres:    0,
		Status:        models.ComponentStatusActive,
	}
}

// Replaced creates a retired test Component of the given type
func (f *ComponentFactory) Replaced(bicycleID uuid.UUID, componentType models.ComponentType) *models.Component {
	c := f.Create(bicycleID, componentType)
	now := time.Now()
	c.Status = models.ComponentStatusReplaced
	c.ReplacedAt = &now
	return c
}

// FullSet creates one active component for every slot of the bicycle,
// two each for the plural slots.
func (f *ComponentFactory) FullSet(bicycleID uuid.UUID) []*models.Component {
	var out []*models.Component
	for _, t := range models.AllComponentTypes() {
		for i := 0; i < t.Slot().MaxActive; i++ {
			out = append(out, f.Create(bicycleID, t))
		}
	}
	return out
}
