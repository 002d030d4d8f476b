package wear_test

import (
	"testing"

	"bicycle-maintenance-backend/internal/database/models"
	"bicycle-maintenance-backend/internal/wear"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mildEnvironment() wear.Environment {
	return wear.Environment{
		Terrain:     models.TerrainFlat,
		Weather:     models.WeatherDry,
		Particulate: models.ParticulateLow,
	}
}

func harshEnvironment() wear.Environment {
	return wear.Environment{
		Terrain:     models.TerrainMountainous,
		Weather:     models.WeatherWet,
		Particulate: models.ParticulateHigh,
	}
}

func TestAdjustedLimits_MildEqualsBase(t *testing.T) {
	limits := wear.AdjustedLimits(mildEnvironment())

	assert.Equal(t, 3500, limits[models.ComponentTypeChain])
	assert.Equal(t, 10000, limits[models.ComponentTypeCassette])
	assert.Equal(t, 18000, limits[models.ComponentTypeChainring])
	assert.Equal(t, 5500, limits[models.ComponentTypeTire])
	assert.Equal(t, 4000, limits[models.ComponentTypeBrakepad])
}

func TestAdjustedLimits_UnsetEqualsMild(t *testing.T) {
	assert.Equal(t, wear.AdjustedLimits(mildEnvironment()), wear.AdjustedLimits(wear.Environment{}))
}

func TestAdjustedLimits_InvalidValuesTreatedAsMild(t *testing.T) {
	env := wear.Environment{
		Terrain:     models.Terrain("volcanic"),
		Weather:     models.Weather("hailstorm"),
		Particulate: models.Particulate("extreme"),
	}
	assert.Equal(t, wear.AdjustedLimits(mildEnvironment()), wear.AdjustedLimits(env))
}

func TestAdjustedLimits_HarshestEnvironment(t *testing.T) {
	limits := wear.AdjustedLimits(harshEnvironment())

	// chain 3500/(1.4*1.5*1.6), cassette 10000/(1.6*1.3*1.4),
	// chainring 18000/(1.4*1.2*1.3), tire 5500/(1.2*1.2), brakepad 4000/(2.0*1.5*1.3)
	assert.Equal(t, 1042, limits[models.ComponentTypeChain])
	assert.Equal(t, 3434, limits[models.ComponentTypeCassette])
	assert.Equal(t, 8242, limits[models.ComponentTypeChainring])
	assert.Equal(t, 3819, limits[models.ComponentTypeTire])
	assert.Equal(t, 1026, limits[models.ComponentTypeBrakepad])
}

func TestAdjustedLimits_AlwaysPositive(t *testing.T) {
	terrains := []models.Terrain{"", models.TerrainFlat, models.TerrainHilly, models.TerrainMountainous}
	weathers := []models.Weather{"", models.WeatherDry, models.WeatherMixed, models.WeatherWet}
	particulates := []models.Particulate{"", models.ParticulateLow, models.ParticulateMedium, models.ParticulateHigh}

	mild := wear.AdjustedLimits(mildEnvironment())
	for _, terrain := range terrains {
		for _, weather := range weathers {
			for _, particulate := range particulates {
				env := wear.Environment{Terrain: terrain, Weather: weather, Particulate: particulate}
				limits := wear.AdjustedLimits(env)
				require.Len(t, limits, 5)
				for componentType, limit := range limits {
					assert.Greater(t, limit, 0, "limit for %s in %+v", componentType, env)
					assert.LessOrEqual(t, limit, mild[componentType])
				}
			}
		}
	}
}

func TestAdjustedLimits_HarshStrictlyLowerThanMild(t *testing.T) {
	mild := wear.AdjustedLimits(mildEnvironment())
	harsh := wear.AdjustedLimits(harshEnvironment())

	for _, componentType := range models.AllComponentTypes() {
		assert.Less(t, harsh[componentType], mild[componentType], "component %s", componentType)
	}
}

func TestWearMultipliers_HillyTerrainHitsBrakepadsHardest(t *testing.T) {
	mults := wear.WearMultipliers(wear.Environment{Terrain: models.TerrainHilly})

	assert.InDelta(t, 1.5, mults[models.ComponentTypeBrakepad], 1e-9)
	assert.InDelta(t, 1.1, mults[models.ComponentTypeTire], 1e-9)
	assert.Greater(t, mults[models.ComponentTypeBrakepad], mults[models.ComponentTypeChain])
}

func TestWearMultipliers_WetWeatherSparesTires(t *testing.T) {
	mults := wear.WearMultipliers(wear.Environment{Weather: models.WeatherWet})

	assert.InDelta(t, 1.0, mults[models.ComponentTypeTire], 1e-9)
	assert.InDelta(t, 1.5, mults[models.ComponentTypeChain], 1e-9)
}

func TestEnvironmentDescribe(t *testing.T) {
	desc := harshEnvironment().Describe()

	assert.Equal(t, "Mountainous terrain", desc["terrain"])
	assert.Equal(t, "Wet conditions", desc["weather"])
	assert.Equal(t, "High particulate", desc["particulate"])

	unknown := wear.Environment{}.Describe()
	assert.Equal(t, "Unknown terrain", unknown["terrain"])
}

func TestRecommendations(t *testing.T) {
	bike := &models.Bicycle{
		Components: []models.Component{
			{ComponentType: models.ComponentTypeChain, Status: models.ComponentStatusActive, Kilometres: 4000},
			{ComponentType: models.ComponentTypeCassette, Status: models.ComponentStatusActive, Kilometres: 500},
			{ComponentType: models.ComponentTypeTire, Status: models.ComponentStatusActive, Kilometres: 6000},
			{ComponentType: models.ComponentTypeTire, Status: models.ComponentStatusActive, Kilometres: 100},
			{ComponentType: models.ComponentTypeBrakepad, Status: models.ComponentStatusReplaced, Kilometres: 9000},
		},
	}
	recs := wear.Recommendations(bike, wear.AdjustedLimits(wear.Environment{}))

	assert.Equal(t, []string{"Chain needs replacement", "Tire 1 needs replacement"}, recs)
}

func TestStatus(t *testing.T) {
	bike := &models.Bicycle{
		Kilometres: 250,
		Terrain:    models.TerrainHilly,
		Components: []models.Component{
			{ComponentType: models.ComponentTypeChain, Status: models.ComponentStatusActive, Kilometres: 1750},
			{ComponentType: models.ComponentTypeTire, Status: models.ComponentStatusActive, Kilometres: 1000},
			{ComponentType: models.ComponentTypeTire, Status: models.ComponentStatusActive, Kilometres: 1000},
		},
	}
	limits := wear.AdjustedLimits(wear.EnvironmentFor(bike))
	report := wear.Status(bike, limits, 1234, nil)

	require.NotNil(t, report.Chain)
	// chain limit hilly: 3500/1.2 = 2917; 1750/2917 = 60%
	assert.Equal(t, 2917, report.Chain.WearLimit)
	assert.Equal(t, 60, report.Chain.WearPercentage)
	assert.Nil(t, report.Cassette)
	assert.Len(t, report.Tires, 2)
	assert.Empty(t, report.Brakepads)
	assert.Equal(t, 250.0, report.Bicycle.Kilometres)
	assert.Equal(t, 1234.0, report.Bicycle.LifetimeKilometres)
	assert.Equal(t, "Hilly terrain", report.Bicycle.RidingEnvironment["terrain"])
}
