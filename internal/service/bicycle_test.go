package service

import (
	"testing"

	"bicycle-maintenance-backend/internal/database/models"
	apperrors "bicycle-maintenance-backend/internal/errors"
	"bicycle-maintenance-backend/internal/repository"
	"bicycle-maintenance-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// BicycleServiceTestSuite tests bicycle CRUD and wear reporting
type BicycleServiceTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	service       *BicycleService
	rides         *RideService
	maintenance   *MaintenanceService
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *BicycleServiceTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	db := suite.baseTestSuite.DB

	bicycleRepo := repository.NewBicycleRepository(db)
	componentRepo := repository.NewComponentRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	ledger := NewUsageLedger(db, repository.NewUsageLogRepository(db))

	suite.service = NewBicycleService(bicycleRepo, serviceRepo, ledger, validator.New())
	suite.rides = NewRideService(db, bicycleRepo, componentRepo, ledger)
	suite.maintenance = NewMaintenanceService(db, bicycleRepo, componentRepo, serviceRepo, ledger)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *BicycleServiceTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *BicycleServiceTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *BicycleServiceTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *BicycleServiceTestSuite) createUser() *models.User {
	user := suite.factories.User.Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(user).Error)
	return user
}

// TestCreateBicycle tests registration with an environment
func (suite *BicycleServiceTestSuite) TestCreateBicycle() {
	user := suite.createUser()

	bicycle, err := suite.service.Create(user.ID, &CreateBicycleRequest{
		Name:    "Gravel rig",
		Brand:   "Canyon",
		Model:   "Grizl",
		Terrain: models.TerrainHilly,
		Weather: models.WeatherMixed,
	})
	suite.Require().NoError(err)
	suite.NotEqual(uuid.Nil, bicycle.ID)
	suite.Equal(models.TerrainHilly, bicycle.Terrain)
	suite.Equal(0.0, bicycle.Kilometres)
}

// TestCreateRejectsUnknownEnvironment tests environment validation
func (suite *BicycleServiceTestSuite) TestCreateRejectsUnknownEnvironment() {
	user := suite.createUser()

	_, err := suite.service.Create(user.ID, &CreateBicycleRequest{
		Name:    "Gravel rig",
		Brand:   "Canyon",
		Model:   "Grizl",
		Terrain: "vertical",
	})
	suite.Require().Error(err)
	suite.True(apperrors.IsValidation(err))
	suite.Contains(err.Error(), "terrain must be one of flat, hilly, mountainous")
}

// TestGetForUserScopesToOwner tests that other users' bicycles surface as
// not found
func (suite *BicycleServiceTestSuite) TestGetForUserScopesToOwner() {
	owner := suite.createUser()
	stranger := suite.createUser()
	bicycle := suite.factories.Bicycle.Create(owner.ID)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(bicycle).Error)

	found, err := suite.service.GetForUser(bicycle.ID, owner.ID)
	suite.NoError(err)
	suite.Equal(bicycle.ID, found.ID)

	_, err = suite.service.GetForUser(bicycle.ID, stranger.ID)
	suite.Require().Error(err)
	suite.True(apperrors.IsNotFound(err))
}

// TestUpdateEnvironmentChangesWearLimits tests that moving a bicycle into a
// harsher environment tightens its limits
func (suite *BicycleServiceTestSuite) TestUpdateEnvironmentChangesWearLimits() {
	user := suite.createUser()
	bicycle := suite.factories.Bicycle.Create(user.ID)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(bicycle).Error)

	mild, err := suite.service.WearLimits(bicycle.ID, user.ID)
	suite.Require().NoError(err)
	suite.Equal(3500, mild[models.ComponentTypeChain])

	terrain := models.TerrainHilly
	_, err = suite.service.Update(bicycle.ID, user.ID, &UpdateBicycleRequest{Terrain: &terrain})
	suite.Require().NoError(err)

	hilly, err := suite.service.WearLimits(bicycle.ID, user.ID)
	suite.Require().NoError(err)
	suite.Equal(2917, hilly[models.ComponentTypeChain])
}

// TestComponentStatusReflectsLedger tests that the status report carries
// current distance, lifetime distance and the last maintenance timestamp
func (suite *BicycleServiceTestSuite) TestComponentStatusReflectsLedger() {
	user := suite.createUser()
	bicycle := suite.factories.Bicycle.Create(user.ID)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(bicycle).Error)
	chain := suite.factories.Component.Create(bicycle.ID, models.ComponentTypeChain)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(chain).Error)

	suite.Require().NoError(suite.rides.RecordRide(bicycle.ID, 500, ""))
	_, err := suite.maintenance.RecordMaintenance(bicycle.ID, MaintenanceOptions{Notes: "tune"})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.rides.RecordRide(bicycle.ID, 200, ""))

	report, err := suite.service.ComponentStatus(bicycle.ID, user.ID)
	suite.Require().NoError(err)

	suite.Equal(200.0, report.Bicycle.Kilometres)
	suite.Equal(700.0, report.Bicycle.LifetimeKilometres)
	suite.NotNil(report.Bicycle.LastMaintenance)
	suite.Equal("Flat terrain", report.Bicycle.RidingEnvironment["terrain"])

	suite.Require().NotNil(report.Chain)
	suite.Equal(3500, report.Chain.WearLimit)
	suite.Nil(report.Cassette)
	suite.Empty(report.Tires)
}

// TestRecommendationsForWornChain tests the worn-component advice path end
// to end
func (suite *BicycleServiceTestSuite) TestRecommendationsForWornChain() {
	user := suite.createUser()
	bicycle := suite.factories.Bicycle.Create(user.ID)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(bicycle).Error)
	chain := suite.factories.Component.Create(bicycle.ID, models.ComponentTypeChain)
	chain.Kilometres = 3600
	suite.Require().NoError(suite.baseTestSuite.DB.Create(chain).Error)

	recs, err := suite.service.Recommendations(bicycle.ID, user.ID)
	suite.Require().NoError(err)
	suite.Equal([]string{"Chain needs replacement"}, recs)
}

// TestReplacementHistory tests the per-slot replacement audit trail
func (suite *BicycleServiceTestSuite) TestReplacementHistory() {
	user := suite.createUser()
	bicycle := suite.factories.Bicycle.Create(user.ID)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(bicycle).Error)
	chain := suite.factories.Component.Create(bicycle.ID, models.ComponentTypeChain)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(chain).Error)

	_, err := suite.maintenance.RecordMaintenance(bicycle.ID, MaintenanceOptions{
		Replacements: map[models.ComponentType]SpecList{
			models.ComponentTypeChain: {{Brand: "KMC", Model: "X11"}},
		},
	})
	suite.Require().NoError(err)

	history, err := suite.service.ReplacementHistory(bicycle.ID, user.ID, models.ComponentTypeChain)
	suite.Require().NoError(err)
	suite.Require().Len(history, 1)
	suite.Equal(models.ComponentTypeChain, history[0].ComponentType)

	_, err = suite.service.ReplacementHistory(bicycle.ID, user.ID, "saddle")
	suite.Require().Error(err)
	suite.True(apperrors.IsValidation(err))
}

// TestDeleteBicycle tests the cascading destroy through the service layer
func (suite *BicycleServiceTestSuite) TestDeleteBicycle() {
	user := suite.createUser()
	bicycle := suite.factories.Bicycle.Create(user.ID)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(bicycle).Error)
	chain := suite.factories.Component.Create(bicycle.ID, models.ComponentTypeChain)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(chain).Error)
	suite.Require().NoError(suite.rides.RecordRide(bicycle.ID, 10, ""))

	suite.Require().NoError(suite.service.Delete(bicycle.ID, user.ID))

	_, err := suite.service.GetForUser(bicycle.ID, user.ID)
	suite.Require().Error(err)
	suite.True(apperrors.IsNotFound(err))

	var logCount int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.UsageLogEntry{}).Count(&logCount).Error)
	suite.Equal(int64(0), logCount)
}

// TestBicycleServiceTestSuite runs the test suite
func TestBicycleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BicycleServiceTestSuite))
}
