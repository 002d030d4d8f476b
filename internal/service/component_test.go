package service

import (
	"testing"
	"time"

	"bicycle-maintenance-backend/internal/database/models"
	apperrors "bicycle-maintenance-backend/internal/errors"
	"bicycle-maintenance-backend/internal/repository"
	"bicycle-maintenance-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// ComponentServiceTestSuite tests the component lifecycle against a real
// database
type ComponentServiceTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	service       *ComponentService
	logs          *repository.UsageLogRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *ComponentServiceTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	db := suite.baseTestSuite.DB

	suite.logs = repository.NewUsageLogRepository(db)
	suite.service = NewComponentService(
		db,
		repository.NewComponentRepository(db),
		repository.NewBicycleRepository(db),
		NewUsageLedger(db, suite.logs),
		validator.New(),
	)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ComponentServiceTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ComponentServiceTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ComponentServiceTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ComponentServiceTestSuite) createBicycle() *models.Bicycle {
	user := suite.factories.User.Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(user).Error)
	bicycle := suite.factories.Bicycle.Create(user.ID)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(bicycle).Error)
	return bicycle
}

// TestCreateComponent tests mounting a component on an empty slot
func (suite *ComponentServiceTestSuite) TestCreateComponent() {
	bicycle := suite.createBicycle()

	component, err := suite.service.Create(bicycle.ID, &CreateComponentRequest{
		ComponentType: models.ComponentTypeChain,
		Brand:         "Shimano",
		Model:         "CN-HG701",
	})
	suite.Require().NoError(err)
	suite.NotEqual(uuid.Nil, component.ID)
	suite.Equal(models.ComponentStatusActive, component.Status)
	suite.Equal(0.0, component.Kilometres)
	suite.Nil(component.ReplacedAt)
}

// TestCreateNormalizesNames tests whitespace normalization on brand/model
func (suite *ComponentServiceTestSuite) TestCreateNormalizesNames() {
	bicycle := suite.createBicycle()

	component, err := suite.service.Create(bicycle.ID, &CreateComponentRequest{
		ComponentType: models.ComponentTypeCassette,
		Brand:         "  Shimano   Deore  ",
		Model:         " XT ",
	})
	suite.Require().NoError(err)
	suite.Equal("Shimano Deore", component.Brand)
	suite.Equal("XT", component.Model)
}

// TestSingularSlotLimit tests that a second active chain is rejected
func (suite *ComponentServiceTestSuite) TestSingularSlotLimit() {
	bicycle := suite.createBicycle()

	_, err := suite.service.Create(bicycle.ID, &CreateComponentRequest{
		ComponentType: models.ComponentTypeChain,
		Brand:         "Shimano",
		Model:         "CN-HG701",
	})
	suite.Require().NoError(err)

	_, err = suite.service.Create(bicycle.ID, &CreateComponentRequest{
		ComponentType: models.ComponentTypeChain,
		Brand:         "KMC",
		Model:         "X11",
	})
	suite.Require().Error(err)
	suite.True(apperrors.IsValidation(err))
	suite.Contains(err.Error(), "Bicycle already has a active chain")
}

// TestPluralSlotLimit tests that a third active tire is rejected
func (suite *ComponentServiceTestSuite) TestPluralSlotLimit() {
	bicycle := suite.createBicycle()

	for i := 0; i < 2; i++ {
		_, err := suite.service.Create(bicycle.ID, &CreateComponentRequest{
			ComponentType: models.ComponentTypeTire,
			Brand:         "Continental",
			Model:         "GP5000",
		})
		suite.Require().NoError(err)
	}

	_, err := suite.service.Create(bicycle.ID, &CreateComponentRequest{
		ComponentType: models.ComponentTypeTire,
		Brand:         "Continental",
		Model:         "GP5000",
	})
	suite.Require().Error(err)
	suite.True(apperrors.IsValidation(err))
	suite.Contains(err.Error(), "Bicycle already has 2 active tires")
}

// TestRetireThenCreateSucceeds tests that retiring frees the slot
func (suite *ComponentServiceTestSuite) TestRetireThenCreateSucceeds() {
	bicycle := suite.createBicycle()

	first, err := suite.service.Create(bicycle.ID, &CreateComponentRequest{
		ComponentType: models.ComponentTypeChain,
		Brand:         "Shimano",
		Model:         "CN-HG701",
	})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.service.Retire(first, time.Now()))
	suite.Equal(models.ComponentStatusReplaced, first.Status)
	suite.NotNil(first.ReplacedAt)

	_, err = suite.service.Create(bicycle.ID, &CreateComponentRequest{
		ComponentType: models.ComponentTypeChain,
		Brand:         "KMC",
		Model:         "X11",
	})
	suite.NoError(err)
}

// TestRetireAlreadyReplacedFails tests that retirement is terminal
func (suite *ComponentServiceTestSuite) TestRetireAlreadyReplacedFails() {
	bicycle := suite.createBicycle()
	component := suite.factories.Component.Replaced(bicycle.ID, models.ComponentTypeChain)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(component).Error)

	err := suite.service.Retire(component, time.Now())
	suite.Require().Error(err)
	suite.True(apperrors.IsValidation(err))
	suite.Contains(err.Error(), "already replaced")
}

// TestCreateInvalidType tests the component type check
func (suite *ComponentServiceTestSuite) TestCreateInvalidType() {
	bicycle := suite.createBicycle()

	_, err := suite.service.Create(bicycle.ID, &CreateComponentRequest{
		ComponentType: "saddle",
		Brand:         "Brooks",
		Model:         "B17",
	})
	suite.Require().Error(err)
	suite.True(apperrors.IsValidation(err))
	suite.Contains(err.Error(), "Invalid component type")
}

// TestCreateValidationFailure tests attribute validation
func (suite *ComponentServiceTestSuite) TestCreateValidationFailure() {
	bicycle := suite.createBicycle()

	_, err := suite.service.Create(bicycle.ID, &CreateComponentRequest{
		ComponentType: models.ComponentTypeChain,
		Brand:         "X",
		Model:         "",
	})
	suite.Require().Error(err)
	suite.True(apperrors.IsValidation(err))
}

// TestCreateBicycleNotFound tests creating against a missing bicycle
func (suite *ComponentServiceTestSuite) TestCreateBicycleNotFound() {
	_, err := suite.service.Create(uuid.New(), &CreateComponentRequest{
		ComponentType: models.ComponentTypeChain,
		Brand:         "Shimano",
		Model:         "CN-HG701",
	})
	suite.Require().Error(err)
	suite.True(apperrors.IsNotFound(err))
}

// TestListForBicycleActiveOnly tests the active filter
func (suite *ComponentServiceTestSuite) TestListForBicycleActiveOnly() {
	bicycle := suite.createBicycle()
	active := suite.factories.Component.Create(bicycle.ID, models.ComponentTypeChain)
	retired := suite.factories.Component.Replaced(bicycle.ID, models.ComponentTypeCassette)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(active).Error)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(retired).Error)

	all, err := suite.service.ListForBicycle(bicycle.ID, false)
	suite.NoError(err)
	suite.Len(all, 2)

	actives, err := suite.service.ListForBicycle(bicycle.ID, true)
	suite.NoError(err)
	suite.Require().Len(actives, 1)
	suite.Equal(active.ID, actives[0].ID)
}

// TestUpdateComponent tests partial updates
func (suite *ComponentServiceTestSuite) TestUpdateComponent() {
	bicycle := suite.createBicycle()
	component := suite.factories.Component.Create(bicycle.ID, models.ComponentTypeChain)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(component).Error)

	newBrand := "KMC"
	updated, err := suite.service.Update(component.ID, bicycle.ID, &UpdateComponentRequest{
		Brand: &newBrand,
	})
	suite.Require().NoError(err)
	suite.Equal("KMC", updated.Brand)
	suite.Equal(component.Model, updated.Model)
}

// TestUpdateKilometresAppendsLogEntry tests that editing the counter
// through the update path keeps the usage log in sync
func (suite *ComponentServiceTestSuite) TestUpdateKilometresAppendsLogEntry() {
	bicycle := suite.createBicycle()
	component := suite.factories.Component.Create(bicycle.ID, models.ComponentTypeChain)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(component).Error)

	kilometres := 250.0
	updated, err := suite.service.Update(component.ID, bicycle.ID, &UpdateComponentRequest{
		Kilometres: &kilometres,
	})
	suite.Require().NoError(err)
	suite.Equal(250.0, updated.Kilometres)

	var stored models.Component
	suite.Require().NoError(suite.baseTestSuite.DB.First(&stored, "id = ?", component.ID).Error)
	suite.Equal(250.0, stored.Kilometres)

	entries, err := suite.logs.GetByTrackable(models.TrackableTypeComponent, component.ID)
	suite.Require().NoError(err)
	suite.Require().Len(entries, 1)
	suite.Equal(models.UsageEventIncrease, entries[0].EventType)
	suite.Equal(0.0, entries[0].PreviousValue)
	suite.Equal(250.0, entries[0].NewValue)
	suite.Equal("Kilometres adjusted from 0 to 250", entries[0].Notes)
}

// TestUpdateKilometresDownwardIsLogged tests that a downward edit still
// lands in the log with its raw values
func (suite *ComponentServiceTestSuite) TestUpdateKilometresDownwardIsLogged() {
	bicycle := suite.createBicycle()
	component := suite.factories.Component.Create(bicycle.ID, models.ComponentTypeChain)
	component.Kilometres = 400
	suite.Require().NoError(suite.baseTestSuite.DB.Create(component).Error)

	kilometres := 150.0
	_, err := suite.service.Update(component.ID, bicycle.ID, &UpdateComponentRequest{
		Kilometres: &kilometres,
	})
	suite.Require().NoError(err)

	entries, err := suite.logs.GetByTrackable(models.TrackableTypeComponent, component.ID)
	suite.Require().NoError(err)
	suite.Require().Len(entries, 1)
	suite.Equal(400.0, entries[0].PreviousValue)
	suite.Equal(150.0, entries[0].NewValue)
}

// TestUpdateSameKilometresIsNoOp tests that writing back the current value
// does not grow the log
func (suite *ComponentServiceTestSuite) TestUpdateSameKilometresIsNoOp() {
	bicycle := suite.createBicycle()
	component := suite.factories.Component.Create(bicycle.ID, models.ComponentTypeChain)
	component.Kilometres = 400
	suite.Require().NoError(suite.baseTestSuite.DB.Create(component).Error)

	kilometres := 400.0
	_, err := suite.service.Update(component.ID, bicycle.ID, &UpdateComponentRequest{
		Kilometres: &kilometres,
	})
	suite.Require().NoError(err)

	entries, err := suite.logs.GetByTrackable(models.TrackableTypeComponent, component.ID)
	suite.Require().NoError(err)
	suite.Empty(entries)
}

// TestDeleteComponent tests removal together with scoping
func (suite *ComponentServiceTestSuite) TestDeleteComponent() {
	bicycle := suite.createBicycle()
	component := suite.factories.Component.Create(bicycle.ID, models.ComponentTypeChain)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(component).Error)

	// Wrong bicycle scope is a not-found
	err := suite.service.Delete(component.ID, uuid.New())
	suite.Require().Error(err)
	suite.True(apperrors.IsNotFound(err))

	suite.Require().NoError(suite.service.Delete(component.ID, bicycle.ID))

	_, err = suite.service.GetForBicycle(component.ID, bicycle.ID)
	suite.Require().Error(err)
	suite.True(apperrors.IsNotFound(err))
}

// TestComponentServiceTestSuite runs the test suite
func TestComponentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ComponentServiceTestSuite))
}
