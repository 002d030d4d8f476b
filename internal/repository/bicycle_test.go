package repository

import (
	"testing"
	"time"

	"bicycle-maintenance-backend/internal/database/models"
	"bicycle-maintenance-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// BicycleRepositoryTestSuite tests the BicycleRepository
type BicycleRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *BicycleRepository
	components    *ComponentRepository
	logs          *UsageLogRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *BicycleRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewBicycleRepository(suite.baseTestSuite.DB)
	suite.components = NewComponentRepository(suite.baseTestSuite.DB)
	suite.logs = NewUsageLogRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *BicycleRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *BicycleRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *BicycleRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *BicycleRepositoryTestSuite) createUser() *models.User {
	user := suite.factories.User.Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(user).Error)
	return user
}

// TestCreate tests creating a new bicycle
func (suite *BicycleRepositoryTestSuite) TestCreate() {
	user := suite.createUser()
	bicycle := suite.factories.Bicycle.Create(user.ID)

	err := suite.repo.Create(bicycle)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, bicycle.ID)
	suite.NotZero(bicycle.CreatedAt)
}

// TestGetByIDForUser tests owner scoping
func (suite *BicycleRepositoryTestSuite) TestGetByIDForUser() {
	owner := suite.createUser()
	stranger := suite.createUser()
	bicycle := suite.factories.Bicycle.Create(owner.ID)
	suite.Require().NoError(suite.repo.Create(bicycle))

	found, err := suite.repo.GetByIDForUser(bicycle.ID, owner.ID)
	suite.NoError(err)
	suite.Equal(bicycle.ID, found.ID)

	_, err = suite.repo.GetByIDForUser(bicycle.ID, stranger.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetAllByUser tests listing by owner in creation order
func (suite *BicycleRepositoryTestSuite) TestGetAllByUser() {
	user := suite.createUser()
	other := suite.createUser()

	first := suite.factories.Bicycle.Create(user.ID)
	suite.Require().NoError(suite.repo.Create(first))
	second := suite.factories.Bicycle.Create(user.ID)
	second.Name = "Gravel"
	suite.Require().NoError(suite.repo.Create(second))
	suite.Require().NoError(suite.repo.Create(suite.factories.Bicycle.Create(other.ID)))

	bicycles, err := suite.repo.GetAllByUser(user.ID)
	suite.NoError(err)
	suite.Require().Len(bicycles, 2)
	suite.Equal(first.ID, bicycles[0].ID)
	suite.Equal(second.ID, bicycles[1].ID)
}

// TestGetWithComponents tests component preloading
func (suite *BicycleRepositoryTestSuite) TestGetWithComponents() {
	user := suite.createUser()
	bicycle := suite.factories.Bicycle.Create(user.ID)
	suite.Require().NoError(suite.repo.Create(bicycle))

	chain := suite.factories.Component.Create(bicycle.ID, models.ComponentTypeChain)
	suite.Require().NoError(suite.components.Create(chain))

	found, err := suite.repo.GetWithComponents(bicycle.ID)
	suite.NoError(err)
	suite.Require().Len(found.Components, 1)
	suite.Equal(chain.ID, found.Components[0].ID)
}

// TestDeleteCascadesUsageLogs tests that deleting a bicycle removes the
// polymorphic usage log rows of the bicycle and its components
func (suite *BicycleRepositoryTestSuite) TestDeleteCascadesUsageLogs() {
	user := suite.createUser()
	bicycle := suite.factories.Bicycle.Create(user.ID)
	suite.Require().NoError(suite.repo.Create(bicycle))
	chain := suite.factories.Component.Create(bicycle.ID, models.ComponentTypeChain)
	suite.Require().NoError(suite.components.Create(chain))

	suite.Require().NoError(suite.logs.Create(&models.UsageLogEntry{
		TrackableType: models.TrackableTypeBicycle,
		TrackableID:   bicycle.ID,
		EventType:     models.UsageEventIncrease,
		PreviousValue: 0,
		NewValue:      10,
		Notes:         "ride",
	}))
	suite.Require().NoError(suite.logs.Create(&models.UsageLogEntry{
		TrackableType: models.TrackableTypeComponent,
		TrackableID:   chain.ID,
		EventType:     models.UsageEventIncrease,
		PreviousValue: 0,
		NewValue:      10,
		Notes:         "ride",
	}))

	suite.Require().NoError(suite.repo.Delete(bicycle.ID))

	var logCount int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.UsageLogEntry{}).Count(&logCount).Error)
	suite.Equal(int64(0), logCount)

	var componentCount int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.Component{}).Count(&componentCount).Error)
	suite.Equal(int64(0), componentCount)
}

// TestCountActiveAndRetire tests the slot counting queries used by the
// slot-limit check
func (suite *BicycleRepositoryTestSuite) TestCountActiveAndRetire() {
	user := suite.createUser()
	bicycle := suite.factories.Bicycle.Create(user.ID)
	suite.Require().NoError(suite.repo.Create(bicycle))

	front := suite.factories.Component.Create(bicycle.ID, models.ComponentTypeTire)
	rear := suite.factories.Component.Create(bicycle.ID, models.ComponentTypeTire)
	suite.Require().NoError(suite.components.Create(front))
	suite.Require().NoError(suite.components.Create(rear))

	count, err := suite.components.CountActive(bicycle.ID, models.ComponentTypeTire, nil)
	suite.NoError(err)
	suite.Equal(int64(2), count)

	count, err = suite.components.CountActive(bicycle.ID, models.ComponentTypeTire, &front.ID)
	suite.NoError(err)
	suite.Equal(int64(1), count)

	suite.Require().NoError(suite.components.Retire(front, time.Now()))
	suite.Equal(models.ComponentStatusReplaced, front.Status)
	suite.NotNil(front.ReplacedAt)

	count, err = suite.components.CountActive(bicycle.ID, models.ComponentTypeTire, nil)
	suite.NoError(err)
	suite.Equal(int64(1), count)
}

// TestLastEntryEmptyLog tests the nil-without-error contract for an empty
// log
func (suite *BicycleRepositoryTestSuite) TestLastEntryEmptyLog() {
	entry, err := suite.logs.LastEntry(models.TrackableTypeBicycle, uuid.New())
	suite.NoError(err)
	suite.Nil(entry)
}

// TestBicycleRepositoryTestSuite runs the test suite
func TestBicycleRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(BicycleRepositoryTestSuite))
}
