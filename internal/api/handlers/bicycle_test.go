package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"bicycle-maintenance-backend/internal/api/handlers"
	"bicycle-maintenance-backend/internal/auth"
	"bicycle-maintenance-backend/internal/database/models"
	apperrors "bicycle-maintenance-backend/internal/errors"
	"bicycle-maintenance-backend/internal/mocks"
	"bicycle-maintenance-backend/internal/service"
	"bicycle-maintenance-backend/internal/testutils"
	"bicycle-maintenance-backend/internal/wear"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BicycleHandlerTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	bicycleService     *mocks.MockBicycleServiceInterface
	maintenanceService *mocks.MockMaintenanceServiceInterface
	rideService        *mocks.MockRideServiceInterface
	http               *testutils.HTTPTestSuite
	userID             uuid.UUID
}

func (suite *BicycleHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.bicycleService = mocks.NewMockBicycleServiceInterface(suite.ctrl)
	suite.maintenanceService = mocks.NewMockMaintenanceServiceInterface(suite.ctrl)
	suite.rideService = mocks.NewMockRideServiceInterface(suite.ctrl)
	suite.userID = uuid.New()

	handler := handlers.NewBicycleHandler(suite.bicycleService, suite.maintenanceService, suite.rideService)

	suite.http = testutils.SetupHTTPTest()
	suite.http.Router.Use(func(c *gin.Context) {
		c.Set(auth.ContextUserIDKey, suite.userID)
		c.Next()
	})

	bicycles := suite.http.Router.Group("/bicycles")
	bicycles.POST("", handler.Create)
	bicycles.GET("/:bicycle_id", handler.Get)
	bicycles.POST("/:bicycle_id/record_ride", handler.RecordRide)
	bicycles.POST("/:bicycle_id/record_maintenance", handler.RecordMaintenance)
	bicycles.GET("/:bicycle_id/wear_limits", handler.WearLimits)
	bicycles.GET("/:bicycle_id/recommendations", handler.Recommendations)
	bicycles.GET("/:bicycle_id/maintenance_history", handler.MaintenanceHistory)
}

func (suite *BicycleHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *BicycleHandlerTestSuite) TestCreateBicycle() {
	req := &service.CreateBicycleRequest{
		Name:  "Commuter",
		Brand: "Canyon",
		Model: "Endurace CF 7",
	}
	created := &models.Bicycle{UserID: suite.userID, Name: "Commuter", Brand: "Canyon", Model: "Endurace CF 7"}

	suite.bicycleService.EXPECT().Create(suite.userID, req).Return(created, nil)

	recorder := suite.http.MakeRequest("POST", "/bicycles", req)

	var response models.Bicycle
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	suite.Equal("Commuter", response.Name)
}

func (suite *BicycleHandlerTestSuite) TestGetBicycleNotFound() {
	bicycleID := uuid.New()
	suite.bicycleService.EXPECT().GetForUser(bicycleID, suite.userID).Return(nil, apperrors.ErrBicycleNotFound)

	recorder := suite.http.MakeRequest("GET", "/bicycles/"+bicycleID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "not found")
}

func (suite *BicycleHandlerTestSuite) TestGetBicycleInvalidID() {
	recorder := suite.http.MakeRequest("GET", "/bicycles/not-a-uuid", nil)

	suite.Equal(http.StatusNotFound, recorder.Code)
}

func (suite *BicycleHandlerTestSuite) TestRecordRide() {
	bicycleID := uuid.New()
	suite.bicycleService.EXPECT().GetForUser(bicycleID, suite.userID).Return(&models.Bicycle{}, nil)
	suite.rideService.EXPECT().RecordRide(bicycleID, 42.5, "weekend loop").Return(nil)

	recorder := suite.http.MakeRequest("POST", "/bicycles/"+bicycleID.String()+"/record_ride", map[string]interface{}{
		"distance": 42.5,
		"notes":    "weekend loop",
	})

	var response map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(true, response["success"])
}

func (suite *BicycleHandlerTestSuite) TestRecordRideValidationFailure() {
	bicycleID := uuid.New()
	suite.bicycleService.EXPECT().GetForUser(bicycleID, suite.userID).Return(&models.Bicycle{}, nil)
	suite.rideService.EXPECT().RecordRide(bicycleID, -5.0, "").
		Return(apperrors.NewValidationError("Ride distance must be greater than zero", "The distance value must be a positive number"))

	recorder := suite.http.MakeRequest("POST", "/bicycles/"+bicycleID.String()+"/record_ride", map[string]interface{}{
		"distance": -5,
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnprocessableEntity, "Ride distance must be greater than zero")
}

func (suite *BicycleHandlerTestSuite) TestRecordRideUnownedBicycle() {
	bicycleID := uuid.New()
	suite.bicycleService.EXPECT().GetForUser(bicycleID, suite.userID).Return(nil, apperrors.ErrBicycleNotFound)

	recorder := suite.http.MakeRequest("POST", "/bicycles/"+bicycleID.String()+"/record_ride", map[string]interface{}{
		"distance": 10,
	})

	suite.Equal(http.StatusNotFound, recorder.Code)
}

// TestRecordMaintenanceBindsSingleSpecObject exercises the JSON shape where
// a singular slot's replacement is written as one object, not an array
func (suite *BicycleHandlerTestSuite) TestRecordMaintenanceBindsSingleSpecObject() {
	bicycleID := uuid.New()
	expected := service.MaintenanceOptions{
		Notes: "chain swap",
		Replacements: map[models.ComponentType]service.SpecList{
			models.ComponentTypeChain: {{Brand: "KMC", Model: "X11"}},
		},
	}
	suite.bicycleService.EXPECT().GetForUser(bicycleID, suite.userID).Return(&models.Bicycle{}, nil)
	suite.maintenanceService.EXPECT().RecordMaintenance(bicycleID, expected).
		Return(&models.Service{ServiceType: models.ServiceTypePartialReplacement, Notes: "chain swap"}, nil)

	body := map[string]interface{}{
		"notes": "chain swap",
		"replacements": map[string]interface{}{
			"chain": map[string]string{"brand": "KMC", "model": "X11"},
		},
	}
	recorder := suite.http.MakeRequest("POST", "/bicycles/"+bicycleID.String()+"/record_maintenance", body)

	var response map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(true, response["success"])
	suite.Equal("Maintenance recorded successfully", response["message"])
}

func (suite *BicycleHandlerTestSuite) TestRecordMaintenanceValidationFailure() {
	bicycleID := uuid.New()
	suite.bicycleService.EXPECT().GetForUser(bicycleID, suite.userID).Return(&models.Bicycle{}, nil)
	suite.maintenanceService.EXPECT().RecordMaintenance(bicycleID, gomock.Any()).
		Return(nil, apperrors.NewValidationError("Default brand is required for a full service"))

	recorder := suite.http.MakeRequest("POST", "/bicycles/"+bicycleID.String()+"/record_maintenance", map[string]interface{}{
		"full_service": true,
	})

	suite.Equal(http.StatusUnprocessableEntity, recorder.Code)
}

func (suite *BicycleHandlerTestSuite) TestWearLimits() {
	bicycleID := uuid.New()
	limits := wear.Limits{
		models.ComponentTypeChain: 2917,
	}
	suite.bicycleService.EXPECT().WearLimits(bicycleID, suite.userID).Return(limits, nil)

	recorder := suite.http.MakeRequest("GET", "/bicycles/"+bicycleID.String()+"/wear_limits", nil)

	var response map[string]float64
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(2917.0, response["chain"])
}

func (suite *BicycleHandlerTestSuite) TestRecommendations() {
	bicycleID := uuid.New()
	suite.bicycleService.EXPECT().Recommendations(bicycleID, suite.userID).
		Return([]string{"Chain needs replacement"}, nil)

	recorder := suite.http.MakeRequest("GET", "/bicycles/"+bicycleID.String()+"/recommendations", nil)

	var response map[string][]string
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal([]string{"Chain needs replacement"}, response["recommendations"])
}

func (suite *BicycleHandlerTestSuite) TestMaintenanceHistory() {
	bicycleID := uuid.New()
	servicedAt := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	entries := []models.UsageLogEntry{
		{
			TrackableType: models.TrackableTypeBicycle,
			TrackableID:   bicycleID,
			EventType:     models.UsageEventMaintenance,
			PreviousValue: 800,
			NewValue:      0,
			Notes:         "tune",
		},
	}
	suite.bicycleService.EXPECT().MaintenanceHistory(bicycleID, suite.userID).Return(entries, nil)
	suite.bicycleService.EXPECT().LastMaintenanceAt(bicycleID, suite.userID).Return(&servicedAt, nil)

	recorder := suite.http.MakeRequest("GET", "/bicycles/"+bicycleID.String()+"/maintenance_history", nil)

	var response struct {
		LastMaintenance    *time.Time             `json:"last_maintenance"`
		MaintenanceHistory []models.UsageLogEntry `json:"maintenance_history"`
	}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Require().NotNil(response.LastMaintenance)
	suite.True(servicedAt.Equal(*response.LastMaintenance))
	suite.Require().Len(response.MaintenanceHistory, 1)
	suite.Equal("tune", response.MaintenanceHistory[0].Notes)
}

func TestBicycleHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BicycleHandlerTestSuite))
}
