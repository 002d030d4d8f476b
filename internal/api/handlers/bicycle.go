package handlers

import (
	"net/http"

	"bicycle-maintenance-backend/internal/auth"
	"bicycle-maintenance-backend/internal/database/models"
	"bicycle-maintenance-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BicycleHandler handles HTTP requests for bicycles, rides, maintenance
// and wear reports
type BicycleHandler struct {
	bicycleService     service.BicycleServiceInterface
	maintenanceService service.MaintenanceServiceInterface
	rideService        service.RideServiceInterface
}

// NewBicycleHandler creates a new bicycle handler
func NewBicycleHandler(bicycleService service.BicycleServiceInterface, maintenanceService service.MaintenanceServiceInterface, rideService service.RideServiceInterface) *BicycleHandler {
	return &BicycleHandler{
		bicycleService:     bicycleService,
		maintenanceService: maintenanceService,
		rideService:        rideService,
	}
}

func (h *BicycleHandler) authAndBicycleID(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return uuid.Nil, uuid.Nil, false
	}
	bicycleID, ok := parseUUIDParam(c, "bicycle_id")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	return bicycleID, userID, true
}

// Create handles POST /bicycles
// @Summary Register a bicycle
// @Tags bicycles
// @Accept json
// @Produce json
// @Param request body service.CreateBicycleRequest true "Bicycle attributes"
// @Success 201 {object} models.Bicycle
// @Failure 422 {object} map[string]interface{} "Validation error"
// @Security BearerAuth
// @Router /bicycles [post]
func (h *BicycleHandler) Create(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req service.CreateBicycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	bicycle, err := h.bicycleService.Create(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bicycle)
}

// List handles GET /bicycles
// @Summary List the caller's bicycles
// @Tags bicycles
// @Produce json
// @Success 200 {array} models.Bicycle
// @Security BearerAuth
// @Router /bicycles [get]
func (h *BicycleHandler) List(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	bicycles, err := h.bicycleService.ListForUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bicycles)
}

// Get handles GET /bicycles/:bicycle_id
// @Summary Get one bicycle
// @Tags bicycles
// @Produce json
// @Param bicycle_id path string true "Bicycle ID"
// @Success 200 {object} models.Bicycle
// @Failure 404 {object} map[string]interface{} "Not found"
// @Security BearerAuth
// @Router /bicycles/{bicycle_id} [get]
func (h *BicycleHandler) Get(c *gin.Context) {
	bicycleID, userID, ok := h.authAndBicycleID(c)
	if !ok {
		return
	}

	bicycle, err := h.bicycleService.GetForUser(bicycleID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bicycle)
}

// Update handles PATCH /bicycles/:bicycle_id
// @Summary Update a bicycle
// @Tags bicycles
// @Accept json
// @Produce json
// @Param bicycle_id path string true "Bicycle ID"
// @Param request body service.UpdateBicycleRequest true "Updatable attributes"
// @Success 200 {object} models.Bicycle
// @Security BearerAuth
// @Router /bicycles/{bicycle_id} [patch]
func (h *BicycleHandler) Update(c *gin.Context) {
	bicycleID, userID, ok := h.authAndBicycleID(c)
	if !ok {
		return
	}

	var req service.UpdateBicycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	bicycle, err := h.bicycleService.Update(bicycleID, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bicycle)
}

// Delete handles DELETE /bicycles/:bicycle_id
// @Summary Destroy a bicycle and everything it owns
// @Tags bicycles
// @Param bicycle_id path string true "Bicycle ID"
// @Success 204
// @Security BearerAuth
// @Router /bicycles/{bicycle_id} [delete]
func (h *BicycleHandler) Delete(c *gin.Context) {
	bicycleID, userID, ok := h.authAndBicycleID(c)
	if !ok {
		return
	}

	if err := h.bicycleService.Delete(bicycleID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RecordRideRequest is the body for POST /bicycles/:bicycle_id/record_ride
type RecordRideRequest struct {
	Distance float64 `json:"distance"`
	Notes    string  `json:"notes"`
}

// RecordRide handles POST /bicycles/:bicycle_id/record_ride
// @Summary Record a ride, propagating distance to active components
// @Tags rides
// @Accept json
// @Produce json
// @Param bicycle_id path string true "Bicycle ID"
// @Param request body RecordRideRequest true "Ride distance and notes"
// @Success 200 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{} "Validation error"
// @Security BearerAuth
// @Router /bicycles/{bicycle_id}/record_ride [post]
func (h *BicycleHandler) RecordRide(c *gin.Context) {
	bicycleID, userID, ok := h.authAndBicycleID(c)
	if !ok {
		return
	}
	if _, err := h.bicycleService.GetForUser(bicycleID, userID); err != nil {
		respondError(c, err)
		return
	}

	var req RecordRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.rideService.RecordRide(bicycleID, req.Distance, req.Notes); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Ride recorded successfully"})
}

// RecordMaintenance handles POST /bicycles/:bicycle_id/record_maintenance
// @Summary Record a maintenance service
// @Tags maintenance
// @Accept json
// @Produce json
// @Param bicycle_id path string true "Bicycle ID"
// @Param request body service.MaintenanceOptions true "Maintenance options"
// @Success 200 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{} "Validation error"
// @Security BearerAuth
// @Router /bicycles/{bicycle_id}/record_maintenance [post]
func (h *BicycleHandler) RecordMaintenance(c *gin.Context) {
	bicycleID, userID, ok := h.authAndBicycleID(c)
	if !ok {
		return
	}
	if _, err := h.bicycleService.GetForUser(bicycleID, userID); err != nil {
		respondError(c, err)
		return
	}

	var opts service.MaintenanceOptions
	if err := c.ShouldBindJSON(&opts); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	svc, err := h.maintenanceService.RecordMaintenance(bicycleID, opts)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Maintenance recorded successfully",
		"data":    svc,
	})
}

// WearLimits handles GET /bicycles/:bicycle_id/wear_limits
// @Summary Get the bicycle's environment-adjusted wear limits
// @Tags wear
// @Produce json
// @Param bicycle_id path string true "Bicycle ID"
// @Success 200 {object} wear.Limits
// @Security BearerAuth
// @Router /bicycles/{bicycle_id}/wear_limits [get]
func (h *BicycleHandler) WearLimits(c *gin.Context) {
	bicycleID, userID, ok := h.authAndBicycleID(c)
	if !ok {
		return
	}

	limits, err := h.bicycleService.WearLimits(bicycleID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, limits)
}

// Recommendations handles GET /bicycles/:bicycle_id/recommendations
// @Summary Get maintenance recommendations for worn components
// @Tags wear
// @Produce json
// @Param bicycle_id path string true "Bicycle ID"
// @Success 200 {array} string
// @Security BearerAuth
// @Router /bicycles/{bicycle_id}/recommendations [get]
func (h *BicycleHandler) Recommendations(c *gin.Context) {
	bicycleID, userID, ok := h.authAndBicycleID(c)
	if !ok {
		return
	}

	recs, err := h.bicycleService.Recommendations(bicycleID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}

// ComponentStatus handles GET /bicycles/:bicycle_id/component_status
// @Summary Get the full wear status report
// @Tags wear
// @Produce json
// @Param bicycle_id path string true "Bicycle ID"
// @Success 200 {object} wear.StatusReport
// @Security BearerAuth
// @Router /bicycles/{bicycle_id}/component_status [get]
func (h *BicycleHandler) ComponentStatus(c *gin.Context) {
	bicycleID, userID, ok := h.authAndBicycleID(c)
	if !ok {
		return
	}

	report, err := h.bicycleService.ComponentStatus(bicycleID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// MaintenanceHistory handles GET /bicycles/:bicycle_id/maintenance_history
// @Summary List the bicycle's maintenance log entries with the last service time
// @Tags maintenance
// @Produce json
// @Param bicycle_id path string true "Bicycle ID"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /bicycles/{bicycle_id}/maintenance_history [get]
func (h *BicycleHandler) MaintenanceHistory(c *gin.Context) {
	bicycleID, userID, ok := h.authAndBicycleID(c)
	if !ok {
		return
	}

	history, err := h.bicycleService.MaintenanceHistory(bicycleID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	last, err := h.bicycleService.LastMaintenanceAt(bicycleID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"last_maintenance":    last,
		"maintenance_history": history,
	})
}

// ServiceHistory handles GET /bicycles/:bicycle_id/services
// @Summary List the bicycle's services, most recent first
// @Tags maintenance
// @Produce json
// @Param bicycle_id path string true "Bicycle ID"
// @Success 200 {array} models.Service
// @Security BearerAuth
// @Router /bicycles/{bicycle_id}/services [get]
func (h *BicycleHandler) ServiceHistory(c *gin.Context) {
	bicycleID, userID, ok := h.authAndBicycleID(c)
	if !ok {
		return
	}

	services, err := h.bicycleService.ServiceHistory(bicycleID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

// ReplacementHistory handles GET /bicycles/:bicycle_id/replacements/:component_type
// @Summary List replacement records for one component type
// @Tags maintenance
// @Produce json
// @Param bicycle_id path string true "Bicycle ID"
// @Param component_type path string true "Component type"
// @Success 200 {array} models.ComponentReplacement
// @Security BearerAuth
// @Router /bicycles/{bicycle_id}/replacements/{component_type} [get]
func (h *BicycleHandler) ReplacementHistory(c *gin.Context) {
	bicycleID, userID, ok := h.authAndBicycleID(c)
	if !ok {
		return
	}

	componentType := models.ComponentType(c.Param("component_type"))
	replacements, err := h.bicycleService.ReplacementHistory(bicycleID, userID, componentType)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, replacements)
}
