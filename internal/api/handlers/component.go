package handlers

import (
	"net/http"

	"bicycle-maintenance-backend/internal/auth"
	"bicycle-maintenance-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ComponentHandler handles HTTP requests for bicycle components
type ComponentHandler struct {
	bicycleService   service.BicycleServiceInterface
	componentService service.ComponentServiceInterface
}

// NewComponentHandler creates a new component handler
func NewComponentHandler(bicycleService service.BicycleServiceInterface, componentService service.ComponentServiceInterface) *ComponentHandler {
	return &ComponentHandler{
		bicycleService:   bicycleService,
		componentService: componentService,
	}
}

// ownedBicycleID resolves the bicycle path param and checks the caller owns it.
func (h *ComponentHandler) ownedBicycleID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return uuid.Nil, false
	}
	bicycleID, ok := parseUUIDParam(c, "bicycle_id")
	if !ok {
		return uuid.Nil, false
	}
	if _, err := h.bicycleService.GetForUser(bicycleID, userID); err != nil {
		respondError(c, err)
		return uuid.Nil, false
	}
	return bicycleID, true
}

// Create handles POST /bicycles/:bicycle_id/components
// @Summary Install a component on a bicycle
// @Tags components
// @Accept json
// @Produce json
// @Param bicycle_id path string true "Bicycle ID"
// @Param request body service.CreateComponentRequest true "Component attributes"
// @Success 201 {object} models.Component
// @Failure 422 {object} map[string]interface{} "Validation error"
// @Security BearerAuth
// @Router /bicycles/{bicycle_id}/components [post]
func (h *ComponentHandler) Create(c *gin.Context) {
	bicycleID, ok := h.ownedBicycleID(c)
	if !ok {
		return
	}

	var req service.CreateComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	component, err := h.componentService.Create(bicycleID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, component)
}

// List handles GET /bicycles/:bicycle_id/components
// @Summary List a bicycle's components
// @Tags components
// @Produce json
// @Param bicycle_id path string true "Bicycle ID"
// @Param active query bool false "Only active components"
// @Success 200 {array} models.Component
// @Security BearerAuth
// @Router /bicycles/{bicycle_id}/components [get]
func (h *ComponentHandler) List(c *gin.Context) {
	bicycleID, ok := h.ownedBicycleID(c)
	if !ok {
		return
	}

	activeOnly := c.Query("active") == "true"
	components, err := h.componentService.ListForBicycle(bicycleID, activeOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, components)
}

// Get handles GET /bicycles/:bicycle_id/components/:component_id
// @Summary Get one component
// @Tags components
// @Produce json
// @Param bicycle_id path string true "Bicycle ID"
// @Param component_id path string true "Component ID"
// @Success 200 {object} models.Component
// @Failure 404 {object} map[string]interface{} "Not found"
// @Security BearerAuth
// @Router /bicycles/{bicycle_id}/components/{component_id} [get]
func (h *ComponentHandler) Get(c *gin.Context) {
	bicycleID, ok := h.ownedBicycleID(c)
	if !ok {
		return
	}
	componentID, ok := parseUUIDParam(c, "component_id")
	if !ok {
		return
	}

	component, err := h.componentService.GetForBicycle(componentID, bicycleID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, component)
}

// Update handles PATCH /bicycles/:bicycle_id/components/:component_id
// @Summary Update a component's brand or model
// @Tags components
// @Accept json
// @Produce json
// @Param bicycle_id path string true "Bicycle ID"
// @Param component_id path string true "Component ID"
// @Param request body service.UpdateComponentRequest true "Updatable attributes"
// @Success 200 {object} models.Component
// @Security BearerAuth
// @Router /bicycles/{bicycle_id}/components/{component_id} [patch]
func (h *ComponentHandler) Update(c *gin.Context) {
	bicycleID, ok := h.ownedBicycleID(c)
	if !ok {
		return
	}
	componentID, ok := parseUUIDParam(c, "component_id")
	if !ok {
		return
	}

	var req service.UpdateComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	component, err := h.componentService.Update(componentID, bicycleID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, component)
}

// Delete handles DELETE /bicycles/:bicycle_id/components/:component_id
// @Summary Remove a component and its usage history
// @Tags components
// @Param bicycle_id path string true "Bicycle ID"
// @Param component_id path string true "Component ID"
// @Success 204
// @Security BearerAuth
// @Router /bicycles/{bicycle_id}/components/{component_id} [delete]
func (h *ComponentHandler) Delete(c *gin.Context) {
	bicycleID, ok := h.ownedBicycleID(c)
	if !ok {
		return
	}
	componentID, ok := parseUUIDParam(c, "component_id")
	if !ok {
		return
	}

	if err := h.componentService.Delete(componentID, bicycleID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
