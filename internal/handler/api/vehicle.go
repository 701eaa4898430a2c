package api

import (
	"errors"
	"net/http"

	reqdto "rentwheels/internal/handler/dto/request"
	resdto "rentwheels/internal/handler/dto/response"
	"rentwheels/internal/handler/middleware"
	"rentwheels/internal/pkg/errs"
	"rentwheels/internal/usecase/commands"
	"rentwheels/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VehicleHandler struct {
	cmds commands.VehicleCommands
	q    queries.VehicleQueries
}

func NewVehicleHandler(cmds commands.VehicleCommands, q queries.VehicleQueries) *VehicleHandler {
	return &VehicleHandler{cmds: cmds, q: q}
}

// @Summary List vehicles
// @Description List vehicles with optional type, location and status filters
// @Tags vehicles
// @Produce json
// @Param vehicle_type query string false "Vehicle type filter"
// @Param location query string false "Location filter"
// @Param status query string false "Status filter"
// @Success 200 {array} resdto.VehicleResponse
// @Failure 500 {object} map[string]string
// @Router /vehicles [get]
func (h *VehicleHandler) List(c *gin.Context) {
	filter := queries.VehicleFilter{
		VehicleType: c.Query("vehicle_type"),
		Location:    c.Query("location"),
		Status:      c.Query("status"),
	}

	views, err := h.q.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromVehicleList(views))
}

// @Summary Get vehicle
// @Description Get vehicle details by ID, including rating summary
// @Tags vehicles
// @Produce json
// @Param id path string true "Vehicle ID"
// @Success 200 {object} resdto.VehicleResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /vehicles/{id} [get]
func (h *VehicleHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid vehicle ID format",
		})
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Vehicle not found",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromVehicleView(view))
}

// @Summary List own vehicles
// @Description List vehicles owned by the authenticated agent
// @Tags vehicles
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.VehicleResponse
// @Failure 401 {object} map[string]string
// @Router /agent/vehicles [get]
func (h *VehicleHandler) ListMine(c *gin.Context) {
	agentID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.q.ListByAgent(c.Request.Context(), agentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromVehicleList(views))
}

// @Summary Agent earnings
// @Description Booking and earnings summary across the agent's fleet
// @Tags vehicles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.AgentEarningsView
// @Failure 401 {object} map[string]string
// @Router /agent/earnings [get]
func (h *VehicleHandler) Earnings(c *gin.Context) {
	agentID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.q.EarningsByAgent(c.Request.Context(), agentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Create vehicle
// @Description Register a new vehicle in the agent's fleet
// @Tags vehicles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateVehicleRequest true "Create vehicle request"
// @Success 201 {object} resdto.VehicleResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /vehicles [post]
func (h *VehicleHandler) Create(c *gin.Context) {
	agentID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	vehicleID, err := h.cmds.CreateVehicle(c.Request.Context(), agentID, req.ToCommand())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid vehicle data",
		})
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), vehicleID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, resdto.FromVehicleView(view))
}

// @Summary Update vehicle
// @Description Update a vehicle in the agent's fleet
// @Tags vehicles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vehicle ID"
// @Param request body reqdto.UpdateVehicleRequest true "Update vehicle request"
// @Success 200 {object} resdto.VehicleResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /vehicles/{id} [put]
func (h *VehicleHandler) Update(c *gin.Context) {
	agentID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid vehicle ID format",
		})
		return
	}

	var req reqdto.UpdateVehicleRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.cmds.UpdateVehicle(c.Request.Context(), agentID, id, req.ToCommand()); err != nil {
		h.writeVehicleError(c, err)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromVehicleView(view))
}

// @Summary Delete vehicle
// @Description Remove a vehicle from the agent's fleet; blocked while bookings occupy it
// @Tags vehicles
// @Security BearerAuth
// @Param id path string true "Vehicle ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /vehicles/{id} [delete]
func (h *VehicleHandler) Delete(c *gin.Context) {
	agentID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid vehicle ID format",
		})
		return
	}

	if err := h.cmds.DeleteVehicle(c.Request.Context(), agentID, id); err != nil {
		h.writeVehicleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *VehicleHandler) writeVehicleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrVehicleNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Vehicle not found",
		})
	case errors.Is(err, commands.ErrVehicleNotOwned):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Vehicle belongs to another agent",
		})
	case errors.Is(err, errs.ErrVehicleHasBookings):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Vehicle has active bookings",
		})
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid vehicle data",
		})
	}
}
