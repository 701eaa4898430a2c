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

type RecurringHandler struct {
	cmds commands.RecurringCommands
	q    queries.RecurringQueries
}

func NewRecurringHandler(cmds commands.RecurringCommands, q queries.RecurringQueries) *RecurringHandler {
	return &RecurringHandler{cmds: cmds, q: q}
}

// @Summary Create recurring rental
// @Description Expand a weekly or monthly plan into individual bookings
// @Tags recurring
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRecurringRequest true "Create recurring rental request"
// @Success 201 {object} resdto.CreateRecurringResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /recurring [post]
func (h *RecurringHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateRecurringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.cmds.CreateRecurring(c.Request.Context(), userID, req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrVehicleNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Vehicle not found",
			})
		case errors.Is(err, errs.ErrInvalidFrequency):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Frequency must be weekly or monthly",
			})
		case errors.Is(err, errs.ErrInvalidDateRange), errors.Is(err, errs.ErrEmptyRecurringPlan):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Plan dates yield no rental instances",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreateRecurringResult(result))
}

// @Summary List own recurring rentals
// @Description List the current user's recurring rental plans
// @Tags recurring
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RecurringRentalResponse
// @Failure 401 {object} map[string]string
// @Router /recurring [get]
func (h *RecurringHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.q.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRecurringList(views))
}

// @Summary Get recurring rental
// @Description Get one of the current user's recurring rentals by ID
// @Tags recurring
// @Produce json
// @Security BearerAuth
// @Param id path string true "Recurring rental ID"
// @Success 200 {object} resdto.RecurringRentalResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /recurring/{id} [get]
func (h *RecurringHandler) Get(c *gin.Context) {
	userID, id, ok := h.actorAndID(c)
	if !ok {
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Recurring rental not found",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRecurringView(view))
}

// @Summary Pause recurring rental
// @Description Pause an active recurring rental
// @Tags recurring
// @Security BearerAuth
// @Param id path string true "Recurring rental ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /recurring/{id}/pause [post]
func (h *RecurringHandler) Pause(c *gin.Context) {
	userID, id, ok := h.actorAndID(c)
	if !ok {
		return
	}

	if err := h.cmds.PauseRecurring(c.Request.Context(), userID, id); err != nil {
		h.writeRecurringError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Resume recurring rental
// @Description Resume a paused recurring rental
// @Tags recurring
// @Security BearerAuth
// @Param id path string true "Recurring rental ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /recurring/{id}/resume [post]
func (h *RecurringHandler) Resume(c *gin.Context) {
	userID, id, ok := h.actorAndID(c)
	if !ok {
		return
	}

	if err := h.cmds.ResumeRecurring(c.Request.Context(), userID, id); err != nil {
		h.writeRecurringError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Cancel recurring rental
// @Description Cancel the plan and every future instance; past instances are untouched
// @Tags recurring
// @Produce json
// @Security BearerAuth
// @Param id path string true "Recurring rental ID"
// @Success 200 {object} resdto.CancelRecurringResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /recurring/{id}/cancel [post]
func (h *RecurringHandler) Cancel(c *gin.Context) {
	userID, id, ok := h.actorAndID(c)
	if !ok {
		return
	}

	result, err := h.cmds.CancelRecurring(c.Request.Context(), userID, id)
	if err != nil {
		h.writeRecurringError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.CancelRecurringResponse{
		CancelledInstances: result.CancelledInstances,
	})
}

func (h *RecurringHandler) actorAndID(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return uuid.Nil, uuid.Nil, false
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid recurring rental ID format",
		})
		return uuid.Nil, uuid.Nil, false
	}

	return userID, id, true
}

func (h *RecurringHandler) writeRecurringError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrRecurringNotFound), errors.Is(err, commands.ErrRecurringNotOwned):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Recurring rental not found",
		})
	case errors.Is(err, errs.ErrRecurringNotActive):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Recurring rental is not active",
		})
	case errors.Is(err, errs.ErrRecurringNotPaused):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Recurring rental is not paused",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
