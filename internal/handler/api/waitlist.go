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

type WaitlistHandler struct {
	cmds commands.WaitlistCommands
	q    queries.WaitlistQueries
}

func NewWaitlistHandler(cmds commands.WaitlistCommands, q queries.WaitlistQueries) *WaitlistHandler {
	return &WaitlistHandler{cmds: cmds, q: q}
}

// @Summary Join waiting list
// @Description Queue for a vehicle that is occupied for the desired dates
// @Tags waitlist
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.JoinWaitlistRequest true "Join waiting list request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /waitlist [post]
func (h *WaitlistHandler) Join(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.JoinWaitlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	entryID, err := h.cmds.Join(c.Request.Context(), userID, req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrVehicleNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Vehicle not found",
			})
		case errors.Is(err, errs.ErrInvalidDateRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid rental dates",
			})
		case errors.Is(err, errs.ErrDuplicateWaitlistEntry):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Already on the waiting list for this vehicle and dates",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"entry_id": entryID.String(),
	})
}

// @Summary List own waiting list entries
// @Description List the current user's waiting list entries
// @Tags waitlist
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.WaitlistEntryResponse
// @Failure 401 {object} map[string]string
// @Router /waitlist [get]
func (h *WaitlistHandler) ListMine(c *gin.Context) {
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

	c.JSON(http.StatusOK, resdto.FromWaitlistList(views))
}

// @Summary Leave waiting list
// @Description Remove one of the current user's waiting list entries
// @Tags waitlist
// @Security BearerAuth
// @Param id path string true "Waiting list entry ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /waitlist/{id} [delete]
func (h *WaitlistHandler) Remove(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid entry ID format",
		})
		return
	}

	if err := h.cmds.Remove(c.Request.Context(), userID, id); err != nil {
		switch {
		case errors.Is(err, errs.ErrWaitlistEntryNotFound), errors.Is(err, commands.ErrWaitlistEntryNotOwned):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Waiting list entry not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Check waiting list
// @Description Match the current user's active entries against vehicle availability
// @Tags waitlist
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.WaitlistCheckResponse
// @Failure 401 {object} map[string]string
// @Router /waitlist/check [post]
func (h *WaitlistHandler) Check(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	result, err := h.cmds.CheckAndNotify(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromWaitlistCheckResult(result))
}
