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

type ReviewHandler struct {
	cmds commands.ReviewCommands
	q    queries.ReviewQueries
}

func NewReviewHandler(cmds commands.ReviewCommands, q queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{cmds: cmds, q: q}
}

// @Summary Create review
// @Description Review a completed booking; one review per booking
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReviewRequest true "Create review request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.cmds.CreateReview(c.Request.Context(), userID, req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound), errors.Is(err, commands.ErrBookingNotOwned):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, errs.ErrBookingNotReviewable):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Booking is not eligible for review",
			})
		default:
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid review data",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"review_id": result.ReviewID.String(),
	})
}

// @Summary List vehicle reviews
// @Description List reviews for a vehicle
// @Tags reviews
// @Produce json
// @Param id path string true "Vehicle ID"
// @Success 200 {array} resdto.ReviewResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /vehicles/{id}/reviews [get]
func (h *ReviewHandler) ListByVehicle(c *gin.Context) {
	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid vehicle ID format",
		})
		return
	}

	views, err := h.q.ListByVehicle(c.Request.Context(), vehicleID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReviewList(views))
}

// @Summary List own reviews
// @Description List reviews written by the current user
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReviewResponse
// @Failure 401 {object} map[string]string
// @Router /reviews/mine [get]
func (h *ReviewHandler) ListMine(c *gin.Context) {
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

	c.JSON(http.StatusOK, resdto.FromReviewList(views))
}
