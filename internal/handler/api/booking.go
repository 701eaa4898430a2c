package api

import (
	"errors"
	"net/http"

	reqdto "rentwheels/internal/handler/dto/request"
	resdto "rentwheels/internal/handler/dto/response"
	"rentwheels/internal/handler/middleware"
	"rentwheels/internal/pkg/clock"
	"rentwheels/internal/pkg/errs"
	"rentwheels/internal/usecase/commands"
	"rentwheels/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
	clk  clock.Clock
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries, clk clock.Clock) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q, clk: clk}
}

// @Summary List own bookings
// @Description List all bookings for the current user
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingListResponse
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	items, err := h.q.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingList(items))
}

// @Summary Get booking
// @Description Get one of the current user's bookings by ID
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
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
			"error": "Invalid booking ID format",
		})
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Cancel booking
// @Description Cancel a booking; the refund depends on how far ahead of pickup it is
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.CancelBookingRequest false "Cancel booking request"
// @Success 200 {object} resdto.CancelBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	userID, id, ok := h.actorAndID(c)
	if !ok {
		return
	}

	var req reqdto.CancelBookingRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request format",
			})
			return
		}
	}

	result, err := h.cmds.CancelBooking(c.Request.Context(), userID, id, req.ToCommand())
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCancelResult(result))
}

// @Summary Modify booking
// @Description Change dates or location of an upcoming booking; the price is requoted
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.ModifyBookingRequest true "Modify booking request"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id} [put]
func (h *BookingHandler) Modify(c *gin.Context) {
	userID, id, ok := h.actorAndID(c)
	if !ok {
		return
	}

	var req reqdto.ModifyBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.cmds.ModifyBooking(c.Request.Context(), userID, id, req.ToCommand()); err != nil {
		h.writeBookingError(c, err)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Early return
// @Description Return the vehicle before the scheduled date for a partial refund
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.EarlyReturnRequest false "Early return request"
// @Success 200 {object} resdto.EarlyReturnResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/early-return [post]
func (h *BookingHandler) EarlyReturn(c *gin.Context) {
	userID, id, ok := h.actorAndID(c)
	if !ok {
		return
	}

	var req reqdto.EarlyReturnRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request format",
			})
			return
		}
	}

	actualReturn := h.clk.Now()
	if req.ActualReturn != nil {
		actualReturn = *req.ActualReturn
	}

	result, err := h.cmds.EarlyReturn(c.Request.Context(), userID, id, actualReturn)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromEarlyReturnResult(result))
}

// @Summary Late return
// @Description Close an overdue booking, charging the late fee
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.LateReturnResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/late-return [post]
func (h *BookingHandler) LateReturn(c *gin.Context) {
	userID, id, ok := h.actorAndID(c)
	if !ok {
		return
	}

	result, err := h.cmds.LateReturn(c.Request.Context(), userID, id)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromLateReturnResult(result))
}

func (h *BookingHandler) actorAndID(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
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
			"error": "Invalid booking ID format",
		})
		return uuid.Nil, uuid.Nil, false
	}

	return userID, id, true
}

func (h *BookingHandler) writeBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrBookingNotFound), errors.Is(err, commands.ErrBookingNotOwned):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
	case errors.Is(err, errs.ErrBookingAlreadyCanceled):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Booking is already cancelled",
		})
	case errors.Is(err, errs.ErrBookingAlreadyStarted):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Booking has already started",
		})
	case errors.Is(err, errs.ErrBookingNotActive):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Booking is not active",
		})
	case errors.Is(err, errs.ErrInvalidDateRange):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid rental dates",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
