package api

import (
	"errors"
	"net/http"
	"time"

	resdto "rentwheels/internal/handler/dto/response"
	"rentwheels/internal/pkg/clock"
	"rentwheels/internal/pkg/errs"
	"rentwheels/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Calendar windows default to 30 days from today when not given.
const defaultCalendarDays = 30

type AvailabilityHandler struct {
	q   queries.AvailabilityQueries
	clk clock.Clock
}

func NewAvailabilityHandler(q queries.AvailabilityQueries, clk clock.Clock) *AvailabilityHandler {
	return &AvailabilityHandler{q: q, clk: clk}
}

// @Summary Vehicle calendar
// @Description Day-by-day availability for one vehicle
// @Tags availability
// @Produce json
// @Param id path string true "Vehicle ID"
// @Param from query string false "Window start (YYYY-MM-DD)"
// @Param to query string false "Window end (YYYY-MM-DD)"
// @Success 200 {object} resdto.CalendarResponse
// @Failure 400 {object} map[string]string
// @Router /vehicles/{id}/calendar [get]
func (h *AvailabilityHandler) VehicleCalendar(c *gin.Context) {
	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid vehicle ID format",
		})
		return
	}

	from, to, err := h.parseWindow(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid calendar window",
		})
		return
	}

	days, err := h.q.VehicleCalendar(c.Request.Context(), vehicleID, from, to)
	if err != nil {
		h.writeCalendarError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCalendar(from, to, days))
}

// @Summary Fleet calendar
// @Description Day-by-day fleet occupancy across all available vehicles
// @Tags availability
// @Produce json
// @Param from query string false "Window start (YYYY-MM-DD)"
// @Param to query string false "Window end (YYYY-MM-DD)"
// @Success 200 {object} resdto.CalendarResponse
// @Failure 400 {object} map[string]string
// @Router /availability/fleet [get]
func (h *AvailabilityHandler) FleetCalendar(c *gin.Context) {
	from, to, err := h.parseWindow(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid calendar window",
		})
		return
	}

	days, err := h.q.FleetCalendar(c.Request.Context(), from, to)
	if err != nil {
		h.writeCalendarError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCalendar(from, to, days))
}

func (h *AvailabilityHandler) parseWindow(c *gin.Context) (time.Time, time.Time, error) {
	today := clock.Today(h.clk)
	from := today
	to := today.AddDate(0, 0, defaultCalendarDays)

	if v := c.Query("from"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = parsed
		to = from.AddDate(0, 0, defaultCalendarDays)
	}
	if v := c.Query("to"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = parsed
	}

	return from, to, nil
}

func (h *AvailabilityHandler) writeCalendarError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrInvalidDateRange):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid calendar window",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
