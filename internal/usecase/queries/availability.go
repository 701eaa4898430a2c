package queries

import (
	"context"
	"time"

	"rentwheels/internal/domain/availability"
	"rentwheels/internal/domain/booking"
	"rentwheels/internal/pkg/errs"

	"github.com/google/uuid"
)

type AvailabilityQueries interface {
	// VehicleCalendar classifies each day in [from, to] for one vehicle.
	VehicleCalendar(ctx context.Context, vehicleID uuid.UUID, from, to time.Time) ([]CalendarDayView, error)
	// FleetCalendar classifies each day by the occupied share of the
	// currently available fleet.
	FleetCalendar(ctx context.Context, from, to time.Time) ([]CalendarDayView, error)
}

type OccupancyRepo interface {
	OccupiedRangesByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]booking.DateRange, error)
	AllOccupiedRanges(ctx context.Context) ([]booking.DateRange, error)
	CountAvailableVehicles(ctx context.Context) (int, error)
}

type availabilityQueriesImpl struct {
	repo OccupancyRepo
}

func NewAvailabilityQueries(repo OccupancyRepo) AvailabilityQueries {
	return &availabilityQueriesImpl{repo: repo}
}

func (q *availabilityQueriesImpl) VehicleCalendar(ctx context.Context, vehicleID uuid.UUID, from, to time.Time) ([]CalendarDayView, error) {
	if err := validateWindow(from, to); err != nil {
		return nil, err
	}

	ranges, err := q.repo.OccupiedRangesByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	return materialize(availability.ForVehicle(ranges), from, to), nil
}

func (q *availabilityQueriesImpl) FleetCalendar(ctx context.Context, from, to time.Time) ([]CalendarDayView, error) {
	if err := validateWindow(from, to); err != nil {
		return nil, err
	}

	ranges, err := q.repo.AllOccupiedRanges(ctx)
	if err != nil {
		return nil, err
	}
	fleet, err := q.repo.CountAvailableVehicles(ctx)
	if err != nil {
		return nil, err
	}

	return materialize(availability.ForFleet(ranges, fleet), from, to), nil
}

func validateWindow(from, to time.Time) error {
	if booking.Day(to).Before(booking.Day(from)) {
		return errs.Mark(errs.New("calendar window end precedes start"), errs.ErrInvalidDateRange)
	}
	return nil
}

func materialize(idx availability.Index, from, to time.Time) []CalendarDayView {
	start := booking.Day(from)
	end := booking.Day(to)

	var days []CalendarDayView
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, CalendarDayView{
			Date:   d,
			Status: string(idx.Status(d)),
		})
	}
	return days
}
