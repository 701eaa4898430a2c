package booking

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	ErrInvalidDateRange = errors.New("return date must be after pickup date")
)

// Day truncates t to midnight UTC. Rental arithmetic works on calendar
// days, never on clock time.
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns ceil((to−from)/24h). Negative when to precedes from.
func DaysBetween(from, to time.Time) int {
	return int(math.Ceil(to.Sub(from).Hours() / 24))
}

// DateRange is a pickup/return pair normalized to midnight.
type DateRange struct {
	pickup time.Time
	ret    time.Time
}

func NewDateRange(pickup, ret time.Time) (DateRange, error) {
	pickup = Day(pickup)
	ret = Day(ret)
	if !ret.After(pickup) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{pickup: pickup, ret: ret}, nil
}

func (r DateRange) Pickup() time.Time { return r.pickup }
func (r DateRange) Return() time.Time { return r.ret }

func (r DateRange) Days() int {
	return DaysBetween(r.pickup, r.ret)
}

// Overlaps reports whether two booked ranges collide. Both endpoints are
// inclusive, matching how availability treats the return day as occupied.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.pickup.After(other.ret) && !r.ret.Before(other.pickup)
}

// ContainsDay reports whether day falls inside [pickup, return] inclusive.
func (r DateRange) ContainsDay(day time.Time) bool {
	day = Day(day)
	return !day.Before(r.pickup) && !day.After(r.ret)
}

func (r DateRange) String() string {
	return fmt.Sprintf("%s/%s", r.pickup.Format("2006-01-02"), r.ret.Format("2006-01-02"))
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Dollars() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Sub(other Money) Money {
	return Money{cents: m.cents - other.cents}
}

// MulFactor scales the amount, rounding to the nearest cent.
func (m Money) MulFactor(factor float64) Money {
	return Money{cents: int64(math.Round(float64(m.cents) * factor))}
}

func (m Money) MulDays(days int) Money {
	return Money{cents: m.cents * int64(days)}
}

func (m Money) IsNegative() bool {
	return m.cents < 0
}

// ClampZero floors the amount at zero. Refunds never go negative.
func (m Money) ClampZero() Money {
	if m.cents < 0 {
		return Money{}
	}
	return m
}
