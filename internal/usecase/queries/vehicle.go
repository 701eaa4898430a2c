package queries

import (
	"context"

	"github.com/google/uuid"
)

// VehicleFilter narrows the fleet listing. Zero values mean no filter.
type VehicleFilter struct {
	VehicleType string
	Location    string
	Status      string
}

// AgentEarningsView summarises bookings across an agent's fleet. Earnings
// count completed bookings at their final total, late fees included.
type AgentEarningsView struct {
	TotalBookings     int   `json:"total_bookings"`
	ActiveBookings    int   `json:"active_bookings"`
	CompletedBookings int   `json:"completed_bookings"`
	EarningsCents     int64 `json:"earnings_cents"`
}

type VehicleQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*VehicleView, error)
	List(ctx context.Context, filter VehicleFilter) ([]*VehicleView, error)
	ListByAgent(ctx context.Context, agentID uuid.UUID) ([]*VehicleView, error)
	EarningsByAgent(ctx context.Context, agentID uuid.UUID) (*AgentEarningsView, error)
}

type VehicleViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*VehicleView, error)
	FindAll(ctx context.Context, filter VehicleFilter) ([]*VehicleView, error)
	FindByAgentID(ctx context.Context, agentID uuid.UUID) ([]*VehicleView, error)
	EarningsByAgentID(ctx context.Context, agentID uuid.UUID) (*AgentEarningsView, error)
}

type vehicleQueriesImpl struct {
	repo VehicleViewRepo
}

func NewVehicleQueries(repo VehicleViewRepo) VehicleQueries {
	return &vehicleQueriesImpl{repo: repo}
}

func (q *vehicleQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*VehicleView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *vehicleQueriesImpl) List(ctx context.Context, filter VehicleFilter) ([]*VehicleView, error) {
	return q.repo.FindAll(ctx, filter)
}

func (q *vehicleQueriesImpl) ListByAgent(ctx context.Context, agentID uuid.UUID) ([]*VehicleView, error) {
	return q.repo.FindByAgentID(ctx, agentID)
}

func (q *vehicleQueriesImpl) EarningsByAgent(ctx context.Context, agentID uuid.UUID) (*AgentEarningsView, error) {
	return q.repo.EarningsByAgentID(ctx, agentID)
}
