package vehicle

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"rentwheels/internal/domain/booking"
	"rentwheels/internal/pkg/errs"
)

type Status string

const (
	StatusAvailable   Status = "Available"
	StatusRented      Status = "Rented"
	StatusMaintenance Status = "Maintenance"
)

func NewStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusAvailable, StatusRented, StatusMaintenance:
		return Status(s), nil
	default:
		return "", errs.Mark(errs.New("invalid vehicle status"), errs.ErrDomainValidation)
	}
}

// Vehicle is a rentable unit owned by a single agent.
type Vehicle struct {
	id          uuid.UUID
	agentID     uuid.UUID
	name        string
	vehicleType string
	pricePerDay booking.Money
	status      Status
	location    string
	createdAt   time.Time
}

func NewVehicle(agentID uuid.UUID, name, vehicleType string, pricePerDay booking.Money, location string, now time.Time) (*Vehicle, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errs.Mark(errs.New("vehicle name is required"), errs.ErrDomainValidation)
	}
	if pricePerDay.Cents() <= 0 {
		return nil, errs.Mark(errs.New("price per day must be positive"), errs.ErrDomainValidation)
	}
	return &Vehicle{
		id:          uuid.New(),
		agentID:     agentID,
		name:        name,
		vehicleType: vehicleType,
		pricePerDay: pricePerDay,
		status:      StatusAvailable,
		location:    location,
		createdAt:   now,
	}, nil
}

func ReconstructVehicle(
	id, agentID uuid.UUID,
	name, vehicleType string,
	pricePerDay booking.Money,
	status Status,
	location string,
	createdAt time.Time,
) *Vehicle {
	return &Vehicle{
		id:          id,
		agentID:     agentID,
		name:        name,
		vehicleType: vehicleType,
		pricePerDay: pricePerDay,
		status:      status,
		location:    location,
		createdAt:   createdAt,
	}
}

// Update rewrites the listing fields. Status transitions go through
// SetStatus so rented vehicles keep their flag.
func (v *Vehicle) Update(name, vehicleType string, pricePerDay booking.Money, location string) error {
	if strings.TrimSpace(name) == "" {
		return errs.Mark(errs.New("vehicle name is required"), errs.ErrDomainValidation)
	}
	if pricePerDay.Cents() <= 0 {
		return errs.Mark(errs.New("price per day must be positive"), errs.ErrDomainValidation)
	}
	v.name = name
	v.vehicleType = vehicleType
	v.pricePerDay = pricePerDay
	v.location = location
	return nil
}

func (v *Vehicle) SetStatus(status Status) {
	v.status = status
}

func (v *Vehicle) IsOwnedBy(agentID uuid.UUID) bool {
	return v.agentID == agentID
}

func (v *Vehicle) IsRentable() bool {
	return v.status == StatusAvailable
}

func (v *Vehicle) ID() uuid.UUID              { return v.id }
func (v *Vehicle) AgentID() uuid.UUID         { return v.agentID }
func (v *Vehicle) Name() string               { return v.name }
func (v *Vehicle) VehicleType() string        { return v.vehicleType }
func (v *Vehicle) PricePerDay() booking.Money { return v.pricePerDay }
func (v *Vehicle) Status() Status             { return v.status }
func (v *Vehicle) Location() string           { return v.location }
func (v *Vehicle) CreatedAt() time.Time       { return v.createdAt }
