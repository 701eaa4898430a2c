package user

import "errors"

var ErrInvalidType = errors.New("invalid user type")

// Type distinguishes the two portal audiences. A customer books vehicles;
// an agent owns and manages a fleet.
type Type string

const (
	TypeCustomer Type = "customer"
	TypeAgent    Type = "agent"
)

func NewType(value string) (Type, error) {
	t := Type(value)
	switch t {
	case TypeCustomer, TypeAgent:
		return t, nil
	default:
		return "", ErrInvalidType
	}
}

func (t Type) String() string {
	return string(t)
}
