package user

import (
	"time"

	"github.com/google/uuid"
)

// User entity. Trip and loyalty counters are adjusted by checkout,
// recurring-rental creation and cancellation commands.
type User struct {
	id            uuid.UUID
	name          string
	email         Email
	passwordHash  string
	userType      Type
	totalTrips    int
	loyaltyPoints int64
	lastLogin     *time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

func NewUser(name string, email Email, passwordHash string, userType Type) (*User, error) {
	if len(name) == 0 {
		return nil, ErrInvalidName
	}
	return &User{
		id:           uuid.New(),
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		userType:     userType,
	}, nil
}

func ReconstructUser(
	id uuid.UUID,
	name string,
	email Email,
	passwordHash string,
	userType Type,
	totalTrips int,
	loyaltyPoints int64,
	lastLogin *time.Time,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:            id,
		name:          name,
		email:         email,
		passwordHash:  passwordHash,
		userType:      userType,
		totalTrips:    totalTrips,
		loyaltyPoints: loyaltyPoints,
		lastLogin:     lastLogin,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (u *User) IsAgent() bool {
	return u.userType == TypeAgent
}

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Name() string          { return u.name }
func (u *User) Email() Email          { return u.email }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) UserType() Type        { return u.userType }
func (u *User) TotalTrips() int       { return u.totalTrips }
func (u *User) LoyaltyPoints() int64  { return u.loyaltyPoints }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }
