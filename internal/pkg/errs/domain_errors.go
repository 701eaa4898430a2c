package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Vehicle errors
	ErrVehicleNotFound    = errors.New("vehicle not found")
	ErrVehicleUnavailable = errors.New("vehicle unavailable")
	ErrVehicleHasBookings = errors.New("vehicle has active bookings")

	// Booking errors
	ErrBookingNotFound        = errors.New("booking not found")
	ErrBookingAlreadyCanceled = errors.New("booking already cancelled")
	ErrBookingNotActive       = errors.New("booking is not active")
	ErrBookingAlreadyStarted  = errors.New("booking already started")
	ErrInvalidDateRange       = errors.New("invalid date range")

	// Cart errors
	ErrCartEmpty         = errors.New("cart is empty")
	ErrDuplicateCartItem = errors.New("duplicate cart item")
	ErrCartItemNotFound  = errors.New("cart item not found")

	// Recurring rental errors
	ErrRecurringNotFound  = errors.New("recurring rental not found")
	ErrEmptyRecurringPlan = errors.New("recurring plan yields no instances")
	ErrInvalidFrequency   = errors.New("invalid recurring frequency")
	ErrRecurringNotActive = errors.New("recurring rental is not active")
	ErrRecurringNotPaused = errors.New("recurring rental is not paused")

	// Waiting list errors
	ErrWaitlistEntryNotFound  = errors.New("waiting list entry not found")
	ErrDuplicateWaitlistEntry = errors.New("already on the waiting list for this vehicle and dates")

	// Review errors
	ErrReviewNotFound       = errors.New("review not found")
	ErrBookingNotReviewable = errors.New("booking is not eligible for review")

	// User errors
	ErrUserNotFound = errors.New("user not found")

	// Validation errors
	ErrDomainValidation       = errors.New("domain validation error")
	ErrDomainValidationFailed = errors.New("domain validation failed")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
