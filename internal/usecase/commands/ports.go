package commands

import (
	"context"

	"rentwheels/internal/usecase/queries"
)

// AvailabilityNotifier is the outbound port for waitlist matches. The
// delivery mechanism (log line, push channel, email job) is wired at
// bootstrap; commands only emit the event.
type AvailabilityNotifier interface {
	VehicleAvailable(ctx context.Context, entry *queries.WaitlistEntryView) error
}
