package notifier

import (
	"context"
	"log/slog"

	"rentwheels/internal/usecase/commands"
	"rentwheels/internal/usecase/queries"
)

// SlogNotifier reports waitlist matches as structured log lines. A real
// delivery channel (email, push) can replace it behind the same port.
type SlogNotifier struct {
	logger *slog.Logger
}

func NewSlogNotifier(logger *slog.Logger) commands.AvailabilityNotifier {
	return &SlogNotifier{logger: logger}
}

func (n *SlogNotifier) VehicleAvailable(_ context.Context, entry *queries.WaitlistEntryView) error {
	n.logger.Info("vehicle available for waitlist entry",
		"entry_id", entry.ID,
		"user_id", entry.UserID,
		"vehicle_id", entry.VehicleID,
		"pickup_date", entry.PickupDate,
		"return_date", entry.ReturnDate,
	)
	return nil
}
