package components

import (
	"rentwheels/internal/handler"
	"rentwheels/internal/handler/api"
	"rentwheels/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewVehicleHandler,
		api.NewCartHandler,
		api.NewBookingHandler,
		api.NewAvailabilityHandler,
		api.NewRecurringHandler,
		api.NewWaitlistHandler,
		api.NewReviewHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	vehicle *api.VehicleHandler,
	cart *api.CartHandler,
	booking *api.BookingHandler,
	availability *api.AvailabilityHandler,
	recurring *api.RecurringHandler,
	waitlist *api.WaitlistHandler,
	review *api.ReviewHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:         auth,
		Vehicle:      vehicle,
		Cart:         cart,
		Booking:      booking,
		Availability: availability,
		Recurring:    recurring,
		Waitlist:     waitlist,
		Review:       review,
	}
}
