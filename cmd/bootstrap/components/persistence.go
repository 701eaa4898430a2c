package components

import (
	"rentwheels/internal/infra/db"
	"rentwheels/internal/infra/notifier"
	"rentwheels/internal/infra/readstore"
	"rentwheels/internal/infra/uow"
	"rentwheels/internal/usecase/queries"
	"rentwheels/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,

		// UnitOfWork
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),

		// Read stores
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewVehicleReadStore,
			fx.As(new(queries.VehicleViewRepo)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingViewRepo)),
			fx.As(new(queries.OccupancyRepo)),
		),
		fx.Annotate(
			readstore.NewCartReadStore,
			fx.As(new(queries.CartViewRepo)),
		),
		fx.Annotate(
			readstore.NewRecurringReadStore,
			fx.As(new(queries.RecurringViewRepo)),
		),
		fx.Annotate(
			readstore.NewWaitlistReadStore,
			fx.As(new(queries.WaitlistViewRepo)),
		),
		fx.Annotate(
			readstore.NewReviewReadStore,
			fx.As(new(queries.ReviewViewRepo)),
		),

		// Outbound ports
		notifier.NewSlogNotifier,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
