package components

import (
	"rentwheels/internal/pkg/clock"
	"rentwheels/internal/usecase"
	"rentwheels/internal/usecase/commands"
	"rentwheels/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewVehicleCommands,
		commands.NewCartCommands,
		commands.NewBookingCommands,
		commands.NewRecurringCommands,
		commands.NewWaitlistCommands,
		commands.NewReviewCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewVehicleQueries,
		queries.NewBookingQueries,
		queries.NewAvailabilityQueries,
		queries.NewCartQueries,
		queries.NewRecurringQueries,
		queries.NewWaitlistQueries,
		queries.NewReviewQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
