package components

import (
	"studio-booking/internal/pkg/clock"
	"studio-booking/internal/pkg/config"
	"studio-booking/internal/usecase/commands"
	"studio-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewPaymentCommands,
		NewMaintenanceCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewPaymentQueries,
		queries.NewWatchQueries,
	),
)

func NewMaintenanceCommands(
	repo commands.BookingRepository,
	watchRepo commands.WatchRepository,
	calendar commands.CalendarGateway,
	cfg config.Config,
) commands.MaintenanceCommands {
	return commands.NewMaintenanceCommands(repo, watchRepo, calendar, cfg.Calendar.WebhookAddress)
}
