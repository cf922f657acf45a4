package bootstrap

import (
	"context"
	"time"

	"studio-booking/internal/infra/gateway"
	"studio-booking/internal/pkg/config"
	"studio-booking/internal/usecase/commands"
	"studio-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		NewStudioLocation,
		fx.Annotate(
			NewStripeGateway,
			fx.As(new(commands.PaymentGateway)),
			fx.As(new(queries.SessionTypeReader)),
		),
		fx.Annotate(
			NewCalendarGateway,
			fx.As(new(commands.CalendarGateway)),
		),
	),
)

// NewStudioLocation loads the civil timezone all wall-clock booking times are
// interpreted in. A bad zone name is a deployment error, fail fast.
func NewStudioLocation(cfg config.Config) (*time.Location, error) {
	return time.LoadLocation(cfg.Calendar.TimeZone)
}

func NewStripeGateway(cfg config.Config) *gateway.StripeGateway {
	return gateway.NewStripeGateway(cfg.Stripe.APIKey)
}

func NewCalendarGateway(cfg config.Config) (*gateway.GoogleCalendarGateway, error) {
	return gateway.NewGoogleCalendarGateway(context.Background(), cfg.Calendar)
}
