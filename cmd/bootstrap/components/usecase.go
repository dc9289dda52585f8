package components

import (
	"studio-booking/internal/domain/booking"
	"studio-booking/internal/pkg/clock"
	"studio-booking/internal/pkg/config"
	"studio-booking/internal/pkg/offertoken"
	"studio-booking/internal/usecase"
	"studio-booking/internal/usecase/commands"
	"studio-booking/internal/usecase/queries"

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
	fx.Annotate(
		booking.NewDefaultPriceCalculator,
		fx.As(new(booking.PriceCalculator)),
	),
	func(cfg config.Config, clk clock.Clock) *offertoken.Signer {
		return offertoken.NewSigner(cfg.Offer.Secret, cfg.Offer.Validity, clk)
	},
	func(cfg config.Config) commands.UsageRates {
		return commands.UsageRates{
			CopyCents:    cfg.Usage.CopyCents,
			StencilCents: cfg.Usage.StencilCents,
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewCreditCommands,
		commands.NewUsageCommands,
		commands.NewUnitCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
		queries.NewDensityQueries,
		queries.NewBookingQueries,
		queries.NewCreditQueries,
		queries.NewUnitQueries,
		queries.NewUserQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
