package components

import (
	"studio-booking/internal/handler"
	"studio-booking/internal/handler/api"
	"studio-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewAvailabilityHandler,
		api.NewBookingHandler,
		api.NewDensityHandler,
		api.NewCreditHandler,
		api.NewUsageHandler,
		api.NewUnitHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	availability *api.AvailabilityHandler,
	booking *api.BookingHandler,
	density *api.DensityHandler,
	credit *api.CreditHandler,
	usage *api.UsageHandler,
	unit *api.UnitHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:         auth,
		Availability: availability,
		Booking:      booking,
		Density:      density,
		Credit:       credit,
		Usage:        usage,
		Unit:         unit,
	}
}
