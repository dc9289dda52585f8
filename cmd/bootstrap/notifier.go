package bootstrap

import (
	"context"
	"log/slog"

	"studio-booking/internal/infra/notifier"
	"studio-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		NewAccessNotifier,
	),
)

// NewAccessNotifier publishes door access events over AMQP when a broker
// is configured and degrades to a no-op otherwise.
func NewAccessNotifier(lc fx.Lifecycle, cfg config.Config) (notifier.AccessNotifier, error) {
	if cfg.AMQP.URL == "" {
		slog.Info("no AMQP broker configured, access events disabled")
		return notifier.NewNoopNotifier(), nil
	}

	amqpNotifier, err := notifier.NewAMQPNotifier(cfg.AMQP.URL, cfg.AMQP.Exchange)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return amqpNotifier.Close()
		},
	})

	return amqpNotifier, nil
}
