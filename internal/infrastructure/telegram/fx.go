package telegram

import (
	"context"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/soundvault/audiodeck-bot/config"
	delivery "github.com/soundvault/audiodeck-bot/internal/delivery/telegram"
)

// Module provides the Telegram transport for fx dependency injection
var Module = fx.Module("telegram",
	fx.Provide(provideBot),
	fx.Invoke(registerLifecycle),
)

// provideBot creates the Telegram bot from config
func provideBot(cfg *config.TelegramConfig, svc *config.ServiceConfig, router *delivery.Router, logger zerolog.Logger) (*Bot, error) {
	return NewBot(cfg, svc, router, logger)
}

// registerLifecycle ties the transport to the fx application lifecycle
func registerLifecycle(lc fx.Lifecycle, bot *Bot, logger zerolog.Logger) {
	var cancel context.CancelFunc

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			// Create a long-lived context for the transport
			var ctx context.Context
			ctx, cancel = context.WithCancel(context.Background())

			// Start the transport in a goroutine since it's a blocking call
			go func() {
				if err := bot.Start(ctx); err != nil {
					logger.Error().Err(err).Msg("Transport terminated")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if cancel != nil {
				cancel()
			}
			return bot.Stop(ctx)
		},
	})
}
