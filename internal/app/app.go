// Package app contains application bootstrap
package app

import (
	"go.uber.org/fx"

	"github.com/soundvault/audiodeck-bot/config"
	delivery "github.com/soundvault/audiodeck-bot/internal/delivery/telegram"
	"github.com/soundvault/audiodeck-bot/internal/infrastructure"
	"github.com/soundvault/audiodeck-bot/internal/usecase"
)

// CreateApp creates fx application with all modules
func CreateApp() fx.Option {
	return fx.Options(
		// Configuration
		fx.Provide(config.Out),

		// Infrastructure (logger, catalog, telegram transport)
		infrastructure.Module,

		// Catalog business logic and update routing
		fx.Provide(usecase.NewCatalogUseCase),
		fx.Provide(delivery.NewRouter),
	)
}
