// Package catalog contains the audio catalog infrastructure
package catalog

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/soundvault/audiodeck-bot/config"
	"github.com/soundvault/audiodeck-bot/internal/domain"
)

// Module provides the audio catalog for fx dependency injection
var Module = fx.Module("catalog",
	fx.Provide(provideCatalog),
)

// provideCatalog loads the catalog at startup; failure aborts the app
// before any transport is started.
func provideCatalog(cfg *config.CatalogConfig, logger zerolog.Logger) (domain.TrackSource, error) {
	return Load(cfg.Path, logger)
}
