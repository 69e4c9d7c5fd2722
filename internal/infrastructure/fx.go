// Package infrastructure contains infrastructure layer components
package infrastructure

import (
	"go.uber.org/fx"

	"github.com/soundvault/audiodeck-bot/internal/infrastructure/catalog"
	"github.com/soundvault/audiodeck-bot/internal/infrastructure/logger"
	"github.com/soundvault/audiodeck-bot/internal/infrastructure/telegram"
)

// Module provides all infrastructure components for fx dependency injection
var Module = fx.Module("infrastructure",
	logger.Module,
	catalog.Module,
	telegram.Module,
)
