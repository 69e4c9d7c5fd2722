// Package telegram contains Telegram bot infrastructure
package telegram

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	tgbot "github.com/go-telegram/bot"
	"github.com/rs/zerolog"

	"github.com/soundvault/audiodeck-bot/config"
	delivery "github.com/soundvault/audiodeck-bot/internal/delivery/telegram"
	"github.com/soundvault/audiodeck-bot/internal/domain"
)

// Mode is the update transport, decided once at startup and immutable
// for the process lifetime.
type Mode string

const (
	// ModePolling receives updates via long polling
	ModePolling Mode = "polling"

	// ModeWebhook receives updates via an inbound HTTP webhook
	ModeWebhook Mode = "webhook"
)

// allowedUpdates restricts delivery to the update types the bot handles
var allowedUpdates = []string{"message", "inline_query", "chosen_inline_result"}

// SelectMode decides the transport from configuration alone: polling
// when explicitly forced, or when no webhook domain is configured
// outside production; webhook otherwise.
func SelectMode(cfg *config.TelegramConfig, env string) Mode {
	if cfg.ForcePolling {
		return ModePolling
	}
	if cfg.WebhookDomain == "" && env != config.EnvProduction {
		return ModePolling
	}
	return ModeWebhook
}

// Bot owns the Telegram connection and, in webhook mode, the HTTP
// server, exclusively for the process lifetime.
type Bot struct {
	bot    *tgbot.Bot
	mode   Mode
	cfg    *config.TelegramConfig
	port   string
	srv    *http.Server
	logger zerolog.Logger
}

// NewBot creates the Telegram bot, selects the transport mode and
// registers all update handlers. Configuration problems surface here,
// before any transport is started.
func NewBot(cfg *config.TelegramConfig, svc *config.ServiceConfig, router *delivery.Router, logger zerolog.Logger) (*Bot, error) {
	if cfg.BotToken == "" {
		return nil, domain.ErrMissingBotToken
	}

	mode := SelectMode(cfg, svc.Env)
	if mode == ModeWebhook && cfg.WebhookDomain == "" {
		return nil, domain.ErrMissingWebhookDomain
	}

	opts := []tgbot.Option{
		tgbot.WithDefaultHandler(router.HandleUpdate),
		tgbot.WithAllowedUpdates(allowedUpdates),
	}

	b, err := tgbot.New(cfg.BotToken, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	router.RegisterRoutes(b)

	logger.Info().Str("mode", string(mode)).Msg("Telegram bot created")

	bot := &Bot{
		bot:    b,
		mode:   mode,
		cfg:    cfg,
		port:   svc.Port,
		logger: logger,
	}

	// built here, not in Start, so Stop always sees the server even
	// when shutdown arrives before the webhook registration finishes
	if mode == ModeWebhook {
		bot.srv = bot.newServer(b.WebhookHandler())
	}

	return bot, nil
}

// newServer builds the HTTP server for webhook mode: the secret
// webhook path and the unauthenticated health check.
func (b *Bot) newServer(webhook http.HandlerFunc) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc(b.webhookPath(), webhook)
	mux.HandleFunc("/health", b.handleHealth)

	return &http.Server{Addr: ":" + b.port, Handler: mux}
}

// Mode returns the selected transport mode
func (b *Bot) Mode() Mode {
	return b.mode
}

// Start runs the selected transport (blocking call)
func (b *Bot) Start(ctx context.Context) error {
	if b.mode == ModeWebhook {
		return b.startWebhook(ctx)
	}
	return b.startPolling(ctx)
}

// startPolling clears any stale webhook registration and long-polls
func (b *Bot) startPolling(ctx context.Context) error {
	// a leftover webhook registration blocks getUpdates
	if _, err := b.bot.DeleteWebhook(ctx, &tgbot.DeleteWebhookParams{}); err != nil {
		b.logger.Warn().Err(err).Msg("Failed to clear webhook registration")
	}

	b.logger.Info().Msg("Starting Telegram bot (long polling)...")
	b.bot.Start(ctx)
	b.logger.Info().Msg("Telegram bot stopped")
	return nil
}

// startWebhook registers the webhook URL and serves it over HTTP
func (b *Bot) startWebhook(ctx context.Context) error {
	url := b.webhookURL()

	_, err := b.bot.SetWebhook(ctx, &tgbot.SetWebhookParams{
		URL:            url,
		AllowedUpdates: allowedUpdates,
	})
	if err != nil {
		return fmt.Errorf("failed to register webhook: %w", err)
	}

	// updates posted to the handler are dispatched by StartWebhook
	go b.bot.StartWebhook(ctx)

	b.logger.Info().
		Str("addr", b.srv.Addr).
		Str("path", b.webhookPath()).
		Msg("Starting Telegram bot (webhook)...")

	if err := b.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("webhook server failed: %w", err)
	}

	b.logger.Info().Msg("Telegram bot stopped")
	return nil
}

// Stop shuts down the webhook server, if one is running
func (b *Bot) Stop(ctx context.Context) error {
	b.logger.Info().Msg("Stopping Telegram bot...")

	if b.srv == nil {
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return b.srv.Shutdown(shutdownCtx)
}

// webhookPath embeds the secret so only the upstream service can post
// updates to it.
func (b *Bot) webhookPath() string {
	return "/webhook/" + b.cfg.WebhookSecret
}

// webhookURL is the public URL registered with Telegram
func (b *Bot) webhookURL() string {
	return "https://" + b.cfg.WebhookDomain + b.webhookPath()
}

// handleHealth reports the active transport mode, unauthenticated
func (b *Bot) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"status":"ok","mode":%q}`, b.mode)
}
