package domain

import "errors"

var (
	// ErrNoUsableMedia is returned when a catalog entry resolves to no
	// deliverable shape and is rejected at load time
	ErrNoUsableMedia = errors.New("entry has no usable media reference")

	// ErrMissingBotToken is returned when the bot token is absent
	ErrMissingBotToken = errors.New("bot token is required")

	// ErrMissingWebhookDomain is returned when webhook mode is selected
	// without a configured domain
	ErrMissingWebhookDomain = errors.New("webhook domain is required in webhook mode")
)
