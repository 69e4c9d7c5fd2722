package telegram

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/soundvault/audiodeck-bot/config"
)

func TestSelectMode(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.TelegramConfig
		env  string
		want Mode
	}{
		{
			name: "no domain outside production polls",
			cfg:  config.TelegramConfig{},
			env:  "development",
			want: ModePolling,
		},
		{
			name: "force polling wins over domain",
			cfg:  config.TelegramConfig{WebhookDomain: "bot.example.com", ForcePolling: true},
			env:  "production",
			want: ModePolling,
		},
		{
			name: "domain selects webhook",
			cfg:  config.TelegramConfig{WebhookDomain: "bot.example.com"},
			env:  "development",
			want: ModeWebhook,
		},
		{
			name: "production without domain still selects webhook",
			cfg:  config.TelegramConfig{},
			env:  "production",
			want: ModeWebhook,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, SelectMode(&tt.cfg, tt.env))
		})
	}
}

func TestWebhookURL_EmbedsSecret(t *testing.T) {
	b := &Bot{
		cfg: &config.TelegramConfig{
			WebhookDomain: "bot.example.com",
			WebhookSecret: "s3cret",
		},
		logger: zerolog.Nop(),
	}

	require.Equal(t, "/webhook/s3cret", b.webhookPath())
	require.Equal(t, "https://bot.example.com/webhook/s3cret", b.webhookURL())
}

// The webhook server must exist as soon as the bot does, so a shutdown
// racing the transport start still finds something to stop.
func TestNewServer_ReadyBeforeStart(t *testing.T) {
	b := &Bot{
		mode: ModeWebhook,
		port: "3000",
		cfg: &config.TelegramConfig{
			WebhookDomain: "bot.example.com",
			WebhookSecret: "s3cret",
		},
		logger: zerolog.Nop(),
	}
	b.srv = b.newServer(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(200)
	})

	require.Equal(t, ":3000", b.srv.Addr)

	rec := httptest.NewRecorder()
	b.srv.Handler.ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))
	require.Equal(t, 200, rec.Code)
	require.JSONEq(t, `{"status":"ok","mode":"webhook"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	b.srv.Handler.ServeHTTP(rec, httptest.NewRequest("POST", "/webhook/s3cret", nil))
	require.Equal(t, 200, rec.Code)

	require.NoError(t, b.Stop(context.Background()))
}

func TestStop_NoServerIsNoop(t *testing.T) {
	b := &Bot{mode: ModePolling, logger: zerolog.Nop()}
	require.NoError(t, b.Stop(context.Background()))
}

func TestHandleHealth_ReportsMode(t *testing.T) {
	b := &Bot{mode: ModeWebhook, logger: zerolog.Nop()}

	rec := httptest.NewRecorder()
	b.handleHealth(rec, httptest.NewRequest("GET", "/health", nil))

	require.Equal(t, 200, rec.Code)
	require.JSONEq(t, `{"status":"ok","mode":"webhook"}`, rec.Body.String())
}
