package telegram

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/soundvault/audiodeck-bot/internal/domain"
	"github.com/soundvault/audiodeck-bot/internal/usecase"
)

// emptySource is a track source with no tracks
type emptySource struct{}

func (emptySource) Tracks() []domain.Track {
	return nil
}

func newTestRouter() *Router {
	return NewRouter(usecase.NewCatalogUseCase(emptySource{}, zerolog.Nop()), zerolog.Nop())
}

func TestStartPayload(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		payload string
		ok      bool
	}{
		{name: "bare start", text: "/start", payload: "", ok: true},
		{name: "deep link payload", text: "/start id", payload: "id", ok: true},
		{name: "addressed to bot", text: "/start@audiodeck_bot id", payload: "id", ok: true},
		{name: "unknown payload kept", text: "/start promo", payload: "promo", ok: true},
		{name: "other command with same prefix", text: "/starting soon", ok: false},
		{name: "empty text", text: "", ok: false},
		{name: "whitespace only", text: "   ", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, ok := startPayload(tt.text)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.payload, payload)
		})
	}
}

func TestWantsID(t *testing.T) {
	require.True(t, wantsID("id"))
	require.True(t, wantsID("getid"))
	require.True(t, wantsID("GetID"))
	require.True(t, wantsID("ID"))
	require.False(t, wantsID(""))
	require.False(t, wantsID("promo"))
}

// A nil bot proves no reply is attempted: any send would panic.
func TestHandleMessage_IgnoresNonPrivateChats(t *testing.T) {
	r := newTestRouter()

	r.handleMessage(context.Background(), nil, &models.Message{
		Chat:  models.Chat{ID: -100, Type: models.ChatTypeGroup},
		Audio: &models.Audio{FileID: "F1", Title: "Intro"},
	})
}

func TestHandleStart_IgnoresOtherCommands(t *testing.T) {
	r := newTestRouter()

	r.handleStart(context.Background(), nil, &models.Update{
		Message: &models.Message{
			Chat: models.Chat{ID: 1, Type: models.ChatTypePrivate},
			Text: "/starting soon",
		},
	})
}

func TestSubmissionMeta(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		name     string
		msg      *models.Message
		ok       bool
		document bool
		fileID   string
	}{
		{
			name: "audio attachment",
			msg: &models.Message{
				Audio: &models.Audio{FileID: "A1", Title: "Intro", Performer: "The Band"},
			},
			ok:     true,
			fileID: "A1",
		},
		{
			name: "audio document",
			msg: &models.Message{
				Document: &models.Document{FileID: "D1", FileName: "mix.mp3", MimeType: "application/octet-stream"},
			},
			ok:       true,
			document: true,
			fileID:   "D1",
		},
		{
			name: "non-audio document",
			msg: &models.Message{
				Document: &models.Document{FileID: "D2", FileName: "notes.pdf", MimeType: "application/pdf"},
			},
			ok: false,
		},
		{
			name: "bare voice note",
			msg: &models.Message{
				Voice: &models.Voice{FileID: "V1"},
			},
			ok: false,
		},
		{
			name: "plain text",
			msg:  &models.Message{Text: "hello"},
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, ok := r.submissionMeta(tt.msg)
			require.Equal(t, tt.ok, ok)
			if !tt.ok {
				return
			}
			require.Equal(t, tt.document, meta.Document)
			require.Equal(t, tt.fileID, meta.FileID)
		})
	}
}

func TestRenderDraft_Audio(t *testing.T) {
	rendered, err := renderDraft(domain.EntryDraft{
		ID:        "band_intro",
		Title:     "Intro",
		Performer: "The Band",
		FileID:    "F1",
	})
	require.NoError(t, err)

	var entry map[string]string
	require.NoError(t, json.Unmarshal([]byte(rendered), &entry))
	require.Equal(t, "F1", entry["file_id"])
	require.Equal(t, "Intro", entry["title"])
	require.NotContains(t, entry, "document_file_id")
}

func TestRenderDraft_Document(t *testing.T) {
	rendered, err := renderDraft(domain.EntryDraft{
		ID:       "summer_mix",
		Title:    "summer mix",
		FileID:   "D1",
		Document: true,
	})
	require.NoError(t, err)

	var entry map[string]string
	require.NoError(t, json.Unmarshal([]byte(rendered), &entry))
	require.Equal(t, "D1", entry["document_file_id"])
	require.NotContains(t, entry, "file_id")
}
