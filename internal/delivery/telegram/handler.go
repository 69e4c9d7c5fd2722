package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"

	"github.com/soundvault/audiodeck-bot/internal/domain"
)

// replyTimeout is the coarse deadline for one outbound reply
const replyTimeout = 10 * time.Second

const usageText = "Это инлайн-бот с каталогом аудио. 🎧\n\n" +
	"Наберите в любом чате:\n" +
	"@имя_бота <запрос>\n" +
	"и выберите трек из списка.\n\n" +
	"/id — показать идентификаторы чата и отправителя"

const voiceHintText = "Голосовое сообщение нельзя положить в каталог. " +
	"Отправьте трек файлом (аудио или документ), пожалуйста."

// Router routes Telegram updates to the catalog use case
type Router struct {
	catalog domain.CatalogUseCase
	logger  zerolog.Logger
}

// NewRouter creates a new update router
func NewRouter(catalog domain.CatalogUseCase, logger zerolog.Logger) *Router {
	return &Router{
		catalog: catalog,
		logger:  logger,
	}
}

// RegisterRoutes registers command handlers on the bot
func (r *Router) RegisterRoutes(b *tgbot.Bot) {
	b.RegisterHandler(tgbot.HandlerTypeMessageText, "/start", tgbot.MatchTypePrefix, r.handleStart)
	b.RegisterHandler(tgbot.HandlerTypeMessageText, "/id", tgbot.MatchTypeExact, r.handleID)
	b.RegisterHandler(tgbot.HandlerTypeMessageText, "/myid", tgbot.MatchTypeExact, r.handleID)
}

// HandleUpdate is the default handler: inline queries, chosen inline
// results and private-chat audio submissions.
func (r *Router) HandleUpdate(ctx context.Context, b *tgbot.Bot, update *models.Update) {
	switch {
	case update.InlineQuery != nil:
		r.handleInlineQuery(ctx, b, update.InlineQuery)
	case update.ChosenInlineResult != nil:
		r.handleChosenResult(update.ChosenInlineResult)
	case update.Message != nil:
		r.handleMessage(ctx, b, update.Message)
	}
}

// handleInlineQuery answers an inline query with matching tracks
func (r *Router) handleInlineQuery(ctx context.Context, b *tgbot.Bot, query *models.InlineQuery) {
	tracks := r.catalog.Search(query.Query, inlineResultLimit)
	results := buildResults(tracks)

	ctx, cancel := context.WithTimeout(ctx, replyTimeout)
	defer cancel()

	_, err := b.AnswerInlineQuery(ctx, &tgbot.AnswerInlineQueryParams{
		InlineQueryID: query.ID,
		Results:       results,
		CacheTime:     1,
		IsPersonal:    true,
	})
	if err != nil {
		r.logger.Error().
			Str("query", query.Query).
			Err(err).
			Msg("Failed to answer inline query")
		return
	}

	r.logger.Info().
		Str("query", query.Query).
		Int("results", len(results)).
		Msg("Inline query answered")
}

// handleChosenResult logs which result the user picked; no further action
func (r *Router) handleChosenResult(chosen *models.ChosenInlineResult) {
	r.logger.Info().
		Str("result_id", chosen.ResultID).
		Str("query", chosen.Query).
		Int64("user_id", chosen.From.ID).
		Msg("Inline result chosen")
}

// handleStart handles /start, including deep-link payloads
func (r *Router) handleStart(ctx context.Context, b *tgbot.Bot, update *models.Update) {
	msg := update.Message
	if msg == nil {
		return
	}

	// prefix registration also catches commands like /starting
	payload, ok := startPayload(msg.Text)
	if !ok {
		return
	}

	if wantsID(payload) {
		r.replyID(ctx, b, msg)
		return
	}

	r.sendMessage(ctx, b, msg.Chat.ID, usageText, "")
}

// startPayload returns the deep-link payload of a /start command, or
// ok=false when the text is some other command entirely.
func startPayload(text string) (string, bool) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return "", false
	}
	if fields[0] != "/start" && !strings.HasPrefix(fields[0], "/start@") {
		return "", false
	}
	if len(fields) > 1 {
		return fields[1], true
	}
	return "", true
}

// wantsID reports whether a /start payload requests the /id behavior
func wantsID(payload string) bool {
	switch strings.ToLower(payload) {
	case "id", "getid":
		return true
	}
	return false
}

// handleID handles /id and /myid
func (r *Router) handleID(ctx context.Context, b *tgbot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	r.replyID(ctx, b, update.Message)
}

// replyID replies with the chat and sender identifiers, best effort
func (r *Router) replyID(ctx context.Context, b *tgbot.Bot, msg *models.Message) {
	text := fmt.Sprintf("Чат: %d (%s)", msg.Chat.ID, msg.Chat.Type)
	if msg.From != nil {
		text += fmt.Sprintf("\nОтправитель: %d", msg.From.ID)
		if msg.From.Username != "" {
			text += " (@" + msg.From.Username + ")"
		}
	}

	r.sendMessage(ctx, b, msg.Chat.ID, text, "")
}

// handleMessage handles non-command private messages: audio and
// audio-document submissions become catalog entry drafts. Everything
// outside private chats is ignored.
func (r *Router) handleMessage(ctx context.Context, b *tgbot.Bot, msg *models.Message) {
	if msg.Chat.Type != models.ChatTypePrivate {
		return
	}

	if meta, ok := r.submissionMeta(msg); ok {
		r.replyDraft(ctx, b, msg.Chat.ID, meta)
		return
	}

	if msg.Voice != nil {
		r.sendMessage(ctx, b, msg.Chat.ID, voiceHintText, "")
	}
}

// submissionMeta extracts the media reference of an audio submission:
// a file-based audio attachment, or a document that looks like audio.
// Bare voice notes and everything else are not submissions.
func (r *Router) submissionMeta(msg *models.Message) (domain.MediaMeta, bool) {
	if msg.Audio != nil {
		return domain.MediaMeta{
			Title:        msg.Audio.Title,
			Performer:    msg.Audio.Performer,
			FileName:     msg.Audio.FileName,
			MimeType:     msg.Audio.MimeType,
			FileID:       msg.Audio.FileID,
			FileUniqueID: msg.Audio.FileUniqueID,
		}, true
	}

	if msg.Document != nil && r.catalog.IsAudioFile(msg.Document.MimeType, msg.Document.FileName) {
		return domain.MediaMeta{
			FileName:     msg.Document.FileName,
			MimeType:     msg.Document.MimeType,
			FileID:       msg.Document.FileID,
			FileUniqueID: msg.Document.FileUniqueID,
			Document:     true,
		}, true
	}

	return domain.MediaMeta{}, false
}

// replyDraft echoes a ready-to-paste catalog entry for the submission
func (r *Router) replyDraft(ctx context.Context, b *tgbot.Bot, chatID int64, meta domain.MediaMeta) {
	draft := r.catalog.BuildDraft(meta)

	rendered, err := renderDraft(draft)
	if err != nil {
		r.logger.Error().Err(err).Msg("Failed to render catalog entry draft")
		return
	}

	text := "Черновик записи каталога, добавьте его в audios.json:\n<pre>" + rendered + "</pre>"
	r.sendMessage(ctx, b, chatID, text, models.ParseModeHTML)

	r.logger.Info().
		Str("draft_id", draft.ID).
		Int64("chat_id", chatID).
		Msg("Catalog entry draft sent")
}

// draftJSON is the catalog file representation of a draft
type draftJSON struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Performer      string `json:"performer,omitempty"`
	FileID         string `json:"file_id,omitempty"`
	DocumentFileID string `json:"document_file_id,omitempty"`
}

// renderDraft marshals a draft the way it appears in the catalog file
func renderDraft(draft domain.EntryDraft) (string, error) {
	entry := draftJSON{
		ID:        draft.ID,
		Title:     draft.Title,
		Performer: draft.Performer,
	}
	if draft.Document {
		entry.DocumentFileID = draft.FileID
	} else {
		entry.FileID = draft.FileID
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal draft: %w", err)
	}
	return string(data), nil
}

// sendMessage sends a text message, logging and swallowing failures
func (r *Router) sendMessage(ctx context.Context, b *tgbot.Bot, chatID int64, text string, parseMode models.ParseMode) {
	ctx, cancel := context.WithTimeout(ctx, replyTimeout)
	defer cancel()

	_, err := b.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID:    chatID,
		Text:      text,
		ParseMode: parseMode,
	})
	if err != nil {
		r.logger.Error().
			Int64("chat_id", chatID).
			Err(err).
			Msg("Failed to send Telegram message")
	}
}
