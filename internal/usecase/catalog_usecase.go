package usecase

import (
	"path/filepath"
	"strings"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/soundvault/audiodeck-bot/internal/domain"
)

// audioExtensions lists filename extensions accepted as audio when a
// document carries no audio/* MIME type.
var audioExtensions = map[string]bool{
	".aac":  true,
	".flac": true,
	".m4a":  true,
	".mp3":  true,
	".oga":  true,
	".ogg":  true,
	".opus": true,
	".wav":  true,
	".wma":  true,
}

// catalogUseCase implements domain.CatalogUseCase
type catalogUseCase struct {
	source domain.TrackSource
	logger zerolog.Logger
}

// NewCatalogUseCase creates a new catalog use case
func NewCatalogUseCase(source domain.TrackSource, logger zerolog.Logger) domain.CatalogUseCase {
	return &catalogUseCase{
		source: source,
		logger: logger,
	}
}

// Search returns up to limit tracks matching the free-text query.
// The query is matched lower-cased as a substring of each track's
// title-plus-performer text; an empty query matches everything.
// Catalog order is preserved, no ranking is applied.
func (u *catalogUseCase) Search(query string, limit int) []domain.Track {
	if limit <= 0 {
		return nil
	}

	normalized := strings.ToLower(query)
	tracks := u.source.Tracks()

	matched := make([]domain.Track, 0, limit)
	for _, track := range tracks {
		if normalized != "" && !strings.Contains(track.SearchText(), normalized) {
			continue
		}
		matched = append(matched, track)
		if len(matched) == limit {
			break
		}
	}

	return matched
}

// BuildDraft turns an audio submission into a catalog entry draft with
// a derived identifier and an inferred title.
func (u *catalogUseCase) BuildDraft(meta domain.MediaMeta) domain.EntryDraft {
	title := meta.Title
	if title == "" {
		title = trimExtension(meta.FileName)
	}
	if title == "" {
		title = "Audio"
	}

	id := slugify(strings.TrimSpace(meta.Performer + " " + title))
	if id == "" {
		id = strings.ToLower(meta.FileUniqueID)
	}

	u.logger.Debug().
		Str("id", id).
		Str("title", title).
		Bool("document", meta.Document).
		Msg("Built catalog entry draft")

	return domain.EntryDraft{
		ID:        id,
		Title:     title,
		Performer: meta.Performer,
		FileID:    meta.FileID,
		Document:  meta.Document,
	}
}

// IsAudioFile reports whether a document looks like an audio file
func (u *catalogUseCase) IsAudioFile(mimeType, fileName string) bool {
	if strings.HasPrefix(mimeType, "audio/") {
		return true
	}
	return audioExtensions[strings.ToLower(filepath.Ext(fileName))]
}

// trimExtension strips the filename extension, if any
func trimExtension(fileName string) string {
	return strings.TrimSuffix(fileName, filepath.Ext(fileName))
}

// slugify lowers the text and squashes every non-alphanumeric run into
// a single underscore.
func slugify(text string) string {
	var b strings.Builder
	lastUnderscore := true
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastUnderscore = false
			continue
		}
		if !lastUnderscore {
			b.WriteRune('_')
			lastUnderscore = true
		}
	}
	return strings.Trim(b.String(), "_")
}
