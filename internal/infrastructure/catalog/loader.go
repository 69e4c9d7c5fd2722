package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/soundvault/audiodeck-bot/internal/domain"
)

// rawEntry mirrors one object of the catalog JSON array. Every field is
// optional; resolve decides which deliverable shape the entry gets.
type rawEntry struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Performer      string `json:"performer"`
	Caption        string `json:"caption"`
	FileID         string `json:"file_id"`
	URL            string `json:"url"`
	VoiceFileID    string `json:"voice_file_id"`
	DocumentFileID string `json:"document_file_id"`
	TgType         string `json:"tg_type"`
	IsVoice        bool   `json:"is_voice"`
}

// Catalog is the in-memory audio catalog. It implements
// domain.TrackSource and never changes after Load returns.
type Catalog struct {
	tracks []domain.Track
}

// Tracks returns all valid tracks in catalog order
func (c *Catalog) Tracks() []domain.Track {
	return c.tracks
}

// Len returns the number of valid tracks
func (c *Catalog) Len() int {
	return len(c.tracks)
}

// Load reads the catalog file once and validates every entry into a
// tagged track. Read or parse failures are fatal; individual entries
// with no usable media are rejected with a logged warning.
func Load(path string, logger zerolog.Logger) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	var entries []rawEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	tracks := make([]domain.Track, 0, len(entries))
	for i, entry := range entries {
		track, err := resolve(entry, i)
		if err != nil {
			logger.Warn().
				Int("pos", i).
				Str("title", entry.Title).
				Err(err).
				Msg("Catalog entry rejected")
			continue
		}
		tracks = append(tracks, track)
	}

	logger.Info().
		Str("path", path).
		Int("entries", len(entries)).
		Int("tracks", len(tracks)).
		Msg("Audio catalog loaded")

	return &Catalog{tracks: tracks}, nil
}

// resolve maps a loose entry onto exactly one deliverable shape.
// Priority: voice, document, cached audio, URL audio.
func resolve(e rawEntry, pos int) (domain.Track, error) {
	track := domain.Track{
		ID:        e.ID,
		Title:     e.Title,
		Performer: e.Performer,
		Caption:   e.Caption,
		Pos:       pos,
	}

	voiceTagged := e.TgType == "voice" || e.IsVoice || e.VoiceFileID != ""
	documentTagged := e.TgType == "document" || e.DocumentFileID != ""

	switch {
	case voiceTagged && (e.VoiceFileID != "" || e.FileID != ""):
		track.Kind = domain.TrackVoice
		track.FileID = coalesce(e.VoiceFileID, e.FileID)

	case documentTagged && (e.DocumentFileID != "" || e.FileID != ""):
		track.Kind = domain.TrackDocument
		track.FileID = coalesce(e.DocumentFileID, e.FileID)

	case e.FileID != "":
		track.Kind = domain.TrackAudio
		track.FileID = e.FileID

	case e.URL != "":
		track.Kind = domain.TrackAudioURL
		track.URL = e.URL
		// the URL result shape requires a title
		if track.Title == "" {
			track.Title = "Audio"
		}

	default:
		return domain.Track{}, domain.ErrNoUsableMedia
	}

	return track, nil
}

// coalesce returns the first non-empty string
func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
