package telegram

import (
	"strconv"

	"github.com/go-telegram/bot/models"

	"github.com/soundvault/audiodeck-bot/internal/domain"
)

// inlineResultLimit bounds one inline answer. The Bot API itself caps
// answers at 50 results.
const inlineResultLimit = 20

// buildResults maps matched tracks onto inline result shapes
func buildResults(tracks []domain.Track) []models.InlineQueryResult {
	results := make([]models.InlineQueryResult, 0, len(tracks))
	for _, track := range tracks {
		if result := inlineResult(track); result != nil {
			results = append(results, result)
		}
	}
	return results
}

// inlineResult maps one track onto the inline result shape of its kind
func inlineResult(track domain.Track) models.InlineQueryResult {
	id := resultID(track)

	switch track.Kind {
	case domain.TrackVoice:
		return &models.InlineQueryResultCachedVoice{
			ID:          id,
			VoiceFileID: track.FileID,
			Title:       titleOrDefault(track, "Voice"),
			Caption:     track.Caption,
		}

	case domain.TrackDocument:
		return &models.InlineQueryResultCachedDocument{
			ID:             id,
			DocumentFileID: track.FileID,
			Title:          titleOrDefault(track, "Document"),
			Caption:        track.Caption,
		}

	case domain.TrackAudio:
		return &models.InlineQueryResultCachedAudio{
			ID:          id,
			AudioFileID: track.FileID,
			Caption:     track.Caption,
		}

	case domain.TrackAudioURL:
		return &models.InlineQueryResultAudio{
			ID:        id,
			AudioURL:  track.URL,
			Title:     titleOrDefault(track, "Audio"),
			Performer: track.Performer,
			Caption:   track.Caption,
		}

	default:
		return nil
	}
}

// resultID derives the inline result identifier: the entry id, then the
// resolved media reference, then the catalog position. Entries sharing
// all three collide; known limitation.
func resultID(track domain.Track) string {
	if track.ID != "" {
		return track.ID
	}
	if track.FileID != "" {
		return track.FileID
	}
	if track.URL != "" {
		return track.URL
	}
	return strconv.Itoa(track.Pos)
}

// titleOrDefault returns the track title or a per-kind fallback
func titleOrDefault(track domain.Track, fallback string) string {
	if track.Title != "" {
		return track.Title
	}
	return fallback
}
