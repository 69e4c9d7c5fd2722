package domain

import "strings"

// TrackKind discriminates how a catalog track is delivered to Telegram.
type TrackKind string

const (
	// TrackVoice is a cached voice note reference
	TrackVoice TrackKind = "voice"

	// TrackDocument is a cached document reference
	TrackDocument TrackKind = "document"

	// TrackAudio is a cached audio reference
	TrackAudio TrackKind = "audio"

	// TrackAudioURL is an externally hosted audio file
	TrackAudioURL TrackKind = "audio_url"
)

// Track is one validated catalog entry. Entries are resolved into
// exactly one deliverable kind at load time and never mutate afterwards.
type Track struct {
	ID        string
	Title     string
	Performer string
	Caption   string

	Kind TrackKind

	// FileID holds the resolved cached media reference for voice,
	// document and audio kinds.
	FileID string

	// URL holds the external reference for the audio_url kind.
	URL string

	// Pos is the position of the entry in the catalog file, used as the
	// last-resort inline result identifier.
	Pos int
}

// SearchText returns the lower-cased text an inline query is matched
// against: title and performer joined with a space.
func (t Track) SearchText() string {
	return strings.ToLower(t.Title + " " + t.Performer)
}

// MediaMeta describes an audio submission received in a private chat.
type MediaMeta struct {
	Title        string
	Performer    string
	FileName     string
	MimeType     string
	FileID       string
	FileUniqueID string

	// Document is true when the media arrived as a document attachment
	// rather than a file-based audio attachment.
	Document bool
}

// EntryDraft is a ready-to-paste catalog entry built from a submission.
type EntryDraft struct {
	ID        string
	Title     string
	Performer string

	// FileID is the captured media reference. Document selects whether
	// it belongs in the file_id or the document_file_id field of the
	// catalog file.
	FileID   string
	Document bool
}
