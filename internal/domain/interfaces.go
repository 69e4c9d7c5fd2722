package domain

// TrackSource exposes the loaded catalog. The catalog is read-only
// after startup, so implementations need no locking.
type TrackSource interface {
	// Tracks returns all valid tracks in catalog order
	Tracks() []Track
}

// CatalogUseCase defines the business logic around the audio catalog
type CatalogUseCase interface {
	// Search returns up to limit tracks matching the free-text query,
	// preserving catalog order. An empty query matches everything.
	Search(query string, limit int) []Track

	// BuildDraft turns a private-chat audio submission into a
	// ready-to-paste catalog entry draft
	BuildDraft(meta MediaMeta) EntryDraft

	// IsAudioFile reports whether a document attachment looks like an
	// audio file, by MIME type or filename extension
	IsAudioFile(mimeType, fileName string) bool
}
