package catalog

// Track represents a single playable item extracted from a search result.
// Tracks are immutable once constructed; a new search replaces the whole
// result set rather than mutating tracks in place.
type Track struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Artist     string `json:"artist"`
	Duration   int    `json:"duration_seconds"`
	StreamURL  string `json:"stream_url"`
	ArtworkURL string `json:"artwork_url"`
}
