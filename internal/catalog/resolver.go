package catalog

import "fmt"

// DefaultStreamTemplate is the known pattern of SoundCloud's streaming
// endpoint. It tracks an unofficial API surface and may go stale; playback
// failures from a stale URL surface at play time, not at search time.
const DefaultStreamTemplate = "https://api.soundcloud.com/tracks/%s/stream"

// StreamResolver derives a playable stream URL from a scraped track
// identifier. The derivation is the integration point most likely to need
// ongoing maintenance, so it is pluggable rather than hard-coded into
// extraction.
type StreamResolver interface {
	Resolve(id string) string
}

// TemplateResolver builds stream URLs from a printf-style template with a
// single %s placeholder for the track identifier.
type TemplateResolver struct {
	Template string
}

// Resolve returns the stream URL for the given track identifier.
func (r TemplateResolver) Resolve(id string) string {
	tmpl := r.Template
	if tmpl == "" {
		tmpl = DefaultStreamTemplate
	}
	return fmt.Sprintf(tmpl, id)
}
