// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as MediaSource and ConsumptionEntry,
// along with their validation rules and domain-specific errors.
package entity

import (
	"strings"
	"time"
	"unicode"
)

// MediaType classifies a media source by the kind of content it publishes.
type MediaType string

// Valid media types.
const (
	TypePodcast    MediaType = "podcast"
	TypeNewsletter MediaType = "newsletter"
	TypeArticle    MediaType = "article"
	TypeVideo      MediaType = "video"
)

// Valid reports whether the media type is one of the known values.
func (t MediaType) Valid() bool {
	switch t {
	case TypePodcast, TypeNewsletter, TypeArticle, TypeVideo:
		return true
	}
	return false
}

// MediaSource represents a recurring outlet of tech media (a podcast,
// newsletter, article feed, or video channel). Built-in sources come from the
// embedded seed catalog; custom sources are added by the user and persisted.
// Sources are immutable once created except for deletion.
type MediaSource struct {
	ID          string
	Name        string
	Type        MediaType
	Frequency   string         // free-text label, e.g. "Weekly", "Twice Weekly"
	PublishDays []time.Weekday // empty means no fixed schedule
	Duration    string         // optional free text, e.g. "45 min"
	Topics      []string
	BestFor     []string // descriptive tags, not used in any logic
	URL         string
	BuiltIn     bool
}

// Validate validates the MediaSource fields.
// Name, type, and frequency are required; the URL, when present, must be a
// well-formed http(s) URL.
func (s *MediaSource) Validate() error {
	if s.ID == "" {
		return &ValidationError{Field: "id", Message: "is required"}
	}
	if s.Name == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	if !s.Type.Valid() {
		return &ValidationError{Field: "type", Message: "must be podcast, newsletter, article, or video"}
	}
	if s.Frequency == "" {
		return &ValidationError{Field: "frequency", Message: "is required"}
	}
	for _, d := range s.PublishDays {
		if d < time.Sunday || d > time.Saturday {
			return &ValidationError{Field: "publishDays", Message: "must contain weekday indices 0-6"}
		}
	}
	if s.URL != "" {
		if err := ValidateURL(s.URL); err != nil {
			return err
		}
	}
	return nil
}

// PublishesOn reports whether the source has a fixed publish schedule that
// includes the given weekday.
func (s *MediaSource) PublishesOn(day time.Weekday) bool {
	for _, d := range s.PublishDays {
		if d == day {
			return true
		}
	}
	return false
}

// DurationMinutes parses the leading integer of the free-text duration field
// as a coarse minutes estimate. The second return value is false when the
// duration is missing or does not start with digits ("about 10 min" parses
// as nothing, "5 min read" parses as 5). The leading-integer rule is a
// heuristic, not a strict format; parse failures never error.
func (s *MediaSource) DurationMinutes() (int, bool) {
	str := strings.TrimSpace(s.Duration)
	i := 0
	for i < len(str) && unicode.IsDigit(rune(str[i])) {
		i++
	}
	if i == 0 {
		return 0, false
	}
	minutes := 0
	for _, r := range str[:i] {
		minutes = minutes*10 + int(r-'0')
	}
	return minutes, true
}
