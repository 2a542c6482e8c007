package entity

import "time"

// ConsumptionEntry represents a single logged instance of having consumed
// content from a source. SourceName, Type, and Topics are denormalized copies
// of the source taken at creation time: editing or deleting a source must
// never retroactively alter the historical log.
type ConsumptionEntry struct {
	ID             string
	SourceID       string
	SourceName     string
	Type           MediaType
	Topics         []string
	Title          string
	Date           time.Time // when the entry was logged, not necessarily consumed
	KeyInsight     string
	InterviewAngle string
}

// Validate validates the fields required to log an entry.
func (e *ConsumptionEntry) Validate() error {
	if e.SourceID == "" {
		return &ValidationError{Field: "sourceId", Message: "is required"}
	}
	if e.Title == "" {
		return &ValidationError{Field: "title", Message: "is required"}
	}
	if e.KeyInsight == "" {
		return &ValidationError{Field: "keyInsight", Message: "is required"}
	}
	return nil
}
