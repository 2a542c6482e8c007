package source

import (
	"time"

	"techdiet/internal/domain/entity"
)

type DTO struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Frequency   string   `json:"frequency"`
	PublishDays []int    `json:"publish_days"` // weekday indices, Sunday = 0
	Duration    string   `json:"duration,omitempty"`
	Topics      []string `json:"topics"`
	BestFor     []string `json:"best_for"`
	URL         string   `json:"url,omitempty"`
	BuiltIn     bool     `json:"built_in"`
}

func toDTO(s *entity.MediaSource) DTO {
	days := make([]int, 0, len(s.PublishDays))
	for _, d := range s.PublishDays {
		days = append(days, int(d))
	}
	return DTO{
		ID:          s.ID,
		Name:        s.Name,
		Type:        string(s.Type),
		Frequency:   s.Frequency,
		PublishDays: days,
		Duration:    s.Duration,
		Topics:      s.Topics,
		BestFor:     s.BestFor,
		URL:         s.URL,
		BuiltIn:     s.BuiltIn,
	}
}

func toWeekdays(days []int) []time.Weekday {
	out := make([]time.Weekday, 0, len(days))
	for _, d := range days {
		out = append(out, time.Weekday(d))
	}
	return out
}
