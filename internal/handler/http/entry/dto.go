package entry

import (
	"time"

	"techdiet/internal/domain/entity"
)

type DTO struct {
	ID             string    `json:"id"`
	SourceID       string    `json:"source_id"`
	SourceName     string    `json:"source_name"`
	Type           string    `json:"type"`
	Topics         []string  `json:"topics"`
	Title          string    `json:"title"`
	Date           time.Time `json:"date"`
	KeyInsight     string    `json:"key_insight"`
	InterviewAngle string    `json:"interview_angle,omitempty"`
}

func toDTO(e *entity.ConsumptionEntry) DTO {
	return DTO{
		ID:             e.ID,
		SourceID:       e.SourceID,
		SourceName:     e.SourceName,
		Type:           string(e.Type),
		Topics:         e.Topics,
		Title:          e.Title,
		Date:           e.Date,
		KeyInsight:     e.KeyInsight,
		InterviewAngle: e.InterviewAngle,
	}
}
