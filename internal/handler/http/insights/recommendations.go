// Package insights serves the read-only derived views: today's
// recommendations and streak statistics. Both are computed on demand from
// the log and catalog; nothing here mutates state.
package insights

import (
	"net/http"
	"time"

	"techdiet/internal/handler/http/respond"
	recUC "techdiet/internal/usecase/recommend"
)

type RecommendationDTO struct {
	SourceID   string `json:"source_id"`
	SourceName string `json:"source_name"`
	Type       string `json:"type"`
	Duration   string `json:"duration,omitempty"`
	URL        string `json:"url,omitempty"`
	Reason     string `json:"reason"`
	Priority   int    `json:"priority"`
}

type RecommendationsHandler struct{ Svc *recUC.Service }

func (h RecommendationsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	recs, err := h.Svc.Daily(r.Context(), time.Now())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	// An empty list means all caught up, still a 200.
	out := make([]RecommendationDTO, 0, len(recs))
	for _, rec := range recs {
		out = append(out, RecommendationDTO{
			SourceID:   rec.Source.ID,
			SourceName: rec.Source.Name,
			Type:       string(rec.Source.Type),
			Duration:   rec.Source.Duration,
			URL:        rec.Source.URL,
			Reason:     rec.Reason,
			Priority:   rec.Priority,
		})
	}
	respond.JSON(w, http.StatusOK, out)
}
