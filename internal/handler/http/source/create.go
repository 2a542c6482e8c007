package source

import (
	"encoding/json"
	"errors"
	"net/http"

	"techdiet/internal/domain/entity"
	"techdiet/internal/handler/http/respond"
	catalogUC "techdiet/internal/usecase/catalog"
)

type CreateHandler struct{ Svc *catalogUC.Service }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID          string   `json:"id"`
		Name        string   `json:"name"`
		Type        string   `json:"type"`
		Frequency   string   `json:"frequency"`
		PublishDays []int    `json:"publish_days"`
		Duration    string   `json:"duration"`
		Topics      []string `json:"topics"`
		BestFor     []string `json:"best_for"`
		URL         string   `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Name == "" || req.Type == "" || req.Frequency == "" {
		respond.SafeError(w, http.StatusBadRequest,
			errors.New("name, type, and frequency required"))
		return
	}
	created, err := h.Svc.AddCustom(r.Context(), catalogUC.CreateInput{
		ID:          req.ID,
		Name:        req.Name,
		Type:        entity.MediaType(req.Type),
		Frequency:   req.Frequency,
		PublishDays: toWeekdays(req.PublishDays),
		Duration:    req.Duration,
		Topics:      req.Topics,
		BestFor:     req.BestFor,
		URL:         req.URL,
	})
	if err != nil {
		code := http.StatusInternalServerError
		var verr *entity.ValidationError
		if errors.Is(err, catalogUC.ErrDuplicateSource) {
			code = http.StatusConflict
		} else if errors.As(err, &verr) {
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(created))
}
