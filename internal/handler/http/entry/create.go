package entry

import (
	"encoding/json"
	"errors"
	"net/http"

	"techdiet/internal/domain/entity"
	"techdiet/internal/handler/http/respond"
	"techdiet/internal/usecase/catalog"
	entryUC "techdiet/internal/usecase/entrylog"
)

type CreateHandler struct{ Svc *entryUC.Service }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SourceID       string `json:"source_id"`
		Title          string `json:"title"`
		KeyInsight     string `json:"key_insight"`
		InterviewAngle string `json:"interview_angle"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if req.SourceID == "" || req.Title == "" || req.KeyInsight == "" {
		respond.SafeError(w, http.StatusBadRequest,
			errors.New("source_id, title, and key_insight required"))
		return
	}
	created, err := h.Svc.Add(r.Context(), entryUC.AddInput{
		SourceID:       req.SourceID,
		Title:          req.Title,
		KeyInsight:     req.KeyInsight,
		InterviewAngle: req.InterviewAngle,
	})
	if err != nil {
		code := http.StatusInternalServerError
		var verr *entity.ValidationError
		if errors.Is(err, catalog.ErrSourceNotFound) {
			code = http.StatusBadRequest
		} else if errors.As(err, &verr) {
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(created))
}
