package entry

import (
	"encoding/json"
	"errors"
	"net/http"

	"techdiet/internal/domain/entity"
	"techdiet/internal/handler/http/pathutil"
	"techdiet/internal/handler/http/respond"
	entryUC "techdiet/internal/usecase/entrylog"
)

type UpdateHandler struct{ Svc *entryUC.Service }

func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/entries/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	// Absent fields stay unchanged; the source reference and log date are
	// immutable regardless of what the body carries.
	var req struct {
		Title          *string `json:"title"`
		KeyInsight     *string `json:"key_insight"`
		InterviewAngle *string `json:"interview_angle"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	err = h.Svc.Update(r.Context(), entryUC.UpdateInput{
		ID:             id,
		Title:          req.Title,
		KeyInsight:     req.KeyInsight,
		InterviewAngle: req.InterviewAngle,
	})
	if err != nil {
		code := http.StatusInternalServerError
		var verr *entity.ValidationError
		if errors.Is(err, entryUC.ErrEntryNotFound) {
			code = http.StatusNotFound
		} else if errors.As(err, &verr) {
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
