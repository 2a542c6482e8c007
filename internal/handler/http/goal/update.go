package goal

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"techdiet/internal/domain/entity"
	"techdiet/internal/handler/http/respond"
	goalUC "techdiet/internal/usecase/goal"
)

type UpdateHandler struct{ Svc *goalUC.Service }

func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Target *int `json:"target"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Target == nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("target required"))
		return
	}

	now := time.Now()
	if err := h.Svc.UpdateTarget(r.Context(), now, *req.Target); err != nil {
		code := http.StatusInternalServerError
		var verr *entity.ValidationError
		if errors.As(err, &verr) {
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}

	g, err := h.Svc.Get(r.Context(), now)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(g))
}
