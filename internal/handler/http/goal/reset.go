package goal

import (
	"net/http"
	"time"

	"techdiet/internal/handler/http/respond"
	goalUC "techdiet/internal/usecase/goal"
)

// ResetHandler rolls the goal week forward when a new week has started.
// Calling it mid-week is a harmless no-op, so clients may hit it eagerly.
type ResetHandler struct{ Svc *goalUC.Service }

func (h ResetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	if err := h.Svc.ResetWeekIfNeeded(r.Context(), now); err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	g, err := h.Svc.Get(r.Context(), now)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(g))
}
