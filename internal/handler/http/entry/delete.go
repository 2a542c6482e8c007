package entry

import (
	"net/http"

	"techdiet/internal/handler/http/pathutil"
	"techdiet/internal/handler/http/respond"
	entryUC "techdiet/internal/usecase/entrylog"
)

type DeleteHandler struct{ Svc *entryUC.Service }

func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/entries/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.Svc.Delete(r.Context(), id); err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
