package source

import (
	"net/http"

	"techdiet/internal/handler/http/pathutil"
	"techdiet/internal/handler/http/respond"
	catalogUC "techdiet/internal/usecase/catalog"
)

type DeleteHandler struct{ Svc *catalogUC.Service }

func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/sources/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.Svc.DeleteCustom(r.Context(), id); err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
