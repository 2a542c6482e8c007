package source

import (
	"net/http"

	"techdiet/internal/handler/http/respond"
	catalogUC "techdiet/internal/usecase/catalog"
)

type ListHandler struct{ Svc *catalogUC.Service }

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	list, err := h.Svc.List(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	out := make([]DTO, 0, len(list))
	for _, s := range list {
		out = append(out, toDTO(s))
	}
	respond.JSON(w, http.StatusOK, out)
}
