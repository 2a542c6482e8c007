package source

import (
	"net/http"

	catalogUC "techdiet/internal/usecase/catalog"
)

// Register registers all catalog HTTP handlers with the given mux.
// Listing returns the combined catalog; create and delete apply to custom
// sources only, since built-ins are fixed.
func Register(mux *http.ServeMux, svc *catalogUC.Service) {
	mux.Handle("GET    /sources", ListHandler{svc})
	mux.Handle("POST   /sources", CreateHandler{svc})
	mux.Handle("DELETE /sources/", DeleteHandler{svc})
}
