package entry

import (
	"net/http"

	entryUC "techdiet/internal/usecase/entrylog"
)

// Register registers all entry-log HTTP handlers with the given mux.
// It sets up routes for listing, logging, editing, and deleting entries.
func Register(mux *http.ServeMux, svc *entryUC.Service) {
	mux.Handle("GET    /entries", ListHandler{svc})
	mux.Handle("POST   /entries", CreateHandler{svc})
	mux.Handle("PUT    /entries/", UpdateHandler{svc})
	mux.Handle("DELETE /entries/", DeleteHandler{svc})
}
