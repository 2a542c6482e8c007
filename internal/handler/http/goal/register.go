package goal

import (
	"net/http"

	goalUC "techdiet/internal/usecase/goal"
)

// Register registers the weekly goal HTTP handlers with the given mux.
func Register(mux *http.ServeMux, svc *goalUC.Service) {
	mux.Handle("GET    /goal", GetHandler{svc})
	mux.Handle("PUT    /goal", UpdateHandler{svc})
	mux.Handle("POST   /goal/reset", ResetHandler{svc})
}
