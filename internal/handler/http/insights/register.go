package insights

import (
	"net/http"

	recUC "techdiet/internal/usecase/recommend"
	streakUC "techdiet/internal/usecase/streak"
)

// Register registers the insight HTTP handlers with the given mux.
func Register(mux *http.ServeMux, rec *recUC.Service, streaks *streakUC.Service) {
	mux.Handle("GET    /recommendations", RecommendationsHandler{rec})
	mux.Handle("GET    /streaks", StreaksHandler{streaks})
}
