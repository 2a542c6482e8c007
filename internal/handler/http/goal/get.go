package goal

import (
	"net/http"
	"time"

	"techdiet/internal/domain/entity"
	"techdiet/internal/handler/http/respond"
	goalUC "techdiet/internal/usecase/goal"
)

type DTO struct {
	Target    int    `json:"target"`
	Current   int    `json:"current"`
	WeekStart string `json:"week_start"` // YYYY-MM-DD, always a Monday
	Met       bool   `json:"met"`
}

func toDTO(g *entity.WeeklyGoal) DTO {
	return DTO{
		Target:    g.Target,
		Current:   g.Current,
		WeekStart: g.WeekStart.Format("2006-01-02"),
		Met:       g.Current >= g.Target,
	}
}

type GetHandler struct{ Svc *goalUC.Service }

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g, err := h.Svc.Get(r.Context(), time.Now())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(g))
}
