package handlers

import (
	"net/http"

	"github.com/padeltour/tournament-server/services"
)

type OverviewHandler struct {
	tournamentService services.TournamentService
}

func NewOverviewHandler(ts services.TournamentService) *OverviewHandler {
	return &OverviewHandler{tournamentService: ts}
}

func (h *OverviewHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.tournamentService.GetOverview(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"overview": overview}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
