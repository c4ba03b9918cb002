package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/padeltour/tournament-server/services"
)

type BracketHandler struct {
	bracketService services.BracketService
}

func NewBracketHandler(bs services.BracketService) *BracketHandler {
	return &BracketHandler{bracketService: bs}
}

func (h *BracketHandler) GetBracket(w http.ResponseWriter, r *http.Request) {
	slots, err := h.bracketService.GetBracket(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"bracket": slots}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *BracketHandler) UpdateSlot(w http.ResponseWriter, r *http.Request) {
	slotUID := chi.URLParam(r, "slotUID")
	if slotUID == "" {
		badRequestResponse(w, r, fmt.Errorf("missing slotUID in URL path"))
		return
	}

	var input services.UpdateSlotInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	slots, err := h.bracketService.UpdateSlot(r.Context(), slotUID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"bracket": slots}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *BracketHandler) ResetBracket(w http.ResponseWriter, r *http.Request) {
	slots, err := h.bracketService.ResetBracket(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"bracket": slots}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
