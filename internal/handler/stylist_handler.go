package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"nexa-store/internal/store"

	"github.com/rs/zerolog"
)

// StylistHandler answers POST /api/stylist with canned styling advice.
type StylistHandler struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewStylistHandler creates a new stylist handler.
func NewStylistHandler(store *store.Store, logger zerolog.Logger) *StylistHandler {
	return &StylistHandler{
		store:  store,
		logger: logger.With().Str("handler", "stylist").Logger(),
	}
}

// Post handles POST /api/stylist.
func (h *StylistHandler) Post(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID int `json:"productId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload", h.logger)
		return
	}

	p, ok := h.store.ProductByID(req.ProductID)
	if !ok {
		writeError(w, http.StatusNotFound, "product not found", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"text": fmt.Sprintf("**%s** works best kept simple: build the rest of the look around it in neutral tones.", p.Title),
	})
}
