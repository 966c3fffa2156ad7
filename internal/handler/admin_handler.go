package handler

import (
	"encoding/json"
	"net/http"

	"nexa-store/internal/store"

	"github.com/rs/zerolog"
)

// AdminHandler serves dashboard login and stats.
type AdminHandler struct {
	store    *store.Store
	password string
	logger   zerolog.Logger
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(store *store.Store, password string, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		store:    store,
		password: password,
		logger:   logger.With().Str("handler", "admin").Logger(),
	}
}

// Login handles POST /api/admin/login.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload", h.logger)
		return
	}

	if req.Password != h.password {
		h.logger.Warn().Msg("admin login rejected")
		writeJSON(w, http.StatusUnauthorized, map[string]interface{}{"success": false})
		return
	}

	token := h.store.IssueToken()
	h.logger.Info().Msg("admin login accepted")
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "token": token})
}

// Stats handles GET /api/admin/stats. Token checks happen in middleware.
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Stats())
}
