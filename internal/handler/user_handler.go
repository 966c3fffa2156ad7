package handler

import (
	"net/http"

	"nexa-store/internal/store"

	"github.com/rs/zerolog"
)

// UserHandler serves the stored visitor profile.
type UserHandler struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewUserHandler creates a new user handler.
func NewUserHandler(store *store.Store, logger zerolog.Logger) *UserHandler {
	return &UserHandler{
		store:  store,
		logger: logger.With().Str("handler", "user").Logger(),
	}
}

// Get handles GET /api/user. The body is null when no profile was saved.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.User())
}
