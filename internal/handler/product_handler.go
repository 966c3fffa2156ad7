package handler

import (
	"net/http"

	"nexa-store/internal/store"

	"github.com/rs/zerolog"
)

// ProductHandler serves the product catalogue.
type ProductHandler struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(store *store.Store, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		store:  store,
		logger: logger.With().Str("handler", "product").Logger(),
	}
}

// GetAll handles GET /api/products.
func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	products := h.store.Products()
	h.logger.Debug().Int("count", len(products)).Msg("serving product catalogue")
	writeJSON(w, http.StatusOK, products)
}
