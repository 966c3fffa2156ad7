package handler

import (
	"encoding/json"
	"net/http"

	"nexa-store/internal/model"
	"nexa-store/internal/store"

	"github.com/rs/zerolog"
)

// OrderHandler serves the order history and accepts new orders.
type OrderHandler struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(store *store.Store, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		store:  store,
		logger: logger.With().Str("handler", "order").Logger(),
	}
}

// List handles GET /api/orders.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Orders())
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload", h.logger)
		return
	}

	if len(req.Items) == 0 {
		writeError(w, http.StatusBadRequest, "order must contain at least one item", h.logger)
		return
	}

	ord := h.store.CreateOrder(req)
	h.logger.Info().
		Str("order_id", ord.ID).
		Float64("total", ord.Total).
		Int("item_count", len(ord.Items)).
		Msg("order recorded")

	writeJSON(w, http.StatusCreated, ord)
}
