package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"nexa-store/internal/model"
	"nexa-store/internal/store"

	"github.com/rs/zerolog"
)

// ChatHandler answers POST /api/chat with canned, deterministic responses.
// It exercises every reply shape on the wire; the real conversational
// engine lives in the production backend, not here.
type ChatHandler struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(store *store.Store, logger zerolog.Logger) *ChatHandler {
	return &ChatHandler{
		store:  store,
		logger: logger.With().Str("handler", "chat").Logger(),
	}
}

// Post handles POST /api/chat.
func (h *ChatHandler) Post(w http.ResponseWriter, r *http.Request) {
	var req model.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload", h.logger)
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "message must not be empty", h.logger)
		return
	}

	h.store.CountMessage()
	writeJSON(w, http.StatusOK, h.respond(req))
}

func (h *ChatHandler) respond(req model.ChatRequest) model.ChatResponse {
	msg := strings.ToLower(req.Message)
	name := req.Context.User
	if name == "" {
		name = "there"
	}

	switch {
	case strings.Contains(msg, "hello") || strings.Contains(msg, "hi "):
		return model.NewOptionsResponse(
			fmt.Sprintf("Hello **%s**! How can I help you today?", name),
			[]string{"Show me products", "Show cart", "Place order"},
		)

	case strings.Contains(msg, "recommend") || strings.Contains(msg, "products") || strings.Contains(msg, "show me"):
		products := h.store.Products()
		if len(products) > 3 {
			products = products[:3]
		}
		return model.NewProductCardResponse("Here are a few picks for you:", products)

	default:
		return model.ChatResponse{
			Text: fmt.Sprintf("**%s**, I heard: \"%s\". The full assistant runs on the production backend.", name, req.Message),
			Type: model.ReplyTypeText,
		}
	}
}
