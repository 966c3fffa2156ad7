package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"nexa-store/internal/model"
	"nexa-store/internal/store"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postChat(t *testing.T, h *ChatHandler, req model.ChatRequest) (*httptest.ResponseRecorder, model.ChatResponse) {
	t.Helper()

	payload, err := json.Marshal(req)
	require.NoError(t, err)

	httpReq := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	h.Post(rec, httpReq)

	var resp model.ChatResponse
	if rec.Code == http.StatusOK {
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	}
	return rec, resp
}

func TestChatHandler_GreetingReturnsOptions(t *testing.T) {
	h := NewChatHandler(store.New(nil), zerolog.Nop())

	rec, resp := postChat(t, h, model.ChatRequest{
		Message: "hello",
		Context: model.ChatContext{User: "Priya"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	reply, ok := resp.Decode().(model.OptionsReply)
	require.True(t, ok)
	assert.Contains(t, reply.Text, "**Priya**")
	assert.NotEmpty(t, reply.Options)
}

func TestChatHandler_ProductsReturnsCard(t *testing.T) {
	products := []model.Product{
		{ID: 1, Title: "A", Price: 1},
		{ID: 2, Title: "B", Price: 2},
		{ID: 3, Title: "C", Price: 3},
		{ID: 4, Title: "D", Price: 4},
	}
	h := NewChatHandler(store.New(products), zerolog.Nop())

	rec, resp := postChat(t, h, model.ChatRequest{Message: "show me your products"})

	require.Equal(t, http.StatusOK, rec.Code)
	reply, ok := resp.Decode().(model.ProductCardReply)
	require.True(t, ok)
	assert.Len(t, reply.Products, 3)
}

func TestChatHandler_FallbackEcho(t *testing.T) {
	h := NewChatHandler(store.New(nil), zerolog.Nop())

	rec, resp := postChat(t, h, model.ChatRequest{Message: "what is your return policy?"})

	require.Equal(t, http.StatusOK, rec.Code)
	reply, ok := resp.Decode().(model.TextReply)
	require.True(t, ok)
	assert.Contains(t, reply.Text, "return policy")
}

func TestChatHandler_EmptyMessageRejected(t *testing.T) {
	h := NewChatHandler(store.New(nil), zerolog.Nop())

	rec, _ := postChat(t, h, model.ChatRequest{Message: "   "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatHandler_CountsMessages(t *testing.T) {
	st := store.New(nil)
	h := NewChatHandler(st, zerolog.Nop())

	postChat(t, h, model.ChatRequest{Message: "hello"})
	postChat(t, h, model.ChatRequest{Message: "hello again"})

	assert.Equal(t, 2, st.Stats().TotalMessages)
}
