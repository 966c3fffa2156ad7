package router

import (
	"net/http"

	"nexa-store/internal/handler"
	"nexa-store/internal/middleware"
	"nexa-store/internal/store"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// New creates the devserver router with all routes and middleware
// configured. Routes live under /api to match the backend contract.
func New(
	st *store.Store,
	productHandler *handler.ProductHandler,
	userHandler *handler.UserHandler,
	orderHandler *handler.OrderHandler,
	chatHandler *handler.ChatHandler,
	adminHandler *handler.AdminHandler,
	stylistHandler *handler.StylistHandler,
	logger zerolog.Logger,
) http.Handler {
	r := mux.NewRouter()

	// Health check endpoint (no authentication required)
	r.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/products", productHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/user", userHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/orders", orderHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/orders", orderHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/chat", chatHandler.Post).Methods(http.MethodPost)
	api.HandleFunc("/admin/login", adminHandler.Login).Methods(http.MethodPost)
	api.Handle("/admin/stats",
		middleware.BearerAuth(st.ValidToken, logger)(http.HandlerFunc(adminHandler.Stats)),
	).Methods(http.MethodGet)
	api.HandleFunc("/stylist", stylistHandler.Post).Methods(http.MethodPost)

	// Apply middleware in order: Recovery -> Logging -> CORS
	var h http.Handler = r
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
