package integration

import (
	"net/http/httptest"
	"testing"

	"nexa-store/internal/api"
	"nexa-store/internal/catalog"
	"nexa-store/internal/config"
	"nexa-store/internal/handler"
	"nexa-store/internal/router"
	"nexa-store/internal/store"

	"github.com/rs/zerolog"
)

const testAdminPassword = "test-admin-pass"

// TestEnv is a devserver running on an httptest listener plus a client
// pointed at it.
type TestEnv struct {
	Server *httptest.Server
	Store  *store.Store
	Client *api.Client
}

// SetupTestEnv starts the full devserver handler chain in-process.
func SetupTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	logger := zerolog.Nop()
	st := store.New(catalog.Fallback())

	productHandler := handler.NewProductHandler(st, logger)
	userHandler := handler.NewUserHandler(st, logger)
	orderHandler := handler.NewOrderHandler(st, logger)
	chatHandler := handler.NewChatHandler(st, logger)
	adminHandler := handler.NewAdminHandler(st, testAdminPassword, logger)
	stylistHandler := handler.NewStylistHandler(st, logger)

	mux := router.New(st, productHandler, userHandler, orderHandler, chatHandler, adminHandler, stylistHandler, logger)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := api.NewClient(config.BackendConfig{
		BaseURL:        server.URL + "/api",
		TimeoutSeconds: 5,
	}, logger)

	return &TestEnv{Server: server, Store: st, Client: client}
}
