// Package api implements the typed HTTP client for the store backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"nexa-store/internal/config"
	"nexa-store/internal/model"

	"github.com/rs/zerolog"
)

// Client talks JSON over HTTP to the store backend. Every non-2xx status
// and every transport failure is reported as a backend-unreachable error;
// callers fall back to local behaviour, they never crash.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a backend API client.
func NewClient(cfg config.BackendConfig, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		logger: logger.With().Str("component", "api-client").Logger(),
	}
}

// Products fetches the product catalogue.
func (c *Client) Products(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := c.getJSON(ctx, "/products", "", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// User fetches the stored user profile. The backend may return null, in
// which case both return values are nil.
func (c *Client) User(ctx context.Context) (*model.UserProfile, error) {
	var profile *model.UserProfile
	if err := c.getJSON(ctx, "/user", "", &profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Orders fetches the order history.
func (c *Client) Orders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if err := c.getJSON(ctx, "/orders", "", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// CreateOrder submits an order to the backend, which echoes it back with
// an assigned ID when it did not carry one.
func (c *Client) CreateOrder(ctx context.Context, req model.OrderRequest) (model.Order, error) {
	var created model.Order
	if err := c.postJSON(ctx, "/orders", req, &created); err != nil {
		return model.Order{}, err
	}
	return created, nil
}

// Chat sends a chat message with session context and returns the decoded
// tagged reply.
func (c *Client) Chat(ctx context.Context, req model.ChatRequest) (model.Reply, error) {
	var resp model.ChatResponse
	if err := c.postJSON(ctx, "/chat", req, &resp); err != nil {
		return nil, err
	}
	return resp.Decode(), nil
}

// AdminLogin exchanges the admin password for a bearer token.
func (c *Client) AdminLogin(ctx context.Context, password string) (string, error) {
	var resp struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	body := map[string]string{"password": password}
	if err := c.postJSON(ctx, "/admin/login", body, &resp); err != nil {
		return "", err
	}
	if !resp.Success || resp.Token == "" {
		return "", model.ErrUnauthorised
	}
	return resp.Token, nil
}

// AdminStats fetches dashboard counters using an admin bearer token.
func (c *Client) AdminStats(ctx context.Context, token string) (model.AdminStats, error) {
	var stats model.AdminStats
	if err := c.getJSON(ctx, "/admin/stats", token, &stats); err != nil {
		return model.AdminStats{}, err
	}
	return stats, nil
}

// Stylist requests styling advice for a single product.
func (c *Client) Stylist(ctx context.Context, productID int) (string, error) {
	var resp struct {
		Text string `json:"text"`
	}
	body := map[string]int{"productId": productID}
	if err := c.postJSON(ctx, "/stylist", body, &resp); err != nil {
		return "", err
	}
	return resp.Text, nil
}

func (c *Client) getJSON(ctx context.Context, path, token string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, in, out interface{}) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode request for %s: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn().
			Err(err).
			Str("path", req.URL.Path).
			Msg("backend request failed")
		return fmt.Errorf("%w: %w", model.ErrBackendUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return fmt.Errorf("%w: %s returned status %d", model.ErrUnauthorised, req.URL.Path, resp.StatusCode)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn().
			Int("status", resp.StatusCode).
			Str("path", req.URL.Path).
			Msg("backend returned non-2xx status")
		return fmt.Errorf("%w: %s returned status %d", model.ErrBackendUnreachable, req.URL.Path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: malformed response from %s: %w", model.ErrBackendUnreachable, req.URL.Path, err)
	}
	return nil
}
