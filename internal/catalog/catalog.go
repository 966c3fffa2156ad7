// Package catalog holds the read-only product catalogue, sourced from the
// backend with a built-in fallback list when the fetch fails.
package catalog

import (
	"context"
	"strings"

	"nexa-store/internal/model"

	"github.com/rs/zerolog"
)

// Source supplies the product list, typically the backend API client.
type Source interface {
	Products(ctx context.Context) ([]model.Product, error)
}

// Store is the loaded catalogue. It is read-only after Load returns; the
// only mutation ever applied is the one-time fallback substitution.
type Store struct {
	products []model.Product
	fallback bool
	logger   zerolog.Logger
}

// Load fetches the catalogue from src. Any fetch failure falls back to the
// built-in product list; Load never fails.
func Load(ctx context.Context, src Source, logger zerolog.Logger) *Store {
	logger = logger.With().Str("component", "catalog").Logger()

	products, err := src.Products(ctx)
	if err != nil || len(products) == 0 {
		logger.Warn().
			Err(err).
			Msg("catalogue fetch failed, using fallback product list")
		return &Store{products: Fallback(), fallback: true, logger: logger}
	}

	logger.Info().
		Int("count", len(products)).
		Msg("catalogue loaded from backend")

	return &Store{products: products, logger: logger}
}

// NewStatic builds a store directly from the given products. Used by the
// devserver seed and by tests.
func NewStatic(products []model.Product, logger zerolog.Logger) *Store {
	return &Store{
		products: products,
		logger:   logger.With().Str("component", "catalog").Logger(),
	}
}

// Products returns a copy of the catalogue in load order.
func (s *Store) Products() []model.Product {
	products := make([]model.Product, len(s.products))
	copy(products, s.products)
	return products
}

// ByID looks up a product by its identifier.
func (s *Store) ByID(id int) (model.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}

// UsedFallback reports whether the built-in list was substituted.
func (s *Store) UsedFallback() bool {
	return s.fallback
}

// Len returns the number of catalogued products.
func (s *Store) Len() int {
	return len(s.products)
}

// MatchMention resolves a product mentioned in free text: the lowercased
// message must contain the product's lowercased title, or its category
// token. The first matching product in catalogue order wins.
func (s *Store) MatchMention(message string) (model.Product, bool) {
	lower := strings.ToLower(message)
	for _, p := range s.products {
		if strings.Contains(lower, strings.ToLower(p.Title)) {
			return p, true
		}
		if token := CategoryToken(p.Category); token != "" && strings.Contains(lower, token) {
			return p, true
		}
	}
	return model.Product{}, false
}

// CategoryToken normalises a category for mention matching: the lowercased
// segment before any apostrophe, so "men's clothing" matches "men".
func CategoryToken(category string) string {
	token := strings.ToLower(strings.TrimSpace(category))
	if i := strings.IndexAny(token, "'’"); i >= 0 {
		token = token[:i]
	}
	return token
}
