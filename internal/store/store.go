// Package store is the devserver's in-memory state: seeded products,
// submitted orders and dashboard counters. Nothing survives a restart;
// real persistence lives behind the production backend, not here.
package store

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"nexa-store/internal/model"

	"github.com/google/uuid"
)

// Store holds devserver state behind a single lock. Unlike the session
// engine it is served to concurrent HTTP clients, so it synchronises.
type Store struct {
	mu             sync.RWMutex
	products       []model.Product
	orders         []model.Order
	user           *model.UserProfile
	messages       int
	pendingSupport int
	tokens         map[string]struct{}
	rng            *rand.Rand
	now            func() time.Time
}

// New creates a store seeded with the given product catalogue.
func New(products []model.Product) *Store {
	return &Store{
		products: products,
		tokens:   make(map[string]struct{}),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		now:      time.Now,
	}
}

// Products returns the seeded catalogue.
func (s *Store) Products() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	products := make([]model.Product, len(s.products))
	copy(products, s.products)
	return products
}

// ProductByID looks up a seeded product.
func (s *Store) ProductByID(id int) (model.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}

// User returns the stored profile, or nil when none was saved.
func (s *Store) User() *model.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	profile := *s.user
	return &profile
}

// SetUser saves the visitor profile.
func (s *Store) SetUser(profile model.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &profile
}

// Orders returns submitted orders, newest first.
func (s *Store) Orders() []model.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	orders := make([]model.Order, len(s.orders))
	copy(orders, s.orders)
	return orders
}

// CreateOrder records an order from the request payload, assigning a
// random five-digit ID and the computed delivery date.
func (s *Store) CreateOrder(req model.OrderRequest) model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	createdAt := s.now()
	ord := model.Order{
		ID:           fmt.Sprintf("%d", 10000+s.rng.Intn(90000)),
		Items:        req.Items,
		Total:        model.RoundMoney(req.Total),
		Customer:     req.Customer,
		Status:       model.StatusPending,
		CreatedAt:    createdAt,
		DeliveryDate: createdAt.Add(model.DeliveryLeadTime),
	}
	s.orders = append([]model.Order{ord}, s.orders...)
	return ord
}

// CountMessage bumps the chat message counter for the dashboard.
func (s *Store) CountMessage() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages++
}

// Stats returns the dashboard counters.
func (s *Store) Stats() model.AdminStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.AdminStats{
		TotalOrders:    len(s.orders),
		TotalMessages:  s.messages,
		PendingSupport: s.pendingSupport,
	}
}

// IssueToken mints an admin bearer token.
func (s *Store) IssueToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	token := uuid.NewString()
	s.tokens[token] = struct{}{}
	return token
}

// ValidToken reports whether the token was issued by this store.
func (s *Store) ValidToken(token string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.tokens[token]
	return ok
}
