package store

import (
	"regexp"
	"testing"
	"time"

	"nexa-store/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_CreateOrder(t *testing.T) {
	s := New(nil)
	fixed := time.Date(2026, time.June, 1, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	req := model.OrderRequest{
		Items:    []model.CartItem{{Product: model.Product{ID: 1, Title: "A", Price: 10}, Quantity: 2}},
		Total:    20,
		Customer: "Priya",
	}

	ord := s.CreateOrder(req)

	assert.Regexp(t, regexp.MustCompile(`^[1-9][0-9]{4}$`), ord.ID)
	assert.Equal(t, model.StatusPending, ord.Status)
	assert.Equal(t, fixed, ord.CreatedAt)
	assert.Equal(t, fixed.Add(5*24*time.Hour), ord.DeliveryDate)
	assert.Equal(t, 20.0, ord.Total)

	orders := s.Orders()
	require.Len(t, orders, 1)
	assert.Equal(t, ord.ID, orders[0].ID)
}

func TestStore_OrdersNewestFirst(t *testing.T) {
	s := New(nil)

	first := s.CreateOrder(model.OrderRequest{Total: 1})
	second := s.CreateOrder(model.OrderRequest{Total: 2})

	orders := s.Orders()
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)
}

func TestStore_UserRoundTrip(t *testing.T) {
	s := New(nil)
	assert.Nil(t, s.User())

	s.SetUser(model.UserProfile{Name: "Priya", Phone: "9876543210"})

	profile := s.User()
	require.NotNil(t, profile)
	assert.Equal(t, "Priya", profile.Name)
}

func TestStore_Stats(t *testing.T) {
	s := New(nil)
	s.CreateOrder(model.OrderRequest{Total: 5})
	s.CountMessage()
	s.CountMessage()

	stats := s.Stats()
	assert.Equal(t, 1, stats.TotalOrders)
	assert.Equal(t, 2, stats.TotalMessages)
	assert.Equal(t, 0, stats.PendingSupport)
}

func TestStore_Tokens(t *testing.T) {
	s := New(nil)

	token := s.IssueToken()
	assert.NotEmpty(t, token)
	assert.True(t, s.ValidToken(token))
	assert.False(t, s.ValidToken("made-up"))
}

func TestStore_ProductByID(t *testing.T) {
	s := New([]model.Product{{ID: 7, Title: "Silk Tie", Price: 25}})

	p, ok := s.ProductByID(7)
	require.True(t, ok)
	assert.Equal(t, "Silk Tie", p.Title)

	_, ok = s.ProductByID(1)
	assert.False(t, ok)
}
