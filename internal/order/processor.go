// Package order turns cart snapshots into immutable order records.
package order

import (
	"fmt"
	"math/rand"
	"time"

	"nexa-store/internal/cart"
	"nexa-store/internal/model"

	"github.com/rs/zerolog"
)

// Processor creates orders from the cart ledger and keeps the session's
// order history, newest first.
type Processor struct {
	history []model.Order
	now     func() time.Time
	rng     *rand.Rand
	logger  zerolog.Logger
}

// NewProcessor creates an order processor.
func NewProcessor(logger zerolog.Logger) *Processor {
	return &Processor{
		now:    time.Now,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		logger: logger.With().Str("component", "order").Logger(),
	}
}

// Submit snapshots the ledger into a new pending order and empties the
// ledger. It returns nil when the ledger is empty; that is the caller's
// cue to re-prompt, not an error.
func (p *Processor) Submit(l *cart.Ledger, customer string) *model.Order {
	if l.Empty() {
		p.logger.Debug().Msg("submit called with empty cart")
		return nil
	}

	createdAt := p.now()
	ord := model.Order{
		ID:           p.newOrderID(),
		Items:        l.Items(),
		Total:        l.Total(),
		Customer:     customer,
		Status:       model.StatusPending,
		CreatedAt:    createdAt,
		DeliveryDate: createdAt.Add(model.DeliveryLeadTime),
	}

	p.history = append([]model.Order{ord}, p.history...)
	l.Clear()

	p.logger.Info().
		Str("order_id", ord.ID).
		Float64("total", ord.Total).
		Int("item_count", len(ord.Items)).
		Msg("order created")

	return &ord
}

// History returns a copy of the order history, newest first.
func (p *Processor) History() []model.Order {
	history := make([]model.Order, len(p.history))
	copy(history, p.history)
	return history
}

// newOrderID produces a random five-digit numeric string. There is no
// collision check; two rapid submissions may collide. Accepted limitation.
func (p *Processor) newOrderID() string {
	return fmt.Sprintf("%d", 10000+p.rng.Intn(90000))
}
