// Package cart holds the session's ledger of selected products awaiting
// order submission.
package cart

import (
	"nexa-store/internal/model"
)

// Ledger is the ordered list of cart entries. Entries are unique per
// product ID; adding an already-carted product increments its quantity.
// The ledger is single-writer (the owning session) and does no locking of
// its own.
type Ledger struct {
	items []model.CartItem
}

// NewLedger creates an empty cart ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Add appends the product, or increments the quantity of its existing
// entry. It always succeeds.
func (l *Ledger) Add(p model.Product) {
	for i := range l.items {
		if l.items[i].Product.ID == p.ID {
			l.items[i].Quantity++
			return
		}
	}
	l.items = append(l.items, model.CartItem{Product: p, Quantity: 1})
}

// Remove deletes the entry for the given product ID. A stale or unknown ID
// is a no-op; the return value reports whether an entry was removed.
func (l *Ledger) Remove(productID int) bool {
	for i := range l.items {
		if l.items[i].Product.ID == productID {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveAt deletes the entry at the given position. Out-of-range indexes
// are a no-op.
func (l *Ledger) RemoveAt(index int) bool {
	if index < 0 || index >= len(l.items) {
		return false
	}
	l.items = append(l.items[:index], l.items[index+1:]...)
	return true
}

// Clear empties the ledger unconditionally.
func (l *Ledger) Clear() {
	l.items = nil
}

// Replace swaps the ledger contents for the given items. It backs the
// cart-update chat reply, where the backend is the authority on cart state.
func (l *Ledger) Replace(items []model.CartItem) {
	l.items = make([]model.CartItem, len(items))
	copy(l.items, items)
}

// Total returns the discount-aware sum over all entries, rounded to two
// decimals. An empty ledger totals zero.
func (l *Ledger) Total() float64 {
	var total float64
	for _, item := range l.items {
		total += item.LineTotal()
	}
	return model.RoundMoney(total)
}

// Items returns a copy of the ledger entries in insertion order.
func (l *Ledger) Items() []model.CartItem {
	items := make([]model.CartItem, len(l.items))
	copy(items, l.items)
	return items
}

// Titles returns the product titles in ledger order.
func (l *Ledger) Titles() []string {
	titles := make([]string, len(l.items))
	for i, item := range l.items {
		titles[i] = item.Product.Title
	}
	return titles
}

// Len returns the number of distinct entries.
func (l *Ledger) Len() int {
	return len(l.items)
}

// Empty reports whether the ledger holds no entries.
func (l *Ledger) Empty() bool {
	return len(l.items) == 0
}
