// Package intent classifies chat messages into local cart actions when the
// backend cannot answer.
package intent

import (
	"fmt"
	"strings"

	"nexa-store/internal/cart"
	"nexa-store/internal/catalog"
	"nexa-store/internal/order"

	"github.com/rs/zerolog"
)

// Rule names, exposed so priority can be asserted directly in tests.
const (
	RuleClearCart  = "clear-cart"
	RulePlaceOrder = "place-order"
	RuleShowCart   = "show-cart"
	RuleAddToCart  = "add-to-cart"
)

// Resolution is the outcome of resolving one message. When Matched is
// false no local rule fired and the caller should defer to the backend.
type Resolution struct {
	Rule    string
	Reply   string
	Matched bool
}

// rule pairs a match predicate with the action it triggers. The predicate
// receives the lowercased message.
type rule struct {
	name  string
	match func(msg string) bool
	run   func(r *Resolver, msg, customer string) string
}

// rules is the ordered rule list. Order is load-bearing: destructive
// intents (clear, place-order) are evaluated before informational reads so
// that a message carrying both resolves toward the stronger action, and the
// first match wins.
var rules = []rule{
	{
		name: RuleClearCart,
		match: func(msg string) bool {
			return (strings.Contains(msg, "clear") || strings.Contains(msg, "empty")) &&
				strings.Contains(msg, "cart")
		},
		run: (*Resolver).clearCart,
	},
	{
		name: RulePlaceOrder,
		match: func(msg string) bool {
			return strings.Contains(msg, "place order") || strings.Contains(msg, "checkout")
		},
		run: (*Resolver).placeOrder,
	},
	{
		name: RuleShowCart,
		match: func(msg string) bool {
			// The negative guard keeps natural add-to-cart phrasing like
			// "add to my cart" out of this read-only rule.
			return containsAny(msg, "show cart", "my cart", "in cart") &&
				!containsAny(msg, "add", "buy", "place", "checkout")
		},
		run: (*Resolver).showCart,
	},
	{
		name: RuleAddToCart,
		match: func(msg string) bool {
			return strings.Contains(msg, "add") || strings.Contains(msg, "buy")
		},
		run: (*Resolver).addToCart,
	},
}

// Resolver evaluates the rule list against the session's cart, catalogue
// and order processor.
type Resolver struct {
	cart    *cart.Ledger
	catalog *catalog.Store
	orders  *order.Processor
	logger  zerolog.Logger
}

// NewResolver creates an intent resolver bound to one session's state.
func NewResolver(ledger *cart.Ledger, store *catalog.Store, orders *order.Processor, logger zerolog.Logger) *Resolver {
	return &Resolver{
		cart:    ledger,
		catalog: store,
		orders:  orders,
		logger:  logger.With().Str("component", "intent").Logger(),
	}
}

// Resolve runs the message through the ordered rules. The first matching
// rule fires, applies its side effects and produces the reply; later rules
// are not consulted.
func (r *Resolver) Resolve(message, customer string) Resolution {
	lower := strings.ToLower(message)

	for _, rl := range rules {
		if !rl.match(lower) {
			continue
		}
		reply := rl.run(r, lower, customer)
		r.logger.Debug().
			Str("rule", rl.name).
			Msg("local intent matched")
		return Resolution{Rule: rl.name, Reply: reply, Matched: true}
	}

	return Resolution{}
}

func (r *Resolver) clearCart(_, _ string) string {
	r.cart.Clear()
	return "Done! Your cart has been emptied."
}

func (r *Resolver) placeOrder(_, customer string) string {
	ord := r.orders.Submit(r.cart, customer)
	if ord == nil {
		return "Your cart is empty. Add something before placing an order."
	}
	return fmt.Sprintf(
		"Thank you! Order **#%s** has been placed. Expected delivery by **%s**.",
		ord.ID, ord.DeliveryDate.Format("Jan 2, 2006"),
	)
}

func (r *Resolver) showCart(_, _ string) string {
	if r.cart.Empty() {
		return "Your cart is empty right now."
	}
	return fmt.Sprintf(
		"You have %d item(s) in your cart: %s. Total: **$%.2f**.",
		r.cart.Len(), strings.Join(r.cart.Titles(), ", "), r.cart.Total(),
	)
}

func (r *Resolver) addToCart(msg, _ string) string {
	p, ok := r.catalog.MatchMention(msg)
	if !ok {
		return "Sorry, I couldn't find that item in our catalogue. Try the product's name or a category."
	}
	r.cart.Add(p)
	return fmt.Sprintf("Added **%s** to your cart. Your total is now $%.2f.", p.Title, r.cart.Total())
}

func containsAny(msg string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(msg, sub) {
			return true
		}
	}
	return false
}
