// Package session owns one visitor's storefront state: registration gate,
// chat transcript, cart ledger and order history. A session is created at
// chat start and discarded at the end; nothing here is persisted.
package session

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"nexa-store/internal/cart"
	"nexa-store/internal/catalog"
	"nexa-store/internal/intent"
	"nexa-store/internal/model"
	"nexa-store/internal/order"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ChatBackend answers chat messages the local rules cannot.
type ChatBackend interface {
	Chat(ctx context.Context, req model.ChatRequest) (model.Reply, error)
}

type stage int

const (
	stageName stage = iota
	stagePhone
	stageReady
)

const (
	greetingText   = "Hi! Welcome to Nexa Store. What's your name?"
	askPhoneFormat = "Nice to meet you, **%s**! What's your 10-digit mobile number?"
	badNameText    = "Please tell me your name. It needs at least 2 characters."
	badPhoneText   = "That doesn't look right. Please enter your 10-digit mobile number."
	welcomeFormat  = "You're all set, **%s**! Ask me about our products, your cart, or say \"place order\" when you're ready."
	offlineText    = "I'm having trouble reaching the store right now. Please try again shortly."
)

// Session holds one visitor's state. The mutex serialises overlapping
// sends; each network response is appended as it resolves.
type Session struct {
	mu         sync.Mutex
	id         uuid.UUID
	stage      stage
	user       model.UserRegistration
	transcript []model.ChatMessage
	cart       *cart.Ledger
	catalog    *catalog.Store
	orders     *order.Processor
	resolver   *intent.Resolver
	backend    ChatBackend
	closed     bool
	now        func() time.Time
	logger     zerolog.Logger
}

// New creates a session over the loaded catalogue. The transcript opens
// with the registration greeting.
func New(store *catalog.Store, backend ChatBackend, logger zerolog.Logger) *Session {
	id := uuid.New()
	logger = logger.With().Str("component", "session").Str("session_id", id.String()).Logger()

	ledger := cart.NewLedger()
	orders := order.NewProcessor(logger)

	s := &Session{
		id:       id,
		stage:    stageName,
		cart:     ledger,
		catalog:  store,
		orders:   orders,
		resolver: intent.NewResolver(ledger, store, orders, logger),
		backend:  backend,
		now:      time.Now,
		logger:   logger,
	}
	s.appendBot(model.ChatMessage{Text: greetingText})
	return s
}

// Send handles one user input. Until registration completes the input is
// consumed by the name/phone gate and never reaches the intent resolver or
// the backend. Afterwards local rules are tried first, then the backend,
// then the generic offline reply. The returned message is the bot's
// response, already appended to the transcript.
func (s *Session) Send(ctx context.Context, text string) (model.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		// Validation failure: re-prompt without mutating any state.
		return model.ChatMessage{}, model.ErrEmptyMessage
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return model.ChatMessage{}, model.ErrSessionClosed
	}

	s.transcript = append(s.transcript, model.ChatMessage{
		Sender:    model.SenderUser,
		Text:      text,
		Timestamp: s.now(),
	})

	if s.stage != stageReady {
		reply := s.advanceRegistration(text)
		s.mu.Unlock()
		return reply, nil
	}

	if res := s.resolver.Resolve(text, s.user.Name); res.Matched {
		reply := s.appendBot(model.ChatMessage{Text: res.Reply})
		s.mu.Unlock()
		return reply, nil
	}

	req := model.ChatRequest{
		Message: text,
		Context: model.ChatContext{
			User: s.user.Name,
			Cart: s.cart.Items(),
		},
	}
	// The lock is released across the network call so the user can keep
	// typing while this send is in flight.
	s.mu.Unlock()

	reply, err := s.backend.Chat(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		// Late response targeting discarded state: drop it.
		s.logger.Debug().Msg("dropping chat response for closed session")
		return model.ChatMessage{}, model.ErrSessionClosed
	}
	if err != nil {
		s.logger.Warn().Err(err).Msg("chat backend unavailable, replying offline")
		return s.appendBot(model.ChatMessage{Text: offlineText}), nil
	}
	return s.applyReply(reply), nil
}

// advanceRegistration runs the two-step name/phone gate. A rejected phone
// re-prompts without losing the captured name. Callers hold the lock.
func (s *Session) advanceRegistration(text string) model.ChatMessage {
	switch s.stage {
	case stageName:
		if err := model.ValidateName(text); err != nil {
			return s.appendBot(model.ChatMessage{Text: badNameText})
		}
		s.user.Name = text
		s.stage = stagePhone
		return s.appendBot(model.ChatMessage{Text: fmt.Sprintf(askPhoneFormat, s.user.Name)})

	default: // stagePhone
		if err := model.ValidatePhone(text); err != nil {
			return s.appendBot(model.ChatMessage{Text: badPhoneText})
		}
		s.user.Phone = strings.TrimSpace(text)
		s.stage = stageReady
		s.logger.Info().Str("user", s.user.Name).Msg("registration completed")
		return s.appendBot(model.ChatMessage{Text: fmt.Sprintf(welcomeFormat, s.user.Name)})
	}
}

// applyReply turns a decoded backend reply into a transcript message and
// applies its side effects. Callers hold the lock.
func (s *Session) applyReply(reply model.Reply) model.ChatMessage {
	switch r := reply.(type) {
	case model.CartUpdateReply:
		s.cart.Replace(r.Items)
		return s.appendBot(model.ChatMessage{Text: r.Text})
	case model.ImageReply:
		return s.appendBot(model.ChatMessage{Text: r.Text, Image: r.Image})
	case model.GalleryReply:
		return s.appendBot(model.ChatMessage{Text: r.Text, Images: r.Images})
	case model.ProductCardReply:
		return s.appendBot(model.ChatMessage{Text: r.Text, Products: r.Products})
	case model.OptionsReply:
		return s.appendBot(model.ChatMessage{Text: r.Text, Options: r.Options})
	default:
		return s.appendBot(model.ChatMessage{Text: reply.ReplyText()})
	}
}

func (s *Session) appendBot(msg model.ChatMessage) model.ChatMessage {
	msg.Sender = model.SenderBot
	if msg.Timestamp.IsZero() {
		msg.Timestamp = s.now()
	}
	s.transcript = append(s.transcript, msg)
	return msg
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Registered reports whether the registration gate has completed.
func (s *Session) Registered() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stage == stageReady
}

// User returns the captured registration state.
func (s *Session) User() model.UserRegistration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Transcript returns a copy of the message log in append order.
func (s *Session) Transcript() []model.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	transcript := make([]model.ChatMessage, len(s.transcript))
	copy(transcript, s.transcript)
	return transcript
}

// CartItems returns a snapshot of the current cart.
func (s *Session) CartItems() []model.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Items()
}

// CartTotal returns the current cart total.
func (s *Session) CartTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Total()
}

// Orders returns the session's order history, newest first.
func (s *Session) Orders() []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders.History()
}

// Close discards the session. In-flight sends resolve to ErrSessionClosed
// and leave no trace in the transcript.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}
