package session

import (
	"context"
	"testing"

	"nexa-store/internal/catalog"
	"nexa-store/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockChatBackend is a mock implementation of ChatBackend.
type MockChatBackend struct {
	mock.Mock
}

func (m *MockChatBackend) Chat(ctx context.Context, req model.ChatRequest) (model.Reply, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.Reply), args.Error(1)
}

func testStore() *catalog.Store {
	return catalog.NewStatic([]model.Product{
		{ID: 1, Title: "Wool Scarf", Price: 15, Category: "accessories"},
		{ID: 2, Title: "Garam Masala", Price: 6.5, Category: "spices"},
	}, zerolog.Nop())
}

func newTestSession(backend ChatBackend) *Session {
	return New(testStore(), backend, zerolog.Nop())
}

// register walks a session through the two-step gate.
func register(t *testing.T, s *Session) {
	t.Helper()
	ctx := context.Background()

	_, err := s.Send(ctx, "Priya")
	require.NoError(t, err)
	_, err = s.Send(ctx, "9876543210")
	require.NoError(t, err)
	require.True(t, s.Registered())
}

func TestSession_OpensWithGreeting(t *testing.T) {
	s := newTestSession(new(MockChatBackend))

	transcript := s.Transcript()
	require.Len(t, transcript, 1)
	assert.Equal(t, model.SenderBot, transcript[0].Sender)
	assert.Contains(t, transcript[0].Text, "name")
	assert.False(t, s.Registered())
}

func TestSession_RegistrationGate(t *testing.T) {
	backend := new(MockChatBackend)
	s := newTestSession(backend)
	ctx := context.Background()

	// Name step.
	reply, err := s.Send(ctx, "Priya")
	require.NoError(t, err)
	assert.Contains(t, reply.Text, "Priya")
	assert.Contains(t, reply.Text, "mobile number")
	assert.False(t, s.Registered())

	// Invalid phone re-prompts and keeps the captured name.
	reply, err = s.Send(ctx, "12345")
	require.NoError(t, err)
	assert.Contains(t, reply.Text, "10-digit")
	assert.False(t, s.Registered())
	assert.Equal(t, "Priya", s.User().Name)

	// Valid phone completes registration with a welcome.
	reply, err = s.Send(ctx, "9876543210")
	require.NoError(t, err)
	assert.Contains(t, reply.Text, "**Priya**")
	assert.True(t, s.Registered())

	// The gate consumed everything: the backend was never called.
	backend.AssertNotCalled(t, "Chat", mock.Anything, mock.Anything)
}

func TestSession_RejectsShortName(t *testing.T) {
	s := newTestSession(new(MockChatBackend))

	reply, err := s.Send(context.Background(), "A")
	require.NoError(t, err)
	assert.Contains(t, reply.Text, "at least 2 characters")
	assert.False(t, s.Registered())
	assert.Empty(t, s.User().Name)
}

func TestSession_EmptyMessageRejectedWithoutMutation(t *testing.T) {
	s := newTestSession(new(MockChatBackend))
	before := len(s.Transcript())

	_, err := s.Send(context.Background(), "   ")
	assert.ErrorIs(t, err, model.ErrEmptyMessage)
	assert.Len(t, s.Transcript(), before)
}

func TestSession_LocalRuleBeforeBackend(t *testing.T) {
	backend := new(MockChatBackend)
	s := newTestSession(backend)
	register(t, s)

	reply, err := s.Send(context.Background(), "add garam masala please")
	require.NoError(t, err)
	assert.Contains(t, reply.Text, "Garam Masala")

	items := s.CartItems()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Product.ID)

	backend.AssertNotCalled(t, "Chat", mock.Anything, mock.Anything)
}

func TestSession_DelegatesToBackendWithContext(t *testing.T) {
	backend := new(MockChatBackend)
	s := newTestSession(backend)
	register(t, s)

	_, err := s.Send(context.Background(), "add garam masala please")
	require.NoError(t, err)

	backend.On("Chat", mock.Anything, mock.MatchedBy(func(req model.ChatRequest) bool {
		return req.Message == "what goes well with this?" &&
			req.Context.User == "Priya" &&
			len(req.Context.Cart) == 1
	})).Return(model.TextReply{Text: "Try it in a curry."}, nil)

	reply, err := s.Send(context.Background(), "what goes well with this?")
	require.NoError(t, err)
	assert.Equal(t, "Try it in a curry.", reply.Text)
	backend.AssertExpectations(t)
}

func TestSession_OfflineFallbackReply(t *testing.T) {
	backend := new(MockChatBackend)
	backend.On("Chat", mock.Anything, mock.Anything).
		Return(nil, model.ErrBackendUnreachable)

	s := newTestSession(backend)
	register(t, s)
	cartBefore := s.CartItems()

	reply, err := s.Send(context.Background(), "tell me a joke")
	require.NoError(t, err)
	assert.NotEmpty(t, reply.Text)
	assert.Contains(t, reply.Text, "try again")

	// No un-ruled mutation: the failed delegate left the cart alone.
	assert.Equal(t, cartBefore, s.CartItems())
}

func TestSession_CartUpdateReplyReplacesCart(t *testing.T) {
	newItems := []model.CartItem{
		{Product: model.Product{ID: 1, Title: "Wool Scarf", Price: 15}, Quantity: 3},
	}

	backend := new(MockChatBackend)
	backend.On("Chat", mock.Anything, mock.Anything).
		Return(model.CartUpdateReply{Text: "Cart updated!", Items: newItems}, nil)

	s := newTestSession(backend)
	register(t, s)

	reply, err := s.Send(context.Background(), "restore my saved basket")
	require.NoError(t, err)
	assert.Equal(t, "Cart updated!", reply.Text)
	assert.Equal(t, newItems, s.CartItems())
}

func TestSession_AttachmentRepliesCarryPayloads(t *testing.T) {
	products := []model.Product{{ID: 9, Title: "Silk Tie", Price: 25}}

	backend := new(MockChatBackend)
	backend.On("Chat", mock.Anything, mock.Anything).
		Return(model.ProductCardReply{Text: "You might like", Products: products}, nil).Once()
	backend.On("Chat", mock.Anything, mock.Anything).
		Return(model.GalleryReply{Text: "Some looks", Images: []string{"a.jpg", "b.jpg"}}, nil).Once()

	s := newTestSession(backend)
	register(t, s)
	ctx := context.Background()

	reply, err := s.Send(ctx, "recommend something")
	require.NoError(t, err)
	assert.Equal(t, products, reply.Products)

	reply, err = s.Send(ctx, "got pictures?")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, reply.Images)
}

func TestSession_PlaceOrderFlow(t *testing.T) {
	s := newTestSession(new(MockChatBackend))
	register(t, s)
	ctx := context.Background()

	_, err := s.Send(ctx, "add wool scarf")
	require.NoError(t, err)

	reply, err := s.Send(ctx, "place order")
	require.NoError(t, err)
	assert.Contains(t, reply.Text, "Order **#")

	orders := s.Orders()
	require.Len(t, orders, 1)
	assert.Equal(t, "Priya", orders[0].Customer)
	assert.Empty(t, s.CartItems())
}

func TestSession_TranscriptAppendOnlyOrdering(t *testing.T) {
	s := newTestSession(new(MockChatBackend))
	ctx := context.Background()

	_, err := s.Send(ctx, "Priya")
	require.NoError(t, err)
	_, err = s.Send(ctx, "9876543210")
	require.NoError(t, err)

	transcript := s.Transcript()
	require.Len(t, transcript, 5)
	assert.Equal(t, model.SenderBot, transcript[0].Sender)  // greeting
	assert.Equal(t, model.SenderUser, transcript[1].Sender) // name
	assert.Equal(t, model.SenderBot, transcript[2].Sender)  // phone prompt
	assert.Equal(t, model.SenderUser, transcript[3].Sender) // phone
	assert.Equal(t, model.SenderBot, transcript[4].Sender)  // welcome
}

func TestSession_ClosedSessionDropsLateResponses(t *testing.T) {
	backend := new(MockChatBackend)
	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)

	backend.On("Chat", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			close(started)
			<-release
		}).
		Return(model.TextReply{Text: "too late"}, nil)

	s := newTestSession(backend)
	register(t, s)

	go func() {
		_, err := s.Send(context.Background(), "anything there?")
		done <- err
	}()

	// Close while the backend call is still in flight, then let it finish.
	<-started
	s.Close()
	close(release)

	err := <-done
	assert.ErrorIs(t, err, model.ErrSessionClosed)

	// The late reply never reached the transcript.
	for _, msg := range s.Transcript() {
		assert.NotEqual(t, "too late", msg.Text)
	}
}

func TestSession_SendAfterCloseRejected(t *testing.T) {
	s := newTestSession(new(MockChatBackend))
	s.Close()

	_, err := s.Send(context.Background(), "hello")
	assert.ErrorIs(t, err, model.ErrSessionClosed)
}
