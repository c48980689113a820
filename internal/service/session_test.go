package service

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/sistema-bancario/backend/internal/client"
	"github.com/sistema-bancario/backend/internal/model"
	"github.com/sistema-bancario/backend/internal/tokenstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExchanger struct {
	pair      model.TokenPair
	err       error
	calls     int
	onExpired func(ctx context.Context)
}

func (f *fakeExchanger) ObtainTokens(_ context.Context, _ model.Credentials) (model.TokenPair, error) {
	f.calls++
	return f.pair, f.err
}

func (f *fakeExchanger) OnSessionExpired(fn func(ctx context.Context)) {
	f.onExpired = fn
}

func TestLoginStoresTokens(t *testing.T) {
	ctx := context.Background()
	tokens := tokenstore.NewMemory()
	api := &fakeExchanger{pair: model.TokenPair{Access: "a1", Refresh: "r1"}}
	s := NewSessionController(ctx, api, tokens, nil)
	require.False(t, s.IsAuthenticated())

	require.NoError(t, s.Login(ctx, model.Credentials{Username: "ana", Password: "s3cret-pass"}))

	assert.True(t, s.IsAuthenticated())
	pair, ok := tokens.Get(ctx)
	assert.True(t, ok)
	assert.Equal(t, model.TokenPair{Access: "a1", Refresh: "r1"}, pair)
}

func TestLoginInvalidCredentialsLeavesStoreEmpty(t *testing.T) {
	ctx := context.Background()
	tokens := tokenstore.NewMemory()
	api := &fakeExchanger{err: client.ErrInvalidCredentials}
	s := NewSessionController(ctx, api, tokens, nil)

	err := s.Login(ctx, model.Credentials{Username: "ana", Password: "wrong"})

	assert.True(t, errors.Is(err, client.ErrInvalidCredentials))
	assert.False(t, s.IsAuthenticated())
	_, ok := tokens.Get(ctx)
	assert.False(t, ok)
}

func TestLoginRequiresFieldsWithoutNetwork(t *testing.T) {
	ctx := context.Background()
	api := &fakeExchanger{}
	s := NewSessionController(ctx, api, tokenstore.NewMemory(), nil)

	err := s.Login(ctx, model.Credentials{Username: " ", Password: "x"})

	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Zero(t, api.calls)
}

func TestInitialStateFromStore(t *testing.T) {
	ctx := context.Background()
	tokens := tokenstore.NewMemory()
	tokens.Set(ctx, model.TokenPair{Access: "a1", Refresh: "r1"})

	s := NewSessionController(ctx, &fakeExchanger{}, tokens, nil)
	assert.Equal(t, Authenticated, s.State())

	refreshOnly := tokenstore.NewMemory()
	refreshOnly.Set(ctx, model.TokenPair{Refresh: "r1"})
	assert.Equal(t, Unauthenticated, NewSessionController(ctx, &fakeExchanger{}, refreshOnly, nil).State())
}

func TestLogoutClearsStore(t *testing.T) {
	ctx := context.Background()
	tokens := tokenstore.NewMemory()
	tokens.Set(ctx, model.TokenPair{Access: "a1", Refresh: "r1"})
	s := NewSessionController(ctx, &fakeExchanger{}, tokens, nil)

	s.Logout(ctx)

	assert.False(t, s.IsAuthenticated())
	_, ok := tokens.Get(ctx)
	assert.False(t, ok)
}

func TestPipelineExpiryEndsSession(t *testing.T) {
	ctx := context.Background()
	tokens := tokenstore.NewMemory()
	tokens.Set(ctx, model.TokenPair{Access: "a1", Refresh: "r1"})
	api := &fakeExchanger{}
	s := NewSessionController(ctx, api, tokens, nil)
	require.NotNil(t, api.onExpired)

	api.onExpired(ctx)

	assert.Equal(t, Unauthenticated, s.State())
	assert.Equal(t, "unauthenticated", s.State().String())
}
