package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medequip-support-be/internal/constant"
	"medequip-support-be/internal/dto"
	"medequip-support-be/internal/repository/memory"
	"medequip-support-be/pkg/store"
)

type fakeClientStore struct {
	identity *store.Identity
}

func (f *fakeClientStore) FindByCredentials(_ context.Context, email, clientID string) (*store.Identity, error) {
	if f.identity != nil && f.identity.Email == email && f.identity.ClientID == clientID {
		return f.identity, nil
	}
	return nil, nil
}

type fakeExecutor struct {
	rows []store.Row
}

func (f *fakeExecutor) Execute(_ context.Context, _ string, _ ...interface{}) ([]store.Row, error) {
	return f.rows, nil
}

type fakeRetriever struct {
	snippets []store.Snippet
}

func (f *fakeRetriever) Search(_ context.Context, _ string, _ int) ([]store.Snippet, error) {
	return f.snippets, nil
}

type noopLogger struct{}

func (noopLogger) Debug(string, string, map[string]interface{}) {}
func (noopLogger) Info(string, string, map[string]interface{})  {}
func (noopLogger) Warn(string, string, map[string]interface{})  {}
func (noopLogger) Error(string, string, map[string]interface{}) {}
func (noopLogger) Sync() error                                  { return nil }

func newTestService(clients *fakeClientStore) IChatService {
	return NewChatService(
		clients,
		&fakeExecutor{},
		&fakeRetriever{snippets: []store.Snippet{{Title: "Return Policy", Text: "Returns accepted within 30 days."}}},
		memory.NewSessionRepository(),
		nil,
		ChatConfig{RagEnabled: true, RagTopK: 3, MaxHistoryTurns: 10},
		noopLogger{},
	)
}

func TestCreateSessionAssignsUniqueIds(t *testing.T) {
	svc := newTestService(&fakeClientStore{})
	ctx := context.Background()

	first, err := svc.CreateSession(ctx)
	require.NoError(t, err)
	second, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	assert.NotEmpty(t, first.SessionId)
	assert.NotEqual(t, first.SessionId, second.SessionId)
}

func TestSendChatUnknownSession(t *testing.T) {
	svc := newTestService(&fakeClientStore{})

	_, err := svc.SendChat(context.Background(), &dto.SendChatRequest{
		SessionId: "missing",
		Message:   "hello",
	})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSendChatRecordsHistory(t *testing.T) {
	svc := newTestService(&fakeClientStore{})
	ctx := context.Background()

	created, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	reply, err := svc.SendChat(ctx, &dto.SendChatRequest{
		SessionId: created.SessionId,
		Message:   "What is your return policy?",
	})
	require.NoError(t, err)
	assert.Contains(t, reply.Reply, "Return Policy")

	history, err := svc.GetHistory(ctx, created.SessionId)
	require.NoError(t, err)
	require.Len(t, history.Turns, 1)
	assert.Equal(t, "What is your return policy?", history.Turns[0].User)
}

func TestAuthenticateLifecycle(t *testing.T) {
	identity := &store.Identity{ClientID: "ME-10001", Name: "City General Hospital", Email: "contact@cityhospital.com"}
	svc := newTestService(&fakeClientStore{identity: identity})
	ctx := context.Background()

	created, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	t.Run("wrong credentials", func(t *testing.T) {
		resp, err := svc.Authenticate(ctx, &dto.AuthRequest{
			SessionId: created.SessionId,
			Email:     "contact@cityhospital.com",
			ClientId:  "ME-99999",
		})
		require.NoError(t, err)
		assert.False(t, resp.Authenticated)
		assert.Equal(t, constant.AuthFailedMessage, resp.Message)
	})

	t.Run("valid credentials", func(t *testing.T) {
		resp, err := svc.Authenticate(ctx, &dto.AuthRequest{
			SessionId: created.SessionId,
			Email:     "contact@cityhospital.com",
			ClientId:  "ME-10001",
		})
		require.NoError(t, err)
		assert.True(t, resp.Authenticated)
		require.NotNil(t, resp.Identity)
		assert.Equal(t, "ME-10001", resp.Identity.ClientID)
	})

	t.Run("empty credentials clear identity", func(t *testing.T) {
		resp, err := svc.Authenticate(ctx, &dto.AuthRequest{SessionId: created.SessionId})
		require.NoError(t, err)
		assert.False(t, resp.Authenticated)
		assert.Equal(t, constant.AuthClearedMessage, resp.Message)
	})
}

func TestAuthGatedIntentBeforeAuthentication(t *testing.T) {
	svc := newTestService(&fakeClientStore{})
	ctx := context.Background()

	created, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	reply, err := svc.SendChat(ctx, &dto.SendChatRequest{
		SessionId: created.SessionId,
		Message:   "Where is my order ORD-2024-0001?",
	})
	require.NoError(t, err)
	assert.Equal(t, constant.AuthRequiredMessage, reply.Reply)

	// The refused turn never enters the transcript.
	history, err := svc.GetHistory(ctx, created.SessionId)
	require.NoError(t, err)
	assert.Empty(t, history.Turns)
}

func TestDeleteSession(t *testing.T) {
	svc := newTestService(&fakeClientStore{})
	ctx := context.Background()

	created, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSession(ctx, created.SessionId))
	assert.ErrorIs(t, svc.DeleteSession(ctx, created.SessionId), ErrSessionNotFound)

	_, err = svc.GetHistory(ctx, created.SessionId)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
