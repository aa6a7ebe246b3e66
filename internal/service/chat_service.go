package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"medequip-support-be/internal/constant"
	"medequip-support-be/internal/dto"
	"medequip-support-be/internal/pkg/logger"
	"medequip-support-be/internal/repository/contract"
	"medequip-support-be/internal/repository/memory"
	"medequip-support-be/internal/repository/redisstore"
	"medequip-support-be/pkg/chat/datasource"
	"medequip-support-be/pkg/chat/session"
	"medequip-support-be/pkg/store"
)

// ErrSessionNotFound is returned for unknown or expired session ids.
var ErrSessionNotFound = errors.New("chat session not found")

type IChatService interface {
	CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error)
	SendChat(ctx context.Context, request *dto.SendChatRequest) (*dto.SendChatResponse, error)
	Authenticate(ctx context.Context, request *dto.AuthRequest) (*dto.AuthResponse, error)
	GetHistory(ctx context.Context, sessionID string) (*dto.GetHistoryResponse, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

// ChatConfig is the slice of configuration the pipeline reads once per
// session lifecycle.
type ChatConfig struct {
	RagEnabled      bool
	RagTopK         int
	MaxHistoryTurns int
}

// chatService owns the session registry and builds one chat engine per
// conversation. Engines share collaborators (identity store, executor,
// retriever) but never session state.
type chatService struct {
	clients  contract.ClientRepository
	router   *datasource.Router
	sessions *memory.SessionRepository
	archive  *redisstore.TranscriptArchive // nil when archiving is off
	cfg      ChatConfig
	log      logger.ILogger
}

func NewChatService(
	clients contract.ClientRepository,
	executor contract.QueryExecutor,
	retriever datasource.Retriever,
	sessions *memory.SessionRepository,
	archive *redisstore.TranscriptArchive,
	cfg ChatConfig,
	log logger.ILogger,
) IChatService {
	return &chatService{
		clients:  clients,
		router:   datasource.NewRouter(executor, retriever, log, cfg.RagEnabled, cfg.RagTopK),
		sessions: sessions,
		archive:  archive,
		cfg:      cfg,
		log:      log,
	}
}

func (cs *chatService) CreateSession(_ context.Context) (*dto.CreateSessionResponse, error) {
	engine := session.NewEngine(uuid.NewString(), cs.clients, cs.router, cs.cfg.MaxHistoryTurns)
	cs.sessions.Save(engine)

	cs.log.Info("chat", "session created", map[string]interface{}{"session_id": engine.ID})
	return &dto.CreateSessionResponse{SessionId: engine.ID}, nil
}

func (cs *chatService) SendChat(ctx context.Context, request *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	engine, found := cs.sessions.Get(request.SessionId)
	if !found {
		return nil, ErrSessionNotFound
	}

	turnsBefore := len(engine.History())

	reply, err := engine.Handle(ctx, request.Message)
	if err != nil {
		cs.log.Error("chat", "message dispatch failed", map[string]interface{}{
			"session_id": request.SessionId,
			"error":      err.Error(),
		})
		return nil, err
	}

	// Archive only turns the engine actually retained (the auth
	// short-circuit reply is not part of the transcript).
	if cs.archive != nil && len(engine.History()) > turnsBefore {
		turn := store.ConversationTurn{User: request.Message, Assistant: reply}
		if err := cs.archive.AppendTurn(ctx, engine.ID, turn); err != nil {
			cs.log.Warn("chat", "transcript archiving failed", map[string]interface{}{
				"session_id": engine.ID,
				"error":      err.Error(),
			})
		}
	}

	// Refresh the registry TTL for the active conversation.
	cs.sessions.Save(engine)

	return &dto.SendChatResponse{
		SessionId: engine.ID,
		Reply:     reply,
	}, nil
}

func (cs *chatService) Authenticate(ctx context.Context, request *dto.AuthRequest) (*dto.AuthResponse, error) {
	engine, found := cs.sessions.Get(request.SessionId)
	if !found {
		return nil, ErrSessionNotFound
	}

	ok, err := engine.Authenticate(ctx, request.Email, request.ClientId)
	if err != nil {
		return nil, err
	}

	if request.Email == "" && request.ClientId == "" {
		return &dto.AuthResponse{Authenticated: false, Message: constant.AuthClearedMessage}, nil
	}
	if !ok {
		return &dto.AuthResponse{Authenticated: false, Message: constant.AuthFailedMessage}, nil
	}

	identity := engine.Identity()
	cs.log.Info("chat", "session authenticated", map[string]interface{}{
		"session_id": engine.ID,
		"client_id":  identity.ClientID,
	})
	return &dto.AuthResponse{
		Authenticated: true,
		Identity:      identity,
		Message:       "Authenticated as " + identity.Name + " (" + identity.ClientID + ")",
	}, nil
}

func (cs *chatService) GetHistory(_ context.Context, sessionID string) (*dto.GetHistoryResponse, error) {
	engine, found := cs.sessions.Get(sessionID)
	if !found {
		return nil, ErrSessionNotFound
	}

	return &dto.GetHistoryResponse{
		SessionId: sessionID,
		Turns:     engine.History(),
	}, nil
}

func (cs *chatService) DeleteSession(ctx context.Context, sessionID string) error {
	if _, found := cs.sessions.Get(sessionID); !found {
		return ErrSessionNotFound
	}
	cs.sessions.Delete(sessionID)

	if cs.archive != nil {
		if err := cs.archive.Clear(ctx, sessionID); err != nil {
			cs.log.Warn("chat", "transcript cleanup failed", map[string]interface{}{
				"session_id": sessionID,
				"error":      err.Error(),
			})
		}
	}
	return nil
}
