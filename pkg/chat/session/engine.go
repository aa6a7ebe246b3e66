package session

import (
	"context"

	"medequip-support-be/internal/constant"
	"medequip-support-be/pkg/chat/access"
	"medequip-support-be/pkg/chat/datasource"
	"medequip-support-be/pkg/chat/history"
	"medequip-support-be/pkg/chat/intent"
	"medequip-support-be/pkg/chat/query"
	"medequip-support-be/pkg/chat/response"
	"medequip-support-be/pkg/store"
)

// Engine is one logical conversation: it owns the session's identity gate and
// bounded history and runs the per-message pipeline (classify, gate, build,
// route, synthesize, append). Create one Engine per conversation; engines
// share nothing.
type Engine struct {
	ID string

	classifier  *intent.Classifier
	gate        *access.Gate
	builder     *query.Builder
	router      *datasource.Router
	synthesizer *response.Synthesizer
	history     *history.History
}

func NewEngine(id string, identities access.IdentityStore, router *datasource.Router, maxHistoryTurns int) *Engine {
	return &Engine{
		ID:          id,
		classifier:  intent.NewClassifier(),
		gate:        access.NewGate(identities),
		builder:     query.NewBuilder(),
		router:      router,
		synthesizer: response.NewSynthesizer(),
		history:     history.New(maxHistoryTurns),
	}
}

// Authenticate transitions the session to Authenticated on a successful
// lookup. A failed attempt is a no-op transition; empty credentials clear
// the identity.
func (e *Engine) Authenticate(ctx context.Context, email, clientID string) (bool, error) {
	return e.gate.Authenticate(ctx, email, clientID)
}

// ClearAuth returns the session to Anonymous.
func (e *Engine) ClearAuth() {
	e.gate.Clear()
}

// Identity exposes the current identity for presentation (nil when anonymous).
func (e *Engine) Identity() *store.Identity {
	return e.gate.Identity()
}

// History returns the transcript so far.
func (e *Engine) History() []store.ConversationTurn {
	return e.history.Turns()
}

// Handle runs one message through the pipeline and returns the reply. The
// classification result lives only for the duration of this call; only the
// rendered turn is retained.
func (e *Engine) Handle(ctx context.Context, message string) (string, error) {
	intentResult := e.classifier.Classify(message)

	if !e.gate.Authorized(intentResult) {
		return constant.AuthRequiredMessage, nil
	}

	spec := e.builder.Build(message, intentResult.Entities, e.gate.Identity())

	rows, snippets, err := e.router.Route(ctx, intentResult, spec, message)
	if err != nil {
		return "", err
	}

	reply, err := e.synthesizer.Synthesize(intentResult, rows, snippets, e.gate.Identity())
	if err != nil {
		return "", err
	}

	e.history.Append(message, reply)
	return reply, nil
}
