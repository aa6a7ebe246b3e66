package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"medequip-support-be/pkg/chat/session"
)

func TestSessionRepository(t *testing.T) {
	repo := NewSessionRepository()

	engine := &session.Engine{ID: "session-1"}
	repo.Save(engine)

	got, found := repo.Get("session-1")
	assert.True(t, found)
	assert.Same(t, engine, got)

	_, found = repo.Get("unknown")
	assert.False(t, found)

	repo.Delete("session-1")
	_, found = repo.Get("session-1")
	assert.False(t, found)
}
