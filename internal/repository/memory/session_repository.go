package memory

import (
	"time"

	"github.com/patrickmn/go-cache"

	"medequip-support-be/pkg/chat/session"
)

// SessionRepository holds one chat engine per active conversation, keyed by
// session id. Idle sessions expire after an hour; each engine owns its own
// identity and history, so concurrent conversations never share state.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	// Default expiration of 1 hour, purge sweep every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(engine *session.Engine) {
	r.cache.Set(engine.ID, engine, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (*session.Engine, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*session.Engine), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
