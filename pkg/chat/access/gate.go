package access

import (
	"context"

	"medequip-support-be/pkg/store"
)

// IdentityStore resolves credentials to a client record by exact match on
// both email and client id. This is an identity lookup, not a security
// boundary; no credential verification happens here.
type IdentityStore interface {
	FindByCredentials(ctx context.Context, email, clientID string) (*store.Identity, error)
}

// Gate holds at most one authenticated identity per session and gates
// intents that require one.
type Gate struct {
	identities IdentityStore
	identity   *store.Identity
}

func NewGate(identities IdentityStore) *Gate {
	return &Gate{identities: identities}
}

// Authenticate looks up the credentials and stores the identity on success.
// A failed lookup leaves any prior identity untouched. Empty credentials
// clear the identity instead of attempting a lookup.
func (g *Gate) Authenticate(ctx context.Context, email, clientID string) (bool, error) {
	if email == "" && clientID == "" {
		g.Clear()
		return false, nil
	}

	identity, err := g.identities.FindByCredentials(ctx, email, clientID)
	if err != nil {
		return false, err
	}
	if identity == nil {
		return false, nil
	}

	g.identity = identity
	return true, nil
}

// Clear removes the stored identity (explicit logout).
func (g *Gate) Clear() {
	g.identity = nil
}

// Identity returns the current identity, or nil when anonymous.
func (g *Gate) Identity() *store.Identity {
	return g.identity
}

// Authorized reports whether the intent may proceed: either it does not
// require authentication or an identity is present.
func (g *Gate) Authorized(intent store.IntentResult) bool {
	return !intent.RequiresAuth || g.identity != nil
}
