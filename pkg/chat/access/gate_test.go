package access

import (
	"context"
	"errors"
	"testing"

	"medequip-support-be/pkg/store"
)

type fakeIdentityStore struct {
	identities map[string]*store.Identity // keyed by email + "|" + clientID
	err        error
}

func (f *fakeIdentityStore) FindByCredentials(_ context.Context, email, clientID string) (*store.Identity, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.identities[email+"|"+clientID], nil
}

func newFakeStore() *fakeIdentityStore {
	return &fakeIdentityStore{
		identities: map[string]*store.Identity{
			"contact@cityhospital.com|ME-10001": {
				ClientID: "ME-10001",
				Name:     "City Hospital",
				Email:    "contact@cityhospital.com",
			},
		},
	}
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("success stores identity", func(t *testing.T) {
		gate := NewGate(newFakeStore())
		ok, err := gate.Authenticate(ctx, "contact@cityhospital.com", "ME-10001")
		if err != nil || !ok {
			t.Fatalf("Authenticate = (%v, %v), want (true, nil)", ok, err)
		}
		if gate.Identity() == nil || gate.Identity().ClientID != "ME-10001" {
			t.Errorf("Identity = %+v, want ME-10001", gate.Identity())
		}
	})

	t.Run("failed lookup leaves prior identity untouched", func(t *testing.T) {
		gate := NewGate(newFakeStore())
		if ok, _ := gate.Authenticate(ctx, "contact@cityhospital.com", "ME-10001"); !ok {
			t.Fatal("setup authentication failed")
		}
		ok, err := gate.Authenticate(ctx, "wrong@example.com", "ME-99999")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok {
			t.Error("Authenticate with unknown credentials = true, want false")
		}
		if gate.Identity() == nil || gate.Identity().ClientID != "ME-10001" {
			t.Errorf("prior identity lost: %+v", gate.Identity())
		}
	})

	t.Run("empty credentials clear identity", func(t *testing.T) {
		gate := NewGate(newFakeStore())
		gate.Authenticate(ctx, "contact@cityhospital.com", "ME-10001")
		ok, err := gate.Authenticate(ctx, "", "")
		if ok || err != nil {
			t.Fatalf("Authenticate(\"\", \"\") = (%v, %v), want (false, nil)", ok, err)
		}
		if gate.Identity() != nil {
			t.Errorf("Identity = %+v, want nil after clearing", gate.Identity())
		}
	})

	t.Run("lookup error propagates", func(t *testing.T) {
		gate := NewGate(&fakeIdentityStore{err: errors.New("db down")})
		ok, err := gate.Authenticate(ctx, "a@b.c", "ME-1")
		if ok || err == nil {
			t.Fatalf("Authenticate = (%v, %v), want (false, error)", ok, err)
		}
	})
}

func TestAuthorized(t *testing.T) {
	ctx := context.Background()
	authRequired := store.IntentResult{PrimaryIntent: store.IntentOrderDelivery, RequiresAuth: true}
	public := store.IntentResult{PrimaryIntent: store.IntentGeneralSupport, RequiresAuth: false}

	gate := NewGate(newFakeStore())

	if gate.Authorized(authRequired) {
		t.Error("anonymous session authorized for auth-required intent")
	}
	if !gate.Authorized(public) {
		t.Error("anonymous session not authorized for public intent")
	}

	gate.Authenticate(ctx, "contact@cityhospital.com", "ME-10001")
	if !gate.Authorized(authRequired) {
		t.Error("authenticated session not authorized for auth-required intent")
	}

	gate.Clear()
	if gate.Authorized(authRequired) {
		t.Error("cleared session still authorized for auth-required intent")
	}
}
