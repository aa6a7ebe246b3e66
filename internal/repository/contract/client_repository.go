package contract

import (
	"context"

	"medequip-support-be/pkg/store"
)

// ClientRepository resolves client records. FindByCredentials is the
// identity-lookup collaborator of the auth gate: exact match on both email
// and client id, nil when no client matches.
type ClientRepository interface {
	FindByCredentials(ctx context.Context, email, clientID string) (*store.Identity, error)
}
