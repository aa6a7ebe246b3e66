package contract

import (
	"context"

	"medequip-support-be/pkg/store"
)

// QueryExecutor runs a parameterized query template with positional binding
// and returns rows keyed by column name. Consumed by the data-source router.
type QueryExecutor interface {
	Execute(ctx context.Context, template string, params ...interface{}) ([]store.Row, error)
}
