package implementation

import (
	"context"

	"medequip-support-be/internal/repository/contract"
	"medequip-support-be/pkg/store"

	"gorm.io/gorm"
)

type QueryExecutorImpl struct {
	db *gorm.DB
}

func NewQueryExecutor(db *gorm.DB) contract.QueryExecutor {
	return &QueryExecutorImpl{db: db}
}

// Execute runs the template with positional `?` binding. Rows come back as
// maps keyed by column name so the synthesizer stays decoupled from GORM
// models; only the templates in the query builder reach this method.
func (e *QueryExecutorImpl) Execute(ctx context.Context, template string, params ...interface{}) ([]store.Row, error) {
	var rows []map[string]interface{}
	if err := e.db.WithContext(ctx).Raw(template, params...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]store.Row, len(rows))
	for i, row := range rows {
		out[i] = store.Row(row)
	}
	return out, nil
}
