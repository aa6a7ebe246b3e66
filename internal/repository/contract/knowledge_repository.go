package contract

import (
	"context"

	"medequip-support-be/internal/model"
)

// KnowledgeRepository persists and searches embedded knowledge-base chunks.
type KnowledgeRepository interface {
	Create(ctx context.Context, embedding *model.KnowledgeEmbedding) error
	DeleteByTitle(ctx context.Context, title string) error
	// SearchTopK returns the k chunks nearest to the query vector by cosine
	// distance, best match first.
	SearchTopK(ctx context.Context, embedding []float32, k int) ([]*model.KnowledgeEmbedding, error)
	Count(ctx context.Context) (int64, error)
}
