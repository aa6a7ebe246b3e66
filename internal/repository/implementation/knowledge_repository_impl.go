package implementation

import (
	"context"

	"medequip-support-be/internal/model"
	"medequip-support-be/internal/repository/contract"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type KnowledgeRepositoryImpl struct {
	db *gorm.DB
}

func NewKnowledgeRepository(db *gorm.DB) contract.KnowledgeRepository {
	return &KnowledgeRepositoryImpl{db: db}
}

func (r *KnowledgeRepositoryImpl) Create(ctx context.Context, embedding *model.KnowledgeEmbedding) error {
	return r.db.WithContext(ctx).Create(embedding).Error
}

func (r *KnowledgeRepositoryImpl) DeleteByTitle(ctx context.Context, title string) error {
	return r.db.WithContext(ctx).
		Where("title = ?", title).
		Delete(&model.KnowledgeEmbedding{}).Error
}

func (r *KnowledgeRepositoryImpl) SearchTopK(ctx context.Context, embedding []float32, k int) ([]*model.KnowledgeEmbedding, error) {
	var results []*model.KnowledgeEmbedding

	// pgvector cosine distance: embedding_value <=> query vector, ascending
	// distance = best match first. Vectors are normalized at embed time.
	err := r.db.WithContext(ctx).
		Order(gorm.Expr("embedding_value <=> ?", pgvector.NewVector(embedding))).
		Limit(k).
		Find(&results).Error
	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *KnowledgeRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.KnowledgeEmbedding{}).Count(&count).Error
	return count, err
}
