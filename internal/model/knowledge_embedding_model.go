package model

import (
	"time"

	"github.com/pgvector/pgvector-go"
)

// KnowledgeEmbedding is one embedded chunk of a knowledge-base document
// (policies, certificates, manuals, contact sheets).
type KnowledgeEmbedding struct {
	Id             uint            `gorm:"primaryKey;autoIncrement"`
	Title          string          `gorm:"type:text;not null;index"`
	Document       string          `gorm:"type:text"`
	EmbeddingValue pgvector.Vector `gorm:"type:vector(768)"` // nomic-embed-text dimensions
	ChunkIndex     int             `gorm:"default:0"`
	CreatedAt      time.Time       `gorm:"autoCreateTime"`
}

func (KnowledgeEmbedding) TableName() string {
	return "knowledge_embeddings"
}
