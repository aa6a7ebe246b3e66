package search

import (
	"context"
	"fmt"

	"medequip-support-be/internal/repository/contract"
	"medequip-support-be/pkg/embedding"
	"medequip-support-be/pkg/store"
)

// Orchestrator is the semantic-retrieval collaborator of the chat pipeline:
// it embeds the query text and returns the top-k nearest knowledge chunks as
// titled snippets.
type Orchestrator struct {
	provider  embedding.EmbeddingProvider
	knowledge contract.KnowledgeRepository
}

func NewOrchestrator(provider embedding.EmbeddingProvider, knowledge contract.KnowledgeRepository) *Orchestrator {
	return &Orchestrator{
		provider:  provider,
		knowledge: knowledge,
	}
}

func (o *Orchestrator) Search(ctx context.Context, query string, topK int) ([]store.Snippet, error) {
	vector, err := o.provider.Generate(ctx, query, embedding.TaskQuery)
	if err != nil {
		return nil, fmt.Errorf("embedding query failed: %w", err)
	}

	chunks, err := o.knowledge.SearchTopK(ctx, vector, topK)
	if err != nil {
		return nil, fmt.Errorf("knowledge search failed: %w", err)
	}

	snippets := make([]store.Snippet, 0, len(chunks))
	for _, chunk := range chunks {
		snippets = append(snippets, store.Snippet{
			Title: chunk.Title,
			Text:  chunk.Document,
		})
	}
	return snippets, nil
}
