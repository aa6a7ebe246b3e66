package embedding

import "context"

// Task types hint whether the text is a search query or a document being
// indexed. Providers that do not distinguish ignore the hint.
const (
	TaskQuery    = "RETRIEVAL_QUERY"
	TaskDocument = "RETRIEVAL_DOCUMENT"
)

// EmbeddingProvider turns text into a normalized vector suitable for cosine
// similarity search.
type EmbeddingProvider interface {
	Generate(ctx context.Context, text string, taskType string) ([]float32, error)
}
