package datasource

import (
	"context"

	"medequip-support-be/pkg/store"
)

// QueryExecutor runs a parameterized query template and returns row maps.
type QueryExecutor interface {
	Execute(ctx context.Context, template string, params ...interface{}) ([]store.Row, error)
}

// Retriever performs semantic search over the knowledge base.
type Retriever interface {
	Search(ctx context.Context, query string, topK int) ([]store.Snippet, error)
}

// RetrievalLogger receives retrieval degradation notices. The zap logger
// satisfies this through a thin adapter in the service layer.
type RetrievalLogger interface {
	Warn(module, message string, details map[string]interface{})
}

// Router sequences the two external calls for one message: the structured
// query always runs when a spec is present, regardless of the intent's
// declared data source; semantic retrieval runs only when RAG is enabled in
// config and the intent asks for RAG or BOTH. Query first, retrieval second.
type Router struct {
	executor   QueryExecutor
	retriever  Retriever
	logger     RetrievalLogger
	ragEnabled bool
	topK       int
}

func NewRouter(executor QueryExecutor, retriever Retriever, logger RetrievalLogger, ragEnabled bool, topK int) *Router {
	return &Router{
		executor:   executor,
		retriever:  retriever,
		logger:     logger,
		ragEnabled: ragEnabled,
		topK:       topK,
	}
}

// Route returns the query rows and the retrieved snippets. Query failures
// propagate; retrieval failures degrade to empty snippets so a knowledge-base
// outage does not abort the whole message.
func (r *Router) Route(ctx context.Context, intent store.IntentResult, spec *store.QuerySpec, message string) ([]store.Row, []store.Snippet, error) {
	var rows []store.Row
	var snippets []store.Snippet

	if spec != nil {
		var err error
		rows, err = r.executor.Execute(ctx, spec.Template, spec.Params...)
		if err != nil {
			return nil, nil, err
		}
	}

	if r.ragEnabled && (intent.DataSource == store.DataSourceRAG || intent.DataSource == store.DataSourceBoth) {
		found, err := r.retriever.Search(ctx, message, r.topK)
		if err != nil {
			if r.logger != nil {
				r.logger.Warn("datasource", "semantic retrieval failed, continuing without snippets", map[string]interface{}{
					"intent": intent.PrimaryIntent,
					"error":  err.Error(),
				})
			}
		} else {
			snippets = found
		}
	}

	return rows, snippets, nil
}
