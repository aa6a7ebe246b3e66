package datasource

import (
	"context"
	"errors"
	"testing"

	"medequip-support-be/pkg/store"
)

type fakeExecutor struct {
	rows   []store.Row
	err    error
	called int
}

func (f *fakeExecutor) Execute(_ context.Context, _ string, _ ...interface{}) ([]store.Row, error) {
	f.called++
	return f.rows, f.err
}

type fakeRetriever struct {
	snippets []store.Snippet
	err      error
	called   int
}

func (f *fakeRetriever) Search(_ context.Context, _ string, _ int) ([]store.Snippet, error) {
	f.called++
	return f.snippets, f.err
}

type nopLogger struct{}

func (nopLogger) Warn(string, string, map[string]interface{}) {}

func TestRoute(t *testing.T) {
	ctx := context.Background()
	spec := &store.QuerySpec{Template: "SELECT 1", Params: nil, Scope: store.ScopeUnscoped}

	tests := []struct {
		name         string
		intent       store.IntentResult
		spec         *store.QuerySpec
		ragEnabled   bool
		wantQueries  int
		wantSearches int
	}{
		{
			name:         "sql intent with spec runs query only",
			intent:       store.IntentResult{DataSource: store.DataSourceSQL},
			spec:         spec,
			ragEnabled:   true,
			wantQueries:  1,
			wantSearches: 0,
		},
		{
			name:         "both intent runs query then retrieval",
			intent:       store.IntentResult{DataSource: store.DataSourceBoth},
			spec:         spec,
			ragEnabled:   true,
			wantQueries:  1,
			wantSearches: 1,
		},
		{
			name:         "rag intent without spec runs retrieval only",
			intent:       store.IntentResult{DataSource: store.DataSourceRAG},
			spec:         nil,
			ragEnabled:   true,
			wantQueries:  0,
			wantSearches: 1,
		},
		{
			name:         "rag disabled suppresses retrieval",
			intent:       store.IntentResult{DataSource: store.DataSourceRAG},
			spec:         nil,
			ragEnabled:   false,
			wantQueries:  0,
			wantSearches: 0,
		},
		{
			name:         "query path is independent of the rag toggle",
			intent:       store.IntentResult{DataSource: store.DataSourceRAG},
			spec:         spec,
			ragEnabled:   false,
			wantQueries:  1,
			wantSearches: 0,
		},
		{
			name:         "none source triggers neither call",
			intent:       store.IntentResult{DataSource: store.DataSourceNone},
			spec:         nil,
			ragEnabled:   true,
			wantQueries:  0,
			wantSearches: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			executor := &fakeExecutor{rows: []store.Row{{"n": 1}}}
			retriever := &fakeRetriever{snippets: []store.Snippet{{Title: "Doc", Text: "text"}}}
			router := NewRouter(executor, retriever, nopLogger{}, tt.ragEnabled, 3)

			_, _, err := router.Route(ctx, tt.intent, tt.spec, "message")
			if err != nil {
				t.Fatalf("Route error: %v", err)
			}
			if executor.called != tt.wantQueries {
				t.Errorf("query calls = %d, want %d", executor.called, tt.wantQueries)
			}
			if retriever.called != tt.wantSearches {
				t.Errorf("search calls = %d, want %d", retriever.called, tt.wantSearches)
			}
		})
	}
}

func TestRouteQueryFailurePropagates(t *testing.T) {
	executor := &fakeExecutor{err: errors.New("timeout")}
	retriever := &fakeRetriever{}
	router := NewRouter(executor, retriever, nopLogger{}, true, 3)

	_, _, err := router.Route(context.Background(),
		store.IntentResult{DataSource: store.DataSourceBoth},
		&store.QuerySpec{Template: "SELECT 1"}, "msg")
	if err == nil {
		t.Fatal("expected query failure to propagate")
	}
	if retriever.called != 0 {
		t.Error("retrieval ran after query failure")
	}
}

func TestRouteRetrievalFailureDegrades(t *testing.T) {
	executor := &fakeExecutor{rows: []store.Row{{"n": 1}}}
	retriever := &fakeRetriever{err: errors.New("vector store unavailable")}
	router := NewRouter(executor, retriever, nopLogger{}, true, 3)

	rows, snippets, err := router.Route(context.Background(),
		store.IntentResult{DataSource: store.DataSourceBoth},
		&store.QuerySpec{Template: "SELECT 1"}, "msg")
	if err != nil {
		t.Fatalf("retrieval failure must not abort the message: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("rows = %v, want the query result", rows)
	}
	if len(snippets) != 0 {
		t.Errorf("snippets = %v, want empty on degradation", snippets)
	}
}
