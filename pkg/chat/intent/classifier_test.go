package intent

import (
	"testing"

	"medequip-support-be/pkg/store"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name         string
		message      string
		wantIntent   string
		wantAuth     bool
		wantSource   store.DataSource
		wantEntities int
	}{
		{
			name:       "order delivery",
			message:    "Where is my shipment?",
			wantIntent: store.IntentOrderDelivery,
			wantAuth:   true,
			wantSource: store.DataSourceSQL,
		},
		{
			name:       "product info",
			message:    "Send me the power requirements for the CT scanner",
			wantIntent: store.IntentProductInfo,
			wantAuth:   false,
			wantSource: store.DataSourceRAG,
		},
		{
			name:       "warranty",
			message:    "Is my AMC still active?",
			wantIntent: store.IntentWarrantyAMC,
			wantAuth:   true,
			wantSource: store.DataSourceSQL,
		},
		{
			name:       "issue resolution uses both sources",
			message:    "The monitor shows an error",
			wantIntent: store.IntentIssueResolution,
			wantAuth:   true,
			wantSource: store.DataSourceBoth,
		},
		{
			name:       "financial",
			message:    "I need a copy of my bill",
			wantIntent: store.IntentFinancial,
			wantAuth:   true,
			wantSource: store.DataSourceSQL,
		},
		{
			name:       "spare parts",
			message:    "Do you have this spare in stock?",
			wantIntent: store.IntentSpareParts,
			wantAuth:   true,
			wantSource: store.DataSourceSQL,
		},
		{
			name:       "compliance",
			message:    "Is the DL-4000 FDA cleared?",
			wantIntent: store.IntentCompliance,
			wantAuth:   false,
			wantSource: store.DataSourceRAG,
		},
		{
			name:       "general support",
			message:    "What are your phone hours?",
			wantIntent: store.IntentGeneralSupport,
			wantAuth:   false,
			wantSource: store.DataSourceRAG,
		},
		{
			name:       "no rule matches falls back to general support",
			message:    "Hello there",
			wantIntent: store.IntentGeneralSupport,
			wantAuth:   false,
			wantSource: store.DataSourceRAG,
		},
		{
			name:       "order rule precedes warranty rule",
			message:    "Does the warranty cover my order?",
			wantIntent: store.IntentOrderDelivery,
			wantAuth:   true,
			wantSource: store.DataSourceSQL,
		},
		{
			name:         "warranty rule precedes parts rule",
			message:      "Does the warranty for US-3001 cover this part?",
			wantIntent:   store.IntentWarrantyAMC,
			wantAuth:     true,
			wantSource:   store.DataSourceSQL,
			wantEntities: 1,
		},
		{
			name:         "entities extracted from original case",
			message:      "Track order ORD-2024-0001",
			wantIntent:   store.IntentOrderDelivery,
			wantAuth:     true,
			wantSource:   store.DataSourceSQL,
			wantEntities: 1,
		},
	}

	classifier := NewClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifier.Classify(tt.message)
			if got.PrimaryIntent != tt.wantIntent {
				t.Errorf("PrimaryIntent = %s, want %s", got.PrimaryIntent, tt.wantIntent)
			}
			if got.RequiresAuth != tt.wantAuth {
				t.Errorf("RequiresAuth = %v, want %v", got.RequiresAuth, tt.wantAuth)
			}
			if got.DataSource != tt.wantSource {
				t.Errorf("DataSource = %s, want %s", got.DataSource, tt.wantSource)
			}
			if len(got.Entities) != tt.wantEntities {
				t.Errorf("len(Entities) = %d, want %d", len(got.Entities), tt.wantEntities)
			}
			if got.Entities == nil {
				t.Error("Entities must never be nil")
			}
		})
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	classifier := NewClassifier()
	message := "Is there a problem with my order ORD-1 and invoice INV-2?"

	first := classifier.Classify(message)
	for i := 0; i < 10; i++ {
		got := classifier.Classify(message)
		if got.PrimaryIntent != first.PrimaryIntent || got.DataSource != first.DataSource {
			t.Fatalf("classification changed between runs: %+v vs %+v", got, first)
		}
	}
}
