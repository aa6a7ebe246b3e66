package intent

import (
	"strings"

	"medequip-support-be/pkg/store"
)

// rule pairs a keyword set with its classification outcome. Rules are
// evaluated in order and the first match wins, so a message containing both
// "order" and "warranty" classifies as ORDER_DELIVERY.
type rule struct {
	keywords     []string
	intent       string
	requiresAuth bool
	dataSource   store.DataSource
}

var rules = []rule{
	{[]string{"order", "shipment", "delivery", "tracking"}, store.IntentOrderDelivery, true, store.DataSourceSQL},
	{[]string{"spec", "specification", "manual", "power requirements"}, store.IntentProductInfo, false, store.DataSourceRAG},
	{[]string{"warranty", "amc", "maintenance"}, store.IntentWarrantyAMC, true, store.DataSourceSQL},
	{[]string{"ticket", "issue", "problem", "error"}, store.IntentIssueResolution, true, store.DataSourceBoth},
	{[]string{"invoice", "payment", "bill"}, store.IntentFinancial, true, store.DataSourceSQL},
	{[]string{"part", "spare", "stock"}, store.IntentSpareParts, true, store.DataSourceSQL},
	{[]string{"fda", "ce", "iso", "compliance"}, store.IntentCompliance, false, store.DataSourceRAG},
	{[]string{"hours", "contact", "phone", "support"}, store.IntentGeneralSupport, false, store.DataSourceRAG},
}

// Classifier maps free text to a primary intent, an auth requirement and a
// data-source strategy using a flat ordered keyword rule list. It is pure and
// total: every message yields a populated IntentResult.
type Classifier struct{}

func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify lower-cases the message for keyword tests but extracts entities
// from the original-case text (prefix patterns are case-sensitive).
func (c *Classifier) Classify(message string) store.IntentResult {
	result := store.IntentResult{
		PrimaryIntent: store.IntentGeneralSupport,
		RequiresAuth:  false,
		DataSource:    store.DataSourceRAG,
		Entities:      ExtractEntities(message),
	}

	text := strings.ToLower(message)
	for _, r := range rules {
		if containsAny(text, r.keywords) {
			result.PrimaryIntent = r.intent
			result.RequiresAuth = r.requiresAuth
			result.DataSource = r.dataSource
			break
		}
	}

	return result
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
