package response

import (
	"encoding/json"
	"fmt"
	"strings"

	"medequip-support-be/pkg/store"
)

// MissingColumnError reports a result row that lacks a column the intent
// template needs. This is a data-shape mismatch between the query template
// and the synthesizer, surfaced as a typed error instead of a panic.
type MissingColumnError struct {
	Intent string
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("response: intent %s expects column %q in query results", e.Intent, e.Column)
}

// Synthesizer renders intent + query rows + retrieved snippets into a reply
// using fixed intent templates, with a generic fallback.
type Synthesizer struct{}

func NewSynthesizer() *Synthesizer {
	return &Synthesizer{}
}

// Synthesize dispatches on the primary intent. Every intent branch requires a
// non-empty row set; otherwise the reply falls through to the retrieved
// snippets, then to the generic fallback carrying a machine-readable dump of
// the classification.
func (s *Synthesizer) Synthesize(intent store.IntentResult, rows []store.Row, snippets []store.Snippet, identity *store.Identity) (string, error) {
	if len(rows) > 0 {
		switch intent.PrimaryIntent {
		case store.IntentOrderDelivery:
			return s.orderDelivery(intent, rows[0], identity)
		case store.IntentWarrantyAMC:
			return s.warranty(intent, rows[0])
		case store.IntentIssueResolution:
			return s.issueResolution(intent, rows[0])
		case store.IntentFinancial:
			return s.financial(intent, rows[0])
		case store.IntentSpareParts:
			return s.spareParts(intent, rows)
		}
	}

	if len(snippets) > 0 {
		return renderSnippets(snippets), nil
	}

	return s.fallback(intent), nil
}

func (s *Synthesizer) orderDelivery(intent store.IntentResult, row store.Row, identity *store.Identity) (string, error) {
	orderID, err := column(intent, row, "order_id")
	if err != nil {
		return "", err
	}
	status, err := column(intent, row, "status")
	if err != nil {
		return "", err
	}
	expected, err := column(intent, row, "expected_delivery_date")
	if err != nil {
		return "", err
	}

	// Delivery status falls back to the order status when the shipment has
	// not reported one yet.
	delivery := stringValue(row["delivery_status"])
	if delivery == "" {
		delivery = status
	}

	clientID := ""
	if identity != nil {
		clientID = identity.ClientID
	}

	return fmt.Sprintf("Order %s for client %s is currently '%s'. Expected delivery date: %s",
		orderID, clientID, delivery, expected), nil
}

func (s *Synthesizer) warranty(intent store.IntentResult, row store.Row) (string, error) {
	values, err := columns(intent, row, "serial_number", "warranty_id", "start_date", "end_date", "coverage_level")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Serial %s is covered under warranty %s from %s to %s (level: %s).",
		values[0], values[1], values[2], values[3], values[4]), nil
}

// issueResolution reports the ticket id from the extracted entities, not the
// row, and treats the first row as the most recent event. The ticket template
// orders history by event time descending; that ORDER BY is the contract that
// makes rows[0] the latest update.
func (s *Synthesizer) issueResolution(intent store.IntentResult, row store.Row) (string, error) {
	values, err := columns(intent, row, "status", "event_time", "notes")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Ticket %s is currently '%s'. Most recent update at %s: %s",
		intent.Entities[store.EntityTicketID], values[0], values[1], values[2]), nil
}

func (s *Synthesizer) financial(intent store.IntentResult, row store.Row) (string, error) {
	values, err := columns(intent, row, "invoice_id", "order_id", "status", "amount", "due_date")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Invoice %s for order %s has status '%s' and amount %s (due %s).",
		values[0], values[1], values[2], values[3], values[4]), nil
}

// spareParts enumerates every row, one line per part, in the order received.
func (s *Synthesizer) spareParts(intent store.IntentResult, rows []store.Row) (string, error) {
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		values, err := columns(intent, row, "name", "part_number", "stock_quantity", "unit_price")
		if err != nil {
			return "", err
		}
		lines = append(lines, fmt.Sprintf("%s (Part %s): %s in stock at %s each",
			values[0], values[1], values[2], values[3]))
	}
	return "Available parts:\n" + strings.Join(lines, "\n"), nil
}

func renderSnippets(snippets []store.Snippet) string {
	lines := make([]string, 0, len(snippets))
	for _, sn := range snippets {
		lines = append(lines, fmt.Sprintf("[%s] %s", sn.Title, sn.Text))
	}
	return strings.Join(lines, "\n")
}

// fallback embeds the serialized classification so an unconfident reply stays
// diagnosable from the transcript alone.
func (s *Synthesizer) fallback(intent store.IntentResult) string {
	dump, err := json.MarshalIndent(intent, "", "  ")
	if err != nil {
		dump = []byte(intent.PrimaryIntent)
	}
	return "I'm not sure I can fully answer that yet, but here is what I found: " + string(dump)
}

func column(intent store.IntentResult, row store.Row, name string) (string, error) {
	value, ok := row[name]
	if !ok {
		return "", &MissingColumnError{Intent: intent.PrimaryIntent, Column: name}
	}
	return stringValue(value), nil
}

func columns(intent store.IntentResult, row store.Row, names ...string) ([]string, error) {
	values := make([]string, len(names))
	for i, name := range names {
		v, err := column(intent, row, name)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

func stringValue(v interface{}) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
