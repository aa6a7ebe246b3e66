package query

import (
	"fmt"
	"strings"

	"medequip-support-be/pkg/store"
)

// Query templates selected by keyword + entity presence. Positional `?`
// placeholders are bound by the executor.
const (
	orderShipmentTemplate = "SELECT o.order_id, o.status, s.delivery_status, s.expected_delivery_date " +
		"FROM orders o LEFT JOIN shipments s ON o.order_id = s.order_id " +
		"WHERE o.order_id = ? AND o.client_id = ?"

	ticketHistoryTemplate = "SELECT t.ticket_id, t.status, h.event_time, h.status AS history_status, h.notes " +
		"FROM support_tickets t LEFT JOIN ticket_history h ON t.ticket_id = h.ticket_id " +
		"WHERE t.ticket_id = ? AND t.client_id = ? ORDER BY h.event_time DESC"

	invoiceTemplate = "SELECT invoice_id, client_id, order_id, amount, issue_date, due_date, status " +
		"FROM invoices WHERE invoice_id = ? AND client_id = ?"

	warrantyTemplate = "SELECT w.warranty_id, w.serial_number, w.start_date, w.end_date, w.coverage_level " +
		"FROM warranties w WHERE w.serial_number = ?"

	partsCatalogTemplate = "SELECT part_number, name, description, stock_quantity, unit_price " +
		"FROM parts_catalog WHERE name LIKE ?"
)

// Builder selects a parameterized query template from the message and the
// extracted entities. Client-scoped templates bind the authenticated client
// id, never a client id found in the message text, so one tenant cannot read
// another tenant's orders, tickets or invoices. Warranty and parts lookups
// are unscoped: they are keyed by device serial and global catalog.
type Builder struct{}

func NewBuilder() *Builder {
	return &Builder{}
}

// Build returns nil when no template applies; that is the normal "no query"
// outcome, not an error.
func (b *Builder) Build(message string, entities map[string]string, identity *store.Identity) *store.QuerySpec {
	text := strings.ToLower(message)

	clientID := ""
	if identity != nil {
		clientID = identity.ClientID
	}

	if orderID, ok := entities[store.EntityOrderID]; ok && strings.Contains(text, "order") {
		return &store.QuerySpec{
			Template: orderShipmentTemplate,
			Params:   []interface{}{orderID, clientID},
			Scope:    store.ScopeClient,
		}
	}

	if ticketID, ok := entities[store.EntityTicketID]; ok && strings.Contains(text, "ticket") {
		return &store.QuerySpec{
			Template: ticketHistoryTemplate,
			Params:   []interface{}{ticketID, clientID},
			Scope:    store.ScopeClient,
		}
	}

	if invoiceID, ok := entities[store.EntityInvoiceID]; ok && strings.Contains(text, "invoice") {
		return &store.QuerySpec{
			Template: invoiceTemplate,
			Params:   []interface{}{invoiceID, clientID},
			Scope:    store.ScopeClient,
		}
	}

	if serial, ok := entities[store.EntitySerialNumber]; ok && strings.Contains(text, "warranty") {
		return &store.QuerySpec{
			Template: warrantyTemplate,
			Params:   []interface{}{serial},
			Scope:    store.ScopeUnscoped,
		}
	}

	if containsAny(text, "part", "spare", "stock") {
		return &store.QuerySpec{
			Template: partsCatalogTemplate,
			Params:   []interface{}{partsPattern(entities)},
			Scope:    store.ScopeUnscoped,
		}
	}

	return nil
}

// partsPattern wraps a product name in wildcards for the fuzzy catalog
// lookup, or matches everything when no name was supplied.
func partsPattern(entities map[string]string) string {
	if name, ok := entities["product_model"]; ok && name != "" {
		return fmt.Sprintf("%%%s%%", name)
	}
	return "%%"
}

func containsAny(text string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
