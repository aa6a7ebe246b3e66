package intent

import (
	"strings"

	"medequip-support-be/pkg/store"
)

// entityPrefixes maps a literal, case-sensitive token prefix to the entity
// kind it identifies. Suffixes are not validated; a malformed id is kept as-is.
var entityPrefixes = []struct {
	prefix string
	kind   string
}{
	{"ORD-", store.EntityOrderID},
	{"TKT-", store.EntityTicketID},
	{"INV-", store.EntityInvoiceID},
	{"ME-", store.EntityClientID},
	{"US-", store.EntitySerialNumber},
	{"CT-", store.EntitySerialNumber},
}

// ExtractEntities scans whitespace-separated tokens of the original-case
// message for structured identifiers. At most one value per kind survives;
// when a kind appears more than once the last-seen token wins.
func ExtractEntities(message string) map[string]string {
	entities := make(map[string]string)
	for _, token := range strings.Fields(message) {
		for _, p := range entityPrefixes {
			if strings.HasPrefix(token, p.prefix) {
				entities[p.kind] = token
			}
		}
	}
	return entities
}
