package store

// Identity is the client record resolved by a successful credential lookup.
// At most one identity exists per session.
type Identity struct {
	ClientID string `json:"client_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

// DataSource tells the router which retrieval path(s) an intent uses.
type DataSource string

const (
	DataSourceSQL  DataSource = "SQL"
	DataSourceRAG  DataSource = "RAG"
	DataSourceBoth DataSource = "BOTH"
	DataSourceNone DataSource = "NONE"
)

// Intent names (primary intents)
const (
	IntentOrderDelivery   = "ORDER_DELIVERY"
	IntentProductInfo     = "PRODUCT_INFO"
	IntentWarrantyAMC     = "WARRANTY_AMC"
	IntentIssueResolution = "ISSUE_RESOLUTION"
	IntentFinancial       = "FINANCIAL"
	IntentSpareParts      = "SPARE_PARTS"
	IntentCompliance      = "COMPLIANCE"
	IntentGeneralSupport  = "GENERAL_SUPPORT"
)

// Entity kinds recognized by the extractor
const (
	EntityOrderID      = "order_id"
	EntityTicketID     = "ticket_id"
	EntityInvoiceID    = "invoice_id"
	EntityClientID     = "client_id"
	EntitySerialNumber = "serial_number"
)

// IntentResult is produced fresh for every message and never persisted.
type IntentResult struct {
	PrimaryIntent string            `json:"primary_intent"`
	RequiresAuth  bool              `json:"requires_auth"`
	DataSource    DataSource        `json:"data_source"`
	Entities      map[string]string `json:"entities"`
}

// QueryScope is the per-template authorization policy. Client-scoped templates
// always bind the authenticated client id; unscoped templates are keyed by
// device serial or global catalog and deliberately carry no client filter.
type QueryScope string

const (
	ScopeClient   QueryScope = "scoped-to-authenticated-client"
	ScopeUnscoped QueryScope = "unscoped"
)

// QuerySpec is a parameterized query template with positionally bound params.
// It is consumed exactly once by the query executor.
type QuerySpec struct {
	Template string
	Params   []interface{}
	Scope    QueryScope
}

// Row is one structured query result row, column name to value.
type Row map[string]interface{}

// Snippet is a ranked knowledge-base fragment returned by semantic retrieval.
type Snippet struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// ConversationTurn is one (user, assistant) exchange kept in history.
type ConversationTurn struct {
	User      string `json:"user"`
	Assistant string `json:"assistant"`
}
