package entities

// Urgency levels accepted on a Request.
const (
	UrgencyHigh   = "Alta"
	UrgencyNormal = "Normal"
	UrgencyLow    = "Baixa"
)

const (
	// DefaultDeliveredStatus is the conventional name of the terminal workflow state.
	DefaultDeliveredStatus = "Entregue"

	// EmptyValue is written into history entries in place of a missing value.
	EmptyValue = "(vazio)"

	// SystemUser signs history entries when no operator name is known.
	SystemUser = "Sistema"

	// NoSector buckets requests without a sector in dashboard breakdowns.
	NoSector = "Sem Setor"
)

// Request is a procurement ticket (solicitação de compra).
//
// Storage model:
//   - table: requests, PK: id (number)
//   - json tags are the backend column names; FormField.ID refers to them.
//
// Dates are ISO strings (YYYY-MM-DD) exactly as entered in the form; an empty
// string means "not informed".
type Request struct {
	ID                int64          `json:"id"`
	OrderNumber       string         `json:"orderNumber"`
	RequestDate       string         `json:"requestDate"`
	Requester         string         `json:"requester"`
	Sector            string         `json:"sector"`
	Supplier          string         `json:"supplier"`
	Description       string         `json:"description"`
	Urgency           string         `json:"urgency,omitempty"`
	PurchaseOrderDate string         `json:"purchaseOrderDate,omitempty"`
	ForecastDate      string         `json:"forecastDate,omitempty"`
	DeliveryDate      string         `json:"deliveryDate,omitempty"`
	Status            string         `json:"status"`
	Responsible       string         `json:"responsible"`
	Items             []LineItem     `json:"items"`
	CustomFields      map[string]any `json:"customFields"`
	History           []HistoryEntry `json:"history"`
}

// LineItem is one requested product inside a Request.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit,omitempty"`
}

// HistoryEntry is one immutable audit record of a field change.
type HistoryEntry struct {
	Date     string `json:"date"`
	User     string `json:"user"`
	Field    string `json:"field"`
	OldValue string `json:"oldValue"`
	NewValue string `json:"newValue"`
}

// IsUrgent reports whether the request carries the highest urgency.
func (r Request) IsUrgent() bool {
	return r.Urgency == UrgencyHigh
}
