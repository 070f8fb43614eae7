package entities

// Supplier is a vendor. Requests reference suppliers by name, not by id.
type Supplier struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Contact  string `json:"contact"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Category string `json:"category"`
	Rating   int    `json:"rating"`
	Notes    string `json:"notes"`
}

// MaxSupplierRating is the highest star rating.
const MaxSupplierRating = 5

// PriceMap is a quote-comparison document (mapa de preços).
// It is not linked back to any Request.
type PriceMap struct {
	ID     int64           `json:"id"`
	Title  string          `json:"title"`
	Date   string          `json:"date"`
	Notes  string          `json:"notes"`
	Items  []PriceMapItem  `json:"items"`
	Offers []SupplierOffer `json:"offers"`
}

// PriceMapItem is one requested line of a PriceMap.
type PriceMapItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit,omitempty"`
}

// SupplierOffer is one supplier's bid for the items of a PriceMap.
// Prices is keyed by PriceMapItem.ID; a missing or non-positive price means "no bid".
type SupplierOffer struct {
	Supplier         string             `json:"supplier"`
	Prices           map[string]float64 `json:"prices"`
	Freight          float64            `json:"freight"`
	DeliveryDeadline string             `json:"deliveryDeadline"`
	PaymentTerms     string             `json:"paymentTerms,omitempty"`
}
