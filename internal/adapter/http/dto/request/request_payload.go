package request

import (
	"strings"

	"gestao_compras/internal/domain/entities"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LineItemRequest struct {
	Description string  `json:"description" binding:"required"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
}

// CreatePurchaseRequest is the body of POST /requests. Field names follow
// the request columns so custom form fields can be sent untouched.
type CreatePurchaseRequest struct {
	OrderNumber       string            `json:"orderNumber"`
	RequestDate       string            `json:"requestDate"`
	Requester         string            `json:"requester"`
	Sector            string            `json:"sector"`
	Supplier          string            `json:"supplier"`
	Description       string            `json:"description"`
	Urgency           string            `json:"urgency"`
	PurchaseOrderDate string            `json:"purchaseOrderDate"`
	ForecastDate      string            `json:"forecastDate"`
	DeliveryDate      string            `json:"deliveryDate"`
	Status            string            `json:"status"`
	Responsible       string            `json:"responsible"`
	Items             []LineItemRequest `json:"items"`
	CustomFields      map[string]any    `json:"customFields"`
}

func (r CreatePurchaseRequest) ToEntity() entities.Request {
	items := make([]entities.LineItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.LineItem{Description: strings.TrimSpace(it.Description), Quantity: it.Quantity, Unit: it.Unit})
	}
	return entities.Request{
		OrderNumber:       strings.TrimSpace(r.OrderNumber),
		RequestDate:       strings.TrimSpace(r.RequestDate),
		Requester:         strings.TrimSpace(r.Requester),
		Sector:            strings.TrimSpace(r.Sector),
		Supplier:          strings.TrimSpace(r.Supplier),
		Description:       strings.TrimSpace(r.Description),
		Urgency:           strings.TrimSpace(r.Urgency),
		PurchaseOrderDate: strings.TrimSpace(r.PurchaseOrderDate),
		ForecastDate:      strings.TrimSpace(r.ForecastDate),
		DeliveryDate:      strings.TrimSpace(r.DeliveryDate),
		Status:            strings.TrimSpace(r.Status),
		Responsible:       strings.TrimSpace(r.Responsible),
		Items:             items,
		CustomFields:      r.CustomFields,
	}
}

type StatusRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color" binding:"required"`
}

type SectorRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type FormFieldRequest struct {
	Label      string   `json:"label"`
	Type       string   `json:"type"`
	Options    []string `json:"options"`
	Active     *bool    `json:"active"`
	Required   bool     `json:"required"`
	ShowInList bool     `json:"showInList"`
}

// ToEntity defaults Active to true when it is omitted.
func (r FormFieldRequest) ToEntity() entities.FormField {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return entities.FormField{
		Label:      r.Label,
		Type:       entities.FieldType(strings.TrimSpace(r.Type)),
		Options:    r.Options,
		Active:     active,
		Required:   r.Required,
		ShowInList: r.ShowInList,
	}
}

type ReorderFieldsRequest struct {
	IDs []string `json:"ids" binding:"required"`
}

type ListVisibilityRequest struct {
	Visibility map[string]bool `json:"visibility" binding:"required"`
}

type UserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Sector   string `json:"sector"`
}

func (r UserRequest) ToEntity() entities.User {
	return entities.User{Name: r.Name, Email: r.Email, Password: r.Password, Role: entities.Role(r.Role), Sector: r.Sector}
}

type SupplierRequest struct {
	Name     string `json:"name" binding:"required"`
	Contact  string `json:"contact"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Category string `json:"category"`
	Rating   int    `json:"rating"`
	Notes    string `json:"notes"`
}

func (r SupplierRequest) ToEntity() entities.Supplier {
	return entities.Supplier{
		Name: r.Name, Contact: r.Contact, Email: r.Email, Phone: r.Phone,
		Category: r.Category, Rating: r.Rating, Notes: r.Notes,
	}
}

type PriceMapRequest struct {
	Title  string                   `json:"title" binding:"required"`
	Date   string                   `json:"date"`
	Notes  string                   `json:"notes"`
	Items  []entities.PriceMapItem  `json:"items"`
	Offers []entities.SupplierOffer `json:"offers"`
}

func (r PriceMapRequest) ToEntity() entities.PriceMap {
	return entities.PriceMap{Title: r.Title, Date: r.Date, Notes: r.Notes, Items: r.Items, Offers: r.Offers}
}

type OfferPriceRequest struct {
	Supplier string  `json:"supplier" binding:"required"`
	ItemID   string  `json:"itemId" binding:"required"`
	Price    float64 `json:"price"`
}

type OfferFreightRequest struct {
	Supplier string  `json:"supplier" binding:"required"`
	Freight  float64 `json:"freight"`
}

type OfferDeadlineRequest struct {
	Supplier string `json:"supplier" binding:"required"`
	Deadline string `json:"deadline"`
}

type ThermalAnalysisRequest struct {
	Equipment         string  `json:"equipment"`
	Location          string  `json:"location"`
	TargetTemperature float64 `json:"targetTemperature"`
	Tolerance         float64 `json:"tolerance"`
}

func (r ThermalAnalysisRequest) ToEntity() entities.ThermalAnalysis {
	return entities.ThermalAnalysis{
		Equipment:         r.Equipment,
		Location:          r.Location,
		TargetTemperature: r.TargetTemperature,
		Tolerance:         r.Tolerance,
	}
}

type MeasurementRequest struct {
	Date        string  `json:"date" binding:"required"`
	Temperature float64 `json:"temperature"`
	Responsible string  `json:"responsible"`
	Notes       string  `json:"notes"`
}

func (r MeasurementRequest) ToEntity() entities.Measurement {
	return entities.Measurement{Date: r.Date, Temperature: r.Temperature, Responsible: strings.TrimSpace(r.Responsible), Notes: r.Notes}
}
