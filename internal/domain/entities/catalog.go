package entities

// FieldType is the input widget used for a FormField.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeTextarea FieldType = "textarea"
	FieldTypeNumber   FieldType = "number"
	FieldTypeDate     FieldType = "date"
	FieldTypeSelect   FieldType = "select"
)

// Valid reports whether t is one of the supported field types.
func (t FieldType) Valid() bool {
	switch t {
	case FieldTypeText, FieldTypeTextarea, FieldTypeNumber, FieldTypeDate, FieldTypeSelect:
		return true
	}
	return false
}

// FormField configures one column of the request form and list.
//
// Standard fields map to Request columns and can only be deactivated;
// custom fields store their values in Request.CustomFields.
type FormField struct {
	ID         string    `json:"id"`
	Label      string    `json:"label"`
	Type       FieldType `json:"type"`
	Options    []string  `json:"options,omitempty"`
	Active     bool      `json:"active"`
	Required   bool      `json:"required"`
	Standard   bool      `json:"standard"`
	ShowInList bool      `json:"showInList"`
	Order      int       `json:"order"`
}

// StatusColor is the badge color of a Status.
type StatusColor string

const (
	StatusColorYellow StatusColor = "yellow"
	StatusColorBlue   StatusColor = "blue"
	StatusColorPurple StatusColor = "purple"
	StatusColorGreen  StatusColor = "green"
	StatusColorRed    StatusColor = "red"
	StatusColorGray   StatusColor = "gray"
)

// Valid reports whether c belongs to the fixed color palette.
func (c StatusColor) Valid() bool {
	switch c {
	case StatusColorYellow, StatusColorBlue, StatusColorPurple, StatusColorGreen, StatusColorRed, StatusColorGray:
		return true
	}
	return false
}

// Status is a named workflow state. Requests reference it by name.
type Status struct {
	ID    int64       `json:"id"`
	Name  string      `json:"name"`
	Color StatusColor `json:"color"`
}

// Sector is an organizational unit.
type Sector struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// DefaultFormFields is the standard field set created on first run.
func DefaultFormFields() []FormField {
	std := func(id, label string, t FieldType, required, list bool) FormField {
		return FormField{ID: id, Label: label, Type: t, Active: true, Required: required, Standard: true, ShowInList: list}
	}
	fields := []FormField{
		std("orderNumber", "Nº Pedido", FieldTypeText, false, true),
		std("requestDate", "Data da Solicitação", FieldTypeDate, true, true),
		std("requester", "Solicitante", FieldTypeText, true, true),
		std("sector", "Setor", FieldTypeSelect, true, true),
		std("supplier", "Fornecedor", FieldTypeText, false, true),
		std("description", "Descrição", FieldTypeTextarea, true, false),
		std("urgency", "Urgência", FieldTypeSelect, false, true),
		std("purchaseOrderDate", "Data do Pedido de Compra", FieldTypeDate, false, false),
		std("forecastDate", "Previsão de Entrega", FieldTypeDate, false, false),
		std("deliveryDate", "Data de Entrega", FieldTypeDate, false, true),
		std("status", "Status", FieldTypeSelect, true, true),
		std("responsible", "Responsável", FieldTypeText, false, true),
	}
	for i := range fields {
		fields[i].Order = i
	}
	return fields
}
