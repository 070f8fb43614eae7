package request

import (
	"testing"

	"gestao_compras/internal/domain/entities"
)

func TestCreatePurchaseRequest_ToEntity(t *testing.T) {
	r := CreatePurchaseRequest{
		Description: "  Toner  ",
		Sector:      " Compras ",
		Items:       []LineItemRequest{{Description: " Toner HP ", Quantity: 2}},
	}
	e := r.ToEntity()
	if e.Description != "Toner" || e.Sector != "Compras" {
		t.Fatalf("expected trimmed values, got %+v", e)
	}
	if len(e.Items) != 1 || e.Items[0].Description != "Toner HP" || e.Items[0].Quantity != 2 {
		t.Fatalf("unexpected items: %+v", e.Items)
	}
}

func TestFormFieldRequest_ToEntity(t *testing.T) {
	f := FormFieldRequest{Label: "Projeto", Type: " text "}.ToEntity()
	if !f.Active || f.Type != entities.FieldTypeText {
		t.Fatalf("expected active text field, got %+v", f)
	}

	inactive := false
	f = FormFieldRequest{Label: "Projeto", Active: &inactive}.ToEntity()
	if f.Active {
		t.Fatalf("explicit active=false must be kept")
	}
}
