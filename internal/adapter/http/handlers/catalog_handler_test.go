package handlers

import (
	"net/http"
	"testing"

	"gestao_compras/internal/adapter/http/dto/response"
	"gestao_compras/internal/adapter/http/handlers/mocks"
	"gestao_compras/internal/domain/entities"
	"gestao_compras/internal/usecase"
	"gestao_compras/internal/usecase/interfaces"

	"go.uber.org/mock/gomock"
)

func TestCatalogHandler_Statuses(t *testing.T) {
	t.Run("list degrades on backend failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICatalogUseCase(ctrl)
		uc.EXPECT().ListStatuses(gomock.Any()).Return(nil, &interfaces.StoreError{Table: interfaces.TableStatuses, Code: "08006"})

		r := newRouter(&buyer)
		r.GET("/v1/statuses", NewCatalogHandler(uc).ListStatuses)
		w := do(r, http.MethodGet, "/v1/statuses", "")

		expectCode(t, w, http.StatusOK)
		var body response.ListResponse[entities.Status]
		decode(t, w, &body)
		if len(body.Data) != 0 || body.Warning == nil {
			t.Fatalf("expected empty list with warning, got %+v", body)
		}
	})

	t.Run("create with invalid color", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICatalogUseCase(ctrl)
		uc.EXPECT().CreateStatus(gomock.Any(), "Revisão", entities.StatusColor("pink")).Return(entities.Status{}, usecase.ErrInvalidStatusColor)

		r := newRouter(&admin)
		r.POST("/v1/statuses", NewCatalogHandler(uc).CreateStatus)
		expectCode(t, do(r, http.MethodPost, "/v1/statuses", `{"name":"Revisão","color":"pink"}`), http.StatusBadRequest)
	})

	t.Run("create duplicate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICatalogUseCase(ctrl)
		uc.EXPECT().CreateStatus(gomock.Any(), "Pendente", entities.StatusColorYellow).Return(entities.Status{}, usecase.ErrStatusAlreadyExists)

		r := newRouter(&admin)
		r.POST("/v1/statuses", NewCatalogHandler(uc).CreateStatus)
		expectCode(t, do(r, http.MethodPost, "/v1/statuses", `{"name":"Pendente","color":"yellow"}`), http.StatusConflict)
	})

	t.Run("update and delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICatalogUseCase(ctrl)
		uc.EXPECT().UpdateStatus(gomock.Any(), int64(3), "Em Cotação", entities.StatusColorBlue).
			Return(entities.Status{ID: 3, Name: "Em Cotação", Color: entities.StatusColorBlue}, nil)
		uc.EXPECT().DeleteStatus(gomock.Any(), int64(4)).Return(usecase.ErrStatusNotFound)

		h := NewCatalogHandler(uc)
		r := newRouter(&admin)
		r.PUT("/v1/statuses/:id", h.UpdateStatus)
		r.DELETE("/v1/statuses/:id", h.DeleteStatus)
		expectCode(t, do(r, http.MethodPut, "/v1/statuses/3", `{"name":"Em Cotação","color":"blue"}`), http.StatusOK)
		expectCode(t, do(r, http.MethodDelete, "/v1/statuses/4", ""), http.StatusNotFound)
	})
}

func TestCatalogHandler_Sectors(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockICatalogUseCase(ctrl)
	uc.EXPECT().ListSectors(gomock.Any()).Return([]entities.Sector{{ID: 1, Name: "Compras"}}, nil)
	uc.EXPECT().CreateSector(gomock.Any(), "TI", "Tecnologia").Return(entities.Sector{ID: 2, Name: "TI"}, nil)
	uc.EXPECT().DeleteSector(gomock.Any(), int64(2)).Return(nil)

	h := NewCatalogHandler(uc)
	r := newRouter(&admin)
	r.GET("/v1/sectors", h.ListSectors)
	r.POST("/v1/sectors", h.CreateSector)
	r.PUT("/v1/sectors/:id", h.UpdateSector)
	r.DELETE("/v1/sectors/:id", h.DeleteSector)

	expectCode(t, do(r, http.MethodGet, "/v1/sectors", ""), http.StatusOK)
	expectCode(t, do(r, http.MethodPost, "/v1/sectors", `{"name":"TI","description":"Tecnologia"}`), http.StatusCreated)
	expectCode(t, do(r, http.MethodPut, "/v1/sectors/2", `{"description":"sem nome"}`), http.StatusBadRequest)
	expectCode(t, do(r, http.MethodDelete, "/v1/sectors/2", ""), http.StatusNoContent)
}

func TestCatalogHandler_FormFields(t *testing.T) {
	t.Run("standard field cannot be deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICatalogUseCase(ctrl)
		uc.EXPECT().DeleteFormField(gomock.Any(), "supplier").Return(usecase.ErrStandardFieldDelete)

		r := newRouter(&admin)
		r.DELETE("/v1/form-fields/:id", NewCatalogHandler(uc).DeleteFormField)
		w := do(r, http.MethodDelete, "/v1/form-fields/supplier", "")

		expectCode(t, w, http.StatusConflict)
		var body map[string]string
		decode(t, w, &body)
		if body["code"] != "STANDARD_FIELD" {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("create defaults to active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICatalogUseCase(ctrl)
		uc.EXPECT().CreateFormField(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, f entities.FormField) (entities.FormField, error) {
				if !f.Active || f.Label != "Projeto" || f.Type != entities.FieldTypeText {
					t.Fatalf("unexpected field %+v", f)
				}
				f.ID = "cf_12345678"
				return f, nil
			})

		r := newRouter(&admin)
		r.POST("/v1/form-fields", NewCatalogHandler(uc).CreateFormField)
		expectCode(t, do(r, http.MethodPost, "/v1/form-fields", `{"label":"Projeto","type":"text"}`), http.StatusCreated)
	})

	t.Run("update unknown field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICatalogUseCase(ctrl)
		uc.EXPECT().UpdateFormField(gomock.Any(), "cf_x", gomock.Any()).Return(entities.FormField{}, usecase.ErrFieldNotFound)

		r := newRouter(&admin)
		r.PUT("/v1/form-fields/:id", NewCatalogHandler(uc).UpdateFormField)
		expectCode(t, do(r, http.MethodPut, "/v1/form-fields/cf_x", `{"label":"X","type":"text"}`), http.StatusNotFound)
	})

	t.Run("reorder and visibility", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICatalogUseCase(ctrl)
		uc.EXPECT().ReorderFormFields(gomock.Any(), []string{"status", "supplier"}).Return([]entities.FormField{{ID: "status"}, {ID: "supplier", Order: 1}}, nil)
		uc.EXPECT().SetListVisibility(gomock.Any(), map[string]bool{"supplier": false}).Return([]entities.FormField{{ID: "supplier"}}, nil)

		h := NewCatalogHandler(uc)
		r := newRouter(&admin)
		r.PUT("/v1/form-fields/order", h.ReorderFormFields)
		r.PATCH("/v1/form-fields/visibility", h.SetListVisibility)

		expectCode(t, do(r, http.MethodPut, "/v1/form-fields/order", `{"ids":["status","supplier"]}`), http.StatusOK)
		expectCode(t, do(r, http.MethodPatch, "/v1/form-fields/visibility", `{"visibility":{"supplier":false}}`), http.StatusOK)
		expectCode(t, do(r, http.MethodPut, "/v1/form-fields/order", `{}`), http.StatusBadRequest)
	})
}
