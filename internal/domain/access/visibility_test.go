package access

import (
	"errors"
	"testing"

	"gestao_compras/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestPolicy_IsVisible(t *testing.T) {
	p := DefaultPolicy()
	rh := entities.Request{ID: 1, Sector: "RH"}
	ti := entities.Request{ID: 2, Sector: "TI"}
	noSector := entities.Request{ID: 3}

	cases := []struct {
		name string
		user entities.User
		req  entities.Request
		want bool
	}{
		{name: "admin sees other sector", user: entities.User{Role: entities.RoleAdmin, Sector: "RH"}, req: ti, want: true},
		{name: "admin without sector", user: entities.User{Role: entities.RoleAdmin}, req: noSector, want: true},
		{name: "gerente sees everything", user: entities.User{Role: entities.RoleUser, Sector: "Gerente"}, req: ti, want: true},
		{name: "diretor sees everything", user: entities.User{Role: entities.RoleUser, Sector: "Diretor"}, req: rh, want: true},
		{name: "same sector", user: entities.User{Role: entities.RoleUser, Sector: "RH"}, req: rh, want: true},
		{name: "other sector", user: entities.User{Role: entities.RoleUser, Sector: "RH"}, req: ti, want: false},
		{name: "request without sector", user: entities.User{Role: entities.RoleUser, Sector: "RH"}, req: noSector, want: false},
		{name: "sector names are case sensitive", user: entities.User{Role: entities.RoleUser, Sector: "gerente"}, req: ti, want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, p.IsVisible(tc.req, tc.user))
		})
	}
}

func TestPolicy_FilterVisible(t *testing.T) {
	p := DefaultPolicy()
	requests := []entities.Request{
		{ID: 1, Sector: "RH"},
		{ID: 2, Sector: "TI"},
		{ID: 3, Sector: "RH"},
	}

	t.Run("sector user only sees own sector", func(t *testing.T) {
		got := p.FilterVisible(requests, entities.User{Role: entities.RoleUser, Sector: "RH"})
		assert.Len(t, got, 2)
		assert.Equal(t, int64(1), got[0].ID)
		assert.Equal(t, int64(3), got[1].ID)
	})

	t.Run("admin sees all and gets a copy", func(t *testing.T) {
		got := p.FilterVisible(requests, entities.User{Role: entities.RoleAdmin})
		assert.Len(t, got, 3)
		got[0].Sector = "changed"
		assert.Equal(t, "RH", requests[0].Sector)
	})
}

func TestPolicy_CanAccess(t *testing.T) {
	p := NewPolicy([]string{"Compras"})
	req := entities.Request{ID: 10, Sector: "TI"}

	err := p.CanAccess(req, entities.User{Role: entities.RoleUser, Sector: "RH"})
	assert.True(t, errors.Is(err, ErrAccessDenied))

	assert.NoError(t, p.CanAccess(req, entities.User{Role: entities.RoleUser, Sector: "Compras"}))
	// Custom policy replaces the default full-visibility sectors.
	assert.Error(t, p.CanAccess(req, entities.User{Role: entities.RoleUser, Sector: "Gerente"}))
}
