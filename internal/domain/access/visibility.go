// Package access decides which requests a user may see.
//
// The evaluator works on data already fetched from the backend; it is a
// UI-level authorization check, not the only security boundary.
package access

import (
	"errors"

	"gestao_compras/internal/domain/entities"
)

var ErrAccessDenied = errors.New("access denied")

// Policy holds the sectors whose members see every request.
type Policy struct {
	fullVisibility map[string]struct{}
}

// NewPolicy builds a Policy. An empty list falls back to the default sectors.
func NewPolicy(fullVisibilitySectors []string) Policy {
	if len(fullVisibilitySectors) == 0 {
		fullVisibilitySectors = entities.DefaultFullVisibilitySectors
	}
	set := make(map[string]struct{}, len(fullVisibilitySectors))
	for _, s := range fullVisibilitySectors {
		set[s] = struct{}{}
	}
	return Policy{fullVisibility: set}
}

// DefaultPolicy grants full visibility to Gerente and Diretor.
func DefaultPolicy() Policy {
	return NewPolicy(nil)
}

// SeesEverything reports whether the user bypasses sector filtering.
func (p Policy) SeesEverything(user entities.User) bool {
	if user.IsAdmin() {
		return true
	}
	_, ok := p.fullVisibility[user.Sector]
	return ok
}

// IsVisible reports whether the request is visible to the user.
func (p Policy) IsVisible(r entities.Request, user entities.User) bool {
	if p.SeesEverything(user) {
		return true
	}
	return r.Sector == user.Sector
}

// FilterVisible returns the requests visible to the user, preserving order.
func (p Policy) FilterVisible(requests []entities.Request, user entities.User) []entities.Request {
	if p.SeesEverything(user) {
		out := make([]entities.Request, len(requests))
		copy(out, requests)
		return out
	}
	out := make([]entities.Request, 0, len(requests))
	for _, r := range requests {
		if r.Sector == user.Sector {
			out = append(out, r)
		}
	}
	return out
}

// CanAccess guards direct access to a single request by identifier.
func (p Policy) CanAccess(r entities.Request, user entities.User) error {
	if !p.IsVisible(r, user) {
		return ErrAccessDenied
	}
	return nil
}
