package response

import (
	"encoding/json"
	"strings"
	"testing"

	"gestao_compras/internal/domain/entities"
)

func TestNewList_NeverNull(t *testing.T) {
	b, _ := json.Marshal(NewList[entities.Status](nil))
	if string(b) != `{"data":[]}` {
		t.Fatalf("unexpected body %s", b)
	}
}

func TestFromUser_NoPassword(t *testing.T) {
	b, _ := json.Marshal(FromUser(entities.User{ID: 1, Email: "a@b.com", Password: "hash", Role: entities.RoleAdmin}))
	if strings.Contains(string(b), "hash") || !strings.Contains(string(b), `"role":"admin"`) {
		t.Fatalf("unexpected body %s", b)
	}
}
