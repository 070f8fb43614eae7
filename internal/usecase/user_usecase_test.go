package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"gestao_compras/internal/domain/entities"
	"gestao_compras/internal/usecase/interfaces"

	"golang.org/x/crypto/bcrypt"
)

func newUserUseCase(store interfaces.ITableStore) *UserUseCase {
	uc := NewUserUseCase(store)
	uc.cost = bcrypt.MinCost
	return uc
}

func TestUserUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("hashes password and sanitizes output", func(t *testing.T) {
		store := newTestStore()
		uc := newUserUseCase(store)
		u, err := uc.Create(ctx, entities.User{Name: "Ana", Email: " Ana@Empresa.com ", Password: "segredo1", Sector: "Compras"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u.Password != "" || u.Email != "ana@empresa.com" || u.Role != entities.RoleUser {
			t.Fatalf("unexpected user: %+v", u)
		}

		rows, _ := store.Select(ctx, interfaces.TableUsers, nil)
		hash, _ := rows[0]["password"].(string)
		if hash == "segredo1" || bcrypt.CompareHashAndPassword([]byte(hash), []byte("segredo1")) != nil {
			t.Fatalf("password must be stored as bcrypt hash")
		}

		list, _ := uc.List(ctx)
		if len(list) != 1 || list[0].Password != "" {
			t.Fatalf("list must be sanitized: %+v", list)
		}
	})

	t.Run("validation", func(t *testing.T) {
		uc := newUserUseCase(newTestStore())
		cases := []struct {
			name string
			user entities.User
			want error
		}{
			{"name", entities.User{Email: "a@b.com", Password: "123456"}, ErrInvalidUserName},
			{"email", entities.User{Name: "A", Email: "nope", Password: "123456"}, ErrInvalidUserEmail},
			{"role", entities.User{Name: "A", Email: "a@b.com", Password: "123456", Role: "root"}, ErrInvalidUserRole},
			{"password", entities.User{Name: "A", Email: "a@b.com", Password: "123"}, ErrPasswordTooShort},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				if _, err := uc.Create(ctx, tc.user); !errors.Is(err, tc.want) {
					t.Fatalf("expected %v, got %v", tc.want, err)
				}
			})
		}
	})

	t.Run("unique email", func(t *testing.T) {
		uc := newUserUseCase(newTestStore())
		if _, err := uc.Create(ctx, entities.User{Name: "A", Email: "a@b.com", Password: "123456"}); err != nil {
			t.Fatalf("create: %v", err)
		}
		if _, err := uc.Create(ctx, entities.User{Name: "B", Email: "A@B.com", Password: "123456"}); !errors.Is(err, ErrUserAlreadyExists) {
			t.Fatalf("expected ErrUserAlreadyExists, got %v", err)
		}
	})
}

func TestUserUseCase_UpdateAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	uc := newUserUseCase(newTestStore())
	u, _ := uc.Create(ctx, entities.User{Name: "Ana", Email: "ana@empresa.com", Password: "segredo1"})

	if _, err := uc.Authenticate(ctx, "ANA@empresa.com", "segredo1"); err != nil {
		t.Fatalf("expected valid credentials, got %v", err)
	}
	if _, err := uc.Authenticate(ctx, "ana@empresa.com", "errada"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := uc.Authenticate(ctx, "ghost@empresa.com", "segredo1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	updated, err := uc.Update(ctx, u.ID, entities.User{Sector: "Gerente", Password: "novaSenha"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Sector != "Gerente" || updated.Name != "Ana" || updated.Password != "" {
		t.Fatalf("unexpected update: %+v", updated)
	}
	if _, err := uc.Authenticate(ctx, "ana@empresa.com", "novaSenha"); err != nil {
		t.Fatalf("new password must work, got %v", err)
	}

	if _, err := uc.Update(ctx, 1, entities.User{Name: "X"}); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if err := uc.Delete(ctx, u.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := uc.Get(ctx, u.ID); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserUseCase_SeedAdmin(t *testing.T) {
	ctx := context.Background()
	uc := newUserUseCase(newTestStore())

	if err := uc.SeedAdmin(ctx, "Administrador", "admin@empresa.com", "admin123"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := uc.SeedAdmin(ctx, "Outro", "outro@empresa.com", "admin123"); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	users, _ := uc.List(ctx)
	if len(users) != 1 || !users[0].IsAdmin() {
		t.Fatalf("expected a single admin, got %+v", users)
	}
}

func TestAuthUseCase(t *testing.T) {
	ctx := context.Background()
	users := newUserUseCase(newTestStore())
	if _, err := users.Create(ctx, entities.User{Name: "Ana", Email: "ana@empresa.com", Password: "segredo1", Sector: "Compras"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	t.Run("login issues a token carrying role and sector", func(t *testing.T) {
		auth := NewAuthUseCase(users, "secret", time.Hour, "gestao-compras")
		res, err := auth.Login(ctx, "ana@empresa.com", "segredo1")
		if err != nil {
			t.Fatalf("login: %v", err)
		}
		claims, err := auth.ParseToken(res.Token)
		if err != nil {
			t.Fatalf("parse: %v", err)
		}
		actor := claims.User()
		if actor.Email != "ana@empresa.com" || actor.Sector != "Compras" || actor.Role != entities.RoleUser {
			t.Fatalf("unexpected claims: %+v", actor)
		}
	})

	t.Run("bad credentials", func(t *testing.T) {
		auth := NewAuthUseCase(users, "secret", time.Hour, "")
		if _, err := auth.Login(ctx, "ana@empresa.com", "x"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("foreign or expired tokens are rejected", func(t *testing.T) {
		issuer := NewAuthUseCase(users, "other-secret", time.Hour, "")
		res, _ := issuer.Login(ctx, "ana@empresa.com", "segredo1")
		auth := NewAuthUseCase(users, "secret", time.Hour, "")
		if _, err := auth.ParseToken(res.Token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}

		auth.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		old, _ := auth.Login(ctx, "ana@empresa.com", "segredo1")
		if _, err := auth.ParseToken(old.Token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
		}
	})

	t.Run("token follows the stored account", func(t *testing.T) {
		store := newTestStore()
		accounts := newUserUseCase(store)
		rui, err := accounts.Create(ctx, entities.User{Name: "Rui", Email: "rui@empresa.com", Password: "segredo1", Role: entities.RoleAdmin, Sector: "Diretor"})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		auth := NewAuthUseCase(accounts, "secret", time.Hour, "")
		res, _ := auth.Login(ctx, "rui@empresa.com", "segredo1")

		if _, err := accounts.Update(ctx, rui.ID, entities.User{Role: entities.RoleUser, Sector: "Compras"}); err != nil {
			t.Fatalf("update: %v", err)
		}
		actor, err := auth.ResolveToken(ctx, res.Token)
		if err != nil {
			t.Fatalf("resolve: %v", err)
		}
		if actor.IsAdmin() || actor.Sector != "Compras" || actor.Password != "" {
			t.Fatalf("expected the demoted account, got %+v", actor)
		}

		if err := accounts.Delete(ctx, rui.ID); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if _, err := auth.ResolveToken(ctx, res.Token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken for a deleted account, got %v", err)
		}
	})
}
