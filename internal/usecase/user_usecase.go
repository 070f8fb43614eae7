package usecase

//go:generate mockgen -source=user_usecase.go -destination=../adapter/http/handlers/mocks/mock_user_usecase.go -package=mocks

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"gestao_compras/internal/domain/entities"
	"gestao_compras/internal/usecase/interfaces"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidUserName    = errors.New("invalid user name")
	ErrInvalidUserEmail   = errors.New("invalid user email")
	ErrInvalidUserRole    = errors.New("invalid user role")
	ErrPasswordTooShort   = errors.New("password must have at least 6 characters")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

const minPasswordLength = 6

// IUserUseCase manages dashboard operators. Returned users never carry a
// password.
type IUserUseCase interface {
	List(ctx context.Context) ([]entities.User, error)
	Get(ctx context.Context, id int64) (entities.User, error)
	Create(ctx context.Context, user entities.User) (entities.User, error)
	Update(ctx context.Context, id int64, user entities.User) (entities.User, error)
	Delete(ctx context.Context, id int64) error
	Authenticate(ctx context.Context, email, password string) (entities.User, error)
	SeedAdmin(ctx context.Context, name, email, password string) error
	Watch(ctx context.Context, notifier interfaces.IChangeNotifier) (func(), error)
}

type UserUseCase struct {
	users *collection[entities.User]
	cost  int
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(store interfaces.ITableStore) *UserUseCase {
	return &UserUseCase{
		users: newCollection(interfaces.TableUsers, store, func(u entities.User) any { return u.ID }),
		cost:  bcrypt.DefaultCost,
	}
}

func (u *UserUseCase) List(ctx context.Context) ([]entities.User, error) {
	all, err := u.users.All(ctx)
	if err != nil {
		return []entities.User{}, err
	}
	out := make([]entities.User, len(all))
	for i, usr := range all {
		out[i] = usr.Sanitized()
	}
	return out, nil
}

func (u *UserUseCase) Get(ctx context.Context, id int64) (entities.User, error) {
	usr, ok, err := u.users.Find(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if !ok {
		return entities.User{}, ErrUserNotFound
	}
	return usr.Sanitized(), nil
}

func (u *UserUseCase) Create(ctx context.Context, user entities.User) (entities.User, error) {
	user.Name = strings.TrimSpace(user.Name)
	user.Email = normalizeEmail(user.Email)
	user.Sector = strings.TrimSpace(user.Sector)
	if user.Role == "" {
		user.Role = entities.RoleUser
	}
	if err := validateUser(user); err != nil {
		return entities.User{}, err
	}
	if len(user.Password) < minPasswordLength {
		return entities.User{}, ErrPasswordTooShort
	}
	if err := u.ensureUniqueEmail(ctx, 0, user.Email); err != nil {
		return entities.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), u.cost)
	if err != nil {
		return entities.User{}, err
	}
	user.ID = nextID()
	user.Password = string(hash)
	if err := u.users.Insert(ctx, user); err != nil {
		return entities.User{}, err
	}
	return user.Sanitized(), nil
}

// Update changes a user. An empty password keeps the current one.
func (u *UserUseCase) Update(ctx context.Context, id int64, user entities.User) (entities.User, error) {
	existing, ok, err := u.users.Find(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if !ok {
		return entities.User{}, ErrUserNotFound
	}

	updated := existing
	if name := strings.TrimSpace(user.Name); name != "" {
		updated.Name = name
	}
	if email := normalizeEmail(user.Email); email != "" {
		updated.Email = email
	}
	if user.Role != "" {
		updated.Role = user.Role
	}
	if sector := strings.TrimSpace(user.Sector); sector != "" {
		updated.Sector = sector
	}
	if err := validateUser(updated); err != nil {
		return entities.User{}, err
	}
	if err := u.ensureUniqueEmail(ctx, id, updated.Email); err != nil {
		return entities.User{}, err
	}

	patch := entities.Row{
		"name":   updated.Name,
		"email":  updated.Email,
		"role":   string(updated.Role),
		"sector": updated.Sector,
	}
	if user.Password != "" {
		if len(user.Password) < minPasswordLength {
			return entities.User{}, ErrPasswordTooShort
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), u.cost)
		if err != nil {
			return entities.User{}, err
		}
		updated.Password = string(hash)
		patch["password"] = updated.Password
	}

	if err := u.users.Update(ctx, updated, patch); err != nil {
		return entities.User{}, err
	}
	return updated.Sanitized(), nil
}

func (u *UserUseCase) Delete(ctx context.Context, id int64) error {
	if _, ok, err := u.users.Find(ctx, id); err != nil {
		return err
	} else if !ok {
		return ErrUserNotFound
	}
	return u.users.Remove(ctx, id)
}

// Authenticate checks the credentials and returns the sanitized user.
func (u *UserUseCase) Authenticate(ctx context.Context, email, password string) (entities.User, error) {
	email = normalizeEmail(email)
	all, err := u.users.All(ctx)
	if err != nil {
		return entities.User{}, err
	}
	for _, usr := range all {
		if usr.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(password)) != nil {
			return entities.User{}, ErrInvalidCredentials
		}
		return usr.Sanitized(), nil
	}
	return entities.User{}, ErrInvalidCredentials
}

// SeedAdmin creates the first administrator when there is no user at all.
func (u *UserUseCase) SeedAdmin(ctx context.Context, name, email, password string) error {
	all, err := u.users.All(ctx)
	if err != nil {
		return err
	}
	if len(all) > 0 {
		return nil
	}
	admin, err := u.Create(ctx, entities.User{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     entities.RoleAdmin,
		Sector:   "Diretor",
	})
	if err != nil {
		return err
	}
	zap.L().Warn("[user][usecase] default admin created, change its password", zap.String("email", admin.Email))
	return nil
}

func (u *UserUseCase) Watch(ctx context.Context, notifier interfaces.IChangeNotifier) (func(), error) {
	return u.users.Watch(ctx, notifier)
}

func (u *UserUseCase) ensureUniqueEmail(ctx context.Context, id int64, email string) error {
	all, err := u.users.All(ctx)
	if err != nil {
		return err
	}
	for _, other := range all {
		if other.ID != id && other.Email == email {
			return ErrUserAlreadyExists
		}
	}
	return nil
}

func validateUser(user entities.User) error {
	if user.Name == "" {
		return ErrInvalidUserName
	}
	if _, err := mail.ParseAddress(user.Email); err != nil {
		return ErrInvalidUserEmail
	}
	if !user.Role.Valid() {
		return ErrInvalidUserRole
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
