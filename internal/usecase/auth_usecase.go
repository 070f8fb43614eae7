package usecase

//go:generate mockgen -source=auth_usecase.go -destination=../adapter/http/handlers/mocks/mock_auth_usecase.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gestao_compras/internal/domain/entities"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the JWT payload issued at login.
type Claims struct {
	UserID int64         `json:"uid"`
	Name   string        `json:"name"`
	Email  string        `json:"email"`
	Role   entities.Role `json:"role"`
	Sector string        `json:"sector"`
	jwt.RegisteredClaims
}

// User rebuilds the acting user carried by the token.
func (c *Claims) User() entities.User {
	return entities.User{ID: c.UserID, Name: c.Name, Email: c.Email, Role: c.Role, Sector: c.Sector}
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expires_at"`
	User      entities.User `json:"user"`
}

type IAuthUseCase interface {
	Login(ctx context.Context, email, password string) (LoginResult, error)
	ParseToken(token string) (*Claims, error)
	ResolveToken(ctx context.Context, token string) (entities.User, error)
}

type AuthUseCase struct {
	users  IUserUseCase
	secret []byte
	expire time.Duration
	issuer string
	now    func() time.Time
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users IUserUseCase, secret string, expire time.Duration, issuer string) *AuthUseCase {
	if expire <= 0 {
		expire = 24 * time.Hour
	}
	return &AuthUseCase{users: users, secret: []byte(secret), expire: expire, issuer: issuer, now: time.Now}
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (LoginResult, error) {
	user, err := u.users.Authenticate(ctx, email, password)
	if err != nil {
		return LoginResult{}, err
	}

	now := u.now()
	expiresAt := now.Add(u.expire)
	claims := &Claims{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
		Sector: user.Sector,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			Issuer:    u.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.secret)
	if err != nil {
		return LoginResult{}, fmt.Errorf("sign token: %w", err)
	}
	return LoginResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

func (u *AuthUseCase) ParseToken(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return u.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ResolveToken validates token and returns the stored account it was issued
// for. Role and sector come from the store, so changes apply before the
// token expires. A deleted account yields ErrInvalidToken.
func (u *AuthUseCase) ResolveToken(ctx context.Context, token string) (entities.User, error) {
	claims, err := u.ParseToken(token)
	if err != nil {
		return entities.User{}, err
	}
	user, err := u.users.Get(ctx, claims.UserID)
	if errors.Is(err, ErrUserNotFound) {
		return entities.User{}, fmt.Errorf("%w: account %d no longer exists", ErrInvalidToken, claims.UserID)
	}
	if err != nil {
		return entities.User{}, err
	}
	return user, nil
}
