package response

import (
	"time"

	"gestao_compras/internal/domain/dashboard"
	"gestao_compras/internal/domain/entities"
	"gestao_compras/internal/domain/performance"
	"gestao_compras/internal/usecase"
)

// Warning tells the client that data could not be read and is shown empty.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ListResponse wraps every collection response.
type ListResponse[T any] struct {
	Data    []T      `json:"data"`
	Warning *Warning `json:"warning,omitempty"`
}

func NewList[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Data: items}
}

// SummaryResponse is the dashboard summary plus a warning when part of the
// data could not be read.
type SummaryResponse struct {
	dashboard.Summary
	Warning *Warning `json:"warning,omitempty"`
}

type PerformanceResponse struct {
	performance.Evaluation
	Warning *Warning `json:"warning,omitempty"`
}

type UserResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Sector string `json:"sector"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: string(u.Role), Sector: u.Sector}
}

func FromUsers(users []entities.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, FromUser(u))
	}
	return out
}

type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

func FromLogin(r usecase.LoginResult) LoginResponse {
	return LoginResponse{Token: r.Token, ExpiresAt: r.ExpiresAt, User: FromUser(r.User)}
}

type ExportResponse struct {
	FileName string `json:"file_name"`
	Rows     int    `json:"rows"`
	URL      string `json:"url"`
}

func FromExport(r usecase.ExportResult) ExportResponse {
	return ExportResponse{FileName: r.FileName, Rows: r.Rows, URL: r.URL}
}
