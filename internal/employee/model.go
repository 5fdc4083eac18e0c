package employee

import (
	"net/http"
	"strings"
	"time"

	"github.com/maenko-m/meeting-management-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "employee not found")
	ErrEmailAlreadyUsed   = apperror.New(http.StatusConflict, "email already used")
	ErrInvalidCredentials = apperror.New(http.StatusUnauthorized, "invalid email or password")
	ErrInactiveEmployee   = apperror.New(http.StatusForbidden, "employee is inactive")
	ErrEmailRequired      = apperror.New(http.StatusBadRequest, "email is required")
	ErrPasswordTooShort   = apperror.New(http.StatusBadRequest, "password is too short")
)

// Employee is a registered user of the booking system.
type Employee struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Surname      string
	Patronymic   string
	IsModerator  bool
	IsActive     bool
	CreatedAt    time.Time
	LastLoginAt  *time.Time
}

// FullName joins the name parts the way the event cards display them.
func (e *Employee) FullName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{e.Surname, e.Name, e.Patronymic} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// Filter defines filter options for listing employees.
type Filter struct {
	Email    string
	Name     string
	IsActive *bool
	Page     int
	Limit    int
}
