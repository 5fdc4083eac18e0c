package employee

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/maenko-m/meeting-management-backend/internal/auth"
)

const minPasswordLength = 8

// Service defines business operations for employees.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Employee, error)
	GetByID(ctx context.Context, id string) (*Employee, error)
	List(ctx context.Context, filter Filter) ([]*Employee, int, error)
	Authenticate(ctx context.Context, email, password string) (*Employee, error)
}

// CreateRequest carries the fields needed to register an employee.
type CreateRequest struct {
	Email       string
	Password    string
	Name        string
	Surname     string
	Patronymic  string
	IsModerator bool
}

type service struct {
	repo   Repository
	hasher auth.PasswordHasher
}

func NewService(repo Repository, hasher auth.PasswordHasher) Service {
	return &service{repo: repo, hasher: hasher}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Employee, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, ErrEmailRequired
	}
	if len(req.Password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	e := &Employee{
		Email:        email,
		PasswordHash: hash,
		Name:         strings.TrimSpace(req.Name),
		Surname:      strings.TrimSpace(req.Surname),
		Patronymic:   strings.TrimSpace(req.Patronymic),
		IsModerator:  req.IsModerator,
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Employee, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Employee, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Authenticate(ctx context.Context, email, password string) (*Employee, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	e, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.hasher.Compare(e.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !e.IsActive {
		return nil, ErrInactiveEmployee
	}

	now := time.Now().UTC()
	if err := s.repo.UpdateLastLogin(ctx, e.ID, now); err == nil {
		e.LastLoginAt = &now
	}

	return e, nil
}
