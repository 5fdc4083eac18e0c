package office

import (
	"context"
	"strings"
)

type CreateRequest struct {
	Name     string
	City     string
	TimeZone int
}

type UpdateRequest struct {
	Name     *string
	City     *string
	TimeZone *int
	IsActive *bool
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Office, error)
	GetByID(ctx context.Context, id string) (*Office, error)
	List(ctx context.Context, filter Filter) ([]*Office, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Office, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Office, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}

	o := &Office{
		Name:     req.Name,
		City:     req.City,
		TimeZone: req.TimeZone,
		IsActive: true,
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Office, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Office, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Office, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrEmptyName
		}
		o.Name = *req.Name
	}
	if req.City != nil {
		o.City = *req.City
	}
	if req.TimeZone != nil {
		o.TimeZone = *req.TimeZone
	}
	if req.IsActive != nil {
		o.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
