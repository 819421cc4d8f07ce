package client

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=client
type Repository interface {
	CreateClient(ctx context.Context, c *Client) error
	GetClient(ctx context.Context, id uuid.UUID) (*Client, error)
	UpdateClient(ctx context.Context, c *Client) error
	SetStatus(ctx context.Context, id uuid.UUID, status Status) error
	DeleteClient(ctx context.Context, id uuid.UUID) error
	ListClients(ctx context.Context, filter ListFilter) ([]*Client, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Username    string
	Email       string
	Phone       string
	CompanyName string
	City        string
	Address     string
}

type UpdateParams struct {
	Username    *string
	Email       *string
	Phone       *string
	CompanyName *string
	City        *string
	Address     *string
}

type ListFilter struct {
	Status *Status
}

// Create registers a new client. New clients start Active with no invoices,
// so all derived financial fields are zero.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Client, error) {
	c := &Client{
		Username:    params.Username,
		Email:       params.Email,
		Phone:       params.Phone,
		CompanyName: params.CompanyName,
		City:        params.City,
		Address:     params.Address,
		Status:      StatusActive,
	}

	if err := s.repo.CreateClient(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Client, error) {
	c, err := s.repo.GetClient(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Username != nil {
		c.Username = *params.Username
	}

	if params.Email != nil {
		c.Email = *params.Email
	}

	if params.Phone != nil {
		c.Phone = *params.Phone
	}

	if params.CompanyName != nil {
		c.CompanyName = *params.CompanyName
	}

	if params.City != nil {
		c.City = *params.City
	}

	if params.Address != nil {
		c.Address = *params.Address
	}

	if err := s.repo.UpdateClient(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

// SetStatus transitions a client between Active and Inactive.
func (s *Service) SetStatus(ctx context.Context, id uuid.UUID, status Status) error {
	if !ValidStatus(status) {
		return ErrInvalidStatus
	}

	return s.repo.SetStatus(ctx, id, status)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Client, error) {
	return s.repo.GetClient(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Client, error) {
	return s.repo.ListClients(ctx, filter)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteClient(ctx, id)
}
