package invoice

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tajerhq/tajer/internal/money"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=invoice
type Repository interface {
	CreateInvoice(ctx context.Context, inv *Invoice) error
	GetInvoice(ctx context.Context, id uuid.UUID) (*Invoice, error)
	UpdateInvoice(ctx context.Context, inv *Invoice) error
	DeleteInvoice(ctx context.Context, id uuid.UUID) error
	ListInvoices(ctx context.Context, filter ListFilter) ([]*Invoice, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	ClientID  uuid.UUID
	Goods     []Goods
	TotalPaid money.Cents
}

// UpdateParams carries the mutable parts of an invoice. Nil fields are left
// unchanged. There is deliberately no status field: status is recomputed from
// the totals on every change.
type UpdateParams struct {
	Goods     []Goods
	TotalPaid *money.Cents
}

type ListFilter struct {
	ClientID  *uuid.UUID
	Status    *Status
	StartDate *time.Time
	EndDate   *time.Time
}

// Create validates the goods list and payment, computes the invoice total and
// derives the payment status before persisting.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Invoice, error) {
	if err := ValidateGoods(params.Goods); err != nil {
		return nil, err
	}

	if err := ValidateTotalPaid(params.TotalPaid); err != nil {
		return nil, err
	}

	totalPrice := Total(params.Goods)

	inv := &Invoice{
		ClientID:   params.ClientID,
		Goods:      params.Goods,
		TotalPrice: totalPrice,
		TotalPaid:  params.TotalPaid,
		Status:     DeriveStatus(totalPrice, params.TotalPaid),
	}

	if err := s.repo.CreateInvoice(ctx, inv); err != nil {
		return nil, err
	}

	return inv, nil
}

// Update applies the given changes and recomputes TotalPrice and Status.
func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Invoice, error) {
	inv, err := s.repo.GetInvoice(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Goods != nil {
		if err := ValidateGoods(params.Goods); err != nil {
			return nil, err
		}

		inv.Goods = params.Goods
	}

	if params.TotalPaid != nil {
		if err := ValidateTotalPaid(*params.TotalPaid); err != nil {
			return nil, err
		}

		inv.TotalPaid = *params.TotalPaid
	}

	inv.TotalPrice = Total(inv.Goods)
	inv.Status = DeriveStatus(inv.TotalPrice, inv.TotalPaid)

	if err := s.repo.UpdateInvoice(ctx, inv); err != nil {
		return nil, err
	}

	return inv, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Invoice, error) {
	return s.repo.GetInvoice(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Invoice, error) {
	return s.repo.ListInvoices(ctx, filter)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteInvoice(ctx, id)
}
