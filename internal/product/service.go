package product

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/tajerhq/tajer/internal/money"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=product
type Repository interface {
	CreateProduct(ctx context.Context, p *Product) error
	GetProduct(ctx context.Context, id uuid.UUID) (*Product, error)
	UpdateProduct(ctx context.Context, p *Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	ListProducts(ctx context.Context) ([]*Product, error)
	CountProducts(ctx context.Context) (int64, error)

	BeginImport(ctx context.Context, names []string) (ImportTx, error)
}

// ImportTx is a database transaction scoped to one catalog import. The store
// takes an advisory lock over the imported name set so two concurrent imports
// of the same sheet cannot race each other past duplicate detection.
type ImportTx interface {
	FindExisting(ctx context.Context, names []string) ([]*Product, error)
	CreateProducts(ctx context.Context, products []*Product) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name        string
	Description string
	Price       money.Cents
	Stock       int64
}

type UpdateParams struct {
	Name        *string
	Description *string
	Price       *money.Cents
	Stock       *int64
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Product, error) {
	if err := Validate(params.Name, params.Price, params.Stock); err != nil {
		return nil, err
	}

	p := &Product{
		Name:        params.Name,
		Description: params.Description,
		Price:       params.Price,
		Stock:       params.Stock,
	}

	if err := s.repo.CreateProduct(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Product, error) {
	p, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		p.Name = *params.Name
	}

	if params.Description != nil {
		p.Description = *params.Description
	}

	if params.Price != nil {
		p.Price = *params.Price
	}

	if params.Stock != nil {
		p.Stock = *params.Stock
	}

	if err := Validate(p.Name, p.Price, p.Stock); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateProduct(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Product, error) {
	return s.repo.GetProduct(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Product, error) {
	return s.repo.ListProducts(ctx)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteProduct(ctx, id)
}

type ImportResult struct {
	Imported  []*Product
	New       []CreateParams
	Conflicts []Conflict
}

type Conflict struct {
	Incoming CreateParams
	Existing *Product
}

// ImportBatch imports a parsed catalog sheet. Rows whose name matches an
// existing product (case-insensitive) are reported as conflicts and nothing is
// written; the caller reviews them and confirms the remainder via CreateBatch.
func (s *Service) ImportBatch(ctx context.Context, params []CreateParams) (*ImportResult, error) {
	if len(params) == 0 {
		return &ImportResult{}, nil
	}

	for _, p := range params {
		if err := Validate(p.Name, p.Price, p.Stock); err != nil {
			return nil, err
		}
	}

	names := paramNames(params)

	itx, err := s.repo.BeginImport(ctx, names)
	if err != nil {
		return nil, fmt.Errorf("begin import: %w", err)
	}
	defer itx.Rollback()

	existing, err := itx.FindExisting(ctx, names)
	if err != nil {
		return nil, fmt.Errorf("find existing products: %w", err)
	}

	lookup := make(map[string]*Product, len(existing))
	for _, p := range existing {
		lookup[strings.ToLower(p.Name)] = p
	}

	var newParams []CreateParams

	var conflicts []Conflict

	for _, p := range params {
		if found, ok := lookup[strings.ToLower(p.Name)]; ok {
			conflicts = append(conflicts, Conflict{Incoming: p, Existing: found})
			continue
		}

		newParams = append(newParams, p)
	}

	if len(conflicts) > 0 {
		return &ImportResult{New: newParams, Conflicts: conflicts}, nil
	}

	products := paramsToProducts(newParams)
	if err := itx.CreateProducts(ctx, products); err != nil {
		return nil, fmt.Errorf("create products: %w", err)
	}

	if err := itx.Commit(); err != nil {
		return nil, fmt.Errorf("commit import: %w", err)
	}

	return &ImportResult{Imported: products}, nil
}

// CreateBatch writes the given rows without duplicate detection. Used by the
// confirm step after a conflicting import was reviewed.
func (s *Service) CreateBatch(ctx context.Context, params []CreateParams) ([]*Product, error) {
	if len(params) == 0 {
		return nil, nil
	}

	for _, p := range params {
		if err := Validate(p.Name, p.Price, p.Stock); err != nil {
			return nil, err
		}
	}

	itx, err := s.repo.BeginImport(ctx, paramNames(params))
	if err != nil {
		return nil, fmt.Errorf("begin import: %w", err)
	}
	defer itx.Rollback()

	products := paramsToProducts(params)
	if err := itx.CreateProducts(ctx, products); err != nil {
		return nil, fmt.Errorf("create products: %w", err)
	}

	if err := itx.Commit(); err != nil {
		return nil, fmt.Errorf("commit import: %w", err)
	}

	return products, nil
}

func paramNames(params []CreateParams) []string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}

	return names
}

func paramsToProducts(params []CreateParams) []*Product {
	products := make([]*Product, len(params))
	for i, p := range params {
		products[i] = &Product{
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Stock:       p.Stock,
		}
	}

	return products
}
