package product

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tajerhq/tajer/internal/money"
)

var (
	ErrNotFound = errors.New("product not found")

	ErrMissingName   = errors.New("product name must be provided")
	ErrNegativePrice = errors.New("price cannot be negative")
	ErrNegativeStock = errors.New("stock cannot be negative")
)

// Product is a catalog item. Invoices snapshot its name and price at creation
// time, so editing or deleting a product never rewrites past invoices.
type Product struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       money.Cents
	Stock       int64
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	DeletedAt   *time.Time
}

// Validate rejects invalid product fields at the boundary.
func Validate(name string, price money.Cents, stock int64) error {
	if name == "" {
		return ErrMissingName
	}

	if price < 0 {
		return fmt.Errorf("product %q: %w", name, ErrNegativePrice)
	}

	if stock < 0 {
		return fmt.Errorf("product %q: %w", name, ErrNegativeStock)
	}

	return nil
}
