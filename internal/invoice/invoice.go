package invoice

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tajerhq/tajer/internal/money"
)

// Status represents the derived payment state of an invoice. It is always
// computed from (TotalPrice, TotalPaid) and never set directly.
type Status string

const (
	StatusUnPaid      Status = "UnPaid"
	StatusPartialPaid Status = "PartialPaid"
	StatusPaid        Status = "Paid"
)

var (
	ErrNotFound = errors.New("invoice not found")

	ErrNoGoods           = errors.New("invoice requires at least one goods line")
	ErrNegativePrice     = errors.New("price cannot be negative")
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
	ErrNegativeTotalPaid = errors.New("total paid cannot be negative")
	ErrMissingName       = errors.New("goods name must be provided")
)

// Goods is one line of an invoice. Name and Price are snapshots taken from the
// product at invoice-creation time; later product changes never touch them.
type Goods struct {
	Name      string
	Price     money.Cents
	Quantity  int64
	ProductID uuid.UUID
}

// LineTotal returns price * quantity for the line.
func (g Goods) LineTotal() money.Cents {
	return g.Price.Mul(g.Quantity)
}

// Invoice represents a sale to a client.
type Invoice struct {
	ID         uuid.UUID
	ClientID   uuid.UUID
	Goods      []Goods
	TotalPrice money.Cents
	TotalPaid  money.Cents
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  *time.Time
	DeletedAt  *time.Time
}

// Total sums the line totals of all goods. An empty list yields zero; whether
// an empty list is acceptable is decided by ValidateGoods at the boundary.
func Total(goods []Goods) money.Cents {
	var total money.Cents
	for _, g := range goods {
		total += g.LineTotal()
	}

	return total
}

// DeriveStatus classifies the payment state from the two totals.
// Overpayment clamps to Paid. Pure and total over non-negative inputs;
// negative inputs are rejected by validation before ever reaching here.
func DeriveStatus(totalPrice, totalPaid money.Cents) Status {
	switch {
	case totalPaid <= 0:
		return StatusUnPaid
	case totalPaid < totalPrice:
		return StatusPartialPaid
	default:
		return StatusPaid
	}
}

// ValidateGoods rejects invalid goods lists before any total is computed.
// The same malformed input always produces the same error.
func ValidateGoods(goods []Goods) error {
	if len(goods) == 0 {
		return ErrNoGoods
	}

	for i, g := range goods {
		if g.Name == "" {
			return fmt.Errorf("goods line %d: %w", i, ErrMissingName)
		}

		if g.Price < 0 {
			return fmt.Errorf("goods line %d: %w", i, ErrNegativePrice)
		}

		if g.Quantity < 1 {
			return fmt.Errorf("goods line %d: %w", i, ErrInvalidQuantity)
		}
	}

	return nil
}

// ValidateTotalPaid rejects negative payment amounts.
func ValidateTotalPaid(totalPaid money.Cents) error {
	if totalPaid < 0 {
		return ErrNegativeTotalPaid
	}

	return nil
}
