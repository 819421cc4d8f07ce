package invoice_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/tajerhq/tajer/internal/invoice"
	"github.com/tajerhq/tajer/internal/money"
)

func TestTotal(t *testing.T) {
	tests := []struct {
		name  string
		goods []invoice.Goods
		want  money.Cents
	}{
		{
			name:  "empty list is zero",
			goods: nil,
			want:  0,
		},
		{
			name: "sums price times quantity",
			goods: []invoice.Goods{
				{Name: "Sugar", Price: 1000, Quantity: 2},
				{Name: "Tea", Price: 550, Quantity: 3},
			},
			want: 3650, // 36.50
		},
		{
			name: "no drift on repeating decimals",
			goods: []invoice.Goods{
				{Name: "Oil", Price: 1999, Quantity: 3},
			},
			want: 5997, // exactly 59.97
		},
		{
			name: "zero-priced line contributes nothing",
			goods: []invoice.Goods{
				{Name: "Sample", Price: 0, Quantity: 5},
				{Name: "Rice", Price: 2500, Quantity: 1},
			},
			want: 2500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, invoice.Total(tt.goods))
			// Pure function: same input, same output.
			assert.Equal(t, tt.want, invoice.Total(tt.goods))
		})
	}
}

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name       string
		totalPrice money.Cents
		totalPaid  money.Cents
		want       invoice.Status
	}{
		{name: "nothing paid", totalPrice: 10000, totalPaid: 0, want: invoice.StatusUnPaid},
		{name: "one cent paid", totalPrice: 10000, totalPaid: 1, want: invoice.StatusPartialPaid},
		{name: "one cent short", totalPrice: 10000, totalPaid: 9999, want: invoice.StatusPartialPaid},
		{name: "exactly paid", totalPrice: 10000, totalPaid: 10000, want: invoice.StatusPaid},
		{name: "overpaid clamps to paid", totalPrice: 10000, totalPaid: 15000, want: invoice.StatusPaid},
		{name: "free invoice with no payment", totalPrice: 0, totalPaid: 0, want: invoice.StatusUnPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := invoice.DeriveStatus(tt.totalPrice, tt.totalPaid)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, invoice.DeriveStatus(tt.totalPrice, tt.totalPaid))
		})
	}
}

func TestValidateGoods(t *testing.T) {
	productID := uuid.New()

	tests := []struct {
		name    string
		goods   []invoice.Goods
		wantErr error
	}{
		{
			name:    "empty list rejected",
			goods:   nil,
			wantErr: invoice.ErrNoGoods,
		},
		{
			name: "zero quantity rejected",
			goods: []invoice.Goods{
				{Name: "Sugar", Price: 1000, Quantity: 0, ProductID: productID},
			},
			wantErr: invoice.ErrInvalidQuantity,
		},
		{
			name: "negative price rejected",
			goods: []invoice.Goods{
				{Name: "Sugar", Price: -100, Quantity: 1, ProductID: productID},
			},
			wantErr: invoice.ErrNegativePrice,
		},
		{
			name: "missing name rejected",
			goods: []invoice.Goods{
				{Price: 1000, Quantity: 1, ProductID: productID},
			},
			wantErr: invoice.ErrMissingName,
		},
		{
			name: "later bad line still caught",
			goods: []invoice.Goods{
				{Name: "Sugar", Price: 1000, Quantity: 2, ProductID: productID},
				{Name: "Tea", Price: 550, Quantity: -3, ProductID: productID},
			},
			wantErr: invoice.ErrInvalidQuantity,
		},
		{
			name: "valid lines pass",
			goods: []invoice.Goods{
				{Name: "Sugar", Price: 1000, Quantity: 2, ProductID: productID},
				{Name: "Tea", Price: 0, Quantity: 1, ProductID: productID},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := invoice.ValidateGoods(tt.goods)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				// Determinism: validating again yields the same error.
				assert.Equal(t, err, invoice.ValidateGoods(tt.goods))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestValidateTotalPaid(t *testing.T) {
	assert.NoError(t, invoice.ValidateTotalPaid(0))
	assert.NoError(t, invoice.ValidateTotalPaid(100))
	assert.ErrorIs(t, invoice.ValidateTotalPaid(-1), invoice.ErrNegativeTotalPaid)
}
