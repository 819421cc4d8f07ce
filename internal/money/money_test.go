package money_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tajerhq/tajer/internal/money"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    money.Cents
		wantErr bool
	}{
		{in: "36.50", want: 3650},
		{in: "19.99", want: 1999},
		{in: "12", want: 1200},
		{in: "0", want: 0},
		{in: "0.005", want: 1}, // half-up at the boundary
		{in: "-5.25", want: -525},
		{in: "abc", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := money.ParseAmount(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCents_String(t *testing.T) {
	assert.Equal(t, "36.50", money.Cents(3650).String())
	assert.Equal(t, "0.00", money.Cents(0).String())
	assert.Equal(t, "59.97", money.Cents(1999).Mul(3).String())
	assert.Equal(t, "-5.25", money.Cents(-525).String())
}

func TestCents_Mul(t *testing.T) {
	// price=19.99, quantity=3 must be exactly 59.97 with no drift.
	assert.Equal(t, money.Cents(5997), money.Cents(1999).Mul(3))
	assert.Equal(t, money.Cents(0), money.Cents(1999).Mul(0))
}
