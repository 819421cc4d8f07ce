package catalog_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tajerhq/tajer/internal/importer/catalog"
	"github.com/tajerhq/tajer/internal/money"
)

func TestParse(t *testing.T) {
	input := strings.Join([]string{
		"name,price,stock,description",
		"Coffee Beans 1kg,320.00,40,Arabica dark roast",
		"Tea Box,85.50,120,",
		"Sugar 5kg,110,15,Bulk bag",
	}, "\n")

	p := catalog.NewParser()

	got, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "Coffee Beans 1kg", got[0].Name)
	assert.Equal(t, money.Cents(32000), got[0].Price)
	assert.Equal(t, int64(40), got[0].Stock)
	assert.Equal(t, "Arabica dark roast", got[0].Description)

	assert.Equal(t, "Tea Box", got[1].Name)
	assert.Equal(t, money.Cents(8550), got[1].Price)
	assert.Empty(t, got[1].Description)

	// Whole-unit price still lands in cents.
	assert.Equal(t, money.Cents(11000), got[2].Price)
}

func TestParse_PreambleAndFooter(t *testing.T) {
	input := strings.Join([]string{
		"Tajer catalog export",
		"Generated 2024-03-01",
		"",
		"name,price,stock",
		"Coffee Beans 1kg,320.00,40",
		"",
		"End of export,,",
	}, "\n")

	p := catalog.NewParser()

	got, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)

	// The footer has a name-like cell but no parseable price, so it is
	// dropped along with the blank padding rows.
	require.Len(t, got, 1)
	assert.Equal(t, "Coffee Beans 1kg", got[0].Name)
}

func TestParse_SkipsBadRows(t *testing.T) {
	input := strings.Join([]string{
		"name,price,stock",
		"Coffee Beans 1kg,320.00,40",
		",99.00,5",
		"Mystery Item,not-a-price,5",
		"Tea Box,85.50,120",
	}, "\n")

	p := catalog.NewParser()

	got, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Coffee Beans 1kg", got[0].Name)
	assert.Equal(t, "Tea Box", got[1].Name)
}

func TestParse_SemicolonDelimiter(t *testing.T) {
	// Excel under comma-decimal locales exports with ';' columns and
	// "1.234,56" amounts.
	input := strings.Join([]string{
		"name;price;stock",
		"Coffee Beans 1kg;1.320,50;40",
	}, "\n")

	p := catalog.NewParser()

	got, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, money.Cents(132050), got[0].Price)
}

func TestParse_ArabicHeaders(t *testing.T) {
	input := strings.Join([]string{
		"الاسم,السعر,المخزون,الوصف",
		"قهوة,320.00,40,محمصة داكنة",
		"شاي,85.50,120,",
	}, "\n")

	p := catalog.NewParser()

	got, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "قهوة", got[0].Name)
	assert.Equal(t, money.Cents(32000), got[0].Price)
	assert.Equal(t, int64(40), got[0].Stock)
	assert.Equal(t, "محمصة داكنة", got[0].Description)
}

func TestParse_StockDefaultsToZero(t *testing.T) {
	input := strings.Join([]string{
		"name,price",
		"Coffee Beans 1kg,320.00",
	}, "\n")

	p := catalog.NewParser()

	got, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Zero(t, got[0].Stock)
}

func TestParse_NoHeader(t *testing.T) {
	p := catalog.NewParser()

	_, err := p.Parse(strings.NewReader("just,some,cells\n1,2,3\n"))
	assert.ErrorContains(t, err, "no catalog header")
}
