package encoding_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tajerhq/tajer/internal/encoding"
)

func TestNewUTF8Reader_UTF8Passthrough(t *testing.T) {
	// Valid UTF-8 with Arabic characters should pass through unchanged.
	input := "الاسم,السعر,المخزون\nقهوة,12.50,40\nشاي,8.00,25\n"
	r, err := encoding.NewUTF8Reader(bytes.NewReader([]byte(input)))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, input, string(got))
}

func TestNewUTF8Reader_Windows1256(t *testing.T) {
	// Windows-1256 encoded "الاسم,السعر\nقهوة,12.50\nشاي,8.00\nسكر,3.75\n".
	input := []byte{
		// الاسم,السعر
		0xC7, 0xE1, 0xC7, 0xD3, 0xE3, ',', 0xC7, 0xE1, 0xD3, 0xDA, 0xD1, '\n',
		// قهوة,12.50
		0xDE, 0xE5, 0xE6, 0xC9, ',', '1', '2', '.', '5', '0', '\n',
		// شاي,8.00
		0xD4, 0xC7, 0xED, ',', '8', '.', '0', '0', '\n',
		// سكر,3.75
		0xD3, 0xDF, 0xD1, ',', '3', '.', '7', '5', '\n',
	}

	r, err := encoding.NewUTF8Reader(bytes.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "الاسم,السعر\nقهوة,12.50\nشاي,8.00\nسكر,3.75\n", string(got))
}

func TestNewUTF8Reader_UTF8BOM(t *testing.T) {
	// UTF-8 BOM (0xEF 0xBB 0xBF) should be stripped.
	bom := []byte{0xEF, 0xBB, 0xBF}
	content := []byte("الاسم,السعر\n")
	input := append(bom, content...)

	r, err := encoding.NewUTF8Reader(bytes.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "الاسم,السعر\n", string(got))
}

func TestNewUTF8Reader_UTF16LE(t *testing.T) {
	// UTF-16 LE with BOM, ASCII-only content.
	input := []byte{0xFF, 0xFE}
	for _, c := range []byte("name,price\n") {
		input = append(input, c, 0x00)
	}

	r, err := encoding.NewUTF8Reader(bytes.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "name,price\n", string(got))
}
