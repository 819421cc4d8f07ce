package catalog

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	enc "github.com/tajerhq/tajer/internal/encoding"
	"github.com/tajerhq/tajer/internal/product"
)

// Parser reads product catalog sheets exported as CSV and produces product
// params. It locates the header row by matching column names against known
// aliases, so preamble rows and trailing footers are tolerated.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]product.CreateParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	data, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("read sheet: %w", err)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = sniffDelimiter(data)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	cols, headerIdx, ok := detectHeader(rows)
	if !ok {
		return nil, fmt.Errorf("no catalog header found: expected name and price columns")
	}

	return parseRows(cols, rows[headerIdx+1:]), nil
}

// sniffDelimiter picks the column separator from the first non-empty line.
// Excel exports use ';' under locales where ',' is the decimal separator.
func sniffDelimiter(data []byte) rune {
	for _, line := range bytes.Split(data, []byte("\n")) {
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}

		if bytes.Count(line, []byte(";")) > bytes.Count(line, []byte(",")) {
			return ';'
		}

		return ','
	}

	return ','
}

// parseRows extracts product params from data rows. Rows without a name or
// with an unparseable price are skipped rather than failing the whole sheet;
// those are almost always footers or blank padding rows.
func parseRows(cols colIndex, rows [][]string) []product.CreateParams {
	var params []product.CreateParams

	for _, row := range rows {
		name := cellValue(row, cols.name)
		if name == "" {
			continue
		}

		price, err := parsePrice(cellValue(row, cols.price))
		if err != nil {
			continue
		}

		params = append(params, product.CreateParams{
			Name:        name,
			Description: cellValue(row, cols.desc),
			Price:       price,
			Stock:       parseStock(cellValue(row, cols.stock)),
		})
	}

	return params
}

// parseStock parses a stock cell, defaulting to zero when the column is
// missing, empty, or not a number.
func parseStock(s string) int64 {
	if s == "" {
		return 0
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}

	return n
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
