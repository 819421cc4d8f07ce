package catalog

import "strings"

// Column aliases for catalog sheets. Sheets arrive from several spreadsheet
// templates, some with English headers and some with Arabic ones, so each
// logical column matches a set of known names.
var (
	nameAliases  = []string{"name", "product", "product name", "item", "الاسم", "اسم المنتج", "المنتج", "الصنف"}
	priceAliases = []string{"price", "unit price", "السعر", "سعر", "سعر الوحدة"}
	stockAliases = []string{"stock", "quantity", "qty", "المخزون", "الكمية"}
	descAliases  = []string{"description", "desc", "notes", "الوصف", "البيان"}
)

// colIndex maps logical column names to their index in the row.
type colIndex struct {
	name  int
	price int
	stock int
	desc  int
}

// detectHeader scans rows for the first one carrying at least the name and
// price columns. Returns the column index map and the header row index.
// Sheets often carry preamble rows (title, export date) before the header.
func detectHeader(rows [][]string) (colIndex, int, bool) {
	for rowIdx, row := range rows {
		cols := colIndex{name: -1, price: -1, stock: -1, desc: -1}

		for i, cell := range row {
			header := strings.ToLower(strings.TrimSpace(cell))
			if header == "" {
				continue
			}

			switch {
			case matchesAlias(header, nameAliases):
				cols.name = i
			case matchesAlias(header, priceAliases):
				cols.price = i
			case matchesAlias(header, stockAliases):
				cols.stock = i
			case matchesAlias(header, descAliases):
				cols.desc = i
			}
		}

		if cols.name >= 0 && cols.price >= 0 {
			return cols, rowIdx, true
		}
	}

	return colIndex{}, 0, false
}

func matchesAlias(header string, aliases []string) bool {
	for _, a := range aliases {
		if header == a {
			return true
		}
	}

	return false
}
