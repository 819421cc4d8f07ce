package catalog

import (
	"strings"

	"github.com/tajerhq/tajer/internal/money"
)

// parsePrice parses a price cell into cents. Handles both "1234.56" and the
// European-style "1.234,56" that Excel emits under some locale settings.
func parsePrice(s string) (money.Cents, error) {
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}

	return money.ParseAmount(s)
}
