package importer

import (
	"io"

	"github.com/tajerhq/tajer/internal/product"
)

type Format string

const (
	FormatCatalog Format = "catalog"
)

type Parser interface {
	Parse(r io.Reader) ([]product.CreateParams, error)
}
