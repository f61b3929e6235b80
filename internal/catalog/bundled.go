package catalog

import (
	"embed"
	"encoding/json"

	"github.com/pkg/errors"
)

//go:embed data/products.json data/categories.json
var bundled embed.FS

// BundledProducts returns the product list shipped with the binary.
func BundledProducts() ([]Product, error) {
	var products []Product
	if err := decodeBundled("data/products.json", &products); err != nil {
		return nil, err
	}

	return products, nil
}

// BundledCategories returns the shipped categories, styled.
func BundledCategories() ([]Category, error) {
	var categories []Category
	if err := decodeBundled("data/categories.json", &categories); err != nil {
		return nil, err
	}

	return Styled(categories), nil
}

func decodeBundled(name string, v any) error {
	raw, err := bundled.ReadFile(name)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", name)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return errors.Wrapf(err, "failed to decode %s", name)
	}

	return nil
}
