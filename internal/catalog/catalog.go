// Package catalog holds the storefront's local view of the product list:
// decoding of bundled or fetched records, category styling and the lazy
// filters behind the browse and search screens.
package catalog

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ID is a record identifier. Bundled exports carry it either as a plain
// string or as {"$oid": "..."}.
type ID string

// UnmarshalJSON accepts both identifier shapes and null.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""

		return nil
	}

	if len(data) > 0 && data[0] == '{' {
		var wrapped struct {
			OID string `json:"$oid"`
		}
		if err := json.Unmarshal(data, &wrapped); err != nil {
			return errors.Wrap(err, "invalid object id")
		}
		*id = ID(wrapped.OID)

		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Wrap(err, "invalid id")
	}
	*id = ID(s)

	return nil
}

// Category is a browsable product group.
type Category struct {
	ID    ID     `json:"_id"`
	Name  string `json:"name"`
	Icon  string `json:"icon,omitempty"`
	Color string `json:"color,omitempty"`
}

// Product is a catalog entry as the storefront sees it. Category is the
// category identifier only.
type Product struct {
	ID              ID              `json:"_id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	RichDescription string          `json:"richDescription"`
	Brand           string          `json:"brand"`
	Image           string          `json:"image"`
	Price           decimal.Decimal `json:"price"`
	Category        ID              `json:"category"`
	CountInStock    int             `json:"countInStock"`
	Rating          float64         `json:"rating"`
	NumReviews      int             `json:"numReviews"`
	IsFeatured      bool            `json:"isFeatured"`
}
