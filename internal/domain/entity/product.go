package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog entry. CategoryID is the stored reference; Category is
// filled in on reads that expand it.
type Product struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	RichDescription string          `json:"richDescription"`
	Image           string          `json:"image"`
	Images          []string        `json:"images"`
	Brand           string          `json:"brand"`
	Price           decimal.Decimal `json:"price"`
	CategoryID      uuid.UUID       `json:"-"`
	Category        *Category       `json:"category,omitempty"`
	CountInStock    int             `json:"countInStock"`
	Rating          float64         `json:"rating"`
	NumReviews      int             `json:"numReviews"`
	IsFeatured      bool            `json:"isFeatured"`
	DateCreated     time.Time       `json:"dateCreated"`
}

// ProductFilter narrows product listings.
type ProductFilter struct {
	CategoryIDs []uuid.UUID
}
