package entity

import "github.com/google/uuid"

// Category groups products. Icon and Color drive storefront rendering.
type Category struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Icon  string    `json:"icon"`
	Color string    `json:"color"`
}
