package entity

import (
	"encoding/json"

	"github.com/google/uuid"
)

// ref stands in for an expansion whose target row is gone (a deleted
// category, user or product), so the response still carries the stored id.
type ref struct {
	ID uuid.UUID `json:"id"`
}

// expansion picks the expanded value when loaded, the bare id when only the
// reference is known, and nil otherwise.
func expansion[T any](expanded *T, id uuid.UUID) any {
	switch {
	case expanded != nil:
		return expanded
	case id != uuid.Nil:
		return ref{ID: id}
	default:
		return nil
	}
}

func (p Product) MarshalJSON() ([]byte, error) {
	type plain Product

	return json.Marshal(struct {
		plain
		Category any `json:"category,omitempty"`
	}{plain: plain(p), Category: expansion(p.Category, p.CategoryID)})
}

func (o Order) MarshalJSON() ([]byte, error) {
	type plain Order

	return json.Marshal(struct {
		plain
		User any `json:"user,omitempty"`
	}{plain: plain(o), User: expansion(o.User, o.UserID)})
}

func (i OrderItem) MarshalJSON() ([]byte, error) {
	type plain OrderItem

	return json.Marshal(struct {
		plain
		Product any `json:"product,omitempty"`
	}{plain: plain(i), Product: expansion(i.Product, i.ProductID)})
}
