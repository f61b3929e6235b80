package catalog

import (
	"iter"
	"strings"
)

// ByCategory yields the products whose category is categoryID, in list
// order. An empty categoryID yields every product.
func ByCategory(products []Product, categoryID ID) iter.Seq[Product] {
	return func(yield func(Product) bool) {
		for _, p := range products {
			if categoryID != "" && p.Category != categoryID {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}

// Search yields the products whose name, description or brand contains
// query, ignoring case. The query is matched as typed, surrounding spaces
// included. A blank query yields nothing.
func Search(products []Product, query string) iter.Seq[Product] {
	needle := strings.ToLower(query)

	return func(yield func(Product) bool) {
		if strings.TrimSpace(query) == "" {
			return
		}
		for _, p := range products {
			if !matches(p, needle) {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}

func matches(p Product, needle string) bool {
	for _, field := range [...]string{p.Name, p.Description, p.Brand} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}

	return false
}

// Find returns the product with the given id.
func Find(products []Product, id ID) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}

	return Product{}, false
}

// Related yields up to limit in-stock products sharing p's category, other
// than p itself, in list order. A limit of zero or less yields nothing.
func Related(products []Product, p Product, limit int) iter.Seq[Product] {
	return func(yield func(Product) bool) {
		if limit <= 0 {
			return
		}
		var n int
		for _, other := range products {
			if other.ID == p.ID || other.Category != p.Category || other.CountInStock <= 0 {
				continue
			}
			if !yield(other) {
				return
			}
			if n++; n == limit {
				return
			}
		}
	}
}
