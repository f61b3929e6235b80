package catalog

import (
	"encoding/json"
	"iter"
	"slices"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(seq iter.Seq[Product]) []string {
	var out []string
	for p := range seq {
		out = append(out, p.Name)
	}

	return out
}

var testProducts = []Product{
	{ID: "p1", Name: "Ruby Pendant", Description: "Red stone", Brand: "Golden Burma", Category: "pendants"},
	{ID: "p2", Name: "Rope Chain", Description: "22k gold", Brand: "Golden Burma", Category: "chains"},
	{ID: "p3", Name: "Signet", Description: "Engravable RING", Brand: "Yangon Silverworks", Category: "rings"},
	{ID: "p4", Name: "Box Chain", Description: "Silver", Brand: "Yangon Silverworks", Category: "chains"},
}

func TestID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want ID
	}{
		{name: "plain string", raw: `"abc123"`, want: "abc123"},
		{name: "object id", raw: `{"$oid":"abc123"}`, want: "abc123"},
		{name: "null", raw: `null`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id ID
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &id))
			assert.Equal(t, tt.want, id)
		})
	}

	var id ID
	assert.Error(t, json.Unmarshal([]byte(`42`), &id))
}

func TestProduct_DecodesMixedIdentifiers(t *testing.T) {
	raw := `{"_id":{"$oid":"p1"},"name":"Ring","price":19.5,"category":"c1"}`

	var p Product
	require.NoError(t, json.Unmarshal([]byte(raw), &p))

	assert.Equal(t, ID("p1"), p.ID)
	assert.Equal(t, ID("c1"), p.Category)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("19.5")))
}

func TestByCategory(t *testing.T) {
	assert.Equal(t, []string{"Rope Chain", "Box Chain"}, names(ByCategory(testProducts, "chains")))
	assert.Len(t, names(ByCategory(testProducts, "")), len(testProducts))
	assert.Empty(t, names(ByCategory(testProducts, "bracelets")))
}

func TestByCategory_StopsEarly(t *testing.T) {
	var seen int
	for range ByCategory(testProducts, "") {
		seen++
		if seen == 2 {
			break
		}
	}

	assert.Equal(t, 2, seen)
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "name", query: "chain", want: []string{"Rope Chain", "Box Chain"}},
		{name: "description ignores case", query: "ring", want: []string{"Signet"}},
		{name: "brand", query: "golden burma", want: []string{"Ruby Pendant", "Rope Chain"}},
		{name: "trailing space is part of the query", query: "silver ", want: nil},
		{name: "leading space is part of the query", query: " chain", want: []string{"Rope Chain", "Box Chain"}},
		{name: "inner space", query: "ruby ", want: []string{"Ruby Pendant"}},
		{name: "no match", query: "emerald", want: nil},
		{name: "blank", query: "   ", want: nil},
		{name: "empty", query: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(Search(testProducts, tt.query)))
		})
	}
}

func TestFind(t *testing.T) {
	p, ok := Find(testProducts, "p3")
	require.True(t, ok)
	assert.Equal(t, "Signet", p.Name)

	_, ok = Find(testProducts, "missing")
	assert.False(t, ok)
}

func TestRelated(t *testing.T) {
	shelf := []Product{
		{ID: "a", Name: "Rope", Category: "chains", CountInStock: 3},
		{ID: "b", Name: "Box", Category: "chains", CountInStock: 0},
		{ID: "c", Name: "Curb", Category: "chains", CountInStock: 1},
		{ID: "d", Name: "Signet", Category: "rings", CountInStock: 9},
		{ID: "e", Name: "Figaro", Category: "chains", CountInStock: 2},
		{ID: "f", Name: "Snake", Category: "chains", CountInStock: 4},
		{ID: "g", Name: "Wheat", Category: "chains", CountInStock: 5},
		{ID: "h", Name: "Lone", Category: "bracelets", CountInStock: 5},
	}

	tests := []struct {
		name  string
		id    ID
		limit int
		want  []string
	}{
		{name: "same category in stock, first four", id: "a", limit: 4, want: []string{"Curb", "Figaro", "Snake", "Wheat"}},
		{name: "excludes itself", id: "c", limit: 2, want: []string{"Rope", "Figaro"}},
		{name: "out of stock product still gets related", id: "b", limit: 1, want: []string{"Rope"}},
		{name: "nothing else in category", id: "h", limit: 4, want: nil},
		{name: "zero limit", id: "a", limit: 0, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := Find(shelf, tt.id)
			require.True(t, ok)
			assert.Equal(t, tt.want, names(Related(shelf, p, tt.limit)))
		})
	}
}

func TestLookup(t *testing.T) {
	assert.Equal(t, Style{Icon: "link-outline", Color: "#2E7D32"}, Lookup("Chains"))
	assert.Equal(t, Style{Icon: "radio-button-on-outline", Color: "#E8B4B8"}, Lookup(" rings "))
	assert.Equal(t, Style{Icon: DefaultIcon, Color: DefaultColor}, Lookup("Earrings"))
}

func TestBundled(t *testing.T) {
	products, err := BundledProducts()
	require.NoError(t, err)
	categories, err := BundledCategories()
	require.NoError(t, err)

	require.NotEmpty(t, products)
	require.Len(t, categories, 4)

	known := make(map[ID]bool, len(categories))
	for _, c := range categories {
		assert.NotEmpty(t, c.ID)
		assert.Equal(t, Lookup(c.Name), Style{Icon: c.Icon, Color: c.Color})
		known[c.ID] = true
	}
	for _, p := range products {
		assert.NotEmpty(t, p.ID, p.Name)
		assert.True(t, known[p.Category], "%s has unknown category %s", p.Name, p.Category)
	}

	var total int
	for _, c := range categories {
		total += len(slices.Collect(ByCategory(products, c.ID)))
	}
	assert.Equal(t, len(products), total)
}
