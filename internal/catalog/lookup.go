package catalog

import "strings"

const (
	DefaultIcon  = "diamond-outline"
	DefaultColor = "#C9A961"
)

// Style is how a category is drawn in the storefront.
type Style struct {
	Icon  string
	Color string
}

var styles = map[string]Style{
	"pendants":  {Icon: "diamond-outline", Color: "#C9A961"},
	"chains":    {Icon: "link-outline", Color: "#2E7D32"},
	"rings":     {Icon: "radio-button-on-outline", Color: "#E8B4B8"},
	"bracelets": {Icon: "ellipse-outline", Color: "#4A90E2"},
}

// Lookup returns the style for a category name, case-insensitively.
func Lookup(name string) Style {
	if s, ok := styles[strings.ToLower(strings.TrimSpace(name))]; ok {
		return s
	}

	return Style{Icon: DefaultIcon, Color: DefaultColor}
}

// Styled returns a copy of categories with Icon and Color taken from Lookup.
func Styled(categories []Category) []Category {
	out := make([]Category, len(categories))
	for i, c := range categories {
		s := Lookup(c.Name)
		c.Icon, c.Color = s.Icon, s.Color
		out[i] = c
	}

	return out
}
