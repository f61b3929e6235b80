package storefront

import (
	"fmt"
	"io"
	"iter"
	"text/tabwriter"

	"eshop/internal/catalog"
	"eshop/internal/util"

	"github.com/pkg/errors"
)

const descriptionWidth = 40

// RenderProducts writes one row per product and returns how many were written.
func RenderProducts(w io.Writer, products iter.Seq[catalog.Product]) (int, error) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tBRAND\tPRICE\tSTOCK\tDESCRIPTION")

	var n int
	for p := range products {
		featured := ""
		if p.IsFeatured {
			featured = " *"
		}
		fmt.Fprintf(tw, "%s%s\t%s\t%s\t%d\t%s\n",
			p.Name, featured, p.Brand, p.Price.StringFixed(2), p.CountInStock,
			util.Truncate(p.Description, descriptionWidth))
		n++
	}

	if err := tw.Flush(); err != nil {
		return n, errors.WithStack(err)
	}

	return n, nil
}

// RenderCategories writes one row per category with its icon and color.
func RenderCategories(w io.Writer, categories []catalog.Category) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tICON\tCOLOR")
	for _, c := range categories {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Icon, c.Color)
	}

	return errors.WithStack(tw.Flush())
}

// RenderProduct writes the detail view of one product.
func RenderProduct(w io.Writer, p catalog.Product) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Name:\t%s\n", p.Name)
	fmt.Fprintf(tw, "Brand:\t%s\n", p.Brand)
	fmt.Fprintf(tw, "Price:\t$%s\n", p.Price.StringFixed(2))
	if p.CountInStock > 0 {
		fmt.Fprintf(tw, "Stock:\t%d available\n", p.CountInStock)
	} else {
		fmt.Fprintln(tw, "Stock:\tout of stock")
	}
	if p.NumReviews > 0 {
		fmt.Fprintf(tw, "Rating:\t%.1f (%d reviews)\n", p.Rating, p.NumReviews)
	}
	fmt.Fprintf(tw, "Category:\t%s\n", p.Category)
	if p.Description != "" {
		fmt.Fprintf(tw, "Description:\t%s\n", p.Description)
	}
	if p.RichDescription != "" {
		fmt.Fprintf(tw, "Details:\t%s\n", p.RichDescription)
	}

	return errors.WithStack(tw.Flush())
}
