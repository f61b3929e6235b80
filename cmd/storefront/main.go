package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"eshop/internal/catalog"
	"eshop/internal/storefront"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Supported subcommands:
// - categories: list categories with their icon and color
// - browse:     list products, optionally of one category
// - search:     list products matching a text query
// - show:       one product with up to four related in-stock products

const (
	relatedLimit = 4

	sourceBundled = "bundled"
	sourceAPI     = "api"
)

type sourceFlags struct {
	source  *string
	url     *string
	apiRoot *string
	verbose *bool
}

func addSourceFlags(cmd *flag.FlagSet) sourceFlags {
	return sourceFlags{
		source:  cmd.String("source", sourceBundled, "Product list to use: bundled or api"),
		url:     cmd.String("url", envOr("ESHOP_API_URL", "http://localhost:3000"), "Backend base URL for -source api"),
		apiRoot: cmd.String("root", envOr("API_ROOT", "/api/v1"), "API root path for -source api"),
		verbose: cmd.Bool("v", false, "Log backend requests"),
	}
}

func main() {
	_ = godotenv.Load()

	categoriesCmd := flag.NewFlagSet("categories", flag.ExitOnError)
	categoriesSrc := addSourceFlags(categoriesCmd)

	browseCmd := flag.NewFlagSet("browse", flag.ExitOnError)
	browseSrc := addSourceFlags(browseCmd)
	browseCategory := browseCmd.String("category", "", "Category id to browse (default: every product)")

	searchCmd := flag.NewFlagSet("search", flag.ExitOnError)
	searchSrc := addSourceFlags(searchCmd)
	searchQuery := searchCmd.String("query", "", "Text matched against name, description and brand")

	showCmd := flag.NewFlagSet("show", flag.ExitOnError)
	showSrc := addSourceFlags(showCmd)
	showID := showCmd.String("id", "", "Product id to show (required)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch os.Args[1] {
	case "categories":
		if err = categoriesCmd.Parse(os.Args[2:]); err == nil {
			err = runCategories(ctx, newLoader(categoriesSrc))
		}
	case "browse":
		if err = browseCmd.Parse(os.Args[2:]); err == nil {
			err = runBrowse(ctx, newLoader(browseSrc), catalog.ID(*browseCategory))
		}
	case "search":
		if err = searchCmd.Parse(os.Args[2:]); err == nil {
			err = runSearch(ctx, newLoader(searchSrc), *searchQuery)
		}
	case "show":
		if err = showCmd.Parse(os.Args[2:]); err == nil {
			err = runShow(ctx, newLoader(showSrc), catalog.ID(*showID))
		}
	default:
		printUsage()
		err = errors.New("unknown subcommand")
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loader reads the catalog from the embedded data or a running backend.
type loader struct {
	source string
	client *storefront.Client
}

func newLoader(flags sourceFlags) *loader {
	level := slog.LevelWarn
	if *flags.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	return &loader{
		source: *flags.source,
		client: storefront.NewClient(*flags.url, *flags.apiRoot, logger),
	}
}

func (l *loader) products(ctx context.Context) ([]catalog.Product, error) {
	switch l.source {
	case sourceBundled:
		return catalog.BundledProducts()
	case sourceAPI:
		return l.client.Products(ctx)
	default:
		return nil, errors.Errorf("unknown source %q", l.source)
	}
}

func (l *loader) categories(ctx context.Context) ([]catalog.Category, error) {
	switch l.source {
	case sourceBundled:
		return catalog.BundledCategories()
	case sourceAPI:
		return l.client.Categories(ctx)
	default:
		return nil, errors.Errorf("unknown source %q", l.source)
	}
}

func runCategories(ctx context.Context, l *loader) error {
	categories, err := l.categories(ctx)
	if err != nil {
		return err
	}

	return storefront.RenderCategories(os.Stdout, categories)
}

func runBrowse(ctx context.Context, l *loader, categoryID catalog.ID) error {
	products, err := l.products(ctx)
	if err != nil {
		return err
	}

	n, err := storefront.RenderProducts(os.Stdout, catalog.ByCategory(products, categoryID))
	if err != nil {
		return err
	}
	if n == 0 {
		fmt.Println("No products in this category.")
	}

	return nil
}

func runSearch(ctx context.Context, l *loader, query string) error {
	products, err := l.products(ctx)
	if err != nil {
		return err
	}

	n, err := storefront.RenderProducts(os.Stdout, catalog.Search(products, query))
	if err != nil {
		return err
	}
	if n == 0 {
		fmt.Printf("No products match %q.\n", query)
	}

	return nil
}

func runShow(ctx context.Context, l *loader, id catalog.ID) error {
	if id == "" {
		return errors.New("-id is required")
	}

	products, err := l.products(ctx)
	if err != nil {
		return err
	}

	product, ok := catalog.Find(products, id)
	if !ok {
		return errors.Errorf("product %s not found", id)
	}
	if err := storefront.RenderProduct(os.Stdout, product); err != nil {
		return err
	}

	fmt.Println("")
	fmt.Println("You may also like:")
	n, err := storefront.RenderProducts(os.Stdout, catalog.Related(products, product, relatedLimit))
	if err != nil {
		return err
	}
	if n == 0 {
		fmt.Println("Nothing else in this category.")
	}

	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func printUsage() {
	fmt.Println("Usage: storefront <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  categories  List categories")
	fmt.Println("  browse      List products, optionally filtered by -category")
	fmt.Println("  search      List products matching -query")
	fmt.Println("  show        Show product -id and related products")
	fmt.Println("")
	fmt.Println("Use 'storefront <command> -h' for more information about a command.")
}
