package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"moviezone/internal/catalog"
	"moviezone/internal/domain"
	"moviezone/internal/filter"
	"moviezone/internal/ui/services/overlay"
)

// countConcurrency bounds the listing fetches of categories --count
const countConcurrency = 4

var (
	filterExpr string
	withCounts bool
)

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search the catalog and print matching movies",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

var browseCmd = &cobra.Command{
	Use:   "browse [category]",
	Short: "Print the listing of a category",
	Long: `Print the listing of a category. The category may be given as a key
("sci-fi") or a label ("Sci-Fi"); without one the configured default is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBrowse,
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print the details of one movie",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the categories",
	Args:  cobra.NoArgs,
	RunE:  runCategories,
}

func init() {
	searchCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression, e.g. 'rating >= 7'")
	browseCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression, e.g. 'rating >= 7'")
	categoriesCmd.Flags().BoolVar(&withCounts, "count", false, "fetch every listing and show how many movies it has")
}

func runSearch(cmd *cobra.Command, args []string) error {
	term := strings.Join(args, " ")

	f, err := compileFilter(filterExpr)
	if err != nil {
		return err
	}

	client, err := newCatalog(logger)
	if err != nil {
		return err
	}

	logger.Debug().Str("term", term).Msg("Searching movies")
	results, err := client.Search(cmd.Context(), term)
	if err != nil {
		return fmt.Errorf("search %q: %w", term, err)
	}

	newPrinter(os.Stdout, isTerminal(os.Stdout)).results(f.Apply(results), images())
	return nil
}

func runBrowse(cmd *cobra.Command, args []string) error {
	name := cfg.UI.DefaultCategory
	if len(args) > 0 {
		name = args[0]
	}
	cat, err := domain.ResolveCategory(name)
	if err != nil {
		return fmt.Errorf("category %q: %w", name, err)
	}

	f, err := compileFilter(filterExpr)
	if err != nil {
		return err
	}

	client, err := newCatalog(logger)
	if err != nil {
		return err
	}

	logger.Debug().Str("category", cat.Key).Msg("Fetching listing")
	results, err := client.List(cmd.Context(), cat.Key)
	if err != nil {
		return fmt.Errorf("browse %s: %w", cat.Label, err)
	}

	newPrinter(os.Stdout, isTerminal(os.Stdout)).results(f.Apply(results), images())
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		return fmt.Errorf("invalid movie id %q", args[0])
	}

	client, err := newCatalog(logger)
	if err != nil {
		return err
	}

	detail, err := client.Detail(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("show %d: %w", id, err)
	}

	newPrinter(os.Stdout, isTerminal(os.Stdout)).detail(detail, images().DetailPosterURL(detail), overlay.PlayableVideos(detail.Videos))
	return nil
}

func runCategories(cmd *cobra.Command, args []string) error {
	cats := domain.Categories()
	p := newPrinter(os.Stdout, isTerminal(os.Stdout))

	if !withCounts {
		rows := make([]categoryCount, 0, len(cats))
		for _, c := range cats {
			rows = append(rows, categoryCount{Category: c, Count: -1})
		}
		p.categories(rows, false)
		return nil
	}

	client, err := newCatalog(logger)
	if err != nil {
		return err
	}
	rows, err := countListings(cmd.Context(), client, cats, logger)
	if err != nil {
		return err
	}
	p.categories(rows, true)
	return nil
}

// categoryCount is one row of the categories output. Count is -1 when unknown.
type categoryCount struct {
	Category domain.Category
	Count    int
}

// countListings fetches every category listing concurrently. A failing
// listing is logged and reported as unknown rather than failing the rest.
func countListings(ctx context.Context, cat catalog.Catalog, cats []domain.Category, log zerolog.Logger) ([]categoryCount, error) {
	rows := make([]categoryCount, len(cats))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(countConcurrency)

	for i, c := range cats {
		g.Go(func() error {
			rows[i] = categoryCount{Category: c, Count: -1}

			items, err := cat.List(ctx, c.Key)
			if err != nil {
				log.Warn().
					Err(err).
					Str("category", c.Key).
					Msg("Failed to fetch listing")
				return nil
			}
			rows[i].Count = len(items)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

// compileFilter returns nil for an empty expression, which matches everything
func compileFilter(expression string) (*filter.Filter, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, nil
	}
	f, err := filter.Compile(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}
	return f, nil
}
