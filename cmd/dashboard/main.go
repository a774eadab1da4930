package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/angelmondragon/wishlist-backend/internal/dashboard"
	"github.com/angelmondragon/wishlist-backend/internal/wishlist"
	"github.com/angelmondragon/wishlist-backend/pkg/config"
	"github.com/angelmondragon/wishlist-backend/pkg/db"
	"github.com/angelmondragon/wishlist-backend/pkg/logger"
	"github.com/angelmondragon/wishlist-backend/pkg/migrate"
)

var (
	statePath string

	listCategory string
	listSearch   string
	listSort     string
	listView     string

	clearCategory bool
)

var rootCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Browse and organize the shopping wishlist",
	Long: `Dashboard reads the wishlist database directly and renders it in the terminal.

The last category, search, sort and layout chosen with "list" are remembered in
the state file and reused on the next run.

Examples:
  dashboard list --category Electronics --sort price_low_high
  dashboard list --view table
  dashboard categories
  dashboard set-category 3 "Home & Furniture"`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show items for the current view",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := dashboard.LoadState(statePath)
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		if flags.Changed("category") {
			state.Category = listCategory
		}
		if flags.Changed("search") {
			state.Search = listSearch
		}
		if flags.Changed("sort") {
			state.Sort = wishlist.SortKey(listSort)
		}
		if flags.Changed("view") {
			state.ViewMode = wishlist.ViewMode(listView)
		}

		return withDashboard(cmd.Context(), func(ctx context.Context, d *dashboard.Dashboard) error {
			shown, err := d.List(ctx, state)
			if err != nil {
				return err
			}
			return dashboard.SaveState(statePath, shown)
		})
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Show item counts per category",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDashboard(cmd.Context(), func(ctx context.Context, d *dashboard.Dashboard) error {
			return d.Categories(ctx)
		})
	},
}

var setCategoryCmd = &cobra.Command{
	Use:   "set-category ID [CATEGORY]",
	Short: "Change the category of one item",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid item id %q", args[0])
		}

		var category *string
		switch {
		case clearCategory:
		case len(args) == 2:
			category = &args[1]
		default:
			return fmt.Errorf("CATEGORY is required unless --clear is set")
		}

		return withDashboard(cmd.Context(), func(ctx context.Context, d *dashboard.Dashboard) error {
			return d.SetCategory(ctx, id, category)
		})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&statePath, "state", dashboard.DefaultStateFile, "File that remembers the last view")

	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "Category to show (All for everything)")
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Case-insensitive title filter")
	listCmd.Flags().StringVar(&listSort, "sort", "", "timestamp|price_low_high|price_high_low|priority")
	listCmd.Flags().StringVar(&listView, "view", "", "grid|table")

	setCategoryCmd.Flags().BoolVar(&clearCategory, "clear", false, "Remove the category instead of setting one")

	rootCmd.AddCommand(listCmd, categoriesCmd, setCategoryCmd)
}

// withDashboard opens the configured database for the duration of fn.
func withDashboard(ctx context.Context, fn func(context.Context, *dashboard.Dashboard) error) (err error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logg := logger.FromApp("dashboard", cfg.App, os.Stderr, nil)

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, dbClient.Close())
	}()

	if err := migrate.MaybeRun(ctx, cfg, logg, dbClient); err != nil {
		return err
	}

	svc, err := wishlist.NewService(wishlist.ServiceParams{
		Store:           wishlist.NewRepository(dbClient.DB()),
		KnownCategories: cfg.Wishlist.KnownCategories,
	})
	if err != nil {
		return err
	}

	return fn(ctx, dashboard.New(svc, os.Stdout))
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
