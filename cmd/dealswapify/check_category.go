package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"dealswapify/internal/models"
	"dealswapify/internal/services"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	checkTitle       string
	checkDescription string
	checkCategory    string
	checkTimeout     time.Duration
)

var checkCategoryCmd = &cobra.Command{
	Use:   "check-category",
	Short: "Check listing text against a category",
	Long: `Run the keyword category check against the configured database, the
same way the API does before a listing is stored.

Examples:
  # Check by category name
  dealswapify check-category --title "Used iPhone 12" --category Furniture

  # Check by category ID with a description
  dealswapify check-category --title "Oak desk" --description "solid wood" \
    --category 6f1c2a0e-8d4b-4e5e-9c1a-0b7f3f9a2d11`,
	RunE: runCheckCategory,
}

func init() {
	checkCategoryCmd.Flags().StringVar(&checkTitle, "title", "", "listing title (required)")
	checkCategoryCmd.Flags().StringVar(&checkDescription, "description", "", "listing description")
	checkCategoryCmd.Flags().StringVar(&checkCategory, "category", "", "selected category ID or name (required)")
	checkCategoryCmd.Flags().DurationVar(&checkTimeout, "timeout", 10*time.Second, "overall time limit")

	_ = checkCategoryCmd.MarkFlagRequired("title")
	_ = checkCategoryCmd.MarkFlagRequired("category")
}

func runCheckCategory(cmd *cobra.Command, args []string) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	a, err := newApp(cfg, logger, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.db.Close(); err != nil {
			logger.Warn(ctx, "failed to close database", zap.Error(err))
		}
	}()

	categoryID, err := resolveCategoryArg(ctx, a.lookup, checkCategory)
	if err != nil {
		return err
	}

	result := a.matcher.Validate(ctx, checkTitle, checkDescription, categoryID)
	printMatchResult(cmd.OutOrStdout(), result)
	return nil
}

// resolveCategoryArg accepts either a category UUID or a category name
func resolveCategoryArg(ctx context.Context, lookup services.CategoryLookup, arg string) (uuid.UUID, error) {
	if id, err := uuid.Parse(arg); err == nil {
		return id, nil
	}

	id, err := lookup.ResolveIDByName(ctx, arg)
	if err != nil {
		return uuid.Nil, fmt.Errorf("unknown category %q: %w", arg, err)
	}
	return id, nil
}

func printMatchResult(w io.Writer, result models.MatchResult) {
	fmt.Fprintf(w, "outcome: %s\n", result.Outcome)
	if result.HasSuggestion() {
		fmt.Fprintf(w, "suggested category: %s (%s)\n", result.SuggestedCategoryName, result.SuggestedCategoryID)
	}
}
