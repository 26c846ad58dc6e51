package services

import (
	"context"
	"strings"

	"dealswapify/internal/logging"
	"dealswapify/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type categoryMatcher struct {
	table  *models.CategoryKeywordTable
	lookup CategoryLookup
	logger *logging.Logger
}

// NewCategoryMatcher creates a matcher over an immutable keyword table.
// The matcher holds no mutable state and is safe for concurrent use.
func NewCategoryMatcher(table *models.CategoryKeywordTable, lookup CategoryLookup, logger *logging.Logger) CategoryMatcherInterface {
	return &categoryMatcher{
		table:  table,
		lookup: lookup,
		logger: logger.Named("category_matcher"),
	}
}

// Validate checks the listing text against the keywords of the selected
// category. If none of them occur, the table entry with the most keyword
// hits (first entry on ties) is suggested instead. Matching is plain
// substring search on the lower-cased text: "bike" matches "motorbike".
func (m *categoryMatcher) Validate(ctx context.Context, title, description string, selectedCategoryID uuid.UUID) models.MatchResult {
	selectedName, err := m.lookup.ResolveNameByID(ctx, selectedCategoryID)
	if err != nil {
		m.logger.Warn(ctx, "could not resolve selected category",
			zap.String("category_id", selectedCategoryID.String()),
			zap.Error(err),
		)
		return models.IndeterminateMatch()
	}

	text := strings.ToLower(title + " " + description)

	if selectedName == models.CategoryOthers || containsAny(text, m.table.Keywords(selectedName)) {
		return models.ValidMatch()
	}

	bestName, bestScore := m.bestMatch(text)
	if bestScore == 0 {
		return models.ValidMatch()
	}

	suggestedID, err := m.lookup.ResolveIDByName(ctx, bestName)
	if err != nil {
		m.logger.Warn(ctx, "could not resolve suggested category",
			zap.String("category", bestName),
			zap.Error(err),
		)
		return models.ValidMatch()
	}

	return models.SuggestedMatch(suggestedID, bestName)
}

// bestMatch scores every entry in table order. Only a strictly higher score
// replaces the current best.
func (m *categoryMatcher) bestMatch(text string) (string, int) {
	bestName := ""
	bestScore := 0

	m.table.Each(func(name string, keywords []string) {
		score := 0
		for _, keyword := range keywords {
			if strings.Contains(text, keyword) {
				score++
			}
		}
		if score > bestScore {
			bestName = name
			bestScore = score
		}
	})

	return bestName, bestScore
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
