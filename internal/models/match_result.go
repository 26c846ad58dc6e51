package models

import "github.com/google/uuid"

// MatchOutcome is the verdict of a category check
type MatchOutcome string

const (
	// MatchValid means the selected category fits the listing content
	MatchValid MatchOutcome = "valid"
	// MatchSuggested means another category fits better
	MatchSuggested MatchOutcome = "suggested"
	// MatchIndeterminate means the selected category could not be resolved.
	// It never blocks a listing.
	MatchIndeterminate MatchOutcome = "indeterminate"
)

// MatchResult contains the result of checking listing content against a category
type MatchResult struct {
	Outcome               MatchOutcome `json:"outcome"`
	SuggestedCategoryID   uuid.UUID    `json:"suggested_category_id,omitempty"`
	SuggestedCategoryName string       `json:"suggested_category_name,omitempty"`
}

// ValidMatch returns an accepting result
func ValidMatch() MatchResult {
	return MatchResult{Outcome: MatchValid}
}

// IndeterminateMatch returns the result used when the selected category is unknown
func IndeterminateMatch() MatchResult {
	return MatchResult{Outcome: MatchIndeterminate}
}

// SuggestedMatch returns a result proposing another category
func SuggestedMatch(categoryID uuid.UUID, categoryName string) MatchResult {
	return MatchResult{
		Outcome:               MatchSuggested,
		SuggestedCategoryID:   categoryID,
		SuggestedCategoryName: categoryName,
	}
}

// IsValid reports whether the listing may keep its selected category.
// Indeterminate counts as valid.
func (r MatchResult) IsValid() bool {
	return r.Outcome != MatchSuggested
}

// HasSuggestion reports whether the result carries a suggested category
func (r MatchResult) HasSuggestion() bool {
	return r.Outcome == MatchSuggested && r.SuggestedCategoryID != uuid.Nil
}
