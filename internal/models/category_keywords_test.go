package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategoryKeywordTable_NormalizesKeywords(t *testing.T) {
	table, err := NewCategoryKeywordTable([]CategoryKeywords{
		{Name: " Electronics ", Keywords: []string{" Phone", "LAPTOP ", "", "  "}},
		{Name: CategoryOthers},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"phone", "laptop"}, table.Keywords("Electronics"))
	assert.Empty(t, table.Keywords(CategoryOthers))
	assert.True(t, table.Has(CategoryOthers))
	assert.Nil(t, table.Keywords("Unknown"))
	assert.Equal(t, 2, table.Len())
}

func TestNewCategoryKeywordTable_Errors(t *testing.T) {
	tests := []struct {
		name    string
		entries []CategoryKeywords
		wantErr error
	}{
		{"empty table", nil, ErrEmptyKeywordTable},
		{"missing name", []CategoryKeywords{{Name: "  ", Keywords: []string{"x"}}}, ErrKeywordCategoryMissing},
		{"duplicate name", []CategoryKeywords{{Name: "Books"}, {Name: "Books"}}, ErrDuplicateKeywordEntry},
		{"keywords on Others", []CategoryKeywords{{Name: "Books"}, {Name: CategoryOthers, Keywords: []string{"misc"}}}, ErrReservedCategoryKeywords},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCategoryKeywordTable(tt.entries)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCategoryKeywordTable_PreservesOrder(t *testing.T) {
	table := DefaultCategoryKeywordTable()

	expected := []string{
		"Electronics", "Furniture", "Clothes", "Books", "Home Appliances",
		"Vehicles", "Tools", "Sports & Fitness", CategoryOthers,
	}
	assert.Equal(t, expected, table.Names())

	var visited []string
	table.Each(func(name string, _ []string) {
		visited = append(visited, name)
	})
	assert.Equal(t, expected, visited)
}

func TestCategoryKeywordTable_EntriesIsACopy(t *testing.T) {
	table := DefaultCategoryKeywordTable()

	entries := table.Entries()
	entries[0].Keywords[0] = "mutated"
	entries[0].Name = "Mutated"

	assert.Equal(t, "phone", table.Keywords("Electronics")[0])
	assert.Equal(t, "Electronics", table.Names()[0])
}

func TestNewCategoryKeywordTable_DoesNotAliasInput(t *testing.T) {
	input := []CategoryKeywords{{Name: "Books", Keywords: []string{"novel"}}}
	table, err := NewCategoryKeywordTable(input)
	require.NoError(t, err)

	input[0].Keywords[0] = "changed"
	assert.Equal(t, []string{"novel"}, table.Keywords("Books"))
}

func TestNewCategoryKeywordTable_OthersAllowsBlankKeywords(t *testing.T) {
	table, err := NewCategoryKeywordTable([]CategoryKeywords{
		{Name: "Books", Keywords: []string{"book"}},
		{Name: CategoryOthers, Keywords: []string{" ", ""}},
	})

	assert.NoError(t, err)
	assert.Empty(t, table.Keywords(CategoryOthers))
}
