package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyKeywordTable        = errors.New("category keyword table is empty")
	ErrDuplicateKeywordEntry    = errors.New("duplicate category in keyword table")
	ErrKeywordCategoryMissing   = errors.New("keyword table entry has no category name")
	ErrReservedCategoryKeywords = errors.New("reserved category cannot have keywords")
)

// CategoryKeywords is one entry of a CategoryKeywordTable
type CategoryKeywords struct {
	Name     string   `yaml:"name" json:"name"`
	Keywords []string `yaml:"keywords" json:"keywords"`
}

// CategoryKeywordTable maps category names to lowercase keyword lists.
// Entries keep the order they were built with; scoring walks them in that
// order so ties resolve to the earliest entry. A table is never mutated after
// construction and is safe for concurrent readers.
type CategoryKeywordTable struct {
	entries []CategoryKeywords
	index   map[string]int
}

// NewCategoryKeywordTable builds a table from the given entries. Keywords are
// trimmed and lower-cased; empty keywords are dropped. The Others entry is the
// fallback category and must not carry keywords.
func NewCategoryKeywordTable(entries []CategoryKeywords) (*CategoryKeywordTable, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyKeywordTable
	}

	table := &CategoryKeywordTable{
		entries: make([]CategoryKeywords, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}

	for _, entry := range entries {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			return nil, ErrKeywordCategoryMissing
		}
		if _, exists := table.index[name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateKeywordEntry, name)
		}

		keywords := make([]string, 0, len(entry.Keywords))
		for _, keyword := range entry.Keywords {
			keyword = strings.ToLower(strings.TrimSpace(keyword))
			if keyword == "" {
				continue
			}
			keywords = append(keywords, keyword)
		}
		if name == CategoryOthers && len(keywords) > 0 {
			return nil, fmt.Errorf("%w: %s", ErrReservedCategoryKeywords, name)
		}

		table.index[name] = len(table.entries)
		table.entries = append(table.entries, CategoryKeywords{Name: name, Keywords: keywords})
	}

	return table, nil
}

// DefaultCategoryKeywordTable returns the built-in marketplace keyword table
func DefaultCategoryKeywordTable() *CategoryKeywordTable {
	table, err := NewCategoryKeywordTable(DefaultCategoryKeywords())
	if err != nil {
		panic(fmt.Sprintf("invalid default category keyword table: %v", err))
	}
	return table
}

// DefaultCategoryKeywords returns the entries of the built-in table
func DefaultCategoryKeywords() []CategoryKeywords {
	return []CategoryKeywords{
		{Name: "Electronics", Keywords: []string{"phone", "laptop", "computer", "tablet", "camera", "tv", "monitor", "keyboard", "mouse", "headphones", "speaker"}},
		{Name: "Furniture", Keywords: []string{"chair", "table", "sofa", "bed", "desk", "cabinet", "shelf", "couch", "dresser"}},
		{Name: "Clothes", Keywords: []string{"shirt", "pants", "dress", "jacket", "shoes", "boots", "hat", "sweater", "jeans", "coat"}},
		{Name: "Books", Keywords: []string{"book", "novel", "magazine", "textbook", "comic", "journal", "manual", "guide"}},
		{Name: "Home Appliances", Keywords: []string{"refrigerator", "microwave", "oven", "washer", "dryer", "dishwasher", "blender", "toaster"}},
		{Name: "Vehicles", Keywords: []string{"car", "motorcycle", "bike", "bicycle", "truck", "van", "scooter", "vehicle"}},
		{Name: "Tools", Keywords: []string{"hammer", "drill", "saw", "wrench", "screwdriver", "toolbox", "ladder", "pliers"}},
		{Name: "Sports & Fitness", Keywords: []string{"gym", "weights", "treadmill", "ball", "bike", "yoga", "fitness", "exercise", "sports"}},
		{Name: CategoryOthers, Keywords: []string{}},
	}
}

// Keywords returns the keywords for a category name. Unknown names return nil.
func (t *CategoryKeywordTable) Keywords(name string) []string {
	i, ok := t.index[name]
	if !ok {
		return nil
	}
	return t.entries[i].Keywords
}

// Has reports whether the table holds an entry for name
func (t *CategoryKeywordTable) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Len returns the number of categories in the table
func (t *CategoryKeywordTable) Len() int {
	return len(t.entries)
}

// Names returns category names in table order
func (t *CategoryKeywordTable) Names() []string {
	names := make([]string, len(t.entries))
	for i, entry := range t.entries {
		names[i] = entry.Name
	}
	return names
}

// Each calls fn for every entry in table order. The keyword slice passed to fn
// must not be modified.
func (t *CategoryKeywordTable) Each(fn func(name string, keywords []string)) {
	for _, entry := range t.entries {
		fn(entry.Name, entry.Keywords)
	}
}

// Entries returns a deep copy of the table entries in order
func (t *CategoryKeywordTable) Entries() []CategoryKeywords {
	out := make([]CategoryKeywords, len(t.entries))
	for i, entry := range t.entries {
		out[i] = CategoryKeywords{
			Name:     entry.Name,
			Keywords: append([]string(nil), entry.Keywords...),
		}
	}
	return out
}
