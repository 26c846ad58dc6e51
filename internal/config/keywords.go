package config

import (
	"fmt"
	"os"

	"dealswapify/internal/models"

	"gopkg.in/yaml.v3"
)

type keywordsFile struct {
	Categories []models.CategoryKeywords `yaml:"categories"`
}

// LoadCategoryKeywords returns the keyword table used by the category matcher.
// An empty path yields the built-in table. Otherwise the file is a YAML
// document of the form:
//
//	categories:
//	  - name: Electronics
//	    keywords: [phone, laptop]
//	  - name: Others
//
// Entries are matched in file order.
func LoadCategoryKeywords(path string) (*models.CategoryKeywordTable, error) {
	if path == "" {
		return models.DefaultCategoryKeywordTable(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read category keywords file: %w", err)
	}

	return ParseCategoryKeywords(data)
}

// ParseCategoryKeywords builds a keyword table from YAML.
func ParseCategoryKeywords(data []byte) (*models.CategoryKeywordTable, error) {
	var file keywordsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse category keywords: %w", err)
	}

	table, err := models.NewCategoryKeywordTable(file.Categories)
	if err != nil {
		return nil, fmt.Errorf("invalid category keywords: %w", err)
	}
	return table, nil
}
