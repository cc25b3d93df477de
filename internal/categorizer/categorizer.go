// Package categorizer assigns categories to statement rows using keyword
// rules loaded from a YAML file.
package categorizer

import (
	"strings"

	"fjacquet/hsbc-csv/internal/logging"
	"fjacquet/hsbc-csv/internal/models"
)

// CategoryStoreInterface defines the interface for category data storage.
// This allows for dependency injection and easier testing.
type CategoryStoreInterface interface {
	LoadCategories() ([]models.CategoryConfig, error)
}

// Categorizer matches transaction details against configured keyword lists.
// Matching is case-insensitive; the first category whose keyword appears in
// the details wins, in declaration order.
type Categorizer struct {
	categories []models.CategoryConfig
	store      CategoryStoreInterface
	logger     logging.Logger
}

// NewCategorizer creates a Categorizer and loads its category rules from the
// given store.
func NewCategorizer(store CategoryStoreInterface, logger logging.Logger) *Categorizer {
	if logger == nil {
		logger = logging.GetLogger()
	}

	c := &Categorizer{
		categories: []models.CategoryConfig{},
		store:      store,
		logger:     logger,
	}
	c.loadCategories()
	return c
}

func (c *Categorizer) loadCategories() {
	categories, err := c.store.LoadCategories()
	if err != nil {
		c.logger.WithError(err).Warn("Failed to load categories")
		return
	}
	c.categories = categories
	c.logger.Debug("Loaded categories",
		logging.Field{Key: logging.FieldCount, Value: len(c.categories)})
}

// ReloadCategories reloads the category rules from the store. This can be
// called when the underlying YAML file has been updated.
func (c *Categorizer) ReloadCategories() {
	c.loadCategories()
}

// Categorize returns the category for the given transaction details and
// whether any keyword matched.
func (c *Categorizer) Categorize(details string) (string, bool) {
	if strings.TrimSpace(details) == "" {
		return "", false
	}
	haystack := strings.ToUpper(details)

	for _, categoryConfig := range c.categories {
		for _, keyword := range categoryConfig.Keywords {
			if keyword == "" {
				continue
			}
			if strings.Contains(haystack, strings.ToUpper(keyword)) {
				c.logger.WithFields(
					logging.Field{Key: "keyword", Value: keyword},
					logging.Field{Key: logging.FieldCategory, Value: categoryConfig.Name},
				).Debug("Details matched category keyword")
				return categoryConfig.Name, true
			}
		}
	}

	return "", false
}

// CategorizeRows fills the category column of transaction rows in place.
// Text-line rows keep an empty category; transactions that no keyword
// matches fall back to Uncategorized.
func (c *Categorizer) CategorizeRows(rows []models.Row) {
	for i := range rows {
		if !rows[i].IsTransaction() {
			continue
		}
		category, found := c.Categorize(rows[i].Details)
		if !found {
			category = models.CategoryUncategorized
		}
		rows[i].Category = category
	}
}
