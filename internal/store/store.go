// Package store provides functionality for loading category definitions.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/hsbc-csv/internal/logging"
	"fjacquet/hsbc-csv/internal/models"

	"gopkg.in/yaml.v3"
)

var log = logging.GetLogger()

// SetLogger allows setting a custom logger
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// CategoryStore manages loading of category data
type CategoryStore struct {
	CategoriesFile string
}

// NewCategoryStore creates a new store for category data. An empty file name
// means the default categories.yaml looked up in the standard locations.
func NewCategoryStore(categoriesFile string) *CategoryStore {
	return &CategoryStore{
		CategoriesFile: categoriesFile,
	}
}

// FindConfigFile looks for a configuration file in standard locations
func (s *CategoryStore) FindConfigFile(filename string) (string, error) {
	// Check if it's an absolute path
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	// Common locations to check for config files
	locations := []string{
		filename,                          // Current directory
		filepath.Join("config", filename), // ./config/ directory
	}

	// Try each location
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	// If still not found, check in user's home directory under .config/hsbc-csv/
	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "hsbc-csv", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadCategories loads categories from the YAML file. A missing file is not
// an error; categorization simply has nothing to match against.
func (s *CategoryStore) LoadCategories() ([]models.CategoryConfig, error) {
	filename := s.CategoriesFile
	if filename == "" {
		filename = "categories.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warn("Categories file not found",
				logging.Field{Key: logging.FieldFile, Value: filename})
			return []models.CategoryConfig{}, nil
		}
		return nil, fmt.Errorf("error resolving categories file: %w", err)
	}

	data, err := os.ReadFile(filePath) // #nosec G304 -- resolved from known config locations
	if err != nil {
		return nil, fmt.Errorf("error reading categories file: %w", err)
	}

	// Canonical structure: a top-level "categories:" list
	var categoriesConfig models.CategoriesConfig
	err = yaml.Unmarshal(data, &categoriesConfig)
	if err == nil && len(categoriesConfig.Categories) > 0 {
		log.Debug("Loaded categories",
			logging.Field{Key: logging.FieldCount, Value: len(categoriesConfig.Categories)},
			logging.Field{Key: logging.FieldFile, Value: filePath})
		return categoriesConfig.Categories, nil
	}

	// Fallback: a bare list of category entries without the top-level key
	var categories []models.CategoryConfig
	err = yaml.Unmarshal(data, &categories)
	if err == nil && len(categories) > 0 {
		log.Debug("Loaded categories from bare list",
			logging.Field{Key: logging.FieldCount, Value: len(categories)},
			logging.Field{Key: logging.FieldFile, Value: filePath})
		return categories, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error parsing categories file: %w", err)
	}

	log.Warn("Categories file contains no categories",
		logging.Field{Key: logging.FieldFile, Value: filePath})
	return []models.CategoryConfig{}, nil
}
