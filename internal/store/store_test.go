package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	err := os.WriteFile(path, []byte(content), 0600)
	assert.NoError(t, err)
}

func TestNewCategoryStore(t *testing.T) {
	store := NewCategoryStore("categories.yaml")
	assert.Equal(t, "categories.yaml", store.CategoriesFile)
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()

	// Create a test file
	testFile := filepath.Join(dir, "test.yaml")
	writeFile(t, testFile, "test content")

	store := NewCategoryStore("")

	// Test with absolute path that exists
	file, err := store.FindConfigFile(testFile)
	assert.NoError(t, err)
	assert.Equal(t, testFile, file)

	// Test with file that doesn't exist
	_, err = store.FindConfigFile(filepath.Join(dir, "nonexistent.yaml"))
	assert.Error(t, err)
}

func TestLoadCategoriesCanonical(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "categories.yaml")
	content := `categories:
  - name: Groceries
    keywords: ["supermarket", "grocery"]
  - name: Travel
    keywords: ["trainline", "tfl"]
`
	writeFile(t, file, content)

	store := NewCategoryStore(file)
	cats, err := store.LoadCategories()
	assert.NoError(t, err)
	assert.Len(t, cats, 2)
	assert.Equal(t, "Groceries", cats[0].Name)
	assert.Equal(t, []string{"trainline", "tfl"}, cats[1].Keywords)
}

func TestLoadCategoriesBareList(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "categories.yaml")
	content := `- name: Groceries
  keywords: ["supermarket", "grocery"]
- name: Rent
  keywords: ["apartment", "rent"]
`
	writeFile(t, file, content)

	store := NewCategoryStore(file)
	cats, err := store.LoadCategories()
	assert.NoError(t, err)
	assert.Len(t, cats, 2)
	assert.Equal(t, "Rent", cats[1].Name)
}

func TestLoadCategoriesMissing(t *testing.T) {
	dir := t.TempDir()

	store := NewCategoryStore(filepath.Join(dir, "missing.yaml"))
	cats, err := store.LoadCategories()
	assert.NoError(t, err, "A missing categories file should not be an error")
	assert.Empty(t, cats)
}

func TestLoadCategoriesEmptyFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "categories.yaml")
	writeFile(t, file, "")

	store := NewCategoryStore(file)
	cats, err := store.LoadCategories()
	assert.NoError(t, err)
	assert.Empty(t, cats)
}

func TestLoadCategoriesMalformed(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "categories.yaml")
	writeFile(t, file, `{malformed: yaml: content}`)

	store := NewCategoryStore(file)
	_, err := store.LoadCategories()
	assert.Error(t, err)
}
