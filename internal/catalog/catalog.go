package catalog

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Catalog maps category titles to pools of stock-image search keywords.
// Lookups are case-insensitive. A Catalog is immutable after construction.
type Catalog struct {
	categories map[string][]string
	generic    []string
}

// File is the on-disk TOML layout of a catalog.
//
//	generic = ["workspace", "minimal desk"]
//
//	[categories]
//	Technology = ["circuit board", "server room"]
type File struct {
	Generic    []string            `toml:"generic"`
	Categories map[string][]string `toml:"categories"`
}

func New(categories map[string][]string, generic []string) *Catalog {
	c := &Catalog{
		categories: make(map[string][]string, len(categories)),
		generic:    cleanPool(generic),
	}
	for name, pool := range categories {
		key := normalizeKey(name)
		if key == "" {
			continue
		}
		c.categories[key] = cleanPool(pool)
	}

	return c
}

// Load reads a catalog from a TOML file. Categories missing from the file
// still resolve through the generic pool; an empty generic list falls back
// to the built-in one.
func Load(path string) (*Catalog, error) {
	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}

	generic := f.Generic
	if len(generic) == 0 {
		generic = defaultGeneric
	}

	return New(f.Categories, generic), nil
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return New(defaultCategories, defaultGeneric)
}

// Keywords returns the pool for the category and whether the category is mapped.
func (c *Catalog) Keywords(category string) ([]string, bool) {
	pool, ok := c.categories[normalizeKey(category)]
	if !ok || len(pool) == 0 {
		return nil, false
	}

	return pool, true
}

// Pool returns the category pool, or the generic pool for unmapped categories.
func (c *Catalog) Pool(category string) []string {
	if pool, ok := c.Keywords(category); ok {
		return pool
	}

	return c.generic
}

func (c *Catalog) Generic() []string {
	return c.generic
}

// Len returns the number of mapped categories.
func (c *Catalog) Len() int {
	return len(c.categories)
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func cleanPool(pool []string) []string {
	result := make([]string, 0, len(pool))
	for _, kw := range pool {
		kw = strings.TrimSpace(kw)
		if kw != "" {
			result = append(result, kw)
		}
	}

	return result
}
