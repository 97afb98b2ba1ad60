package catalog

import (
	"errors"
	"fmt"
)

// ErrInvalidCategory is returned when a category ID is not in the catalog.
var ErrInvalidCategory = errors.New("invalid category")

// Catalog is an immutable, validated set of symptom categories.
type Catalog struct {
	version    string
	categories []Category
	byID       map[string]int
	owner      map[string]string // question ID -> category ID
}

// def is the embedded catalog, set by init() in load.go.
var def *Catalog

// Default returns the catalog compiled into the binary.
func Default() *Catalog {
	return def
}

// New validates the categories and builds a catalog with lookup indices.
// The input is copied; later changes to it do not affect the catalog.
func New(version string, categories []Category) (*Catalog, error) {
	if err := validate(version, categories); err != nil {
		return nil, err
	}

	c := &Catalog{
		version:    version,
		categories: make([]Category, len(categories)),
		byID:       make(map[string]int, len(categories)),
		owner:      make(map[string]string),
	}
	for i, cat := range categories {
		c.categories[i] = cat.clone()
		c.byID[cat.ID] = i
		for _, q := range cat.Questions {
			c.owner[q.ID] = cat.ID
		}
	}
	return c, nil
}

// Version returns the catalog's semantic version.
func (c *Catalog) Version() string {
	return c.version
}

// Get returns the category with the given ID.
func (c *Catalog) Get(id string) (Category, error) {
	i, ok := c.byID[id]
	if !ok {
		return Category{}, fmt.Errorf("%w: %q", ErrInvalidCategory, id)
	}
	return c.categories[i].clone(), nil
}

// Categories returns all categories in display order.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	for i, cat := range c.categories {
		out[i] = cat.clone()
	}
	return out
}

// CategoryOf returns the category that owns the given question ID.
func (c *Catalog) CategoryOf(questionID string) (Category, bool) {
	id, ok := c.owner[questionID]
	if !ok {
		return Category{}, false
	}
	return c.categories[c.byID[id]].clone(), true
}
