// Package model defines the core data types shared by the scan engine:
// string categories, source dialects, per-file extraction results and the
// aggregated scan report.
package model

import (
	"fmt"
	"strings"
)

// Category classifies the likely UI role of an extracted string.
type Category string

const (
	// CategoryButtons is text found inside button elements.
	CategoryButtons Category = "buttons"

	// CategoryLabels is text found inside label elements.
	CategoryLabels Category = "labels"

	// CategoryPlaceholders is text from placeholder attributes.
	CategoryPlaceholders Category = "placeholders"

	// CategoryAttributes is text from other user-facing attributes
	// (title, alt, aria-label).
	CategoryAttributes Category = "attributes"

	// CategoryLiterals is quoted text that looks user-facing but was not
	// matched in an element or attribute position.
	CategoryLiterals Category = "literals"
)

// AllCategories returns all categories in precedence order.
// Attribute-position matches outrank generic literal matches, so a string
// is always assigned the first category that claims it.
func AllCategories() []Category {
	return []Category{
		CategoryButtons,
		CategoryLabels,
		CategoryPlaceholders,
		CategoryAttributes,
		CategoryLiterals,
	}
}

// IsValid returns true if the category is recognized.
func (c Category) IsValid() bool {
	switch c {
	case CategoryButtons, CategoryLabels, CategoryPlaceholders, CategoryAttributes, CategoryLiterals:
		return true
	default:
		return false
	}
}

// String returns the string representation of the category.
func (c Category) String() string {
	return string(c)
}

// ParseCategory converts a string to a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", fmt.Errorf("unknown category: %q", s)
	}
	return c, nil
}
