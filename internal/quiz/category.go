package quiz

import (
	"fmt"
	"strings"
)

// Category is the dosha tag carried by every answer option.
type Category string

const (
	CategoryVata  Category = "vata"  // Air and space: dry, thin, delicate
	CategoryPitta Category = "pitta" // Fire and water: warm, sensitive, reactive
	CategoryKapha Category = "kapha" // Earth and water: oily, thick, smooth
)

// AllCategories returns the categories in scoring evaluation order.
func AllCategories() []Category {
	return []Category{
		CategoryVata,
		CategoryPitta,
		CategoryKapha,
	}
}

// Valid reports whether c is one of the three known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryVata, CategoryPitta, CategoryKapha:
		return true
	}
	return false
}

// DisplayName returns a human-readable name for a category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryVata:
		return "Vata"
	case CategoryPitta:
		return "Pitta"
	case CategoryKapha:
		return "Kapha"
	default:
		return string(c)
	}
}

// Letter returns the short A/B/C label used in compact listings.
func (c Category) Letter() string {
	switch c {
	case CategoryVata:
		return "A"
	case CategoryPitta:
		return "B"
	case CategoryKapha:
		return "C"
	default:
		return "?"
	}
}

// ParseCategory accepts a category name in any case or its A/B/C letter.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vata", "a":
		return CategoryVata, nil
	case "pitta", "b":
		return CategoryPitta, nil
	case "kapha", "c":
		return CategoryKapha, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Letters maps stored answer labels to their A/B/C letters. Labels that do
// not parse become "?".
func Letters(labels []string) []string {
	out := make([]string, len(labels))
	for i, l := range labels {
		c, err := ParseCategory(l)
		if err != nil {
			out[i] = "?"
			continue
		}
		out[i] = c.Letter()
	}
	return out
}

// Dominant is the outcome label of a scored quiz: one of the categories,
// or Balanced when no category leads.
type Dominant string

// Balanced is the outcome when no category strictly leads.
const Balanced Dominant = "balanced"

// DominantOf lifts a category into a Dominant.
func DominantOf(c Category) Dominant {
	return Dominant(c)
}

// Category returns the underlying category, or false for Balanced.
func (d Dominant) Category() (Category, bool) {
	c := Category(d)
	return c, c.Valid()
}

// DisplayName returns a human-readable name for the outcome.
func (d Dominant) DisplayName() string {
	if c, ok := d.Category(); ok {
		return c.DisplayName()
	}
	return "Balanced"
}

// ParseDominant accepts anything ParseCategory accepts plus "balanced".
func ParseDominant(s string) (Dominant, error) {
	if strings.EqualFold(strings.TrimSpace(s), string(Balanced)) {
		return Balanced, nil
	}
	c, err := ParseCategory(s)
	if err != nil {
		return "", err
	}
	return DominantOf(c), nil
}
