package domain

import (
	"errors"
	"strings"
)

// ErrUnknownCategory is returned when a label or key is not in the vocabulary
var ErrUnknownCategory = errors.New("unknown category")

// TrendingKey is the pseudo-category used for the default listing
const TrendingKey = "trending"

// Category maps a display label to the key used by the listing endpoint
type Category struct {
	Key   string
	Label string
}

// categories is the vocabulary shown in the category bar, in display order
var categories = []Category{
	{Key: TrendingKey, Label: "Trending"},
	{Key: "action", Label: "Action"},
	{Key: "comedy", Label: "Comedy"},
	{Key: "horror", Label: "Horror"},
	{Key: "romance", Label: "Romance"},
	{Key: "sci-fi", Label: "Sci-Fi"},
	{Key: "adventure", Label: "Adventure"},
	{Key: "animation", Label: "Animation"},
	{Key: "documentary", Label: "Documentary"},
	{Key: "motivational", Label: "Motivational"},
}

// footerLabels are the quick links rendered in the footer
var footerLabels = []string{"Trending", "Action", "Comedy", "Romance", "Horror", "Sci-Fi", "Motivational"}

// Categories returns the category bar vocabulary in display order
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// FooterCategories returns the footer quick links, resolved against the vocabulary
func FooterCategories() []Category {
	out := make([]Category, 0, len(footerLabels))
	for _, label := range footerLabels {
		if cat, err := CategoryByLabel(label); err == nil {
			out = append(out, cat)
		}
	}
	return out
}

// CategoryByLabel finds a category by its exact display label
func CategoryByLabel(label string) (Category, error) {
	for _, c := range categories {
		if c.Label == label {
			return c, nil
		}
	}
	return Category{}, ErrUnknownCategory
}

// CategoryByKey finds a category by its listing key
func CategoryByKey(key string) (Category, error) {
	for _, c := range categories {
		if c.Key == key {
			return c, nil
		}
	}
	return Category{}, ErrUnknownCategory
}

// ResolveCategory accepts either a key or a label, case-insensitively.
// Used by the command line where users type "sci-fi" or "Sci-Fi".
func ResolveCategory(name string) (Category, error) {
	name = strings.TrimSpace(name)
	for _, c := range categories {
		if strings.EqualFold(c.Key, name) || strings.EqualFold(c.Label, name) {
			return c, nil
		}
	}
	return Category{}, ErrUnknownCategory
}
