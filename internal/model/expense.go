// Package model defines domain types for qawam ledgers and budgets.
package model

// Language selects the display language for user-facing text.
type Language string

// Supported languages.
const (
	Arabic  Language = "ar"
	English Language = "en"
)

// Category classifies an expense under the needs/wants/savings model.
type Category string

// The three expense categories. Every expense belongs to exactly one.
const (
	Need   Category = "need"
	Want   Category = "want"
	Saving Category = "saving"
)

// Categories lists all categories in display order.
var Categories = []Category{Need, Want, Saving}

var categoryLabels = map[Language]map[Category]string{
	Arabic: {
		Need:   "احتياج",
		Want:   "رغبة",
		Saving: "ادخار واستثمار",
	},
	English: {
		Need:   "Need",
		Want:   "Want",
		Saving: "Saving",
	},
}

// Label returns the localized display label for the category.
func (c Category) Label(lang Language) string {
	if m, ok := categoryLabels[lang]; ok {
		if s, ok := m[c]; ok {
			return s
		}
	}
	return string(c)
}

// ParseCategory maps a category label or canonical name back to a Category.
// Unrecognized input falls back to Need, mirroring the form default.
func ParseCategory(s string) Category {
	switch s {
	case string(Need), string(Want), string(Saving):
		return Category(s)
	}
	for _, m := range categoryLabels {
		for cat, label := range m {
			if s == label {
				return cat
			}
		}
	}
	return Need
}

// Expense is a single monthly expense entry.
// Identity is the opaque ID; edits replace the record wholesale and keep it.
type Expense struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Amount   float64  `json:"amount"`
	Category Category `json:"category"`
	Note     string   `json:"note,omitempty"`
}
