// Fridgechef - Pantry Tracking and Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fridgechef

package models

import (
	"strings"
	"time"
)

// Category classifies a pantry item. Stored values are the upper-case enum names.
type Category string

// Pantry categories
const (
	CategoryVegetable Category = "VEGETABLE"
	CategoryMeat      Category = "MEAT"
	CategoryDairy     Category = "DAIRY"
	CategorySeasoning Category = "SEASONING"
	CategoryOther     Category = "OTHER"
)

// DefaultEmoji is shown for categories without a dedicated emoji.
const DefaultEmoji = "🍳"

// categoryLabels are the user-facing labels, which are also what clients send.
var categoryLabels = map[Category]string{
	CategoryVegetable: "야채",
	CategoryMeat:      "고기",
	CategoryDairy:     "유제품",
	CategorySeasoning: "조미료",
	CategoryOther:     "기타",
}

var categoryEmojis = map[Category]string{
	CategoryVegetable: "🥬",
	CategoryMeat:      "🥩",
	CategoryDairy:     "🥛",
	CategorySeasoning: "🧂",
	CategoryOther:     "📦",
}

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{CategoryVegetable, CategoryMeat, CategoryDairy, CategorySeasoning, CategoryOther}
}

// ParseCategoryLabel maps a display label (or enum name) to a Category.
// Unknown input maps to CategoryOther.
func ParseCategoryLabel(label string) Category {
	label = strings.TrimSpace(label)
	for c, l := range categoryLabels {
		if l == label || strings.EqualFold(string(c), label) {
			return c
		}
	}
	return CategoryOther
}

// Label returns the display label. Unknown categories render as the OTHER label.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return categoryLabels[CategoryOther]
}

// Emoji returns the display emoji for the category.
func (c Category) Emoji() string {
	if e, ok := categoryEmojis[c]; ok {
		return e
	}
	return DefaultEmoji
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// PantryItem is a user-owned ingredient record.
type PantryItem struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Name        string     `json:"name"`
	Category    Category   `json:"category"`
	Quantity    float64    `json:"quantity"`
	Unit        string     `json:"unit"`
	PurchasedAt *time.Time `json:"purchased_at,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// PantryItemView is the API representation of a pantry item.
type PantryItemView struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
	PurchaseDate *string `json:"purchaseDate"`
	ExpiryDate   *string `json:"expiryDate"`
	DaysLeft     *int    `json:"daysLeft"`
	Emoji        string  `json:"emoji"`
}

// View renders the item for API responses relative to today.
func (p *PantryItem) View(today time.Time) PantryItemView {
	return PantryItemView{
		ID:           p.ID,
		Name:         p.Name,
		Category:     p.Category.Label(),
		Quantity:     p.Quantity,
		Unit:         p.Unit,
		PurchaseDate: FormatYMD(p.PurchasedAt),
		ExpiryDate:   FormatYMD(p.ExpiresAt),
		DaysLeft:     DaysLeft(today, p.ExpiresAt),
		Emoji:        p.Category.Emoji(),
	}
}

// DateLayout is the calendar date format used on the wire.
const DateLayout = "2006-01-02"

// FormatYMD formats t as YYYY-MM-DD in UTC, or nil when t is nil.
func FormatYMD(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(DateLayout)
	return &s
}

// ParseDate accepts YYYY-MM-DD or RFC3339. Empty input yields nil.
func ParseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	t = t.UTC()
	return &t, nil
}

// DaysLeft returns whole calendar days from today until expires, negative
// once expired. Both dates are truncated to their UTC day. Nil when expires is nil.
func DaysLeft(today time.Time, expires *time.Time) *int {
	if expires == nil {
		return nil
	}
	d := int(startOfDay(*expires).Sub(startOfDay(today)).Hours() / 24)
	return &d
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
