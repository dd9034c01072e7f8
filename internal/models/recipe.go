// Fridgechef - Pantry Tracking and Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fridgechef

package models

// Difficulty bounds for recipes.
const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// RecipeIngredient is one line of a recipe's ingredient list.
// Quantity and Unit are informational; matching uses Name only.
type RecipeIngredient struct {
	Name     string   `json:"name"`
	Quantity *float64 `json:"quantity,omitempty"`
	Unit     string   `json:"unit,omitempty"`
}

// Recipe is a catalog entry. Ingredient order is significant.
type Recipe struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	ImageURL    string             `json:"imageUrl"`
	Difficulty  int                `json:"difficulty"`
	CookingTime int                `json:"cookingTime"`
	Servings    int                `json:"servings"`
	UserName    string             `json:"userName"`
	Ingredients []RecipeIngredient `json:"ingredients"`
}

// Clone returns a deep copy so callers can hand out recipes without sharing slices.
func (r *Recipe) Clone() Recipe {
	out := *r
	if r.Ingredients != nil {
		out.Ingredients = make([]RecipeIngredient, len(r.Ingredients))
		for i, ing := range r.Ingredients {
			if ing.Quantity != nil {
				q := *ing.Quantity
				ing.Quantity = &q
			}
			out.Ingredients[i] = ing
		}
	}
	return out
}

// DifficultyLabel returns "easy" for 1-2, "normal" for 3 and "hard" above.
func DifficultyLabel(difficulty int) string {
	switch {
	case difficulty <= 2:
		return "easy"
	case difficulty == 3:
		return "normal"
	default:
		return "hard"
	}
}
