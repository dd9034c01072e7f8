// Fridgechef - Pantry Tracking and Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fridgechef

package catalog

import (
	"strings"

	"github.com/google/uuid"

	"github.com/tomtom215/fridgechef/internal/models"
)

// recipeIDNamespace scopes the name-based IDs given to recipes without one.
var recipeIDNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/tomtom215/fridgechef/recipes"))

// Normalize returns cleaned copies of recipes:
//   - names, units and image URLs are trimmed
//   - difficulty is clamped to 1..5
//   - negative cooking time and servings become 0
//   - recipes without an ID get a version 5 UUID derived from the name and
//     ingredient names, stable across fetches
//
// Ingredients with empty names are kept so they still count as missing.
// The input is not modified and the result is never nil.
func Normalize(recipes []models.Recipe) []models.Recipe {
	out := make([]models.Recipe, 0, len(recipes))
	for i := range recipes {
		r := recipes[i].Clone()

		r.Name = strings.TrimSpace(r.Name)
		r.ImageURL = strings.TrimSpace(r.ImageURL)
		r.UserName = strings.TrimSpace(r.UserName)
		r.Difficulty = clamp(r.Difficulty, models.MinDifficulty, models.MaxDifficulty)
		r.CookingTime = max(r.CookingTime, 0)
		r.Servings = max(r.Servings, 0)

		for j := range r.Ingredients {
			r.Ingredients[j].Name = strings.TrimSpace(r.Ingredients[j].Name)
			r.Ingredients[j].Unit = strings.TrimSpace(r.Ingredients[j].Unit)
		}
		if r.Ingredients == nil {
			r.Ingredients = []models.RecipeIngredient{}
		}

		r.ID = strings.TrimSpace(r.ID)
		if r.ID == "" {
			r.ID = derivedID(&r)
		}

		out = append(out, r)
	}
	return out
}

// derivedID hashes the trimmed name and ingredient names. Recipes that agree
// on all of them share an ID.
func derivedID(r *models.Recipe) string {
	var b strings.Builder
	b.WriteString(r.Name)
	for _, ing := range r.Ingredients {
		b.WriteByte(0)
		b.WriteString(strings.ToLower(ing.Name))
	}
	return uuid.NewSHA1(recipeIDNamespace, []byte(b.String())).String()
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
