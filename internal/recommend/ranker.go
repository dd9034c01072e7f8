// Fridgechef - Pantry Tracking and Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fridgechef

package recommend

import (
	"math"
	"sort"
	"strings"

	"github.com/tomtom215/fridgechef/internal/models"
)

// ComputeAvailability reports which of the recipe's ingredients the pantry covers.
//
// An ingredient is available when some pantry item has the same lower-cased
// name and a quantity greater than zero. Empty names never match. Missing
// ingredients keep recipe order. A recipe with no ingredients scores 0.
func ComputeAvailability(recipe *models.Recipe, pantry []models.PantryItem) AvailabilityResult {
	return computeWith(recipe, stockedNames(pantry))
}

// RankRecipes scores every recipe against the pantry and returns the topK
// best, highest percentage first. Recipes with equal percentages keep their
// catalog order. topK <= 0 yields an empty result. Inputs are not modified.
func RankRecipes(recipes []models.Recipe, pantry []models.PantryItem, topK int) []AvailabilityResult {
	if topK <= 0 {
		return []AvailabilityResult{}
	}

	stocked := stockedNames(pantry)
	results := make([]AvailabilityResult, 0, len(recipes))
	for i := range recipes {
		results = append(results, computeWith(&recipes[i], stocked))
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Percentage > results[j].Percentage
	})

	if len(results) > topK {
		results = results[:topK]
	}
	return results
}

func computeWith(recipe *models.Recipe, stocked map[string]struct{}) AvailabilityResult {
	own := recipe.Clone()
	total := len(own.Ingredients)
	missing := make([]models.RecipeIngredient, 0, total)
	available := 0
	for _, ing := range own.Ingredients {
		if isAvailable(ing.Name, stocked) {
			available++
			continue
		}
		missing = append(missing, ing)
	}
	return AvailabilityResult{
		Recipe:             own,
		AvailableCount:     available,
		TotalCount:         total,
		Percentage:         percentage(available, total),
		MissingIngredients: missing,
	}
}

// stockedNames indexes the lower-cased names of pantry items with positive
// quantity. Duplicate names collapse; any positive entry is enough.
func stockedNames(pantry []models.PantryItem) map[string]struct{} {
	stocked := make(map[string]struct{}, len(pantry))
	for i := range pantry {
		if pantry[i].Quantity <= 0 || pantry[i].Name == "" {
			continue
		}
		stocked[strings.ToLower(pantry[i].Name)] = struct{}{}
	}
	return stocked
}

func isAvailable(name string, stocked map[string]struct{}) bool {
	if name == "" {
		return false
	}
	_, ok := stocked[strings.ToLower(name)]
	return ok
}

// percentage rounds available/total*100 half-up. total == 0 yields 0.
func percentage(available, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Floor(float64(available)*100/float64(total) + 0.5))
}
