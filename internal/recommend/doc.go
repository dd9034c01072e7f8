// Fridgechef - Pantry Tracking and Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fridgechef

// Package recommend ranks recipes by how much of each the user's pantry covers.
//
// # Matching
//
// A recipe ingredient is available when a pantry item has the same name,
// compared case-insensitively, and a quantity above zero. There is no
// normalization of plurals, synonyms or units. Empty names never match.
//
// # Scoring
//
// The availability percentage is available/total*100 rounded half-up
// (math.Floor(x + 0.5)), so 79.5 becomes 80 and earns the full badge.
// Recipes without ingredients score 0.
//
// # Ranking
//
// RankRecipes sorts by percentage descending with a stable sort, so recipes
// with equal scores keep catalog order, then keeps the first topK
// (DefaultTopK is 3).
//
// # Usage
//
//	results := recommend.RankRecipes(recipes, pantry, recommend.DefaultTopK)
//	for _, r := range results {
//	    badge := recommend.ClassifyAvailability(r.Percentage, recommend.DefaultThresholds())
//	    fmt.Println(r.Recipe.Name, r.Percentage, badge.Label)
//	}
//
// # Thread Safety
//
// Every function is pure and holds no state, so concurrent use needs no
// coordination. Results never alias the caller's recipes.
package recommend
