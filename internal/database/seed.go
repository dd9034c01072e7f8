// Fridgechef - Pantry Tracking and Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fridgechef

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/fridgechef/internal/logging"
	"github.com/tomtom215/fridgechef/internal/models"
)

// SeedRecipes inserts the starter catalog when the recipes table is empty and
// returns the number of recipes inserted.
func (db *DB) SeedRecipes(ctx context.Context) (inserted int, err error) {
	defer observe("INSERT", "recipes", time.Now(), &err)

	count, err := db.CountRecipes(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		logging.Debug().Int("recipes", count).Msg("Recipe catalog already populated, skipping seed")
		return 0, nil
	}

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	catalog := StarterRecipes()
	for i := range catalog {
		if _, err = insertRecipe(ctx, tx, &catalog[i]); err != nil {
			return 0, err
		}
	}
	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit seed: %w", err)
	}

	logging.Info().Int("recipes", len(catalog)).Msg("Seeded starter recipe catalog")
	return len(catalog), nil
}

// StarterRecipes returns the built-in catalog used by SeedRecipes.
func StarterRecipes() []models.Recipe {
	q := func(v float64) *float64 { return &v }

	return []models.Recipe{
		{
			ID: "starter-kimchi-stew", Name: "김치찌개", Difficulty: 2, CookingTime: 30, Servings: 2, UserName: "fridgechef",
			ImageURL: "/static/recipes/kimchi-stew.jpg",
			Ingredients: []models.RecipeIngredient{
				{Name: "김치", Quantity: q(300), Unit: "g"},
				{Name: "돼지고기", Quantity: q(200), Unit: "g"},
				{Name: "두부", Quantity: q(1), Unit: "모"},
				{Name: "대파", Quantity: q(1), Unit: "대"},
				{Name: "고춧가루", Quantity: q(1), Unit: "큰술"},
			},
		},
		{
			ID: "starter-rolled-omelette", Name: "계란말이", Difficulty: 1, CookingTime: 15, Servings: 2, UserName: "fridgechef",
			ImageURL: "/static/recipes/rolled-omelette.jpg",
			Ingredients: []models.RecipeIngredient{
				{Name: "계란", Quantity: q(4), Unit: "개"},
				{Name: "대파", Quantity: q(0.5), Unit: "대"},
				{Name: "당근", Quantity: q(0.25), Unit: "개"},
				{Name: "소금", Unit: "약간"},
			},
		},
		{
			ID: "starter-doenjang-stew", Name: "된장찌개", Difficulty: 2, CookingTime: 25, Servings: 2, UserName: "fridgechef",
			ImageURL: "/static/recipes/doenjang-stew.jpg",
			Ingredients: []models.RecipeIngredient{
				{Name: "된장", Quantity: q(2), Unit: "큰술"},
				{Name: "두부", Quantity: q(0.5), Unit: "모"},
				{Name: "애호박", Quantity: q(0.5), Unit: "개"},
				{Name: "양파", Quantity: q(0.5), Unit: "개"},
				{Name: "감자", Quantity: q(1), Unit: "개"},
			},
		},
		{
			ID: "starter-spicy-pork", Name: "제육볶음", Difficulty: 3, CookingTime: 35, Servings: 2, UserName: "fridgechef",
			ImageURL: "/static/recipes/spicy-pork.jpg",
			Ingredients: []models.RecipeIngredient{
				{Name: "돼지고기", Quantity: q(400), Unit: "g"},
				{Name: "고추장", Quantity: q(2), Unit: "큰술"},
				{Name: "양파", Quantity: q(1), Unit: "개"},
				{Name: "대파", Quantity: q(1), Unit: "대"},
				{Name: "간장", Quantity: q(1), Unit: "큰술"},
				{Name: "설탕", Quantity: q(1), Unit: "큰술"},
			},
		},
		{
			ID: "starter-braised-potatoes", Name: "감자조림", Difficulty: 2, CookingTime: 30, Servings: 3, UserName: "fridgechef",
			ImageURL: "/static/recipes/braised-potatoes.jpg",
			Ingredients: []models.RecipeIngredient{
				{Name: "감자", Quantity: q(3), Unit: "개"},
				{Name: "간장", Quantity: q(3), Unit: "큰술"},
				{Name: "설탕", Quantity: q(1), Unit: "큰술"},
				{Name: "참기름", Quantity: q(1), Unit: "작은술"},
			},
		},
		{
			ID: "starter-tomato-egg", Name: "토마토 달걀볶음", Difficulty: 1, CookingTime: 10, Servings: 1, UserName: "fridgechef",
			ImageURL: "/static/recipes/tomato-egg.jpg",
			Ingredients: []models.RecipeIngredient{
				{Name: "토마토", Quantity: q(2), Unit: "개"},
				{Name: "계란", Quantity: q(3), Unit: "개"},
				{Name: "소금", Unit: "약간"},
			},
		},
		{
			ID: "starter-bulgogi", Name: "소불고기", Difficulty: 4, CookingTime: 50, Servings: 4, UserName: "fridgechef",
			ImageURL: "/static/recipes/bulgogi.jpg",
			Ingredients: []models.RecipeIngredient{
				{Name: "소고기", Quantity: q(500), Unit: "g"},
				{Name: "간장", Quantity: q(4), Unit: "큰술"},
				{Name: "배", Quantity: q(0.5), Unit: "개"},
				{Name: "양파", Quantity: q(1), Unit: "개"},
				{Name: "마늘", Quantity: q(5), Unit: "쪽"},
				{Name: "참기름", Quantity: q(1), Unit: "큰술"},
			},
		},
	}
}
