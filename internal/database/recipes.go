// Fridgechef - Pantry Tracking and Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fridgechef

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/fridgechef/internal/models"
)

const recipeColumns = `id, name, image_url, difficulty, cooking_time, servings, user_name`

// ListRecipes returns the catalog in insertion order with each recipe's
// ingredients in position order.
func (db *DB) ListRecipes(ctx context.Context) (recipes []models.Recipe, err error) {
	defer observe("SELECT", "recipes", time.Now(), &err)

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	rows, err := db.conn.QueryContext(ctx, `SELECT `+recipeColumns+` FROM recipes ORDER BY seq ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query recipes: %w", err)
	}
	defer closeWithLog(rows, "recipe rows")

	recipes = make([]models.Recipe, 0)
	index := make(map[string]int)
	for rows.Next() {
		r, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		index[r.ID] = len(recipes)
		recipes = append(recipes, r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recipes: %w", err)
	}

	ingredients, err := db.conn.QueryContext(ctx, `
		SELECT recipe_id, name, quantity, unit
		FROM recipe_ingredients
		ORDER BY recipe_id, position ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query recipe ingredients: %w", err)
	}
	defer closeWithLog(ingredients, "ingredient rows")

	for ingredients.Next() {
		recipeID, ing, err := scanIngredient(ingredients)
		if err != nil {
			return nil, err
		}
		if i, ok := index[recipeID]; ok {
			recipes[i].Ingredients = append(recipes[i].Ingredients, ing)
		}
	}
	if err = ingredients.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recipe ingredients: %w", err)
	}

	return recipes, nil
}

// GetRecipe returns one recipe by ID, or ErrNotFound.
func (db *DB) GetRecipe(ctx context.Context, id string) (recipe *models.Recipe, err error) {
	defer observe("SELECT", "recipes", time.Now(), &err)

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	r, err := scanRecipe(db.conn.QueryRowContext(ctx, `SELECT `+recipeColumns+` FROM recipes WHERE id = ?`, id))
	if err != nil {
		return nil, err
	}

	rows, err := db.conn.QueryContext(ctx, `
		SELECT recipe_id, name, quantity, unit
		FROM recipe_ingredients
		WHERE recipe_id = ?
		ORDER BY position ASC`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query recipe ingredients: %w", err)
	}
	defer closeWithLog(rows, "ingredient rows")

	for rows.Next() {
		_, ing, err := scanIngredient(rows)
		if err != nil {
			return nil, err
		}
		r.Ingredients = append(r.Ingredients, ing)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recipe ingredients: %w", err)
	}
	return &r, nil
}

// CreateRecipe stores a recipe and its ingredients in one transaction and
// returns the recipe's ID, generating one when empty.
func (db *DB) CreateRecipe(ctx context.Context, recipe *models.Recipe) (id string, err error) {
	defer observe("INSERT", "recipes", time.Now(), &err)

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	id, err = insertRecipe(ctx, tx, recipe)
	if err != nil {
		return "", err
	}
	if err = tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit recipe: %w", err)
	}
	return id, nil
}

// CountRecipes returns the number of catalog entries.
func (db *DB) CountRecipes(ctx context.Context) (n int, err error) {
	defer observe("SELECT", "recipes", time.Now(), &err)

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	if err = db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM recipes`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count recipes: %w", err)
	}
	return n, nil
}

func insertRecipe(ctx context.Context, tx *sql.Tx, recipe *models.Recipe) (string, error) {
	id := recipe.ID
	if id == "" {
		id = uuid.New().String()
	}

	_, err := tx.ExecContext(ctx, `
		INSERT INTO recipes (`+recipeColumns+`, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, recipe.Name, recipe.ImageURL, recipe.Difficulty, recipe.CookingTime,
		recipe.Servings, recipe.UserName, time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("failed to insert recipe %q: %w", recipe.Name, err)
	}

	for pos, ing := range recipe.Ingredients {
		var qty sql.NullFloat64
		if ing.Quantity != nil {
			qty = sql.NullFloat64{Float64: *ing.Quantity, Valid: true}
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO recipe_ingredients (recipe_id, position, name, quantity, unit)
			VALUES (?, ?, ?, ?, ?)`,
			id, pos, ing.Name, qty, ing.Unit)
		if err != nil {
			return "", fmt.Errorf("failed to insert ingredient %d of %q: %w", pos, recipe.Name, err)
		}
	}
	return id, nil
}

func scanRecipe(s rowScanner) (models.Recipe, error) {
	var r models.Recipe
	err := s.Scan(&r.ID, &r.Name, &r.ImageURL, &r.Difficulty, &r.CookingTime, &r.Servings, &r.UserName)
	if errors.Is(err, sql.ErrNoRows) {
		return r, ErrNotFound
	}
	if err != nil {
		return r, fmt.Errorf("failed to scan recipe: %w", err)
	}
	return r, nil
}

func scanIngredient(s rowScanner) (string, models.RecipeIngredient, error) {
	var (
		recipeID string
		ing      models.RecipeIngredient
		qty      sql.NullFloat64
	)
	if err := s.Scan(&recipeID, &ing.Name, &qty, &ing.Unit); err != nil {
		return "", ing, fmt.Errorf("failed to scan recipe ingredient: %w", err)
	}
	if qty.Valid {
		q := qty.Float64
		ing.Quantity = &q
	}
	return recipeID, ing, nil
}
