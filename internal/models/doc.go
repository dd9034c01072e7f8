// Fridgechef - Pantry Tracking and Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fridgechef

/*
Package models defines the data structures shared across Fridgechef.

  - PantryItem: a user-owned ingredient with quantity, unit, category and
    optional purchase and expiry dates. PantryItemView is its API shape, with
    the category label, YYYY-MM-DD dates, daysLeft and an emoji.
  - Category: VEGETABLE, MEAT, DAIRY, SEASONING, OTHER. Clients send and
    receive the display labels (야채, 고기, 유제품, 조미료, 기타).
  - Recipe and RecipeIngredient: catalog entries. Ingredient order matters
    because missing ingredients are reported in recipe order.
*/
package models
