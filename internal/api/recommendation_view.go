// Fridgechef - Pantry Tracking and Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fridgechef

package api

import (
	"github.com/tomtom215/fridgechef/internal/models"
	"github.com/tomtom215/fridgechef/internal/recommend"
)

// BadgeView is the rendered availability badge.
type BadgeView struct {
	Label      string             `json:"label"`
	Severity   recommend.Severity `json:"severity"`
	Text       string             `json:"text"`
	Color      string             `json:"color"`
	Background string             `json:"backgroundColor"`
}

// badgeStyles holds the display text and colors per severity.
var badgeStyles = map[recommend.Severity]BadgeView{
	recommend.SeverityPositive: {Text: "모두 보유!", Color: "#10B981", Background: "#F0FDF4"},
	recommend.SeverityWarning:  {Text: "재료가 절반만 있네요!", Color: "#F59E0B", Background: "#FFFBEB"},
	recommend.SeverityNegative: {Text: "재료가 부족해요!", Color: "#EF4444", Background: "#FEF2F2"},
}

var difficultyTexts = map[string]string{
	"easy":   "쉬움",
	"normal": "보통",
	"hard":   "어려움",
}

// NewBadgeView styles a badge for display.
func NewBadgeView(b recommend.Badge) BadgeView {
	v := badgeStyles[b.Severity]
	v.Label = b.Label
	v.Severity = b.Severity
	return v
}

// RecommendationView is one ranked recipe as returned by the API and
// rendered by the recommendations page.
type RecommendationView struct {
	Rank               int                       `json:"rank"`
	ID                 string                    `json:"id"`
	Name               string                    `json:"name"`
	ImageURL           string                    `json:"imageUrl"`
	Difficulty         int                       `json:"difficulty"`
	DifficultyLabel    string                    `json:"difficultyLabel"`
	DifficultyText     string                    `json:"difficultyText"`
	CookingTime        int                       `json:"cookingTime"`
	Servings           int                       `json:"servings"`
	UserName           string                    `json:"userName"`
	Ingredients        []models.RecipeIngredient `json:"ingredients"`
	AvailableCount     int                       `json:"availableCount"`
	TotalCount         int                       `json:"totalCount"`
	Percentage         int                       `json:"percentage"`
	Badge              BadgeView                 `json:"badge"`
	MissingIngredients []models.RecipeIngredient `json:"missingIngredients"`
}

// MainIngredients returns up to the first four ingredient names.
func (v RecommendationView) MainIngredients() []string {
	n := min(len(v.Ingredients), 4)
	names := make([]string, 0, n)
	for _, ing := range v.Ingredients[:n] {
		names = append(names, ing.Name)
	}
	return names
}

// MissingNames returns the names of missing ingredients.
func (v RecommendationView) MissingNames() []string {
	names := make([]string, 0, len(v.MissingIngredients))
	for _, ing := range v.MissingIngredients {
		names = append(names, ing.Name)
	}
	return names
}

// newRecommendationViews decorates ranked results for presentation.
func newRecommendationViews(results []recommend.AvailabilityResult, th recommend.Thresholds) []RecommendationView {
	views := make([]RecommendationView, 0, len(results))
	for i, res := range results {
		label := models.DifficultyLabel(res.Recipe.Difficulty)
		views = append(views, RecommendationView{
			Rank:               i + 1,
			ID:                 res.Recipe.ID,
			Name:               res.Recipe.Name,
			ImageURL:           res.Recipe.ImageURL,
			Difficulty:         res.Recipe.Difficulty,
			DifficultyLabel:    label,
			DifficultyText:     difficultyTexts[label],
			CookingTime:        res.Recipe.CookingTime,
			Servings:           res.Recipe.Servings,
			UserName:           res.Recipe.UserName,
			Ingredients:        res.Recipe.Ingredients,
			AvailableCount:     res.AvailableCount,
			TotalCount:         res.TotalCount,
			Percentage:         res.Percentage,
			Badge:              NewBadgeView(recommend.ClassifyAvailability(res.Percentage, th)),
			MissingIngredients: res.MissingIngredients,
		})
	}
	return views
}

// percentages extracts availability percentages for metrics.
func percentages(views []RecommendationView) []int {
	out := make([]int, len(views))
	for i, v := range views {
		out[i] = v.Percentage
	}
	return out
}
