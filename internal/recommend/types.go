// Fridgechef - Pantry Tracking and Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fridgechef

package recommend

import (
	"github.com/tomtom215/fridgechef/internal/models"
)

// DefaultTopK is the number of recipes recommended when the caller does not choose.
const DefaultTopK = 3

// Default badge thresholds, in percent. Lower bounds are inclusive.
const (
	DefaultFullThreshold = 80
	DefaultHalfThreshold = 50
)

// AvailabilityResult decorates a recipe with how much of it the pantry covers.
//
// AvailableCount + len(MissingIngredients) == TotalCount == len(Recipe.Ingredients).
type AvailabilityResult struct {
	Recipe             models.Recipe             `json:"recipe"`
	AvailableCount     int                       `json:"availableCount"`
	TotalCount         int                       `json:"totalCount"`
	Percentage         int                       `json:"percentage"`
	MissingIngredients []models.RecipeIngredient `json:"missingIngredients"`
}

// Severity is the presentation tone of a badge.
type Severity string

// Badge severities
const (
	SeverityPositive Severity = "positive"
	SeverityWarning  Severity = "warning"
	SeverityNegative Severity = "negative"
)

// Badge labels
const (
	LabelFullyAvailable = "fully available"
	LabelHalfAvailable  = "half available"
	LabelInsufficient   = "insufficient"
)

// Badge is the availability classification shown next to a recommendation.
type Badge struct {
	Label    string   `json:"label"`
	Severity Severity `json:"severity"`
}

// Thresholds are the inclusive lower bounds of the full and half badge bands.
type Thresholds struct {
	Full int `json:"full"`
	Half int `json:"half"`
}

// DefaultThresholds returns the 80/50 thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{Full: DefaultFullThreshold, Half: DefaultHalfThreshold}
}
