// Fridgechef - Pantry Tracking and Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fridgechef

// Package validation provides request validation using go-playground/validator v10.
//
// A thread-safe singleton validator is created on first use. Field names in
// errors come from json tags, so messages match what clients sent.
//
// # Usage
//
//	var req validation.CreatePantryItemRequest
//	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
//	    // handle decode error
//	}
//	req.Normalize()
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    // respond 400 with apiErr
//	}
//
// # Custom Tags
//
//   - notblank: string must be non-empty after trimming whitespace
//   - calendardate: YYYY-MM-DD or RFC3339 date (combine with omitempty)
//
// When any required value is missing, ToAPIError uses MessageRequiredMissing
// as the top-level message and lists every failing field in Details["fields"].
package validation
