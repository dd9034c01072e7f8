// Fridgechef - Pantry Tracking and Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fridgechef

package recommend

// ClassifyAvailability maps a percentage onto a badge:
//
//	pct >= th.Full            fully available (positive)
//	th.Half <= pct < th.Full  half available (warning)
//	pct < th.Half             insufficient (negative)
func ClassifyAvailability(pct int, th Thresholds) Badge {
	switch {
	case pct >= th.Full:
		return Badge{Label: LabelFullyAvailable, Severity: SeverityPositive}
	case pct >= th.Half:
		return Badge{Label: LabelHalfAvailable, Severity: SeverityWarning}
	default:
		return Badge{Label: LabelInsufficient, Severity: SeverityNegative}
	}
}
