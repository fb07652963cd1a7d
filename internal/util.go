/* Copyright © 2025-2026 Aarush Chugh. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"fmt"
	"math"
	"time"

	"github.com/araddon/dateparse"
)

// ParseDateOrZero returns a parsed time or zero if input is empty or "null".
func ParseDateOrZero(s string) (time.Time, error) {
	if s == "" || s == "null" {
		return time.Time{}, nil
	}
	return dateparse.ParseAny(s)
}

// ScoreToString renders a chess score with the conventional half-point
// glyph: 0 -> "0", 0.5 -> "½", 3.5 -> "3½", 4.0 -> "4".
func ScoreToString(score float64) string {
	whole := math.Floor(score)
	if frac := score - whole; frac >= 0.25 && frac < 0.75 {
		if whole == 0 {
			return "½"
		}
		return fmt.Sprintf("%d½", int(whole))
	}
	return fmt.Sprintf("%d", int(math.Round(score)))
}
