/* Copyright © 2025-2026 Aarush Chugh. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package pairing

import "fmt"

// allocateColors finalizes one pairing. Priority: the player with the lower
// color balance (fewer whites) takes white; equal balances give white to the
// higher rating; equal ratings give white to whoever held black more
// recently. A player at or beyond the configured imbalance magnitude is
// forced to their due color first; when both players are forced to the same
// color the normal ranking decides and a color violation is warned.
func allocateColors(a, b Player, cfg Config, warns *[]Warning) (white, black Player) {
	balA, balB := a.colorBalance(), b.colorBalance()

	forcedA := forcedColor(balA, cfg.MaxColorImbalance)
	forcedB := forcedColor(balB, cfg.MaxColorImbalance)

	switch {
	case forcedA != NoColor && forcedB != NoColor && forcedA == forcedB:
		*warns = append(*warns, Warning{
			Kind:      WarnColorViolation,
			PlayerIDs: []string{a.ID, b.ID},
			Detail: fmt.Sprintf("%s and %s are both due %v; one imbalance worsens",
				a.ID, b.ID, forcedA),
		})
	case forcedA == White, forcedB == Black:
		return a, b
	case forcedA == Black, forcedB == White:
		return b, a
	}

	if balA != balB {
		if balA < balB {
			return a, b
		}
		return b, a
	}
	if a.Rating != b.Rating {
		if a.Rating > b.Rating {
			return a, b
		}
		return b, a
	}
	if la, lb := a.lastBlackRound(), b.lastBlackRound(); la != lb {
		if la > lb {
			return a, b
		}
		return b, a
	}
	// identical histories; fall back to ID order for determinism
	if a.ID < b.ID {
		return a, b
	}
	return b, a
}

// forcedColor returns the color a player must receive when their balance has
// reached the maximum imbalance magnitude, or NoColor otherwise.
func forcedColor(balance, maxImbalance int) Color {
	if maxImbalance <= 0 {
		maxImbalance = 2
	}
	if balance >= maxImbalance {
		return Black
	}
	if balance <= -maxImbalance {
		return White
	}
	return NoColor
}
