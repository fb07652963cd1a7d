/* Copyright © 2025-2026 Aarush Chugh. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package pairing

import "errors"

// Typed failures returned by the engine. All are recoverable by the caller
// except ErrInsufficientPlayers, which is fatal for the round.
var (
	// ErrInsufficientPlayers: fewer than 2 active players remain.
	ErrInsufficientPlayers = errors.New("insufficient players")

	// ErrUnresolvableBye: the pool is odd and every eligible player has
	// already received a forced bye; the director must intervene.
	ErrUnresolvableBye = errors.New("unresolvable bye")

	// ErrUnresolvableMatching: no legal pairing set exists under the
	// no-rematch constraint even after floating every bracket. The caller
	// may retry with Config.AllowRematch set, or pair manually.
	ErrUnresolvableMatching = errors.New("unresolvable matching")

	// ErrInvalidByeConfig: a bye declaration conflicts with the roster,
	// e.g. a withdrawn or unknown player is intentionally byed.
	ErrInvalidByeConfig = errors.New("invalid bye configuration")

	// ErrManualOverride: a caller-submitted pairing set violates a
	// per-round invariant; the wrapped message names the invariant.
	ErrManualOverride = errors.New("invalid manual pairing")

	// ErrInvalidRoster: the supplied roster is internally inconsistent
	// (duplicate IDs, history length mismatch).
	ErrInvalidRoster = errors.New("invalid roster")
)
