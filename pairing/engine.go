/* Copyright © 2025-2026 Aarush Chugh. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package pairing

import "fmt"

// PairRound generates one round's pairings and byes. It is a pure function
// of the request: it never mutates the supplied roster, holds no state
// between invocations, and is safe to call concurrently for different
// sections. Callers must serialize invocations for the same section and
// round themselves.
func PairRound(req Request) (*Result, error) {
	cfg := fillConfig(req.Config)

	if err := validateRoster(req); err != nil {
		return nil, err
	}

	active := make([]Player, 0, len(req.Players))
	for _, p := range req.Players {
		if p.Active {
			active = append(active, p)
		}
	}
	if len(active) < 2 {
		return nil, fmt.Errorf("%w: %d active player(s) for round %d",
			ErrInsufficientPlayers, len(active), req.Round)
	}

	pool, byes, err := assignByes(active, req.Round, cfg)
	if err != nil {
		return nil, err
	}

	var pairs [][2]Player
	var warns []Warning
	switch cfg.Format {
	case FormatQuadRoundRobin:
		pairs, warns, err = pairQuads(pool, req.Round, cfg)
	default:
		pairs, warns, err = pairSwiss(pool, req.Round, cfg)
	}
	if err != nil {
		return nil, err
	}

	res := &Result{Byes: byes, Warnings: warns}
	for i, pr := range pairs {
		white, black := allocateColors(pr[0], pr[1], cfg, &res.Warnings)
		res.Pairings = append(res.Pairings, Pairing{
			Round: req.Round,
			Board: i + 1,
			White: white.ID,
			Black: black.ID,
		})
	}

	return res, nil
}

// fillConfig substitutes defaults for zero-valued tunables so a partially
// populated Config behaves like DefaultConfig.
func fillConfig(cfg Config) Config {
	def := DefaultConfig()
	if cfg.IntentionalByePoints == 0 {
		cfg.IntentionalByePoints = def.IntentionalByePoints
	}
	if cfg.ForcedByePoints == 0 {
		cfg.ForcedByePoints = def.ForcedByePoints
	}
	if cfg.MaxColorImbalance == 0 {
		cfg.MaxColorImbalance = def.MaxColorImbalance
	}
	if cfg.QuadSize == 0 {
		cfg.QuadSize = def.QuadSize
	}
	return cfg
}

// validateRoster rejects rosters the engine cannot pair deterministically:
// duplicate or empty IDs and history lists whose length disagrees with the
// number of completed rounds.
func validateRoster(req Request) error {
	if req.Round < 1 {
		return fmt.Errorf("%w: round %d", ErrInvalidRoster, req.Round)
	}
	completed := req.Round - 1
	seen := make(map[string]bool, len(req.Players))
	for _, p := range req.Players {
		if p.ID == "" {
			return fmt.Errorf("%w: player with empty ID", ErrInvalidRoster)
		}
		if seen[p.ID] {
			return fmt.Errorf("%w: duplicate player ID %q", ErrInvalidRoster, p.ID)
		}
		seen[p.ID] = true
		if len(p.Opponents) != len(p.Colors) {
			return fmt.Errorf("%w: %q has %d opponents but %d colors",
				ErrInvalidRoster, p.ID, len(p.Opponents), len(p.Colors))
		}
		if len(p.Opponents) != completed {
			return fmt.Errorf("%w: %q has history for %d rounds, expected %d",
				ErrInvalidRoster, p.ID, len(p.Opponents), completed)
		}
	}
	return nil
}

// ValidateManual checks a director-submitted pairing set against the
// per-round invariants before the caller accepts it as authoritative. The
// engine does not re-derive pairings here; it only rejects sets that break
// an invariant, naming the violated invariant in the error.
func ValidateManual(req Request, pairings []Pairing, byes []Bye) error {
	players := make(map[string]Player, len(req.Players))
	for _, p := range req.Players {
		players[p.ID] = p
	}

	seen := make(map[string]bool)
	book := func(id, role string) error {
		p, ok := players[id]
		if !ok {
			return fmt.Errorf("%w: %s %q is not on the roster", ErrManualOverride, role, id)
		}
		if !p.Active {
			return fmt.Errorf("%w: %s %q is withdrawn", ErrManualOverride, role, id)
		}
		if seen[id] {
			return fmt.Errorf("%w: %q is double-booked", ErrManualOverride, id)
		}
		seen[id] = true
		return nil
	}

	for _, pr := range pairings {
		if pr.Round != req.Round {
			return fmt.Errorf("%w: pairing on board %d is for round %d, not %d",
				ErrManualOverride, pr.Board, pr.Round, req.Round)
		}
		if pr.White == pr.Black {
			return fmt.Errorf("%w: %q is paired against themselves", ErrManualOverride, pr.White)
		}
		if err := book(pr.White, "white player"); err != nil {
			return err
		}
		if err := book(pr.Black, "black player"); err != nil {
			return err
		}
	}
	for _, b := range byes {
		if err := book(b.PlayerID, "bye recipient"); err != nil {
			return err
		}
	}

	for _, p := range req.Players {
		if p.Active && !seen[p.ID] {
			return fmt.Errorf("%w: active player %q is neither paired nor byed",
				ErrManualOverride, p.ID)
		}
	}

	return nil
}
