/* Copyright © 2025-2026 Aarush Chugh. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package pairing

import "fmt"

// byedThisRound reports whether the player has an intentional bye declared
// for the given round, either on the Player itself or in the config map.
func byedThisRound(p Player, round int, cfg Config) bool {
	if p.ByeRounds[round] {
		return true
	}
	for _, r := range cfg.IntentionalByes[p.ID] {
		if r == round {
			return true
		}
	}
	return false
}

// assignByes removes intentional byes from the pairing pool and, if the
// remainder is odd, selects one forced bye: the lowest-rated player in the
// lowest score bracket who has not yet had one, searching upward through
// brackets on exhaustion. Intentional and forced byes carry their own
// configured point values.
func assignByes(players []Player, round int, cfg Config) (pool []Player, byes []Bye, err error) {
	known := make(map[string]bool, len(players))
	for _, p := range players {
		known[p.ID] = true
	}
	for id := range cfg.IntentionalByes {
		if !known[id] {
			return nil, nil, fmt.Errorf("%w: intentional bye declared for unknown player %q",
				ErrInvalidByeConfig, id)
		}
	}

	for _, p := range players {
		if byedThisRound(p, round, cfg) {
			if !p.Active {
				return nil, nil, fmt.Errorf("%w: player %q is both withdrawn and intentionally byed for round %d",
					ErrInvalidByeConfig, p.ID, round)
			}
			byes = append(byes, Bye{
				PlayerID: p.ID,
				Kind:     ByeIntentional,
				Points:   cfg.IntentionalByePoints,
			})
			continue
		}
		pool = append(pool, p)
	}

	if len(pool)%2 == 0 {
		return pool, byes, nil
	}

	idx := forcedByeIndex(pool)
	if idx < 0 {
		return nil, nil, fmt.Errorf("%w: every player in the pool has already received a forced bye",
			ErrUnresolvableBye)
	}
	byes = append(byes, Bye{
		PlayerID: pool[idx].ID,
		Kind:     ByeForced,
		Points:   cfg.ForcedByePoints,
	})
	pool = append(pool[:idx], pool[idx+1:]...)

	return pool, byes, nil
}

// forcedByeIndex picks the forced-bye recipient from the pool: lowest score
// bracket first, lowest rating within it, skipping anyone who already had a
// forced bye. Returns -1 when everyone has.
func forcedByeIndex(pool []Player) int {
	brackets := buildBrackets(pool)
	for bi := len(brackets) - 1; bi >= 0; bi-- {
		br := brackets[bi]
		// scan from the bottom of the bracket (lowest rating) upward
		for pi := len(br.players) - 1; pi >= 0; pi-- {
			cand := br.players[pi]
			if cand.ForcedByeRound != 0 {
				continue
			}
			for i, p := range pool {
				if p.ID == cand.ID {
					return i
				}
			}
		}
	}
	return -1
}
