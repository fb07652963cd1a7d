/* Copyright © 2025-2026 Aarush Chugh. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package pairing

import (
	"errors"
	"fmt"
	"testing"
)

// TestRoundRobinCycle verifies every pair of a quad meets exactly once over
// a full three-round cycle.
func TestRoundRobinCycle(t *testing.T) {
	group := []Player{
		{ID: "a", Rating: 2000},
		{ID: "b", Rating: 1900},
		{ID: "c", Rating: 1800},
		{ID: "d", Rating: 1700},
	}

	met := make(map[string]int)
	for round := 1; round <= 3; round++ {
		pairs, err := roundRobinPairs(group, round)
		if err != nil {
			t.Fatalf("round %d: %v", round, err)
		}
		if len(pairs) != 2 {
			t.Fatalf("round %d: len(pairs) = %d; want 2", round, len(pairs))
		}
		for _, pr := range pairs {
			x, y := pr[0].ID, pr[1].ID
			if y < x {
				x, y = y, x
			}
			met[x+"-"+y]++
		}
	}

	if len(met) != 6 {
		t.Fatalf("distinct pairs = %d; want 6 (%v)", len(met), met)
	}
	for pair, n := range met {
		if n != 1 {
			t.Errorf("pair %s met %d times; want 1", pair, n)
		}
	}
}

// TestQuadFullEvent simulates a complete quad through PairRound, feeding
// each round's results back into the histories. Every player must face all
// three others and end within one game of color parity.
func TestQuadFullEvent(t *testing.T) {
	players := []Player{
		{ID: "a", Rating: 2000, Active: true},
		{ID: "b", Rating: 1900, Active: true},
		{ID: "c", Rating: 1800, Active: true},
		{ID: "d", Rating: 1700, Active: true},
	}
	cfg := DefaultConfig()
	cfg.Format = FormatQuadRoundRobin

	byID := func(id string) *Player {
		for i := range players {
			if players[i].ID == id {
				return &players[i]
			}
		}
		t.Fatalf("unknown player %q", id)
		return nil
	}

	for round := 1; round <= 3; round++ {
		res, err := PairRound(Request{Round: round, Players: players, Config: cfg})
		if err != nil {
			t.Fatalf("round %d: %v", round, err)
		}
		if len(res.Byes) != 0 {
			t.Fatalf("round %d byes = %v; want none", round, res.Byes)
		}
		if len(res.Pairings) != 2 {
			t.Fatalf("round %d len(pairings) = %d; want 2", round, len(res.Pairings))
		}
		for _, w := range res.Warnings {
			if w.Kind == WarnRematch {
				t.Errorf("round %d: unexpected rematch %v", round, w.PlayerIDs)
			}
		}
		// record the round; white wins every game for determinism
		for _, pr := range res.Pairings {
			w, b := byID(pr.White), byID(pr.Black)
			w.Opponents = append(w.Opponents, b.ID)
			w.Colors = append(w.Colors, White)
			w.Score += 1
			b.Opponents = append(b.Opponents, w.ID)
			b.Colors = append(b.Colors, Black)
		}
	}

	for _, p := range players {
		if len(p.Opponents) != 3 {
			t.Errorf("%s played %d games; want 3", p.ID, len(p.Opponents))
		}
		seen := make(map[string]bool)
		for _, o := range p.Opponents {
			if seen[o] {
				t.Errorf("%s faced %s twice", p.ID, o)
			}
			seen[o] = true
		}
		if bal := p.colorBalance(); bal < -1 || bal > 1 {
			t.Errorf("%s color balance = %d; want within ±1", p.ID, bal)
		}
	}
}

// TestQuadMergeShortGroup verifies a trailing short group merges into the
// previous one rather than forming an unpairable remainder.
func TestQuadMergeShortGroup(t *testing.T) {
	var pool []Player
	for i := 0; i < 6; i++ {
		pool = append(pool, Player{
			ID:     fmt.Sprintf("p%d", i),
			Rating: 2000 - i*50,
			Active: true,
		})
	}

	pairs, warns, err := pairQuads(pool, 1, DefaultConfig())
	if err != nil {
		t.Fatalf("pairQuads: %v", err)
	}
	// one merged six-player group: three boards
	if len(pairs) != 3 {
		t.Errorf("len(pairs) = %d; want 3", len(pairs))
	}
	if len(warns) != 0 {
		t.Errorf("warnings = %v; want none", warns)
	}
}

// TestRoundRobinGroupErrors verifies the typed errors for degenerate groups.
func TestRoundRobinGroupErrors(t *testing.T) {
	_, err := roundRobinPairs([]Player{{ID: "a"}}, 1)
	if !errors.Is(err, ErrInsufficientPlayers) {
		t.Errorf("single player error = %v; want %v", err, ErrInsufficientPlayers)
	}

	odd := []Player{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	_, err = roundRobinPairs(odd, 1)
	if !errors.Is(err, ErrInvalidRoster) {
		t.Errorf("odd group error = %v; want %v", err, ErrInvalidRoster)
	}
}
