/* Copyright © 2025-2026 Aarush Chugh. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package pairing

import (
	"errors"
	"testing"
)

// TestMatchGroupDutchFold verifies the fold preference: the top player
// meets the top of the bottom half.
func TestMatchGroupDutchFold(t *testing.T) {
	group := []Player{
		{ID: "a", Rating: 2000},
		{ID: "b", Rating: 1900},
		{ID: "c", Rating: 1800},
		{ID: "d", Rating: 1700},
	}
	var warns []Warning
	pairs, leftover := matchGroup(group, Config{Variant: VariantDutch}, &warns)

	if len(leftover) != 0 {
		t.Fatalf("leftover = %v; want none", leftover)
	}
	if len(pairs) != 2 {
		t.Fatalf("len(pairs) = %d; want 2", len(pairs))
	}
	if pairs[0][0].ID != "a" || pairs[0][1].ID != "c" {
		t.Errorf("pairs[0] = %s-%s; want a-c", pairs[0][0].ID, pairs[0][1].ID)
	}
	if pairs[1][0].ID != "b" || pairs[1][1].ID != "d" {
		t.Errorf("pairs[1] = %s-%s; want b-d", pairs[1][0].ID, pairs[1][1].ID)
	}
}

// TestMatchGroupBurstein verifies the rating-closest preference.
func TestMatchGroupBurstein(t *testing.T) {
	group := []Player{
		{ID: "a", Rating: 2000},
		{ID: "b", Rating: 1990},
		{ID: "c", Rating: 1500},
		{ID: "d", Rating: 1490},
	}
	var warns []Warning
	pairs, leftover := matchGroup(group, Config{Variant: VariantBurstein}, &warns)

	if len(leftover) != 0 {
		t.Fatalf("leftover = %v; want none", leftover)
	}
	if pairs[0][0].ID != "a" || pairs[0][1].ID != "b" {
		t.Errorf("pairs[0] = %s-%s; want a-b", pairs[0][0].ID, pairs[0][1].ID)
	}
	if pairs[1][0].ID != "c" || pairs[1][1].ID != "d" {
		t.Errorf("pairs[1] = %s-%s; want c-d", pairs[1][0].ID, pairs[1][1].ID)
	}
}

// TestMatchGroupAvoidsRematch verifies the no-rematch hard constraint
// reroutes the fold preference.
func TestMatchGroupAvoidsRematch(t *testing.T) {
	group := []Player{
		{ID: "a", Rating: 2000, Opponents: []string{"c"}, Colors: []Color{White}},
		{ID: "b", Rating: 1900, Opponents: []string{"d"}, Colors: []Color{White}},
		{ID: "c", Rating: 1800, Opponents: []string{"a"}, Colors: []Color{Black}},
		{ID: "d", Rating: 1700, Opponents: []string{"b"}, Colors: []Color{Black}},
	}
	var warns []Warning
	pairs, leftover := matchGroup(group, Config{}, &warns)

	if len(leftover) != 0 {
		t.Fatalf("leftover = %v; want none", leftover)
	}
	for _, pr := range pairs {
		if pr[0].hasPlayed(pr[1].ID) {
			t.Errorf("rematch paired: %s-%s", pr[0].ID, pr[1].ID)
		}
	}
	if len(warns) != 0 {
		t.Errorf("warnings = %v; want none", warns)
	}
}

// TestPairSwissFloat verifies an odd bracket floats its weakest player down
// and reports it.
func TestPairSwissFloat(t *testing.T) {
	pool := []Player{
		{ID: "a", Rating: 2000, Score: 1.0},
		{ID: "b", Rating: 1900, Score: 1.0},
		{ID: "c", Rating: 1800, Score: 1.0},
		{ID: "d", Rating: 1700, Score: 0.0},
		{ID: "e", Rating: 1600, Score: 0.0},
		{ID: "f", Rating: 1500, Score: 0.0},
	}

	pairs, warns, err := pairSwiss(pool, 2, DefaultConfig())
	if err != nil {
		t.Fatalf("pairSwiss: %v", err)
	}
	if len(pairs) != 3 {
		t.Fatalf("len(pairs) = %d; want 3", len(pairs))
	}

	var floats []Warning
	for _, w := range warns {
		if w.Kind == WarnFloat {
			floats = append(floats, w)
		}
	}
	if len(floats) != 1 {
		t.Fatalf("float warnings = %d; want 1", len(floats))
	}
	// c is the weakest in the odd top bracket
	if floats[0].PlayerIDs[0] != "c" {
		t.Errorf("floated %q; want c", floats[0].PlayerIDs[0])
	}
}

// TestPairSwissFloaterRotation verifies a player who floated in the prior
// round is not chosen again while an alternative exists.
func TestPairSwissFloaterRotation(t *testing.T) {
	pool := []Player{
		{ID: "a", Rating: 2000, Score: 1.0},
		{ID: "b", Rating: 1900, Score: 1.0},
		{ID: "c", Rating: 1800, Score: 1.0, FloatCount: 1, LastFloatRound: 2},
		{ID: "d", Rating: 1700, Score: 0.0},
		{ID: "e", Rating: 1600, Score: 0.0},
		{ID: "f", Rating: 1500, Score: 0.0},
	}

	_, warns, err := pairSwiss(pool, 3, DefaultConfig())
	if err != nil {
		t.Fatalf("pairSwiss: %v", err)
	}
	for _, w := range warns {
		if w.Kind == WarnFloat && w.PlayerIDs[0] == "c" {
			t.Errorf("c floated twice in a row; want b floated instead")
		}
	}
}

// TestPairSwissUnresolvable verifies the rematch relaxation step: a stuck
// matching is a typed error by default and a warned rematch with
// AllowRematch set.
func TestPairSwissUnresolvable(t *testing.T) {
	pool := []Player{
		{ID: "a", Rating: 2000, Score: 1.0, Opponents: []string{"b"}, Colors: []Color{White}},
		{ID: "b", Rating: 1900, Score: 0.0, Opponents: []string{"a"}, Colors: []Color{Black}},
	}

	_, _, err := pairSwiss(pool, 2, DefaultConfig())
	if !errors.Is(err, ErrUnresolvableMatching) {
		t.Fatalf("pairSwiss error = %v; want %v", err, ErrUnresolvableMatching)
	}

	cfg := DefaultConfig()
	cfg.AllowRematch = true
	pairs, warns, err := pairSwiss(pool, 2, cfg)
	if err != nil {
		t.Fatalf("pairSwiss with AllowRematch: %v", err)
	}
	if len(pairs) != 1 {
		t.Fatalf("len(pairs) = %d; want 1", len(pairs))
	}
	found := false
	for _, w := range warns {
		if w.Kind == WarnRematch {
			found = true
		}
	}
	if !found {
		t.Errorf("no rematch warning reported for a repeated pairing")
	}
}
