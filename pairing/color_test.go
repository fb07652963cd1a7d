/* Copyright © 2025-2026 Aarush Chugh. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package pairing

import (
	"testing"
)

// TestAllocateColors verifies the color priority ladder.
func TestAllocateColors(t *testing.T) {
	cases := []struct {
		name      string
		a, b      Player
		wantWhite string
	}{
		{
			name:      "lower balance takes white",
			a:         Player{ID: "a", Rating: 2000, Colors: []Color{White, NoColor}},
			b:         Player{ID: "b", Rating: 1500, Colors: []Color{White, Black}},
			wantWhite: "b",
		},
		{
			name:      "equal balance, higher rating takes white",
			a:         Player{ID: "a", Rating: 1500, Colors: []Color{White, Black}},
			b:         Player{ID: "b", Rating: 2000, Colors: []Color{Black, White}},
			wantWhite: "b",
		},
		{
			name:      "equal balance and rating, more recent black takes white",
			a:         Player{ID: "a", Rating: 1800, Colors: []Color{Black, White}},
			b:         Player{ID: "b", Rating: 1800, Colors: []Color{White, Black}},
			wantWhite: "b",
		},
		{
			name:      "no history falls back to ID order",
			a:         Player{ID: "b", Rating: 1800},
			b:         Player{ID: "a", Rating: 1800},
			wantWhite: "a",
		},
		{
			name: "imbalance cap forces due color over rating",
			a:    Player{ID: "a", Rating: 2000, Colors: []Color{White, White}},
			b:    Player{ID: "b", Rating: 1500, Colors: []Color{White, Black}},
			// a is at +2 and must take black despite the higher rating
			wantWhite: "b",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var warns []Warning
			white, black := allocateColors(c.a, c.b, DefaultConfig(), &warns)
			if white.ID != c.wantWhite {
				t.Errorf("%s: white = %q; want %q", c.name, white.ID, c.wantWhite)
			}
			if black.ID == white.ID {
				t.Errorf("%s: black = white = %q", c.name, black.ID)
			}
			if len(warns) != 0 {
				t.Errorf("%s: warnings = %v; want none", c.name, warns)
			}
		})
	}
}

// TestAllocateColorsBothForced verifies the color violation warning when
// both players are at the imbalance cap for the same color.
func TestAllocateColorsBothForced(t *testing.T) {
	a := Player{ID: "a", Rating: 2000, Colors: []Color{White, White}}
	b := Player{ID: "b", Rating: 1500, Colors: []Color{White, White}}

	var warns []Warning
	white, _ := allocateColors(a, b, DefaultConfig(), &warns)

	if len(warns) != 1 || warns[0].Kind != WarnColorViolation {
		t.Fatalf("warnings = %v; want one color violation", warns)
	}
	// equal balances fall through to the rating rule
	if white.ID != "a" {
		t.Errorf("white = %q; want a", white.ID)
	}
}

// TestDueColor verifies the due-color rules including the alternation
// fallback on even balances.
func TestDueColor(t *testing.T) {
	cases := []struct {
		name   string
		colors []Color
		want   Color
	}{
		{name: "no history", colors: nil, want: NoColor},
		{name: "more blacks", colors: []Color{Black, White, Black}, want: White},
		{name: "more whites", colors: []Color{White, Black, White}, want: Black},
		{name: "even, alternate from last", colors: []Color{Black, White}, want: Black},
		{name: "even, skip bye rounds", colors: []Color{White, Black, NoColor}, want: White},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := Player{ID: "p", Colors: c.colors}
			if got := p.dueColor(); got != c.want {
				t.Errorf("%s: dueColor() = %v; want %v", c.name, got, c.want)
			}
		})
	}
}
