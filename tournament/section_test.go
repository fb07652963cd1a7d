/* Copyright © 2025-2026 Aarush Chugh. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tournament

import (
	"context"
	"sort"
	"testing"
)

// TestSectionSorter verifies display ordering of section names.
func TestSectionSorter(t *testing.T) {
	cases := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "open first then U descending",
			in:   []string{"U1200", "Open", "U1800", "U1500"},
			want: []string{"Open", "U1800", "U1500", "U1200"},
		},
		{
			name: "championship before U sections",
			in:   []string{"U1600", "Championship", "Novice"},
			want: []string{"Championship", "U1600", "Novice"},
		},
		{
			name: "others lexicographic",
			in:   []string{"Reserve", "Amateur"},
			want: []string{"Amateur", "Reserve"},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := append([]string(nil), c.in...)
			sort.Sort(SectionSorter(got))
			for i := range c.want {
				if got[i] != c.want[i] {
					t.Errorf("%s: got %v; want %v", c.name, got, c.want)
					break
				}
			}
		})
	}
}

// TestPairNextRound verifies the per-section fan-out pairs every section of
// a fresh event and that applying the results advances each section.
func TestPairNextRound(t *testing.T) {
	st := &State{
		Name: "Club Swiss",
		Sections: []Section{
			{
				Name:   "Open",
				Format: "swiss",
				Players: []Player{
					{ID: "a", Name: "Alice", Rating: 2000},
					{ID: "b", Name: "Bob", Rating: 1900},
					{ID: "c", Name: "Carol", Rating: 1800},
					{ID: "d", Name: "Dan", Rating: 1700},
				},
			},
			{
				Name:   "U1600",
				Format: "quad-round-robin",
				Players: []Player{
					{ID: "e", Name: "Eve", Rating: 1500},
					{ID: "f", Name: "Frank", Rating: 1400},
					{ID: "g", Name: "Grace", Rating: 1300},
					{ID: "h", Name: "Heidi", Rating: 1200},
				},
			},
		},
	}

	results, err := PairNextRound(context.Background(), st, DefaultProfile())
	if err != nil {
		t.Fatalf("PairNextRound: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("len(results) = %d; want 2", len(results))
	}
	for name, res := range results {
		if len(res.Pairings) != 2 {
			t.Errorf("%s: len(pairings) = %d; want 2", name, len(res.Pairings))
		}
		if len(res.Byes) != 0 {
			t.Errorf("%s: byes = %v; want none", name, res.Byes)
		}
	}

	ApplyAll(st, results)
	for _, sec := range st.Sections {
		if sec.NextRound() != 2 {
			t.Errorf("%s: NextRound = %d; want 2", sec.Name, sec.NextRound())
		}
	}
}

// TestPairSectionSurfacesErrors verifies engine failures propagate with the
// section named.
func TestPairSectionSurfacesErrors(t *testing.T) {
	sec := &Section{
		Name:   "Open",
		Format: "swiss",
		Players: []Player{
			{ID: "a", Name: "Alice", Rating: 2000},
			{ID: "b", Name: "Bob", Rating: 1900, Withdrawn: true},
		},
	}
	if _, err := PairSection(sec, DefaultProfile()); err == nil {
		t.Errorf("PairSection paired a one-player section")
	}
}
