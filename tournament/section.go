/* Copyright © 2025-2026 Aarush Chugh. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tournament

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/chughjug/ratings-pairing/pairing"
)

// SectionSorter implements sort.Interface for display section ordering.
// Order: "Open" first, then "Championship", then U<Number> sections
// descending by number, then others lexicographically.
type SectionSorter []string

func (s SectionSorter) Len() int { return len(s) }

func (s SectionSorter) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

func (s SectionSorter) Less(i, j int) bool {
	a, b := s[i], s[j]
	if a == "Open" && b != "Open" {
		return true
	}
	if b == "Open" && a != "Open" {
		return false
	}
	if a == "Championship" && b != "Championship" {
		return true
	}
	if b == "Championship" && a != "Championship" {
		return false
	}
	ua, ub := strings.HasPrefix(a, "U"), strings.HasPrefix(b, "U")
	// Both U-sections: compare numeric suffix descending
	if ua && ub {
		ai, errA := strconv.Atoi(strings.TrimPrefix(a, "U"))
		bi, errB := strconv.Atoi(strings.TrimPrefix(b, "U"))
		if errA == nil && errB == nil {
			return ai > bi
		}
	}
	// U-sections before non-U (after Championship)
	if ua != ub {
		return ua
	}
	return a < b
}

// SortedSectionNames returns the state's section names in display order.
func (st *State) SortedSectionNames() []string {
	names := make([]string, 0, len(st.Sections))
	for _, sec := range st.Sections {
		names = append(names, sec.Name)
	}
	sort.Sort(SectionSorter(names))
	return names
}

// SectionByName finds a section, or nil.
func (st *State) SectionByName(name string) *Section {
	for i := range st.Sections {
		if st.Sections[i].Name == name {
			return &st.Sections[i]
		}
	}
	return nil
}

// PairSection generates the next round for one section without mutating it.
func PairSection(sec *Section, prof *Profile) (*pairing.Result, error) {
	roster, err := sec.Roster()
	if err != nil {
		return nil, err
	}
	cfg, err := prof.EngineConfig(sec)
	if err != nil {
		return nil, err
	}
	res, err := pairing.PairRound(pairing.Request{
		Round:   sec.NextRound(),
		Players: roster,
		Config:  cfg,
	})
	if err != nil {
		return nil, fmt.Errorf("section %q: %w", sec.Name, err)
	}
	return res, nil
}

// PairNextRound pairs every section concurrently. Sections are independent
// so they fan out; the state itself is only read here. On success the
// returned map holds one result per section name; callers record them with
// ApplyResult.
func PairNextRound(ctx context.Context, st *State, prof *Profile) (map[string]*pairing.Result, error) {
	var (
		mu      sync.Mutex
		results = make(map[string]*pairing.Result, len(st.Sections))
	)
	g, _ := errgroup.WithContext(ctx)

	for i := range st.Sections {
		sec := &st.Sections[i]
		g.Go(func() error {
			res, err := PairSection(sec, prof)
			if err != nil {
				return err
			}

			mu.Lock()
			results[sec.Name] = res
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// ApplyAll records every section's generated round onto the state.
func ApplyAll(st *State, results map[string]*pairing.Result) {
	for i := range st.Sections {
		sec := &st.Sections[i]
		if res, ok := results[sec.Name]; ok {
			sec.ApplyResult(res)
		}
	}
}
