/* Copyright © 2025-2026 Aarush Chugh. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package pairing

import "fmt"

// pairQuads splits the pool into rating-ordered groups of cfg.QuadSize and
// pairs each group from a fixed round-robin table (circle method) instead of
// searching. A trailing short group is merged into the previous one so every
// group can complete a round robin. Color assignment is resolved later with
// the same balance-first priority as Swiss pairing, overriding any
// seed-order default; rounds beyond a full cycle repeat the table and any
// actual rematch is reported as a warning.
func pairQuads(pool []Player, round int, cfg Config) (pairs [][2]Player, warns []Warning, err error) {
	size := cfg.QuadSize
	if size < 2 {
		size = 4
	}

	seeded := append([]Player(nil), pool...)
	sortByStrength(seeded)

	var groups [][]Player
	for start := 0; start < len(seeded); start += size {
		end := start + size
		if end > len(seeded) {
			end = len(seeded)
		}
		groups = append(groups, seeded[start:end])
	}
	if n := len(groups); n > 1 && len(groups[n-1]) < size {
		groups[n-2] = append(groups[n-2], groups[n-1]...)
		groups = groups[:n-1]
	}

	for _, group := range groups {
		gp, err := roundRobinPairs(group, round)
		if err != nil {
			return nil, nil, err
		}
		for _, pr := range gp {
			if pr[0].hasPlayed(pr[1].ID) {
				warns = append(warns, Warning{
					Kind:      WarnRematch,
					PlayerIDs: []string{pr[0].ID, pr[1].ID},
					Detail: fmt.Sprintf("%s and %s repeat beyond a full round-robin cycle",
						pr[0].ID, pr[1].ID),
				})
			}
		}
		pairs = append(pairs, gp...)
	}

	return pairs, warns, nil
}

// roundRobinPairs produces the fixed table for the given 1-based round using
// the circle method: seat 0 is pinned while the remaining seats rotate one
// step per round. Every pair of players meets exactly once per cycle.
func roundRobinPairs(group []Player, round int) ([][2]Player, error) {
	n := len(group)
	if n < 2 {
		return nil, fmt.Errorf("%w: round-robin group of %d", ErrInsufficientPlayers, n)
	}
	if n%2 == 1 {
		// groups are even whenever the bye-reduced pool is; guard anyway
		return nil, fmt.Errorf("%w: odd round-robin group of %d", ErrInvalidRoster, n)
	}

	seats := make([]int, n)
	for i := range seats {
		seats[i] = i
	}
	for r := (round - 1) % (n - 1); r > 0; r-- {
		// rotate all but seat 0: seats[1:] moves one position right
		last := seats[n-1]
		copy(seats[2:], seats[1:n-1])
		seats[1] = last
	}

	pairs := make([][2]Player, 0, n/2)
	for i := 0; i < n/2; i++ {
		a := group[seats[i]]
		b := group[seats[n-1-i]]
		pairs = append(pairs, [2]Player{a, b})
	}

	return pairs, nil
}
