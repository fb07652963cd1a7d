/* Copyright © 2025-2026 Aarush Chugh. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package pairing

import (
	"fmt"
	"math"
	"sort"
)

// rematchPenalty keeps rematches a strict last resort when AllowRematch is
// set; with the flag clear rematch candidates are filtered out entirely.
const rematchPenalty = 1e9

// pairSwiss pairs the bye-reduced pool bracket by bracket, floating players
// down a bracket when their own bracket cannot pair them legally. The search
// is bounded: each bracket runs one greedy pass with at most bracket-size
// demotions, and floating is bounded by the number of brackets.
func pairSwiss(pool []Player, round int, cfg Config) (pairs [][2]Player, warns []Warning, err error) {
	brackets := buildBrackets(pool)
	var floaters []Player

	for bi := range brackets {
		group := make([]Player, 0, len(floaters)+len(brackets[bi].players))
		group = append(group, floaters...)
		group = append(group, brackets[bi].players...)
		floaters = nil

		matched, leftover := matchGroup(group, cfg, &warns)
		pairs = append(pairs, matched...)

		if len(leftover) == 0 {
			continue
		}
		if bi == len(brackets)-1 {
			ids := make([]string, 0, len(leftover))
			for _, p := range leftover {
				ids = append(ids, p.ID)
			}
			return nil, nil, fmt.Errorf("%w: round %d leaves %v unpaired without a rematch",
				ErrUnresolvableMatching, round, ids)
		}
		for _, f := range leftover {
			warns = append(warns, Warning{
				Kind:      WarnFloat,
				PlayerIDs: []string{f.ID},
				Detail: fmt.Sprintf("%s floats from the %v-point bracket",
					f.ID, brackets[bi].score),
			})
		}
		floaters = leftover
	}

	return pairs, warns, nil
}

// matchGroup greedily pairs one bracket-plus-floaters group. Players who
// cannot be paired legally inside the group are returned as leftover for the
// caller to float down. The group is processed highest score first, then
// rating, so floaters from above are seated before the bracket's own players.
func matchGroup(group []Player, cfg Config, warns *[]Warning) (pairs [][2]Player, leftover []Player) {
	avail := append([]Player(nil), group...)
	sort.Slice(avail, func(i, j int) bool {
		if avail[i].Score != avail[j].Score {
			return avail[i].Score > avail[j].Score
		}
		if avail[i].Rating != avail[j].Rating {
			return avail[i].Rating > avail[j].Rating
		}
		return avail[i].ID < avail[j].ID
	})

	if len(avail)%2 == 1 {
		fi := selectFloater(avail)
		leftover = append(leftover, avail[fi])
		avail = append(avail[:fi], avail[fi+1:]...)
	}

	for len(avail) >= 2 {
		p := avail[0]
		best := -1
		bestCost := 0.0
		for i := 1; i < len(avail); i++ {
			c := avail[i]
			rematch := p.hasPlayed(c.ID)
			if rematch && !cfg.AllowRematch {
				continue
			}
			cost := pairCost(p, c, i, len(avail), cfg)
			if rematch {
				cost += rematchPenalty
			}
			if best == -1 || cost < bestCost {
				best, bestCost = i, cost
			}
		}
		if best == -1 {
			// every remaining opponent is a rematch; demote p
			leftover = append(leftover, p)
			avail = avail[1:]
			continue
		}
		c := avail[best]
		if p.hasPlayed(c.ID) {
			*warns = append(*warns, Warning{
				Kind:      WarnRematch,
				PlayerIDs: []string{p.ID, c.ID},
				Detail:    fmt.Sprintf("%s and %s meet again", p.ID, c.ID),
			})
		}
		pairs = append(pairs, [2]Player{p, c})
		avail = append(avail[:best], avail[best+1:]...)
		avail = avail[1:]
	}

	leftover = append(leftover, avail...)

	return pairs, leftover
}

// pairCost ranks a candidate opponent for the group's top remaining player.
// Lower is better. Dutch prefers the fold opponent (seat n/2 of the
// remainder); Burstein prefers the rating-closest opponent. A due-color
// clash (both players owed the same color) breaks otherwise-equal ties.
func pairCost(p, c Player, seat, remaining int, cfg Config) float64 {
	ratingDiff := math.Abs(float64(p.Rating - c.Rating))

	var cost float64
	switch cfg.Variant {
	case VariantBurstein:
		cost = ratingDiff
	default:
		cost = math.Abs(float64(seat-remaining/2)) * 1000
		cost += ratingDiff * 1e-6
	}

	if due := p.dueColor(); due != NoColor && due == c.dueColor() {
		cost += 0.5
	}

	return cost
}

// selectFloater picks which player of an odd group sits out of the bracket:
// lowest score first, then the player who floated least recently, fewest
// floats, lowest rating, ID. A player who floated in the previous round is
// therefore never chosen while an alternative exists.
func selectFloater(group []Player) int {
	best := 0
	for i := 1; i < len(group); i++ {
		if floatBefore(group[i], group[best]) {
			best = i
		}
	}
	return best
}

func floatBefore(a, b Player) bool {
	if a.Score != b.Score {
		return a.Score < b.Score
	}
	if a.LastFloatRound != b.LastFloatRound {
		return a.LastFloatRound < b.LastFloatRound
	}
	if a.FloatCount != b.FloatCount {
		return a.FloatCount < b.FloatCount
	}
	if a.Rating != b.Rating {
		return a.Rating < b.Rating
	}
	return a.ID < b.ID
}
