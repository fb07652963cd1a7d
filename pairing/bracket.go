/* Copyright © 2025-2026 Aarush Chugh. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package pairing

import "sort"

// bracket is a group of players sharing a cumulative score.
type bracket struct {
	score   float64
	players []Player
}

// buildBrackets partitions players into score groups ordered from highest
// score to lowest. Within a bracket players are ordered by rating descending
// with ID as the deterministic tiebreak, so identical input always yields
// identical bracket order.
func buildBrackets(players []Player) []bracket {
	byScore := make(map[float64][]Player)
	for _, p := range players {
		byScore[p.Score] = append(byScore[p.Score], p)
	}

	scores := make([]float64, 0, len(byScore))
	for s := range byScore {
		scores = append(scores, s)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(scores)))

	brackets := make([]bracket, 0, len(scores))
	for _, s := range scores {
		group := byScore[s]
		sortByStrength(group)
		brackets = append(brackets, bracket{score: s, players: group})
	}

	return brackets
}

// sortByStrength orders players by rating descending, then ID ascending.
func sortByStrength(players []Player) {
	sort.Slice(players, func(i, j int) bool {
		if players[i].Rating != players[j].Rating {
			return players[i].Rating > players[j].Rating
		}
		return players[i].ID < players[j].ID
	})
}
