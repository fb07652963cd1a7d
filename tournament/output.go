/* Copyright © 2025-2026 Aarush Chugh. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tournament

import (
	"fmt"
	"sort"
	"strings"

	"github.com/chughjug/ratings-pairing/internal"
	"github.com/chughjug/ratings-pairing/pairing"
	"github.com/chughjug/ratings-pairing/tiebreak"
)

// BuildPairingsOutput formats generated pairings into grouped, aligned
// string output, one table per section in display order.
func BuildPairingsOutput(st *State, results map[string]*pairing.Result) string {
	var sb strings.Builder

	names := st.SortedSectionNames()
	for _, name := range names {
		sec := st.SectionByName(name)
		res := results[name]
		if sec == nil || res == nil {
			continue
		}

		roster, err := sec.Roster()
		if err != nil {
			sb.WriteString(fmt.Sprintf("Section %s: %v\n\n", name, err))
			continue
		}
		byID := make(map[string]pairing.Player, len(roster))
		for _, p := range roster {
			byID[p.ID] = p
		}
		describe := func(id string) string {
			p, ok := byID[id]
			if !ok {
				return id
			}
			return fmt.Sprintf("%s (%d, %s)", p.Name, p.Rating,
				internal.ScoreToString(p.Score))
		}

		if len(names) > 1 {
			if name == "" {
				name = "UNNAMED"
			}
			sb.WriteString(fmt.Sprintf("%s Section\n", name))
		}
		sb.WriteString(fmt.Sprintf("Round %d Pairings:\n", sec.NextRound()))

		headers := []string{"Board", "White", "Black"}
		var rows [][]string
		for _, pr := range res.Pairings {
			rows = append(rows, []string{
				fmt.Sprintf("%d.", pr.Board),
				describe(pr.White),
				describe(pr.Black),
			})
		}
		writeAligned(&sb, headers, rows)

		for _, b := range res.Byes {
			sb.WriteString(fmt.Sprintf("  BYE(%s): %s\n",
				internal.ScoreToString(b.Points), describe(b.PlayerID)))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// standingsRow pairs a roster entry with its tiebreak vector for sorting.
type standingsRow struct {
	player pairing.Player
	breaks []float64
}

// BuildStandingsOutput formats current standings with the profile's
// tiebreak columns, one table per section in display order.
func BuildStandingsOutput(st *State, prof *Profile) (string, error) {
	specs, err := prof.TiebreakSpecs()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	names := st.SortedSectionNames()
	for _, name := range names {
		sec := st.SectionByName(name)

		roster, err := sec.Roster()
		if err != nil {
			return "", err
		}
		breaks, err := tiebreak.Compute(roster, sec.EngineRounds(), specs,
			prof.TiebreakConfig())
		if err != nil {
			return "", err
		}

		rows := make([]standingsRow, 0, len(roster))
		for _, p := range roster {
			rows = append(rows, standingsRow{player: p, breaks: breaks[p.ID]})
		}
		sort.Slice(rows, func(i, j int) bool {
			a, b := rows[i], rows[j]
			if a.player.Score != b.player.Score {
				return a.player.Score > b.player.Score
			}
			for k := range a.breaks {
				if a.breaks[k] != b.breaks[k] {
					return a.breaks[k] > b.breaks[k]
				}
			}
			return a.player.Name < b.player.Name
		})

		if len(names) > 1 {
			secName := name
			if secName == "" {
				secName = "UNNAMED"
			}
			sb.WriteString(fmt.Sprintf("%s Section\n", secName))
		}
		sb.WriteString(fmt.Sprintf("Standings after Round %d:\n", len(sec.Rounds)))

		headers := []string{"Place", "Name", "Score"}
		headers = append(headers, tiebreak.Names(specs)...)

		var out [][]string
		priorScore := -1.0
		var priorBreaks []float64
		for idx, r := range rows {
			var rank string
			if idx != 0 && r.player.Score == priorScore && vectorEqual(r.breaks, priorBreaks) {
				rank = ""
			} else {
				rank = fmt.Sprintf("%d.", idx+1)
				priorScore = r.player.Score
				priorBreaks = r.breaks
			}
			row := []string{rank, r.player.Name,
				internal.ScoreToString(r.player.Score)}
			for _, v := range r.breaks {
				row = append(row, fmt.Sprintf("%.1f", v))
			}
			out = append(out, row)
		}
		writeAligned(&sb, headers, out)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

// BuildCrossTableOutput formats a per-section crosstable with one column
// per stored round. Pair numbers follow rating seeding.
func BuildCrossTableOutput(sec *Section) (string, error) {
	roster, err := sec.Roster()
	if err != nil {
		return "", err
	}
	sort.Slice(roster, func(i, j int) bool {
		if roster[i].Rating != roster[j].Rating {
			return roster[i].Rating > roster[j].Rating
		}
		return roster[i].ID < roster[j].ID
	})
	pairNum := make(map[string]int, len(roster))
	for i, p := range roster {
		pairNum[p.ID] = i + 1
	}

	numRounds := len(sec.Rounds)
	headers := []string{"No", "Name", "Rating", "Pts"}
	for i := 1; i <= numRounds; i++ {
		headers = append(headers, fmt.Sprintf("R%d", i))
	}

	// per player per round cell, indexed by pair number
	cells := make(map[string][]string, len(roster))
	for _, p := range roster {
		cells[p.ID] = make([]string, numRounds)
	}
	for ri, rd := range sec.Rounds {
		for _, g := range rd.Pairings {
			wPts, _ := gamePoints(g.Result)
			var wCell, bCell string
			switch {
			case g.Result == "*" || cells[g.White] == nil || cells[g.Black] == nil:
				wCell, bCell = "?", "?"
			case wPts == 1:
				wCell = fmt.Sprintf("W%d(w)", pairNum[g.Black])
				bCell = fmt.Sprintf("L%d(b)", pairNum[g.White])
			case wPts == 0.5:
				wCell = fmt.Sprintf("D%d(w)", pairNum[g.Black])
				bCell = fmt.Sprintf("D%d(b)", pairNum[g.White])
			default:
				wCell = fmt.Sprintf("L%d(w)", pairNum[g.Black])
				bCell = fmt.Sprintf("W%d(b)", pairNum[g.White])
			}
			if c := cells[g.White]; c != nil {
				c[ri] = wCell
			}
			if c := cells[g.Black]; c != nil {
				c[ri] = bCell
			}
		}
		for _, b := range rd.Byes {
			if c := cells[b.Player]; c != nil {
				c[ri] = fmt.Sprintf("BYE(%s)", internal.ScoreToString(b.Points))
			}
		}
	}

	var rows [][]string
	for _, p := range roster {
		row := []string{
			fmt.Sprintf("%d.", pairNum[p.ID]),
			p.Name,
			fmt.Sprintf("%d", p.Rating),
			internal.ScoreToString(p.Score),
		}
		for _, cell := range cells[p.ID] {
			if cell == "" {
				cell = "BYE(0)"
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}

	var sb strings.Builder
	if sec.Name != "" {
		sb.WriteString(fmt.Sprintf("%s Section\n", sec.Name))
	}
	writeAligned(&sb, headers, rows)
	sb.WriteString("\n")

	return sb.String(), nil
}

// writeAligned renders a header row plus data rows with per-column widths.
func writeAligned(sb *strings.Builder, headers []string, rows [][]string) {
	colWidths := make([]int, len(headers))
	for i, h := range headers {
		colWidths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > colWidths[i] {
				colWidths[i] = len(cell)
			}
		}
	}

	var fmtStrBuilder strings.Builder
	for _, w := range colWidths {
		fmtStrBuilder.WriteString(fmt.Sprintf("%%-%ds  ", w))
	}
	fmtStr := strings.TrimRight(fmtStrBuilder.String(), " ") + "\n"

	sb.WriteString(fmt.Sprintf(fmtStr, toAnySlice(headers)...))
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf(fmtStr, toAnySlice(row)...))
	}
}

func toAnySlice(in []string) []any {
	out := make([]any, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}

func vectorEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
