/* Copyright © 2025-2026 Aarush Chugh. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package tiebreak computes standings tiebreak metrics from completed round
// history. Computation is a pure function of its inputs: it never mutates
// player or round records, and recomputing on identical input yields
// identical output.
package tiebreak

import (
	"fmt"
	"sort"
	"strings"

	"github.com/chughjug/ratings-pairing/pairing"
)

// Metric identifies one tiebreak system.
type Metric int

const (
	// Buchholz is the sum of opponents' final scores.
	Buchholz Metric = iota
	// BuchholzCut is Buchholz with the lowest N opponent scores dropped.
	BuchholzCut
	// SonnebornBerger sums opponent score times the player's result weight.
	SonnebornBerger
	// Cumulative sums the player's running score after each round.
	Cumulative
	// HeadToHead is the player's points against opponents on the same
	// final score; callers apply it last, among already-tied players.
	HeadToHead
)

func (m Metric) String() string {
	switch m {
	case Buchholz:
		return "buchholz"
	case BuchholzCut:
		return "buchholz-cut"
	case SonnebornBerger:
		return "sonneborn-berger"
	case Cumulative:
		return "cumulative"
	case HeadToHead:
		return "head-to-head"
	default:
		return "?"
	}
}

// ParseMetric maps a profile string like "buchholz" or "buchholz-cut1" to a
// Spec. The numeric suffix of buchholz-cut is the cut count.
func ParseMetric(s string) (Spec, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if rest, ok := strings.CutPrefix(name, "buchholz-cut"); ok {
		cut := 1
		if rest != "" {
			if _, err := fmt.Sscanf(rest, "%d", &cut); err != nil || cut < 1 {
				return Spec{}, fmt.Errorf("bad buchholz cut count %q", s)
			}
		}
		return Spec{Metric: BuchholzCut, Cut: cut}, nil
	}
	switch name {
	case "buchholz":
		return Spec{Metric: Buchholz}, nil
	case "sonneborn-berger", "sonneborn":
		return Spec{Metric: SonnebornBerger}, nil
	case "cumulative":
		return Spec{Metric: Cumulative}, nil
	case "head-to-head", "h2h":
		return Spec{Metric: HeadToHead}, nil
	default:
		return Spec{}, fmt.Errorf("unknown tiebreak metric %q", s)
	}
}

// Spec is one configured metric; Cut applies to BuchholzCut only.
type Spec struct {
	Metric Metric
	Cut    int
}

// Config holds cross-metric options.
type Config struct {
	// ByeZero counts byes as a zero-score virtual opponent instead of the
	// standard substitution (the player's own score at the time of the
	// bye).
	ByeZero bool
}

// Names returns display names for the configured metrics, for table headers.
func Names(specs []Spec) []string {
	names := make([]string, 0, len(specs))
	for _, sp := range specs {
		if sp.Metric == BuchholzCut {
			names = append(names, fmt.Sprintf("buchholz-cut%d", sp.Cut))
			continue
		}
		names = append(names, sp.Metric.String())
	}
	return names
}

// game is one scored round from a single player's perspective. A bye has an
// empty opponent ID.
type game struct {
	opp    string
	weight float64 // 1 win, 0.5 draw, 0 loss; byes use credited points
	points float64
	after  float64 // running score after this round
}

// Compute evaluates the configured metrics for every player and returns a
// map from player ID to a metric-value vector in spec order, suitable for
// lexicographic standings sorting.
func Compute(players []pairing.Player, rounds []pairing.Round, specs []Spec, cfg Config) (map[string][]float64, error) {
	for _, sp := range specs {
		if sp.Metric < Buchholz || sp.Metric > HeadToHead {
			return nil, fmt.Errorf("unknown tiebreak metric %d", sp.Metric)
		}
		if sp.Metric == BuchholzCut && sp.Cut < 1 {
			return nil, fmt.Errorf("buchholz cut count must be positive, got %d", sp.Cut)
		}
	}

	games, finals := replay(players, rounds)

	out := make(map[string][]float64, len(players))
	for _, p := range players {
		vals := make([]float64, 0, len(specs))
		for _, sp := range specs {
			vals = append(vals, evaluate(sp, cfg, games[p.ID], finals))
		}
		out[p.ID] = vals
	}

	return out, nil
}

// replay walks completed rounds in order and builds each player's game log
// and final score. Unreported results score zero and are excluded from
// opponent-based sums.
func replay(players []pairing.Player, rounds []pairing.Round) (map[string][]game, map[string]float64) {
	ordered := append([]pairing.Round(nil), rounds...)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Number < ordered[j].Number })

	games := make(map[string][]game, len(players))
	running := make(map[string]float64, len(players))
	for _, p := range players {
		running[p.ID] = 0
	}

	add := func(id, opp string, weight, points float64) {
		running[id] += points
		games[id] = append(games[id], game{
			opp:    opp,
			weight: weight,
			points: points,
			after:  running[id],
		})
	}

	for _, rd := range ordered {
		if !rd.Completed {
			continue
		}
		for _, pr := range rd.Pairings {
			switch pr.Result {
			case pairing.OutcomeWhiteWins:
				add(pr.White, pr.Black, 1, 1)
				add(pr.Black, pr.White, 0, 0)
			case pairing.OutcomeBlackWins:
				add(pr.White, pr.Black, 0, 0)
				add(pr.Black, pr.White, 1, 1)
			case pairing.OutcomeDraw:
				add(pr.White, pr.Black, 0.5, 0.5)
				add(pr.Black, pr.White, 0.5, 0.5)
			}
		}
		for _, b := range rd.Byes {
			weight := b.Points
			if weight > 1 {
				weight = 1
			}
			add(b.PlayerID, "", weight, b.Points)
		}
	}

	return games, running
}

// evaluate computes a single metric value for one player's game log.
func evaluate(sp Spec, cfg Config, log []game, finals map[string]float64) float64 {
	switch sp.Metric {
	case Buchholz, BuchholzCut:
		contribs := make([]float64, 0, len(log))
		for _, g := range log {
			contribs = append(contribs, opponentScore(g, cfg, finals))
		}
		if sp.Metric == BuchholzCut {
			sort.Float64s(contribs)
			if sp.Cut < len(contribs) {
				contribs = contribs[sp.Cut:]
			} else {
				contribs = nil
			}
		}
		return sum(contribs)
	case SonnebornBerger:
		total := 0.0
		for _, g := range log {
			total += opponentScore(g, cfg, finals) * g.weight
		}
		return total
	case Cumulative:
		total := 0.0
		for _, g := range log {
			total += g.after
		}
		return total
	case HeadToHead:
		if len(log) == 0 {
			return 0
		}
		own := log[len(log)-1].after
		total := 0.0
		for _, g := range log {
			if g.opp != "" && finals[g.opp] == own {
				total += g.points
			}
		}
		return total
	default:
		return 0
	}
}

// opponentScore is the opponent's final score, or the standard bye
// substitution: the player's own running score at the time of the bye.
func opponentScore(g game, cfg Config, finals map[string]float64) float64 {
	if g.opp != "" {
		return finals[g.opp]
	}
	if cfg.ByeZero {
		return 0
	}
	return g.after
}

func sum(vals []float64) float64 {
	total := 0.0
	for _, v := range vals {
		total += v
	}
	return total
}
