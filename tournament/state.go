/* Copyright © 2025-2026 Aarush Chugh. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package tournament is the caller-side glue around the pairing engine: a
// local tournament-state file, a tournament-rules profile, per-section
// fan-out, and text rendering of pairings, standings, and crosstables. The
// engine itself stays a pure function; everything stateful lives here.
package tournament

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/google/uuid"

	"github.com/chughjug/ratings-pairing/pairing"
)

// State is the on-disk tournament: one file owns one tournament, which is
// also the serialization point the engine requires per section and round.
type State struct {
	Name     string    `json:"name"`
	Sections []Section `json:"sections"`
}

// Section is an independently paired group of players.
type Section struct {
	Name    string   `json:"name"`
	Format  string   `json:"format"`            // "swiss" | "quad-round-robin"
	Variant string   `json:"variant,omitempty"` // "dutch" | "burstein"
	Players []Player `json:"players"`
	Rounds  []Round  `json:"rounds,omitempty"`
}

// Player is one roster entry as stored. IDs are assigned on load when the
// file omits them so hand-written rosters stay terse.
type Player struct {
	ID             string `json:"id,omitempty"`
	Name           string `json:"name"`
	Rating         int    `json:"rating"`
	Withdrawn      bool   `json:"withdrawn,omitempty"`
	ByeRounds      []int  `json:"byeRounds,omitempty"`
	ForcedByeRound int    `json:"forcedByeRound,omitempty"`
	FloatCount     int    `json:"floatCount,omitempty"`
	LastFloatRound int    `json:"lastFloatRound,omitempty"`
}

// Round stores one round's boards and byes plus reported results.
type Round struct {
	Number    int      `json:"number"`
	Completed bool     `json:"completed"`
	Pairings  []Game   `json:"pairings"`
	Byes      []ByeRec `json:"byes,omitempty"`
}

// Game is one board; Result uses conventional chess notation.
type Game struct {
	Board  int    `json:"board"`
	White  string `json:"white"`
	Black  string `json:"black"`
	Result string `json:"result"` // "1-0" | "0-1" | "1/2-1/2" | "*"
}

// ByeRec is a stored bye with its tagged kind and credited points.
type ByeRec struct {
	Player string  `json:"player"`
	Kind   string  `json:"kind"` // "intentional" | "forced"
	Points float64 `json:"points"`
}

// LoadState reads and validates a tournament state file, assigning fresh
// IDs to players that lack one.
func LoadState(path string) (*State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read tournament state: %w", err)
	}
	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("unable to parse tournament state: %w", err)
	}

	for si := range st.Sections {
		sec := &st.Sections[si]
		if len(sec.Players) == 0 {
			return nil, fmt.Errorf("section %q has no players", sec.Name)
		}
		seen := make(map[string]bool)
		for pi := range sec.Players {
			p := &sec.Players[pi]
			if p.ID == "" {
				p.ID = uuid.NewString()
			}
			if seen[p.ID] {
				return nil, fmt.Errorf("section %q: duplicate player id %q",
					sec.Name, p.ID)
			}
			seen[p.ID] = true
		}
		if _, _, err := sec.engineFormat(); err != nil {
			return nil, err
		}
	}

	return &st, nil
}

// Save writes the state back with stable formatting.
func (st *State) Save(path string) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to encode tournament state: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("unable to write tournament state: %w", err)
	}
	return nil
}

// NextRound is the 1-based number the next generated round will carry.
func (sec *Section) NextRound() int {
	return len(sec.Rounds) + 1
}

func (sec *Section) engineFormat() (pairing.Format, pairing.Variant, error) {
	var f pairing.Format
	switch sec.Format {
	case "", "swiss":
		f = pairing.FormatSwiss
	case "quad-round-robin", "quad":
		f = pairing.FormatQuadRoundRobin
	default:
		return 0, 0, fmt.Errorf("section %q: unknown format %q", sec.Name, sec.Format)
	}
	var v pairing.Variant
	switch sec.Variant {
	case "", "dutch":
		v = pairing.VariantDutch
	case "burstein":
		v = pairing.VariantBurstein
	default:
		return 0, 0, fmt.Errorf("section %q: unknown variant %q", sec.Name, sec.Variant)
	}
	return f, v, nil
}

// Roster assembles the engine's per-invocation player view from stored
// rounds. Every player carries exactly one history entry per stored round;
// rounds a player sat out entirely appear as bye entries so the history
// length invariant holds.
func (sec *Section) Roster() ([]pairing.Player, error) {
	roster := make([]pairing.Player, 0, len(sec.Players))
	for _, sp := range sec.Players {
		p := pairing.Player{
			ID:             sp.ID,
			Name:           sp.Name,
			Rating:         sp.Rating,
			Active:         !sp.Withdrawn,
			ForcedByeRound: sp.ForcedByeRound,
			FloatCount:     sp.FloatCount,
			LastFloatRound: sp.LastFloatRound,
		}
		if len(sp.ByeRounds) > 0 {
			p.ByeRounds = make(map[int]bool, len(sp.ByeRounds))
			for _, r := range sp.ByeRounds {
				p.ByeRounds[r] = true
			}
		}
		roster = append(roster, p)
	}

	index := make(map[string]*pairing.Player, len(roster))
	for i := range roster {
		index[roster[i].ID] = &roster[i]
	}

	ordered := append([]Round(nil), sec.Rounds...)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Number < ordered[j].Number })

	for _, rd := range ordered {
		played := make(map[string]bool, len(index))
		for _, g := range rd.Pairings {
			w, b := index[g.White], index[g.Black]
			if w == nil || b == nil {
				return nil, fmt.Errorf("section %q round %d: unknown player on board %d",
					sec.Name, rd.Number, g.Board)
			}
			w.Opponents = append(w.Opponents, b.ID)
			w.Colors = append(w.Colors, pairing.White)
			b.Opponents = append(b.Opponents, w.ID)
			b.Colors = append(b.Colors, pairing.Black)
			wPts, bPts := gamePoints(g.Result)
			w.Score += wPts
			b.Score += bPts
			played[w.ID], played[b.ID] = true, true
		}
		for _, bye := range rd.Byes {
			p := index[bye.Player]
			if p == nil {
				return nil, fmt.Errorf("section %q round %d: bye for unknown player %q",
					sec.Name, rd.Number, bye.Player)
			}
			p.Opponents = append(p.Opponents, "")
			p.Colors = append(p.Colors, pairing.NoColor)
			p.Score += bye.Points
			played[p.ID] = true
		}
		// anyone absent from the round gets an unplayed entry to keep the
		// history length invariant
		for id, p := range index {
			if !played[id] {
				p.Opponents = append(p.Opponents, "")
				p.Colors = append(p.Colors, pairing.NoColor)
			}
		}
	}

	return roster, nil
}

// EngineRounds converts stored rounds to the engine's round type for
// tiebreak computation.
func (sec *Section) EngineRounds() []pairing.Round {
	out := make([]pairing.Round, 0, len(sec.Rounds))
	for _, rd := range sec.Rounds {
		er := pairing.Round{Number: rd.Number, Completed: rd.Completed}
		for _, g := range rd.Pairings {
			er.Pairings = append(er.Pairings, pairing.Pairing{
				Round:  rd.Number,
				Board:  g.Board,
				White:  g.White,
				Black:  g.Black,
				Result: parseResult(g.Result),
			})
		}
		for _, b := range rd.Byes {
			kind := pairing.ByeIntentional
			if b.Kind == "forced" {
				kind = pairing.ByeForced
			}
			er.Byes = append(er.Byes, pairing.Bye{
				PlayerID: b.Player,
				Kind:     kind,
				Points:   b.Points,
			})
		}
		out = append(out, er)
	}
	return out
}

// ApplyResult appends a generated round to the section and carries the
// engine's bookkeeping (forced bye, float history) back onto the roster.
func (sec *Section) ApplyResult(res *pairing.Result) {
	if res == nil || (len(res.Pairings) == 0 && len(res.Byes) == 0) {
		return
	}
	round := sec.NextRound()

	rd := Round{Number: round}
	for _, pr := range res.Pairings {
		rd.Pairings = append(rd.Pairings, Game{
			Board:  pr.Board,
			White:  pr.White,
			Black:  pr.Black,
			Result: "*",
		})
	}
	for _, b := range res.Byes {
		rd.Byes = append(rd.Byes, ByeRec{
			Player: b.PlayerID,
			Kind:   b.Kind.String(),
			Points: b.Points,
		})
		if b.Kind == pairing.ByeForced {
			if p := sec.player(b.PlayerID); p != nil {
				p.ForcedByeRound = round
			}
		}
	}
	for _, w := range res.Warnings {
		if w.Kind != pairing.WarnFloat {
			continue
		}
		for _, id := range w.PlayerIDs {
			if p := sec.player(id); p != nil {
				p.FloatCount++
				p.LastFloatRound = round
			}
		}
	}

	sec.Rounds = append(sec.Rounds, rd)
}

func (sec *Section) player(id string) *Player {
	for i := range sec.Players {
		if sec.Players[i].ID == id {
			return &sec.Players[i]
		}
	}
	return nil
}

func gamePoints(result string) (white, black float64) {
	switch result {
	case "1-0":
		return 1, 0
	case "0-1":
		return 0, 1
	case "1/2-1/2", "½-½":
		return 0.5, 0.5
	default:
		return 0, 0
	}
}

func parseResult(result string) pairing.Outcome {
	switch result {
	case "1-0":
		return pairing.OutcomeWhiteWins
	case "0-1":
		return pairing.OutcomeBlackWins
	case "1/2-1/2", "½-½":
		return pairing.OutcomeDraw
	default:
		return pairing.OutcomeUnreported
	}
}
