/* Copyright © 2025-2026 Aarush Chugh. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package pairing

// Color is the color a player held (or holds) in a game. NoColor marks bye
// rounds in a player's color history.
type Color int

const (
	NoColor Color = iota
	White
	Black
)

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "none"
	}
}

// Format selects the pairing engine used for a section.
type Format int

const (
	FormatSwiss Format = iota
	FormatQuadRoundRobin
)

// Variant selects the within-bracket opponent preference for Swiss pairing.
// Dutch folds the bracket (top half vs bottom half); Burstein prefers the
// rating-closest legal opponent.
type Variant int

const (
	VariantDutch Variant = iota
	VariantBurstein
)

// Outcome is a pairing's result from white's perspective.
type Outcome int

const (
	OutcomeUnreported Outcome = iota
	OutcomeWhiteWins
	OutcomeBlackWins
	OutcomeDraw
)

// Player is one roster entry together with its round history. The engine
// never mutates a Player; callers supply fresh copies on every invocation.
//
// Invariant: len(Opponents) == len(Colors) == number of completed rounds.
// An empty string in Opponents marks a bye round, as does NoColor in Colors.
type Player struct {
	ID     string
	Name   string
	Rating int
	Score  float64

	Opponents []string
	Colors    []Color

	// ByeRounds holds pre-declared intentional bye rounds.
	ByeRounds map[int]bool

	// Active is false for withdrawn players; they keep their history for
	// tiebreak purposes but are never paired again.
	Active bool

	// ForcedByeRound is the round in which this player received the
	// engine-assigned odd-player bye, or 0 if they never have.
	ForcedByeRound int

	// Float history, tracked as a counter plus last occurrence rather than
	// a who-floated-whom graph.
	FloatCount     int
	LastFloatRound int
}

// colorBalance returns white count minus black count.
func (p Player) colorBalance() int {
	bal := 0
	for _, c := range p.Colors {
		switch c {
		case White:
			bal++
		case Black:
			bal--
		}
	}
	return bal
}

// lastBlackRound returns the most recent 1-based round in which the player
// held black, or 0 if none.
func (p Player) lastBlackRound() int {
	for i := len(p.Colors) - 1; i >= 0; i-- {
		if p.Colors[i] == Black {
			return i + 1
		}
	}
	return 0
}

// dueColor is the color the player is owed next: White when they have held
// black more often, Black when they have held white more often, otherwise
// the opposite of their most recent color.
func (p Player) dueColor() Color {
	bal := p.colorBalance()
	if bal < 0 {
		return White
	}
	if bal > 0 {
		return Black
	}
	for i := len(p.Colors) - 1; i >= 0; i-- {
		if p.Colors[i] == White {
			return Black
		}
		if p.Colors[i] == Black {
			return White
		}
	}
	return NoColor
}

// hasPlayed reports whether the player already faced the given opponent.
func (p Player) hasPlayed(oppID string) bool {
	for _, o := range p.Opponents {
		if o != "" && o == oppID {
			return true
		}
	}
	return false
}

// Pairing is one board in one round. White and Black hold player IDs.
type Pairing struct {
	Round  int
	Board  int
	White  string
	Black  string
	Result Outcome
}

// ByeKind distinguishes pre-declared byes from engine-assigned odd-player
// byes. The two carry independent point values; keeping the kind as a tagged
// variant rather than a string removes the wrong-point-value bug class.
type ByeKind int

const (
	ByeIntentional ByeKind = iota
	ByeForced
)

func (k ByeKind) String() string {
	if k == ByeForced {
		return "forced"
	}
	return "intentional"
}

// Bye records a player sitting out a round and the points credited.
type Bye struct {
	PlayerID string
	Kind     ByeKind
	Points   float64
}

// Round is one completed or in-progress round as supplied by the caller.
type Round struct {
	Number    int
	Pairings  []Pairing
	Byes      []Bye
	Completed bool
}

// WarningKind classifies a non-fatal deviation from the ideal pairing.
type WarningKind int

const (
	WarnFloat WarningKind = iota
	WarnRematch
	WarnColorViolation
)

func (k WarningKind) String() string {
	switch k {
	case WarnFloat:
		return "float"
	case WarnRematch:
		return "rematch"
	case WarnColorViolation:
		return "color-violation"
	default:
		return "?"
	}
}

// Warning reports a deviation the engine accepted rather than failed on.
// The engine never drops a constraint violation silently: anything not
// reported as a typed error is reported here.
type Warning struct {
	Kind      WarningKind
	PlayerIDs []string
	Detail    string
}

// Config carries all per-invocation tunables. The engine holds no other
// state; zero-value fields are filled in from DefaultConfig by PairRound.
type Config struct {
	Format  Format
	Variant Variant

	// IntentionalByes maps player ID to pre-declared bye rounds, merged
	// with each Player's own ByeRounds set.
	IntentionalByes map[string][]int

	IntentionalByePoints float64
	ForcedByePoints      float64

	// MaxColorImbalance is the |white-black| magnitude at which a player
	// is forced to their due color regardless of the normal ranking.
	MaxColorImbalance int

	// QuadSize is the nominal group size for FormatQuadRoundRobin.
	QuadSize int

	// AllowRematch is the single relaxation step for UnresolvableMatching:
	// when set, rematches are permitted and each one is reported as a
	// warning rather than treated as a hard constraint.
	AllowRematch bool
}

// DefaultConfig returns the standard tournament-rules profile.
func DefaultConfig() Config {
	return Config{
		IntentionalByePoints: 0.5,
		ForcedByePoints:      1.0,
		MaxColorImbalance:    2,
		QuadSize:             4,
	}
}

// Request is one round-pairing invocation.
type Request struct {
	Round   int
	Players []Player
	Config  Config
}

// Result is a successful round pairing. Pairings are board-ordered; every
// float, unavoidable rematch, and color violation is listed in Warnings.
type Result struct {
	Pairings []Pairing
	Byes     []Bye
	Warnings []Warning
}
