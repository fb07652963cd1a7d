/* Copyright © 2025-2026 Aarush Chugh. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tournament

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/chughjug/ratings-pairing/internal"
	"github.com/chughjug/ratings-pairing/pairing"
	"github.com/chughjug/ratings-pairing/tiebreak"
)

// Profile is a TOML-encoded rules document shared across events: point
// values, color tolerance, quad sizing, tiebreak order, and the round
// schedule. A missing profile file means DefaultProfile.
type Profile struct {
	AllowRematch    bool     `toml:"allow_rematch"`
	Tiebreaks       []string `toml:"tiebreaks"`
	ByeZeroTiebreak bool     `toml:"bye_zero_tiebreak"`

	Points struct {
		IntentionalBye float64 `toml:"intentional_bye"`
		ForcedBye      float64 `toml:"forced_bye"`
	} `toml:"points"`

	Colors struct {
		MaxImbalance int `toml:"max_imbalance"`
	} `toml:"colors"`

	Quad struct {
		Size int `toml:"size"`
	} `toml:"quad"`

	// Schedule dates are free-form; anything dateparse accepts works.
	Schedule []ScheduleEntry `toml:"schedule"`

	// IntentionalByes maps a player ID to the rounds they requested off.
	IntentionalByes map[string][]int `toml:"intentional_byes"`
}

// ScheduleEntry announces the start time of one round.
type ScheduleEntry struct {
	Round int    `toml:"round"`
	Date  string `toml:"date"`
}

// DefaultProfile returns the profile used when no file is supplied:
// half-point requested byes, full-point assigned byes, conventional
// tiebreak order.
func DefaultProfile() *Profile {
	p := &Profile{
		Tiebreaks: []string{"buchholz", "sonneborn-berger", "cumulative", "head-to-head"},
	}
	p.Points.IntentionalBye = 0.5
	p.Points.ForcedBye = 1.0
	p.Colors.MaxImbalance = 2
	p.Quad.Size = 4
	return p
}

// LoadProfile decodes a TOML profile, layering the file's settings over the
// defaults so sparse profiles stay valid.
func LoadProfile(path string) (*Profile, error) {
	p := DefaultProfile()
	if path == "" {
		return p, nil
	}
	if _, err := toml.DecodeFile(path, p); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("profile %v does not exist: %w", path, err)
		}
		return nil, fmt.Errorf("unable to parse profile %v: %w", path, err)
	}
	if _, err := p.TiebreakSpecs(); err != nil {
		return nil, err
	}
	if _, err := p.RoundTimes(); err != nil {
		return nil, err
	}
	return p, nil
}

// EngineConfig builds the engine configuration for one section.
func (p *Profile) EngineConfig(sec *Section) (pairing.Config, error) {
	format, variant, err := sec.engineFormat()
	if err != nil {
		return pairing.Config{}, err
	}
	return pairing.Config{
		Format:               format,
		Variant:              variant,
		IntentionalByes:      p.IntentionalByes,
		IntentionalByePoints: p.Points.IntentionalBye,
		ForcedByePoints:      p.Points.ForcedBye,
		MaxColorImbalance:    p.Colors.MaxImbalance,
		QuadSize:             p.Quad.Size,
		AllowRematch:         p.AllowRematch,
	}, nil
}

// TiebreakSpecs parses the configured tiebreak names in order.
func (p *Profile) TiebreakSpecs() ([]tiebreak.Spec, error) {
	specs := make([]tiebreak.Spec, 0, len(p.Tiebreaks))
	for _, name := range p.Tiebreaks {
		sp, err := tiebreak.ParseMetric(name)
		if err != nil {
			return nil, fmt.Errorf("profile tiebreaks: %w", err)
		}
		specs = append(specs, sp)
	}
	return specs, nil
}

// TiebreakConfig builds the tiebreak options from the profile.
func (p *Profile) TiebreakConfig() tiebreak.Config {
	return tiebreak.Config{ByeZero: p.ByeZeroTiebreak}
}

// RoundTimes parses the schedule into per-round start times.
func (p *Profile) RoundTimes() (map[int]time.Time, error) {
	times := make(map[int]time.Time, len(p.Schedule))
	for _, e := range p.Schedule {
		if e.Round < 1 {
			return nil, fmt.Errorf("profile schedule: bad round number %d", e.Round)
		}
		t, err := internal.ParseDateOrZero(e.Date)
		if err != nil {
			return nil, fmt.Errorf("profile schedule round %d: unable to parse %q: %w",
				e.Round, e.Date, err)
		}
		times[e.Round] = t
	}
	return times, nil
}
