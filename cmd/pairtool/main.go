/* Copyright © 2025-2026 Aarush Chugh. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/chughjug/ratings-pairing/internal"
	"github.com/chughjug/ratings-pairing/pairing"
	"github.com/chughjug/ratings-pairing/tournament"
)

//go:embed help.txt
var helpText string

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	TimeFormat:      "15:04:05.00",
})

// cmdHandler defines the signature for command handler functions.
type cmdHandler func(ctx context.Context, args []string)

// commands maps command names to their respective handler functions.
var commands = map[string]cmdHandler{
	"help":       handleHelp,
	"version":    handleVersion,
	"pair":       handlePair,
	"standings":  handleStandings,
	"crosstable": handleCrossTable,
	"validate":   handleValidate,
	"schedule":   handleSchedule,
}

func main() {
	ctx := context.Background()

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	cmd := os.Args[1]
	if handler, ok := commands[cmd]; ok {
		handler(ctx, os.Args[2:])
	} else {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Printf("%v", helpText)
}

func handleHelp(ctx context.Context, args []string) {
	usage()
}

func handleVersion(ctx context.Context, args []string) {
	fmt.Printf("%s %s\n", internal.ToolName, internal.ToolVersion)
}

func handlePair(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("pair", flag.ExitOnError)
	statePath := fs.String("state", "", "Tournament state JSON file")
	profilePath := fs.String("profile", "", "Rules profile TOML file")
	section := fs.String("section", "", "Restrict pairing to one section")
	dryRun := fs.Bool("dry-run", false, "Print pairings without recording them")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	st, prof := load(fs, *statePath, *profilePath)

	var results map[string]*pairing.Result
	if *section != "" {
		sec := st.SectionByName(*section)
		if sec == nil {
			logger.Fatal("no such section", "section", *section)
		}
		res, err := tournament.PairSection(sec, prof)
		if err != nil {
			logger.Fatal("unable to pair", "err", err)
		}
		results = map[string]*pairing.Result{sec.Name: res}
	} else {
		var err error
		results, err = tournament.PairNextRound(ctx, st, prof)
		if err != nil {
			logger.Fatal("unable to pair", "err", err)
		}
	}

	for name, res := range results {
		for _, w := range res.Warnings {
			logger.Warn(w.Detail, "section", name, "kind", w.Kind,
				"players", w.PlayerIDs)
		}
	}

	fmt.Print(tournament.BuildPairingsOutput(st, results))

	if *dryRun {
		return
	}
	tournament.ApplyAll(st, results)
	if err := st.Save(*statePath); err != nil {
		logger.Fatal("unable to save state", "err", err)
	}
	logger.Info("round recorded", "file", *statePath)
}

func handleStandings(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("standings", flag.ExitOnError)
	statePath := fs.String("state", "", "Tournament state JSON file")
	profilePath := fs.String("profile", "", "Rules profile TOML file")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	st, prof := load(fs, *statePath, *profilePath)

	output, err := tournament.BuildStandingsOutput(st, prof)
	if err != nil {
		logger.Fatal("unable to build standings", "err", err)
	}
	fmt.Print(output)
}

func handleCrossTable(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("crosstable", flag.ExitOnError)
	statePath := fs.String("state", "", "Tournament state JSON file")
	section := fs.String("section", "", "Restrict output to one section")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	st, _ := load(fs, *statePath, "")

	names := st.SortedSectionNames()
	for _, name := range names {
		if *section != "" && name != *section {
			continue
		}
		output, err := tournament.BuildCrossTableOutput(st.SectionByName(name))
		if err != nil {
			logger.Fatal("unable to build crosstable", "section", name, "err", err)
		}
		fmt.Print(output)
	}
}

func handleValidate(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	statePath := fs.String("state", "", "Tournament state JSON file")
	profilePath := fs.String("profile", "", "Rules profile TOML file")
	section := fs.String("section", "", "Section the round belongs to")
	roundPath := fs.String("round", "", "Hand-edited round JSON file")
	apply := fs.Bool("apply", false, "Record the validated round to the state file")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *roundPath == "" || *section == "" {
		fmt.Fprintln(os.Stderr, "Please provide --section and --round.")
		fs.Usage()
		os.Exit(1)
	}

	st, prof := load(fs, *statePath, *profilePath)
	sec := st.SectionByName(*section)
	if sec == nil {
		logger.Fatal("no such section", "section", *section)
	}

	rd, err := readRoundFile(*roundPath)
	if err != nil {
		logger.Fatal("unable to read round", "err", err)
	}

	roster, err := sec.Roster()
	if err != nil {
		logger.Fatal("unable to build roster", "err", err)
	}
	cfg, err := prof.EngineConfig(sec)
	if err != nil {
		logger.Fatal("bad section config", "err", err)
	}
	req := pairing.Request{Round: sec.NextRound(), Players: roster, Config: cfg}

	pairings, byes := roundToEngine(rd, sec.NextRound())
	if err := pairing.ValidateManual(req, pairings, byes); err != nil {
		logger.Fatal("round rejected", "err", err)
	}
	logger.Info("round is valid", "section", sec.Name, "round", sec.NextRound())

	if !*apply {
		return
	}
	sec.ApplyResult(&pairing.Result{Pairings: pairings, Byes: byes})
	if err := st.Save(*statePath); err != nil {
		logger.Fatal("unable to save state", "err", err)
	}
	logger.Info("round recorded", "file", *statePath)
}

func handleSchedule(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("schedule", flag.ExitOnError)
	profilePath := fs.String("profile", "", "Rules profile TOML file")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *profilePath == "" {
		fmt.Fprintln(os.Stderr, "Please provide a --profile file.")
		fs.Usage()
		os.Exit(1)
	}

	prof, err := tournament.LoadProfile(*profilePath)
	if err != nil {
		logger.Fatal("unable to load profile", "err", err)
	}
	times, err := prof.RoundTimes()
	if err != nil {
		logger.Fatal("bad schedule", "err", err)
	}
	if len(times) == 0 {
		fmt.Println("No rounds scheduled.")
		return
	}

	var rounds []int
	for r := range times {
		rounds = append(rounds, r)
	}
	sort.Ints(rounds)
	for _, r := range rounds {
		t := times[r]
		if t.IsZero() {
			fmt.Printf("Round %d: TBD\n", r)
			continue
		}
		fmt.Printf("Round %d: %s\n", r, t.Format("Mon Jan 2 2006 3:04 PM"))
	}
}

// load reads the state and profile, exiting with usage on a missing --state.
func load(fs *flag.FlagSet, statePath, profilePath string) (*tournament.State, *tournament.Profile) {
	if statePath == "" {
		fmt.Fprintln(os.Stderr, "Please provide a --state file.")
		fs.Usage()
		os.Exit(1)
	}
	st, err := tournament.LoadState(statePath)
	if err != nil {
		logger.Fatal("unable to load state", "err", err)
	}
	prof, err := tournament.LoadProfile(profilePath)
	if err != nil {
		logger.Fatal("unable to load profile", "err", err)
	}
	return st, prof
}

func readRoundFile(path string) (*tournament.Round, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rd tournament.Round
	if err := json.Unmarshal(data, &rd); err != nil {
		return nil, fmt.Errorf("unable to parse round file: %w", err)
	}
	return &rd, nil
}

// roundToEngine converts a hand-edited round to engine pairings and byes,
// stamped with the round number being validated.
func roundToEngine(rd *tournament.Round, round int) ([]pairing.Pairing, []pairing.Bye) {
	var pairings []pairing.Pairing
	for i, g := range rd.Pairings {
		board := g.Board
		if board == 0 {
			board = i + 1
		}
		pairings = append(pairings, pairing.Pairing{
			Round: round,
			Board: board,
			White: g.White,
			Black: g.Black,
		})
	}
	var byes []pairing.Bye
	for _, b := range rd.Byes {
		kind := pairing.ByeIntentional
		if b.Kind == "forced" {
			kind = pairing.ByeForced
		}
		byes = append(byes, pairing.Bye{PlayerID: b.Player, Kind: kind, Points: b.Points})
	}
	return pairings, byes
}
