/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// outcomes reports, for a Swiss event with results still to come, each
// player's odds of making the top cut.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mikeb26/cobrai-pairings/cobrai"
	"github.com/mikeb26/cobrai-pairings/internal/config"
	"github.com/mikeb26/cobrai-pairings/internal/logger"
	"github.com/mikeb26/cobrai-pairings/outcomes"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	maxRounds      = 10
	maxCutSize     = 10
	maxScenarioMax = 1000
)

var errInputSource = errors.New("exactly one of <tournament-id> or --pairings is required")

type options struct {
	rounds        int
	cutSize       int
	pairingsPath  string
	inspectPlayer string
	scenarioMax   int
	showOpponents string
	configPath    string
	verbose       bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		logger.New(stderr, false).Error(err)
		return 1
	}

	return 0
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "outcomes [tournament-id]",
		Short: "Compute top cut odds for the remaining Swiss results",
		Long: `Tally the Swiss pairings of a cobr.ai tournament (fetched live, or read
from a file written by the pairings command) and enumerate every way the open
matches can finish. Each open match ends as a sweep (6-0), a split (3-3) or a
fold (0-6); standings break ties on strength of schedule.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(args); err != nil {
				return err
			}
			log := logger.New(stderr, opts.verbose)
			return runOutcomes(cmd.Context(), args, opts, stdout, log)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.IntVarP(&opts.rounds, "rounds", "r", 0, "number of Swiss rounds (required)")
	f.IntVarP(&opts.cutSize, "cut-size", "c", 0, "number of players in the top cut (required)")
	f.StringVarP(&opts.pairingsPath, "pairings", "p", "",
		"read pairings from this file instead of fetching them")
	f.StringVarP(&opts.inspectPlayer, "inspect-player", "i", "",
		"list the scenarios in which this player makes the cut")
	f.IntVarP(&opts.scenarioMax, "scenario-max", "m", outcomes.DefaultScenarioMax,
		"maximum scenarios listed for --inspect-player")
	f.StringVarP(&opts.showOpponents, "show-opponents", "o", "",
		"list this player's opponents")
	f.StringVar(&opts.configPath, "config", "", "TOML configuration file")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	_ = cmd.MarkFlagRequired("rounds")
	_ = cmd.MarkFlagRequired("cut-size")

	return cmd
}

func (opts options) validate(args []string) error {
	if (len(args) == 1) == (opts.pairingsPath != "") {
		return errInputSource
	}
	if opts.rounds < 1 || opts.rounds > maxRounds {
		return fmt.Errorf("--rounds must be between 1 and %d", maxRounds)
	}
	if opts.cutSize < 1 || opts.cutSize > maxCutSize {
		return fmt.Errorf("--cut-size must be between 1 and %d", maxCutSize)
	}
	if opts.scenarioMax < 1 || opts.scenarioMax > maxScenarioMax {
		return fmt.Errorf("--scenario-max must be between 1 and %d",
			maxScenarioMax)
	}

	return nil
}

func runOutcomes(ctx context.Context, args []string, opts options,
	stdout io.Writer, log *logrus.Logger) error {

	pairings, err := loadPairings(ctx, args, opts, log)
	if err != nil {
		return err
	}
	log.Debugf("loaded %d pairings", len(pairings))

	tally, err := outcomes.NewTally(pairings)
	if err != nil {
		return err
	}
	a, err := outcomes.NewAnalyzer(tally, outcomes.Options{
		Rounds:  opts.rounds,
		CutSize: opts.cutSize,
	})
	if err != nil {
		return err
	}

	return outcomes.WriteReport(ctx, stdout, a, outcomes.ReportOptions{
		InspectPlayer: opts.inspectPlayer,
		ScenarioMax:   opts.scenarioMax,
		ShowOpponents: opts.showOpponents,
	}, log)
}

func loadPairings(ctx context.Context, args []string, opts options,
	log *logrus.Logger) ([]cobrai.Pairing, error) {

	if opts.pairingsPath != "" {
		f, err := os.Open(opts.pairingsPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		return cobrai.ReadPairings(f)
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	page, err := cobrai.NewClient(cfg, log).FetchRounds(ctx,
		cobrai.TournamentID(args[0]))
	if err != nil {
		return nil, err
	}

	return cobrai.ExtractPairings(page, cobrai.ModeSwissOnly)
}
