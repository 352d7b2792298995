/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package outcomes

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

const DefaultScenarioMax = 5

type ReportOptions struct {
	// InspectPlayer, when set, lists the scenarios in which that player
	// makes the cut.
	InspectPlayer string
	// ScenarioMax bounds the scenarios listed for InspectPlayer.
	ScenarioMax int
	// ShowOpponents, when set, lists that player's opponents.
	ShowOpponents string
}

// WriteReport writes the full outcomes report for a: the fixed standings
// when nothing is left open, otherwise the cut odds with and without
// splits, the players safe to ID and the sweep/split/fold table.
func WriteReport(ctx context.Context, w io.Writer, a *Analyzer,
	opts ReportOptions, log logrus.FieldLogger) error {

	var sb strings.Builder
	logTally(a.tally, log)

	if len(a.tally.Open) == 0 {
		writeFixedResult(&sb, a.Standings(), a.opts.CutSize)
	} else {
		writeOdds(&sb, a.CutOdds(false), a.opts.CutSize, false)
		sb.WriteString("\n")
		writeOdds(&sb, a.CutOdds(true), a.opts.CutSize, true)
		sb.WriteString("\n")

		safe, err := a.SafeToID(ctx)
		if err != nil {
			return err
		}
		writeSafeToID(&sb, safe)

		contention, err := a.SweepSplitFold(ctx)
		if err != nil {
			return err
		}
		writeContention(&sb, contention)
	}

	if opts.InspectPlayer != "" && len(a.tally.Open) > 0 {
		keep := opts.ScenarioMax
		if keep <= 0 {
			keep = DefaultScenarioMax
		}
		in, err := a.Inspect(opts.InspectPlayer, keep)
		if err != nil {
			return err
		}
		sb.WriteString("\n")
		writeInspection(&sb, in)
	}

	if opts.ShowOpponents != "" {
		opps, err := a.tally.OpponentsOf(opts.ShowOpponents)
		if errors.Is(err, ErrUnknownPlayer) {
			log.Warnf("no pairings found for %q", opts.ShowOpponents)
		} else if err != nil {
			return err
		} else {
			sb.WriteString("\n")
			writeOpponents(&sb, normalizeName(opts.ShowOpponents), opps)
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func logTally(t *Tally, log logrus.FieldLogger) {
	for _, name := range t.Players() {
		opps := t.Opponents[name].ToSlice()
		sort.Strings(opps)
		log.WithFields(logrus.Fields{
			"player":    name,
			"points":    t.Scores[name],
			"opponents": strings.Join(opps, ", "),
		}).Debug("tally")
	}
	for _, m := range t.Open {
		log.Debugf("open result: %v vs %v", m.Left, m.Right)
	}
}

func writeFixedResult(sb *strings.Builder, standings []Standing, cutSize int) {
	sb.WriteString(" FIXED RESULT\n")
	sb.WriteString("==============\n")
	for idx, st := range standings {
		sb.WriteString(fmt.Sprintf("%2d: %v\n", idx+1, st))
	}
	sb.WriteString("\n")
	for idx, st := range standings {
		if idx >= cutSize {
			break
		}
		sb.WriteString(fmt.Sprintf("%2d%s seed: %s\n", idx+1, ordinalSuffix(idx+1),
			st.Name))
	}
}

func writeOdds(sb *strings.Builder, odds []Odds, cutSize int, twoFourOne bool) {
	if twoFourOne {
		sb.WriteString(fmt.Sprintf("ODDS FOR TOP %d CUT (241's enforced):\n",
			cutSize))
	} else {
		sb.WriteString(fmt.Sprintf("ODDS FOR TOP %d CUT (all outcomes):\n",
			cutSize))
	}
	for _, o := range odds {
		sb.WriteString(fmt.Sprintf("%v\n", o))
	}
}

func writeSafeToID(sb *strings.Builder, safe []string) {
	if len(safe) == 0 {
		return
	}
	sb.WriteString("SAFE TO ID\n")
	for _, name := range safe {
		sb.WriteString(fmt.Sprintf("  %s\n", name))
	}
	sb.WriteString("\n")
}

// writeContention lists players with a chance of making the cut if they
// sweep their open match, sorted by name.
func writeContention(sb *strings.Builder, contention []Contention) {
	var rows []Contention
	for _, c := range contention {
		if c.Sweep > 0 {
			rows = append(rows, c)
		}
	}
	if len(rows) == 0 {
		return
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Name < rows[j].Name
	})

	sb.WriteString("PLAYERS UP FOR CONTENTION\n")
	sb.WriteString("                         SWEEP   SPLIT     FOLD\n")
	for _, c := range rows {
		sb.WriteString(fmt.Sprintf("%v\n", c))
	}
}

func writeInspection(sb *strings.Builder, in *Inspection) {
	if in.AllScenarios() {
		sb.WriteString(fmt.Sprintf("%s makes it to the top cut in all %d scenarios\n",
			in.Player, in.Total))
		return
	}

	sb.WriteString(fmt.Sprintf("There are %d scenarios where %s makes it to the top cut\n\n",
		in.Matching, in.Player))
	for idx, lines := range in.Scenarios {
		sb.WriteString(fmt.Sprintf("Scenario %d:\n", idx+1))
		for _, line := range lines {
			sb.WriteString(fmt.Sprintf("    %s\n", line))
		}
		sb.WriteString("\n")
	}
	if rest := in.Matching - len(in.Scenarios); rest > 0 {
		sb.WriteString(fmt.Sprintf("... and %d other scenarios\n", rest))
	}
}

func writeOpponents(sb *strings.Builder, player string, opps []Opponent) {
	sb.WriteString(fmt.Sprintf("Opponents for %s\n", player))
	for _, o := range opps {
		sb.WriteString(fmt.Sprintf("  vs. %s (%d points)\n", o.Name, o.Points))
	}
}

func ordinalSuffix(n int) string {
	if n%100 >= 11 && n%100 <= 13 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
