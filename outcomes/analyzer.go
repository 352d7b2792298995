/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package outcomes

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
)

var (
	ErrTooManyOpen   = errors.New("too many open matches")
	ErrNoOpenMatches = errors.New("no open matches")
)

// 3^12 scenarios is about half a million standings computations.
const DefaultMaxOpenMatches = 12

type Options struct {
	// Rounds is the number of Swiss rounds in the event.
	Rounds int
	// CutSize is the number of players advancing to the top cut.
	CutSize int
	// MaxOpenMatches bounds the enumeration; 0 means DefaultMaxOpenMatches.
	MaxOpenMatches int
}

// Analyzer enumerates the ways the open matches of a Tally can finish and
// reports who makes the top cut in each.
type Analyzer struct {
	tally *Tally
	sched *schedule
	opts  Options
}

func NewAnalyzer(t *Tally, opts Options) (*Analyzer, error) {
	if opts.Rounds < 1 {
		return nil, fmt.Errorf("outcomes: rounds must be at least 1, got %d",
			opts.Rounds)
	}
	if opts.CutSize < 1 {
		return nil, fmt.Errorf("outcomes: cut size must be at least 1, got %d",
			opts.CutSize)
	}
	if opts.MaxOpenMatches == 0 {
		opts.MaxOpenMatches = DefaultMaxOpenMatches
	}
	if len(t.Open) > opts.MaxOpenMatches {
		return nil, fmt.Errorf("%w: %d open, limit %d", ErrTooManyOpen,
			len(t.Open), opts.MaxOpenMatches)
	}

	return &Analyzer{
		tally: t,
		sched: newSchedule(t, opts.Rounds),
		opts:  opts,
	}, nil
}

type result struct {
	left  int
	right int
	label string
}

// sweep, split, fold from the left player's point of view
var results = []result{
	{left: 6, right: 0, label: "6 - 0"},
	{left: 3, right: 3, label: "3 - 3"},
	{left: 0, right: 6, label: "0 - 6"},
}

func (r result) isSplit() bool {
	return r.left == r.right
}

type step struct {
	match Match
	res   result
}

func (s step) String() string {
	return fmt.Sprintf("%-20s %s %20s", s.match.Left, s.res.label, s.match.Right)
}

// walk calls leaf once per resolution of open with scores holding that
// resolution's points. scores is restored before walk returns. With
// twoFourOne set, splits are not considered.
func walk(scores map[string]int, open []Match, twoFourOne bool, path []step,
	leaf func(path []step)) {

	if len(open) == 0 {
		leaf(path)
		return
	}
	m := open[0]
	for _, r := range results {
		if twoFourOne && r.isSplit() {
			continue
		}
		scores[m.Left] += r.left
		scores[m.Right] += r.right
		walk(scores, open[1:], twoFourOne, append(path, step{match: m, res: r}),
			leaf)
		scores[m.Left] -= r.left
		scores[m.Right] -= r.right
	}
}

func (a *Analyzer) topCut(scores map[string]int) []Standing {
	standings := a.sched.rank(scores)
	if len(standings) > a.opts.CutSize {
		standings = standings[:a.opts.CutSize]
	}
	return standings
}

func (a *Analyzer) makesCut(scores map[string]int, player string) bool {
	for _, st := range a.topCut(scores) {
		if st.Name == player {
			return true
		}
	}
	return false
}

// cutCount returns how many resolutions of open put player in the top
// cut, and how many resolutions there are.
func (a *Analyzer) cutCount(scores map[string]int, open []Match,
	player string) (int, int) {

	made, leaves := 0, 0
	walk(scores, open, false, nil, func([]step) {
		leaves++
		if a.makesCut(scores, player) {
			made++
		}
	})
	return made, leaves
}

// Standings ranks the players on the points reported so far.
func (a *Analyzer) Standings() []Standing {
	return a.sched.rank(a.tally.Scores)
}

// Odds is how often a player reaches the top cut across all scenarios.
type Odds struct {
	Name  string
	Count int
	Pct   float64
}

func (o Odds) String() string {
	return fmt.Sprintf("%-20s %7.3f%%", o.Name, o.Pct)
}

// CutOdds enumerates every finish of the open matches and returns, for
// each player reaching the cut at least once, the share of scenarios in
// which they do.
func (a *Analyzer) CutOdds(twoFourOne bool) []Odds {
	counts := make(map[string]int)
	leaves := 0
	scores := a.tally.copyScores()
	walk(scores, a.tally.Open, twoFourOne, nil, func([]step) {
		leaves++
		for _, st := range a.topCut(scores) {
			counts[st.Name]++
		}
	})

	odds := make([]Odds, 0, len(counts))
	for name, count := range counts {
		odds = append(odds, Odds{
			Name:  name,
			Count: count,
			Pct:   100 * float64(count) / float64(leaves),
		})
	}
	sort.Slice(odds, func(i, j int) bool {
		if odds[i].Pct != odds[j].Pct {
			return odds[i].Pct > odds[j].Pct
		}
		return odds[i].Name < odds[j].Name
	})

	return odds
}

// splitOff removes player's first open match from open and returns the
// rest plus the match, oriented so that player is on the left.
func splitOff(open []Match, player string) ([]Match, Match, bool) {
	for idx, m := range open {
		if m.Left != player && m.Right != player {
			continue
		}
		rest := make([]Match, 0, len(open)-1)
		rest = append(rest, open[:idx]...)
		rest = append(rest, open[idx+1:]...)
		if m.Right == player {
			m = Match{Left: player, Right: m.Left}
		}
		return rest, m, true
	}

	return open, Match{}, false
}

// forEachPlayer runs fn for every player in parallel, each call with its
// own copy of the points table.
func (a *Analyzer) forEachPlayer(ctx context.Context, players []string,
	fn func(idx int, player string, scores map[string]int)) error {

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for idx, player := range players {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(idx, player, a.tally.copyScores())
			return nil
		})
	}

	return g.Wait()
}

// SafeToID returns the open players who still make the cut in every
// scenario after intentionally drawing (splitting) their own open match.
func (a *Analyzer) SafeToID(ctx context.Context) ([]string, error) {
	players := a.tally.OpenPlayers()
	safe := make([]bool, len(players))
	err := a.forEachPlayer(ctx, players,
		func(idx int, player string, scores map[string]int) {
			rest, m, _ := splitOff(a.tally.Open, player)
			scores[m.Left] += 3
			scores[m.Right] += 3
			made, leaves := a.cutCount(scores, rest, player)
			safe[idx] = made == leaves
		})
	if err != nil {
		return nil, err
	}

	var ret []string
	for idx, player := range players {
		if safe[idx] {
			ret = append(ret, player)
		}
	}
	return ret, nil
}

// Contention is a player's top-cut odds for each result of their own
// open match.
type Contention struct {
	Name  string
	Sweep float64
	Split float64
	Fold  float64
}

func (c Contention) String() string {
	return fmt.Sprintf("%-20s %7.3f%% %7.3f%% %7.3f%%", c.Name, c.Sweep,
		c.Split, c.Fold)
}

// SweepSplitFold computes Contention for every open player.
func (a *Analyzer) SweepSplitFold(ctx context.Context) ([]Contention, error) {
	players := a.tally.OpenPlayers()
	ret := make([]Contention, len(players))
	err := a.forEachPlayer(ctx, players,
		func(idx int, player string, scores map[string]int) {
			rest, m, _ := splitOff(a.tally.Open, player)
			c := Contention{Name: player}
			pcts := []*float64{&c.Sweep, &c.Split, &c.Fold}
			for i, r := range results {
				scores[m.Left] += r.left
				scores[m.Right] += r.right
				made, leaves := a.cutCount(scores, rest, player)
				*pcts[i] = 100 * float64(made) / float64(leaves)
				scores[m.Left] -= r.left
				scores[m.Right] -= r.right
			}
			ret[idx] = c
		})
	if err != nil {
		return nil, err
	}

	return ret, nil
}

// Inspection lists the scenarios in which one player makes the cut.
type Inspection struct {
	Player string
	// Total is the number of scenarios enumerated.
	Total int
	// Matching is the number of scenarios in which Player makes the cut.
	Matching int
	// Scenarios holds the first few matching scenarios, one line per
	// open match.
	Scenarios [][]string
}

// AllScenarios reports whether Player makes the cut no matter what.
func (in *Inspection) AllScenarios() bool {
	return in.Matching == in.Total
}

// Inspect enumerates the open matches and keeps up to keep scenarios in
// which player reaches the top cut.
func (a *Analyzer) Inspect(player string, keep int) (*Inspection, error) {
	player = normalizeName(player)
	if _, ok := a.tally.Scores[player]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlayer, player)
	}
	if len(a.tally.Open) == 0 {
		return nil, ErrNoOpenMatches
	}

	in := &Inspection{Player: player}
	scores := a.tally.copyScores()
	walk(scores, a.tally.Open, false, nil, func(path []step) {
		in.Total++
		if !a.makesCut(scores, player) {
			return
		}
		in.Matching++
		if len(in.Scenarios) >= keep {
			return
		}
		lines := make([]string, len(path))
		for i, s := range path {
			lines[i] = s.String()
		}
		in.Scenarios = append(in.Scenarios, lines)
	})

	return in, nil
}
