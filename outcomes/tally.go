/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package outcomes

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/mikeb26/cobrai-pairings/cobrai"
	"github.com/mikeb26/cobrai-pairings/internal"
	"golang.org/x/text/unicode/norm"
)

var ErrUnknownPlayer = errors.New("unknown player")

// Match is a pairing whose result has not been reported yet.
type Match struct {
	Left  string
	Right string
}

// Tally is the state of a tournament as far as the posted pairings go:
// who played whom, points per player and the matches still open.
type Tally struct {
	Opponents map[string]mapset.Set[string]
	Scores    map[string]int
	Open      []Match
}

// NewTally accumulates pairings. A pairing with either score side empty
// is recorded as an open match; sides that are present still count.
func NewTally(pairings []cobrai.Pairing) (*Tally, error) {
	t := &Tally{
		Opponents: make(map[string]mapset.Set[string]),
		Scores:    make(map[string]int),
	}

	for idx, p := range pairings {
		left := normalizeName(p.LeftName)
		right := normalizeName(p.RightName)
		if left == "" || right == "" {
			return nil, fmt.Errorf("outcomes.tally: pairing %d: missing player name",
				idx)
		}

		t.addOpponent(left, right)
		t.addOpponent(right, left)

		leftScore, err := parseScore(p.LeftScore)
		if err != nil {
			return nil, fmt.Errorf("outcomes.tally: pairing %d: %w", idx, err)
		}
		rightScore, err := parseScore(p.RightScore)
		if err != nil {
			return nil, fmt.Errorf("outcomes.tally: pairing %d: %w", idx, err)
		}
		t.Scores[left] += leftScore
		t.Scores[right] += rightScore

		if p.IsOpen() {
			t.Open = append(t.Open, Match{Left: left, Right: right})
		}
	}

	return t, nil
}

func (t *Tally) addOpponent(player, opponent string) {
	opps, ok := t.Opponents[player]
	if !ok {
		opps = mapset.NewThreadUnsafeSet[string]()
		t.Opponents[player] = opps
	}
	opps.Add(opponent)
}

// Players returns every ranked player, sorted by name.
func (t *Tally) Players() []string {
	var names []string
	for name := range t.Scores {
		if name == internal.ByePlayer {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// OpenPlayers returns the players with at least one open match, sorted.
func (t *Tally) OpenPlayers() []string {
	players := mapset.NewThreadUnsafeSet[string]()
	for _, m := range t.Open {
		players.Add(m.Left)
		players.Add(m.Right)
	}
	players.Remove(internal.ByePlayer)
	names := players.ToSlice()
	sort.Strings(names)

	return names
}

// Opponent is a player's opponent and that opponent's current points.
type Opponent struct {
	Name   string
	Points int
}

// OpponentsOf lists player's opponents by name.
func (t *Tally) OpponentsOf(player string) ([]Opponent, error) {
	player = normalizeName(player)
	opps, ok := t.Opponents[player]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlayer, player)
	}

	names := opps.ToSlice()
	sort.Strings(names)
	ret := make([]Opponent, 0, len(names))
	for _, name := range names {
		ret = append(ret, Opponent{Name: name, Points: t.Scores[name]})
	}

	return ret, nil
}

func (t *Tally) copyScores() map[string]int {
	scores := make(map[string]int, len(t.Scores))
	for k, v := range t.Scores {
		scores[k] = v
	}
	return scores
}

func normalizeName(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}

// parseScore reads the leading integer of a score side such as "6" or
// "3 (ID)". A blank side counts as 0.
func parseScore(s string) (int, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0, nil
	}
	v, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, fmt.Errorf("invalid score %q: %w", s, err)
	}

	return v, nil
}
