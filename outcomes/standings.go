/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package outcomes

import (
	"fmt"
	"sort"

	"github.com/mikeb26/cobrai-pairings/internal"
)

// points available per round, used to scale strength of schedule
const maxRoundPoints = 3

// Standing is one ranked row: points, strength of schedule (SoS) and
// extended strength of schedule (ESoS).
type Standing struct {
	Name  string
	Score int
	SoS   float64
	ESoS  float64
}

func (s Standing) String() string {
	return fmt.Sprintf("%-20s %3d %06.3f %3.3f", s.Name, s.Score, s.SoS, s.ESoS)
}

// rankedBefore orders by score, SoS, ESoS (all descending) then name.
func rankedBefore(a, b Standing) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if a.SoS != b.SoS {
		return a.SoS > b.SoS
	}
	if a.ESoS != b.ESoS {
		return a.ESoS > b.ESoS
	}
	return a.Name < b.Name
}

// schedule is the per-player view of a Tally used when ranking: real
// opponents (bye excluded) and the number of rounds actually played.
type schedule struct {
	players   []string
	opponents map[string][]string
	played    map[string]int
}

func newSchedule(t *Tally, rounds int) *schedule {
	s := &schedule{
		players:   t.Players(),
		opponents: make(map[string][]string),
		played:    make(map[string]int),
	}
	for _, name := range s.players {
		r := rounds
		t.Opponents[name].Each(func(opp string) bool {
			if opp == internal.ByePlayer {
				r--
			} else {
				s.opponents[name] = append(s.opponents[name], opp)
			}
			return false
		})
		sort.Strings(s.opponents[name])
		s.played[name] = r
	}

	return s
}

// rank computes standings for the given points table. SoS is the
// opponents' points over the points available in the rounds played;
// ESoS averages the opponents' SoS over the same rounds.
func (s *schedule) rank(scores map[string]int) []Standing {
	sos := make(map[string]float64, len(s.players))
	for _, name := range s.players {
		r := s.played[name]
		if r <= 0 {
			continue
		}
		sum := 0
		for _, opp := range s.opponents[name] {
			sum += scores[opp]
		}
		sos[name] = float64(sum) / float64(r*maxRoundPoints)
	}

	standings := make([]Standing, 0, len(s.players))
	for _, name := range s.players {
		st := Standing{Name: name, Score: scores[name], SoS: sos[name]}
		if r := s.played[name]; r > 0 {
			for _, opp := range s.opponents[name] {
				st.ESoS += sos[opp]
			}
			st.ESoS /= float64(r)
		}
		standings = append(standings, st)
	}
	sort.Slice(standings, func(i, j int) bool {
		return rankedBefore(standings[i], standings[j])
	})

	return standings
}
