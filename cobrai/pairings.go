/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package cobrai

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mikeb26/cobrai-pairings/internal"
)

const (
	classAccordion   = "accordion"
	classPairing     = "round_pairing"
	classLeftName    = "left_player_name"
	classRightName   = "right_player_name"
	classCentreScore = "centre_score"
)

// Mode selects which pairing rows of a rounds page are extracted.
type Mode int

const (
	// ModeSwissOnly keeps rows inside accordions headed "Swiss".
	ModeSwissOnly Mode = iota
	// ModeAll keeps every pairing row on the page.
	ModeAll
)

func (m Mode) String() string {
	if m == ModeSwissOnly {
		return "swiss"
	} else if m == ModeAll {
		return "all"
	} else {
		return "?"
	}
}

// Pairing is one match-up as printed: names and the per-side score text.
// A score side is empty when the game has no reported result.
type Pairing struct {
	LeftName   string
	LeftScore  string
	RightName  string
	RightScore string
}

// IsOpen reports whether either side of the pairing is missing a score.
// A side holding only whitespace is missing.
func (p Pairing) IsOpen() bool {
	return strings.TrimSpace(p.LeftScore) == "" ||
		strings.TrimSpace(p.RightScore) == ""
}

// EachPairing calls fn for every pairing selected by mode, in document
// order. Extraction stops at the first malformed row or the first error
// returned by fn; pairings already handed to fn stay handed.
func EachPairing(page Page, mode Mode, fn func(Pairing) error) error {
	doc, err := ParseDocument(page)
	if err != nil {
		return err
	}

	switch mode {
	case ModeAll:
		return eachRow(doc.FindAll("div", classPairing), fn)
	case ModeSwissOnly:
		for idx, acc := range doc.FindOutermost("div", classAccordion) {
			heading, err := acc.FindFirst("h4", "")
			if err != nil {
				return fmt.Errorf("cobrai.extract: accordion %d: %w", idx, err)
			}
			if strings.TrimSpace(heading.Text()) != internal.SwissHeading {
				continue
			}
			err = eachRow(acc.FindAll("div", classPairing), fn)
			if err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("cobrai.extract: unknown mode %d", int(mode))
	}
}

// ExtractPairings collects the result of EachPairing.
func ExtractPairings(page Page, mode Mode) ([]Pairing, error) {
	var pairings []Pairing
	err := EachPairing(page, mode, func(p Pairing) error {
		pairings = append(pairings, p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return pairings, nil
}

func eachRow(rows []Node, fn func(Pairing) error) error {
	for idx, row := range rows {
		p, err := parsePairingRow(row)
		if err != nil {
			return fmt.Errorf("cobrai.extract: row %d: %w", idx, err)
		}
		if err := fn(p); err != nil {
			return err
		}
	}

	return nil
}

func parsePairingRow(row Node) (Pairing, error) {
	var p Pairing

	left, err := row.FindFirst("div", classLeftName)
	if err != nil {
		return p, err
	}
	right, err := row.FindFirst("div", classRightName)
	if err != nil {
		return p, err
	}
	score, err := row.FindFirst("div", classCentreScore)
	if err != nil {
		return p, err
	}

	p.LeftName, err = left.FirstText()
	if err != nil {
		return p, err
	}
	p.LeftScore, p.RightScore, err = SplitScore(score.Text())
	if err != nil {
		return p, err
	}
	p.RightName, err = right.FirstText()
	if err != nil {
		return p, err
	}

	return p, nil
}

// SplitScore splits "<left> - <right>" at its single hyphen and trims both
// sides. Either side may be empty.
func SplitScore(text string) (string, string, error) {
	left, right, found := strings.Cut(text, "-")
	if !found {
		return "", "", fmt.Errorf("%w: no '-' in %q", ErrScore, text)
	}
	if strings.Contains(right, "-") {
		return "", "", fmt.Errorf("%w: more than one '-' in %q", ErrScore, text)
	}

	return strings.TrimSpace(left), strings.TrimSpace(right), nil
}

// WritePairing writes p as four lines: left name, left score, right name,
// right score.
func WritePairing(w io.Writer, p Pairing) error {
	_, err := fmt.Fprintf(w, "%s\n%s\n%s\n%s\n", p.LeftName, p.LeftScore,
		p.RightName, p.RightScore)
	return err
}

// ReadPairings parses the output of WritePairing back into pairings.
// Blank lines trailing the last complete group of four are ignored.
func ReadPairings(r io.Reader) ([]Pairing, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cobrai.read: %w", err)
	}
	for len(lines)%4 != 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines)%4 != 0 {
		return nil, fmt.Errorf("cobrai.read: %d lines is not a multiple of 4",
			len(lines))
	}

	pairings := make([]Pairing, 0, len(lines)/4)
	for i := 0; i < len(lines); i += 4 {
		pairings = append(pairings, Pairing{
			LeftName:   strings.TrimSpace(lines[i]),
			LeftScore:  strings.TrimSpace(lines[i+1]),
			RightName:  strings.TrimSpace(lines[i+2]),
			RightScore: strings.TrimSpace(lines[i+3]),
		})
	}

	return pairings, nil
}
