package notation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hailam/draughts/internal/board"
	"github.com/hailam/draughts/internal/movegen"
)

// ParseSteps parses numeric step notation: "from-to" for a
// non-capture, or "from x via1 x ... x to" for a capture (landing
// squares separated by 'x'), per spec.md Section 6.
func ParseSteps(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("move notation: empty")
	}

	sep := "-"
	if strings.ContainsRune(s, 'x') {
		sep = "x"
	}

	fields := strings.Split(s, sep)
	steps := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("move notation %q: %w", s, err)
		}
		steps[i] = n
	}
	if sep == "-" && len(steps) != 2 {
		return nil, fmt.Errorf("move notation %q: non-capture must have exactly two squares", s)
	}
	return steps, nil
}

// MatchMove matches a parsed step list against pos's legal moves,
// per spec.md Section 6: a length-2 list matches by (first, last)
// only; a longer list matches by set equality of its squares. It
// returns nil if no legal move matches (an illegal move is a boundary
// check at this external-input layer, not an error from the core, see
// spec.md Section 7).
func MatchMove(pos *board.Position, steps []int) *board.Move {
	if len(steps) < 2 {
		return nil
	}

	moves := movegen.Generate(pos)
	var found *board.Move

	for i := range moves {
		m := moves[i]
		var match bool
		if len(steps) == 2 {
			match = m.From() == steps[0] && m.To() == steps[len(steps)-1]
		} else {
			match = sameSteps(m.Steps, steps)
		}
		if match {
			if found != nil {
				return nil // ambiguous: not the unique match the spec requires
			}
			found = &moves[i]
		}
	}

	return found
}

func sameSteps(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	seen := map[int]int{}
	for _, v := range a {
		seen[v]++
	}
	for _, v := range b {
		seen[v]--
	}
	for _, n := range seen {
		if n != 0 {
			return false
		}
	}
	return true
}

// RenderMove renders m as "<first><sep><last>".
func RenderMove(m *board.Move) string {
	return m.String()
}
