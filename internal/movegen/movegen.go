// Package movegen enumerates legal moves for a draughts-100 position,
// honoring the maximum-capture rule and king long-range sliding
// captures with multi-leg extension.
package movegen

import "github.com/hailam/draughts/internal/board"

var dirs = [4]*[52]int{&board.NE, &board.NW, &board.SE, &board.SW}
var forwardDirs = [2]*[52]int{&board.NE, &board.NW}

// Generate returns the legal moves of pos under the maximum-capture
// rule: if any capture exists anywhere on the board, the legal moves
// are exactly the completed captures of maximum length; otherwise the
// legal moves are all basic non-captures.
func Generate(pos *board.Position) []board.Move {
	captures := allCaptures(pos)
	if len(captures) > 0 {
		return filterMaximal(captures)
	}
	return allNonCaptures(pos)
}

// HasCapture reports whether the side to move has at least one capture
// available anywhere on the board. It is cheap: a single one-leg probe
// per own piece, with no recursive extension, since any legal capture
// implies at least one admissible one-leg capture exists.
func HasCapture(pos *board.Position) bool {
	b := pos.Board()
	for sq := 1; sq <= board.NumSquares; sq++ {
		p := b[sq]
		if p != board.Man && p != board.King {
			continue
		}
		if len(oneLegCaptures(b, p == board.King, sq, nil)) > 0 {
			return true
		}
	}
	return false
}

func filterMaximal(moves []board.Move) []board.Move {
	max := 0
	for _, m := range moves {
		if len(m.Takes) > max {
			max = len(m.Takes)
		}
	}
	out := moves[:0:0]
	for _, m := range moves {
		if len(m.Takes) == max {
			out = append(out, m)
		}
	}
	return out
}

// allNonCaptures generates every basic non-capture move on the board.
func allNonCaptures(pos *board.Position) []board.Move {
	b := pos.Board()
	var out []board.Move
	for sq := 1; sq <= board.NumSquares; sq++ {
		switch b[sq] {
		case board.Man:
			for _, d := range forwardDirs {
				dest := d[sq]
				if dest != 0 && b[dest] == board.Empty {
					out = append(out, board.NewNonCapture(sq, dest))
				}
			}
		case board.King:
			for _, d := range dirs {
				for next := d[sq]; next != 0 && b[next] == board.Empty; next = d[next] {
					out = append(out, board.NewNonCapture(sq, next))
				}
			}
		}
	}
	return out
}

// allCaptures generates every completed capture chain on the board, in
// square order and, within a square, direction order. Only chains with
// no admissible extension are yielded (see the Design Notes' "over-
// yields non-maximal prefixes" bug: collectExtensions only stops
// recursing, never emits, until extension is exhausted).
func allCaptures(pos *board.Position) []board.Move {
	b := pos.Board()
	var out []board.Move
	for sq := 1; sq <= board.NumSquares; sq++ {
		p := b[sq]
		if p != board.Man && p != board.King {
			continue
		}
		out = append(out, collectExtensions(b, p == board.King, sq, []int{sq}, nil)...)
	}
	return out
}

// legCandidate is one admissible one-leg capture: land on `to` by
// taking the piece on `took`.
type legCandidate struct {
	to, took int
}

// oneLegCaptures returns every one-leg capture available from `from`
// on working board b, excluding any that would retake a square already
// present in taken (the fix for the Turkish-style re-jump bug: captured
// pieces are left on the working board so they still block the
// diagonal, but their square index is what makes a retake illegal, not
// board emptiness).
func oneLegCaptures(b [52]byte, isKing bool, from int, taken []int) []legCandidate {
	var out []legCandidate
	if isKing {
		for _, d := range dirs {
			pending := -1
			for next := d[from]; next != 0; {
				c := b[next]
				if c == board.Empty {
					if pending >= 0 {
						out = append(out, legCandidate{to: next, took: pending})
					}
					next = d[next]
					continue
				}
				if board.IsLower(c) {
					if pending >= 0 || containsInt(taken, next) {
						break // two opponent pieces in a row, or a re-jump: blocked
					}
					pending = next
					next = d[next]
					continue
				}
				break // own piece: stop
			}
		}
		return out
	}

	for _, d := range dirs {
		mid := d[from]
		if mid == 0 || !board.IsLower(b[mid]) {
			continue
		}
		if containsInt(taken, mid) {
			continue
		}
		landing := d[mid]
		if landing != 0 && b[landing] == board.Empty {
			out = append(out, legCandidate{to: landing, took: mid})
		}
	}
	return out
}

// collectExtensions walks the capture tree rooted at the partial
// chain (steps, takes) currently standing on square `current` of
// working board b, returning only the chains that cannot be extended
// further.
func collectExtensions(b [52]byte, isKing bool, current int, steps []int, takes []int) []board.Move {
	candidates := oneLegCaptures(b, isKing, current, takes)
	if len(candidates) == 0 {
		if len(takes) == 0 {
			return nil
		}
		return []board.Move{{Steps: append([]int(nil), steps...), Takes: append([]int(nil), takes...)}}
	}

	var out []board.Move
	for _, c := range candidates {
		nb := b
		piece := nb[current]
		nb[current] = board.Empty
		nb[c.to] = piece

		nextSteps := append(append([]int(nil), steps...), c.to)
		nextTakes := append(append([]int(nil), takes...), c.took)
		out = append(out, collectExtensions(nb, isKing, c.to, nextSteps, nextTakes)...)
	}
	return out
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
