// Package notation implements the external position and move formats
// spec.md Section 6 hands to the core: the extended board literal, the
// "C:C1,...:C1,..." FEN-like notation, and numeric step notation. None
// of this is part of the core triad (move generation, position,
// search); it is the parsing/rendering boundary the core never
// crosses itself.
package notation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hailam/draughts/internal/board"
)

// ParseExtended parses a 100-character board literal over
// {p,P,k,K,.} (any other character, including whitespace, is
// readability filler and is ignored) into a Position. Exactly 50
// alphabet characters must remain after filtering, mapped
// left-to-right onto squares 1..50.
func ParseExtended(s string) (*board.Position, error) {
	var cells []byte
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case board.Man, board.King, board.EnemyMan, board.EnemyKing, board.Empty:
			cells = append(cells, s[i])
		}
	}
	if len(cells) != board.NumSquares {
		return nil, fmt.Errorf("extended literal: expected %d playable cells, got %d", board.NumSquares, len(cells))
	}

	var arr [52]byte
	arr[0] = board.Sentinel
	arr[51] = board.Sentinel
	copy(arr[1:board.NumSquares+1], cells)

	return board.NewPosition(arr), nil
}

// Render is the inverse of ParseExtended: a 50-character literal,
// one character per square, for debugging and round-trip tests.
func Render(pos *board.Position) string {
	var b strings.Builder
	for sq := 1; sq <= board.NumSquares; sq++ {
		b.WriteByte(pos.At(sq))
	}
	return b.String()
}

// ParseFEN parses "C:C1,C2,...:C1,C2,..." into a Position, where C is
// W or B (side to move), and each group is itself prefixed with the
// color it lists (so the two groups may appear in either order). A
// group entry is a single square number or an "a-b" range; a leading
// K on an entry flags the squares it names as kings. A trailing
// ".suffix" (if present) is dropped; its meaning is left to the
// caller's move-history bookkeeping, outside this parser's scope.
func ParseFEN(s string) (*board.Position, error) {
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}

	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return nil, fmt.Errorf("fen: expected 3 colon-separated fields, got %d", len(parts))
	}

	sideToMove := strings.TrimSpace(parts[0])
	if sideToMove != "W" && sideToMove != "B" {
		return nil, fmt.Errorf("fen: side to move must be W or B, got %q", sideToMove)
	}

	white := map[int]bool{}
	whiteKings := map[int]bool{}
	black := map[int]bool{}
	blackKings := map[int]bool{}

	for _, group := range parts[1:] {
		color, squares, kings, err := parseGroup(group)
		if err != nil {
			return nil, err
		}
		switch color {
		case 'W':
			for sq := range squares {
				white[sq] = true
			}
			for sq := range kings {
				whiteKings[sq] = true
			}
		case 'B':
			for sq := range squares {
				black[sq] = true
			}
			for sq := range kings {
				blackKings[sq] = true
			}
		default:
			return nil, fmt.Errorf("fen: group color must be W or B, got %q", color)
		}
	}

	var arr [52]byte
	arr[0] = board.Sentinel
	arr[51] = board.Sentinel
	for sq := 1; sq <= board.NumSquares; sq++ {
		arr[sq] = board.Empty
	}
	for sq := range white {
		arr[sq] = board.Man
		if whiteKings[sq] {
			arr[sq] = board.King
		}
	}
	for sq := range black {
		arr[sq] = board.EnemyMan
		if blackKings[sq] {
			arr[sq] = board.EnemyKing
		}
	}

	pos := board.NewPosition(arr)
	if sideToMove == "B" {
		pos = pos.Rotate()
	}
	return pos, nil
}

// parseGroup parses "C1,C2,...": the color letter is the group's own
// first character, e.g. "W15,19,K24".
func parseGroup(group string) (color byte, squares, kings map[int]bool, err error) {
	group = strings.TrimSpace(group)
	if group == "" {
		return 0, nil, nil, fmt.Errorf("fen: empty group")
	}
	color = group[0]
	rest := strings.TrimSpace(group[1:])

	squares = map[int]bool{}
	kings = map[int]bool{}
	if rest == "" {
		return color, squares, kings, nil
	}

	for _, tok := range strings.Split(rest, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		isKing := false
		if tok[0] == 'K' {
			isKing = true
			tok = tok[1:]
		}
		lo, hi, err := parseSquareOrRange(tok)
		if err != nil {
			return 0, nil, nil, err
		}
		for sq := lo; sq <= hi; sq++ {
			squares[sq] = true
			if isKing {
				kings[sq] = true
			}
		}
	}
	return color, squares, kings, nil
}

func parseSquareOrRange(tok string) (lo, hi int, err error) {
	if i := strings.IndexByte(tok, '-'); i > 0 {
		lo, err = strconv.Atoi(tok[:i])
		if err != nil {
			return 0, 0, fmt.Errorf("fen: bad range %q: %w", tok, err)
		}
		hi, err = strconv.Atoi(tok[i+1:])
		if err != nil {
			return 0, 0, fmt.Errorf("fen: bad range %q: %w", tok, err)
		}
		return lo, hi, nil
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, 0, fmt.Errorf("fen: bad square %q: %w", tok, err)
	}
	return n, n, nil
}
