// Package book implements the opening book file reader: an external
// collaborator to the search core (spec.md Section 1) that turns lines
// of numeric move notation into a lookup table the CLI can consult
// before invoking a searcher.
package book

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hailam/draughts/internal/board"
	"github.com/hailam/draughts/internal/notation"
)

// Entry is one opening book move: how often it was seen across the
// loaded lines.
type Entry struct {
	Move      board.Move
	Frequency int
}

// Book is a position-keyed opening book.
type Book struct {
	entries map[uint64][]Entry
}

// New creates an empty book.
func New() *Book {
	return &Book{entries: make(map[uint64][]Entry)}
}

// LoadFile loads a book from a whitespace-separated numeric-notation
// file, one opening per line.
func LoadFile(path string) (*Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("book: open %s: %w", path, err)
	}
	defer f.Close()
	return LoadReader(f)
}

// LoadReader loads a book from r. Each line is whitespace-separated
// numeric notation with move-number prefixes ("N." or "NN.") stripped;
// moves alternate colors starting from White, replayed from the
// initial position with notation.MatchMove.
func LoadReader(r io.Reader) (*Book, error) {
	b := New()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		pos := board.InitialPosition()
		ply := 0
		for _, tok := range strings.Fields(line) {
			tok = stripMoveNumber(tok)
			if tok == "" {
				continue
			}

			steps, err := notation.ParseSteps(tok)
			if err != nil {
				return nil, fmt.Errorf("book: %w", err)
			}

			// Black's moves are written in board numbering, but pos is
			// in Black's rotated frame, so mirror the squares.
			if ply%2 == 1 {
				for i := range steps {
					steps[i] = board.NumSquares + 1 - steps[i]
				}
			}

			m := notation.MatchMove(pos, steps)
			if m == nil {
				return nil, fmt.Errorf("book: %q is not a legal move in this line", tok)
			}

			b.record(pos.Key(), *m)
			pos = pos.DoMove(m)
			ply++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("book: %w", err)
	}

	return b, nil
}

// Probe returns the most frequently seen move recorded for key, with
// ties broken in favor of the first-seen move.
func (b *Book) Probe(key uint64) (board.Move, bool) {
	entries, ok := b.entries[key]
	if !ok || len(entries) == 0 {
		return board.Move{}, false
	}
	best := entries[0]
	for _, e := range entries[1:] {
		if e.Frequency > best.Frequency {
			best = e
		}
	}
	return best.Move, true
}

// Len reports how many distinct positions the book covers.
func (b *Book) Len() int {
	return len(b.entries)
}

func (b *Book) record(key uint64, m board.Move) {
	entries := b.entries[key]
	for i := range entries {
		if entries[i].Move.Equal(m) {
			entries[i].Frequency++
			return
		}
	}
	b.entries[key] = append(entries, Entry{Move: m, Frequency: 1})
}

// stripMoveNumber removes a leading "N." or "NN." move-number prefix
// from tok, whether it shares the token with the move itself
// ("1.32-28") or is the whole token ("1."). Returns "" when tok was
// only the move-number marker.
func stripMoveNumber(tok string) string {
	i := strings.IndexByte(tok, '.')
	if i < 0 {
		return tok
	}
	prefix := tok[:i]
	if prefix == "" || len(prefix) > 2 || !isDigits(prefix) {
		return tok
	}
	return tok[i+1:]
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
