package board

import "strings"

// Position is a complete draughts-100 position: the 52-cell board
// (indices 0 and 51 are off-board sentinels) and the running
// evaluation from the side to move's perspective.
//
// A Position is never mutated in place by the engine: Rotate and
// DoMove always return a new value. This keeps search's recursive
// tree-walk free of undo bookkeeping at the cost of one array copy per
// node, which international draughts' small 52-byte board makes cheap.
type Position struct {
	board [52]byte
	score int
}

// NewPosition builds a Position from a raw 52-cell board, computing
// its score from scratch via EvalPos. Index 0 and 51 of board must
// hold Sentinel; callers constructing boards (parsers, tests) are
// responsible for that invariant.
func NewPosition(cells [52]byte) *Position {
	p := &Position{board: cells}
	p.score = p.EvalPos()
	return p
}

// InitialPosition returns the standard international draughts-100
// starting position, side to move White (uppercase).
func InitialPosition() *Position {
	var cells [52]byte
	cells[0] = Sentinel
	cells[51] = Sentinel
	for sq := 1; sq <= NumSquares; sq++ {
		switch {
		case sq >= 1 && sq <= 20:
			cells[sq] = EnemyMan
		case sq >= 31 && sq <= 50:
			cells[sq] = Man
		default:
			cells[sq] = Empty
		}
	}
	return NewPosition(cells)
}

// Board returns the raw 52-cell board. Callers must not mutate the
// returned array in place to preserve Position's value semantics.
func (p *Position) Board() [52]byte {
	return p.board
}

// At returns the cell at square sq (0 and 51 are the sentinels).
func (p *Position) At(sq int) byte {
	return p.board[sq]
}

// Score returns the cached evaluation, from the side to move's
// perspective.
func (p *Position) Score() int {
	return p.score
}

// rotatedBoard reverses the board and swaps the case of every cell,
// without touching score. It is the board half of Rotate, factored out
// so EvalPos can evaluate "the opponent's frame" without allocating a
// full *Position.
func (p *Position) rotatedBoard() [52]byte {
	var out [52]byte
	for i := 0; i <= NumSquares+1; i++ {
		out[i] = swapCase(p.board[NumSquares+1-i])
	}
	return out
}

// Rotate returns a new Position whose board is the reverse of this
// one with every cell's case swapped, and whose score is negated.
// Rotate is its own inverse: rotate(rotate(p)) == p.
func (p *Position) Rotate() *Position {
	return &Position{
		board: p.rotatedBoard(),
		score: -p.score,
	}
}

// DoMove applies m and returns the rotated result, so the returned
// Position is from the opponent's perspective (spec.md Section 4.2). A
// nil move is a pass: it rotates without touching the board.
func (p *Position) DoMove(m *Move) *Position {
	if m == nil {
		return p.Rotate()
	}

	delta := p.EvalMove(*m)

	next := p.board
	i, j := m.From(), m.To()
	piece := next[i]
	next[i] = Empty

	if piece == Man && j >= PromotionRowLo && j <= PromotionRowHi {
		piece = King
	}
	next[j] = piece

	for _, k := range m.Takes {
		next[k] = Empty
	}

	applied := &Position{board: next, score: p.score + delta}
	return applied.Rotate()
}

// String renders the board for debugging, one row per line, '.' for
// empty squares and the raw cell byte otherwise.
func (p *Position) String() string {
	var b strings.Builder
	for sq := 1; sq <= NumSquares; sq++ {
		b.WriteByte(p.board[sq])
		if sq%5 == 0 {
			b.WriteByte('\n')
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}
