package board

// PMAT gives the material value of each own piece type.
var PMAT = map[byte]int{
	Man:  1000,
	King: 3000,
}

// pstRowValue is PST['P'] by board row (0 = promotion row), a hand
// tuned table favoring advanced men: 0 on the promotion row, rising to
// a hump near the middle of the board, falling off again toward the
// side to move's own back row.
var pstRowValue = [10]int{0, 10, 20, 35, 50, 55, 50, 35, 20, 10}

// pstMan is PST['P'], sized 52 with sentinel zeros at 0 and 51.
var pstMan [52]int

// pstKing is PST['K']: a flat 50 on every playable square.
var pstKing [52]int

func init() {
	for sq := 1; sq <= NumSquares; sq++ {
		r, _ := rowColOf(sq)
		pstMan[sq] = pstRowValue[r]
		pstKing[sq] = 50
	}
}

// pst returns PST[p][sq] for an uppercase piece p.
func pst(p byte, sq int) int {
	switch p {
	case Man:
		return pstMan[sq]
	case King:
		return pstKing[sq]
	}
	return 0
}

// EvalMove returns the score delta, from the side-to-move's
// perspective, of applying m without actually applying it. It is the
// basis of both do_move's incremental score update and the searchers'
// move-ordering heuristic.
func (p *Position) EvalMove(m Move) int {
	i, j := m.From(), m.To()
	piece := p.board[i]

	from := pst(piece, i) + PMAT[piece]

	landing := piece
	if piece == Man && j >= PromotionRowLo && j <= PromotionRowHi {
		landing = King
	}
	to := pst(landing, j) + PMAT[landing]

	delta := to - from

	for _, k := range m.Takes {
		q := toUpper(p.board[k])
		delta += pst(q, NumSquares+1-k) + PMAT[q]
	}

	return delta
}

// EvalPos returns the static evaluation of the position from the side
// to move's perspective: the side-to-move's material+PST sum minus the
// same sum computed on the rotated (opponent's) board.
func (p *Position) EvalPos() int {
	return evalSide(p.board) - evalSide(p.rotatedBoard())
}

// evalSide sums PMAT[p] + PST[p][i] over every uppercase cell of b.
func evalSide(b [52]byte) int {
	total := 0
	for sq := 1; sq <= NumSquares; sq++ {
		c := b[sq]
		if isUpper(c) {
			total += PMAT[c] + pst(c, sq)
		}
	}
	return total
}
