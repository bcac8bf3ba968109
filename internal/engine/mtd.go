package engine

import (
	"sort"

	"github.com/hailam/draughts/internal/board"
	"github.com/hailam/draughts/internal/movegen"
)

// MTDSearcher runs MTD-bi: bisection-on-score iterative deepening over
// a null-window alpha-beta probe (spec.md Section 4.5).
type MTDSearcher struct {
	tt    *MTDTable
	cache *movegen.Cache
	nodes uint64
}

// NewMTDSearcher creates an MTD-bi searcher sharing cache with the
// other searchers owned by the same Engine. capacity sizes the
// searcher's own transposition table (0 uses TableSize).
func NewMTDSearcher(cache *movegen.Cache, capacity int) *MTDSearcher {
	return &MTDSearcher{tt: NewMTDTable(capacity), cache: cache}
}

// Nodes returns the number of nodes visited by the most recent search.
func (s *MTDSearcher) Nodes() uint64 { return s.nodes }

// Search runs iterative deepening MTD-bi until maxNodes nodes have
// been visited or a decided (mate) score is reached, returning the
// best move, its score, and the reconstructed principal variation.
func (s *MTDSearcher) Search(pos *board.Position, maxNodes int) (*board.Move, int, []board.Move) {
	s.tt.NewSearch()
	s.nodes = 0

	var bestMove *board.Move
	score := pos.Score()

	for depth := 1; depth <= MaxDepth; depth++ {
		lower, upper := -MateValue, MateValue
		for lower < upper-3 {
			gamma := floorDiv(lower+upper+1, 2)
			score = s.bound(pos, gamma, depth)
			if score >= gamma {
				lower = score
			} else {
				upper = score
			}
		}

		if e, ok := s.tt.Probe(pos.Key()); ok {
			bestMove = e.Best
		}

		if s.nodes >= uint64(maxNodes) || abs(score) >= MateValue {
			break
		}
	}

	return bestMove, score, ReconstructPV(pvSource{s.tt}, pos)
}

// bound is the null-window probe: it returns a value known to be
// >= gamma or known to be < gamma, never the exact score.
func (s *MTDSearcher) bound(pos *board.Position, gamma, depth int) int {
	s.nodes++

	key := pos.Key()
	if e, ok := s.tt.Probe(key); ok && e.Depth >= depth {
		if (e.Score < e.Gamma && e.Score < gamma) || (e.Score >= e.Gamma && e.Score >= gamma) {
			return e.Score
		}
	}

	if abs(pos.Score()) >= MateValue {
		return pos.Score()
	}

	hasCapture := movegen.HasCapture(pos)

	if depth >= 4 && !hasCapture {
		r := nullMoveReduction(depth)
		nullscore := -s.bound(pos.Rotate(), 1-gamma, depth-1-r)
		if nullscore >= gamma {
			return nullscore
		}
	}

	if depth <= 0 && !hasCapture {
		return pos.Score()
	}

	moves := s.cache.GenerateCached(pos)
	if len(moves) == 0 {
		return pos.Score()
	}
	ordered := orderByEvalMove(pos, moves)

	best := -MateValue
	var bestMove *board.Move
	for i := range ordered {
		m := ordered[i]
		child := pos.DoMove(&m)
		score := -s.bound(child, 1-gamma, depth-1)
		if score > best {
			best = score
			bestMove = &m
		}
		if score >= gamma {
			break
		}
	}

	s.tt.Store(key, MTDEntry{Depth: depth, Score: best, Gamma: gamma, Best: bestMove})
	return best
}

// orderByEvalMove returns moves sorted by EvalMove descending, stable
// so ties keep the move generator's own order (spec.md Section 4.5's
// tie-breaking rule).
func orderByEvalMove(pos *board.Position, moves []board.Move) []board.Move {
	type scored struct {
		move  board.Move
		score int
	}
	ranked := make([]scored, len(moves))
	for i, m := range moves {
		ranked[i] = scored{move: m, score: pos.EvalMove(m)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})
	ordered := make([]board.Move, len(ranked))
	for i, r := range ranked {
		ordered[i] = r.move
	}
	return ordered
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
