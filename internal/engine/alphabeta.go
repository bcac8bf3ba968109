package engine

import (
	"github.com/hailam/draughts/internal/board"
	"github.com/hailam/draughts/internal/movegen"
)

// ABSearcher runs classical fail-soft alpha-beta with aspiration
// windows (spec.md Section 4.7).
//
// The spec describes this searcher with explicit max/min procedures
// for player in {0, 1}. Because every Position is already written from
// its own side-to-move's perspective (Section 3's rotation
// convention), the idiomatic Go shape of "explicit max for me, min for
// the opponent" is negamax: negate the child's score instead of
// switching comparison direction. The player==1 quiescence return of
// "-pos.score" in the spec's formulation falls out automatically here
// as the negation applied to every recursive call.
type ABSearcher struct {
	tt               *ABTable
	cache            *movegen.Cache
	nodes            uint64
	aspirationWindow int
}

// NewABSearcher creates an alpha-beta searcher sharing cache with the
// other searchers owned by the same Engine. capacity sizes the
// searcher's own transposition table (0 uses TableSize); aspirationWindow
// sets the searcher's window half-width (0 uses DefaultAspirationWindow).
func NewABSearcher(cache *movegen.Cache, capacity, aspirationWindow int) *ABSearcher {
	if aspirationWindow <= 0 {
		aspirationWindow = DefaultAspirationWindow
	}
	return &ABSearcher{tt: NewABTable(capacity), cache: cache, aspirationWindow: aspirationWindow}
}

// Nodes returns the number of nodes visited by the most recent search.
func (s *ABSearcher) Nodes() uint64 { return s.nodes }

// Search runs iterative deepening alpha-beta with aspiration windows
// until maxNodes nodes have been visited or a decided score is found.
func (s *ABSearcher) Search(pos *board.Position, maxNodes int) (*board.Move, int, []board.Move) {
	s.tt.NewSearch()
	s.nodes = 0

	var bestMove *board.Move
	score := pos.Score()
	alpha, beta := -MateValue, MateValue

	for depth := 1; depth <= MaxDepth; {
		sc := s.negamax(pos, alpha, beta, depth)

		if sc <= alpha || sc >= beta {
			// Aspiration window missed: widen fully and redo this depth.
			alpha, beta = -MateValue, MateValue
			continue
		}

		score = sc
		alpha = score - s.aspirationWindow
		beta = score + s.aspirationWindow

		if e, ok := s.tt.Probe(pos.Key()); ok {
			bestMove = e.Best
		}

		depth++
		if s.nodes >= uint64(maxNodes) || abs(score) >= MateValue {
			break
		}
	}

	return bestMove, score, ReconstructPV(abSource{s.tt}, pos)
}

func (s *ABSearcher) negamax(pos *board.Position, alpha, beta, depth int) int {
	s.nodes++

	key := pos.Key()
	if e, ok := s.tt.Probe(key); ok && e.Depth >= depth {
		return e.Score
	}

	if abs(pos.Score()) >= MateValue {
		return pos.Score()
	}

	hasCapture := movegen.HasCapture(pos)

	if depth >= 4 && !hasCapture {
		r := nullMoveReduction(depth)
		nullscore := -s.negamax(pos.Rotate(), -beta, -beta+1, depth-1-r)
		if nullscore >= beta {
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
	a := alpha
	for i := range ordered {
		m := ordered[i]
		child := pos.DoMove(&m)
		score := -s.negamax(child, -beta, -a, depth-1)
		if score > best {
			best = score
			bestMove = &m
		}
		if best > a {
			a = best
		}
		if a >= beta {
			break
		}
	}

	s.tt.Store(key, ABEntry{Depth: depth, Score: best, Best: bestMove})
	return best
}
