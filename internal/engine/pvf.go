package engine

import (
	"github.com/hailam/draughts/internal/board"
	"github.com/hailam/draughts/internal/movegen"
)

// PVFSearcher runs the forced-variation search of spec.md Section 4.6:
// it explores only lines that keep forcing a capture onto the
// opponent, alternating which side is under that constraint.
type PVFSearcher struct {
	tt    *PVFTable
	cache *movegen.Cache
	nodes uint64
}

// NewPVFSearcher creates a PVF searcher sharing cache with the other
// searchers owned by the same Engine. capacity sizes the searcher's
// own transposition table (0 uses TableSize).
func NewPVFSearcher(cache *movegen.Cache, capacity int) *PVFSearcher {
	return &PVFSearcher{tt: NewPVFTable(capacity), cache: cache}
}

// Nodes returns the number of nodes visited by the most recent search.
func (s *PVFSearcher) Nodes() uint64 { return s.nodes }

// Search runs iterative deepening PVF until maxNodes nodes have been
// visited.
func (s *PVFSearcher) Search(pos *board.Position, maxNodes int) (*board.Move, int, []board.Move) {
	s.tt.NewSearch()
	s.nodes = 0

	var bestMove *board.Move
	score := pos.Score()

	for depth := 1; depth <= MaxDepth; depth++ {
		score = s.negamax(pos, 0, depth)

		if e, ok := s.tt.Probe(pos.Key()); ok {
			bestMove = e.Best
		}

		if s.nodes >= uint64(maxNodes) {
			break
		}
	}

	return bestMove, score, ReconstructPV(pvfSource{s.tt}, pos)
}

// negamax evaluates pos with player (0 = the side to move at pos, 1 =
// its opponent) under the forced-capture constraint, returning the
// score from pos's own perspective.
func (s *PVFSearcher) negamax(pos *board.Position, player, depth int) int {
	s.nodes++

	key := pos.Key()
	if e, ok := s.tt.Probe(key); ok && e.Depth >= depth {
		return e.Score
	}

	if abs(pos.Score()) >= MateValue {
		return pos.Score()
	}
	if depth <= 0 && !movegen.HasCapture(pos) {
		return pos.Score()
	}

	moves := s.cache.GenerateCached(pos)
	filtered := filterForced(pos, moves, player)
	if len(filtered) == 0 {
		return pos.Score()
	}
	ordered := orderByEvalMove(pos, filtered)

	best := -MateValue
	var bestMove *board.Move
	for i := range ordered {
		m := ordered[i]
		child := pos.DoMove(&m)
		score := -s.negamax(child, 1-player, depth-1)
		if score > best {
			best = score
			bestMove = &m
		}
	}

	s.tt.Store(key, PVFEntry{Depth: depth, Score: best, Best: bestMove})
	return best
}

// filterForced keeps only the moves admissible under the forced-
// variation constraint: a player's own captures are always explored;
// when player is the side to move (0), a non-capture survives only if
// it leaves the opponent with a capture; when player is the opponent
// (1), only captures survive.
func filterForced(pos *board.Position, moves []board.Move, player int) []board.Move {
	var out []board.Move
	for _, m := range moves {
		if m.IsCapture() {
			out = append(out, m)
			continue
		}
		if player == 1 {
			continue
		}
		child := pos.DoMove(&m)
		if movegen.HasCapture(child) {
			out = append(out, m)
		}
	}
	return out
}
