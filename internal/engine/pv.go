package engine

import "github.com/hailam/draughts/internal/board"

// pvTable is the minimal interface PV reconstruction needs from a
// transposition table: the best move stored for a key, if any.
type pvTable interface {
	bestMove(key uint64) (*board.Move, bool)
}

type pvSource struct{ t *MTDTable }

func (s pvSource) bestMove(key uint64) (*board.Move, bool) {
	e, ok := s.t.Probe(key)
	if !ok {
		return nil, false
	}
	return e.Best, true
}

type pvfSource struct{ t *PVFTable }

func (s pvfSource) bestMove(key uint64) (*board.Move, bool) {
	e, ok := s.t.Probe(key)
	if !ok {
		return nil, false
	}
	return e.Best, true
}

type abSource struct{ t *ABTable }

func (s abSource) bestMove(key uint64) (*board.Move, bool) {
	e, ok := s.t.Probe(key)
	if !ok {
		return nil, false
	}
	return e.Best, true
}

// ReconstructPV walks tbl from pos following stored best moves, per
// spec.md Section 4.8: it stops on a missing entry, a null move, or a
// repeated key (the loop guard against TT cycles).
func ReconstructPV(tbl pvTable, pos *board.Position) []board.Move {
	var pv []board.Move
	visited := make(map[uint64]bool)
	cur := pos

	for {
		key := cur.Key()
		if visited[key] {
			break
		}
		visited[key] = true

		m, ok := tbl.bestMove(key)
		if !ok || m == nil {
			break
		}

		pv = append(pv, *m)
		cur = cur.DoMove(m)
	}

	return pv
}
