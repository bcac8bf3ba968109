// Package engine implements the three coupled searchers described in
// spec.md Section 4: MTD-bi, PVF (forced variation), and classical
// alpha-beta with aspiration windows, each driven by its own bounded
// transposition table.
package engine

import (
	"log"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/hailam/draughts/internal/book"
	"github.com/hailam/draughts/internal/movegen"

	"github.com/hailam/draughts/internal/board"
)

// Result is the outcome of a single top-level search call: the best
// move (nil on a terminal position, and for PVF also when no root move
// starts a forced line), its score from the side to move's
// perspective, and the reconstructed principal variation.
type Result struct {
	Move      *board.Move
	Score     int
	PV        []board.Move
	Nodes     uint64
	Took      time.Duration
	StartedAt time.Time
}

// Config holds the tunables an operator may override when building an
// Engine, persisted across runs by internal/storage's EngineSettings.
// A zero-value field falls back to the package default.
type Config struct {
	// TableCapacity sizes each of the three transposition tables
	// (entries, rounded down to a power of 2). 0 uses TableSize.
	TableCapacity int

	// AspirationWindow sets the alpha-beta searcher's window
	// half-width. 0 uses DefaultAspirationWindow.
	AspirationWindow int
}

// Engine owns the state a search session borrows: the three
// transposition tables, the shared move-generation cache, and an
// optional opening book. This reifies the "globals become owned
// state" design note: nothing here survives past the Engine's own
// lifetime, and no search call leaks a reference into a table that
// outlives it.
type Engine struct {
	mtd   *MTDSearcher
	pvf   *PVFSearcher
	ab    *ABSearcher
	cache *movegen.Cache
	book  *book.Book
}

// NewEngine creates an Engine with empty transposition tables and move
// cache, sized and tuned per cfg.
func NewEngine(cfg Config) *Engine {
	capacity := cfg.TableCapacity
	if capacity <= 0 {
		capacity = TableSize
	}

	cache := movegen.NewCache()
	e := &Engine{
		mtd:   NewMTDSearcher(cache, capacity),
		pvf:   NewPVFSearcher(cache, capacity),
		ab:    NewABSearcher(cache, capacity, cfg.AspirationWindow),
		cache: cache,
	}
	log.Printf("[Engine] created (MTD/PVF/AB tables, table size %s each)", humanize.Comma(int64(tableCapacity(capacity))))
	return e
}

// SetBook attaches an opening book; pass nil to detach it.
func (e *Engine) SetBook(b *book.Book) {
	e.book = b
}

// Book returns the attached opening book, or nil.
func (e *Engine) Book() *book.Book {
	return e.book
}

// SearchMTD runs the MTD-bi searcher (spec.md Section 4.5).
func (e *Engine) SearchMTD(pos *board.Position, maxNodes int) Result {
	return e.run("MTD-bi", pos, maxNodes, e.mtd.Search, e.mtd.Nodes)
}

// SearchPVF runs the forced-variation searcher (spec.md Section 4.6).
func (e *Engine) SearchPVF(pos *board.Position, maxNodes int) Result {
	return e.run("PVF", pos, maxNodes, e.pvf.Search, e.pvf.Nodes)
}

// SearchAB runs the alpha-beta searcher with aspiration windows
// (spec.md Section 4.7).
func (e *Engine) SearchAB(pos *board.Position, maxNodes int) Result {
	return e.run("AB", pos, maxNodes, e.ab.Search, e.ab.Nodes)
}

func (e *Engine) run(
	name string,
	pos *board.Position,
	maxNodes int,
	search func(*board.Position, int) (*board.Move, int, []board.Move),
	nodes func() uint64,
) Result {
	if maxNodes <= 0 {
		maxNodes = DefaultMaxNodes
	}

	start := time.Now()
	move, score, pv := search(pos, maxNodes)
	took := time.Since(start)

	log.Printf("[Engine] %s: %s nodes in %s, started %s, score %d, move %v",
		name, humanize.Comma(int64(nodes())), took.Round(time.Millisecond), humanize.Time(start), score, move)

	return Result{Move: move, Score: score, PV: pv, Nodes: nodes(), Took: took, StartedAt: start}
}
