package movegen

import (
	"github.com/cespare/xxhash/v2"
	"github.com/hailam/draughts/internal/board"
)

// MoveTableSize bounds the memoization cache (spec.md Section 6).
const MoveTableSize = 1_000_000

// cacheKey mixes the position's Zobrist key with an xxhash digest of
// the raw board bytes. Both halves must match for a cache hit, so the
// cache does not rely on a single hash family (see SPEC_FULL.md's Keys
// section).
type cacheKey struct {
	zobrist uint64
	xxh     uint64
}

// Cache is a bounded memoization table for Generate, keyed by
// position. It exists because search revisits the same position
// through transposition far more often than it revisits the same move
// list would suggest; recomputing captures (the expensive path) on
// every revisit would waste the work the transposition table is
// already saving elsewhere. Like the rest of the engine, Cache is not
// safe for concurrent use: the engine is single-threaded (spec.md
// Section 5).
type Cache struct {
	entries map[cacheKey][]board.Move
}

// NewCache creates an empty move cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[cacheKey][]board.Move)}
}

// GenerateCached returns Generate(pos), consulting and populating c.
func (c *Cache) GenerateCached(pos *board.Position) []board.Move {
	key := keyOf(pos)

	if moves, ok := c.entries[key]; ok {
		return moves
	}

	moves := Generate(pos)

	if len(c.entries) >= MoveTableSize {
		c.entries = make(map[cacheKey][]board.Move)
	}
	c.entries[key] = moves

	return moves
}

// Clear empties the cache.
func (c *Cache) Clear() {
	c.entries = make(map[cacheKey][]board.Move)
}

func keyOf(pos *board.Position) cacheKey {
	cells := pos.Board()
	return cacheKey{
		zobrist: pos.Key(),
		xxh:     xxhash.Sum64(cells[:]),
	}
}
