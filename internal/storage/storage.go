package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Storage keys
const (
	keySettings = "settings"
	keyStats    = "stats"
)

// EngineSettings holds the tunable constants an operator may override
// between runs: the node budget a search call gets, the capacity each
// transposition table is built with, and an aspiration-window override
// for the alpha-beta searcher (spec.md Section 4.7). These are the
// CLI's persisted defaults, not per-call overrides; a caller can still
// pass an explicit maxNodes to Engine.SearchAB and friends.
type EngineSettings struct {
	MaxNodes         int       `json:"max_nodes"`
	TableSizeLimit   int       `json:"table_size_limit"`
	AspirationWindow int       `json:"aspiration_window"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// DefaultEngineSettings returns the constants engine.go itself falls
// back to (constants.go and transposition.go), so a freshly initialized database round-trips
// to the same behavior as no database at all.
func DefaultEngineSettings() *EngineSettings {
	return &EngineSettings{
		MaxNodes:         1000,
		TableSizeLimit:   1_000_000,
		AspirationWindow: 50,
		UpdatedAt:        time.Now(),
	}
}

// SessionStats accumulates across searches run in this and prior
// sessions: how many searches ran, how many nodes they visited in
// total, and the outcome of the most recent one. It is not a game
// history: the engine has no notion of a completed game, only of
// search calls (spec.md Section 1's scope is the search core, not a
// match arbiter).
type SessionStats struct {
	SearchesRun int   `json:"searches_run"`
	TotalNodes  int64 `json:"total_nodes"`
	LastScore   int   `json:"last_score"`
	LastDepth   int   `json:"last_depth"`
}

// NewSessionStats returns empty session statistics.
func NewSessionStats() *SessionStats {
	return &SessionStats{}
}

// Storage wraps BadgerDB for persistent storage of engine settings and
// session statistics. It never stores a transposition table: those are
// rebuilt fresh in memory by engine.NewEngine on every run.
type Storage struct {
	db *badger.DB
}

// Open opens (creating if necessary) the BadgerDB database under the
// platform data directory.
func Open() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	opts := badger.DefaultOptions(dbDir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", dbDir, err)
	}

	return &Storage{db: db}, nil
}

// Close flushes and releases the database file lock.
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveSettings persists engine settings.
func (s *Storage) SaveSettings(settings *EngineSettings) error {
	settings.UpdatedAt = time.Now()

	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("storage: marshal settings: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keySettings), data)
	})
}

// LoadSettings loads engine settings, returning the defaults if none
// have been saved yet.
func (s *Storage) LoadSettings() (*EngineSettings, error) {
	settings := DefaultEngineSettings()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keySettings))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, settings)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("storage: load settings: %w", err)
	}

	return settings, nil
}

// SaveStats persists session statistics.
func (s *Storage) SaveStats(stats *SessionStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("storage: marshal stats: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyStats), data)
	})
}

// LoadStats loads session statistics, returning an empty SessionStats
// if none have been saved yet.
func (s *Storage) LoadStats() (*SessionStats, error) {
	stats := NewSessionStats()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyStats))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, stats)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("storage: load stats: %w", err)
	}

	return stats, nil
}

// RecordSearch folds the outcome of one search call into the running
// session statistics and persists the result.
func (s *Storage) RecordSearch(nodes uint64, score, depth int) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}

	stats.SearchesRun++
	stats.TotalNodes += int64(nodes)
	stats.LastScore = score
	stats.LastDepth = depth

	return s.SaveStats(stats)
}
