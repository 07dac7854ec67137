// Package cache persists precomputed pattern tables in an embedded
// BadgerDB so that a warmed table survives across runs. Entries are
// keyed by the fingerprint of the word lists they were built from, so
// a stale table is never loaded against changed lists.
package cache

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog/log"

	"github.com/wordlent/wordlent/solver"
)

// ErrNotFound is returned by Load when no table is stored under the
// given fingerprint.
var ErrNotFound = errors.New("cache: table not found")

// Store is a handle on the on-disk cache. It is safe for concurrent
// use and must be closed when done.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) a cache in dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("cache: open %s: %w", dir, err)
	}
	return &Store{db: db}, nil
}

// OpenInMemory opens a cache backed by memory only, for tests.
func OpenInMemory() (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("cache: open in-memory: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func tableKey(fingerprint string) []byte {
	return []byte("table/" + fingerprint)
}

// Save stores the table's rows under the fingerprint, replacing any
// previous entry.
func (s *Store) Save(fingerprint string, table *solver.Table) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(table.Rows()); err != nil {
		return fmt.Errorf("cache: encode table: %w", err)
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(tableKey(fingerprint), buf.Bytes())
	})
	if err != nil {
		return fmt.Errorf("cache: save table: %w", err)
	}
	log.Debug().Str("fingerprint", fingerprint).Int("bytes", buf.Len()).Msg("cached pattern table")
	return nil
}

// Load restores a table for dict from the entry stored under the
// fingerprint. Returns ErrNotFound when no entry exists.
func (s *Store) Load(fingerprint string, dict *solver.Dictionary) (*solver.Table, error) {
	var raw []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(tableKey(fingerprint))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("cache: load table: %w", err)
	}

	var rows map[string][]solver.Pattern
	if err := gob.NewDecoder(bytes.NewReader(raw)).Decode(&rows); err != nil {
		return nil, fmt.Errorf("cache: decode table: %w", err)
	}
	table := solver.NewTable(dict)
	if err := table.Restore(rows); err != nil {
		return nil, err
	}
	log.Debug().Str("fingerprint", fingerprint).Int("rows", len(rows)).Msg("restored pattern table")
	return table, nil
}
