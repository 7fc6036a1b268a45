// Package boltdb persists player colors in a bbolt database.
package boltdb

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/colonyops/chatcolor/internal/core/players"
)

const (
	bPlayers = "players"
	kColors  = "colors"

	defaultTO = 2 * time.Second
)

// Store is a bbolt-backed implementation of players.Backend. The encoded
// colors document is kept under a single key so both backends share one
// format.
type Store struct {
	db *bolt.DB
}

// Open opens (or creates) a database at path.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("empty db path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: defaultTO})
	if err != nil {
		return nil, err
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bPlayers))
		return err
	}); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Path returns the database file location.
func (s *Store) Path() string { return s.db.Path() }

// Read returns the stored document, or players.ErrNotFound if nothing has
// been written yet.
func (s *Store) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket([]byte(bPlayers)).Get([]byte(kColors))
		if raw == nil {
			return players.ErrNotFound
		}
		// Values are only valid for the life of the transaction.
		out = bytes.Clone(raw)
		return nil
	})
	return out, err
}

// Write replaces the stored document.
func (s *Store) Write(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bPlayers)).Put([]byte(kColors), data)
	})
}

var _ players.Backend = (*Store)(nil)
