package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/vitistack/hotel-reservations/pkg/persistence"
)

// DB is a sqlite database holding one row per collection. The payload column
// contains the same JSON array the file store writes, replaced wholesale on save.
type DB struct {
	*sql.DB
	path string
}

func Open(path string) (*DB, error) {
	if path == "" {
		return nil, fmt.Errorf("failed to open sqlite: empty path")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create dirs: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS collections (
		name TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create collections table: %w", err)
	}

	return &DB{DB: db, path: path}, nil
}

type Store[T any] struct {
	lock sync.Mutex
	db   *DB
	name string
}

func NewStore[T any](db *DB, name string) *Store[T] {
	return &Store[T]{
		lock: sync.Mutex{},
		db:   db,
		name: name,
	}
}

func (s *Store[T]) Source() string {
	return s.db.path + "#" + s.name
}

func (s *Store[T]) LoadAll() ([]T, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	var payload []byte
	err := s.db.QueryRow(`SELECT payload FROM collections WHERE name = ?`, s.name).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", persistence.ErrStoreNotExist, s.Source())
		}
		return nil, fmt.Errorf("select collection %s: %w", s.name, err)
	}

	return persistence.Decode[T](s.Source(), payload)
}

func (s *Store[T]) SaveAll(data []T) error {
	payload, err := persistence.Encode(data)
	if err != nil {
		return err
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	_, err = s.db.Exec(
		`INSERT INTO collections (name, payload) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET payload = excluded.payload`,
		s.name, payload,
	)
	if err != nil {
		return fmt.Errorf("upsert collection %s: %w", s.name, err)
	}

	return nil
}
