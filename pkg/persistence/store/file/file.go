package file

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/vitistack/hotel-reservations/pkg/persistence"
)

const filePerm = 0o644

// Store keeps a whole collection as one JSON array in a single file.
// Writes go to a temp file in the same directory which is then renamed over the
// target, so readers see either the old or the new document.
// The lock only guards this instance; other processes can still interleave.
type Store[T any] struct {
	lock     sync.RWMutex
	fileName string
}

func NewStore[T any](fileName string) (*Store[T], error) {
	if fileName == "" {
		return nil, fmt.Errorf("failed to create storage: empty file name")
	}

	if err := os.MkdirAll(filepath.Dir(fileName), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &Store[T]{
		lock:     sync.RWMutex{},
		fileName: fileName,
	}, nil
}

func (s *Store[T]) Source() string {
	return s.fileName
}

func (s *Store[T]) LoadAll() ([]T, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	file, err := os.Open(s.fileName)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", persistence.ErrStoreNotExist, s.fileName)
		}
		return nil, fmt.Errorf("failed to open storage file: %w", err)
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read storage file: %s: %w", s.fileName, err)
	}

	return persistence.Decode[T](s.fileName, raw)
}

func (s *Store[T]) SaveAll(data []T) error {
	raw, err := persistence.Encode(data)
	if err != nil {
		return err
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	tmp, err := os.CreateTemp(filepath.Dir(s.fileName), "."+filepath.Base(s.fileName)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op once renamed

	if err := writeAndClose(tmp, raw); err != nil {
		return fmt.Errorf("failed to write storage file: %s: %w", s.fileName, err)
	}

	if err := os.Rename(tmp.Name(), s.fileName); err != nil {
		return fmt.Errorf("failed to replace storage file: %s: %w", s.fileName, err)
	}

	return nil
}

func writeAndClose(tmp *os.File, raw []byte) error {
	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		return err
	}

	if err := tmp.Chmod(filePerm); err != nil {
		_ = tmp.Close()
		return err
	}

	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}

	return tmp.Close()
}
