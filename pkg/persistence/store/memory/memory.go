package memory

import (
	"fmt"
	"sync"

	"github.com/vitistack/hotel-reservations/pkg/persistence"
)

// Store keeps the encoded collection in memory, so callers never share slices
// with it and decoding behaves exactly like the file backed store.
type Store[T any] struct {
	lock   sync.Mutex
	name   string
	data   []byte
	exists bool
}

func NewStore[T any](name string) *Store[T] {
	return &Store[T]{
		lock: sync.Mutex{},
		name: name,
	}
}

// NewStoreFromBytes seeds the store with a raw document, valid or not.
func NewStoreFromBytes[T any](name string, raw []byte) *Store[T] {
	s := NewStore[T](name)
	s.data = append([]byte(nil), raw...)
	s.exists = true
	return s
}

func (s *Store[T]) Source() string {
	return "memory:" + s.name
}

func (s *Store[T]) LoadAll() ([]T, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if !s.exists {
		return nil, fmt.Errorf("%w: %s", persistence.ErrStoreNotExist, s.Source())
	}

	return persistence.Decode[T](s.Source(), s.data)
}

func (s *Store[T]) SaveAll(data []T) error {
	raw, err := persistence.Encode(data)
	if err != nil {
		return err
	}

	s.lock.Lock()
	defer s.lock.Unlock()
	s.data = raw
	s.exists = true
	return nil
}

// Bytes returns a copy of the stored document.
func (s *Store[T]) Bytes() []byte {
	s.lock.Lock()
	defer s.lock.Unlock()
	return append([]byte(nil), s.data...)
}
