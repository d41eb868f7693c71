package persistence

import (
	"errors"
	"fmt"
)

var (
	ErrStoreNotExist  = errors.New("store does not exist")
	ErrCorruptedStore = errors.New("store is corrupted")
)

// Store holds one whole collection. Every Save replaces the entire collection.
type Store[T any] interface {
	LoadAll() ([]T, error) // returns ErrStoreNotExist when nothing was ever saved
	SaveAll(data []T) error
	Source() string // where the collection lives, e.g. a file name
}

// CorruptedError is returned when a collection exists but cannot be decoded.
// The store is left untouched and has to be repaired by hand.
type CorruptedError struct {
	Source string
	Err    error
}

func (e *CorruptedError) Error() string {
	return fmt.Sprintf("%s: %s: please repair or delete it: %v", ErrCorruptedStore, e.Source, e.Err)
}

func (e *CorruptedError) Is(target error) bool {
	return target == ErrCorruptedStore
}

func (e *CorruptedError) Unwrap() error {
	return e.Err
}

func NewCorruptedError(source string, err error) error {
	return &CorruptedError{
		Source: source,
		Err:    err,
	}
}
