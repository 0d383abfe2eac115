package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no link has the requested id.
var ErrNotFound = errors.New("link not found")

// StorageError wraps any failure reported by the datastore.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Storage wraps err as a *StorageError for op. A nil err stays nil.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}
