package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyCompletion reports that the model endpoint answered without any
// usable text.
var ErrEmptyCompletion = errors.New("completion returned no text")

// PersistenceError wraps a turn store failure (store unreachable, write or
// read rejected).
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// CompletionError wraps a model endpoint failure, including malformed or
// empty responses.
type CompletionError struct {
	Err error
}

func (e *CompletionError) Error() string {
	return fmt.Sprintf("completion: %v", e.Err)
}

func (e *CompletionError) Unwrap() error { return e.Err }
