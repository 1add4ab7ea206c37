package repository

import (
	"errors"
	"fmt"
)

// ErrStorageUnavailable means the embedded engine could not be opened at all
// (bad path, permissions, corruption). Not retryable within the session; the
// caller should degrade to in-memory-only operation.
var ErrStorageUnavailable = errors.New("storage unavailable")

// PersistenceError means a specific read or write transaction failed after the
// connection was otherwise healthy (constraint violation, aborted transaction).
// Retryable by re-issuing the operation; the store never retries on its own.
//
// Absence of a record is never an error: repositories report it as a nil
// record or an empty slice.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func persistErr(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}
