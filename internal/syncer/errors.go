package syncer

import (
	"errors"
	"fmt"
)

// ErrNotFound signals that the requested identifier has no row in the
// entity store, which is the existence oracle for mutations.
var ErrNotFound = errors.New("entity not found")

// StoreWriteError means the relational write failed. The mutation was
// aborted before the search index was touched; nothing diverged.
type StoreWriteError struct {
	Err error
}

func (e *StoreWriteError) Error() string {
	return fmt.Sprintf("entity store write failed: %v", e.Err)
}

func (e *StoreWriteError) Unwrap() error { return e.Err }

// IndexWriteError means the relational write succeeded but the search
// index write failed: the two stores have diverged for this entity until
// the pending sync event is drained or a reconcile pass runs.
type IndexWriteError struct {
	Err error
}

func (e *IndexWriteError) Error() string {
	return fmt.Sprintf("search index write failed: %v", e.Err)
}

func (e *IndexWriteError) Unwrap() error { return e.Err }

// QueryExecutionError means a search expression failed at the index and
// the collection's policy is fail-closed.
type QueryExecutionError struct {
	Err error
}

func (e *QueryExecutionError) Error() string {
	return fmt.Sprintf("search query failed: %v", e.Err)
}

func (e *QueryExecutionError) Unwrap() error { return e.Err }
