package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCursor indicates a resumption token could not be decoded.
	ErrInvalidCursor = errors.New("invalid cursor format")

	// ErrWalkInProgress indicates a walk is already running on this walker.
	// A walker instance is not safe for concurrent walks.
	ErrWalkInProgress = errors.New("walk in progress")
)

// MaterializationError indicates a blob's content or properties could not
// be fetched. It aborts the walk that triggered the materialisation.
type MaterializationError struct {
	// Container is the blob container.
	Container string

	// Key is the blob name.
	Key string

	// Err is the underlying fetch failure.
	Err error
}

// Error implements the error interface.
func (e *MaterializationError) Error() string {
	return fmt.Sprintf("materialise %s/%s: %v", e.Container, e.Key, e.Err)
}

// Unwrap returns the underlying failure.
func (e *MaterializationError) Unwrap() error {
	return e.Err
}

// FeedFetchError indicates a change-feed page could not be fetched.
// It aborts the walk; the walker's cursor still reflects the last page
// that was fully processed.
type FeedFetchError struct {
	// Err is the underlying transport failure.
	Err error
}

// Error implements the error interface.
func (e *FeedFetchError) Error() string {
	return fmt.Sprintf("fetch change feed page: %v", e.Err)
}

// Unwrap returns the underlying failure.
func (e *FeedFetchError) Unwrap() error {
	return e.Err
}
