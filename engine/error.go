package engine

import (
	"errors"
	"fmt"
)

// Common search errors
var (
	// ErrInvalidReference indicates a nil text or pattern was passed to Search
	ErrInvalidReference = errors.New("text or pattern is nil")

	// ErrUnknownAlgorithm indicates a request for an algorithm that is not built in
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)

// AlgorithmError reports an algorithm name that could not be resolved
type AlgorithmError struct {
	Name string
}

// Error implements the error interface
func (e *AlgorithmError) Error() string {
	return fmt.Sprintf("strsearch: unknown algorithm %q", e.Name)
}

// Unwrap returns ErrUnknownAlgorithm
func (e *AlgorithmError) Unwrap() error {
	return ErrUnknownAlgorithm
}
