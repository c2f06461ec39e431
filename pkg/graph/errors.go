package graph

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrVertexOutOfRange = errors.New("vertex out of range")
	ErrInvalidWeight    = errors.New("invalid edge weight")
	ErrUnsupportedGraph = errors.New("unsupported graph")
)

// GraphError provides structured error information for graph mutations.
type GraphError struct {
	Op    string // Operation that failed (e.g., "AddEdge")
	From  int    // Source vertex, -1 if not applicable
	To    int    // Destination vertex, -1 if not applicable
	Cause error  // Underlying error
}

// Error implements the error interface.
func (e *GraphError) Error() string {
	if e.From >= 0 || e.To >= 0 {
		return fmt.Sprintf("%s %d->%d: %v", e.Op, e.From, e.To, e.Cause)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *GraphError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error's cause.
func (e *GraphError) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}

func edgeError(op string, from, to int, cause error) error {
	return &GraphError{Op: op, From: from, To: to, Cause: cause}
}
