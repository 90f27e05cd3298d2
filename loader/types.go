// SPDX-License-Identifier: MIT

package loader

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph loading.
var (
	// ErrMalformedDocument indicates input that is not a JSON object whose
	// values are lists.
	ErrMalformedDocument = errors.New("loader: malformed document")

	// ErrMalformedEntry is matched by every *GraphLoadError.
	ErrMalformedEntry = errors.New("loader: malformed entry")
)

// GraphLoadError reports one malformed adjacency entry.
// Index is the entry position within Node's list, or -1 when the list itself
// is malformed.
type GraphLoadError struct {
	Node  string
	Index int
	Err   error
}

// Error implements error.
func (e *GraphLoadError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("loader: node %q: %v", e.Node, e.Err)
	}

	return fmt.Sprintf("loader: node %q entry %d: %v", e.Node, e.Index, e.Err)
}

// Unwrap returns the underlying cause.
func (e *GraphLoadError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrMalformedEntry) hold for every GraphLoadError.
func (e *GraphLoadError) Is(target error) bool { return target == ErrMalformedEntry }

// entry-level causes wrapped into GraphLoadError.Err.
var (
	errNotList         = errors.New("adjacency value is not a list")
	errBadArity        = errors.New("entry must be [neighbor, weight]")
	errBadEntry        = errors.New("entry must be an array or an object")
	errMissingNeighbor = errors.New("missing or empty neighbor")
	errMissingWeight   = errors.New("missing weight")
	errNonNumeric      = errors.New("weight is not numeric")
	errNonFinite       = errors.New("weight is not finite")
)
