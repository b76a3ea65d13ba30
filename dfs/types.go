// Package dfs defines types and options for depth-first topological
// ordering: visitation states, selector function types, sentinel errors,
// and functional options for logging and capacity hints.
package dfs

import (
	"errors"
	"iter"

	"github.com/charmbracelet/log"
)

// VisitState represents the visitation state of a key during traversal.
type VisitState uint8

const (
	Unvisited  VisitState = iota // Unvisited: the key has not been reached yet.
	InProgress                   // InProgress: the key is on the active traversal path.
	Done                         // Done: the key and all its dependencies have been emitted.
)

// String returns the lower-case name of the state.
func (s VisitState) String() string {
	switch s {
	case Unvisited:
		return "unvisited"
	case InProgress:
		return "in-progress"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

var (
	// ErrCycleDetected indicates that a node was reached again while it was
	// still on the active traversal path. The concrete error is a *CycleError.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrNilDependencies is returned when a DependencyFunc yields a nil
	// sequence for a node. An empty sequence is a leaf, a nil one is a bug.
	ErrNilDependencies = errors.New("dfs: dependency sequence is nil")

	// ErrNilKey is returned when a KeyFunc produces a nil key.
	ErrNilKey = errors.New("dfs: key is nil")

	// ErrNilSource is returned when the source sequence itself is nil.
	ErrNilSource = errors.New("dfs: source sequence is nil")

	// ErrNilSelector is returned when a dependency or key selector is nil.
	ErrNilSelector = errors.New("dfs: selector is nil")

	// ErrNilEquality is returned when a nil Equality is passed to
	// SortFunc or SortByKeyFunc.
	ErrNilEquality = errors.New("dfs: equality is nil")
)

// DependencyFunc returns the nodes that n depends on. Every returned node
// is emitted before n. Returning nil reports ErrNilDependencies; use
// slices.Values for slice-backed graphs.
type DependencyFunc[T any] func(n T) iter.Seq[T]

// KeyFunc derives the identity key of a node. Nodes with equal keys are
// treated as one node.
type KeyFunc[T, K any] func(n T) K

// Equality compares and hashes keys that are not usable as Go map keys,
// or that need a looser notion of identity than ==.
// Equal(a, b) must imply Hash(a) == Hash(b).
type Equality[K any] interface {
	Equal(a, b K) bool
	Hash(k K) uint64
}

// EqualityFunc adapts a pair of functions to the Equality interface.
type EqualityFunc[K any] struct {
	EqualFn func(a, b K) bool
	HashFn  func(k K) uint64
}

// Equal reports whether a and b denote the same key.
func (f EqualityFunc[K]) Equal(a, b K) bool { return f.EqualFn(a, b) }

// Hash returns the bucket hash of k.
func (f EqualityFunc[K]) Hash(k K) uint64 { return f.HashFn(k) }

// Option configures optional behavior of the sort entry points.
type Option func(*sortOptions)

// sortOptions holds settings shared by every sort entry point.
type sortOptions struct {
	logger   *log.Logger // traversal tracing; nil disables logging
	capacity int         // size hint for state table and path stack
}

// defaultSortOptions returns options with logging disabled and no size hint.
func defaultSortOptions() sortOptions {
	return sortOptions{logger: nil, capacity: 0}
}

// WithLogger returns an Option that traces traversal events to l at debug
// level and reports detected cycles at warn level.
// Passing a nil logger has no effect.
func WithLogger(l *log.Logger) Option {
	return func(o *sortOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithCapacityHint returns an Option that pre-sizes the per-run state table
// and path stack for roughly n distinct nodes. Negative hints are ignored.
func WithCapacityHint(n int) Option {
	return func(o *sortOptions) {
		if n >= 0 {
			o.capacity = n
		}
	}
}

func applyOptions(opts []Option) sortOptions {
	o := defaultSortOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
