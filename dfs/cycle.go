// Package dfs reports dependency cycles as data. A CycleError carries the
// offending path from the first occurrence of the repeated node, around the
// cycle, and back to that node, in the order the traversal walked it.
package dfs

const cycleHeader = "Cyclic dependency found."

// CycleError is returned when a node is reached again while it is still on
// the active traversal path. It unwraps to ErrCycleDetected.
//
// Cycle always has at least two elements and its first and last elements
// share a key: a self-dependency of X yields [X X], and 1→2→3→1 yields
// [1 2 3 1].
type CycleError[T any] struct {
	Cycle []T
}

// Error renders the cycle as "Cyclic dependency found.\nCycle: a -> b -> a".
func (e *CycleError[T]) Error() string {
	if e == nil {
		return ""
	}

	return cycleHeader + "\nCycle: " + e.Path()
}

// Path joins the string forms of the cycle nodes with " -> ".
func (e *CycleError[T]) Path() string {
	if e == nil {
		return ""
	}

	return JoinPath(e.Cycle)
}

// Unwrap lets errors.Is(err, ErrCycleDetected) match.
func (e *CycleError[T]) Unwrap() error { return ErrCycleDetected }

// newCycleError closes the cycle that starts at path[idx] by appending
// repeat, the node whose key was found InProgress. path is copied.
//
// Steps:
//  1. Copy path[idx:], the segment from the first occurrence to the top.
//  2. Append repeat to close the loop.
func newCycleError[T any](path []T, idx int, repeat T) *CycleError[T] {
	seq := make([]T, 0, len(path)-idx+1)
	seq = append(seq, path[idx:]...)
	seq = append(seq, repeat)

	return &CycleError[T]{Cycle: seq}
}
