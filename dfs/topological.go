// Package dfs computes topological orderings of implicit graphs.
//
// The graph is never materialized: nodes come from a source sequence and
// each node's dependencies are pulled on demand from a DependencyFunc.
// The result is a lazy iter.Seq2 that yields every distinct node after all
// of its dependencies, in DFS post-order. If a cycle is found a *CycleError
// is yielded instead.
//
// Complexity:
//
//   - Time:   O(V + E) selector calls and state lookups
//   - Memory: O(V)     (state table, path stack and recursion depth)
package dfs

import (
	"fmt"
	"iter"
	"slices"
)

// topoSorter holds the state of one sort run. A fresh sorter is built every
// time the returned sequence is ranged over.
type topoSorter[T, K any] struct {
	deps  DependencyFunc[T]   // dependency selector
	key   KeyFunc[T, K]       // key selector
	table stateTable[K]       // visitation state per key
	opts  sortOptions         // logging and size hints
	path  []T                 // nodes on the active traversal path
	keys  []K                 // keys of path, index-aligned
	yield func(T, error) bool // consumer of the output sequence
}

// Sort returns the nodes of source and everything they transitively depend
// on, each node after its dependencies. Nodes are their own keys and are
// compared with ==.
//
// The sequence is lazy: dependency lookups happen only as the caller pulls
// values, and breaking out of the range loop stops the traversal. On failure
// a single (zero, err) pair is yielded and the sequence ends. err is a
// *CycleError[T] (matching ErrCycleDetected) or wraps ErrNilDependencies.
func Sort[T comparable](source iter.Seq[T], deps DependencyFunc[T], opts ...Option) iter.Seq2[T, error] {
	return run[T, T](source, deps, identity[T], func(n int) stateTable[T] {
		return newMapTable[T](n)
	}, applyOptions(opts))
}

// SortFunc is like Sort but compares nodes with eq instead of ==.
func SortFunc[T any](source iter.Seq[T], deps DependencyFunc[T], eq Equality[T], opts ...Option) iter.Seq2[T, error] {
	if eq == nil {
		return failed[T](fmt.Errorf("%w: SortFunc", ErrNilEquality))
	}

	return run[T, T](source, deps, identity[T], func(n int) stateTable[T] {
		return newHashTable(eq, n)
	}, applyOptions(opts))
}

// SortByKey is like Sort but identifies nodes by key(n). Distinct nodes
// with equal keys are treated as one node: the first one reached is
// traversed and emitted, later ones are skipped.
// A nil key yields an error wrapping ErrNilKey.
func SortByKey[T any, K comparable](source iter.Seq[T], deps DependencyFunc[T], key KeyFunc[T, K], opts ...Option) iter.Seq2[T, error] {
	if key == nil {
		return failed[T](fmt.Errorf("%w: key selector", ErrNilSelector))
	}

	return run[T, K](source, deps, key, func(n int) stateTable[K] {
		return newMapTable[K](n)
	}, applyOptions(opts))
}

// SortByKeyFunc is like SortByKey but compares keys with eq.
func SortByKeyFunc[T, K any](source iter.Seq[T], deps DependencyFunc[T], key KeyFunc[T, K], eq Equality[K], opts ...Option) iter.Seq2[T, error] {
	if key == nil {
		return failed[T](fmt.Errorf("%w: key selector", ErrNilSelector))
	}
	if eq == nil {
		return failed[T](fmt.Errorf("%w: SortByKeyFunc", ErrNilEquality))
	}

	return run[T, K](source, deps, key, func(n int) stateTable[K] {
		return newHashTable(eq, n)
	}, applyOptions(opts))
}

// SortSlice eagerly sorts nodes using a slice-returning dependency selector.
// A nil dependency slice is an empty one here. On error the partial order
// is discarded and nil is returned with the error.
func SortSlice[T comparable](nodes []T, deps func(T) []T, opts ...Option) ([]T, error) {
	if deps == nil {
		return nil, fmt.Errorf("%w: dependency selector", ErrNilSelector)
	}
	// 1. Default the size hint to the input length; caller options override.
	all := make([]Option, 0, len(opts)+1)
	all = append(all, WithCapacityHint(len(nodes)))
	all = append(all, opts...)

	// 2. Drain the lazy sort.
	order := make([]T, 0, len(nodes))
	seq := Sort(slices.Values(nodes), func(n T) iter.Seq[T] {
		return slices.Values(deps(n))
	}, all...)
	for n, err := range seq {
		if err != nil {
			return nil, err
		}
		order = append(order, n)
	}

	return order, nil
}

// Collect drains seq into a slice. It stops at the first error and returns
// the nodes yielded before it together with that error; those nodes are
// still correctly ordered relative to each other.
func Collect[T any](seq iter.Seq2[T, error]) ([]T, error) {
	var out []T
	for n, err := range seq {
		if err != nil {
			return out, err
		}
		out = append(out, n)
	}

	return out, nil
}

// run validates the shared arguments and builds the lazy sequence. Each
// range over the result starts from an empty state table.
func run[T, K any](
	source iter.Seq[T],
	deps DependencyFunc[T],
	key KeyFunc[T, K],
	newTable func(capacity int) stateTable[K],
	opts sortOptions,
) iter.Seq2[T, error] {
	// 1. Validate collaborators; errors surface on first pull.
	if source == nil {
		return failed[T](ErrNilSource)
	}
	if deps == nil {
		return failed[T](fmt.Errorf("%w: dependency selector", ErrNilSelector))
	}

	return func(yield func(T, error) bool) {
		// 2. Fresh per-run state.
		t := &topoSorter[T, K]{
			deps:  deps,
			key:   key,
			table: newTable(opts.capacity),
			opts:  opts,
			path:  make([]T, 0, min(opts.capacity, 64)),
			keys:  make([]K, 0, min(opts.capacity, 64)),
			yield: yield,
		}
		// 3. Visit roots in source order.
		for n := range source {
			if !t.visit(n) {
				return
			}
		}
	}
}

// visit runs the depth-first step for n. It returns false once the run must
// end, either because the consumer stopped pulling or an error was yielded.
func (t *topoSorter[T, K]) visit(n T) bool {
	// 1. Derive and validate the key.
	k := t.key(n)
	if isNilKey(k) {
		return t.fail(fmt.Errorf("%w: node %v", ErrNilKey, n))
	}

	// 2. Consult the state table.
	switch t.table.state(k) {
	case InProgress:
		// Back-edge: n is already on the path. Cut the path at its first
		// occurrence and close the loop with n.
		idx := indexOfKey(t.keys, k, t.table.same)
		cerr := newCycleError(t.path, idx, n)
		if t.opts.logger != nil {
			t.opts.logger.Warn("cycle detected", "cycle", cerr.Path())
		}

		return t.fail(cerr)
	case Done:
		t.debug("skip", n)
		return true
	}

	// 3. Unvisited: mark and push.
	t.table.set(k, InProgress)
	t.path = append(t.path, n)
	t.keys = append(t.keys, k)
	t.debug("visit", n)

	// 4. Visit dependencies in the order supplied.
	deps := t.deps(n)
	if deps == nil {
		return t.fail(fmt.Errorf("%w: node %v", ErrNilDependencies, n))
	}
	for d := range deps {
		if !t.visit(d) {
			return false
		}
	}

	// 5. All dependencies emitted: emit n, then mark it Done.
	t.debug("emit", n)
	if !t.yield(n, nil) {
		return false
	}
	t.table.set(k, Done)

	// 6. Pop.
	t.path = t.path[:len(t.path)-1]
	t.keys = t.keys[:len(t.keys)-1]

	return true
}

// fail hands err to the consumer and ends the run.
func (t *topoSorter[T, K]) fail(err error) bool {
	var zero T
	t.yield(zero, err)

	return false
}

func (t *topoSorter[T, K]) debug(msg string, n T) {
	if t.opts.logger == nil {
		return
	}
	t.opts.logger.Debug(msg, "node", n, "depth", len(t.path))
}

// failed returns a sequence that yields err once.
func failed[T any](err error) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T
		yield(zero, err)
	}
}
