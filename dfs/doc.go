// Package dfs implements depth-first topological ordering over implicit
// graphs, with cycle detection that reports the offending cycle as data.
//
// What:
//
//   - Sort / SortFunc / SortByKey / SortByKeyFunc: lazily yield nodes so that
//     every node follows all of its (transitive) dependencies. Dependencies
//     are looked up on demand through a DependencyFunc; no graph structure
//     is built.
//   - Identity: nodes are deduplicated by a key (the node itself by default)
//     compared with == or with a caller-supplied Equality.
//   - Cycles: reaching a node whose key is InProgress yields a *CycleError
//     holding the path from the first occurrence of that node back to it.
//
// Why:
//   - Order build steps, migrations, plugin or service start-up where each
//     item only knows what it needs.
//   - Stop as soon as the consumer has what it wants: traversal is pull-based
//     and partial consumption does partial work.
//
// Key Types & Constants:
//
//   - VisitState: Unvisited, InProgress, Done
//   - DependencyFunc, KeyFunc, Equality, EqualityFunc
//   - CycleError: ordered cycle trace, unwraps to ErrCycleDetected
//   - Option: WithLogger, WithCapacityHint
//
// Ordering:
//
// The output is the DFS post-order obtained by visiting source nodes in
// source order and each node's dependencies in the order the selector
// returns them. Given the same inputs it is always the same sequence.
//
//	source: [A]    A -> B, C    B -> D    C -> D
//	order:  D B C A
//
// Complexity:
//
//   - Time:   O(V + E) selector calls and state lookups
//   - Memory: O(V)     (state table, path stack, recursion depth)
//
// Errors:
//
//   - *CycleError / ErrCycleDetected   a node depends on itself transitively
//   - ErrNilDependencies               a DependencyFunc returned nil
//   - ErrNilKey                        a KeyFunc returned a nil key
//   - ErrNilSource, ErrNilSelector,
//     ErrNilEquality                   nil arguments to an entry point
//
// Errors are yielded as the second value of the sequence at the point the
// offending node is reached; nodes yielded before remain valid, and the
// sequence ends.
package dfs
