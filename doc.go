// Package lvtopo orders things that depend on other things.
//
// 🚀 What is lvtopo?
//
//	A small, zero-surprise library built around one algorithm:
//		• Lazy topological ordering over graphs you never have to build
//		• Cycle detection that hands you the cycle, not just a boolean
//		• Custom identity: key selectors and pluggable equality/hash
//
// ✨ Why choose lvtopo?
//
//   - Pull-based – iter.Seq2 output, stop ranging and the work stops
//   - Deterministic – same input order, same output order, every time
//   - Generic – any node type, any key type
//   - Debuggable – optional charmbracelet/log tracing of every step
//
// Everything lives in one subpackage:
//
//	dfs/ — Sort, SortFunc, SortByKey, SortByKeyFunc, CycleError
//
// Quick ASCII example:
//
//	  5    7    3
//	  │   ╱ ╲  ╱ ╲
//	  11     8    10
//	 ╱ │ ╲   │
//	2  9  10 9
//
// Each node depends on the nodes below it; any dfs.Sort order lists
// 2, 9 and 10 before 11, and 11 before 5 and 7.
//
//	go get github.com/katalvlaran/lvtopo
package lvtopo
