package dfs_test

import (
	"bytes"
	"slices"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtopo/dfs"
)

// newTestLogger writes plain text at debug level into buf.
func newTestLogger(buf *bytes.Buffer) *log.Logger {
	return log.NewWithOptions(buf, log.Options{
		Level:           log.DebugLevel,
		ReportTimestamp: false,
	})
}

// TestWithLogger_TracesTraversal verifies visit, skip and emit events.
func TestWithLogger_TracesTraversal(t *testing.T) {
	var buf bytes.Buffer
	deps := adjacency(map[string][]string{"A": {"B"}})

	order, err := dfs.Collect(dfs.Sort(
		slices.Values([]string{"A", "B"}), deps, dfs.WithLogger(newTestLogger(&buf)),
	))
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, order)

	out := buf.String()
	assert.Contains(t, out, "visit")
	assert.Contains(t, out, "emit")
	assert.Contains(t, out, "skip")
	assert.Contains(t, out, "node=B")
	assert.Contains(t, out, "depth=1")
}

// TestWithLogger_ReportsCycle verifies the cycle trace is logged at warn level.
func TestWithLogger_ReportsCycle(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf)
	l.SetLevel(log.WarnLevel)
	deps := adjacency(map[int][]int{1: {2}, 2: {1}})

	_, err := dfs.Collect(dfs.Sort(slices.Values([]int{1}), deps, dfs.WithLogger(l)))
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)

	out := buf.String()
	assert.Contains(t, out, "cycle detected")
	assert.Contains(t, out, "1 -> 2 -> 1")
	assert.NotContains(t, out, "emit")
}

// TestWithLogger_Nil keeps logging disabled.
func TestWithLogger_Nil(t *testing.T) {
	order, err := dfs.Collect(dfs.Sort(
		slices.Values([]int{1}), adjacency(map[int][]int{}), dfs.WithLogger(nil), nil,
	))
	require.NoError(t, err)
	assert.Equal(t, []int{1}, order)
}
