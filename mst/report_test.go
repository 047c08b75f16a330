package mst_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spantree/core"
	"spantree/mst"
)

// TestWriteResult_ReferenceScenario pins the exact rendering of the
// canonical 4-vertex result.
func TestWriteResult_ReferenceScenario(t *testing.T) {
	edges, total, err := mst.Kruskal(buildReferenceGraph(t))
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, mst.WriteResult(&sb, edges, total))

	want := "Edges in the constructed MST:\n" +
		"2 -- 3: weight == 4\n" +
		"0 -- 3: weight == 5\n" +
		"0 -- 1: weight == 10\n" +
		"Minimum spanning tree's total weight: 19\n"
	assert.Equal(t, want, sb.String())
}

// TestWriteResult_EmptyTree verifies the degenerate rendering: header and
// total line only.
func TestWriteResult_EmptyTree(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, mst.WriteResult(&sb, nil, 0))

	want := "Edges in the constructed MST:\n" +
		"Minimum spanning tree's total weight: 0\n"
	assert.Equal(t, want, sb.String())
}

// failingWriter fails every write.
type failingWriter struct{}

var errSink = errors.New("sink closed")

func (failingWriter) Write([]byte) (int, error) { return 0, errSink }

// TestWriteResult_PropagatesWriteError verifies that writer failures are
// surfaced, not swallowed.
func TestWriteResult_PropagatesWriteError(t *testing.T) {
	err := mst.WriteResult(failingWriter{}, []core.Edge{{U: 0, V: 1, Weight: 2}}, 2)
	assert.ErrorIs(t, err, errSink)
}
