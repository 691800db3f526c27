package frontier_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roamer/frontier"
	"github.com/katalvlaran/roamer/label"
)

var (
	n = label.North
	e = label.East
	s = label.South
	w = label.West
)

// TestEnsureVertex_Idempotent verifies a second registration never overwrites resolved cells.
func TestEnsureVertex_Idempotent(t *testing.T) {
	g := frontier.New()
	require.True(t, g.EnsureVertex(1, []label.Label{s, n}))
	require.NoError(t, g.Resolve(1, n, 2))

	require.False(t, g.EnsureVertex(1, []label.Label{n, e, s, w}))
	assert.Equal(t, []label.Label{n, s}, g.Labels(1))
	assert.Equal(t, []label.Label{s}, g.UnknownLabels(1))

	c, ok := g.Cell(1, n)
	require.True(t, ok)
	to, resolved := c.To()
	assert.True(t, resolved)
	assert.Equal(t, 2, to)
}

// TestEnsureVertex_IgnoresJunkLabels drops invalid and duplicate labels.
func TestEnsureVertex_IgnoresJunkLabels(t *testing.T) {
	g := frontier.New()
	g.EnsureVertex(7, []label.Label{e, label.Label(0), e, label.Label(42)})
	assert.Equal(t, []label.Label{e}, g.Labels(7))
	assert.Equal(t, 1, g.UnknownCount())
}

func TestUnknownLabels(t *testing.T) {
	g := frontier.New()
	assert.Nil(t, g.UnknownLabels(99), "unregistered room")

	g.EnsureVertex(0, []label.Label{w, e, n})
	assert.Equal(t, []label.Label{n, e, w}, g.UnknownLabels(0), "canonical order")

	require.NoError(t, g.Resolve(0, e, 1))
	require.NoError(t, g.Resolve(0, n, 2))
	require.NoError(t, g.Resolve(0, w, 3))
	assert.Empty(t, g.UnknownLabels(0))

	// a dead end with no exits is fully resolved from the start
	g.EnsureVertex(5, nil)
	assert.Empty(t, g.UnknownLabels(5))
}

// TestResolve_Contract covers every outcome of Resolve.
func TestResolve_Contract(t *testing.T) {
	g := frontier.New()
	g.EnsureVertex(1, []label.Label{n})

	require.ErrorIs(t, g.Resolve(2, n, 1), frontier.ErrVertexNotFound)
	require.ErrorIs(t, g.Resolve(1, e, 3), frontier.ErrLabelNotFound)

	require.NoError(t, g.Resolve(1, n, 2))
	require.NoError(t, g.Resolve(1, n, 2), "same neighbor is a no-op")
	assert.Equal(t, 1, g.ResolvedCount())

	err := g.Resolve(1, n, 3)
	require.ErrorIs(t, err, frontier.ErrInconsistency)
	var ie *frontier.InconsistencyError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, 1, ie.Vertex)
	assert.Equal(t, n, ie.Label)
	assert.Equal(t, 2, ie.Expected)
	assert.Equal(t, 3, ie.Actual)
	assert.Contains(t, ie.Error(), "via n")

	// the failed call left the cell untouched
	c, _ := g.Cell(1, n)
	to, _ := c.To()
	assert.Equal(t, 2, to)
}

// TestCounters_Monotonic tracks resolved and unknown counts through a small walk.
func TestCounters_Monotonic(t *testing.T) {
	g := frontier.New()
	assert.True(t, g.IsFullyExplored(), "empty graph")

	g.EnsureVertex(1, []label.Label{n, e})
	g.EnsureVertex(2, []label.Label{s})
	assert.False(t, g.IsFullyExplored())
	assert.Equal(t, 3, g.UnknownCount())

	prev := g.ResolvedCount()
	steps := []struct {
		id, to int
		l      label.Label
	}{{1, 2, n}, {2, 1, s}, {1, 3, e}}
	for _, st := range steps {
		require.NoError(t, g.Resolve(st.id, st.l, st.to))
		require.GreaterOrEqual(t, g.ResolvedCount(), prev)
		prev = g.ResolvedCount()
	}
	assert.Equal(t, 3, g.ResolvedCount())
	assert.Equal(t, 0, g.UnknownCount())
	assert.True(t, g.IsFullyExplored())
}

func TestNeighborsAndVertices(t *testing.T) {
	g := frontier.New()
	g.EnsureVertex(10, []label.Label{w, s, e})
	g.EnsureVertex(4, []label.Label{n})
	require.NoError(t, g.Resolve(10, w, 4))
	require.NoError(t, g.Resolve(10, e, 11))

	assert.Equal(t, []frontier.Edge{{Label: e, To: 11}, {Label: w, To: 4}}, g.Neighbors(10))
	assert.Nil(t, g.Neighbors(12))
	assert.Equal(t, []int{10, 4}, g.Vertices())
	assert.Equal(t, 2, g.Len())
	assert.True(t, g.HasVertex(4))
	assert.False(t, g.HasVertex(11))
}

// TestSnapshot_DeepCopy confirms a snapshot does not alias the live graph.
func TestSnapshot_DeepCopy(t *testing.T) {
	g := frontier.New()
	g.EnsureVertex(1, []label.Label{n, s})
	require.NoError(t, g.Resolve(1, n, 2))

	snap := g.Snapshot()
	assert.Equal(t, map[int]map[label.Label]int{1: {n: 2}}, snap)

	snap[1][s] = 99
	c, _ := g.Cell(1, s)
	assert.False(t, c.Resolved())
}

func TestCell_String(t *testing.T) {
	assert.Equal(t, "?", frontier.Unknown().String())
	assert.Equal(t, "12", frontier.ResolvedTo(12).String())
	_, ok := frontier.Unknown().To()
	assert.False(t, ok)
}
