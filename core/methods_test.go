package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dispatchsim/core"
)

// seedGraph builds the five-edge emergency network used across the module.
func seedGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range []struct {
		u, v string
		w    int64
	}{
		{"Hospital", "Fire Station", 5},
		{"Hospital", "Police Station", 3},
		{"Fire Station", "Accident Site", 8},
		{"Police Station", "Accident Site", 6},
		{"Hospital", "Accident Site", 10},
	} {
		_, err := g.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}

	return g
}

func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()

	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	require.NoError(t, g.AddVertex("Hospital"))
	require.NoError(t, g.AddVertex("Hospital"))

	assert.True(t, g.HasVertex("Hospital"))
	assert.False(t, g.HasVertex(""))
	assert.False(t, g.HasVertex("Morgue"))
	assert.Equal(t, 1, g.VertexCount())

	nbs, err := g.Neighbors("Hospital")
	require.NoError(t, err)
	assert.Empty(t, nbs)
}

func TestGraph_CreationOrder(t *testing.T) {
	g := seedGraph(t)

	assert.Equal(t,
		[]string{"Hospital", "Fire Station", "Police Station", "Accident Site"},
		g.Vertices())

	for i, id := range g.Vertices() {
		idx, ok := g.Index(id)
		require.True(t, ok)
		assert.Equal(t, i, idx)
	}
	_, ok := g.Index("Unknown City")
	assert.False(t, ok)
}

func TestGraph_AdjacencyInsertionOrder(t *testing.T) {
	g := seedGraph(t)

	cases := map[string][]core.Neighbor{
		"Hospital": {
			{ID: "Fire Station", Weight: 5, EdgeID: "e1"},
			{ID: "Police Station", Weight: 3, EdgeID: "e2"},
			{ID: "Accident Site", Weight: 10, EdgeID: "e5"},
		},
		"Fire Station": {
			{ID: "Hospital", Weight: 5, EdgeID: "e1"},
			{ID: "Accident Site", Weight: 8, EdgeID: "e3"},
		},
		"Accident Site": {
			{ID: "Fire Station", Weight: 8, EdgeID: "e3"},
			{ID: "Police Station", Weight: 6, EdgeID: "e4"},
			{ID: "Hospital", Weight: 10, EdgeID: "e5"},
		},
	}
	for id, want := range cases {
		got, err := g.Neighbors(id)
		require.NoError(t, err)
		assert.Equal(t, want, got, "neighbors of %s", id)
	}

	ids, err := g.NeighborIDs("Police Station")
	require.NoError(t, err)
	assert.Equal(t, []string{"Hospital", "Accident Site"}, ids)
}

func TestGraph_NeighborsUnknown(t *testing.T) {
	g := seedGraph(t)

	_, err := g.Neighbors("Unknown City")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Neighbors("")
	require.ErrorIs(t, err, core.ErrEmptyVertexID)

	// the failed lookup must not create an entry
	assert.False(t, g.HasVertex("Unknown City"))
	assert.Equal(t, 4, g.VertexCount())
}

func TestGraph_ParallelEdgesKept(t *testing.T) {
	g := core.NewGraph()
	id1, err := g.AddEdge("A", "B", 2)
	require.NoError(t, err)
	id2, err := g.AddEdge("A", "B", 2)
	require.NoError(t, err)

	assert.NotEqual(t, id1, id2)
	assert.Equal(t, 2, g.EdgeCount())
	ids, _ := g.NeighborIDs("A")
	assert.Equal(t, []string{"B", "B"}, ids)
	ids, _ = g.NeighborIDs("B")
	assert.Equal(t, []string{"A", "A"}, ids)
}

func TestGraph_SelfLoop(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "A", 1)
	require.NoError(t, err)

	ids, err := g.NeighborIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "A"}, ids)
}

func TestGraph_Weights(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", -4)
	require.NoError(t, err, "negative weights are accepted by default")
	assert.Equal(t, int64(-4), g.Edges()[0].Weight)

	strict := core.NewGraph(core.WithNonNegativeWeights())
	assert.True(t, strict.NonNegativeWeights())
	_, err = strict.AddEdge("A", "B", -4)
	require.ErrorIs(t, err, core.ErrNegativeWeight)
	assert.Zero(t, strict.VertexCount(), "rejected edge must not create locations")
}

func TestGraph_EmptyEndpoint(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("", "B", 1)
	require.ErrorIs(t, err, core.ErrEmptyVertexID)
	_, err = g.AddEdge("A", "", 1)
	require.ErrorIs(t, err, core.ErrEmptyVertexID)
	assert.Zero(t, g.VertexCount())
}

func TestGraph_ReturnedSlicesAreCopies(t *testing.T) {
	g := seedGraph(t)

	vs := g.Vertices()
	vs[0] = "Morgue"
	assert.Equal(t, "Hospital", g.Vertices()[0])

	nbs, _ := g.Neighbors("Hospital")
	nbs[0].Weight = 99
	again, _ := g.Neighbors("Hospital")
	assert.Equal(t, int64(5), again[0].Weight)
}
