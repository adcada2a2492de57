package atom_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flowgrid/atom"
	"github.com/katalvlaran/flowgrid/puzzle"
)

// TestPoolIDStable verifies that equal atoms always receive the same id
// and distinct atoms never share one.
func TestPoolIDStable(t *testing.T) {
	pool := atom.NewPool()
	pos := puzzle.Position{Row: 1, Column: 2}

	first := pool.ID(atom.Flow(pos, puzzle.ShapeUpDown))
	require.Equal(t, 1, first, "ids start at 1")
	require.Equal(t, first, pool.ID(atom.Flow(pos, puzzle.ShapeUpDown)), "same atom, same id")

	other := pool.ID(atom.Flow(pos, puzzle.ShapeLeftRight))
	require.NotEqual(t, first, other, "distinct atoms get distinct ids")

	// Flow and colour atoms never collide, even over the same cell.
	colour := pool.ID(atom.Colour(pos, 0))
	require.NotEqual(t, first, colour)
	require.NotEqual(t, other, colour)
	require.Equal(t, 3, pool.Len())
}

// TestPoolLookup verifies the reverse mapping and its failure cases.
func TestPoolLookup(t *testing.T) {
	pool := atom.NewPool()
	want := atom.Colour(puzzle.Position{Row: 0, Column: 3}, 5)
	id := pool.ID(want)

	got, ok := pool.Lookup(id)
	require.True(t, ok)
	require.Equal(t, want, got)

	for _, bad := range []int{0, -id, id + 1} {
		_, ok = pool.Lookup(bad)
		require.False(t, ok, "Lookup(%d) should fail", bad)
	}
}

// TestPoolIssueOnFirstUse checks that ids grow densely in first-reference
// order, so any stage may query atoms the encoder never touched.
func TestPoolIssueOnFirstUse(t *testing.T) {
	pool := atom.NewPool()
	var ids []int
	for c := 0; c < 4; c++ {
		ids = append(ids, pool.ID(atom.Colour(puzzle.Position{Row: c, Column: 0}, c)))
	}
	require.Equal(t, []int{1, 2, 3, 4}, ids)
	require.Equal(t, 4, pool.Len())
}

// TestAtomString spot-checks the diagnostic formatting.
func TestAtomString(t *testing.T) {
	pos := puzzle.Position{Row: 2, Column: 1}
	require.Equal(t, "flow(2,1;Up|Down)", atom.Flow(pos, puzzle.ShapeUpDown).String())
	require.Equal(t, "colour(2,1;3)", atom.Colour(pos, 3).String())
}
