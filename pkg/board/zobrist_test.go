package board_test

import (
	"testing"

	"github.com/seekerror/fianco/pkg/board"
	"github.com/seekerror/fianco/pkg/board/notation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHashConsistency verifies spec §8's hash-consistency invariant: after any sequence
// of make-moves, the incrementally maintained hash equals the hash recomputed from
// scratch on the resulting board.
func TestHashConsistency(t *testing.T) {
	zt := board.NewZobristTable(7)
	b, side, err := notation.Decode(zt, notation.Initial)
	require.NoError(t, err)

	for i := 0; i < 6; i++ {
		moves := board.GenerateMoves(b, side)
		require.NotEmpty(t, moves)
		m := moves[0]

		b.MakeMove(m)
		side = side.Opponent()

		assert.Equal(t, zt.Hash(b), b.Hash(), "hash diverged after move %v: %v", i, m)
	}
}

func TestMakeUnmake_RestoresHashAndBoard(t *testing.T) {
	n := "........./........./........./....b..../.....w.../........./........./........./......... b"
	b, _ := newBoard(t, n)

	before := b.String()
	beforeHash := b.Hash()

	m := board.Move{From: board.NewSquare(3, 4), To: board.NewSquare(5, 6)}
	captured := b.MakeMove(m)
	assert.NotEqual(t, beforeHash, b.Hash())

	b.UnmakeMove(m, captured)
	assert.Equal(t, beforeHash, b.Hash())
	assert.Equal(t, before, b.String())
}
