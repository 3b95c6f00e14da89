package engine_test

import (
	"context"
	"math"
	"testing"

	"github.com/seekerror/fianco/pkg/board"
	"github.com/seekerror/fianco/pkg/board/notation"
	"github.com/seekerror/fianco/pkg/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validWeights() map[string]float64 {
	return map[string]float64{
		"piece_value":                       100,
		"advancement_value":                 5,
		"unstoppable_pawn_bonus":            800,
		"opponent_unstoppable_pawn_penalty": -800,
		"center_control_value":              3,
		"mobility_value":                    2,
		"edge_pawn_bonus":                   1,
	}
}

func initialQuery(t *testing.T, zt *board.ZobristTable) engine.QueryInput {
	t.Helper()
	b, side, err := notation.Decode(zt, notation.Initial)
	require.NoError(t, err)

	var cells [board.NumRows][board.NumCols]int
	for r := 0; r < board.NumRows; r++ {
		for c := 0; c < board.NumCols; c++ {
			switch b.At(board.NewSquare(r, c)) {
			case board.BlackPawn:
				cells[r][c] = 1
			case board.WhitePawn:
				cells[r][c] = -1
			}
		}
	}

	return engine.QueryInput{
		Board:             cells,
		MaxDepth:          3,
		Side:              side.Int(),
		Weights:           validWeights(),
		TimeBudgetSeconds: 1,
	}
}

func TestQuery_InitialPositionReturnsAMove(t *testing.T) {
	zt := board.NewZobristTable(1)
	in := initialQuery(t, zt)

	out, err := engine.Query(context.Background(), zt, in)
	require.NoError(t, err)
	assert.True(t, out.HasMove)
	assert.NotEmpty(t, out.PV)
}

func TestQuery_RejectsInvalidBoardCell(t *testing.T) {
	zt := board.NewZobristTable(1)
	in := initialQuery(t, zt)
	in.Board[0][0] = 2

	_, err := engine.Query(context.Background(), zt, in)
	assert.Error(t, err)
}

func TestQuery_RejectsNonPositiveMaxDepth(t *testing.T) {
	zt := board.NewZobristTable(1)
	in := initialQuery(t, zt)
	in.MaxDepth = 0

	_, err := engine.Query(context.Background(), zt, in)
	assert.Error(t, err)
}

func TestQuery_RejectsInvalidSide(t *testing.T) {
	zt := board.NewZobristTable(1)
	in := initialQuery(t, zt)
	in.Side = 0

	_, err := engine.Query(context.Background(), zt, in)
	assert.Error(t, err)
}

func TestQuery_RejectsNegativeTimeBudget(t *testing.T) {
	zt := board.NewZobristTable(1)
	in := initialQuery(t, zt)
	in.TimeBudgetSeconds = -1

	_, err := engine.Query(context.Background(), zt, in)
	assert.Error(t, err)
}

func TestQuery_RejectsNonFiniteTimeBudget(t *testing.T) {
	zt := board.NewZobristTable(1)
	in := initialQuery(t, zt)
	in.TimeBudgetSeconds = math.Inf(1)

	_, err := engine.Query(context.Background(), zt, in)
	assert.Error(t, err)
}

func TestQuery_RejectsMissingWeightField(t *testing.T) {
	zt := board.NewZobristTable(1)
	in := initialQuery(t, zt)
	delete(in.Weights, "mobility_value")

	_, err := engine.Query(context.Background(), zt, in)
	assert.Error(t, err)
}

func TestQuery_RejectsNonFiniteWeight(t *testing.T) {
	zt := board.NewZobristTable(1)
	in := initialQuery(t, zt)
	in.Weights["piece_value"] = math.NaN()

	_, err := engine.Query(context.Background(), zt, in)
	assert.Error(t, err)
}

// TestQuery_ForcedCaptureIsReturned verifies spec §8 scenario 1 end-to-end through the
// external Query entry point: a position with exactly one legal capture must be
// returned as the chosen move.
func TestQuery_ForcedCaptureIsReturned(t *testing.T) {
	zt := board.NewZobristTable(1)
	b, side, err := notation.Decode(zt, "........./........./........./....b..../.....w.../........./........./........./......... b")
	require.NoError(t, err)

	var cells [board.NumRows][board.NumCols]int
	for r := 0; r < board.NumRows; r++ {
		for c := 0; c < board.NumCols; c++ {
			switch b.At(board.NewSquare(r, c)) {
			case board.BlackPawn:
				cells[r][c] = 1
			case board.WhitePawn:
				cells[r][c] = -1
			}
		}
	}

	in := engine.QueryInput{
		Board:             cells,
		MaxDepth:          4,
		Side:              side.Int(),
		Weights:           validWeights(),
		TimeBudgetSeconds: 1,
	}

	out, err := engine.Query(context.Background(), zt, in)
	require.NoError(t, err)
	require.True(t, out.HasMove)
	assert.Equal(t, [2]int{3, 4}, out.From)
	assert.Equal(t, [2]int{5, 6}, out.To)
}
