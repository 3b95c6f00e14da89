package eval_test

import (
	"math"
	"testing"

	"github.com/seekerror/fianco/pkg/board"
	"github.com/seekerror/fianco/pkg/board/notation"
	"github.com/seekerror/fianco/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWeights() eval.Weights {
	return eval.Weights{
		PieceValue:                     100,
		AdvancementValue:               5,
		UnstoppablePawnBonus:           800,
		OpponentUnstoppablePawnPenalty: -800,
		CenterControlValue:             3,
		MobilityValue:                  2,
		EdgePawnBonus:                  1,
	}
}

// TestEvaluateSymmetry verifies spec §8's evaluator-symmetry invariant:
// evaluate(P, s) = -evaluate(P, -s) in all non-terminal positions when weights are
// shared.
func TestEvaluateSymmetry(t *testing.T) {
	zt := board.NewZobristTable(1)
	b, _, err := notation.Decode(zt, notation.Initial)
	require.NoError(t, err)

	w := testWeights()
	blackMoves := len(board.GenerateMoves(b, board.Black))
	whiteMoves := len(board.GenerateMoves(b, board.White))

	blackScore := eval.Evaluate(b, board.Black, w, blackMoves, whiteMoves)
	whiteScore := eval.Evaluate(b, board.White, w, whiteMoves, blackMoves)

	assert.InDelta(t, float64(blackScore), -float64(whiteScore), 1e-9)
}

func TestEvaluate_Terminal(t *testing.T) {
	zt := board.NewZobristTable(1)
	n := "........./........./........./........./........./........./........./........./b...w.... w"
	b, _, err := notation.Decode(zt, n)
	require.NoError(t, err)

	w := testWeights()
	assert.Equal(t, eval.LoseScore, eval.Evaluate(b, board.White, w, 0, 0))
	assert.Equal(t, eval.WinScore, eval.Evaluate(b, board.Black, w, 0, 0))
}

func TestWeights_Validate(t *testing.T) {
	w := testWeights()
	assert.NoError(t, w.Validate())

	w.MobilityValue = math.NaN()
	assert.Error(t, w.Validate())
}
