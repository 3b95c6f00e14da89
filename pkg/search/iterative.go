package search

import (
	"context"
	"time"

	"github.com/seekerror/fianco/pkg/board"
	"github.com/seekerror/fianco/pkg/eval"
	"github.com/seekerror/logw"
)

// PV represents the principal variation discovered by a completed search, per spec §3.
type PV struct {
	Depth int
	Score eval.Score
	Moves []board.Move
	Nodes uint64
}

func (p PV) String() string {
	return board.FormatMoves(p.Moves)
}

// IterativeDeepen runs depth 1..=maxDepth negamax, bounded by the wall-clock budget, per
// spec §4.8. It always returns the last fully completed iteration's result, even if the
// in-progress iteration is aborted by timeout (spec §5). If the side to move has exactly
// one legal capture (or, absent captures, exactly one legal step), that move is returned
// immediately without entering the loop, per the fast paths of spec §4.8.
func IterativeDeepen(ctx context.Context, b *board.Board, maxDepth int, side board.Side, w eval.Weights, budget time.Duration) PV {
	if len(board.GenerateMoves(b, side)) == 0 {
		// No legal move at the root, per spec §7: the side to move has already lost,
		// and every depth would report the same thing, so there is nothing to deepen
		// into. Surface the score rather than falling through to the loop below,
		// where it would be indistinguishable from a timeout-abandoned iteration.
		return PV{Score: eval.LoseScore}
	}

	if fast, ok := fastPath(b, side, w); ok {
		return fast
	}

	start := time.Now()
	deadline := start.Add(budget)

	n := &Negamax{TT: NewTranspositionTable(1 << 16), Weights: w}

	var committed PV
	var hint board.Move
	var hasHint bool

	for depth := 1; depth <= maxDepth; depth++ {
		if halted(ctx, deadline) {
			logw.Debugf(ctx, "iterative deepening: halted before depth=%v", depth)
			break
		}

		rep := NewRepetitionTracker(b.Hash())
		value, move, pv := n.Search(ctx, b, depth, side, eval.NegInfScore, eval.InfScore, deadline, rep, hint, hasHint)

		if halted(ctx, deadline) || move.IsZero() {
			logw.Debugf(ctx, "iterative deepening: abandoned depth=%v", depth)
			break
		}

		committed = PV{Depth: depth, Score: value, Moves: pv, Nodes: n.Nodes}
		hint, hasHint = move, true

		logw.Debugf(ctx, "iterative deepening: depth=%v score=%v pv=%v", depth, value, board.FormatMoves(pv))
	}

	return committed
}

// fastPath implements spec §4.8's pre-loop shortcuts: a single forced capture, or
// (absent any capture) a single available step, is returned immediately with the
// evaluator's score and a one-move PV.
func fastPath(b *board.Board, side board.Side, w eval.Weights) (PV, bool) {
	captures := board.GenerateCaptures(b, side)
	if len(captures) == 1 {
		return onlyMove(b, side, w, captures[0]), true
	}
	if len(captures) > 0 {
		return PV{}, false
	}

	steps := board.GenerateSteps(b, side)
	if len(steps) == 1 {
		return onlyMove(b, side, w, steps[0]), true
	}
	return PV{}, false
}

func onlyMove(b *board.Board, side board.Side, w eval.Weights, m board.Move) PV {
	ownMoves := 1
	oppMoves := len(board.GenerateMoves(b, side.Opponent()))
	score := eval.Evaluate(b, side, w, ownMoves, oppMoves)
	return PV{Depth: 1, Score: score, Moves: []board.Move{m}}
}
