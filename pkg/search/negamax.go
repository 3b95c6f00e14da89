// Package search contains the negamax/alpha-beta search engine, transposition table,
// move ordering and repetition detection, per spec §4.6-§4.8.
package search

import (
	"context"
	"time"

	"github.com/seekerror/fianco/pkg/board"
	"github.com/seekerror/fianco/pkg/eval"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// Negamax implements depth-limited, alpha-beta-pruned negamax search over a Fianco
// board, per spec §4.7. Pseudo-code (spec §4.7 steps 1-9):
//
//	function negamax(board, depth, side, alpha, beta, hash, hint) is
//	    if halted then return 0, none, []
//	    if repetition count >= 3 then return 0 (draw)
//	    probe transposition table; cutoff if resolved
//	    if terminal or depth == 0 then return evaluate(board, side)
//	    generate moves; if none then return LOSE_SCORE
//	    order moves: hint, tt move, captures, steps
//	    for each move:
//	        make move; value := -negamax(board, depth-1, -side, -beta, -alpha, ...)
//	        unmake move; alpha := max(alpha, value); break if alpha >= beta
//	    store in transposition table
//	    return best value, best move, pv
type Negamax struct {
	TT      TranspositionTable
	Weights eval.Weights
	Nodes   uint64
}

// halted reports whether the wall-clock budget or caller context has been exhausted,
// the single cancellation gate permitted by spec §5.
func halted(ctx context.Context, deadline time.Time) bool {
	if contextx.IsCancelled(ctx) {
		return true
	}
	return !deadline.IsZero() && !time.Now().Before(deadline)
}

// Search runs negamax to the given depth from the given board/side, per spec §4.7. rep
// is the path-local repetition tracker; Search enters and leaves it on every return
// path, per spec §3's repetition-counter invariant. hint is the previous iteration's
// best move, used first in move ordering (spec §4.7 step 6).
func (n *Negamax) Search(ctx context.Context, b *board.Board, depth int, side board.Side, alpha, beta eval.Score, deadline time.Time, rep RepetitionTracker, hint board.Move, hasHint bool) (eval.Score, board.Move, []board.Move) {
	if halted(ctx, deadline) {
		return 0, board.Move{}, nil
	}

	hash := b.Hash()
	count := rep.Enter(hash)
	defer rep.Leave(hash)

	if count >= 3 {
		return eval.DrawScore, board.Move{}, nil
	}

	n.Nodes++

	alphaOrig := alpha
	var ttMove board.Move
	var hasTTMove bool
	if n.TT != nil {
		if v, cutoff, newAlpha, newBeta, move, has := Probe(n.TT, hash, depth, alpha, beta); has || cutoff {
			ttMove, hasTTMove = move, has
			if cutoff {
				return v, board.Move{}, nil
			}
			alpha, beta = newAlpha, newBeta
		}
	}

	if _, ok := b.Winner(); ok || depth == 0 {
		ownMoves := len(board.GenerateMoves(b, side))
		oppMoves := len(board.GenerateMoves(b, side.Opponent()))
		score := eval.Evaluate(b, side, n.Weights, ownMoves, oppMoves)
		if n.TT != nil {
			n.TT.Write(hash, depth, score, Exact, board.Move{})
		}
		return score, board.Move{}, nil
	}

	moves := board.GenerateMoves(b, side)
	if len(moves) == 0 {
		return eval.LoseScore, board.Move{}, nil
	}

	ordered := OrderMoves(moves, hint, hasHint, ttMove, hasTTMove)

	var best board.Move
	var pv []board.Move
	value := eval.NegInfScore

	for _, m := range ordered {
		if halted(ctx, deadline) {
			return 0, board.Move{}, nil
		}

		captured := b.MakeMove(m)
		childValue, _, childPV := n.Search(ctx, b, depth-1, side.Opponent(), beta.Negate(), alpha.Negate(), deadline, rep, board.Move{}, false)
		b.UnmakeMove(m, captured)

		childValue = childValue.Negate()
		if childValue > value {
			value = childValue
			best = m
			pv = append([]board.Move{m}, childPV...)
		}
		if value > alpha {
			alpha = value
		}
		if alpha >= beta {
			break
		}
	}

	if n.TT != nil {
		n.TT.Write(hash, depth, value, StoreBound(value, alphaOrig, beta), best)
	}
	return value, best, pv
}
