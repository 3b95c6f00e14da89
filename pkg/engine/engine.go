// Package engine exposes the single external operation of the Fianco CORE: Query, per
// spec §6. It owns input validation (spec §7) and wires together the board, evaluator
// and search packages into the stateless (board, depth, side, weights, budget) -> (move,
// score, pv) contract.
package engine

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/seekerror/fianco/pkg/board"
	"github.com/seekerror/fianco/pkg/eval"
	"github.com/seekerror/fianco/pkg/search"
	"github.com/seekerror/logw"
)

// recognizedWeightFields are the exact seven fields spec §3 recognizes. A Weights map
// missing any of these is rejected per spec §7; unrecognized extra keys are ignored.
var recognizedWeightFields = []string{
	"piece_value",
	"advancement_value",
	"unstoppable_pawn_bonus",
	"opponent_unstoppable_pawn_penalty",
	"center_control_value",
	"mobility_value",
	"edge_pawn_bonus",
}

// QueryInput is the (board, max_depth, side, weights, time_budget_seconds) tuple of
// spec §6. Board cells are +1 (Black), -1 (White) or 0 (Empty); Side is +1 or -1.
// Weights is a field-name keyed record so that a missing field is observable at
// validation time, matching the external-record semantics spec §6/§7 describe.
type QueryInput struct {
	Board             [board.NumRows][board.NumCols]int
	MaxDepth          int
	Side              int
	Weights           map[string]float64
	TimeBudgetSeconds float64
}

// QueryOutput is the (best_move, score, pv) tuple of spec §6.
type QueryOutput struct {
	HasMove bool
	From, To [2]int // [row, col]
	Score   float64
	PV      [][2][2]int // each entry is [from, to] as [row,col] pairs
}

// Query is the one CORE operation, per spec §6. It validates the input (spec §7),
// builds a board and a fresh Zobrist hash, and runs iterative deepening to max_depth
// bounded by the time budget, returning the best move found by the last fully
// completed iteration.
func Query(ctx context.Context, zt *board.ZobristTable, in QueryInput) (QueryOutput, error) {
	side, weights, err := validate(in)
	if err != nil {
		return QueryOutput{}, err
	}

	var cells [board.NumRows][board.NumCols]board.Piece
	for r := 0; r < board.NumRows; r++ {
		for c := 0; c < board.NumCols; c++ {
			switch in.Board[r][c] {
			case 1:
				cells[r][c] = board.BlackPawn
			case -1:
				cells[r][c] = board.WhitePawn
			default:
				cells[r][c] = board.Empty
			}
		}
	}
	b := board.NewBoard(zt, cells)

	logw.Debugf(ctx, "query: side=%v depth=%v budget=%.2fs", side, in.MaxDepth, in.TimeBudgetSeconds)

	budget := time.Duration(in.TimeBudgetSeconds * float64(time.Second))
	pv := search.IterativeDeepen(ctx, b, in.MaxDepth, side, weights, budget)

	out := QueryOutput{Score: float64(pv.Score)}
	if len(pv.Moves) == 0 {
		return out, nil
	}

	out.HasMove = true
	out.From = [2]int{pv.Moves[0].From.Row(), pv.Moves[0].From.Col()}
	out.To = [2]int{pv.Moves[0].To.Row(), pv.Moves[0].To.Col()}
	for _, m := range pv.Moves {
		out.PV = append(out.PV, [2][2]int{{m.From.Row(), m.From.Col()}, {m.To.Row(), m.To.Col()}})
	}
	return out, nil
}

// validate rejects malformed queries before any search state is constructed, per
// spec §7: invalid board dimensions/values, missing weight fields, a negative or
// non-finite time budget, or a non-positive depth.
func validate(in QueryInput) (board.Side, eval.Weights, error) {
	for r := 0; r < board.NumRows; r++ {
		for c := 0; c < board.NumCols; c++ {
			v := in.Board[r][c]
			if v != -1 && v != 0 && v != 1 {
				return 0, eval.Weights{}, fmt.Errorf("invalid board cell at (%v,%v): %v", r, c, v)
			}
		}
	}

	if in.MaxDepth <= 0 {
		return 0, eval.Weights{}, fmt.Errorf("invalid max_depth: %v (must be positive)", in.MaxDepth)
	}

	side, ok := board.SideFromInt(in.Side)
	if !ok {
		return 0, eval.Weights{}, fmt.Errorf("invalid side: %v (must be +1 or -1)", in.Side)
	}

	if math.IsNaN(in.TimeBudgetSeconds) || math.IsInf(in.TimeBudgetSeconds, 0) || in.TimeBudgetSeconds < 0 {
		return 0, eval.Weights{}, fmt.Errorf("invalid time_budget_seconds: %v", in.TimeBudgetSeconds)
	}

	weights, err := decodeWeights(in.Weights)
	if err != nil {
		return 0, eval.Weights{}, err
	}

	return side, weights, nil
}

func decodeWeights(m map[string]float64) (eval.Weights, error) {
	for _, field := range recognizedWeightFields {
		if _, ok := m[field]; !ok {
			return eval.Weights{}, fmt.Errorf("missing weight field: %v", field)
		}
	}

	w := eval.Weights{
		PieceValue:                     m["piece_value"],
		AdvancementValue:               m["advancement_value"],
		UnstoppablePawnBonus:           m["unstoppable_pawn_bonus"],
		OpponentUnstoppablePawnPenalty: m["opponent_unstoppable_pawn_penalty"],
		CenterControlValue:             m["center_control_value"],
		MobilityValue:                  m["mobility_value"],
		EdgePawnBonus:                  m["edge_pawn_bonus"],
	}
	if err := w.Validate(); err != nil {
		return eval.Weights{}, err
	}
	return w, nil
}
