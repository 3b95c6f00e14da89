// Package eval contains the Fianco static position evaluator, including the
// unstoppable-pawn race analysis, per spec §4.4-§4.5.
package eval

import "github.com/seekerror/fianco/pkg/board"

// Evaluate returns the position score from side's perspective, per spec §4.4. Mobility
// (move-count) is supplied by the caller rather than recomputed here, since the search
// already generates move lists for both sides at this node.
func Evaluate(b *board.Board, side board.Side, w Weights, ownMoves, oppMoves int) Score {
	if winner, ok := b.Winner(); ok {
		if winner == side {
			return WinScore
		}
		return LoseScore
	}

	var score float64

	for sq := board.Square(0); sq < board.NumSquares; sq++ {
		p := b.At(sq)
		pside, ok := p.Side()
		if !ok {
			continue
		}

		sign := 1.0
		if pside != side {
			sign = -1.0
		}

		row, col := sq.Row(), sq.Col()

		score += sign * w.PieceValue
		score += sign * w.AdvancementValue * float64(forwardRank(pside, row))
		if col == 0 || col == board.NumCols-1 {
			score += sign * w.EdgePawnBonus
		}
		if isCenter(row, col) {
			score += sign * w.CenterControlValue
		}
	}

	score += w.MobilityValue * float64(ownMoves-oppMoves)
	score += unstoppableTerm(b, side, w)

	return Score(score)
}

// forwardRank returns the advancement rank for the side's piece at row: row for Black,
// (NumRows-1-row) for White, per spec §4.4.
func forwardRank(side board.Side, row int) int {
	if side == board.Black {
		return row
	}
	return board.NumRows - 1 - row
}

func isCenter(row, col int) bool {
	return row >= 3 && row <= 5 && col >= 3 && col <= 5
}

// unstoppableTerm implements the race-bonus/penalty contribution of spec §4.5.
func unstoppableTerm(b *board.Board, side board.Side, w Weights) float64 {
	own := UnstoppablePawns(b, side)
	opp := UnstoppablePawns(b, side.Opponent())

	var total float64
	for _, s := range own {
		total += w.UnstoppablePawnBonus / float64(s+1)
	}
	for _, s := range opp {
		total += w.OpponentUnstoppablePawnPenalty / float64(s+1)
	}

	switch {
	case len(own) > 0 && len(opp) == 0:
		total += w.UnstoppablePawnBonus * 2
	case len(own) == 0 && len(opp) > 0:
		total += w.OpponentUnstoppablePawnPenalty * 2
	case len(own) > 0 && len(opp) > 0:
		minOwn, minOpp := min(own), min(opp)
		switch {
		case minOpp < minOwn:
			total += w.OpponentUnstoppablePawnPenalty * 2
		case minOwn < minOpp:
			total += w.UnstoppablePawnBonus * 2
		}
	}
	return total
}

func min(vs []int) int {
	m := vs[0]
	for _, v := range vs[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
