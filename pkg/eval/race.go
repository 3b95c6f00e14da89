package eval

import "github.com/seekerror/fianco/pkg/board"

// UnstoppablePawns returns the multiset of steps-to-goal for every pawn of the given
// side that is "unstoppable" under the quadrilateral race test of spec §4.5: no
// opposing pawn can reach a blocking or capturing square before the pawn reaches its goal row,
// assuming both sides move optimally and ignoring obstruction by own pieces.
func UnstoppablePawns(b *board.Board, side board.Side) []int {
	opp := side.Opponent()
	piece := board.PieceOf(side)
	oppPiece := board.PieceOf(opp)
	goal := side.GoalRow()
	forward := side.Unit()

	var steps []int
	for sq := board.Square(0); sq < board.NumSquares; sq++ {
		if b.At(sq) != piece {
			continue
		}
		row, col := sq.Row(), sq.Col()
		s := abs(goal - row)

		if isUnstoppable(b, row, col, s, forward, oppPiece) {
			steps = append(steps, s)
		}
	}
	return steps
}

// isUnstoppable checks every opposing pawn for interception potential, per spec §4.5.
func isUnstoppable(b *board.Board, row, col, s, forward int, oppPiece board.Piece) bool {
	for sq := board.Square(0); sq < board.NumSquares; sq++ {
		if b.At(sq) != oppPiece {
			continue
		}
		oppRow, oppCol := sq.Row(), sq.Col()

		d := (oppRow - row) * forward
		if d <= 0 || d > s {
			continue // not strictly ahead, or farther ahead than the goal row
		}
		if abs(oppCol-col) <= d {
			return false // opponent can reach a blocking/capturing square in time
		}
	}
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
