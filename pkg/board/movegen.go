package board

// stepDirs and captureDirs give the (drow, dcol) offsets for each side, per spec §4.1.
var stepDirs = map[Side][][2]int{
	Black: {{1, 0}, {0, -1}, {0, 1}},
	White: {{-1, 0}, {0, -1}, {0, 1}},
}

var captureDirs = map[Side][][2]int{
	Black: {{1, -1}, {1, 1}},
	White: {{-1, -1}, {-1, 1}},
}

// GenerateMoves returns the legal moves for the given side on the board, enforcing
// mandatory capture per spec §4.1: if any capture is available, only captures are legal.
func GenerateMoves(b *Board, side Side) []Move {
	if captures := GenerateCaptures(b, side); len(captures) > 0 {
		return captures
	}
	return GenerateSteps(b, side)
}

// GenerateCaptures returns every legal capture for the side, ignoring mandatory-capture
// gating. Exposed separately so search move-ordering can partition captures from steps,
// per spec §4.7 step 6.
func GenerateCaptures(b *Board, side Side) []Move {
	var moves []Move
	opp := side.Opponent()
	piece := PieceOf(side)
	oppPiece := PieceOf(opp)

	for sq := Square(0); sq < NumSquares; sq++ {
		if b.cells[sq] != piece {
			continue
		}
		row, col := sq.Row(), sq.Col()

		for _, d := range captureDirs[side] {
			midRow, midCol := row+d[0], col+d[1]
			toRow, toCol := row+2*d[0], col+2*d[1]
			if !IsValidRowCol(midRow, midCol) || !IsValidRowCol(toRow, toCol) {
				continue
			}
			mid := NewSquare(midRow, midCol)
			to := NewSquare(toRow, toCol)
			if b.cells[mid] == oppPiece && b.cells[to] == Empty {
				moves = append(moves, Move{From: sq, To: to})
			}
		}
	}
	return moves
}

// GenerateSteps returns every legal non-capturing step for the side, ignoring
// mandatory-capture gating.
func GenerateSteps(b *Board, side Side) []Move {
	var moves []Move
	piece := PieceOf(side)

	for sq := Square(0); sq < NumSquares; sq++ {
		if b.cells[sq] != piece {
			continue
		}
		row, col := sq.Row(), sq.Col()

		for _, d := range stepDirs[side] {
			toRow, toCol := row+d[0], col+d[1]
			if !IsValidRowCol(toRow, toCol) {
				continue
			}
			to := NewSquare(toRow, toCol)
			if b.cells[to] == Empty {
				moves = append(moves, Move{From: sq, To: to})
			}
		}
	}
	return moves
}
