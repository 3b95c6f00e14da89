package board

import "fmt"

// NumRows and NumCols define the 9x9 Fianco board.
const (
	NumRows = 9
	NumCols = 9
	NumSquares = NumRows * NumCols
)

// Square represents a square on the board as a packed (row, col) pair: row*NumCols+col,
// row 0 is Black's back rank and row NumRows-1 is White's back rank.
type Square uint8

// NewSquare packs a row/col pair into a Square. Does not validate bounds; use IsValid.
func NewSquare(row, col int) Square {
	return Square(row*NumCols + col)
}

func (sq Square) Row() int {
	return int(sq) / NumCols
}

func (sq Square) Col() int {
	return int(sq) % NumCols
}

// IsValidRowCol reports whether the given row/col pair lies on the board.
func IsValidRowCol(row, col int) bool {
	return row >= 0 && row < NumRows && col >= 0 && col < NumCols
}

func (sq Square) String() string {
	return fmt.Sprintf("(%v,%v)", sq.Row(), sq.Col())
}
