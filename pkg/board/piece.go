package board

// Piece represents the content of a square: empty, or occupied by a side's pawn.
type Piece uint8

const (
	Empty Piece = iota
	BlackPawn
	WhitePawn
)

// PieceOf returns the piece kind for the given side.
func PieceOf(s Side) Piece {
	if s == Black {
		return BlackPawn
	}
	return WhitePawn
}

// Side returns the side occupying the piece, if any.
func (p Piece) Side() (Side, bool) {
	switch p {
	case BlackPawn:
		return Black, true
	case WhitePawn:
		return White, true
	default:
		return 0, false
	}
}

func (p Piece) String() string {
	switch p {
	case Empty:
		return "."
	case BlackPawn:
		return "b"
	case WhitePawn:
		return "w"
	default:
		return "?"
	}
}
