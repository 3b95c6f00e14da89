// Package notation contains utilities for reading and writing Fianco positions in a
// compact text notation, analogous to the role FEN plays for chess boards.
package notation

import (
	"fmt"
	"strings"

	"github.com/seekerror/fianco/pkg/board"
)

// Initial is the standard Fianco starting position: nine pieces per side on the back
// rank and the two inner diagonals (row 0 is Black's back rank, row 8 is White's), side
// to move is Black.
const Initial = "" +
	"b...b...b/.b.....b./..b...b../...b.b.../........./...w.w.../..w...w../.w.....w./w...w...w b"

// Decode parses a notation string into a board and the side to move.
//
// The format is 9 rows (row 0 first) separated by '/', each row exactly 9 characters of
// '.' (empty), 'b' (black pawn) or 'w' (white pawn), followed by a space and a side marker
// ('b' or 'w').
func Decode(zt *board.ZobristTable, s string) (*board.Board, board.Side, error) {
	parts := strings.Fields(strings.TrimSpace(s))
	if len(parts) != 2 {
		return nil, 0, fmt.Errorf("invalid notation: wrong number of fields in %q", s)
	}

	rows := strings.Split(parts[0], "/")
	if len(rows) != board.NumRows {
		return nil, 0, fmt.Errorf("invalid notation: expected %v rows, got %v", board.NumRows, len(rows))
	}

	var cells [board.NumRows][board.NumCols]board.Piece
	for r, row := range rows {
		if len(row) != board.NumCols {
			return nil, 0, fmt.Errorf("invalid notation: row %v has %v cells, want %v", r, len(row), board.NumCols)
		}
		for c, ch := range row {
			p, ok := parsePiece(ch)
			if !ok {
				return nil, 0, fmt.Errorf("invalid notation: unknown cell %q at row %v col %v", ch, r, c)
			}
			cells[r][c] = p
		}
	}

	side, ok := parseSide(parts[1])
	if !ok {
		return nil, 0, fmt.Errorf("invalid notation: unknown side marker %q", parts[1])
	}

	return board.NewBoard(zt, cells), side, nil
}

// Encode renders the board and side to move back into notation form.
func Encode(b *board.Board, side board.Side) string {
	var sb strings.Builder
	for r := 0; r < board.NumRows; r++ {
		if r != 0 {
			sb.WriteRune('/')
		}
		for c := 0; c < board.NumCols; c++ {
			sb.WriteString(b.At(board.NewSquare(r, c)).String())
		}
	}
	sb.WriteRune(' ')
	sb.WriteString(sideMarker(side))
	return sb.String()
}

func parsePiece(r rune) (board.Piece, bool) {
	switch r {
	case '.':
		return board.Empty, true
	case 'b':
		return board.BlackPawn, true
	case 'w':
		return board.WhitePawn, true
	default:
		return board.Empty, false
	}
}

func parseSide(s string) (board.Side, bool) {
	switch s {
	case "b":
		return board.Black, true
	case "w":
		return board.White, true
	default:
		return 0, false
	}
}

func sideMarker(s board.Side) string {
	if s == board.Black {
		return "b"
	}
	return "w"
}
