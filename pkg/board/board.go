// Package board contains the Fianco board representation, move primitives, Zobrist
// hashing and make/unmake logic.
package board

import (
	"fmt"
	"strings"
)

// Board represents a 9x9 Fianco position and its incrementally-maintained Zobrist hash.
// Not thread-safe, mirroring the teacher's board.Board.
type Board struct {
	zt    *ZobristTable
	cells [NumSquares]Piece
	hash  ZobristHash
}

// NewBoard constructs a board from a 9x9 grid of cells (row 0 first) and the shared
// Zobrist table. The hash is computed from scratch once, per spec §3.
func NewBoard(zt *ZobristTable, cells [NumRows][NumCols]Piece) *Board {
	b := &Board{zt: zt}
	for r := 0; r < NumRows; r++ {
		for c := 0; c < NumCols; c++ {
			b.cells[NewSquare(r, c)] = cells[r][c]
		}
	}
	b.hash = zt.Hash(b)
	return b
}

// Clone returns a deep copy of the board, suitable for the clone-per-child search
// strategy permitted by spec §9.
func (b *Board) Clone() *Board {
	clone := &Board{zt: b.zt, cells: b.cells, hash: b.hash}
	return clone
}

// Hash returns the board's current Zobrist hash.
func (b *Board) Hash() ZobristHash {
	return b.hash
}

// At returns the piece occupying the given square.
func (b *Board) At(sq Square) Piece {
	return b.cells[sq]
}

// set places a piece (or Empty) at the given square, without touching the hash. Used
// internally by MakeMove/UnmakeMove, which own hash maintenance.
func (b *Board) set(sq Square, p Piece) {
	b.cells[sq] = p
}

// MakeMove mutates the board and its hash per spec §4.2, returning the captured piece
// (Empty if the move was a step, not a capture).
func (b *Board) MakeMove(m Move) Piece {
	moving := b.cells[m.From]

	b.hash = b.zt.Move(b.hash, b, m, moving)

	captured := Empty
	if m.IsCapture() {
		mid := m.Midpoint()
		captured = b.cells[mid]
		b.set(mid, Empty)
	}

	b.set(m.From, Empty)
	b.set(m.To, moving)
	return captured
}

// UnmakeMove reverses a prior MakeMove, given the move and the piece it captured (Empty
// if none), restoring both the board and its hash. Zobrist XOR is its own inverse, so the
// same three terms the forward move applied (source, destination, captured midpoint)
// restore the original hash when re-applied.
func (b *Board) UnmakeMove(m Move, captured Piece) {
	moving := b.cells[m.To]

	b.hash ^= b.zt.squares[m.From][moving]
	b.hash ^= b.zt.squares[m.To][moving]
	if m.IsCapture() {
		b.hash ^= b.zt.squares[m.Midpoint()][captured]
	}

	b.set(m.To, Empty)
	b.set(m.From, moving)
	if m.IsCapture() {
		b.set(m.Midpoint(), captured)
	}
}

// Winner reports the winning side, if the position is terminal, per spec §4.3: a side
// wins by reaching the opponent's back rank, or if the opponent has no pieces left.
func (b *Board) Winner() (Side, bool) {
	blackCount, whiteCount := 0, 0

	for sq := Square(0); sq < NumSquares; sq++ {
		switch b.cells[sq] {
		case BlackPawn:
			blackCount++
			if sq.Row() == Black.GoalRow() {
				return Black, true
			}
		case WhitePawn:
			whiteCount++
			if sq.Row() == White.GoalRow() {
				return White, true
			}
		}
	}

	if blackCount == 0 {
		return White, true
	}
	if whiteCount == 0 {
		return Black, true
	}
	return 0, false
}

func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < NumRows; r++ {
		for c := 0; c < NumCols; c++ {
			sb.WriteString(b.cells[NewSquare(r, c)].String())
		}
		if r != NumRows-1 {
			sb.WriteRune('/')
		}
	}
	return fmt.Sprintf("board{%v, hash=%x}", sb.String(), uint64(b.hash))
}
