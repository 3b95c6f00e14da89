// Command fianco is a small CLI driver for the Fianco CORE engine: it decodes a
// position in notation form, runs a query, and prints the chosen move, score and
// principal variation. It is an external collaborator per spec §1, not part of the
// CORE's tested invariants.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/seekerror/fianco/pkg/board"
	"github.com/seekerror/fianco/pkg/board/notation"
	"github.com/seekerror/fianco/pkg/engine"
	"github.com/seekerror/logw"
)

var (
	pos    = flag.String("position", notation.Initial, "Position in Fianco notation")
	depth  = flag.Int("depth", 6, "Maximum iterative-deepening depth")
	budget = flag.Float64("time", 5.0, "Time budget in seconds")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: fianco [options]

FIANCO is a depth-limited alpha-beta search engine for the board game Fianco.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	zt := board.NewZobristTable(0)

	b, side, err := notation.Decode(zt, *pos)
	if err != nil {
		logw.Exitf(ctx, "Invalid position: %v", err)
	}

	var cells [board.NumRows][board.NumCols]int
	for r := 0; r < board.NumRows; r++ {
		for c := 0; c < board.NumCols; c++ {
			switch b.At(board.NewSquare(r, c)) {
			case board.BlackPawn:
				cells[r][c] = 1
			case board.WhitePawn:
				cells[r][c] = -1
			}
		}
	}

	in := engine.QueryInput{
		Board:    cells,
		MaxDepth: *depth,
		Side:     side.Int(),
		Weights: map[string]float64{
			"piece_value":                        100,
			"advancement_value":                  5,
			"unstoppable_pawn_bonus":              800,
			"opponent_unstoppable_pawn_penalty":   -800,
			"center_control_value":                3,
			"mobility_value":                      2,
			"edge_pawn_bonus":                      1,
		},
		TimeBudgetSeconds: *budget,
	}

	out, err := engine.Query(ctx, zt, in)
	if err != nil {
		logw.Exitf(ctx, "Query failed: %v", err)
	}

	if !out.HasMove {
		fmt.Println("no legal move")
		return
	}
	fmt.Printf("move=%v-%v score=%.2f pv=%v\n", out.From, out.To, out.Score, out.PV)
}
