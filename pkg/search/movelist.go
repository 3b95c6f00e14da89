package search

import "github.com/seekerror/fianco/pkg/board"

// OrderMoves orders moves per spec §4.7 step 6: hint_move first (if legal and present),
// then the transposition entry's best move (if distinct and legal), then remaining
// captures, then remaining steps. Since the generator already discards steps whenever
// captures exist (spec §4.1), the capture/step partition at a node is usually exclusive;
// the explicit partitioning here is for robustness and in case of future relaxation.
func OrderMoves(moves []board.Move, hint board.Move, hasHint bool, ttMove board.Move, hasTTMove bool) []board.Move {
	ordered := make([]board.Move, 0, len(moves))
	used := make(map[board.Move]bool, 2)

	if hasHint {
		if idx := indexOf(moves, hint); idx >= 0 {
			ordered = append(ordered, hint)
			used[hint] = true
		}
	}
	if hasTTMove && !ttMove.Equals(hint) {
		if idx := indexOf(moves, ttMove); idx >= 0 {
			ordered = append(ordered, ttMove)
			used[ttMove] = true
		}
	}

	var captures, steps []board.Move
	for _, m := range moves {
		if used[m] {
			continue
		}
		if m.IsCapture() {
			captures = append(captures, m)
		} else {
			steps = append(steps, m)
		}
	}

	ordered = append(ordered, captures...)
	ordered = append(ordered, steps...)
	return ordered
}

func indexOf(moves []board.Move, m board.Move) int {
	for i, c := range moves {
		if c.Equals(m) {
			return i
		}
	}
	return -1
}
