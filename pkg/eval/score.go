package eval

import "fmt"

// Score is a real-valued position evaluation from the perspective of a particular side,
// per spec §4.4. Positive favors that side.
type Score float64

const (
	// WinScore and LoseScore are the terminal-position scores from spec §4.4.
	WinScore  Score = 1000000
	LoseScore Score = -1000000

	// DrawScore is returned for repetition draws, per spec §4.7 step 2.
	DrawScore Score = 0

	// NegInfScore and InfScore bound the negamax search window. Widened beyond
	// WinScore/LoseScore, modeled loosely on the teacher's eval.NegInfScore/InfScore,
	// so that a terminal score can still be compared strictly against the window.
	NegInfScore Score = -2000000
	InfScore    Score = 2000000
)

func (s Score) String() string {
	return fmt.Sprintf("%.2f", float64(s))
}

// Negate flips the score to the opponent's perspective -- the negamax identity.
func (s Score) Negate() Score {
	return -s
}

// Max returns the larger of two scores.
func Max(a, b Score) Score {
	if a < b {
		return b
	}
	return a
}

// Min returns the smaller of two scores.
func Min(a, b Score) Score {
	if a < b {
		return a
	}
	return b
}
