package eval

import "fmt"

// Weights is the bundle of weighted linear-combination coefficients consulted by
// Evaluate, per spec §3. All seven fields are recognized and required; there is no
// implicit default for a missing field, so callers must supply a complete bundle.
type Weights struct {
	PieceValue                    float64
	AdvancementValue               float64
	UnstoppablePawnBonus           float64
	OpponentUnstoppablePawnPenalty float64
	CenterControlValue             float64
	MobilityValue                  float64
	EdgePawnBonus                  float64
}

// Validate checks every weight is a number of magnitude at most 1e18 (so NaN and ±Inf
// are rejected), per spec §7 ("missing fields cause an
// input error"). A Weights value built in Go always has all seven fields present by
// construction; Validate instead catches the external-input failure mode of NaN/Inf
// coefficients arriving from a caller-supplied record.
func (w Weights) Validate() error {
	fields := map[string]float64{
		"piece_value":                        w.PieceValue,
		"advancement_value":                  w.AdvancementValue,
		"unstoppable_pawn_bonus":              w.UnstoppablePawnBonus,
		"opponent_unstoppable_pawn_penalty":   w.OpponentUnstoppablePawnPenalty,
		"center_control_value":                w.CenterControlValue,
		"mobility_value":                      w.MobilityValue,
		"edge_pawn_bonus":                     w.EdgePawnBonus,
	}
	for name, v := range fields {
		if v != v || v > maxFinite || v < -maxFinite { // v != v catches NaN
			return fmt.Errorf("invalid weight %v: %v", name, v)
		}
	}
	return nil
}

const maxFinite = 1e18
