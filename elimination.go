package vif

import (
	"math"

	"github.com/anyappinc/vif/logger"
)

// Step is one round of BackwardElimination: the VIFs of the features still in,
// and the feature removed after it (empty for the last round).
type Step struct {
	Result     *Result `json:"vifs"`
	Eliminated string  `json:"eliminated,omitempty"`
}

// BackwardElimination : VIFが閾値を超える特徴量を1つずつ取り除く
//
// Each round computes the VIFs of the remaining features and removes the one
// with the largest VIF above threshold. It stops when no VIF is above threshold
// or a single feature is left. Features in forced are never removed, and
// NaN values never trigger a removal.
func BackwardElimination(t *Table, opts Options, threshold float64, forced map[string]struct{}) ([]Step, error) {
	remaining := t.Names()
	if opts.Features != nil {
		if _, err := opts.Features.resolve(t); err != nil {
			return nil, err
		}
		remaining = append([]string(nil), opts.Features.Columns...)
	}

	var steps []Step
	for {
		opts.Features = Columns(remaining...)
		res, err := Compute(t, opts)
		if err != nil {
			return steps, err
		}
		steps = append(steps, Step{Result: res})
		if len(remaining) <= 1 {
			break
		}

		eliminationTarget, border := "", threshold
		for _, r := range res.Rows {
			// 定数項と強制投入する変数は除かない
			if r.Feature == ConstantLabel {
				continue
			}
			if _, ok := forced[r.Feature]; ok {
				continue
			}
			if !math.IsNaN(r.VIF) && r.VIF > border {
				eliminationTarget, border = r.Feature, r.VIF
			}
		}
		if eliminationTarget == "" {
			break
		}

		logger.Info().Str("feature", eliminationTarget).Float64("vif", border).Msg("eliminate")
		steps[len(steps)-1].Eliminated = eliminationTarget
		remaining = without(remaining, eliminationTarget)
	}
	return steps, nil
}

// without returns names minus the first occurrence of name.
func without(names []string, name string) []string {
	out := make([]string, 0, len(names))
	removed := false
	for _, n := range names {
		if n == name && !removed {
			removed = true
			continue
		}
		out = append(out, n)
	}
	return out
}
