package vif

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackwardElimination(t *testing.T) {
	steps, err := BackwardElimination(featureTable(t), DefaultOptions(), SevereThreshold, nil)
	require.NoError(t, err)
	require.Len(t, steps, 2)

	assert.Equal(t, "a", steps[0].Eliminated)
	assert.Equal(t, 4, steps[0].Result.Len())
	assert.Empty(t, steps[1].Eliminated)
	assert.ElementsMatch(t, []string{"b", "c", "noise"}, steps[1].Result.Features())
}

func TestBackwardElimination_LowerThreshold(t *testing.T) {
	steps, err := BackwardElimination(featureTable(t), DefaultOptions(), 3, nil)
	require.NoError(t, err)
	require.Len(t, steps, 3)

	assert.Equal(t, "a", steps[0].Eliminated)
	assert.Equal(t, "c", steps[1].Eliminated)
	assert.Empty(t, steps[2].Eliminated)
	for _, r := range steps[2].Result.Rows {
		assert.Less(t, r.VIF, 3.0, r.Feature)
	}
}

func TestBackwardElimination_Forced(t *testing.T) {
	forced := map[string]struct{}{"a": {}}
	steps, err := BackwardElimination(featureTable(t), DefaultOptions(), SevereThreshold, forced)
	require.NoError(t, err)
	require.Len(t, steps, 2)

	assert.Equal(t, "c", steps[0].Eliminated)
	assert.ElementsMatch(t, []string{"a", "b", "noise"}, steps[1].Result.Features())
}

func TestBackwardElimination_Selection(t *testing.T) {
	opts := DefaultOptions()
	opts.Features = Columns("b", "noise")

	steps, err := BackwardElimination(featureTable(t), opts, SevereThreshold, nil)
	require.NoError(t, err)
	require.Len(t, steps, 1)
	assert.Empty(t, steps[0].Eliminated)

	opts.Features = Columns("b", "zzz")
	_, err = BackwardElimination(featureTable(t), opts, SevereThreshold, nil)
	assert.ErrorIs(t, err, &ColumnNotFoundError{})
}

func TestBackwardElimination_SingleFeature(t *testing.T) {
	tbl := mustTable(t, []string{"x"}, []float64{1, 2, 3})
	steps, err := BackwardElimination(tbl, DefaultOptions(), 0, nil)
	require.NoError(t, err)
	require.Len(t, steps, 1)
	assert.Empty(t, steps[0].Eliminated)
}
