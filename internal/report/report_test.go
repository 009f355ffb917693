package report

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anyappinc/vif"
)

func sampleResult() *vif.Result {
	return &vif.Result{Rows: []vif.Row{
		{Feature: "income", VIF: math.Inf(1)},
		{Feature: "age", VIF: 12.346},
		{Feature: "height", VIF: 6},
		{Feature: "weight", VIF: 1.5},
	}}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, sampleResult()))

	out := buf.String()
	for _, want := range []string{"FEATURE", "VIF", "income", "+Inf", "12.35", "6.00", "1.50", "severe", "moderate", "low"} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, "income"), strings.Index(out, "weight"))
	assert.Contains(t, out, "4 feature(s), 3 at or above VIF 5, 2 at or above VIF 10")
}

func TestWriteText_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, &vif.Result{}))
	assert.Contains(t, buf.String(), "No features.")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleResult()))

	var parsed []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &parsed))
	require.Len(t, parsed, 4)
	assert.Equal(t, "income", parsed[0]["feature"])
	assert.Equal(t, "+Inf", parsed[0]["vif"])
	assert.Equal(t, 12.346, parsed[1]["vif"])
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "2.00", FormatValue(2))
	assert.Equal(t, "NaN", FormatValue(math.NaN()))
	assert.Equal(t, "+Inf", FormatValue(math.Inf(1)))
	assert.Equal(t, "-Inf", FormatValue(math.Inf(-1)))
}

func TestWriteSteps(t *testing.T) {
	steps := []vif.Step{
		{Result: sampleResult(), Eliminated: "income"},
		{Result: &vif.Result{Rows: []vif.Row{{Feature: "weight", VIF: 1.5}}}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSteps(&buf, steps))
	out := buf.String()
	assert.Contains(t, out, "round 1: removed income (VIF +Inf)")
	assert.Contains(t, out, "1 feature(s), 0 at or above VIF 5, 0 at or above VIF 10")

	buf.Reset()
	require.NoError(t, WriteSteps(&buf, nil))
	assert.Contains(t, buf.String(), "No features.")
}
