package vif

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
)

// Conventional VIF thresholds: above ModerateThreshold a feature is worth a look,
// above SevereThreshold it is usually dropped or combined.
const (
	ModerateThreshold = 5.0
	SevereThreshold   = 10.0
)

// Severity classifies a VIF value against the conventional thresholds.
type Severity int

const (
	SeverityLow Severity = iota
	SeverityModerate
	SeveritySevere
	SeverityUndefined // NaN
)

func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityModerate:
		return "moderate"
	case SeveritySevere:
		return "severe"
	default:
		return "undefined"
	}
}

// Row : 1つの特徴量のVIF
type Row struct {
	Feature string  // 名称
	VIF     float64 // 分散拡大係数
}

// Tolerance returns 1/VIF, the share of the feature's variance not explained by the others.
func (r Row) Tolerance() float64 {
	return 1 / r.VIF
}

// Severity classifies the row's VIF.
func (r Row) Severity() Severity {
	switch {
	case math.IsNaN(r.VIF):
		return SeverityUndefined
	case r.VIF >= SevereThreshold:
		return SeveritySevere
	case r.VIF >= ModerateThreshold:
		return SeverityModerate
	default:
		return SeverityLow
	}
}

type rowJSON struct {
	Feature string          `json:"feature"`
	VIF     json.RawMessage `json:"vif"`
}

// MarshalJSON writes non-finite VIF values as the strings "+Inf", "-Inf" and "NaN".
func (r Row) MarshalJSON() ([]byte, error) {
	var v []byte
	switch {
	case math.IsNaN(r.VIF):
		v = []byte(`"NaN"`)
	case math.IsInf(r.VIF, 1):
		v = []byte(`"+Inf"`)
	case math.IsInf(r.VIF, -1):
		v = []byte(`"-Inf"`)
	default:
		v = strconv.AppendFloat(nil, r.VIF, 'g', -1, 64)
	}
	return json.Marshal(rowJSON{Feature: r.Feature, VIF: v})
}

// Result is the VIF table: one row per feature.
type Result struct {
	Rows []Row
}

// Len returns the number of rows.
func (res *Result) Len() int {
	return len(res.Rows)
}

// Features returns the feature names in row order.
func (res *Result) Features() []string {
	features := make([]string, len(res.Rows))
	for i, r := range res.Rows {
		features[i] = r.Feature
	}
	return features
}

// Values returns the VIF values in row order.
func (res *Result) Values() []float64 {
	values := make([]float64, len(res.Rows))
	for i, r := range res.Rows {
		values[i] = r.VIF
	}
	return values
}

// Lookup returns the VIF of the first row named feature.
func (res *Result) Lookup(feature string) (float64, bool) {
	for _, r := range res.Rows {
		if r.Feature == feature {
			return r.VIF, true
		}
	}
	return math.NaN(), false
}

// Exceeding returns the rows whose VIF is at least threshold, in row order.
func (res *Result) Exceeding(threshold float64) []Row {
	var rows []Row
	for _, r := range res.Rows {
		if r.VIF >= threshold {
			rows = append(rows, r)
		}
	}
	return rows
}

// drop removes every row named feature.
func (res *Result) drop(feature string) {
	rows := res.Rows[:0]
	for _, r := range res.Rows {
		if r.Feature != feature {
			rows = append(rows, r)
		}
	}
	res.Rows = rows
}

// sortDescending orders rows by VIF, largest first. Equal values keep their order and NaN goes last.
func (res *Result) sortDescending() {
	sort.SliceStable(res.Rows, func(i, j int) bool {
		vi, vj := res.Rows[i].VIF, res.Rows[j].VIF
		if math.IsNaN(vi) {
			return false
		}
		return math.IsNaN(vj) || vi > vj
	})
}

// MarshalJSON writes the rows as a JSON array.
func (res *Result) MarshalJSON() ([]byte, error) {
	if res.Rows == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(res.Rows)
}
