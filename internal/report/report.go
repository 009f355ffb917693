// Package report prints VIF results for the terminal.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/anyappinc/vif"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	borderStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
	severeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	moderateStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	lowStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("40"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// WriteJSON writes the result as an indented JSON array of {feature, vif} objects.
func WriteJSON(w io.Writer, res *vif.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// WriteText writes the result as a table, in result order, followed by a summary.
func WriteText(w io.Writer, res *vif.Result) error {
	if res.Len() == 0 {
		_, err := fmt.Fprintln(w, mutedStyle.Render("No features."))
		return err
	}

	rows := make([][]string, 0, res.Len())
	for _, r := range res.Rows {
		rows = append(rows, []string{r.Feature, FormatValue(r.VIF), r.Severity().String()})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col > 0 && row >= 0 && row < res.Len() {
				return severityStyle(res.Rows[row].Severity())
			}
			return lipgloss.NewStyle()
		}).
		Headers("FEATURE", "VIF", "SEVERITY").
		Rows(rows...)

	if _, err := fmt.Fprintln(w, t); err != nil {
		return err
	}

	moderate := len(res.Exceeding(vif.ModerateThreshold))
	severe := len(res.Exceeding(vif.SevereThreshold))
	_, err := fmt.Fprintf(w, "%d feature(s), %d at or above VIF %g, %d at or above VIF %g\n",
		res.Len(), moderate, vif.ModerateThreshold, severe, vif.SevereThreshold)
	return err
}

// FormatValue prints a VIF with two decimals, spelling out infinities and NaN.
func FormatValue(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	default:
		return fmt.Sprintf("%.2f", v)
	}
}

func severityStyle(s vif.Severity) lipgloss.Style {
	switch s {
	case vif.SeveritySevere:
		return severeStyle
	case vif.SeverityModerate:
		return moderateStyle
	case vif.SeverityLow:
		return lowStyle
	default:
		return mutedStyle
	}
}

// WriteSteps writes one line per elimination round and the table of the last round.
func WriteSteps(w io.Writer, steps []vif.Step) error {
	if len(steps) == 0 {
		_, err := fmt.Fprintln(w, mutedStyle.Render("No features."))
		return err
	}
	for i, s := range steps {
		if s.Eliminated == "" {
			continue
		}
		v, _ := s.Result.Lookup(s.Eliminated)
		r := vif.Row{Feature: s.Eliminated, VIF: v}
		line := fmt.Sprintf("round %d: removed %s (VIF %s)", i+1, r.Feature, FormatValue(r.VIF))
		if _, err := fmt.Fprintln(w, severityStyle(r.Severity()).Render(line)); err != nil {
			return err
		}
	}
	return WriteText(w, steps[len(steps)-1].Result)
}
