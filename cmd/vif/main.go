package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/anyappinc/vif"
	"github.com/anyappinc/vif/dataset"
	"github.com/anyappinc/vif/internal/config"
	"github.com/anyappinc/vif/internal/report"
	"github.com/anyappinc/vif/logger"
	"github.com/anyappinc/vif/plot"
)

// Set by build flags.
var version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "vif",
		Short: "Variance Inflation Factors for the columns of a CSV file",
		Long: `vif regresses every numeric column of a table on the others and
reports its Variance Inflation Factor, to spot multicollinearity
between candidate features of a regression model.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newReportCmd(), newEliminateCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// reportParams holds the parsed flags for the report command.
type reportParams struct {
	path    string
	cfg     *config.Config
	json    bool
	verbose bool
	stdout  io.Writer
	stderr  io.Writer
}

// runReport is the extracted, testable body of the report command.
func runReport(p reportParams) error {
	logger.SetLogsOutput(zerolog.ConsoleWriter{Out: p.stderr, TimeFormat: time.Kitchen})
	if p.verbose {
		logger.SetLevel(zerolog.DebugLevel)
	} else {
		logger.SetLevel(zerolog.WarnLevel)
	}

	if err := p.cfg.Validate(); err != nil {
		return err
	}

	t, err := dataset.LoadCSV(p.path, dataset.Options{})
	if err != nil {
		return err
	}
	logger.Debug().Str("path", p.path).Int("rows", t.NumRows()).Int("columns", t.NumCols()).Msg("loaded table")

	var (
		chart   bytes.Buffer
		surface plot.Surface = plot.Nop{}
	)
	if p.cfg.Format != "none" {
		canvas := plot.NewCanvas(&chart, plot.Format(p.cfg.Format))
		canvas.Width, canvas.Height = p.cfg.Width, p.cfg.Height
		surface = canvas
	}

	res, err := vif.NewReporter(surface).Report(t, p.cfg.Options())
	if res == nil {
		return err
	}

	if err == nil && chart.Len() > 0 {
		if werr := os.WriteFile(p.cfg.Output, chart.Bytes(), 0o644); werr != nil {
			err = &vif.RenderError{Err: werr}
		} else {
			logger.Info().Str("output", p.cfg.Output).Msg("chart written")
		}
	}
	if err != nil {
		// 描画に失敗しても表は出力する
		logger.Warn().Err(err).Msg("chart not written")
	}

	if p.json {
		if werr := report.WriteJSON(p.stdout, res); werr != nil {
			return werr
		}
	} else if werr := report.WriteText(p.stdout, res); werr != nil {
		return werr
	}
	return err
}

// eliminateParams holds the parsed flags for the eliminate command.
type eliminateParams struct {
	path      string
	cfg       *config.Config
	threshold float64
	keep      []string
	json      bool
	verbose   bool
	stdout    io.Writer
	stderr    io.Writer
}

// runEliminate is the extracted, testable body of the eliminate command.
func runEliminate(p eliminateParams) error {
	logger.SetLogsOutput(zerolog.ConsoleWriter{Out: p.stderr, TimeFormat: time.Kitchen})
	if p.verbose {
		logger.SetLevel(zerolog.DebugLevel)
	} else {
		logger.SetLevel(zerolog.WarnLevel)
	}

	t, err := dataset.LoadCSV(p.path, dataset.Options{})
	if err != nil {
		return err
	}

	forced := make(map[string]struct{}, len(p.keep))
	for _, name := range p.keep {
		if !t.Has(name) {
			return &vif.ColumnNotFoundError{Column: name, Available: t.Names()}
		}
		forced[name] = struct{}{}
	}

	steps, err := vif.BackwardElimination(t, p.cfg.Options(), p.threshold, forced)
	if err != nil {
		return err
	}

	if p.json {
		enc := json.NewEncoder(p.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(steps)
	}
	return report.WriteSteps(p.stdout, steps)
}

func newEliminateCmd() *cobra.Command {
	var (
		configPath string
		features   []string
		threshold  float64
		keep       []string
		noConstant bool
		asJSON     bool
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "eliminate [file.csv]",
		Short: "Drop the most collinear column until every VIF is under a threshold",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				var err error
				if cfg, err = config.Load(configPath); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("features") {
				cfg.Features = features
			}
			if noConstant {
				config.Disable(&cfg.AddConstant)
			}

			return runEliminate(eliminateParams{
				path:      args[0],
				cfg:       cfg,
				threshold: threshold,
				keep:      keep,
				json:      asJSON,
				verbose:   verbose,
				stdout:    cmd.OutOrStdout(),
				stderr:    cmd.ErrOrStderr(),
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	cmd.Flags().StringSliceVarP(&features, "features", "f", nil,
		"columns to start from (default: all columns)")
	cmd.Flags().Float64VarP(&threshold, "threshold", "t", vif.SevereThreshold, "remove columns whose VIF is above this value")
	cmd.Flags().StringSliceVarP(&keep, "keep", "k", nil, "columns never removed")
	cmd.Flags().BoolVar(&noConstant, "no-constant", false, "do not add an intercept column")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the rounds as JSON")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log debug messages")

	return cmd
}

func newReportCmd() *cobra.Command {
	var (
		configPath      string
		features        []string
		noSort          bool
		noThreshold     bool
		noConstant      bool
		keepConstantRow bool
		output          string
		format          string
		asJSON          bool
		verbose         bool
	)

	cmd := &cobra.Command{
		Use:   "report [file.csv]",
		Short: "Compute VIFs and draw them as a bar chart",
		Long: `Compute the Variance Inflation Factor of every selected column of a
CSV file (header row first, numbers only), print the table and write a
horizontal bar chart with reference lines at VIF=5 and VIF=10.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				var err error
				if cfg, err = config.Load(configPath); err != nil {
					return err
				}
			}

			flags := cmd.Flags()
			if flags.Changed("features") {
				cfg.Features = features
			}
			if noSort {
				config.Disable(&cfg.Sort)
			}
			if noThreshold {
				config.Disable(&cfg.ThresholdLines)
			}
			if noConstant {
				config.Disable(&cfg.AddConstant)
			}
			if keepConstantRow {
				config.Disable(&cfg.DropConstantRow)
			}
			if flags.Changed("output") {
				cfg.Output = output
			}
			if flags.Changed("format") {
				cfg.Format = format
			}

			return runReport(reportParams{
				path:    args[0],
				cfg:     cfg,
				json:    asJSON,
				verbose: verbose,
				stdout:  cmd.OutOrStdout(),
				stderr:  cmd.ErrOrStderr(),
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	cmd.Flags().StringSliceVarP(&features, "features", "f", nil,
		"columns to use, in order (default: all columns)")
	cmd.Flags().BoolVar(&noSort, "no-sort", false, "keep the column order instead of sorting by VIF")
	cmd.Flags().BoolVar(&noThreshold, "no-threshold-lines", false, "do not draw the VIF=5 and VIF=10 lines")
	cmd.Flags().BoolVar(&noConstant, "no-constant", false, "do not add an intercept column")
	cmd.Flags().BoolVar(&keepConstantRow, "keep-constant-row", false, "report the intercept's own VIF")
	cmd.Flags().StringVarP(&output, "output", "o", "vif.png", "chart file")
	cmd.Flags().StringVar(&format, "format", "png", "chart format: png, svg, or none")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the table as JSON")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log debug messages")

	return cmd
}
