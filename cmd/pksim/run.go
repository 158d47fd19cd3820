package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/pksim/internal/drugs"
	"github.com/san-kum/pksim/internal/experiment"
	"github.com/san-kum/pksim/internal/export"
	"github.com/san-kum/pksim/internal/pk"
	"github.com/san-kum/pksim/internal/sim"
	"github.com/san-kum/pksim/internal/storage"
	"github.com/san-kum/pksim/internal/viz"
)

var (
	outputFormat string
	outputFile   string
	chartFile    string
	saveRun      bool
)

func newRunCmd() *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "simulate one regimen and report sleep onset",
		Args:  cobra.NoArgs,
		RunE:  runSimulation,
	}
	addInputFlags(runCmd)
	runCmd.Flags().StringVarP(&outputFormat, "output", "o", "text", "output format: text, json, csv, html, svg")
	runCmd.Flags().StringVar(&outputFile, "out", "", "write output to a file instead of stdout")
	runCmd.Flags().BoolVar(&saveRun, "save", false, "archive the run in the data directory")
	return runCmd
}

func newChartCmd() *cobra.Command {
	chartCmd := &cobra.Command{
		Use:   "chart",
		Short: "write interactive HTML charts for one regimen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			outputFormat, outputFile = "html", chartFile
			return runSimulation(cmd, args)
		},
	}
	addInputFlags(chartCmd)
	chartCmd.Flags().StringVar(&chartFile, "out", "pksim.html", "output file")
	return chartCmd
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	exp, err := experiment.New(experiment.NewRegistry(), cfg, logger)
	if err != nil {
		return err
	}

	start := time.Now()
	res := exp.Run()
	logger.Info("simulation complete",
		zap.String("run_id", exp.ID.String()),
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("samples", len(res.Ph)),
		zap.String("outcome", res.Sleep.Outcome()),
	)

	if saveRun {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		dir, err := st.Save(export.NewRecord(exp.ID, exp.CreatedAt, cfg, res))
		if err != nil {
			return err
		}
		logger.Info("run saved", zap.String("dir", dir))
	}

	w, done, err := openOutput(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if err := writeResult(w, outputFormat, exp, res); err != nil {
		done()
		return err
	}
	return done()
}

// openOutput returns stdout or the --out file. The returned func closes the
// file and reports its error.
func openOutput(stdout io.Writer) (io.Writer, func() error, error) {
	if outputFile == "" {
		return stdout, func() error { return nil }, nil
	}
	f, err := os.Create(outputFile)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("writing output", zap.String("file", outputFile), zap.String("format", outputFormat))
	return f, f.Close, nil
}

func writeResult(w io.Writer, format string, exp *experiment.Experiment, res *sim.Result) error {
	switch strings.ToLower(format) {
	case "text":
		_, err := fmt.Fprintln(w, renderText(exp, res))
		return err
	case "json":
		return export.WriteJSON(w, export.NewRecord(exp.ID, exp.CreatedAt, exp.Config, res))
	case "csv":
		return export.WriteCSV(w, res)
	case "html":
		return export.WriteHTML(w, res, thresholds(exp))
	case "svg":
		_, err := io.WriteString(w, export.SeriesSVG(res.Concentrations.SteadyState, 800, 300, "#2e7d32"))
		return err
	}
	return fmt.Errorf("unknown output format %q", format)
}

func thresholds(exp *experiment.Experiment) export.Thresholds {
	naive := exp.Simulator().Drug().NaiveSleepThresholdNgML()
	return export.Thresholds{
		UserNgML:     exp.Config.SleepThresholdNgML,
		NaiveNgML:    naive,
		AdjustedNgML: drugs.AdjustedSleepThreshold(exp.Config.DoseMg, naive),
	}
}

func renderText(exp *experiment.Experiment, res *sim.Result) string {
	th := thresholds(exp)
	st := viz.NewStyles(viz.GetTheme(themeName))
	o := viz.DefaultPlotOptions

	var b strings.Builder
	b.WriteString(viz.ConcentrationPlot(res.Concentrations, th.UserNgML, th.AdjustedNgML, th.NaiveNgML, o) + "\n\n")
	b.WriteString(viz.PhPlot(res.Ph, pk.UrinePhSafety, o) + "\n\n")
	b.WriteString(viz.Cards(res, viz.CardInputs{
		ThresholdNgML:         th.UserNgML,
		AdjustedThresholdNgML: th.AdjustedNgML,
		DoseClockH:            exp.Config.DoseClockH,
	}, st))
	return b.String()
}
