package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/pksim/internal/analysis"
	"github.com/san-kum/pksim/internal/experiment"
	"github.com/san-kum/pksim/internal/export"
	"github.com/san-kum/pksim/internal/sim"
	"github.com/san-kum/pksim/internal/viz"
)

var (
	sweepDoseMin float64
	sweepDoseMax float64
	sweepDoseN   int
	sweepTimeMin float64
	sweepTimeMax float64
	sweepTimeN   int
	sweepTop     int
	sweepAsCSV   bool
)

func newSweepCmd() *cobra.Command {
	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "rank vitamin C doses and timings by sleep gained",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	addInputFlags(sweepCmd)
	f := sweepCmd.Flags()
	f.Float64Var(&sweepDoseMin, "vitc-min", 0, "lowest vitamin C dose (mg)")
	f.Float64Var(&sweepDoseMax, "vitc-max", 4000, "highest vitamin C dose (mg)")
	f.IntVar(&sweepDoseN, "vitc-steps", 9, "number of vitamin C doses")
	f.Float64Var(&sweepTimeMin, "time-min", 0, "earliest vitamin C time (h)")
	f.Float64Var(&sweepTimeMax, "time-max", 12, "latest vitamin C time (h)")
	f.IntVar(&sweepTimeN, "time-steps", 13, "number of vitamin C times")
	f.IntVar(&sweepTop, "top", 10, "rows to print, 0 for all")
	f.BoolVar(&sweepAsCSV, "csv", false, "print every point as CSV")
	return sweepCmd
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	exp, err := experiment.New(experiment.NewRegistry(), cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	grid := sim.SweepGrid{
		DosesMg: sim.LinearGrid(sweepDoseMin, sweepDoseMax, sweepDoseN),
		TimesH:  sim.LinearGrid(sweepTimeMin, sweepTimeMax, sweepTimeN),
	}
	logger.Info("sweeping", zap.Int("doses", len(grid.DosesMg)), zap.Int("times", len(grid.TimesH)))

	points, err := exp.Sweep(ctx, grid)
	if err != nil {
		return err
	}

	if sweepAsCSV {
		return export.WriteSweepCSV(cmd.OutOrStdout(), points)
	}

	if sweepTop > 0 && sweepTop < len(points) {
		points = points[:sweepTop]
	}
	w := newTable(cmd.OutOrStdout())
	w.row("RANK", "VIT C", "TIME", "OUTCOME", "WITH", "GAINED", "MIN PH")
	for i, p := range points {
		with, ok := p.Sleep.WithInterventionH()
		w.row(float(float64(i+1), 0), mg(p.DoseMg), float(p.TimeH, 1)+" h", p.Sleep.Outcome(), hours(with, ok), gained(p.Sleep), float(p.MinPh, 2))
	}
	return w.Flush()
}

func gained(s analysis.SleepAnalysis) string {
	switch v := s.(type) {
	case analysis.Both:
		if v.GainedH <= 0 {
			return "none"
		}
		return viz.FormatDuration(v.GainedH)
	case analysis.OnlyWith:
		return "enables sleep"
	}
	return "-"
}
