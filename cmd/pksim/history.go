package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/san-kum/pksim/internal/drugs"
	"github.com/san-kum/pksim/internal/experiment"
	"github.com/san-kum/pksim/internal/export"
	"github.com/san-kum/pksim/internal/pk"
	"github.com/san-kum/pksim/internal/storage"
	"github.com/san-kum/pksim/internal/viz"
)

var showJSON bool

func newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "list saved runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := storage.New(dataDir).List()
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no runs found")
				return nil
			}

			w := newTable(cmd.OutOrStdout())
			w.row("ID", "TIME", "DRUG", "DOSE", "INTERVENTION", "VIT C", "OUTCOME", "GAINED")
			for _, r := range runs {
				g := "-"
				if r.GainedH != nil {
					g = float(*r.GainedH, 2) + " h"
				}
				w.row(r.ID,
					r.CreatedAt.Format("2006-01-02 15:04:05"),
					r.Drug,
					mg(r.DoseMg),
					r.Intervention,
					mg(r.VitaminCDoseMg),
					r.Outcome,
					g,
				)
			}
			return w.Flush()
		},
	}
}

func newShowCmd() *cobra.Command {
	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "plot a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}
	showCmd.Flags().BoolVar(&showJSON, "json", false, "print the stored record")
	return showCmd
}

func showRun(cmd *cobra.Command, args []string) error {
	rec, err := storage.New(dataDir).Load(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if showJSON {
		return export.WriteJSON(out, rec)
	}

	cfg := rec.Inputs
	r := experiment.NewRegistry()
	integ, err := r.GetIntegrator(cfg.Integrator)
	if err != nil {
		return err
	}
	drug, err := r.GetDrug(cfg.Drug, integ)
	if err != nil {
		return err
	}
	naive := drug.NaiveSleepThresholdNgML()
	adjusted := drugs.AdjustedSleepThreshold(cfg.DoseMg, naive)

	o := viz.DefaultPlotOptions
	fmt.Fprintf(out, "run %s (%s)\n\n", rec.RunID, rec.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintln(out, viz.ConcentrationPlot(rec.Concentrations, cfg.SleepThresholdNgML, adjusted, naive, o))
	fmt.Fprintln(out)
	fmt.Fprintln(out, viz.PhPlot(rec.Ph, pk.UrinePhSafety, o))
	fmt.Fprintln(out)

	s := rec.Sleep
	w := newTable(out)
	w.row("outcome", s.Outcome)
	w.row("without", optionalHours(s.WithoutInterventionH))
	w.row("with", optionalHours(s.WithInterventionH))
	w.row("gained", optionalHours(s.GainedH))
	if s.ImprovementPercent != nil {
		w.row("improvement", float(*s.ImprovementPercent, 1)+"%")
	}
	if h := s.WithInterventionH; h != nil {
		w.row("bedtime", viz.FormatClock(cfg.DoseClockH+*h))
	}
	return w.Flush()
}

func optionalHours(v *float64) string {
	if v == nil {
		return "-"
	}
	return hours(*v, true)
}
