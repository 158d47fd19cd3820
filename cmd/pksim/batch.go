package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/pksim/internal/analysis"
	"github.com/san-kum/pksim/internal/automation"
	"github.com/san-kum/pksim/internal/experiment"
	"github.com/san-kum/pksim/internal/export"
	"github.com/san-kum/pksim/internal/pk"
	"github.com/san-kum/pksim/internal/storage"
)

var (
	mcTrials       int
	mcSeed         int64
	mcWeightSpread float64
	mcPhSpread     float64
	mcFlowSpread   float64
	saveScenario   bool
)

func newScenarioCmd() *cobra.Command {
	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run the regimens of a scenario file and compare them",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}
	scenarioCmd.Flags().BoolVar(&saveScenario, "save", false, "archive every step in the data directory")
	return scenarioCmd
}

func runScenario(cmd *cobra.Command, args []string) error {
	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("running scenario", zap.String("name", scenario.Name), zap.Int("steps", len(scenario.Steps)))
	results, err := automation.RunScenario(ctx, scenario, experiment.NewRegistry(), logger)
	if err != nil {
		return err
	}

	var st *storage.Store
	if saveScenario {
		st = storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
	}

	w := newTable(cmd.OutOrStdout())
	w.row("STEP", "OUTCOME", "WITHOUT", "WITH", "GAINED", "PEAK", "MIN PH")
	for _, r := range results {
		res := r.Result
		without, okWithout := res.Sleep.WithoutInterventionH()
		with, okWith := res.Sleep.WithInterventionH()
		w.row(r.Name,
			res.Sleep.Outcome(),
			hours(without, okWithout),
			hours(with, okWith),
			gained(res.Sleep),
			float(pk.MgLToNgML(res.Metrics["peak_concentration"]), 1)+" ng/mL",
			float(res.Metrics["min_urine_ph"], 2),
		)

		if st != nil {
			exp := r.Experiment
			if _, err := st.Save(export.NewRecord(exp.ID, exp.CreatedAt, exp.Config, res)); err != nil {
				return err
			}
		}
	}
	return w.Flush()
}

func newMonteCarloCmd() *cobra.Command {
	mcCmd := &cobra.Command{
		Use:   "montecarlo",
		Short: "spread of sleep gained across varied patients",
		Args:  cobra.NoArgs,
		RunE:  runMonteCarlo,
	}
	addInputFlags(mcCmd)
	f := mcCmd.Flags()
	f.IntVar(&mcTrials, "trials", 500, "number of simulated patients")
	f.Int64Var(&mcSeed, "seed", 0, "random seed, 0 for time based")
	f.Float64Var(&mcWeightSpread, "weight-spread", 15, "body weight spread (± kg)")
	f.Float64Var(&mcPhSpread, "ph-spread", 0.5, "baseline urine pH spread (±)")
	f.Float64Var(&mcFlowSpread, "flow-spread", 0.02, "urine flow spread (± L/h)")
	return mcCmd
}

func runMonteCarlo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := automation.RunMonteCarlo(ctx, automation.MonteCarloConfig{
		Base:           cfg,
		NumTrials:      mcTrials,
		Seed:           mcSeed,
		WeightSpreadKg: mcWeightSpread,
		PhSpread:       mcPhSpread,
		FlowSpread:     mcFlowSpread,
	}, experiment.NewRegistry(), logger)
	if err != nil {
		return err
	}

	stats := automation.Stats(results)
	out := cmd.OutOrStdout()

	w := newTable(out)
	w.row("OUTCOME", "TRIALS")
	outcomes := make([]string, 0, len(stats.Outcomes))
	for o := range stats.Outcomes {
		outcomes = append(outcomes, o)
	}
	sort.Strings(outcomes)
	for _, o := range outcomes {
		w.row(o, float(float64(stats.Outcomes[o]), 0))
	}
	w.row("", "")
	w.row("mean gained", float(stats.MeanGainedH, 2)+" h")
	w.row("median gained", float(stats.MedianGainedH, 2)+" h")
	w.row("range", float(stats.MinGainedH, 2)+" to "+float(stats.MaxGainedH, 2)+" h")
	if err := w.Flush(); err != nil {
		return err
	}

	gainedH := make([]float64, 0, len(results))
	for _, r := range results {
		if b, ok := r.Sleep.(analysis.Both); ok {
			gainedH = append(gainedH, b.GainedH)
		}
	}
	if len(gainedH) > 1 {
		sort.Float64s(gainedH)
		fmt.Fprintln(out)
		fmt.Fprintln(out, asciigraph.Plot(gainedH,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption("hours gained per patient, sorted"),
		))
	}
	return nil
}
