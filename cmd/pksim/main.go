package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/pksim/internal/config"
	"github.com/san-kum/pksim/internal/experiment"
	"github.com/san-kum/pksim/internal/logging"
	"github.com/san-kum/pksim/internal/tui"
	"github.com/san-kum/pksim/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	logLevel   string
	logFile    string
	themeName  string

	logger = zap.NewNop()
)

// main launches the calculator when no subcommand is given.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "pksim",
		Short:        "amphetamine clearance and sleep onset under urine acidification",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := logging.New(logging.Options{Level: logLevel, File: logFile})
			if err != nil {
				return err
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		RunE: runCalculator,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".pksim", "data directory for saved runs")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "start from a preset configuration")
	pf.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	pf.StringVar(&logFile, "log-file", "", "also write JSON logs to this file")
	pf.StringVar(&themeName, "theme", "night", "terminal theme")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive calculator",
		Args:  cobra.NoArgs,
		RunE:  runCalculator,
	}
	addInputFlags(tuiCmd)

	rootCmd.AddCommand(
		newRunCmd(),
		newChartCmd(),
		newSweepCmd(),
		newScenarioCmd(),
		newMonteCarloCmd(),
		newPresetsCmd(),
		newListCmd(),
		newHistoryCmd(),
		newShowCmd(),
		tuiCmd,
	)
	return rootCmd
}

func runCalculator(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return tui.Run(cfg, experiment.NewRegistry(), viz.GetTheme(themeName), logger)
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "list preset configurations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := newTable(cmd.OutOrStdout())
			w.row("PRESET", "DOSE", "WEIGHT", "BASE PH", "INTERVENTION", "VIT C", "VIT C TIME")
			for _, name := range config.ListPresets() {
				cfg, err := config.GetPreset(name)
				if err != nil {
					return err
				}
				w.row(name,
					mg(cfg.DoseMg),
					float(cfg.BodyWeightKg, 0)+" kg",
					float(cfg.BaseUrinePh, 1),
					cfg.Intervention,
					mg(cfg.VitaminC.DoseMg),
					float(cfg.VitaminC.TimeH, 1)+" h",
				)
			}
			return w.Flush()
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list drugs, interventions and integrators",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			r := experiment.NewRegistry()
			w := newTable(cmd.OutOrStdout())
			w.row("KIND", "NAMES")
			w.row("drug", join(r.ListDrugs()))
			w.row("intervention", join(r.ListInterventions()))
			w.row("integrator", join(r.ListIntegrators()))
			w.Flush()
		},
	}
}
