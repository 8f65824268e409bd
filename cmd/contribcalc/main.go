package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rgehrsitz/contribcalc/internal/calculation"
	"github.com/rgehrsitz/contribcalc/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app holds state shared by every command of one invocation
type app struct {
	prefs  config.Preferences
	logger *zap.Logger
}

// engine returns a calculation engine logging through zap
func (a *app) engine() *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngine()
	if a.logger != nil {
		engine.SetLogger(newCalcLogger(a.logger))
	}
	return engine
}

func newRootCmd() *cobra.Command {
	a := &app{prefs: config.DefaultPreferences()}

	rootCmd := &cobra.Command{
		Use:   "contribcalc",
		Short: "Retirement contribution limit calculator",
		Long: `Calculates 2026 IRS contribution limits for 401(k), IRA and HSA accounts
and projects balances to retirement under conservative, moderate and aggressive returns.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			prefs, err := config.LoadPreferences()
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v, using defaults\n", err)
				prefs = config.DefaultPreferences()
			}
			a.prefs = prefs

			level := prefs.Logging.Level
			if cmd.Flags().Changed("log-level") {
				level, _ = cmd.Flags().GetString("log-level")
			}
			format := prefs.Logging.Format
			if cmd.Flags().Changed("log-format") {
				format, _ = cmd.Flags().GetString("log-format")
			}
			logger, err := newZapLogger(level, format)
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
			a.logger = logger
			a.logger.Debug("starting", zap.String("command", cmd.CommandPath()))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "Log format (console, json)")

	rootCmd.AddCommand(calculateCmd(a))
	rootCmd.AddCommand(projectCmd(a))
	rootCmd.AddCommand(limitsCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(compareCmd(a))
	rootCmd.AddCommand(interactiveCmd(a))
	rootCmd.AddCommand(tuiCmd(a))
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "contribcalc %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.GoVersion
	}
	return ""
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
