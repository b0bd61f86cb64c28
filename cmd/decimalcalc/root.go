package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	cfgFile     string
	defaultMode string

	logger *zap.Logger
	config *viper.Viper
)

// newRootCommand builds the decimalcalc command tree, grounded on
// vitessio-vitess's cobra.Command{Use: ..., PersistentPreRunE: ...} pattern
// (go/cmd/zkctl/command/root.go) for wiring global flags and setup before
// any subcommand runs.
func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "decimalcalc",
		Short: "Exercise the fixed-point decimal core from the command line",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			logger, err = newLogger()
			if err != nil {
				return fmt.Errorf("decimalcalc: building logger: %w", err)
			}
			config, err = loadConfig(cfgFile)
			if err != nil {
				return fmt.Errorf("decimalcalc: loading config: %w", err)
			}
			if defaultMode == "" {
				defaultMode = config.GetString("default_round_mode")
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "path to an optional YAML config file")
	root.PersistentFlags().StringVar(&defaultMode, "round-mode", "", "default RoundMode when a subcommand doesn't specify one (TRUNCATE, HALF_UP, HALF_EVEN, CEILING, FLOOR)")

	root.AddCommand(
		newParseCommand(),
		newFormatCommand(),
		newArithCommand("add"),
		newArithCommand("sub"),
		newArithCommand("mul"),
		newDivModCommand("div"),
		newDivModCommand("mod"),
		newCompareCommand(),
		newRoundCommand(),
	)
	return root
}
