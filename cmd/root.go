package cmd

import (
	"fmt"

	"github.com/7jameslondon/MagMerge/pkg/logging"
	"github.com/7jameslondon/MagMerge/pkg/merge"
	"github.com/7jameslondon/MagMerge/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rootLogger is the logger handed in by main; runMerge falls back to a no-op
// logger when the command runs without one (as in tests).
var rootLogger *zap.Logger

// RootCmd is the base command. Running it merges the given folder directly;
// the tool has a single purpose and needs no subcommand for it.
var RootCmd = &cobra.Command{
	Use:   "magmerge <folder>",
	Short: "MagMerge merges bead and motor position logs",
	Long: `MagMerge scans a folder for "Bead Positions" and "Motor Positions" text
files and merges each set into one combined file, keeping the first header
line and every data line in filename order.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runMerge,
}

func init() {
	RootCmd.Flags().String("profile", "", "Path to a TOML merge profile (defaults to the built-in bead/motor profile)")
	RootCmd.Flags().Bool("debug", false, "Enable debug logging and per-file progress output")
	RootCmd.Flags().BoolP("quiet", "q", false, "Suppress the report printed after the merge")
}

// Execute runs the root command with the provided logger.
func Execute(logger *zap.Logger) error {
	rootLogger = logger
	return RootCmd.Execute()
}

func runMerge(cmd *cobra.Command, args []string) error {
	profilePath, err := cmd.Flags().GetString("profile")
	if err != nil {
		return fmt.Errorf("error reading flags: %w", err)
	}
	debug, err := cmd.Flags().GetBool("debug")
	if err != nil {
		return fmt.Errorf("error reading flags: %w", err)
	}
	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("error reading flags: %w", err)
	}

	logger := rootLogger
	if logger == nil {
		logger = zap.NewNop()
	}
	if debug {
		if setupErr := logging.Setup(true, "MagMerge", version.Version); setupErr != nil {
			logger.Warn("Failed to set up debug logger, keeping current logger", zap.Error(setupErr))
		} else {
			logger = logging.Logger
		}
	}

	mergeArgs := merge.Arguments{
		Folder:      args[0],
		ProfilePath: profilePath,
	}
	if debug {
		progressLogger := logger
		mergeArgs.OnProgress = func(p merge.ProgressUpdate) {
			progressLogger.Info("Processed input file",
				zap.Int("processed", p.Processed),
				zap.Int("total", p.Total),
				zap.String("class", p.Class.Name),
				zap.String("file", p.File))
		}
	}

	summary, err := merge.Execute(mergeArgs, logger)
	if err != nil {
		return err
	}

	if !quiet {
		printReport(cmd.OutOrStdout(), summary)
	}
	return nil
}
