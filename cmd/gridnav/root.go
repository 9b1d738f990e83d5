package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/gridnav-go/internal/config"
	"github.com/ukaji3/gridnav-go/internal/logging"
	"github.com/ukaji3/gridnav-go/pkg/gridnav"
	"github.com/ukaji3/gridnav-go/pkg/gridnav/models"
)

// app carries the state shared by every subcommand.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "gridnav",
		Short: "Replay spreadsheet keyboard navigation",
		Long: `gridnav loads the protection state of an xlsx sheet and replays
Tab, Shift+Tab, Enter and arrow keys against it, reporting where the cursor lands.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default: $GRIDNAV_CONFIG or ~/.config/gridnav/config.toml)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "Log format: text, json")

	rootCmd.AddCommand(
		newReplayCmd(a),
		newRunCmd(a),
		newProtectionCmd(a),
		newGridCmd(a),
	)
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	// Flag values take precedence over config.
	level, format := cfg.Log.Level, cfg.Log.Format
	if a.logLevel != "" {
		level = a.logLevel
	}
	if a.logFormat != "" {
		format = a.logFormat
	}
	logger, err := logging.New(cmd.ErrOrStderr(), level, format)
	if err != nil {
		return err
	}
	a.logger = logger
	return nil
}

// options returns workbook options for sheet built from config.
func (a *app) options(sheet string) gridnav.Options {
	return gridnav.Options{
		Sheet:         sheet,
		Bounds:        models.Bounds{Rows: a.cfg.Sheet.MaxRows, Cols: a.cfg.Sheet.MaxCols},
		SearchHorizon: a.cfg.Navigation.SearchHorizon,
		Logger:        a.logger,
	}
}

// writeOutput writes data to path, or to stdout when path is empty.
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path != "" {
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
