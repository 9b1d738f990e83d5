package main

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/ukaji3/gridnav-go/internal/tui"
	"github.com/ukaji3/gridnav-go/pkg/gridnav"
	"github.com/ukaji3/gridnav-go/pkg/gridnav/models"
	"github.com/ukaji3/gridnav-go/pkg/gridnav/output"
	"github.com/ukaji3/gridnav-go/pkg/gridnav/scenario"
)

func newReplayCmd(a *app) *cobra.Command {
	var (
		sheet      string
		start      string
		keys       string
		outputPath string
		pretty     bool
	)

	cmd := &cobra.Command{
		Use:   "replay [input.xlsx]",
		Short: "Replay a key sequence and print the cursor trace as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			startAddr, err := models.ParseAddress(start)
			if err != nil {
				return err
			}
			keyList, err := models.ParseKeys(keys)
			if err != nil {
				return err
			}

			wb, err := gridnav.Open(args[0], a.options(sheet))
			if err != nil {
				return fmt.Errorf("load failed: %w", err)
			}

			trace := wb.Replay(startAddr, keyList)
			a.logger.Info("replay finished", "keys", len(keyList), "final", trace.Final())

			data, err := output.TraceToJSON(&trace, pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			return writeOutput(cmd, outputPath, data)
		},
	}

	cmd.Flags().StringVar(&sheet, "sheet", "", "Sheet name (default: active sheet)")
	cmd.Flags().StringVar(&start, "start", "A1", "Initial cursor cell")
	cmd.Flags().StringVar(&keys, "keys", "", "Comma separated keys: left, right, up, down, tab, shift+tab, enter")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	_ = cmd.MarkFlagRequired("keys")
	return cmd
}

func newRunCmd(a *app) *cobra.Command {
	var (
		outputPath string
		pretty     bool
	)

	cmd := &cobra.Command{
		Use:   "run [scenario.yaml...]",
		Short: "Run scenario files and check every expected cursor position",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var traces []models.Trace
			var failed error
			for _, path := range args {
				s, err := scenario.Load(path)
				if err != nil {
					return err
				}
				trace, err := s.Run(a.options(""))
				traces = append(traces, trace)
				if err != nil {
					var mismatch *scenario.MismatchError
					if !errors.As(err, &mismatch) {
						return fmt.Errorf("%s: %w", path, err)
					}
					a.logger.Error("scenario failed", "path", path, "error", err)
					failed = err
					break
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "ok   %s\n", s.Name)
			}

			data, err := output.TracesToJSON(traces, pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			if outputPath != "" {
				if err := writeOutput(cmd, outputPath, data); err != nil {
					return err
				}
			}
			return failed
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write traces as JSON to this file")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

func newProtectionCmd(a *app) *cobra.Command {
	var (
		sheet      string
		outputPath string
		pretty     bool
	)

	cmd := &cobra.Command{
		Use:   "protection [input.xlsx]",
		Short: "Print the protection state of a sheet as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := gridnav.Open(args[0], a.options(sheet))
			if err != nil {
				return fmt.Errorf("load failed: %w", err)
			}

			report := wb.Protection.Report(wb.SheetName)
			data, err := output.ProtectionToJSON(&report, pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			return writeOutput(cmd, outputPath, data)
		},
	}

	cmd.Flags().StringVar(&sheet, "sheet", "", "Sheet name (default: active sheet)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

func newGridCmd(a *app) *cobra.Command {
	var (
		sheet string
		start string
	)

	cmd := &cobra.Command{
		Use:   "grid [input.xlsx]",
		Short: "Open an interactive grid on a sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			startAddr, err := models.ParseAddress(start)
			if err != nil {
				return err
			}
			wb, err := gridnav.Open(args[0], a.options(sheet))
			if err != nil {
				return fmt.Errorf("load failed: %w", err)
			}

			p := tea.NewProgram(tui.New(wb, startAddr, a.cfg.TUI.ColumnWidth), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("failed to start the terminal user interface: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sheet, "sheet", "", "Sheet name (default: active sheet)")
	cmd.Flags().StringVar(&start, "start", "A1", "Initial cursor cell")
	return cmd
}
