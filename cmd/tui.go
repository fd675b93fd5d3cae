package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"mediarental/internal/logging"
	"mediarental/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive TUI (same as running without a command)",
	Long: `Start the terminal user interface for importing the CSV files and
browsing available products and product renters.`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	// the TUI owns the terminal; keep log records in the file sink only
	if logCloser != nil {
		logCloser.Close()
	}
	var err error
	logger, logCloser, err = logging.Setup(cfg.Logging, io.Discard)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	slog.SetDefault(logger)

	p := tea.NewProgram(
		tui.NewModel(newService()),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
