package cmd

import (
	"fmt"
	"io"
	"log"
	"log/slog"

	"mediarental/internal/config"
	"mediarental/internal/logging"

	"github.com/spf13/cobra"
)

var (
	cfg       config.Config
	logger    *slog.Logger
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "media",
	Short: "Import product, customer and rental CSV files into MongoDB and query them",
	Long: `media loads products, customers and rentals from CSV files into the
MongoDB "media" database and lists available products or the customers
renting a product. Run without a command to start the interactive TUI.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runTUI,
}

func Execute() {
	if err := execute(rootCmd); err != nil {
		log.Fatal(err)
	}
}

// execute runs cmd and closes the log file whether or not the command failed.
func execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if closeErr := teardown(); err == nil {
		err = closeErr
	}
	return err
}

func init() {
	addConnectionFlags(rootCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(productsCmd)
	rootCmd.AddCommand(rentalsCmd)
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(resetCmd)
}

func addConnectionFlags(cmd *cobra.Command) {
	def := config.Default()
	flags := cmd.PersistentFlags()
	flags.StringP("host", "H", def.Mongo.Host, "MongoDB host")
	flags.IntP("port", "p", def.Mongo.Port, "MongoDB port")
	flags.StringP("database", "d", def.Mongo.Database, "Database name")
	flags.String("log-level", def.Logging.Level, "Log level: debug, info, warn or error")
	flags.String("log-file", def.Logging.File, "Append-only log file (empty to disable)")
}

// resolveConfig layers explicitly set flags over the environment.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	c := config.Load()
	flags := cmd.Flags()

	var err error
	if flags.Changed("host") {
		if c.Mongo.Host, err = flags.GetString("host"); err != nil {
			return c, err
		}
	}
	if flags.Changed("port") {
		if c.Mongo.Port, err = flags.GetInt("port"); err != nil {
			return c, err
		}
	}
	if flags.Changed("database") {
		if c.Mongo.Database, err = flags.GetString("database"); err != nil {
			return c, err
		}
	}
	if flags.Changed("log-level") {
		if c.Logging.Level, err = flags.GetString("log-level"); err != nil {
			return c, err
		}
	}
	if flags.Changed("log-file") {
		if c.Logging.File, err = flags.GetString("log-file"); err != nil {
			return c, err
		}
	}
	return c, nil
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = resolveConfig(cmd)
	if err != nil {
		return err
	}

	logger, logCloser, err = logging.Setup(cfg.Logging, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	slog.SetDefault(logger)
	return nil
}

func teardown() error {
	if logCloser == nil {
		return nil
	}
	err := logCloser.Close()
	logCloser = nil
	return err
}
