package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"mediarental/internal/backup"
	"mediarental/internal/database"

	"github.com/spf13/cobra"
)

var (
	inputFile         string
	restoreFormat     string
	restoreCollection string
	dropExisting      bool
	skipConfirmation  bool
)

var restoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Restore a media collection from a backup file",
	Long:  "Restore a collection from a BSON or JSON file written by the backup command",
	RunE:  runRestore,
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Drop the product, customer and rentals collections",
	Long: `Drop the product, customer and rentals collections. The import command
never clears collections on its own; run this before re-importing to avoid
duplicate documents.`,
	RunE: runReset,
}

func init() {
	restoreCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input backup file to restore (required)")
	restoreCmd.Flags().StringVarP(&restoreFormat, "format", "f", "", "Backup format: bson or json (auto-detected if not specified)")
	restoreCmd.Flags().StringVarP(&restoreCollection, "collection", "c", "", "Target collection name (defaults to original collection name from backup)")
	restoreCmd.Flags().BoolVar(&dropExisting, "drop", false, "Drop existing collection before restore")
	restoreCmd.Flags().BoolVar(&skipConfirmation, "yes", false, "Skip confirmation prompts")

	restoreCmd.MarkFlagRequired("input")

	resetCmd.Flags().BoolVar(&skipConfirmation, "yes", false, "Skip confirmation prompt")
}

func runRestore(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(inputFile); os.IsNotExist(err) {
		return fmt.Errorf("backup file does not exist: %s", inputFile)
	}

	format := restoreFormat
	if format == "" {
		var err error
		if format, err = backup.FormatFromFileName(inputFile); err != nil {
			return fmt.Errorf("%w. Please specify --format", err)
		}
	}
	if err := backup.ValidateFormat(format); err != nil {
		return err
	}

	targetCollection := restoreCollection
	if targetCollection == "" {
		name, ok := backup.CollectionFromFileName(inputFile)
		if !ok {
			return fmt.Errorf("cannot determine target collection name. Please specify --collection")
		}
		targetCollection = name
	}

	if err := backup.ValidateBackupFile(inputFile, format); err != nil {
		return fmt.Errorf("backup file validation failed: %w", err)
	}

	if !skipConfirmation {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "About to restore:")
		fmt.Fprintf(out, "  Source file: %s\n", inputFile)
		fmt.Fprintf(out, "  Target database: %s\n", cfg.Mongo.Database)
		fmt.Fprintf(out, "  Target collection: %s\n", targetCollection)
		fmt.Fprintf(out, "  Format: %s\n", format)
		if dropExisting {
			fmt.Fprintln(out, "  WARNING: Existing collection will be DROPPED!")
		}

		if !confirmAction(cmd.InOrStdin(), out, "Do you want to continue?") {
			fmt.Fprintln(out, "Restore cancelled")
			return nil
		}
	}

	ctx := cmd.Context()
	return database.WithConnection(ctx, cfg.Mongo, func(db *database.MongoDB) error {
		logger.Info("starting restore", "collection", targetCollection, "file", inputFile)

		count, err := backup.NewService(db).RestoreCollection(ctx, targetCollection, inputFile, format, dropExisting)
		if err != nil {
			return fmt.Errorf("restore failed: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Restored %d documents into %s\n", count, targetCollection)
		return nil
	})
}

func runReset(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if !skipConfirmation {
		fmt.Fprintf(out, "This drops %s from database %s.\n", strings.Join(backup.Collections, ", "), cfg.Mongo.Database)
		if !confirmAction(cmd.InOrStdin(), out, "Do you want to continue?") {
			fmt.Fprintln(out, "Reset cancelled")
			return nil
		}
	}

	ctx := cmd.Context()
	return database.WithConnection(ctx, cfg.Mongo, func(db *database.MongoDB) error {
		if err := backup.NewService(db).Reset(ctx); err != nil {
			return fmt.Errorf("reset failed: %w", err)
		}
		logger.Info("media collections dropped", "database", cfg.Mongo.Database)
		return nil
	})
}

func confirmAction(in io.Reader, out io.Writer, message string) bool {
	fmt.Fprintf(out, "%s (y/N): ", message)
	reader := bufio.NewReader(in)
	response, err := reader.ReadString('\n')
	if err != nil && response == "" {
		return false
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
