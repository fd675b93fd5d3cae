package cmd

import (
	"fmt"

	"mediarental/internal/backup"
	"mediarental/internal/database"

	"github.com/spf13/cobra"
)

var (
	outputDir        string
	backupFormat     string
	backupCollection string
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Backup the media collections",
	Long:  "Backup the product, customer and rentals collections to BSON or JSON files",
	RunE:  runBackup,
}

func init() {
	backupCmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory for backup files (default from BACKUP_DIR or ./backups)")
	backupCmd.Flags().StringVarP(&backupFormat, "format", "f", "", "Backup format: bson or json (default from BACKUP_FORMAT or json)")
	backupCmd.Flags().StringVarP(&backupCollection, "collection", "c", "", "Specific collection to backup (if empty, backs up product, customer and rentals)")
}

func runBackup(cmd *cobra.Command, args []string) error {
	if outputDir == "" {
		outputDir = cfg.Backup.Dir
	}
	if backupFormat == "" {
		backupFormat = cfg.Backup.Format
	}
	if err := backup.ValidateFormat(backupFormat); err != nil {
		return err
	}

	ctx := cmd.Context()
	return database.WithConnection(ctx, cfg.Mongo, func(db *database.MongoDB) error {
		backupService := backup.NewService(db)

		if backupCollection != "" {
			logger.Info("starting backup", "collection", backupCollection, "format", backupFormat)
			result, err := backupService.BackupCollection(ctx, backupCollection, outputDir, backupFormat)
			if err != nil {
				return fmt.Errorf("backup failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d documents -> %s\n", result.Collection, result.Documents, result.File)
			return nil
		}

		logger.Info("starting backup of media collections", "database", cfg.Mongo.Database, "format", backupFormat)
		results, err := backupService.BackupDatabase(ctx, outputDir, backupFormat)
		if err != nil {
			return fmt.Errorf("backup failed: %w", err)
		}
		for _, result := range results {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d documents -> %s\n", result.Collection, result.Documents, result.File)
		}
		return nil
	})
}
