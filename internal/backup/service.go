// Package backup writes media collections to timestamped files and loads
// them back.
package backup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"mediarental/internal/database"
	"mediarental/internal/models"
)

// Collections are the collections written by BackupDatabase, in order.
var Collections = []string{
	models.ProductCollection,
	models.CustomerCollection,
	models.RentalCollection,
}

type Result struct {
	Collection string
	File       string
	Documents  int
}

type Service struct {
	db  *database.MongoDB
	now func() time.Time
}

func NewService(db *database.MongoDB) *Service {
	return &Service{db: db, now: time.Now}
}

// FileName returns backup_<collection>_<timestamp>.<format>.
func FileName(collectionName, format string, at time.Time) string {
	return fmt.Sprintf("backup_%s_%s.%s", collectionName, at.Format("20060102_150405"), extension(format))
}

// CollectionFromFileName recovers the collection name from a FileName result.
func CollectionFromFileName(path string) (string, bool) {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if !strings.HasPrefix(base, "backup_") {
		return "", false
	}
	// timestamp is the last two underscore separated parts
	parts := strings.Split(strings.TrimPrefix(base, "backup_"), "_")
	if len(parts) < 3 {
		return "", false
	}
	return strings.Join(parts[:len(parts)-2], "_"), true
}

// FormatFromFileName maps .json and .bson to their format names.
func FormatFromFileName(path string) (string, error) {
	switch ext := filepath.Ext(path); ext {
	case ".bson":
		return "bson", nil
	case ".json":
		return "json", nil
	default:
		return "", fmt.Errorf("cannot auto-detect format from extension '%s'", ext)
	}
}

func ValidateFormat(format string) error {
	if format != "bson" && format != "json" {
		return fmt.Errorf("invalid format: %s. Use 'bson' or 'json'", format)
	}
	return nil
}

func extension(format string) string {
	if format == "json" {
		return "json"
	}
	return "bson"
}

func (s *Service) BackupCollection(ctx context.Context, collectionName, outputDir, format string) (Result, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(outputDir, FileName(collectionName, format, s.now()))

	file, err := os.Create(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to create backup file: %w", err)
	}
	defer file.Close()

	count, err := s.db.BackupCollection(ctx, collectionName, file, format)
	if err != nil {
		os.Remove(path)
		return Result{}, fmt.Errorf("backup failed: %w", err)
	}

	return Result{Collection: collectionName, File: path, Documents: count}, nil
}

// BackupDatabase backs up the product, customer and rentals collections that
// exist in the database.
func (s *Service) BackupDatabase(ctx context.Context, outputDir, format string) ([]Result, error) {
	existing, err := s.db.ListCollections(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}

	var results []Result
	for _, collection := range Collections {
		if !slices.Contains(existing, collection) {
			continue
		}

		result, err := s.BackupCollection(ctx, collection, outputDir, format)
		if err != nil {
			return results, fmt.Errorf("failed to backup collection %s: %w", collection, err)
		}
		results = append(results, result)
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("no media collections found in database")
	}

	return results, nil
}

func (s *Service) RestoreCollection(ctx context.Context, collectionName, inputFile, format string, dropExisting bool) (int, error) {
	file, err := os.Open(inputFile)
	if err != nil {
		return 0, fmt.Errorf("failed to open backup file: %w", err)
	}
	defer file.Close()

	count, err := s.db.RestoreCollection(ctx, collectionName, file, format, dropExisting)
	if err != nil {
		return count, fmt.Errorf("restore failed: %w", err)
	}

	return count, nil
}

// Reset drops the product, customer and rentals collections.
func (s *Service) Reset(ctx context.Context) error {
	for _, collection := range Collections {
		if err := s.db.DropCollection(ctx, collection); err != nil {
			return err
		}
	}
	return nil
}

func ValidateBackupFile(filename, expectedFormat string) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("cannot open backup file: %w", err)
	}
	defer file.Close()

	fileInfo, err := file.Stat()
	if err != nil {
		return fmt.Errorf("cannot get file info: %w", err)
	}

	if fileInfo.Size() == 0 {
		return fmt.Errorf("backup file is empty")
	}

	ext := filepath.Ext(filename)
	if expectedFormat == "json" && ext != ".json" {
		return fmt.Errorf("expected JSON file but got %s", ext)
	}
	if expectedFormat == "bson" && ext != ".bson" {
		return fmt.Errorf("expected BSON file but got %s", ext)
	}

	return nil
}
