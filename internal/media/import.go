package media

import (
	"context"
	"errors"
	"fmt"
	"io"

	"mediarental/internal/csv"
	"mediarental/internal/models"
)

// Counts holds one number per source, in import order.
type Counts struct {
	Products  int
	Customers int
	Rentals   int
}

type ImportResult struct {
	Added  Counts
	Errors Counts
}

// ImportData reads productFile, customerFile and rentalsFile from directory
// and inserts one document per row into the product, customer and rentals
// collections, in that order.
//
// A missing file is counted in Errors and the remaining sources are still
// imported. Any other failure stops the import and is returned together with
// the counts reached so far; documents inserted before the failure remain.
// Collections are never cleared, so importing the same files twice stores
// every row twice.
func (s *Service) ImportData(ctx context.Context, directory, productFile, customerFile, rentalsFile string) (ImportResult, error) {
	var result ImportResult

	err := s.connector.WithStore(ctx, func(store Store) error {
		var err error

		result.Added.Products, result.Errors.Products, err = importSource(ctx, s, store,
			directory, productFile, models.ProductCollection,
			func(p models.Product) string { return p.ProductID + " added to database" })
		if err != nil {
			return err
		}

		result.Added.Customers, result.Errors.Customers, err = importSource(ctx, s, store,
			directory, customerFile, models.CustomerCollection,
			func(c models.Customer) string { return c.UserID + " added to database" })
		if err != nil {
			return err
		}

		result.Added.Rentals, result.Errors.Rentals, err = importSource(ctx, s, store,
			directory, rentalsFile, models.RentalCollection,
			func(r models.Rental) string { return r.ProductID + " rental added to database" })
		return err
	})

	return result, err
}

func importSource[T any](ctx context.Context, s *Service, store Store, directory, name, collection string, describe func(T) string) (added, failed int, err error) {
	src, err := csv.Open(directory, name)
	if err != nil {
		if errors.Is(err, csv.ErrFileNotFound) {
			return 0, 1, nil
		}
		return 0, 0, err
	}
	defer src.Close()

	for {
		var row T
		if err := src.Next(&row); err != nil {
			if errors.Is(err, io.EOF) {
				return added, 0, nil
			}
			return added, 0, err
		}

		added++
		s.events.RecordEvent(ctx, describe(row), "collection", collection)

		if err := store.InsertRecord(ctx, collection, row); err != nil {
			return added, 0, fmt.Errorf("import %s: %w", src.Path(), err)
		}
	}
}
