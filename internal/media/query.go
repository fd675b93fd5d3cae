package media

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"mediarental/internal/models"
)

// ShowAvailableProducts returns every product with a quantity above zero,
// keyed by product_id. When several documents share a product_id the last
// one returned by the store wins.
func (s *Service) ShowAvailableProducts(ctx context.Context) (map[string]models.ProductInfo, error) {
	available := make(map[string]models.ProductInfo)

	err := s.connector.WithStore(ctx, func(store Store) error {
		var products []models.Product
		filter := bson.M{"quantity_available": bson.M{"$gt": 0}}
		if err := store.FindRecords(ctx, models.ProductCollection, filter, &products); err != nil {
			return err
		}
		for _, p := range products {
			available[p.ProductID] = p.Info()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return available, nil
}

// ShowRentals returns the customers who rented productID, keyed by user_id.
// Duplicate customer documents collapse to the last one seen.
func (s *Service) ShowRentals(ctx context.Context, productID string) (map[string]models.CustomerInfo, error) {
	renters := make(map[string]models.CustomerInfo)

	err := s.connector.WithStore(ctx, func(store Store) error {
		var rentals []models.Rental
		if err := store.FindRecords(ctx, models.RentalCollection, bson.M{"product_id": productID}, &rentals); err != nil {
			return err
		}

		for _, r := range rentals {
			var customers []models.Customer
			if err := store.FindRecords(ctx, models.CustomerCollection, bson.M{"user_id": r.UserID}, &customers); err != nil {
				return err
			}
			for _, c := range customers {
				renters[c.UserID] = c.Info()
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return renters, nil
}
