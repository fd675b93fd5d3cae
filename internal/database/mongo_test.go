package database

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"mediarental/internal/config"
	"mediarental/internal/database/mongotest"
	"mediarental/internal/models"
)

func TestWithConnectionUnreachable(t *testing.T) {
	cfg := config.MongoConfig{
		Host:           "127.0.0.1",
		Port:           1,
		Database:       "media",
		ConnectTimeout: 500 * time.Millisecond,
	}

	called := false
	err := WithConnection(context.Background(), cfg, func(*MongoDB) error {
		called = true
		return nil
	})

	require.Error(t, err)
	assert.False(t, called)
	assert.Contains(t, err.Error(), "MongoDB")
}

func TestWithConnectionClosesOnError(t *testing.T) {
	cfg := mongotest.Config(t)
	ctx := context.Background()
	sentinel := errors.New("boom")

	var held *MongoDB
	err := WithConnection(ctx, cfg, func(db *MongoDB) error {
		held = db
		return sentinel
	})

	assert.ErrorIs(t, err, sentinel)
	require.NotNil(t, held)
	assert.Error(t, held.Client.Ping(ctx, nil))
}

func TestWithConnectionClosesOnPanic(t *testing.T) {
	cfg := mongotest.Config(t)
	ctx := context.Background()

	var held *MongoDB
	assert.Panics(t, func() {
		_ = WithConnection(ctx, cfg, func(db *MongoDB) error {
			held = db
			panic("fn failed")
		})
	})

	require.NotNil(t, held)
	assert.Error(t, held.Client.Ping(ctx, nil))
}

func TestInsertFindCountDrop(t *testing.T) {
	cfg := mongotest.Config(t)
	ctx := context.Background()

	err := WithConnection(ctx, cfg, func(db *MongoDB) error {
		for _, p := range []models.Product{
			{ProductID: "prd001", Description: "TV stand", ProductType: "livingroom", QuantityAvailable: 3},
			{ProductID: "prd002", Description: "Sofa", ProductType: "livingroom", QuantityAvailable: 0},
			{ProductID: "prd003", Description: "Lamp", ProductType: "bedroom", QuantityAvailable: 10},
		} {
			require.NoError(t, db.InsertRecord(ctx, models.ProductCollection, p))
		}

		var available []models.Product
		require.NoError(t, db.FindRecords(ctx, models.ProductCollection,
			bson.M{"quantity_available": bson.M{"$gt": 0}}, &available))
		require.Len(t, available, 2)
		assert.Equal(t, "prd001", available[0].ProductID)
		assert.Equal(t, int64(10), available[1].QuantityAvailable)

		n, err := db.CountRecords(ctx, models.ProductCollection, bson.D{})
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)

		names, err := db.ListCollections(ctx)
		require.NoError(t, err)
		assert.Contains(t, names, models.ProductCollection)

		require.NoError(t, db.DropCollection(ctx, models.ProductCollection))
		n, err = db.CountRecords(ctx, models.ProductCollection, bson.D{})
		require.NoError(t, err)
		assert.Zero(t, n)
		return nil
	})
	require.NoError(t, err)
}

func TestBackupRestoreRoundTrip(t *testing.T) {
	cfg := mongotest.Config(t)
	ctx := context.Background()

	for _, format := range []string{"json", "bson"} {
		t.Run(format, func(t *testing.T) {
			err := WithConnection(ctx, cfg, func(db *MongoDB) error {
				source := "customer_" + format
				target := "customer_restored_" + format

				customers := []models.Customer{
					{UserID: "user001", Name: "Elisa Miles", Address: "4490 Union Street", PhoneNumber: "206-922-0882", Email: "elisa.miles@yahoo.com"},
					{UserID: "user002", Name: "Maya Data", Address: "4936 Elliot Avenue", PhoneNumber: "206-777-1927", Email: "mdata@uw.edu"},
				}
				for _, c := range customers {
					require.NoError(t, db.InsertRecord(ctx, source, c))
				}

				var buf bytes.Buffer
				written, err := db.BackupCollection(ctx, source, &buf, format)
				require.NoError(t, err)
				assert.Equal(t, 2, written)

				restored, err := db.RestoreCollection(ctx, target, &buf, format, true)
				require.NoError(t, err)
				assert.Equal(t, 2, restored)

				var got []models.Customer
				require.NoError(t, db.FindRecords(ctx, target, bson.D{}, &got))
				assert.ElementsMatch(t, customers, got)
				return nil
			})
			require.NoError(t, err)
		})
	}
}
