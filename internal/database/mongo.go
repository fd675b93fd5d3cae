package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"mediarental/internal/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDB(ctx context.Context, cfg config.MongoConfig) (*MongoDB, error) {
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	uri := cfg.URI()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	slog.Debug("connected to MongoDB", "uri", uri, "database", cfg.Database)

	return &MongoDB{
		Client:   client,
		Database: client.Database(cfg.Database),
	}, nil
}

func (m *MongoDB) Close(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return m.Client.Disconnect(ctx)
}

// WithConnection opens a connection, runs fn and always closes the connection
// afterwards, even when fn returns an error or panics. An error from fn takes
// precedence over an error from closing.
func WithConnection(ctx context.Context, cfg config.MongoConfig, fn func(*MongoDB) error) (err error) {
	db, err := NewMongoDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		closeErr := db.Close(context.WithoutCancel(ctx))
		if err == nil && closeErr != nil {
			err = fmt.Errorf("failed to close MongoDB connection: %w", closeErr)
		}
	}()

	return fn(db)
}

func (m *MongoDB) InsertRecord(ctx context.Context, collectionName string, record any) error {
	_, err := m.Database.Collection(collectionName).InsertOne(ctx, record)
	if err != nil {
		return fmt.Errorf("failed to insert record into %s: %w", collectionName, err)
	}
	return nil
}

// FindRecords decodes every document of collectionName matching filter into
// results, which must be a pointer to a slice. Documents are returned in the
// store's natural order.
func (m *MongoDB) FindRecords(ctx context.Context, collectionName string, filter any, results any) error {
	cursor, err := m.Database.Collection(collectionName).Find(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to find documents in %s: %w", collectionName, err)
	}
	if err := cursor.All(ctx, results); err != nil {
		return fmt.Errorf("failed to decode documents from %s: %w", collectionName, err)
	}
	return nil
}

func (m *MongoDB) CountRecords(ctx context.Context, collectionName string, filter any) (int64, error) {
	n, err := m.Database.Collection(collectionName).CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count documents in %s: %w", collectionName, err)
	}
	return n, nil
}

// DropCollection removes a collection and all of its documents.
func (m *MongoDB) DropCollection(ctx context.Context, collectionName string) error {
	if err := m.Database.Collection(collectionName).Drop(ctx); err != nil {
		return fmt.Errorf("failed to drop collection %s: %w", collectionName, err)
	}
	return nil
}

func (m *MongoDB) ListCollections(ctx context.Context) ([]string, error) {
	names, err := m.Database.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return names, nil
}

// BackupCollection writes every document of collectionName to writer, either
// as JSON lines or as concatenated BSON documents. It returns the number of
// documents written.
func (m *MongoDB) BackupCollection(ctx context.Context, collectionName string, writer io.Writer, format string) (int, error) {
	cursor, err := m.Database.Collection(collectionName).Find(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("failed to find documents: %w", err)
	}
	defer cursor.Close(ctx)

	count := 0
	for cursor.Next(ctx) {
		var data []byte
		if format == "json" {
			data, err = bson.MarshalExtJSON(cursor.Current, true, false)
			if err != nil {
				return count, fmt.Errorf("failed to marshal to JSON: %w", err)
			}
			data = append(data, '\n')
		} else {
			data = []byte(cursor.Current)
		}

		if _, err := writer.Write(data); err != nil {
			return count, fmt.Errorf("failed to write backup data: %w", err)
		}
		count++

		if count%1000 == 0 {
			slog.Info("backup progress", "collection", collectionName, "documents", count)
		}
	}

	if err := cursor.Err(); err != nil {
		return count, fmt.Errorf("cursor error: %w", err)
	}

	slog.Info("backup completed", "collection", collectionName, "documents", count)
	return count, nil
}

// RestoreCollection loads documents produced by BackupCollection into
// collectionName. It returns the number of documents inserted.
func (m *MongoDB) RestoreCollection(ctx context.Context, collectionName string, reader io.Reader, format string, dropExisting bool) (int, error) {
	collection := m.Database.Collection(collectionName)

	if dropExisting {
		if err := collection.Drop(ctx); err != nil {
			slog.Warn("failed to drop collection", "collection", collectionName, "error", err)
		}
	}

	var documents []any
	const batchSize = 1000
	total := 0

	flush := func() error {
		if len(documents) == 0 {
			return nil
		}
		if err := m.insertBatch(ctx, collection, documents); err != nil {
			return err
		}
		total += len(documents)
		documents = documents[:0]
		return nil
	}

	if format == "json" {
		decoder := json.NewDecoder(reader)
		for {
			var raw json.RawMessage
			if err := decoder.Decode(&raw); errors.Is(err, io.EOF) {
				break
			} else if err != nil {
				return total, fmt.Errorf("failed to decode JSON: %w", err)
			}

			var doc bson.M
			if err := bson.UnmarshalExtJSON(raw, true, &doc); err != nil {
				return total, fmt.Errorf("failed to decode extended JSON: %w", err)
			}
			documents = append(documents, doc)

			if len(documents) >= batchSize {
				if err := flush(); err != nil {
					return total, err
				}
			}
		}
	} else {
		for {
			raw, err := bson.NewFromIOReader(reader)
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return total, fmt.Errorf("failed to read BSON data: %w", err)
			}

			var doc bson.M
			if err := bson.Unmarshal(raw, &doc); err != nil {
				return total, fmt.Errorf("failed to unmarshal BSON: %w", err)
			}
			documents = append(documents, doc)

			if len(documents) >= batchSize {
				if err := flush(); err != nil {
					return total, err
				}
			}
		}
	}

	if err := flush(); err != nil {
		return total, err
	}

	slog.Info("restore completed", "collection", collectionName, "documents", total)
	return total, nil
}

func (m *MongoDB) insertBatch(ctx context.Context, collection *mongo.Collection, documents []any) error {
	_, err := collection.InsertMany(ctx, documents)
	if err != nil {
		return fmt.Errorf("failed to insert batch: %w", err)
	}

	slog.Debug("inserted batch", "collection", collection.Name(), "documents", len(documents))
	return nil
}
