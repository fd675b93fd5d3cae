// Package media loads the product, customer and rental CSV files into the
// media database and answers the availability and renter queries.
//
// Every public operation opens its own connection through a Connector and
// releases it before returning. Nothing is cached between calls.
package media

import (
	"context"

	"mediarental/internal/config"
	"mediarental/internal/database"
	"mediarental/internal/logging"
)

// Store is the part of the document store the service needs.
type Store interface {
	InsertRecord(ctx context.Context, collection string, record any) error
	FindRecords(ctx context.Context, collection string, filter any, results any) error
}

// Connector provides a Store for the duration of fn.
type Connector interface {
	WithStore(ctx context.Context, fn func(Store) error) error
}

// MongoConnector connects to MongoDB for each scope.
type MongoConnector struct {
	Config config.MongoConfig
}

func (c MongoConnector) WithStore(ctx context.Context, fn func(Store) error) error {
	return database.WithConnection(ctx, c.Config, func(db *database.MongoDB) error {
		return fn(db)
	})
}

type Service struct {
	connector Connector
	events    logging.EventSink
}

// NewService returns a service using connector for every operation. Imported
// rows are reported to events; a nil sink discards them.
func NewService(connector Connector, events logging.EventSink) *Service {
	if events == nil {
		events = logging.Discard
	}
	return &Service{
		connector: connector,
		events:    events,
	}
}
