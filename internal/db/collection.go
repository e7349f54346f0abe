package db

import (
	"context"

	"github.com/ukydev/prestige-car-hire/internal/filter"
	"go.mongodb.org/mongo-driver/bson"
)

// Store defines the record operations the API needs from a document
// database.
type Store interface {
	// Insert stores record in collection and returns its new identifier.
	Insert(ctx context.Context, collection string, record any) (string, error)
	// Query returns the documents of collection matching f, each still
	// carrying its _id. A limit of zero returns every match.
	Query(ctx context.Context, collection string, f filter.Filter, limit int64) ([]bson.M, error)
	// HealthCheck reports connection state. It never fails; problems are
	// reported in the returned Health.
	HealthCheck(ctx context.Context) Health
}

// Health describes the state of a store connection.
type Health struct {
	Connected    bool
	Reachable    bool
	DatabaseName string
	Collections  []string
	Error        string
}
