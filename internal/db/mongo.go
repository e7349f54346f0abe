package db

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/ukydev/prestige-car-hire/internal/filter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotConnected is returned by store operations when no database client
// was configured.
var ErrNotConnected = errors.New("database not connected")

// ConnectMongo creates a MongoDB client for uri. The driver connects lazily,
// so an unreachable server is only noticed by Ping or the first operation.
func ConnectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo.Connect error: %w", err)
	}
	return client, nil
}

// MongoStore implements Store on a MongoDB database. A MongoStore without
// a client answers every write and query with ErrNotConnected.
type MongoStore struct {
	client   *mongo.Client
	database *mongo.Database
}

// NewMongoStore returns a store over the named database of client. client
// may be nil.
func NewMongoStore(client *mongo.Client, database string) *MongoStore {
	s := &MongoStore{client: client}
	if client != nil {
		s.database = client.Database(database)
	}
	return s
}

// Ping verifies the server is reachable.
func (s *MongoStore) Ping(ctx context.Context) error {
	if s.client == nil {
		return ErrNotConnected
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := s.client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("mongo.Ping error: %w", err)
	}
	return nil
}

// Disconnect closes the underlying client, if any.
func (s *MongoStore) Disconnect(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}

// Insert inserts record into collection.
func (s *MongoStore) Insert(ctx context.Context, collection string, record any) (string, error) {
	if s.database == nil {
		return "", ErrNotConnected
	}
	doc, err := newDocument(record, time.Now().UTC())
	if err != nil {
		return "", err
	}
	res, err := s.database.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}
	return IDString(res.InsertedID), nil
}

// Query finds documents in collection matching f.
func (s *MongoStore) Query(ctx context.Context, collection string, f filter.Filter, limit int64) ([]bson.M, error) {
	if s.database == nil {
		return nil, ErrNotConnected
	}
	query, err := toBSON(f)
	if err != nil {
		return nil, err
	}
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := s.database.Collection(collection).Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	docs := []bson.M{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("reading %s: %w", collection, err)
	}
	return docs, nil
}

// HealthCheck lists the database's collections to prove it is reachable.
func (s *MongoStore) HealthCheck(ctx context.Context) Health {
	var h Health
	if s.database == nil {
		return h
	}
	h.Connected = true
	h.DatabaseName = s.database.Name()

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	names, err := s.database.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		h.Error = err.Error()
		return h
	}
	h.Reachable = true
	h.Collections = names
	return h
}

// toBSON translates f into a MongoDB query document. Text values are
// regex-escaped so they match literally.
func toBSON(f filter.Filter) (bson.D, error) {
	conds := make(bson.A, 0, len(f))
	for _, p := range f {
		switch p := p.(type) {
		case filter.Contains:
			or := make(bson.A, 0, len(p.Fields))
			for _, field := range p.Fields {
				or = append(or, bson.D{{Key: field, Value: primitive.Regex{Pattern: regexp.QuoteMeta(p.Value), Options: "i"}}})
			}
			conds = append(conds, bson.D{{Key: "$or", Value: or}})
		case filter.EqualFold:
			pattern := "^" + regexp.QuoteMeta(p.Value) + "$"
			conds = append(conds, bson.D{{Key: p.Field, Value: primitive.Regex{Pattern: pattern, Options: "i"}}})
		case filter.Equals:
			conds = append(conds, bson.D{{Key: p.Field, Value: p.Value}})
		default:
			return nil, fmt.Errorf("unsupported predicate %T", p)
		}
	}
	switch len(conds) {
	case 0:
		return bson.D{}, nil
	case 1:
		return conds[0].(bson.D), nil
	default:
		return bson.D{{Key: "$and", Value: conds}}, nil
	}
}
