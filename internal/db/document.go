package db

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IDField is the key under which documents carry their identifier.
const IDField = "_id"

// newDocument encodes record and stamps it with creation times.
func newDocument(record any, now time.Time) (bson.D, error) {
	raw, err := bson.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("encoding record: %w", err)
	}
	var doc bson.D
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decoding record: %w", err)
	}
	ts := primitive.NewDateTimeFromTime(now)
	return append(doc,
		bson.E{Key: "created_at", Value: ts},
		bson.E{Key: "updated_at", Value: ts},
	), nil
}

// IDString renders a document identifier the way clients see it.
func IDString(id any) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
