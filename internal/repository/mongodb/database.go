package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Database wraps a mongo database handle for diagnostics.
type Database struct {
	db *mongo.Database
}

// NewDatabase wraps the given database handle.
func NewDatabase(db *mongo.Database) *Database {
	return &Database{db: db}
}

// Name returns the database name.
func (d *Database) Name() string {
	return d.db.Name()
}

// CollectionNames lists the collection names in the database.
func (d *Database) CollectionNames(ctx context.Context) ([]string, error) {
	names, err := d.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list collection names: %w", err)
	}
	return names, nil
}
