package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connect creates a mongo client for the given connection string. The
// driver connects lazily, so this succeeds even when the store is down;
// callers that want to know should Ping. The short server-selection
// timeout keeps degraded-mode endpoints (diagnostics, seeding) from
// hanging on an unreachable store.
func Connect(ctx context.Context, databaseURL string) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(databaseURL).
		SetServerSelectionTimeout(5 * time.Second).
		SetConnectTimeout(5 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	return client, nil
}

// Ping verifies the store is reachable.
func Ping(ctx context.Context, client *mongo.Client) error {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}
