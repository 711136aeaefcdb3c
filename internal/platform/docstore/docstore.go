// Package docstore owns the MongoDB connection handle. It is opened once at
// process start and shared by every store; there is no per-request pooling or
// retry logic at this layer.
package docstore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const connectTimeout = 10 * time.Second

// Conn is the long-lived document store handle.
type Conn struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect opens the store connection and verifies it with a ping.
func Connect(ctx context.Context, uri, dbName string) (*Conn, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return &Conn{client: client, db: client.Database(dbName)}, nil
}

// Database returns the handle stores operate on.
func (c *Conn) Database() *mongo.Database { return c.db }

// Name returns the database name.
func (c *Conn) Name() string { return c.db.Name() }

// Ping verifies the store is still reachable.
func (c *Conn) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, readpref.Primary())
}

// CollectionNames lists up to limit collection names in the database.
func (c *Conn) CollectionNames(ctx context.Context, limit int) ([]string, error) {
	names, err := c.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	if len(names) > limit {
		names = names[:limit]
	}
	return names, nil
}

// Disconnect releases the connection; used on shutdown only.
func (c *Conn) Disconnect(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}
