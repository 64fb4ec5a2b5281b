package mongo

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

// LazyConn is a process-wide database handle established on first use.
//
// The first caller dials the store while holding the mutex; concurrent
// callers block on the same attempt and observe its outcome. A failed
// attempt leaves the handle unset, so the next call retries instead of
// returning a poisoned result. Once established, the handle is shared
// read-only for the lifetime of the process.
type LazyConn struct {
	cfg Config

	mu     sync.Mutex
	client *mongo.Client
	db     *mongo.Database
}

// NewLazyConn returns an unconnected LazyConn. No I/O happens until DB is
// called.
func NewLazyConn(cfg Config) *LazyConn {
	return &LazyConn{cfg: cfg}
}

// DB returns the shared database handle, dialing the store on first use.
func (c *LazyConn) DB(ctx context.Context) (*mongo.Database, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db != nil {
		return c.db, nil
	}

	client, err := New(ctx, c.cfg)
	if err != nil {
		return nil, err
	}

	c.client = client
	c.db = client.Database(c.cfg.Database)
	return c.db, nil
}

// Healthcheck returns a readiness probe backed by the shared connection.
// It establishes the connection if it has not been dialed yet.
func (c *LazyConn) Healthcheck() func(context.Context) error {
	return func(ctx context.Context) error {
		if _, err := c.DB(ctx); err != nil {
			return err
		}

		c.mu.Lock()
		client := c.client
		c.mu.Unlock()

		return Healthcheck(client)(ctx)
	}
}

// Close disconnects the underlying client if a connection was established.
func (c *LazyConn) Close(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client == nil {
		return nil
	}

	err := c.client.Disconnect(ctx)
	c.client = nil
	c.db = nil
	return err
}
