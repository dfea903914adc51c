// Package redis backs session storage and notification publishing with Redis.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultDialTimeout = 5 * time.Second
	clientName         = "mediguard"
)

// Options selects the Redis server. Zero DialTimeout means five seconds.
type Options struct {
	Addr        string
	Password    string
	DB          int
	DialTimeout time.Duration
}

// Conn is an open, verified Redis connection. It doubles as the readiness
// check for the backend.
type Conn struct {
	client *redis.Client
}

// Open dials Redis and fails unless the server answers PING within the dial
// timeout.
func Open(ctx context.Context, opts Options) (*Conn, error) {
	dial := opts.DialTimeout
	if dial <= 0 {
		dial = defaultDialTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr:        opts.Addr,
		Password:    opts.Password,
		DB:          opts.DB,
		ClientName:  clientName,
		DialTimeout: dial,
	})

	pingCtx, cancel := context.WithTimeout(ctx, dial)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis %s: %w", opts.Addr, err)
	}
	return &Conn{client: client}, nil
}

// Client exposes the underlying client to the storage and publisher.
func (c *Conn) Client() *redis.Client { return c.client }

func (c *Conn) Name() string { return "redis" }

func (c *Conn) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *Conn) Close() error {
	return c.client.Close()
}
