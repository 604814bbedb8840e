package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Client caches highest-bid snapshots for the read path. Queries tolerate a
// momentarily stale snapshot, so entries carry a short TTL and are invalidated
// whenever a bid is admitted. All methods are no-ops on a nil Client.
type Client struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewClient connects to Redis and verifies the connection
func NewClient(addr, password string, db int, ttl time.Duration) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Client{rdb: rdb, ttl: ttl}, nil
}

// Close closes the Redis connection
func (c *Client) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}

func highestBidKey(auctionID string) string {
	return fmt.Sprintf("auction:%s:highest", auctionID)
}

// GetHighestBid loads a cached snapshot into out. Returns false on a miss.
func (c *Client) GetHighestBid(ctx context.Context, auctionID string, out any) (bool, error) {
	if c == nil {
		return false, nil
	}

	raw, err := c.rdb.Get(ctx, highestBidKey(auctionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache get for auction %s: %w", auctionID, err)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("cache decode for auction %s: %w", auctionID, err)
	}
	return true, nil
}

// SetHighestBid stores a snapshot under the auction's key with the client TTL.
func (c *Client) SetHighestBid(ctx context.Context, auctionID string, snapshot any) error {
	if c == nil {
		return nil
	}

	raw, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("cache encode for auction %s: %w", auctionID, err)
	}
	if err := c.rdb.Set(ctx, highestBidKey(auctionID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set for auction %s: %w", auctionID, err)
	}
	return nil
}

// InvalidateAuction drops the auction's cached snapshot after a state change.
func (c *Client) InvalidateAuction(ctx context.Context, auctionID string) error {
	if c == nil {
		return nil
	}
	if err := c.rdb.Del(ctx, highestBidKey(auctionID)).Err(); err != nil {
		return fmt.Errorf("cache invalidate for auction %s: %w", auctionID, err)
	}
	return nil
}
