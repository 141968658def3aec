package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// ErrCacheMiss is returned when a key is absent so callers can fall back
// to the database without treating it as a failure.
var ErrCacheMiss = errors.New("cache miss")

type Client struct {
	rdb *redis.Client
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

func (c *Client) setJSON(key string, value interface{}, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}

	return c.rdb.Set(ctx, key, jsonData, ttl).Err()
}

func (c *Client) getJSON(key string, dest interface{}) error {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return ErrCacheMiss
		}
		return fmt.Errorf("failed to get cache value: %w", err)
	}

	return json.Unmarshal([]byte(val), dest)
}

func (c *Client) delete(keys ...string) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, keys...).Err()
}

// Order status snapshot caching, for tracking-page polling.

func (c *Client) SetOrderStatus(orderID uint, snapshot interface{}, ttl time.Duration) error {
	return c.setJSON(fmt.Sprintf("order_status:%d", orderID), snapshot, ttl)
}

func (c *Client) GetOrderStatus(orderID uint, dest interface{}) error {
	return c.getJSON(fmt.Sprintf("order_status:%d", orderID), dest)
}

func (c *Client) DeleteOrderStatus(orderID uint) error {
	return c.delete(fmt.Sprintf("order_status:%d", orderID))
}

// Catalog caching. Keys are invalidated when an approval materializes a
// new vendor, dish or review.

func (c *Client) SetVendorList(vendors interface{}, ttl time.Duration) error {
	return c.setJSON("vendors", vendors, ttl)
}

func (c *Client) GetVendorList(dest interface{}) error {
	return c.getJSON("vendors", dest)
}

func (c *Client) DeleteVendorList() error {
	return c.delete("vendors")
}

func (c *Client) SetVendorMenu(vendorID uint, dishes interface{}, ttl time.Duration) error {
	return c.setJSON(fmt.Sprintf("vendor_menu:%d", vendorID), dishes, ttl)
}

func (c *Client) GetVendorMenu(vendorID uint, dest interface{}) error {
	return c.getJSON(fmt.Sprintf("vendor_menu:%d", vendorID), dest)
}

func (c *Client) DeleteVendorMenu(vendorID uint) error {
	return c.delete(fmt.Sprintf("vendor_menu:%d", vendorID))
}

func (c *Client) SetDishReviews(dishID uint, reviews interface{}, ttl time.Duration) error {
	return c.setJSON(fmt.Sprintf("dish_reviews:%d", dishID), reviews, ttl)
}

func (c *Client) GetDishReviews(dishID uint, dest interface{}) error {
	return c.getJSON(fmt.Sprintf("dish_reviews:%d", dishID), dest)
}

func (c *Client) DeleteDishReviews(dishID uint) error {
	return c.delete(fmt.Sprintf("dish_reviews:%d", dishID))
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
