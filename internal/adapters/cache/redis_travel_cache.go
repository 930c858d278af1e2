// Package cache provides caching decorators for the route oracle.
package cache

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"itinerary-service/internal/domain"
	"itinerary-service/internal/ports"
)

// DefaultTravelTTL bounds how long a cached point-to-point duration is
// trusted. Road conditions drift slowly; a week keeps the oracle quiet
// without serving stale estimates forever.
const DefaultTravelTTL = 7 * 24 * time.Hour

// RedisTravelCache decorates a RouteOracle with a Redis-backed cache for
// point-to-point durations. Round-trip optimization is passed through
// uncached: its answers feed a separate persistent circuit store. Cache
// failures degrade to the inner oracle and are logged, never surfaced.
type RedisTravelCache struct {
	client *redis.Client
	inner  ports.RouteOracle
	ttl    time.Duration
}

func NewRedisTravelCache(client *redis.Client, inner ports.RouteOracle, ttl time.Duration) *RedisTravelCache {
	if ttl <= 0 {
		ttl = DefaultTravelTTL
	}
	return &RedisTravelCache{client: client, inner: inner, ttl: ttl}
}

func travelKey(origin, destination domain.Coordinates) string {
	return fmt.Sprintf("travel:%.5f,%.5f:%.5f,%.5f", origin.Lat, origin.Lng, destination.Lat, destination.Lng)
}

func (c *RedisTravelCache) OptimizeRoundTrip(ctx context.Context, anchor domain.Coordinates, waypoints []domain.Coordinates) (*ports.OptimizedRoute, error) {
	return c.inner.OptimizeRoundTrip(ctx, anchor, waypoints)
}

func (c *RedisTravelCache) Duration(ctx context.Context, origin, destination domain.Coordinates) (int, error) {
	key := travelKey(origin, destination)

	val, err := c.client.Get(ctx, key).Result()
	if err == nil {
		sec, convErr := strconv.Atoi(val)
		if convErr == nil {
			return sec, nil
		}
		log.Printf("travel cache: corrupt value for %s: %v", key, convErr)
	} else if !errors.Is(err, redis.Nil) {
		log.Printf("travel cache read failed: %v", err)
	}

	sec, err := c.inner.Duration(ctx, origin, destination)
	if err != nil {
		return 0, err
	}

	if err := c.client.Set(ctx, key, strconv.Itoa(sec), c.ttl).Err(); err != nil {
		log.Printf("travel cache write failed: %v", err)
	}
	return sec, nil
}
