package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-navigation/internal/logger"
	"github.com/sbilibin2017/gw-navigation/internal/models"
)

// GeocodeCacheRepository caches normalized geocoding results in Redis.
type GeocodeCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached results
}

// NewGeocodeCacheRepository creates a new repository instance with TTL.
func NewGeocodeCacheRepository(client *redis.Client, expiration time.Duration) *GeocodeCacheRepository {
	return &GeocodeCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func geocodeKey(query string) string {
	return fmt.Sprintf("geocode:%s", strings.ToLower(strings.TrimSpace(query)))
}

// GetResults fetches cached results for a query.
func (r *GeocodeCacheRepository) GetResults(ctx context.Context, query string) ([]models.GeocodeResult, error) {
	key := geocodeKey(query)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("geocode results not found in cache for %q", query)
		}
		return nil, err
	}

	var results []models.GeocodeResult
	if err := json.Unmarshal([]byte(val), &results); err != nil {
		logger.Log.Infow(
			"key", key,
			"value", val,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result_count", len(results),
		"error", nil,
	)

	return results, nil
}

// SetResults caches results for a query with expiration.
func (r *GeocodeCacheRepository) SetResults(ctx context.Context, query string, results []models.GeocodeResult) error {
	key := geocodeKey(query)

	data, err := json.Marshal(results)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"result_count", len(results),
		"error", err,
	)

	return err
}
