package db

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"dining-server/model"
)

// nearest-station responses are cached briefly, stations rarely move
const stationCacheTTL = 60 * time.Second

var redisClient *redis.Client

// InitRedis opens a redis client from REDIS_ADDR / REDIS_PASS.
// Returns nil when no address is configured, callers must tolerate that.
func InitRedis() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil
	}
	redisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASS"),
	})
	return redisClient
}

// coordinates are rounded to four decimals (~11 m), close enough queries
// share a cache entry
func stationCacheKey(latitude, longitude float64, limit int) string {
	return fmt.Sprintf("stations:nearest:%.4f:%.4f:%d", latitude, longitude, limit)
}

func GetCachedNearestStations(ctx context.Context, latitude, longitude float64, limit int) ([]model.StationDistance, bool) {
	if redisClient == nil {
		return nil, false
	}

	payload, err := redisClient.Get(ctx, stationCacheKey(latitude, longitude, limit)).Bytes()
	if err != nil {
		// miss or redis unavailable, fall back to the database
		return nil, false
	}

	var stationDistances []model.StationDistance
	err = json.Unmarshal(payload, &stationDistances)
	if err != nil {
		return nil, false
	}

	return stationDistances, true
}

func SetCachedNearestStations(ctx context.Context, latitude, longitude float64, limit int, stationDistances []model.StationDistance) {
	if redisClient == nil {
		return
	}

	payload, err := json.Marshal(stationDistances)
	if err != nil {
		return
	}

	// a failed cache write is not an error, the next query recomputes
	redisClient.Set(ctx, stationCacheKey(latitude, longitude, limit), payload, stationCacheTTL)
}
