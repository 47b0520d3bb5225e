package cache

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
)

// InvalidationStrategy names a broad invalidation sweep.
type InvalidationStrategy string

const (
	InvalidateAll        InvalidationStrategy = "all"
	InvalidateSeasons    InvalidationStrategy = "seasons"
	InvalidateStandingsS InvalidationStrategy = "standings"
	InvalidateGameStates InvalidationStrategy = "gamestates"
)

// InvalidationManager handles cache invalidation around season and
// broadcast-state writes.
type InvalidationManager struct{}

// NewInvalidationManager creates a new invalidation manager.
func NewInvalidationManager() *InvalidationManager {
	return &InvalidationManager{}
}

// InvalidateByStrategy invalidates cache based on strategy.
func (m *InvalidationManager) InvalidateByStrategy(ctx context.Context, strategy InvalidationStrategy) error {
	switch strategy {
	case InvalidateAll:
		return m.invalidateAll(ctx)
	case InvalidateSeasons:
		return m.invalidateByPattern(ctx, InvalidateSeasonCache())
	case InvalidateStandingsS:
		return m.invalidateByPattern(ctx, InvalidateStandingsCache())
	case InvalidateGameStates:
		return m.invalidateByPattern(ctx, InvalidateGameStateCache())
	default:
		return fmt.Errorf("unknown invalidation strategy: %s", strategy)
	}
}

// InvalidateSeason clears the cached current-season document and that
// season's standings, e.g. after advance_week or advance_playoffs.
func (m *InvalidationManager) InvalidateSeason(ctx context.Context, seasonID uuid.UUID) error {
	patterns := []string{
		CurrentSeasonCacheKey(),
		SeasonCacheKey(seasonID),
		StandingsCacheKey(seasonID),
	}
	for _, pattern := range patterns {
		if err := m.invalidateByPattern(ctx, pattern); err != nil {
			log.Printf("Error invalidating pattern %s: %v", pattern, err)
		}
	}
	log.Printf("[CACHE] Invalidated season: %s", seasonID)
	return nil
}

// InvalidateGameState clears the cached broadcast state for one game,
// called by the admin re-simulate handler after it overwrites a result.
func (m *InvalidationManager) InvalidateGameState(ctx context.Context, gameID uuid.UUID) error {
	if err := m.invalidateByPattern(ctx, GameStateCacheKey(gameID)); err != nil {
		log.Printf("Error invalidating game state %s: %v", gameID, err)
		return err
	}
	log.Printf("[CACHE] Invalidated game state: %s", gameID)
	return nil
}

func (m *InvalidationManager) invalidateByPattern(ctx context.Context, pattern string) error {
	if client == nil {
		return fmt.Errorf("redis not initialized")
	}

	keys, err := client.Keys(ctx, pattern).Result()
	if err != nil {
		return fmt.Errorf("failed to get keys for pattern %s: %w", pattern, err)
	}

	if len(keys) == 0 {
		return nil
	}

	deleted, err := client.Del(ctx, keys...).Result()
	if err != nil {
		return fmt.Errorf("failed to delete keys: %w", err)
	}

	log.Printf("[CACHE] Invalidated %d keys for pattern: %s", deleted, pattern)
	return nil
}

func (m *InvalidationManager) invalidateAll(ctx context.Context) error {
	if client == nil {
		return fmt.Errorf("redis not initialized")
	}
	if err := client.FlushDB(ctx).Err(); err != nil {
		return fmt.Errorf("failed to flush cache: %w", err)
	}
	log.Printf("[CACHE] Invalidated all cache")
	return nil
}

// Metrics returns cache statistics, used by the admin metrics endpoint.
func (m *InvalidationManager) Metrics(ctx context.Context) (map[string]interface{}, error) {
	if client == nil {
		return map[string]interface{}{"error": "redis not initialized"}, nil
	}

	info, err := client.Info(ctx, "stats").Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get cache info: %w", err)
	}

	metrics := make(map[string]interface{})
	for _, line := range strings.Split(info, "\r\n") {
		if strings.Contains(line, ":") {
			parts := strings.SplitN(line, ":", 2)
			metrics[parts[0]] = parts[1]
		}
	}

	dbSize, err := client.DBSize(ctx).Result()
	if err == nil {
		metrics["total_keys"] = dbSize
	}

	return metrics, nil
}
