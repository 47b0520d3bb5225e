package cache

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Cache TTL durations.
const (
	TTLCurrentSeason = 10 * time.Second // re-read often by the broadcast poll loop
	TTLStandings     = 30 * time.Second // derived, cheap to recompute, but hit on every page load
	TTLGameState     = 5 * time.Second  // live game state changes every broadcast tick
	TTLIdempotency   = 1 * time.Minute  // covers one poll interval's worth of retries
)

// Cache key prefixes.
const (
	KeyPrefixSeason      = "season"
	KeyPrefixStandings   = "standings"
	KeyPrefixGameState   = "gamestate"
	KeyPrefixIdempotency = "idempotency"
)

// CurrentSeasonCacheKey caches the current season document so every
// broadcast.Orchestrator poll doesn't round-trip to Postgres.
func CurrentSeasonCacheKey() string {
	return fmt.Sprintf("%s:current", KeyPrefixSeason)
}

// SeasonCacheKey caches one season by ID.
func SeasonCacheKey(seasonID uuid.UUID) string {
	return fmt.Sprintf("%s:%s", KeyPrefixSeason, seasonID)
}

// StandingsCacheKey caches a season's computed standings table.
func StandingsCacheKey(seasonID uuid.UUID) string {
	return fmt.Sprintf("%s:%s", KeyPrefixStandings, seasonID)
}

// GameStateCacheKey caches a scheduled game's latest broadcast state.
func GameStateCacheKey(gameID uuid.UUID) string {
	return fmt.Sprintf("%s:%s", KeyPrefixGameState, gameID)
}

// IdempotencyKey builds the cache key for one broadcast action on one game
// (idempotency:<action>:<game-id>). Nothing in the repository sets or
// checks this key, so it does not by itself stop two overlapping polls
// from starting the same game.
func IdempotencyKey(actionType string, gameID uuid.UUID) string {
	return fmt.Sprintf("%s:%s:%s", KeyPrefixIdempotency, actionType, gameID)
}

// InvalidateSeasonCache returns the pattern covering all season keys.
func InvalidateSeasonCache() string {
	return KeyPrefixSeason + ":*"
}

// InvalidateStandingsCache returns the pattern covering all standings keys.
func InvalidateStandingsCache() string {
	return KeyPrefixStandings + ":*"
}

// InvalidateGameStateCache returns the pattern covering all game-state keys.
func InvalidateGameStateCache() string {
	return KeyPrefixGameState + ":*"
}

// InvalidateAllCache returns the pattern for every cache key.
func InvalidateAllCache() string {
	return "*"
}
