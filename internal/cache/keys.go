package cache

import (
	"strconv"
	"strings"
)

const (
	GlobalKeyPrefix = "speakbyte"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// SentenceKey is the cache key of a target sentence.
func SentenceKey(no int) string {
	return GenerateCacheKey("speaking", "sentence", strconv.Itoa(no))
}

// LeaderboardKey is the sorted set holding a course's point ranking.
func LeaderboardKey(courseID string) string {
	return GenerateCacheKey("points", "leaderboard", courseID)
}
