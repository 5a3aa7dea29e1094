package redis

import (
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	redislib "github.com/redis/go-redis/v9"
)

// newTestCache returns a parse cache backed by an in-process redis server
// that lives as long as the test.
func newTestCache(t *testing.T, ttl time.Duration) (*ParseCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redislib.NewClient(&redislib.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewParseCache(client, ttl), mr
}
