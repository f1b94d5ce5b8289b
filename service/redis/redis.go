package redis

import (
	"errors"
	"time"

	"github.com/properties-dex/goapi/base/ctx"
)

const (
	// Forever is TTL for the keys which live until the cluster restarts
	Forever = time.Duration(-1)
)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = errors.New("key not found")

	// ErrNoTTL is returned when the key exists but has no associated expire
	ErrNoTTL = errors.New("key has no ttl")
)

// Service wraps a redis connection pool
type Service interface {
	// Get retrieves the value of key
	Get(context ctx.Ctx, key string) ([]byte, error)

	// Set stores value with expiration. Pass Forever to keep the key
	// until it is deleted explicitly.
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error

	// Del removes the given keys and returns the number of keys removed
	Del(context ctx.Ctx, ks ...string) (int, error)

	// TTL returns remaining time to live of a key in seconds.
	// Returns ErrNotFound if the key does not exist and ErrNoTTL if the
	// key has no associated expire.
	TTL(context ctx.Ctx, key string) (int, error)

	// Exists checks whether key exists
	Exists(context ctx.Ctx, key string) (bool, error)

	// Incr increments the number stored at key by one
	Incr(context ctx.Ctx, key string) (int64, error)

	// Incrby increments the number stored at key by val
	Incrby(context ctx.Ctx, key string, val int) (int64, error)

	// Ping checks the connection
	Ping(context ctx.Ctx) error
}
