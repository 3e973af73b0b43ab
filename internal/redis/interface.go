package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so callers never import go-redis for
// the connection type
type Client interface {
	redis.UniversalClient
}

// Nil is returned by reads of a missing key
const Nil = redis.Nil
