package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so repositories depend on an interface
// rather than a concrete client.
type Client interface {
	redis.UniversalClient
}
