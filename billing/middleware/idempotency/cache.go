package idempotency

import (
	"context"
	"time"

	"encore.dev/storage/cache"

	"tuition.app/billing/model"
)

// ReplayWindow is how long a payment response stays replayable.
const ReplayWindow = 24 * time.Hour

var IdempotencyCluster = cache.NewCluster("payments-idempotency", cache.ClusterConfig{
	EvictionPolicy: cache.AllKeysLRU,
})

// IdempotencyCache maps route path plus client key to the request outcome.
var IdempotencyCache = cache.NewStructKeyspace[model.IdempotencyKey, model.IdempotencyCacheEntry](
	IdempotencyCluster,
	cache.KeyspaceConfig{
		KeyPattern:    "idempotency/:Resource/:Key",
		DefaultExpiry: cache.ExpireIn(ReplayWindow),
	},
)

// keyspace is the slice of the cache API the middleware needs.
type keyspace interface {
	Get(ctx context.Context, key model.IdempotencyKey) (model.IdempotencyCacheEntry, error)
	Set(ctx context.Context, key model.IdempotencyKey, val model.IdempotencyCacheEntry) error
	SetIfNotExists(ctx context.Context, key model.IdempotencyKey, val model.IdempotencyCacheEntry) error
	Delete(ctx context.Context, keys ...model.IdempotencyKey) (int, error)
}

var entries keyspace = IdempotencyCache
