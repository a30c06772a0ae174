// Package cached decorates the entity repositories with an explicit
// cache-aside policy: reads look the result up in the cache first and store
// it on a miss, every write evicts the entity's whole cache namespace.
// Cache failures are logged and degrade to the inner repository; they never
// fail the request.
package cached

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"mgarcia/healthlifting-app/internal/cache"
	"mgarcia/healthlifting-app/internal/domain"
)

// DefaultTTL bounds staleness for cached reads in case an eviction is lost.
const DefaultTTL = 5 * time.Minute

// Cache namespaces, one per entity collection.
const (
	nsAthletes       = "athletes"
	nsCoaches        = "coaches"
	nsAppointments   = "appointments"
	nsTrainingSheets = "training_sheets"
)

// cacheHelper carries the namespace-scoped cache plumbing shared by the
// decorators.
type cacheHelper struct {
	cache cache.Cache
	ns    string
	ttl   time.Duration
	log   zerolog.Logger
}

func newCacheHelper(c cache.Cache, ns string, log zerolog.Logger) cacheHelper {
	return cacheHelper{cache: c, ns: ns, ttl: DefaultTTL, log: log.With().Str("namespace", ns).Logger()}
}

// lookup reports whether the key was found and decoded into dest.
func (h cacheHelper) lookup(ctx context.Context, key string, dest any) bool {
	raw, err := h.cache.Lookup(ctx, h.ns, key)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			h.log.Debug().Err(err).Str("key", key).Msg("cache lookup failed")
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		h.log.Debug().Err(err).Str("key", key).Msg("cache entry undecodable")
		return false
	}
	return true
}

func (h cacheHelper) store(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := h.cache.Store(ctx, h.ns, key, raw, h.ttl); err != nil {
		h.log.Debug().Err(err).Str("key", key).Msg("cache store failed")
	}
}

func (h cacheHelper) invalidate(ctx context.Context) {
	if err := h.cache.InvalidateAll(ctx, h.ns); err != nil {
		h.log.Debug().Err(err).Msg("cache invalidation failed")
	}
}

func idKey(id primitive.ObjectID) string {
	return "id:" + id.Hex()
}

func documentKey(document string) string {
	return "doc:" + document
}

func pageKey(kind string, pageable domain.Pageable) string {
	return fmt.Sprintf("%s:%d:%d:%s", kind, pageable.Page, pageable.Size, pageable.Sort)
}

// idsPageKey derives a stable key for an id-list page query. The list can be
// long, so it is folded into an FNV hash instead of being concatenated.
func idsPageKey(ids []primitive.ObjectID, pageable domain.Pageable) string {
	hash := fnv.New64a()
	for _, id := range ids {
		_, _ = hash.Write(id[:])
	}
	return fmt.Sprintf("in:%x:%d:%d:%s", hash.Sum64(), pageable.Page, pageable.Size, pageable.Sort)
}
