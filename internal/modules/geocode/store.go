// README: Shared geocode cache on Redis; optional, errors are non-fatal.
package geocode

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"wayfarer/internal/types"
)

const (
	storeKeyPrefix = "wayfarer:geocode:"
	storeTTL       = 7 * 24 * time.Hour
)

// Store is the cross-process geocode cache. Every operation is best-effort:
// Redis being down degrades to resolver-only lookups, never to an error.
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func (s *Store) Get(ctx context.Context, key string) (types.Point, bool) {
	raw, err := s.rdb.Get(ctx, storeKeyPrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("geocode cache get: %v", err)
		}
		return types.Point{}, false
	}
	var p types.Point
	if err := json.Unmarshal(raw, &p); err != nil {
		log.Printf("geocode cache decode: %v", err)
		return types.Point{}, false
	}
	return p, true
}

func (s *Store) Set(ctx context.Context, key string, p types.Point) {
	raw, err := json.Marshal(p)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, storeKeyPrefix+key, raw, storeTTL).Err(); err != nil {
		log.Printf("geocode cache set: %v", err)
	}
}
