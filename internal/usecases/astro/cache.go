package astro

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/admin/astro-services/jyotish/internal/ports/cache"
)

// cached cache-aside: при попадании значение берётся из кэша, иначе считается и кладётся с ttl.
// Ошибки кэша только логируются.
func cached[T any](ctx context.Context, s *Service, key string, ttl time.Duration, compute func() (T, error)) (T, error) {
	if s.Cache != nil {
		raw, err := s.Cache.Get(ctx, key)
		switch {
		case err == nil:
			var v T
			jsonErr := json.Unmarshal([]byte(raw), &v)
			if jsonErr == nil {
				s.Log.DebugContext(ctx, "cache hit", "cache_key", key)
				return v, nil
			}
			s.Log.WarnContext(ctx, "failed to decode cached value", "error", jsonErr, "cache_key", key)
		case !errors.Is(err, cache.ErrMiss):
			s.Log.WarnContext(ctx, "cache get failed", "error", err, "cache_key", key)
		}
	}

	v, err := compute()
	if err != nil {
		return v, err
	}

	s.store(ctx, key, v, ttl)
	return v, nil
}

func (s *Service) store(ctx context.Context, key string, v any, ttl time.Duration) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		s.Log.WarnContext(ctx, "failed to encode value for cache", "error", err, "cache_key", key)
		return
	}
	if err := s.Cache.Set(ctx, key, string(data), ttl); err != nil {
		s.Log.WarnContext(ctx, "cache set failed", "error", err, "cache_key", key)
		return
	}
	s.Log.DebugContext(ctx, "value cached", "cache_key", key, "ttl", ttl)
}
