package service

import (
	"context"
	"errors"
	"time"

	"sportshub-recruit-api/internal/repo"
	"sportshub-recruit-api/pkg/redis"

	"go.uber.org/zap"
)

// NameResolver looks up display names for profiles and teams. Names are
// decoration only, every failure ends in an empty name.
type NameResolver struct {
	lookup repo.Lookup
	cache  *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func NewNameResolver(lookup repo.Lookup, cache *redis.Client, ttl time.Duration, log *zap.Logger) *NameResolver {
	return &NameResolver{lookup: lookup, cache: cache, ttl: ttl, log: log}
}

func (r *NameResolver) ProfileName(ctx context.Context, profileId int64) string {
	key := ""
	if r.cache != nil {
		key = r.cache.KeyBuilder.KeyProfileName(profileId)
	}

	return r.resolve(ctx, key, func() (string, error) { return r.lookup.GetProfileName(ctx, profileId) })
}

func (r *NameResolver) TeamName(ctx context.Context, teamId int64) string {
	key := ""
	if r.cache != nil {
		key = r.cache.KeyBuilder.KeyTeamName(teamId)
	}

	return r.resolve(ctx, key, func() (string, error) { return r.lookup.GetTeamName(ctx, teamId) })
}

// resolve is cache-aside: read the cache, fall back to the database, write back on a hit.
func (r *NameResolver) resolve(ctx context.Context, key string, load func() (string, error)) string {
	if key != "" {
		name, err := r.cache.Get(ctx, key)
		if err == nil {
			return name
		}
		if !errors.Is(err, redis.ErrMiss) {
			r.log.Warn("name cache read failed", zap.String("key", key), zap.Error(err))
		}
	}

	name, err := load()
	if err != nil {
		r.log.Debug("name lookup failed", zap.String("key", key), zap.Error(err))
		return ""
	}

	if key != "" && name != "" {
		if err := r.cache.Set(ctx, key, name, r.ttl); err != nil {
			r.log.Warn("name cache write failed", zap.String("key", key), zap.Error(err))
		}
	}

	return name
}
