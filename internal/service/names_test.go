package service

import (
	"context"
	"testing"
	"time"

	"sportshub-recruit-api/internal/repo/pgdb"
	"sportshub-recruit-api/internal/repo/pgdb/pgdbtest"
	"sportshub-recruit-api/pkg/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNameResolver_CacheAside(t *testing.T) {
	db := pgdbtest.NewDB(t)
	pgdbtest.AddProfile(t, db, 1, "Kim")
	pgdbtest.AddTeam(t, db, 2, "Mapo FC")

	mr := miniredis.RunT(t)
	cache, err := redis.NewClient("redis://"+mr.Addr(), "test", zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })

	r := NewNameResolver(pgdb.NewLookupRepo(db), cache, time.Minute, zap.NewNop())
	ctx := context.Background()

	assert.Equal(t, "Kim", r.ProfileName(ctx, 1))
	assert.Equal(t, "Mapo FC", r.TeamName(ctx, 2))

	cached, err := mr.Get(cache.KeyBuilder.KeyProfileName(1))
	require.NoError(t, err)
	assert.Equal(t, "Kim", cached)

	// served from the cache while the entry lives
	_, err = db.Database.Exec("UPDATE profiles SET name = 'Park' WHERE id = 1")
	require.NoError(t, err)
	assert.Equal(t, "Kim", r.ProfileName(ctx, 1))

	mr.FastForward(2 * time.Minute)
	assert.Equal(t, "Park", r.ProfileName(ctx, 1))

	// unknown ids are not cached
	assert.Empty(t, r.TeamName(ctx, 3))
	assert.False(t, mr.Exists(cache.KeyBuilder.KeyTeamName(3)))
}

func TestNameResolver_CacheDownFallsBackToDatabase(t *testing.T) {
	db := pgdbtest.NewDB(t)
	pgdbtest.AddProfile(t, db, 1, "Kim")

	mr := miniredis.RunT(t)
	cache, err := redis.NewClient("redis://"+mr.Addr(), "test", zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })
	mr.Close()

	r := NewNameResolver(pgdb.NewLookupRepo(db), cache, time.Minute, zap.NewNop())
	assert.Equal(t, "Kim", r.ProfileName(context.Background(), 1))
}

func TestNameResolver_WithoutCache(t *testing.T) {
	db := pgdbtest.NewDB(t)
	pgdbtest.AddTeam(t, db, 2, "Mapo FC")

	r := NewNameResolver(pgdb.NewLookupRepo(db), nil, time.Minute, zap.NewNop())
	assert.Equal(t, "Mapo FC", r.TeamName(context.Background(), 2))
	assert.Empty(t, r.ProfileName(context.Background(), 1))
}
