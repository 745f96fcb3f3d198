package pgdb_test

import (
	"context"
	"testing"
	"time"

	"sportshub-recruit-api/internal/entity"
	"sportshub-recruit-api/internal/repo/pgdb"
	"sportshub-recruit-api/internal/repo/pgdb/pgdbtest"
	"sportshub-recruit-api/internal/repo/repo_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

func newPosting(teamId int64, category entity.Category) *entity.Posting {
	return &entity.Posting{
		TeamId:            teamId,
		WriterProfileId:   100,
		Title:             "sunday futsal",
		Region:            "Seoul",
		SubRegion:         "Mapo",
		Category:          category,
		Status:            entity.PostStatusOpen,
		RequiredPersonnel: intPtr(2),
		CreatedAt:         time.Now().UTC(),
	}
}

func TestPostingRepo_CreateAndGet(t *testing.T) {
	db := pgdbtest.NewDB(t)
	repo := pgdb.NewPostingRepo(db)
	ctx := context.Background()

	date := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)
	p := newPosting(7, entity.CategoryMatch)
	p.MatchDate = &date
	p.GameTime = "18:00"
	p.Cost = intPtr(10000)

	id, err := repo.CreatePosting(ctx, p)
	require.NoError(t, err)
	assert.NotZero(t, id)

	got, err := repo.GetPostingById(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.Id)
	assert.Equal(t, int64(7), got.TeamId)
	assert.Equal(t, entity.CategoryMatch, got.Category)
	assert.Equal(t, entity.PostStatusOpen, got.Status)
	assert.Equal(t, "18:00", got.GameTime)
	require.NotNil(t, got.MatchDate)
	assert.True(t, date.Equal(*got.MatchDate))
	require.NotNil(t, got.RequiredPersonnel)
	assert.Equal(t, 2, *got.RequiredPersonnel)
	assert.Nil(t, got.MatchId)
}

func TestPostingRepo_GetMissing(t *testing.T) {
	db := pgdbtest.NewDB(t)
	repo := pgdb.NewPostingRepo(db)

	_, err := repo.GetPostingById(context.Background(), 42)
	assert.ErrorIs(t, err, repo_errors.ErrNotFound)

	_, err = repo.GetPostingByIdForUpdate(context.Background(), 42)
	assert.ErrorIs(t, err, repo_errors.ErrNotFound)
}

func TestPostingRepo_Update(t *testing.T) {
	db := pgdbtest.NewDB(t)
	repo := pgdb.NewPostingRepo(db)
	ctx := context.Background()

	id, err := repo.CreatePosting(ctx, newPosting(7, entity.CategoryTeam))
	require.NoError(t, err)

	p, err := repo.GetPostingById(ctx, id)
	require.NoError(t, err)
	p.Status = entity.PostStatusCompleted
	p.MatchId = int64Ptr(9)
	p.Title = "renamed"
	require.NoError(t, repo.UpdatePosting(ctx, p))

	got, err := repo.GetPostingById(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, entity.PostStatusCompleted, got.Status)
	assert.Equal(t, "renamed", got.Title)
	require.NotNil(t, got.MatchId)
	assert.Equal(t, int64(9), *got.MatchId)

	p.Id = 999
	assert.ErrorIs(t, repo.UpdatePosting(ctx, p), repo_errors.ErrNotFound)
}

func TestPostingRepo_GetPostingsFilters(t *testing.T) {
	db := pgdbtest.NewDB(t)
	repo := pgdb.NewPostingRepo(db)
	ctx := context.Background()

	for _, p := range []*entity.Posting{
		newPosting(1, entity.CategoryTeam),
		newPosting(1, entity.CategoryMatch),
		newPosting(2, entity.CategoryTeam),
	} {
		_, err := repo.CreatePosting(ctx, p)
		require.NoError(t, err)
	}

	all, err := repo.GetPostings(ctx, nil, entity.NewPaginationInput(0, 0))
	require.NoError(t, err)
	assert.Len(t, all, 3)

	team1, err := repo.GetPostings(ctx, &entity.PostingFilter{TeamId: 1}, entity.NewPaginationInput(0, 0))
	require.NoError(t, err)
	assert.Len(t, team1, 2)

	team1Team, err := repo.GetPostings(ctx, &entity.PostingFilter{TeamId: 1, Category: entity.CategoryTeam}, entity.NewPaginationInput(0, 0))
	require.NoError(t, err)
	require.Len(t, team1Team, 1)
	assert.Equal(t, entity.CategoryTeam, team1Team[0].Category)

	paged, err := repo.GetPostings(ctx, nil, entity.NewPaginationInput(2, 2))
	require.NoError(t, err)
	assert.Len(t, paged, 1)
}

func TestPostingRepo_Delete(t *testing.T) {
	db := pgdbtest.NewDB(t)
	repo := pgdb.NewPostingRepo(db)
	ctx := context.Background()

	id, err := repo.CreatePosting(ctx, newPosting(1, entity.CategoryMercenary))
	require.NoError(t, err)

	require.NoError(t, repo.DeletePosting(ctx, id))
	assert.ErrorIs(t, repo.DeletePosting(ctx, id), repo_errors.ErrNotFound)
}
