package pgdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"sportshub-recruit-api/internal/entity"
	"sportshub-recruit-api/internal/repo/repo_errors"
	"sportshub-recruit-api/pkg/postgres"

	"github.com/Masterminds/squirrel"
)

var postingColumns = []string{
	"id", "team_id", "writer_profile_id", "title", "content", "region", "sub_region", "image_url",
	"match_date", "game_time", "category", "target_type", "status", "required_personnel",
	"field_location", "match_type", "team_size", "cost", "match_id", "created_at",
}

type PostingRepo struct {
	*postgres.Postgres
}

func NewPostingRepo(pgdb *postgres.Postgres) *PostingRepo {
	return &PostingRepo{pgdb}
}

func scanPosting(row interface{ Scan(dest ...any) error }) (*entity.Posting, error) {
	var p entity.Posting
	err := row.Scan(&p.Id, &p.TeamId, &p.WriterProfileId, &p.Title, &p.Content, &p.Region, &p.SubRegion,
		&p.ImageUrl, &p.MatchDate, &p.GameTime, &p.Category, &p.TargetType, &p.Status,
		&p.RequiredPersonnel, &p.FieldLocation, &p.MatchType, &p.TeamSize, &p.Cost, &p.MatchId, &p.CreatedAt)

	return &p, err
}

func (r *PostingRepo) CreatePosting(ctx context.Context, p *entity.Posting) (int64, error) {
	createPostingSql, args, err := r.SqlBuilder.
		Insert("recruit_posts").
		Columns(postingColumns[1:]...).
		Values(p.TeamId, p.WriterProfileId, p.Title, p.Content, p.Region, p.SubRegion, p.ImageUrl,
			p.MatchDate, p.GameTime, p.Category, p.TargetType, p.Status, p.RequiredPersonnel,
			p.FieldLocation, p.MatchType, p.TeamSize, p.Cost, p.MatchId, p.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := getExecutor(ctx, r.Database).QueryRowContext(ctx, createPostingSql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert posting: %w", err)
	}

	return id, nil
}

func (r *PostingRepo) selectPosting(id int64, lock bool) squirrel.SelectBuilder {
	q := r.SqlBuilder.
		Select(postingColumns...).
		From("recruit_posts").
		Where("id = ?", id)
	if lock && r.RowLock {
		q = q.Suffix("FOR UPDATE")
	}

	return q
}

func (r *PostingRepo) getPosting(ctx context.Context, id int64, lock bool) (*entity.Posting, error) {
	getPostingSql, args, err := r.selectPosting(id, lock).ToSql()
	if err != nil {
		return nil, err
	}

	p, err := scanPosting(getExecutor(ctx, r.Database).QueryRowContext(ctx, getPostingSql, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, fmt.Errorf("select posting %d: %w", id, err)
	}

	return p, nil
}

func (r *PostingRepo) GetPostingById(ctx context.Context, id int64) (*entity.Posting, error) {
	return r.getPosting(ctx, id, false)
}

// GetPostingByIdForUpdate locks the posting row until the surrounding transaction ends.
func (r *PostingRepo) GetPostingByIdForUpdate(ctx context.Context, id int64) (*entity.Posting, error) {
	return r.getPosting(ctx, id, true)
}

func (r *PostingRepo) GetPostings(ctx context.Context, filter *entity.PostingFilter, pg *entity.PaginationInput) ([]entity.Posting, error) {
	q := r.SqlBuilder.
		Select(postingColumns...).
		From("recruit_posts")

	if filter != nil {
		if filter.TeamId != 0 {
			q = q.Where(squirrel.Eq{"team_id": filter.TeamId})
		}
		if filter.WriterProfileId != 0 {
			q = q.Where(squirrel.Eq{"writer_profile_id": filter.WriterProfileId})
		}
		if filter.Status != "" {
			q = q.Where(squirrel.Eq{"status": filter.Status})
		}
		if filter.Category != "" {
			q = q.Where(squirrel.Eq{"category": filter.Category})
		}
	}

	getPostingsSql, args, err := q.
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(pg.Limit)).
		Offset(uint64(pg.Offset)).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := getExecutor(ctx, r.Database).QueryContext(ctx, getPostingsSql, args...)
	if err != nil {
		return nil, fmt.Errorf("select postings: %w", err)
	}
	defer rows.Close()

	postings := make([]entity.Posting, 0)
	for rows.Next() {
		p, err := scanPosting(rows)
		if err != nil {
			return nil, err
		}
		postings = append(postings, *p)
	}

	return postings, rows.Err()
}

// UpdatePosting overwrites every mutable column with the values of p.
func (r *PostingRepo) UpdatePosting(ctx context.Context, p *entity.Posting) error {
	updatePostingSql, args, err := r.SqlBuilder.
		Update("recruit_posts").
		SetMap(map[string]interface{}{
			"team_id":            p.TeamId,
			"writer_profile_id":  p.WriterProfileId,
			"title":              p.Title,
			"content":            p.Content,
			"region":             p.Region,
			"sub_region":         p.SubRegion,
			"image_url":          p.ImageUrl,
			"match_date":         p.MatchDate,
			"game_time":          p.GameTime,
			"category":           p.Category,
			"target_type":        p.TargetType,
			"status":             p.Status,
			"required_personnel": p.RequiredPersonnel,
			"field_location":     p.FieldLocation,
			"match_type":         p.MatchType,
			"team_size":          p.TeamSize,
			"cost":               p.Cost,
			"match_id":           p.MatchId,
		}).
		Where("id = ?", p.Id).
		ToSql()
	if err != nil {
		return err
	}

	res, err := getExecutor(ctx, r.Database).ExecContext(ctx, updatePostingSql, args...)
	if err != nil {
		return fmt.Errorf("update posting %d: %w", p.Id, err)
	}

	return requireAffected(res)
}

func (r *PostingRepo) DeletePosting(ctx context.Context, id int64) error {
	deletePostingSql, args, err := r.SqlBuilder.
		Delete("recruit_posts").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return err
	}

	res, err := getExecutor(ctx, r.Database).ExecContext(ctx, deletePostingSql, args...)
	if err != nil {
		return fmt.Errorf("delete posting %d: %w", id, err)
	}

	return requireAffected(res)
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repo_errors.ErrNotFound
	}

	return nil
}
