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

var matchColumns = []string{
	"id", "match_date", "match_time", "venue", "venue_id", "venue_url", "home_team_id", "away_team_id",
	"home_score", "away_score", "status", "referee", "weather", "temperature", "recruit_post_id",
	"created_at", "updated_at",
}

type MatchRepo struct {
	*postgres.Postgres
}

func NewMatchRepo(pgdb *postgres.Postgres) *MatchRepo {
	return &MatchRepo{pgdb}
}

func scanMatch(row interface{ Scan(dest ...any) error }) (*entity.Match, error) {
	var m entity.Match
	err := row.Scan(&m.Id, &m.MatchDate, &m.MatchTime, &m.Venue, &m.VenueId, &m.VenueUrl, &m.HomeTeamId,
		&m.AwayTeamId, &m.HomeScore, &m.AwayScore, &m.Status, &m.Referee, &m.Weather, &m.Temperature,
		&m.RecruitPostId, &m.CreatedAt, &m.UpdatedAt)

	return &m, err
}

func (r *MatchRepo) CreateMatch(ctx context.Context, m *entity.Match) (int64, error) {
	createMatchSql, args, err := r.SqlBuilder.
		Insert("matches").
		Columns(matchColumns[1:]...).
		Values(m.MatchDate, m.MatchTime, m.Venue, m.VenueId, m.VenueUrl, m.HomeTeamId, m.AwayTeamId,
			m.HomeScore, m.AwayScore, m.Status, m.Referee, m.Weather, m.Temperature, m.RecruitPostId,
			m.CreatedAt, m.UpdatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := getExecutor(ctx, r.Database).QueryRowContext(ctx, createMatchSql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert match: %w", err)
	}

	return id, nil
}

func (r *MatchRepo) GetMatchById(ctx context.Context, id int64) (*entity.Match, error) {
	getMatchSql, args, err := r.SqlBuilder.
		Select(matchColumns...).
		From("matches").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return nil, err
	}

	m, err := scanMatch(getExecutor(ctx, r.Database).QueryRowContext(ctx, getMatchSql, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, fmt.Errorf("select match %d: %w", id, err)
	}

	return m, nil
}

func (r *MatchRepo) GetMatches(ctx context.Context, filter *entity.MatchFilter, pg *entity.PaginationInput) ([]entity.Match, error) {
	q := r.SqlBuilder.
		Select(matchColumns...).
		From("matches")

	if filter != nil {
		if filter.Status != "" {
			q = q.Where(squirrel.Eq{"status": filter.Status})
		}
		switch {
		case filter.Date != nil:
			q = q.Where(squirrel.Eq{"match_date": *filter.Date})
		case filter.StartDate != nil || filter.EndDate != nil:
			if filter.StartDate != nil {
				q = q.Where(squirrel.GtOrEq{"match_date": *filter.StartDate})
			}
			if filter.EndDate != nil {
				q = q.Where(squirrel.LtOrEq{"match_date": *filter.EndDate})
			}
		}
	}

	getMatchesSql, args, err := q.
		OrderBy("match_date", "id").
		Limit(uint64(pg.Limit)).
		Offset(uint64(pg.Offset)).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := getExecutor(ctx, r.Database).QueryContext(ctx, getMatchesSql, args...)
	if err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}
	defer rows.Close()

	matches := make([]entity.Match, 0)
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, *m)
	}

	return matches, rows.Err()
}

func (r *MatchRepo) UpdateMatch(ctx context.Context, m *entity.Match) error {
	updateMatchSql, args, err := r.SqlBuilder.
		Update("matches").
		SetMap(map[string]interface{}{
			"match_date":      m.MatchDate,
			"match_time":      m.MatchTime,
			"venue":           m.Venue,
			"venue_id":        m.VenueId,
			"venue_url":       m.VenueUrl,
			"home_team_id":    m.HomeTeamId,
			"away_team_id":    m.AwayTeamId,
			"home_score":      m.HomeScore,
			"away_score":      m.AwayScore,
			"status":          m.Status,
			"referee":         m.Referee,
			"weather":         m.Weather,
			"temperature":     m.Temperature,
			"recruit_post_id": m.RecruitPostId,
			"updated_at":      m.UpdatedAt,
		}).
		Where("id = ?", m.Id).
		ToSql()
	if err != nil {
		return err
	}

	res, err := getExecutor(ctx, r.Database).ExecContext(ctx, updateMatchSql, args...)
	if err != nil {
		return fmt.Errorf("update match %d: %w", m.Id, err)
	}

	return requireAffected(res)
}

func (r *MatchRepo) DeleteMatch(ctx context.Context, id int64) error {
	deleteMatchSql, args, err := r.SqlBuilder.
		Delete("matches").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return err
	}

	res, err := getExecutor(ctx, r.Database).ExecContext(ctx, deleteMatchSql, args...)
	if err != nil {
		return fmt.Errorf("delete match %d: %w", id, err)
	}

	return requireAffected(res)
}
