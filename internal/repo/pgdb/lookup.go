package pgdb

import (
	"context"
	"database/sql"
	"errors"

	"sportshub-recruit-api/internal/repo/repo_errors"
	"sportshub-recruit-api/pkg/postgres"
)

// LookupRepo reads display names from tables owned by the profile and team services.
type LookupRepo struct {
	*postgres.Postgres
}

func NewLookupRepo(pgdb *postgres.Postgres) *LookupRepo {
	return &LookupRepo{pgdb}
}

func (r *LookupRepo) selectName(ctx context.Context, column, table string, id int64) (string, error) {
	nameSql, args, err := r.SqlBuilder.
		Select(column).
		From(table).
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return "", err
	}

	var name sql.NullString
	err = getExecutor(ctx, r.Database).QueryRowContext(ctx, nameSql, args...).Scan(&name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", repo_errors.ErrNotFound
		}

		return "", err
	}

	return name.String, nil
}

func (r *LookupRepo) GetProfileName(ctx context.Context, profileId int64) (string, error) {
	return r.selectName(ctx, "name", "profiles", profileId)
}

func (r *LookupRepo) GetTeamName(ctx context.Context, teamId int64) (string, error) {
	return r.selectName(ctx, "team_name", "teams", teamId)
}
