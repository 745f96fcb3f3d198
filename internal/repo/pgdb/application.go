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

var applicationColumns = []string{
	"id", "post_id", "applicant_profile_id", "applicant_team_id", "description", "status", "application_date",
}

type ApplicationRepo struct {
	*postgres.Postgres
}

func NewApplicationRepo(pgdb *postgres.Postgres) *ApplicationRepo {
	return &ApplicationRepo{pgdb}
}

func scanApplication(row interface{ Scan(dest ...any) error }) (*entity.Application, error) {
	var a entity.Application
	err := row.Scan(&a.Id, &a.PostId, &a.ApplicantProfileId, &a.ApplicantTeamId, &a.Description, &a.Status, &a.ApplicationDate)

	return &a, err
}

func (r *ApplicationRepo) CreateApplication(ctx context.Context, a *entity.Application) (int64, error) {
	createApplicationSql, args, err := r.SqlBuilder.
		Insert("recruit_applications").
		Columns(applicationColumns[1:]...).
		Values(a.PostId, a.ApplicantProfileId, a.ApplicantTeamId, a.Description, a.Status, a.ApplicationDate).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := getExecutor(ctx, r.Database).QueryRowContext(ctx, createApplicationSql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert application: %w", err)
	}

	return id, nil
}

func (r *ApplicationRepo) GetApplicationById(ctx context.Context, id int64) (*entity.Application, error) {
	getApplicationSql, args, err := r.SqlBuilder.
		Select(applicationColumns...).
		From("recruit_applications").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return nil, err
	}

	a, err := scanApplication(getExecutor(ctx, r.Database).QueryRowContext(ctx, getApplicationSql, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, fmt.Errorf("select application %d: %w", id, err)
	}

	return a, nil
}

func (r *ApplicationRepo) getApplications(ctx context.Context, where squirrel.Eq) ([]entity.Application, error) {
	getApplicationsSql, args, err := r.SqlBuilder.
		Select(applicationColumns...).
		From("recruit_applications").
		Where(where).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := getExecutor(ctx, r.Database).QueryContext(ctx, getApplicationsSql, args...)
	if err != nil {
		return nil, fmt.Errorf("select applications: %w", err)
	}
	defer rows.Close()

	applications := make([]entity.Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		applications = append(applications, *a)
	}

	return applications, rows.Err()
}

func (r *ApplicationRepo) GetPostApplications(ctx context.Context, postId int64) ([]entity.Application, error) {
	return r.getApplications(ctx, squirrel.Eq{"post_id": postId})
}

func (r *ApplicationRepo) GetAcceptedApplications(ctx context.Context, postId int64) ([]entity.Application, error) {
	return r.getApplications(ctx, squirrel.Eq{"post_id": postId, "status": entity.ApplicationStatusAccepted})
}

func (r *ApplicationRepo) GetProfileApplications(ctx context.Context, profileId int64) ([]entity.Application, error) {
	return r.getApplications(ctx, squirrel.Eq{"applicant_profile_id": profileId})
}

func (r *ApplicationRepo) GetTeamApplications(ctx context.Context, teamId int64) ([]entity.Application, error) {
	return r.getApplications(ctx, squirrel.Eq{"applicant_team_id": teamId})
}

func (r *ApplicationRepo) exists(ctx context.Context, where squirrel.Eq) (bool, error) {
	existsSql, args, err := r.SqlBuilder.
		Select("1").
		From("recruit_applications").
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return false, err
	}

	var one int
	err = getExecutor(ctx, r.Database).QueryRowContext(ctx, existsSql, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}

		return false, fmt.Errorf("select application existence: %w", err)
	}

	return true, nil
}

func (r *ApplicationRepo) ProfileAlreadyApplied(ctx context.Context, postId int64, profileId int64) (bool, error) {
	return r.exists(ctx, squirrel.Eq{"post_id": postId, "applicant_profile_id": profileId})
}

func (r *ApplicationRepo) TeamAlreadyApplied(ctx context.Context, postId int64, teamId int64) (bool, error) {
	return r.exists(ctx, squirrel.Eq{"post_id": postId, "applicant_team_id": teamId})
}

func (r *ApplicationRepo) CountAcceptedApplications(ctx context.Context, postId int64) (int64, error) {
	countSql, args, err := r.SqlBuilder.
		Select("COUNT(*)").
		From("recruit_applications").
		Where(squirrel.Eq{"post_id": postId, "status": entity.ApplicationStatusAccepted}).
		ToSql()
	if err != nil {
		return 0, err
	}

	var count int64
	if err := getExecutor(ctx, r.Database).QueryRowContext(ctx, countSql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count accepted applications of post %d: %w", postId, err)
	}

	return count, nil
}

func (r *ApplicationRepo) UpdateApplicationStatus(ctx context.Context, id int64, status entity.ApplicationStatus) error {
	updateStatusSql, args, err := r.SqlBuilder.
		Update("recruit_applications").
		Set("status", status).
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return err
	}

	res, err := getExecutor(ctx, r.Database).ExecContext(ctx, updateStatusSql, args...)
	if err != nil {
		return fmt.Errorf("update application %d: %w", id, err)
	}

	return requireAffected(res)
}

func (r *ApplicationRepo) DeleteApplication(ctx context.Context, id int64) error {
	deleteApplicationSql, args, err := r.SqlBuilder.
		Delete("recruit_applications").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return err
	}

	res, err := getExecutor(ctx, r.Database).ExecContext(ctx, deleteApplicationSql, args...)
	if err != nil {
		return fmt.Errorf("delete application %d: %w", id, err)
	}

	return requireAffected(res)
}
