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

var reportColumns = []string{
	"id", "report_type", "target_type", "target_id", "reporter_id", "reported_id", "reason", "category",
	"description", "severity", "status", "assigned_admin_id", "resolution", "resolved_at", "created_at", "updated_at",
}

type ReportRepo struct {
	*postgres.Postgres
}

func NewReportRepo(pgdb *postgres.Postgres) *ReportRepo {
	return &ReportRepo{pgdb}
}

func scanReport(row interface{ Scan(dest ...any) error }) (*entity.Report, error) {
	var rp entity.Report
	err := row.Scan(&rp.Id, &rp.ReportType, &rp.TargetType, &rp.TargetId, &rp.ReporterId, &rp.ReportedId,
		&rp.Reason, &rp.Category, &rp.Description, &rp.Severity, &rp.Status, &rp.AssignedAdminId,
		&rp.Resolution, &rp.ResolvedAt, &rp.CreatedAt, &rp.UpdatedAt)

	return &rp, err
}

func (r *ReportRepo) CreateReport(ctx context.Context, rp *entity.Report) (int64, error) {
	createReportSql, args, err := r.SqlBuilder.
		Insert("reports").
		Columns(reportColumns[1:]...).
		Values(rp.ReportType, rp.TargetType, rp.TargetId, rp.ReporterId, rp.ReportedId, rp.Reason, rp.Category,
			rp.Description, rp.Severity, rp.Status, rp.AssignedAdminId, rp.Resolution, rp.ResolvedAt,
			rp.CreatedAt, rp.UpdatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := getExecutor(ctx, r.Database).QueryRowContext(ctx, createReportSql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert report: %w", err)
	}

	return id, nil
}

func (r *ReportRepo) GetReportById(ctx context.Context, id int64) (*entity.Report, error) {
	getReportSql, args, err := r.SqlBuilder.
		Select(reportColumns...).
		From("reports").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return nil, err
	}

	rp, err := scanReport(getExecutor(ctx, r.Database).QueryRowContext(ctx, getReportSql, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, fmt.Errorf("select report %d: %w", id, err)
	}

	return rp, nil
}

func (r *ReportRepo) GetReports(ctx context.Context, filter *entity.ReportFilter, pg *entity.PaginationInput) ([]entity.Report, error) {
	q := r.SqlBuilder.
		Select(reportColumns...).
		From("reports")

	if filter != nil {
		if filter.Status != "" {
			q = q.Where(squirrel.Eq{"status": filter.Status})
		}
		if filter.Severity != "" {
			q = q.Where(squirrel.Eq{"severity": filter.Severity})
		}
		if filter.ReporterId != 0 {
			q = q.Where(squirrel.Eq{"reporter_id": filter.ReporterId})
		}
		if filter.ReportedId != 0 {
			q = q.Where(squirrel.Eq{"reported_id": filter.ReportedId})
		}
	}

	getReportsSql, args, err := q.
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(pg.Limit)).
		Offset(uint64(pg.Offset)).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := getExecutor(ctx, r.Database).QueryContext(ctx, getReportsSql, args...)
	if err != nil {
		return nil, fmt.Errorf("select reports: %w", err)
	}
	defer rows.Close()

	reports := make([]entity.Report, 0)
	for rows.Next() {
		rp, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, *rp)
	}

	return reports, rows.Err()
}

func (r *ReportRepo) UpdateReport(ctx context.Context, rp *entity.Report) error {
	updateReportSql, args, err := r.SqlBuilder.
		Update("reports").
		SetMap(map[string]interface{}{
			"status":            rp.Status,
			"severity":          rp.Severity,
			"assigned_admin_id": rp.AssignedAdminId,
			"resolution":        rp.Resolution,
			"resolved_at":       rp.ResolvedAt,
			"updated_at":        rp.UpdatedAt,
		}).
		Where("id = ?", rp.Id).
		ToSql()
	if err != nil {
		return err
	}

	res, err := getExecutor(ctx, r.Database).ExecContext(ctx, updateReportSql, args...)
	if err != nil {
		return fmt.Errorf("update report %d: %w", rp.Id, err)
	}

	return requireAffected(res)
}

func (r *ReportRepo) DeleteReport(ctx context.Context, id int64) error {
	deleteReportSql, args, err := r.SqlBuilder.
		Delete("reports").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return err
	}

	res, err := getExecutor(ctx, r.Database).ExecContext(ctx, deleteReportSql, args...)
	if err != nil {
		return fmt.Errorf("delete report %d: %w", id, err)
	}

	return requireAffected(res)
}
