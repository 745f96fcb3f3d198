package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sportshub-recruit-api/internal/entity"
	"sportshub-recruit-api/internal/repo"
	"sportshub-recruit-api/internal/repo/repo_errors"
)

type ReportService struct {
	reportRepo repo.Report
	now        func() time.Time
}

func NewReportService(repos *repo.Repositories) *ReportService {
	return &ReportService{reportRepo: repos.Report, now: time.Now}
}

func (s *ReportService) CreateReport(ctx context.Context, r *entity.Report) (*entity.Report, error) {
	if r.Severity == "" {
		r.Severity = entity.DefaultReportSeverity
	}
	if r.Status == "" {
		r.Status = entity.ReportStatusPending
	}
	r.CreatedAt = s.now().UTC()

	id, err := s.reportRepo.CreateReport(ctx, r)
	if err != nil {
		return nil, err
	}
	r.Id = id

	return r, nil
}

func (s *ReportService) GetReport(ctx context.Context, id int64) (*entity.Report, error) {
	r, err := s.reportRepo.GetReportById(ctx, id)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrReportNotFound
		}

		return nil, err
	}

	return r, nil
}

func (s *ReportService) GetReports(ctx context.Context, filter *entity.ReportFilter, pg *entity.PaginationInput) ([]entity.Report, error) {
	return s.reportRepo.GetReports(ctx, filter, pg)
}

func (s *ReportService) UpdateReport(ctx context.Context, id int64, patch *entity.ReportPatch) (*entity.Report, error) {
	r, err := s.GetReport(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(r)
	now := s.now().UTC()
	r.UpdatedAt = &now

	if err := s.reportRepo.UpdateReport(ctx, r); err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrReportNotFound
		}

		return nil, err
	}

	return r, nil
}

func (s *ReportService) ResolveReport(ctx context.Context, id int64, action string, note string) (*entity.Report, error) {
	status := entity.ReportStatusResolved
	resolution := fmt.Sprintf("Action: %s, Note: %s", action, note)
	now := s.now().UTC()

	return s.UpdateReport(ctx, id, &entity.ReportPatch{Status: &status, Resolution: &resolution, ResolvedAt: &now})
}

func (s *ReportService) RejectReport(ctx context.Context, id int64, reason string) (*entity.Report, error) {
	status := entity.ReportStatusRejected
	now := s.now().UTC()

	return s.UpdateReport(ctx, id, &entity.ReportPatch{Status: &status, Resolution: &reason, ResolvedAt: &now})
}

func (s *ReportService) DeleteReport(ctx context.Context, id int64) error {
	err := s.reportRepo.DeleteReport(ctx, id)
	if errors.Is(err, repo_errors.ErrNotFound) {
		return ErrReportNotFound
	}

	return err
}
