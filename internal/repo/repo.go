package repo

import (
	"context"

	"sportshub-recruit-api/internal/entity"
	"sportshub-recruit-api/internal/repo/pgdb"
	"sportshub-recruit-api/internal/uow"
	"sportshub-recruit-api/pkg/postgres"
)

type Diagnostics interface {
	Ping(ctx context.Context) error
}

type Posting interface {
	CreatePosting(ctx context.Context, p *entity.Posting) (int64, error)
	GetPostingById(ctx context.Context, id int64) (*entity.Posting, error)
	GetPostingByIdForUpdate(ctx context.Context, id int64) (*entity.Posting, error)
	GetPostings(ctx context.Context, filter *entity.PostingFilter, pg *entity.PaginationInput) ([]entity.Posting, error)
	UpdatePosting(ctx context.Context, p *entity.Posting) error
	DeletePosting(ctx context.Context, id int64) error
}

type Application interface {
	CreateApplication(ctx context.Context, a *entity.Application) (int64, error)
	GetApplicationById(ctx context.Context, id int64) (*entity.Application, error)
	GetPostApplications(ctx context.Context, postId int64) ([]entity.Application, error)
	GetAcceptedApplications(ctx context.Context, postId int64) ([]entity.Application, error)
	GetProfileApplications(ctx context.Context, profileId int64) ([]entity.Application, error)
	GetTeamApplications(ctx context.Context, teamId int64) ([]entity.Application, error)
	ProfileAlreadyApplied(ctx context.Context, postId int64, profileId int64) (bool, error)
	TeamAlreadyApplied(ctx context.Context, postId int64, teamId int64) (bool, error)
	CountAcceptedApplications(ctx context.Context, postId int64) (int64, error)
	UpdateApplicationStatus(ctx context.Context, id int64, status entity.ApplicationStatus) error
	DeleteApplication(ctx context.Context, id int64) error
}

type Match interface {
	CreateMatch(ctx context.Context, m *entity.Match) (int64, error)
	GetMatchById(ctx context.Context, id int64) (*entity.Match, error)
	GetMatches(ctx context.Context, filter *entity.MatchFilter, pg *entity.PaginationInput) ([]entity.Match, error)
	UpdateMatch(ctx context.Context, m *entity.Match) error
	DeleteMatch(ctx context.Context, id int64) error
}

type Report interface {
	CreateReport(ctx context.Context, r *entity.Report) (int64, error)
	GetReportById(ctx context.Context, id int64) (*entity.Report, error)
	GetReports(ctx context.Context, filter *entity.ReportFilter, pg *entity.PaginationInput) ([]entity.Report, error)
	UpdateReport(ctx context.Context, r *entity.Report) error
	DeleteReport(ctx context.Context, id int64) error
}

type Lookup interface {
	GetProfileName(ctx context.Context, profileId int64) (string, error)
	GetTeamName(ctx context.Context, teamId int64) (string, error)
}

type Repositories struct {
	Diagnostics
	Posting
	Application
	Match
	Report
	Lookup
	uow.UnitOfWork
}

func NewRepositories(p *postgres.Postgres) *Repositories {
	return &Repositories{
		Diagnostics: pgdb.NewDiagnosticsRepo(p),
		Posting:     pgdb.NewPostingRepo(p),
		Application: pgdb.NewApplicationRepo(p),
		Match:       pgdb.NewMatchRepo(p),
		Report:      pgdb.NewReportRepo(p),
		Lookup:      pgdb.NewLookupRepo(p),
		UnitOfWork:  pgdb.NewTxManager(p),
	}
}
