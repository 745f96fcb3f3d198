package service

import (
	"context"
	"time"

	"sportshub-recruit-api/internal/entity"
	"sportshub-recruit-api/internal/repo"
	"sportshub-recruit-api/pkg/redis"

	"go.uber.org/zap"
)

// TeamDirectory is the team service as seen from this module.
type TeamDirectory interface {
	GetMembers(ctx context.Context, teamId int64) ([]entity.TeamMember, error)
	AddMember(ctx context.Context, teamId int64, profileId int64, role entity.TeamRole) error
	AddScheduleEntry(ctx context.Context, teamId int64, matchId int64) error
}

type Notifier interface {
	Send(ctx context.Context, n entity.Notification) error
}

type Diagnostics interface {
	Ping(ctx context.Context) error
}

type Posting interface {
	CreatePosting(ctx context.Context, p *entity.Posting) (*entity.PostingOutputModel, error)
	GetPosting(ctx context.Context, id int64) (*entity.PostingOutputModel, error)
	GetPostings(ctx context.Context, filter *entity.PostingFilter, pg *entity.PaginationInput) ([]entity.PostingOutputModel, error)
	UpdatePosting(ctx context.Context, id int64, patch *entity.PostingPatch) (*entity.PostingOutputModel, error)
	DeletePosting(ctx context.Context, id int64) error
}

type Application interface {
	Submit(ctx context.Context, input *entity.SubmitApplicationInput) (*entity.Application, error)
	UpdateStatus(ctx context.Context, postId int64, applicationId int64, status entity.ApplicationStatus) (*entity.Application, error)
	Delete(ctx context.Context, postId int64, applicationId int64) error

	GetPostApplications(ctx context.Context, postId int64) ([]entity.Application, error)
	GetProfileApplications(ctx context.Context, profileId int64) ([]entity.Application, error)
	GetTeamApplications(ctx context.Context, teamId int64) ([]entity.Application, error)
}

type Match interface {
	CreateMatch(ctx context.Context, m *entity.Match) (*entity.Match, error)
	GetMatch(ctx context.Context, id int64) (*entity.Match, error)
	GetMatches(ctx context.Context, filter *entity.MatchFilter, pg *entity.PaginationInput) ([]entity.Match, error)
	UpdateMatch(ctx context.Context, id int64, patch *entity.MatchPatch) (*entity.Match, error)
	CancelMatch(ctx context.Context, id int64) (*entity.Match, error)
	CompleteMatch(ctx context.Context, id int64, homeScore int, awayScore int) (*entity.Match, error)
	DeleteMatch(ctx context.Context, id int64) error
}

type Report interface {
	CreateReport(ctx context.Context, r *entity.Report) (*entity.Report, error)
	GetReport(ctx context.Context, id int64) (*entity.Report, error)
	GetReports(ctx context.Context, filter *entity.ReportFilter, pg *entity.PaginationInput) ([]entity.Report, error)
	UpdateReport(ctx context.Context, id int64, patch *entity.ReportPatch) (*entity.Report, error)
	ResolveReport(ctx context.Context, id int64, action string, note string) (*entity.Report, error)
	RejectReport(ctx context.Context, id int64, reason string) (*entity.Report, error)
	DeleteReport(ctx context.Context, id int64) error
}

type Services struct {
	Diagnostics Diagnostics
	Posting     Posting
	Application Application
	Match       Match
	Report      Report
}

type Dependencies struct {
	Repos    *repo.Repositories
	Team     TeamDirectory
	Notifier Notifier
	// NameCache may be nil, names are then read from the database every time.
	NameCache *redis.Client
	NameTTL   time.Duration
	Log       *zap.Logger
}

func NewServices(deps Dependencies) *Services {
	dispatcher := NewEffectDispatcher(deps.Team, deps.Notifier, deps.Log)
	names := NewNameResolver(deps.Repos.Lookup, deps.NameCache, deps.NameTTL, deps.Log)

	return &Services{
		Diagnostics: NewDiagnosticsService(deps.Repos),
		Posting:     NewPostingService(deps.Repos, names),
		Application: NewApplicationService(deps.Repos, deps.Team, dispatcher, deps.Log),
		Match:       NewMatchService(deps.Repos, dispatcher),
		Report:      NewReportService(deps.Repos),
	}
}
