package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sportshub-recruit-api/internal/entity"
	"sportshub-recruit-api/internal/service"

	"github.com/labstack/echo"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type diagnosticsMock struct{ mock.Mock }

func (m *diagnosticsMock) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type postingMock struct{ mock.Mock }

func (m *postingMock) CreatePosting(ctx context.Context, p *entity.Posting) (*entity.PostingOutputModel, error) {
	args := m.Called(ctx, p)
	out, _ := args.Get(0).(*entity.PostingOutputModel)
	return out, args.Error(1)
}

func (m *postingMock) GetPosting(ctx context.Context, id int64) (*entity.PostingOutputModel, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*entity.PostingOutputModel)
	return out, args.Error(1)
}

func (m *postingMock) GetPostings(ctx context.Context, filter *entity.PostingFilter, pg *entity.PaginationInput) ([]entity.PostingOutputModel, error) {
	args := m.Called(ctx, filter, pg)
	out, _ := args.Get(0).([]entity.PostingOutputModel)
	return out, args.Error(1)
}

func (m *postingMock) UpdatePosting(ctx context.Context, id int64, patch *entity.PostingPatch) (*entity.PostingOutputModel, error) {
	args := m.Called(ctx, id, patch)
	out, _ := args.Get(0).(*entity.PostingOutputModel)
	return out, args.Error(1)
}

func (m *postingMock) DeletePosting(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type applicationMock struct{ mock.Mock }

func (m *applicationMock) Submit(ctx context.Context, input *entity.SubmitApplicationInput) (*entity.Application, error) {
	args := m.Called(ctx, input)
	out, _ := args.Get(0).(*entity.Application)
	return out, args.Error(1)
}

func (m *applicationMock) UpdateStatus(ctx context.Context, postId int64, applicationId int64, status entity.ApplicationStatus) (*entity.Application, error) {
	args := m.Called(ctx, postId, applicationId, status)
	out, _ := args.Get(0).(*entity.Application)
	return out, args.Error(1)
}

func (m *applicationMock) Delete(ctx context.Context, postId int64, applicationId int64) error {
	return m.Called(ctx, postId, applicationId).Error(0)
}

func (m *applicationMock) GetPostApplications(ctx context.Context, postId int64) ([]entity.Application, error) {
	args := m.Called(ctx, postId)
	out, _ := args.Get(0).([]entity.Application)
	return out, args.Error(1)
}

func (m *applicationMock) GetProfileApplications(ctx context.Context, profileId int64) ([]entity.Application, error) {
	args := m.Called(ctx, profileId)
	out, _ := args.Get(0).([]entity.Application)
	return out, args.Error(1)
}

func (m *applicationMock) GetTeamApplications(ctx context.Context, teamId int64) ([]entity.Application, error) {
	args := m.Called(ctx, teamId)
	out, _ := args.Get(0).([]entity.Application)
	return out, args.Error(1)
}

type matchMock struct{ mock.Mock }

func (m *matchMock) CreateMatch(ctx context.Context, in *entity.Match) (*entity.Match, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*entity.Match)
	return out, args.Error(1)
}

func (m *matchMock) GetMatch(ctx context.Context, id int64) (*entity.Match, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*entity.Match)
	return out, args.Error(1)
}

func (m *matchMock) GetMatches(ctx context.Context, filter *entity.MatchFilter, pg *entity.PaginationInput) ([]entity.Match, error) {
	args := m.Called(ctx, filter, pg)
	out, _ := args.Get(0).([]entity.Match)
	return out, args.Error(1)
}

func (m *matchMock) UpdateMatch(ctx context.Context, id int64, patch *entity.MatchPatch) (*entity.Match, error) {
	args := m.Called(ctx, id, patch)
	out, _ := args.Get(0).(*entity.Match)
	return out, args.Error(1)
}

func (m *matchMock) CancelMatch(ctx context.Context, id int64) (*entity.Match, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*entity.Match)
	return out, args.Error(1)
}

func (m *matchMock) CompleteMatch(ctx context.Context, id int64, homeScore int, awayScore int) (*entity.Match, error) {
	args := m.Called(ctx, id, homeScore, awayScore)
	out, _ := args.Get(0).(*entity.Match)
	return out, args.Error(1)
}

func (m *matchMock) DeleteMatch(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type reportMock struct{ mock.Mock }

func (m *reportMock) CreateReport(ctx context.Context, r *entity.Report) (*entity.Report, error) {
	args := m.Called(ctx, r)
	out, _ := args.Get(0).(*entity.Report)
	return out, args.Error(1)
}

func (m *reportMock) GetReport(ctx context.Context, id int64) (*entity.Report, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*entity.Report)
	return out, args.Error(1)
}

func (m *reportMock) GetReports(ctx context.Context, filter *entity.ReportFilter, pg *entity.PaginationInput) ([]entity.Report, error) {
	args := m.Called(ctx, filter, pg)
	out, _ := args.Get(0).([]entity.Report)
	return out, args.Error(1)
}

func (m *reportMock) UpdateReport(ctx context.Context, id int64, patch *entity.ReportPatch) (*entity.Report, error) {
	args := m.Called(ctx, id, patch)
	out, _ := args.Get(0).(*entity.Report)
	return out, args.Error(1)
}

func (m *reportMock) ResolveReport(ctx context.Context, id int64, action string, note string) (*entity.Report, error) {
	args := m.Called(ctx, id, action, note)
	out, _ := args.Get(0).(*entity.Report)
	return out, args.Error(1)
}

func (m *reportMock) RejectReport(ctx context.Context, id int64, reason string) (*entity.Report, error) {
	args := m.Called(ctx, id, reason)
	out, _ := args.Get(0).(*entity.Report)
	return out, args.Error(1)
}

func (m *reportMock) DeleteReport(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type server struct {
	echo        *echo.Echo
	diagnostics *diagnosticsMock
	posting     *postingMock
	application *applicationMock
	match       *matchMock
	report      *reportMock
}

func newServer(t *testing.T) *server {
	t.Helper()

	s := &server{
		echo:        echo.New(),
		diagnostics: new(diagnosticsMock),
		posting:     new(postingMock),
		application: new(applicationMock),
		match:       new(matchMock),
		report:      new(reportMock),
	}
	SetupRoutesHandlers(s.echo, &service.Services{
		Diagnostics: s.diagnostics,
		Posting:     s.posting,
		Application: s.application,
		Match:       s.match,
		Report:      s.report,
	}, zap.NewNop())

	return s
}

func (s *server) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	return rec
}
