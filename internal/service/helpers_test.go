package service

import (
	"context"
	"testing"
	"time"

	"sportshub-recruit-api/internal/entity"
	"sportshub-recruit-api/internal/repo"
	"sportshub-recruit-api/internal/repo/pgdb/pgdbtest"
	"sportshub-recruit-api/pkg/postgres"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type teamMock struct {
	mock.Mock
}

func (m *teamMock) GetMembers(ctx context.Context, teamId int64) ([]entity.TeamMember, error) {
	args := m.Called(ctx, teamId)
	members, _ := args.Get(0).([]entity.TeamMember)
	return members, args.Error(1)
}

func (m *teamMock) AddMember(ctx context.Context, teamId int64, profileId int64, role entity.TeamRole) error {
	return m.Called(ctx, teamId, profileId, role).Error(0)
}

func (m *teamMock) AddScheduleEntry(ctx context.Context, teamId int64, matchId int64) error {
	return m.Called(ctx, teamId, matchId).Error(0)
}

type notifierMock struct {
	mock.Mock
}

func (m *notifierMock) Send(ctx context.Context, n entity.Notification) error {
	return m.Called(ctx, n).Error(0)
}

func (m *notifierMock) sent() []entity.Notification {
	out := make([]entity.Notification, 0)
	for _, c := range m.Calls {
		if c.Method == "Send" {
			out = append(out, c.Arguments.Get(1).(entity.Notification))
		}
	}
	return out
}

func (m *notifierMock) sentOfType(t entity.NotificationType) []entity.Notification {
	out := make([]entity.Notification, 0)
	for _, n := range m.sent() {
		if n.Type == t {
			out = append(out, n)
		}
	}
	return out
}

type fixture struct {
	db       *postgres.Postgres
	repos    *repo.Repositories
	team     *teamMock
	notifier *notifierMock
	services *Services
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := pgdbtest.NewDB(t)
	repos := repo.NewRepositories(db)
	team := new(teamMock)
	notifier := new(notifierMock)

	return &fixture{
		db:       db,
		repos:    repos,
		team:     team,
		notifier: notifier,
		services: NewServices(Dependencies{
			Repos:    repos,
			Team:     team,
			Notifier: notifier,
			Log:      zap.NewNop(),
		}),
	}
}

func (f *fixture) createPost(t *testing.T, p *entity.Posting) *entity.Posting {
	t.Helper()

	out, err := f.services.Posting.CreatePosting(context.Background(), p)
	require.NoError(t, err)

	return &out.Posting
}

func (f *fixture) reloadPost(t *testing.T, id int64) *entity.Posting {
	t.Helper()

	p, err := f.repos.Posting.GetPostingById(context.Background(), id)
	require.NoError(t, err)

	return p
}

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

func matchDay() *time.Time {
	d := time.Date(2026, 11, 7, 0, 0, 0, 0, time.UTC)
	return &d
}
