package service

import (
	"context"
	"errors"
	"time"

	"sportshub-recruit-api/internal/entity"
	"sportshub-recruit-api/internal/repo"
	"sportshub-recruit-api/internal/repo/repo_errors"
	"sportshub-recruit-api/internal/uow"
)

type MatchService struct {
	matchRepo  repo.Match
	uow        uow.UnitOfWork
	dispatcher Dispatcher
	now        func() time.Time
}

func NewMatchService(repos *repo.Repositories, dispatcher Dispatcher) *MatchService {
	return &MatchService{
		matchRepo:  repos.Match,
		uow:        repos.UnitOfWork,
		dispatcher: dispatcher,
		now:        time.Now,
	}
}

func (s *MatchService) CreateMatch(ctx context.Context, m *entity.Match) (*entity.Match, error) {
	if m.Status == "" {
		m.Status = entity.MatchStatusScheduled
	}
	m.CreatedAt = s.now().UTC()
	m.UpdatedAt = nil

	id, err := s.matchRepo.CreateMatch(ctx, m)
	if err != nil {
		return nil, err
	}
	m.Id = id

	return m, nil
}

func (s *MatchService) GetMatch(ctx context.Context, id int64) (*entity.Match, error) {
	m, err := s.matchRepo.GetMatchById(ctx, id)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrMatchNotFound
		}

		return nil, err
	}

	return m, nil
}

func (s *MatchService) GetMatches(ctx context.Context, filter *entity.MatchFilter, pg *entity.PaginationInput) ([]entity.Match, error) {
	return s.matchRepo.GetMatches(ctx, filter, pg)
}

// UpdateMatch tells the captain of both teams when the match becomes CANCELLED.
func (s *MatchService) UpdateMatch(ctx context.Context, id int64, patch *entity.MatchPatch) (*entity.Match, error) {
	var m *entity.Match
	var effects []Effect

	err := s.uow.Do(ctx, func(ctx context.Context) error {
		var err error
		m, err = s.GetMatch(ctx, id)
		if err != nil {
			return err
		}

		wasCancelled := m.Status == entity.MatchStatusCancelled
		patch.Apply(m)
		now := s.now().UTC()
		m.UpdatedAt = &now

		if err := s.matchRepo.UpdateMatch(ctx, m); err != nil {
			return err
		}

		if !wasCancelled && m.Status == entity.MatchStatusCancelled {
			n := matchCancelledNotification(m)
			effects = append(effects,
				Effect{Kind: EffectNotifyCaptain, TeamId: m.HomeTeamId, MatchId: m.Id, Notification: n},
				Effect{Kind: EffectNotifyCaptain, TeamId: m.AwayTeamId, MatchId: m.Id, Notification: n},
			)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.dispatcher.Dispatch(ctx, effects)

	return m, nil
}

func (s *MatchService) CancelMatch(ctx context.Context, id int64) (*entity.Match, error) {
	status := entity.MatchStatusCancelled

	return s.UpdateMatch(ctx, id, &entity.MatchPatch{Status: &status})
}

func (s *MatchService) CompleteMatch(ctx context.Context, id int64, homeScore int, awayScore int) (*entity.Match, error) {
	status := entity.MatchStatusCompleted

	return s.UpdateMatch(ctx, id, &entity.MatchPatch{Status: &status, HomeScore: &homeScore, AwayScore: &awayScore})
}

func (s *MatchService) DeleteMatch(ctx context.Context, id int64) error {
	err := s.matchRepo.DeleteMatch(ctx, id)
	if errors.Is(err, repo_errors.ErrNotFound) {
		return ErrMatchNotFound
	}

	return err
}
