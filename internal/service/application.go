package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"sportshub-recruit-api/internal/entity"
	"sportshub-recruit-api/internal/repo"
	"sportshub-recruit-api/internal/repo/repo_errors"
	"sportshub-recruit-api/internal/uow"

	"go.uber.org/zap"
)

// ApplicationService is the application workflow engine.
type ApplicationService struct {
	postingRepo     repo.Posting
	applicationRepo repo.Application
	uow             uow.UnitOfWork
	dispatcher      Dispatcher
	policies        map[entity.Category]categoryPolicy
	log             *zap.Logger
	now             func() time.Time
}

func NewApplicationService(repos *repo.Repositories, team TeamDirectory, dispatcher Dispatcher, log *zap.Logger) *ApplicationService {
	s := &ApplicationService{
		postingRepo:     repos.Posting,
		applicationRepo: repos.Application,
		uow:             repos.UnitOfWork,
		dispatcher:      dispatcher,
		log:             log,
		now:             time.Now,
	}
	s.policies = newPolicies(&policyDeps{
		postingRepo:     repos.Posting,
		applicationRepo: repos.Application,
		matchRepo:       repos.Match,
		team:            team,
		log:             log,
		now:             func() time.Time { return s.now().UTC() },
	})

	return s
}

func (s *ApplicationService) policyFor(c entity.Category) categoryPolicy {
	if p, ok := s.policies[c]; ok {
		return p
	}

	return openPolicy{}
}

func (s *ApplicationService) getPost(ctx context.Context, postId int64) (*entity.Posting, error) {
	post, err := s.postingRepo.GetPostingById(ctx, postId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrPostNotFound
		}

		return nil, err
	}

	return post, nil
}

// Submit checks eligibility and stores the application in one transaction.
// The posting row is locked so duplicate checks for the same post do not interleave.
func (s *ApplicationService) Submit(ctx context.Context, input *entity.SubmitApplicationInput) (*entity.Application, error) {
	var app *entity.Application
	var post *entity.Posting

	err := s.uow.Do(ctx, func(ctx context.Context) error {
		var err error
		post, err = s.postingRepo.GetPostingByIdForUpdate(ctx, input.PostId)
		if err != nil {
			if errors.Is(err, repo_errors.ErrNotFound) {
				return ErrPostNotFound
			}

			return err
		}

		if err := s.policyFor(post.Category).checkEligibility(ctx, post, input); err != nil {
			return err
		}

		status := entity.ApplicationStatusPending
		if st := strings.TrimSpace(input.Status); st != "" {
			status = entity.ApplicationStatus(strings.ToUpper(st))
		}

		app = &entity.Application{
			PostId:             post.Id,
			ApplicantProfileId: input.ApplicantProfileId,
			ApplicantTeamId:    input.ApplicantTeamId,
			Description:        input.Description,
			Status:             status,
			ApplicationDate:    s.now().UTC(),
		}

		id, err := s.applicationRepo.CreateApplication(ctx, app)
		if err != nil {
			return err
		}
		app.Id = id

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.dispatcher.Dispatch(ctx, []Effect{notifyEffect(newApplicationNotification(post))})

	return app, nil
}

// UpdateStatus stores the new status and, on acceptance, runs the category
// rules in the same transaction. Calls to other services happen after commit.
func (s *ApplicationService) UpdateStatus(ctx context.Context, postId int64, applicationId int64, status entity.ApplicationStatus) (*entity.Application, error) {
	var app *entity.Application
	var effects []Effect

	err := s.uow.Do(ctx, func(ctx context.Context) error {
		var err error
		app, err = s.applicationRepo.GetApplicationById(ctx, applicationId)
		if err != nil {
			if errors.Is(err, repo_errors.ErrNotFound) {
				return ErrApplicationNotFound
			}

			return err
		}
		if app.PostId != postId {
			return ErrApplicationNotFound
		}

		post, err := s.postingRepo.GetPostingByIdForUpdate(ctx, postId)
		if err != nil {
			if errors.Is(err, repo_errors.ErrNotFound) {
				return ErrPostNotFound
			}

			return err
		}

		if err := s.applicationRepo.UpdateApplicationStatus(ctx, app.Id, status); err != nil {
			return err
		}
		app.Status = status

		if n, ok := decisionNotification(post, app); ok {
			effects = append(effects, notifyEffect(n))
		}

		if status != entity.ApplicationStatusAccepted || post.Status == entity.PostStatusCompleted {
			return nil
		}

		more, err := s.policyFor(post.Category).onAccepted(ctx, post, app)
		if err != nil {
			return err
		}
		effects = append(effects, more...)

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.dispatcher.Dispatch(ctx, effects)

	return app, nil
}

// Delete is a no-op for unknown applications and for applications of another post.
func (s *ApplicationService) Delete(ctx context.Context, postId int64, applicationId int64) error {
	app, err := s.applicationRepo.GetApplicationById(ctx, applicationId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil
		}

		return err
	}

	if app.PostId != postId {
		s.log.Debug("application belongs to another post, nothing deleted",
			zap.Int64("post_id", postId), zap.Int64("application_id", applicationId))
		return nil
	}

	err = s.applicationRepo.DeleteApplication(ctx, applicationId)
	if errors.Is(err, repo_errors.ErrNotFound) {
		return nil
	}

	return err
}

func (s *ApplicationService) GetPostApplications(ctx context.Context, postId int64) ([]entity.Application, error) {
	if _, err := s.getPost(ctx, postId); err != nil {
		return nil, err
	}

	return s.applicationRepo.GetPostApplications(ctx, postId)
}

func (s *ApplicationService) GetProfileApplications(ctx context.Context, profileId int64) ([]entity.Application, error) {
	return s.applicationRepo.GetProfileApplications(ctx, profileId)
}

func (s *ApplicationService) GetTeamApplications(ctx context.Context, teamId int64) ([]entity.Application, error) {
	return s.applicationRepo.GetTeamApplications(ctx, teamId)
}
