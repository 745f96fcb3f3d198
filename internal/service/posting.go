package service

import (
	"context"
	"errors"
	"time"

	"sportshub-recruit-api/internal/entity"
	"sportshub-recruit-api/internal/repo"
	"sportshub-recruit-api/internal/repo/repo_errors"
)

type PostingService struct {
	postingRepo     repo.Posting
	applicationRepo repo.Application
	names           *NameResolver
	now             func() time.Time
}

func NewPostingService(repos *repo.Repositories, names *NameResolver) *PostingService {
	return &PostingService{
		postingRepo:     repos.Posting,
		applicationRepo: repos.Application,
		names:           names,
		now:             time.Now,
	}
}

// withStats adds the accepted count and the display names. Names are best effort.
func (s *PostingService) withStats(ctx context.Context, p *entity.Posting) (*entity.PostingOutputModel, error) {
	accepted, err := s.applicationRepo.CountAcceptedApplications(ctx, p.Id)
	if err != nil {
		return nil, err
	}

	return &entity.PostingOutputModel{
		Posting:       *p,
		AcceptedCount: accepted,
		AuthorName:    s.names.ProfileName(ctx, p.WriterProfileId),
		TeamName:      s.names.TeamName(ctx, p.TeamId),
	}, nil
}

func (s *PostingService) getPosting(ctx context.Context, id int64) (*entity.Posting, error) {
	p, err := s.postingRepo.GetPostingById(ctx, id)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrPostNotFound
		}

		return nil, err
	}

	return p, nil
}

func (s *PostingService) CreatePosting(ctx context.Context, p *entity.Posting) (*entity.PostingOutputModel, error) {
	if p.Status == "" {
		p.Status = entity.PostStatusOpen
	}
	p.MatchId = nil
	p.CreatedAt = s.now().UTC()

	id, err := s.postingRepo.CreatePosting(ctx, p)
	if err != nil {
		return nil, err
	}
	p.Id = id

	return s.withStats(ctx, p)
}

func (s *PostingService) GetPosting(ctx context.Context, id int64) (*entity.PostingOutputModel, error) {
	p, err := s.getPosting(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.withStats(ctx, p)
}

func (s *PostingService) GetPostings(ctx context.Context, filter *entity.PostingFilter, pg *entity.PaginationInput) ([]entity.PostingOutputModel, error) {
	postings, err := s.postingRepo.GetPostings(ctx, filter, pg)
	if err != nil {
		return nil, err
	}

	out := make([]entity.PostingOutputModel, 0, len(postings))
	for i := range postings {
		model, err := s.withStats(ctx, &postings[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *model)
	}

	return out, nil
}

func (s *PostingService) UpdatePosting(ctx context.Context, id int64, patch *entity.PostingPatch) (*entity.PostingOutputModel, error) {
	if patch.IsEmpty() {
		return nil, ErrNoNewChanges
	}

	p, err := s.getPosting(ctx, id)
	if err != nil {
		return nil, err
	}

	// COMPLETED is final, reopening would run quota closure again
	if p.Status == entity.PostStatusCompleted && patch.Status != nil && *patch.Status != entity.PostStatusCompleted {
		return nil, ErrPostCompleted
	}

	patch.Apply(p)
	if err := s.postingRepo.UpdatePosting(ctx, p); err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrPostNotFound
		}

		return nil, err
	}

	return s.withStats(ctx, p)
}

func (s *PostingService) DeletePosting(ctx context.Context, id int64) error {
	err := s.postingRepo.DeletePosting(ctx, id)
	if errors.Is(err, repo_errors.ErrNotFound) {
		return ErrPostNotFound
	}

	return err
}
