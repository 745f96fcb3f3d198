package service

import (
	"context"
	"fmt"
	"time"

	"sportshub-recruit-api/internal/entity"
	"sportshub-recruit-api/internal/repo"

	"go.uber.org/zap"
)

// categoryPolicy holds what differs between posting categories in the application workflow.
type categoryPolicy interface {
	// checkEligibility runs before the application is stored.
	checkEligibility(ctx context.Context, post *entity.Posting, input *entity.SubmitApplicationInput) error
	// onAccepted runs inside the status update transaction when an application
	// is accepted on a post that is not COMPLETED yet.
	onAccepted(ctx context.Context, post *entity.Posting, app *entity.Application) ([]Effect, error)
}

type policyDeps struct {
	postingRepo     repo.Posting
	applicationRepo repo.Application
	matchRepo       repo.Match
	team            TeamDirectory
	log             *zap.Logger
	now             func() time.Time
}

type teamPolicy struct {
	*policyDeps
}

// A team directory failure counts as "not a member", the duplicate check still applies.
func (p teamPolicy) checkEligibility(ctx context.Context, post *entity.Posting, input *entity.SubmitApplicationInput) error {
	members, err := p.team.GetMembers(ctx, post.TeamId)
	if err != nil {
		p.log.Error("failed to load team members, assuming applicant is not a member",
			zap.Int64("team_id", post.TeamId), zap.Int64("profile_id", input.ApplicantProfileId), zap.Error(err))
	} else if isActiveMember(members, input.ApplicantProfileId) {
		return ErrAlreadyTeamMember
	}

	applied, err := p.applicationRepo.ProfileAlreadyApplied(ctx, post.Id, input.ApplicantProfileId)
	if err != nil {
		return err
	}
	if applied {
		return ErrAlreadyApplied
	}

	return nil
}

func (p teamPolicy) onAccepted(ctx context.Context, post *entity.Posting, app *entity.Application) ([]Effect, error) {
	if post.RequiredPersonnel == nil {
		p.log.Info("team post has no required personnel, recruitment stays open", zap.Int64("post_id", post.Id))
		return nil, nil
	}

	accepted, err := p.applicationRepo.CountAcceptedApplications(ctx, post.Id)
	if err != nil {
		return nil, err
	}
	if accepted < int64(*post.RequiredPersonnel) {
		return nil, nil
	}

	post.Status = entity.PostStatusCompleted
	if err := p.postingRepo.UpdatePosting(ctx, post); err != nil {
		return nil, fmt.Errorf("complete post %d: %w", post.Id, err)
	}

	apps, err := p.applicationRepo.GetAcceptedApplications(ctx, post.Id)
	if err != nil {
		return nil, err
	}

	effects := make([]Effect, 0, len(apps))
	for _, a := range apps {
		effects = append(effects, Effect{Kind: EffectAddMember, TeamId: post.TeamId, ProfileId: a.ApplicantProfileId})
	}

	return effects, nil
}

type matchPolicy struct {
	*policyDeps
}

// A team directory failure counts as "not a captain".
func (p matchPolicy) checkEligibility(ctx context.Context, post *entity.Posting, input *entity.SubmitApplicationInput) error {
	if input.ApplicantTeamId == nil {
		return ErrApplicantTeamRequired
	}
	teamId := *input.ApplicantTeamId

	members, err := p.team.GetMembers(ctx, teamId)
	if err != nil {
		p.log.Error("failed to load applicant team members, assuming applicant is not a captain",
			zap.Int64("team_id", teamId), zap.Int64("profile_id", input.ApplicantProfileId), zap.Error(err))
		return ErrNotTeamCaptain
	}
	if !isActiveCaptain(members, input.ApplicantProfileId) {
		return ErrNotTeamCaptain
	}

	applied, err := p.applicationRepo.TeamAlreadyApplied(ctx, post.Id, teamId)
	if err != nil {
		return err
	}
	if applied {
		return ErrTeamAlreadyApplied
	}

	return nil
}

func (p matchPolicy) onAccepted(ctx context.Context, post *entity.Posting, app *entity.Application) ([]Effect, error) {
	if app.ApplicantTeamId == nil {
		p.log.Warn("accepted match application has no applicant team, no match created",
			zap.Int64("post_id", post.Id), zap.Int64("application_id", app.Id))
		return nil, nil
	}
	awayTeamId := *app.ApplicantTeamId

	match := newMatchFromPosting(post, awayTeamId)
	match.CreatedAt = p.now()
	id, err := p.matchRepo.CreateMatch(ctx, match)
	if err != nil {
		return nil, fmt.Errorf("create match for post %d: %w", post.Id, err)
	}
	match.Id = id

	post.MatchId = &id
	post.Status = entity.PostStatusCompleted
	if err := p.postingRepo.UpdatePosting(ctx, post); err != nil {
		return nil, fmt.Errorf("link match %d to post %d: %w", id, post.Id, err)
	}

	return []Effect{
		notifyEffect(matchConfirmedNotification(app.ApplicantProfileId, match)),
		notifyEffect(matchConfirmedNotification(post.WriterProfileId, match)),
		{Kind: EffectAddSchedule, TeamId: post.TeamId, MatchId: id},
		{Kind: EffectAddSchedule, TeamId: awayTeamId, MatchId: id},
	}, nil
}

// openPolicy is used for MERCENARY and any category without special rules.
type openPolicy struct{}

func (openPolicy) checkEligibility(context.Context, *entity.Posting, *entity.SubmitApplicationInput) error {
	return nil
}

func (openPolicy) onAccepted(context.Context, *entity.Posting, *entity.Application) ([]Effect, error) {
	return nil, nil
}

func newPolicies(deps *policyDeps) map[entity.Category]categoryPolicy {
	return map[entity.Category]categoryPolicy{
		entity.CategoryTeam:      teamPolicy{deps},
		entity.CategoryMatch:     matchPolicy{deps},
		entity.CategoryMercenary: openPolicy{},
	}
}
