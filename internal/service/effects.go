package service

import (
	"context"
	"fmt"

	"sportshub-recruit-api/internal/entity"

	"go.uber.org/zap"
)

type EffectKind string

const (
	EffectNotify        EffectKind = "notify"
	EffectAddMember     EffectKind = "add_member"
	EffectAddSchedule   EffectKind = "add_schedule_entry"
	EffectNotifyCaptain EffectKind = "notify_captain"
)

// Effect is a call to another service that must only happen once the
// transaction that produced it has committed.
type Effect struct {
	Kind      EffectKind
	TeamId    int64
	ProfileId int64
	MatchId   int64
	// Notification is sent as is for EffectNotify. For EffectNotifyCaptain the
	// receiver is filled in with the team captain.
	Notification entity.Notification
}

func notifyEffect(n entity.Notification) Effect {
	return Effect{Kind: EffectNotify, ProfileId: n.ReceiverProfileId, Notification: n}
}

type Dispatcher interface {
	Dispatch(ctx context.Context, effects []Effect)
}

type EffectDispatcher struct {
	team     TeamDirectory
	notifier Notifier
	log      *zap.Logger
}

func NewEffectDispatcher(team TeamDirectory, notifier Notifier, log *zap.Logger) *EffectDispatcher {
	return &EffectDispatcher{team: team, notifier: notifier, log: log}
}

// Dispatch runs every effect once, in order. A failing effect is logged and
// does not stop the ones after it.
func (d *EffectDispatcher) Dispatch(ctx context.Context, effects []Effect) {
	ctx = context.WithoutCancel(ctx)

	for _, e := range effects {
		if err := d.run(ctx, e); err != nil {
			d.log.Error("effect failed",
				zap.String("effect", string(e.Kind)),
				zap.Int64("team_id", e.TeamId),
				zap.Int64("profile_id", e.ProfileId),
				zap.Int64("match_id", e.MatchId),
				zap.Error(err))
		}
	}
}

func (d *EffectDispatcher) run(ctx context.Context, e Effect) error {
	switch e.Kind {
	case EffectNotify:
		return d.notifier.Send(ctx, e.Notification)
	case EffectAddMember:
		return d.team.AddMember(ctx, e.TeamId, e.ProfileId, entity.RoleMember)
	case EffectAddSchedule:
		return d.team.AddScheduleEntry(ctx, e.TeamId, e.MatchId)
	case EffectNotifyCaptain:
		members, err := d.team.GetMembers(ctx, e.TeamId)
		if err != nil {
			return fmt.Errorf("get members: %w", err)
		}

		captain, ok := firstActiveCaptain(members)
		if !ok {
			d.log.Info("no active captain to notify", zap.Int64("team_id", e.TeamId))
			return nil
		}

		n := e.Notification
		n.ReceiverProfileId = captain
		return d.notifier.Send(ctx, n)
	default:
		return fmt.Errorf("unknown effect kind %q", e.Kind)
	}
}

func firstActiveCaptain(members []entity.TeamMember) (int64, bool) {
	for _, m := range members {
		if m.IsActive && m.RoleInTeam == entity.RoleCaptain {
			return m.ProfileId, true
		}
	}

	return 0, false
}

func isActiveMember(members []entity.TeamMember, profileId int64) bool {
	for _, m := range members {
		if m.IsActive && m.ProfileId == profileId {
			return true
		}
	}

	return false
}

func isActiveCaptain(members []entity.TeamMember, profileId int64) bool {
	for _, m := range members {
		if m.IsActive && m.ProfileId == profileId && m.RoleInTeam == entity.RoleCaptain {
			return true
		}
	}

	return false
}
