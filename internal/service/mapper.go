package service

import (
	"fmt"

	"sportshub-recruit-api/internal/entity"
)

func newApplicationNotification(post *entity.Posting) entity.Notification {
	return entity.Notification{
		ReceiverProfileId: post.WriterProfileId,
		Type:              entity.NotificationNewApplication,
		Message:           fmt.Sprintf("A new application arrived for your %s post \"%s\".", post.Category.DisplayName(), post.Title),
		RelatedType:       entity.RelatedRecruitPost,
		RelatedId:         post.Id,
	}
}

// decisionNotification tells the applicant about the decision, ok is false for statuses nobody is told about.
func decisionNotification(post *entity.Posting, app *entity.Application) (entity.Notification, bool) {
	n := entity.Notification{
		ReceiverProfileId: app.ApplicantProfileId,
		RelatedType:       entity.RelatedRecruitPost,
		RelatedId:         post.Id,
	}

	switch app.Status {
	case entity.ApplicationStatusAccepted:
		n.Type = entity.NotificationApplicationApproved
		n.Message = fmt.Sprintf("Your application to the %s post \"%s\" was accepted.", post.Category.DisplayName(), post.Title)
	case entity.ApplicationStatusRejected:
		n.Type = entity.NotificationApplicationRejected
		n.Message = fmt.Sprintf("Your application to the %s post \"%s\" was rejected.", post.Category.DisplayName(), post.Title)
	default:
		return n, false
	}

	return n, true
}

func matchConfirmedNotification(receiver int64, m *entity.Match) entity.Notification {
	return entity.Notification{
		ReceiverProfileId: receiver,
		Type:              entity.NotificationMatchConfirmed,
		Message:           fmt.Sprintf("Match confirmed: %s %s at %s.", m.DateLabel(), m.TimeLabel(), m.Venue),
		RelatedType:       entity.RelatedMatch,
		RelatedId:         m.Id,
	}
}

// matchCancelledNotification has no receiver, the dispatcher fills in the captain.
func matchCancelledNotification(m *entity.Match) entity.Notification {
	return entity.Notification{
		Type:        entity.NotificationMatchCancelled,
		Message:     fmt.Sprintf("The match on %s %s at %s was cancelled.", m.DateLabel(), m.TimeLabel(), m.Venue),
		RelatedType: entity.RelatedMatch,
		RelatedId:   m.Id,
	}
}

func newMatchFromPosting(post *entity.Posting, awayTeamId int64) *entity.Match {
	postId := post.Id

	return &entity.Match{
		MatchDate:     post.MatchDate,
		MatchTime:     post.GameTime,
		Venue:         post.Venue(),
		HomeTeamId:    post.TeamId,
		AwayTeamId:    awayTeamId,
		Status:        entity.MatchStatusScheduled,
		RecruitPostId: &postId,
	}
}
