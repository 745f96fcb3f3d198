package entity

type TeamRole string

const (
	RoleCaptain TeamRole = "CAPTAIN"
	RoleMember  TeamRole = "MEMBER"
)

// TeamMember as reported by the team service.
type TeamMember struct {
	ProfileId  int64
	RoleInTeam TeamRole
	IsActive   bool
}

const ScheduleEventMatch = "MATCH"

type NotificationType string

const (
	NotificationNewApplication      NotificationType = "NEW_APPLICATION"
	NotificationApplicationApproved NotificationType = "APPLICATION_APPROVED"
	NotificationApplicationRejected NotificationType = "APPLICATION_REJECTED"
	NotificationMatchConfirmed      NotificationType = "MATCH_CONFIRMED"
	NotificationMatchCancelled      NotificationType = "MATCH_CANCELLED"
)

const (
	RelatedRecruitPost = "RECRUIT_POST"
	RelatedMatch       = "MATCH"
)

type Notification struct {
	ReceiverProfileId int64
	Type              NotificationType
	Message           string
	RelatedType       string
	RelatedId         int64
}
