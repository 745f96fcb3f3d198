package entity

type Category string

const (
	CategoryTeam      Category = "TEAM"
	CategoryMercenary Category = "MERCENARY"
	CategoryMatch     Category = "MATCH"
)

// DisplayName is the word used for the category in notification messages.
func (c Category) DisplayName() string {
	switch c {
	case CategoryTeam:
		return "team"
	case CategoryMercenary:
		return "mercenary"
	default:
		return "match"
	}
}

type PostStatus string

const (
	PostStatusOpen      PostStatus = "OPEN"
	PostStatusCompleted PostStatus = "COMPLETED"
	PostStatusClosed    PostStatus = "CLOSED"
	PostStatusCancelled PostStatus = "CANCELLED"
)

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "PENDING"
	ApplicationStatusAccepted ApplicationStatus = "ACCEPTED"
	ApplicationStatusRejected ApplicationStatus = "REJECTED"
)

type MatchStatus string

const (
	MatchStatusScheduled MatchStatus = "SCHEDULED"
	MatchStatusCancelled MatchStatus = "CANCELLED"
	MatchStatusCompleted MatchStatus = "COMPLETED"
)

type ReportStatus string

const (
	ReportStatusPending  ReportStatus = "PENDING"
	ReportStatusResolved ReportStatus = "RESOLVED"
	ReportStatusRejected ReportStatus = "REJECTED"
)

const DefaultReportSeverity = "MEDIUM"
