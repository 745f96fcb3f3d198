package entity

import "time"

// db model
type Match struct {
	Id            int64       `json:"id" db:"id"`
	MatchDate     *time.Time  `json:"matchDate,omitempty" db:"match_date"`
	MatchTime     string      `json:"matchTime,omitempty" db:"match_time"`
	Venue         string      `json:"venue" db:"venue"`
	VenueId       *int64      `json:"venueId,omitempty" db:"venue_id"`
	VenueUrl      string      `json:"venueUrl,omitempty" db:"venue_url"`
	HomeTeamId    int64       `json:"homeTeamId" db:"home_team_id"`
	AwayTeamId    int64       `json:"awayTeamId" db:"away_team_id"`
	HomeScore     *int        `json:"homeScore" db:"home_score"`
	AwayScore     *int        `json:"awayScore" db:"away_score"`
	Status        MatchStatus `json:"status" db:"status"`
	Referee       string      `json:"referee,omitempty" db:"referee"`
	Weather       string      `json:"weather,omitempty" db:"weather"`
	Temperature   *int        `json:"temperature,omitempty" db:"temperature"`
	RecruitPostId *int64      `json:"recruitPostId,omitempty" db:"recruit_post_id"`
	CreatedAt     time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt     *time.Time  `json:"updatedAt,omitempty" db:"updated_at"`
}

// DateLabel and TimeLabel are used in notification messages.
func (m *Match) DateLabel() string {
	if m.MatchDate == nil {
		return "date TBD"
	}

	return m.MatchDate.Format("2006-01-02")
}

func (m *Match) TimeLabel() string {
	if m.MatchTime == "" {
		return "time TBD"
	}

	return m.MatchTime
}

type MatchPatch struct {
	MatchDate   *time.Time
	MatchTime   *string
	Venue       *string
	VenueId     *int64
	VenueUrl    *string
	HomeTeamId  *int64
	AwayTeamId  *int64
	HomeScore   *int
	AwayScore   *int
	Status      *MatchStatus
	Referee     *string
	Weather     *string
	Temperature *int
}

func (p *MatchPatch) Apply(m *Match) {
	if p.MatchDate != nil {
		m.MatchDate = p.MatchDate
	}
	if p.MatchTime != nil {
		m.MatchTime = *p.MatchTime
	}
	if p.Venue != nil {
		m.Venue = *p.Venue
	}
	if p.VenueId != nil {
		m.VenueId = p.VenueId
	}
	if p.VenueUrl != nil {
		m.VenueUrl = *p.VenueUrl
	}
	if p.HomeTeamId != nil {
		m.HomeTeamId = *p.HomeTeamId
	}
	if p.AwayTeamId != nil {
		m.AwayTeamId = *p.AwayTeamId
	}
	if p.HomeScore != nil {
		m.HomeScore = p.HomeScore
	}
	if p.AwayScore != nil {
		m.AwayScore = p.AwayScore
	}
	if p.Status != nil {
		m.Status = *p.Status
	}
	if p.Referee != nil {
		m.Referee = *p.Referee
	}
	if p.Weather != nil {
		m.Weather = *p.Weather
	}
	if p.Temperature != nil {
		m.Temperature = p.Temperature
	}
}

// MatchFilter: Date wins over the range when both are set.
type MatchFilter struct {
	Status    MatchStatus
	Date      *time.Time
	StartDate *time.Time
	EndDate   *time.Time
}
