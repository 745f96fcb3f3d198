package entity

import (
	"strings"
	"time"
)

// db model
type Posting struct {
	Id                int64      `json:"id" db:"id"`
	TeamId            int64      `json:"teamId" db:"team_id"`
	WriterProfileId   int64      `json:"writerProfileId" db:"writer_profile_id"`
	Title             string     `json:"title" db:"title"`
	Content           string     `json:"content" db:"content"`
	Region            string     `json:"region" db:"region"`
	SubRegion         string     `json:"subRegion" db:"sub_region"`
	ImageUrl          string     `json:"imageUrl" db:"image_url"`
	MatchDate         *time.Time `json:"matchDate,omitempty" db:"match_date"`
	GameTime          string     `json:"gameTime,omitempty" db:"game_time"`
	Category          Category   `json:"category" db:"category"`
	TargetType        string     `json:"targetType" db:"target_type"`
	Status            PostStatus `json:"status" db:"status"`
	RequiredPersonnel *int       `json:"requiredPersonnel,omitempty" db:"required_personnel"`
	FieldLocation     string     `json:"fieldLocation" db:"field_location"`
	MatchType         string     `json:"matchType" db:"match_type"`
	TeamSize          string     `json:"teamSize" db:"team_size"`
	Cost              *int       `json:"cost,omitempty" db:"cost"`
	MatchId           *int64     `json:"matchId,omitempty" db:"match_id"`
	CreatedAt         time.Time  `json:"createdAt" db:"created_at"`
}

// Venue is the place a match created from this posting is played at.
func (p *Posting) Venue() string {
	if p.FieldLocation != "" {
		return p.FieldLocation
	}

	return strings.TrimSpace(p.Region + " " + p.SubRegion)
}

// service + repo patch model, nil means "leave unchanged"
type PostingPatch struct {
	TeamId            *int64
	WriterProfileId   *int64
	Title             *string
	Content           *string
	Region            *string
	SubRegion         *string
	ImageUrl          *string
	MatchDate         *time.Time
	GameTime          *string
	Category          *Category
	TargetType        *string
	Status            *PostStatus
	RequiredPersonnel *int
	FieldLocation     *string
	MatchType         *string
	TeamSize          *string
	Cost              *int
}

func (p *PostingPatch) IsEmpty() bool {
	return *p == PostingPatch{}
}

// Apply overwrites every field of the posting the patch carries a value for.
func (p *PostingPatch) Apply(post *Posting) {
	if p.TeamId != nil {
		post.TeamId = *p.TeamId
	}
	if p.WriterProfileId != nil {
		post.WriterProfileId = *p.WriterProfileId
	}
	if p.Title != nil {
		post.Title = *p.Title
	}
	if p.Content != nil {
		post.Content = *p.Content
	}
	if p.Region != nil {
		post.Region = *p.Region
	}
	if p.SubRegion != nil {
		post.SubRegion = *p.SubRegion
	}
	if p.ImageUrl != nil {
		post.ImageUrl = *p.ImageUrl
	}
	if p.MatchDate != nil {
		post.MatchDate = p.MatchDate
	}
	if p.GameTime != nil {
		post.GameTime = *p.GameTime
	}
	if p.Category != nil {
		post.Category = *p.Category
	}
	if p.TargetType != nil {
		post.TargetType = *p.TargetType
	}
	if p.Status != nil {
		post.Status = *p.Status
	}
	if p.RequiredPersonnel != nil {
		post.RequiredPersonnel = p.RequiredPersonnel
	}
	if p.FieldLocation != nil {
		post.FieldLocation = *p.FieldLocation
	}
	if p.MatchType != nil {
		post.MatchType = *p.MatchType
	}
	if p.TeamSize != nil {
		post.TeamSize = *p.TeamSize
	}
	if p.Cost != nil {
		post.Cost = p.Cost
	}
}

type PostingFilter struct {
	TeamId          int64
	WriterProfileId int64
	Status          PostStatus
	Category        Category
}

// controller model
type PostingOutputModel struct {
	Posting
	AcceptedCount int64  `json:"acceptedCount"`
	AuthorName    string `json:"authorName,omitempty"`
	TeamName      string `json:"teamName,omitempty"`
}
