package entity

import "time"

// db model
type Application struct {
	Id                 int64             `json:"id" db:"id"`
	PostId             int64             `json:"postId" db:"post_id"`
	ApplicantProfileId int64             `json:"applicantProfileId" db:"applicant_profile_id"`
	ApplicantTeamId    *int64            `json:"applicantTeamId,omitempty" db:"applicant_team_id"`
	Description        string            `json:"description" db:"description"`
	Status             ApplicationStatus `json:"status" db:"status"`
	ApplicationDate    time.Time         `json:"applicationDate" db:"application_date"`
}

// service input model
type SubmitApplicationInput struct {
	PostId             int64  // given
	ApplicantProfileId int64  // given
	ApplicantTeamId    *int64 // given, required for MATCH postings
	Description        string // given
	Status             string // optional, blank means PENDING
}
