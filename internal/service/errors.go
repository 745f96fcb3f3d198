package service

import "errors"

var (
	ErrPostNotFound        = errors.New("recruit post not found")
	ErrApplicationNotFound = errors.New("application not found")
	ErrMatchNotFound       = errors.New("match not found")
	ErrReportNotFound      = errors.New("report not found")

	ErrAlreadyTeamMember  = errors.New("applicant is already a member of the team")
	ErrAlreadyApplied     = errors.New("applicant already applied to this post")
	ErrTeamAlreadyApplied = errors.New("team already applied to this post")

	ErrNotTeamCaptain        = errors.New("only an active captain of the applicant team can apply")
	ErrApplicantTeamRequired = errors.New("applicant team is required for match posts")

	ErrNoNewChanges  = errors.New("no new values")
	ErrPostCompleted = errors.New("recruit post is completed, its status can not be changed")
)
