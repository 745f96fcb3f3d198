package entity

import "time"

// db model
type Report struct {
	Id              int64        `json:"id" db:"id"`
	ReportType      string       `json:"reportType" db:"report_type"`
	TargetType      string       `json:"targetType" db:"target_type"`
	TargetId        int64        `json:"targetId" db:"target_id"`
	ReporterId      int64        `json:"reporterId" db:"reporter_id"`
	ReportedId      int64        `json:"reportedId" db:"reported_id"`
	Reason          string       `json:"reason" db:"reason"`
	Category        string       `json:"category" db:"category"`
	Description     string       `json:"description" db:"description"`
	Severity        string       `json:"severity" db:"severity"`
	Status          ReportStatus `json:"status" db:"status"`
	AssignedAdminId *int64       `json:"assignedAdminId,omitempty" db:"assigned_admin_id"`
	Resolution      string       `json:"resolution,omitempty" db:"resolution"`
	ResolvedAt      *time.Time   `json:"resolvedAt,omitempty" db:"resolved_at"`
	CreatedAt       time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt       *time.Time   `json:"updatedAt,omitempty" db:"updated_at"`
}

type ReportPatch struct {
	Status          *ReportStatus
	Severity        *string
	AssignedAdminId *int64
	Resolution      *string
	ResolvedAt      *time.Time
}

func (p *ReportPatch) Apply(r *Report) {
	if p.Status != nil {
		r.Status = *p.Status
	}
	if p.Severity != nil {
		r.Severity = *p.Severity
	}
	if p.AssignedAdminId != nil {
		r.AssignedAdminId = p.AssignedAdminId
	}
	if p.Resolution != nil {
		r.Resolution = *p.Resolution
	}
	if p.ResolvedAt != nil {
		r.ResolvedAt = p.ResolvedAt
	}
}

type ReportFilter struct {
	Status     ReportStatus
	Severity   string
	ReporterId int64
	ReportedId int64
}
