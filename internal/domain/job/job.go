package job

import (
	"time"

	"hirepulse/internal/common"
	"hirepulse/internal/domain/user"
)

type Status string

const (
	StatusActive Status = "active"
	StatusClosed Status = "closed"
	StatusDraft  Status = "draft"
)

type Type string

const (
	TypeFullTime   Type = "full-time"
	TypePartTime   Type = "part-time"
	TypeContract   Type = "contract"
	TypeInternship Type = "internship"
)

type ExperienceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type SalaryRange struct {
	Min      int64  `json:"min"`
	Max      int64  `json:"max"`
	Currency string `json:"currency"`
}

type Job struct {
	ID           common.UUID     `json:"id"`
	Title        string          `json:"title"`
	Company      string          `json:"company"`
	Description  string          `json:"description"`
	Requirements []string        `json:"requirements"`
	Skills       []string        `json:"skills"`
	PostedBy     common.UUID     `json:"postedBy"`
	Poster       *user.Summary   `json:"poster,omitempty"`
	Status       Status          `json:"status"`
	Location     string          `json:"location"`
	Type         Type            `json:"type"`
	Experience   ExperienceRange `json:"experience"`
	Salary       SalaryRange     `json:"salary"`
	Applications []Application   `json:"applications,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

type ApplicationStatus string

const (
	ApplicationApplied     ApplicationStatus = "applied"
	ApplicationInterviewed ApplicationStatus = "interviewed"
	ApplicationShortlisted ApplicationStatus = "shortlisted"
	ApplicationRejected    ApplicationStatus = "rejected"
)

type Application struct {
	ID        common.UUID       `json:"id"`
	JobID     common.UUID       `json:"jobId"`
	Candidate common.UUID       `json:"candidate"`
	Status    ApplicationStatus `json:"status"`
	AppliedAt time.Time         `json:"appliedAt"`
}

func ValidStatus(status Status) bool {
	switch status {
	case StatusActive, StatusClosed, StatusDraft:
		return true
	default:
		return false
	}
}

func ValidType(jobType Type) bool {
	switch jobType {
	case TypeFullTime, TypePartTime, TypeContract, TypeInternship:
		return true
	default:
		return false
	}
}
