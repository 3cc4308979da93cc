package user

import (
	"time"

	"hirepulse/internal/common"
)

type Role string

const (
	RoleCandidate Role = "candidate"
	RoleRecruiter Role = "recruiter"
	RoleAdmin     Role = "admin"
)

type Profile struct {
	FirstName  string   `json:"firstName,omitempty"`
	LastName   string   `json:"lastName,omitempty"`
	Phone      string   `json:"phone,omitempty"`
	Skills     []string `json:"skills,omitempty"`
	Experience string   `json:"experience,omitempty"`
	ResumeURL  string   `json:"resumeUrl,omitempty"`
}

type User struct {
	ID         common.UUID `json:"id"`
	Email      string      `json:"email"`
	Role       Role        `json:"role"`
	Profile    Profile     `json:"profile"`
	IsActive   bool        `json:"isActive"`
	IsVerified bool        `json:"isVerified"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

// Summary is the identity slice exposed when a user is referenced from
// another entity (job poster, interview candidate or recruiter).
type Summary struct {
	ID      common.UUID `json:"id"`
	Email   string      `json:"email"`
	Profile Profile     `json:"profile"`
}
