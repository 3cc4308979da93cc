package interview

import (
	"time"

	"hirepulse/internal/common"
	"hirepulse/internal/domain/user"
)

type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusReviewed   Status = "reviewed"
)

type Answer struct {
	VideoURL   string  `json:"videoUrl,omitempty"`
	Transcript string  `json:"transcript,omitempty"`
	Duration   float64 `json:"duration,omitempty"`
}

type AIFeedback struct {
	Clarity           float64 `json:"clarity"`
	Confidence        float64 `json:"confidence"`
	BodyLanguage      float64 `json:"bodyLanguage"`
	TechnicalAccuracy float64 `json:"technicalAccuracy"`
	OverallScore      float64 `json:"overallScore"`
	Feedback          string  `json:"feedback,omitempty"`
}

type Question struct {
	Question   string      `json:"question"`
	Answer     *Answer     `json:"answer,omitempty"`
	AIFeedback *AIFeedback `json:"aiFeedback,omitempty"`
}

type RecruiterFeedback struct {
	Shortlisted bool   `json:"shortlisted"`
	Comments    string `json:"comments"`
	Rating      int    `json:"rating"`
}

type AIAnalysis struct {
	OverallPerformance  float64  `json:"overallPerformance"`
	Strengths           []string `json:"strengths,omitempty"`
	AreasForImprovement []string `json:"areasForImprovement,omitempty"`
	TechnicalScore      float64  `json:"technicalScore"`
	CommunicationScore  float64  `json:"communicationScore"`
}

type Interview struct {
	ID                common.UUID        `json:"id"`
	CandidateID       common.UUID        `json:"candidate"`
	Candidate         *user.Summary      `json:"candidateProfile,omitempty"`
	JobRole           string             `json:"jobRole"`
	JobDescription    string             `json:"jobDescription"`
	Questions         []Question         `json:"questions"`
	Status            Status             `json:"status"`
	RecruiterID       *common.UUID       `json:"recruiter,omitempty"`
	Recruiter         *user.Summary      `json:"recruiterProfile,omitempty"`
	RecruiterFeedback *RecruiterFeedback `json:"recruiterFeedback,omitempty"`
	TotalScore        float64            `json:"totalScore"`
	AIAnalysis        *AIAnalysis        `json:"aiAnalysis,omitempty"`
	CreatedAt         time.Time          `json:"createdAt"`
	CompletedAt       *time.Time         `json:"completedAt,omitempty"`
}

// RecalculateTotalScore refreshes the derived total score: the mean of each
// question's aiFeedback.overallScore, counting questions without feedback as
// zero. An interview with no questions keeps its previous value. Called on
// every save; TotalScore is never set directly.
func (i *Interview) RecalculateTotalScore() {
	if len(i.Questions) == 0 {
		return
	}
	var sum float64
	for _, q := range i.Questions {
		if q.AIFeedback != nil {
			sum += q.AIFeedback.OverallScore
		}
	}
	i.TotalScore = sum / float64(len(i.Questions))
}
