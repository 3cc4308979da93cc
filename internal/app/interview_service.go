package app

import (
	"context"

	"hirepulse/internal/common"
	"hirepulse/internal/domain/interview"
	"hirepulse/internal/domain/user"
)

// QuestionGenerator is the slice of the AI service the interview flow needs.
type QuestionGenerator interface {
	GenerateQuestions(ctx context.Context, role, jobDescription string) (*QuestionSet, error)
}

type QuestionSet struct {
	TechnicalQuestions  []string `json:"technical_questions"`
	BehavioralQuestions []string `json:"behavioral_questions"`
}

type InterviewService struct {
	repo      interview.Repository
	questions QuestionGenerator
}

func NewInterviewService(repo interview.Repository, questions QuestionGenerator) *InterviewService {
	return &InterviewService{repo: repo, questions: questions}
}

func (s *InterviewService) Start(ctx context.Context, candidateID common.UUID, jobRole, jobDescription string) (*interview.Interview, error) {
	return s.repo.Create(ctx, interview.Interview{
		CandidateID:    candidateID,
		JobRole:        jobRole,
		JobDescription: jobDescription,
		Status:         interview.StatusScheduled,
	})
}

// SubmitAnswer writes the answer into the question at the given index. An
// out-of-range index surfaces as a 500; callers are expected to send an
// index from a previously fetched question list.
func (s *InterviewService) SubmitAnswer(ctx context.Context, interviewID, callerID common.UUID, questionIndex int, answer interview.Answer) (*interview.Interview, error) {
	iv, err := s.repo.GetByID(ctx, interviewID)
	if err != nil {
		return nil, err
	}
	if iv.CandidateID != callerID {
		return nil, common.NewError(common.CodeForbidden, "Not authorized", nil)
	}
	if questionIndex < 0 || questionIndex >= len(iv.Questions) {
		return nil, common.NewError(common.CodeInternal, "question index out of range", nil)
	}
	iv.Questions[questionIndex].Answer = &answer
	return s.repo.Save(ctx, *iv)
}

func (s *InterviewService) Get(ctx context.Context, interviewID, callerID common.UUID, callerRole user.Role) (*interview.Interview, error) {
	iv, err := s.repo.GetByID(ctx, interviewID)
	if err != nil {
		return nil, err
	}
	if iv.CandidateID != callerID && callerRole != user.RoleAdmin &&
		(iv.RecruiterID == nil || *iv.RecruiterID != callerID) {
		return nil, common.NewError(common.CodeForbidden, "Not authorized", nil)
	}
	return iv, nil
}

func (s *InterviewService) ListByUser(ctx context.Context, userID common.UUID) ([]interview.Interview, error) {
	return s.repo.ListByUser(ctx, userID)
}

// SubmitFeedback stores recruiter feedback verbatim and moves the interview
// to reviewed. There is no check on the prior status and no transition back.
func (s *InterviewService) SubmitFeedback(ctx context.Context, interviewID, recruiterID common.UUID, feedback interview.RecruiterFeedback) (*interview.Interview, error) {
	iv, err := s.repo.GetByID(ctx, interviewID)
	if err != nil {
		return nil, err
	}
	if iv.RecruiterID == nil {
		iv.RecruiterID = &recruiterID
	}
	iv.RecruiterFeedback = &feedback
	iv.Status = interview.StatusReviewed
	return s.repo.Save(ctx, *iv)
}

// GenerateQuestions fills the interview with questions from the AI service
// and moves it from scheduled to in-progress.
func (s *InterviewService) GenerateQuestions(ctx context.Context, interviewID, callerID common.UUID) (*interview.Interview, error) {
	if s.questions == nil {
		return nil, common.NewError(common.CodeInternal, "question generator not configured", nil)
	}
	iv, err := s.repo.GetByID(ctx, interviewID)
	if err != nil {
		return nil, err
	}
	if iv.CandidateID != callerID {
		return nil, common.NewError(common.CodeForbidden, "Not authorized", nil)
	}
	if len(iv.Questions) > 0 {
		return nil, common.NewError(common.CodeValidation, "questions already generated", nil)
	}
	set, err := s.questions.GenerateQuestions(ctx, iv.JobRole, iv.JobDescription)
	if err != nil {
		return nil, err
	}
	for _, q := range set.TechnicalQuestions {
		iv.Questions = append(iv.Questions, interview.Question{Question: q})
	}
	for _, q := range set.BehavioralQuestions {
		iv.Questions = append(iv.Questions, interview.Question{Question: q})
	}
	if len(iv.Questions) == 0 {
		return nil, common.NewError(common.CodeInternal, "AI service returned no questions", nil)
	}
	iv.Status = interview.StatusInProgress
	return s.repo.Save(ctx, *iv)
}
