package app

import (
	"context"
	"sync"
	"testing"
	"time"

	"hirepulse/internal/common"
	"hirepulse/internal/domain/interview"
	"hirepulse/internal/domain/user"
)

type fakeInterviewRepo struct {
	mu   sync.Mutex
	byID map[common.UUID]*interview.Interview
}

func newFakeInterviewRepo() *fakeInterviewRepo {
	return &fakeInterviewRepo{byID: make(map[common.UUID]*interview.Interview)}
}

func (r *fakeInterviewRepo) Create(ctx context.Context, iv interview.Interview) (*interview.Interview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	iv.ID = common.NewUUID()
	iv.CreatedAt = time.Now().UTC()
	if iv.Questions == nil {
		iv.Questions = []interview.Question{}
	}
	iv.RecalculateTotalScore()
	stored := iv
	r.byID[iv.ID] = &stored
	return cloneInterview(&stored), nil
}

func (r *fakeInterviewRepo) Save(ctx context.Context, iv interview.Interview) (*interview.Interview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[iv.ID]; !ok {
		return nil, common.NewError(common.CodeNotFound, "Interview not found", nil)
	}
	iv.RecalculateTotalScore()
	stored := iv
	r.byID[iv.ID] = &stored
	return cloneInterview(&stored), nil
}

func (r *fakeInterviewRepo) GetByID(ctx context.Context, id common.UUID) (*interview.Interview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := r.byID[id]
	if stored == nil {
		return nil, common.NewError(common.CodeNotFound, "Interview not found", nil)
	}
	return cloneInterview(stored), nil
}

func (r *fakeInterviewRepo) ListByUser(ctx context.Context, userID common.UUID) ([]interview.Interview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []interview.Interview
	for _, stored := range r.byID {
		if stored.CandidateID == userID || (stored.RecruiterID != nil && *stored.RecruiterID == userID) {
			out = append(out, *cloneInterview(stored))
		}
	}
	return out, nil
}

func cloneInterview(iv *interview.Interview) *interview.Interview {
	copy := *iv
	copy.Questions = append([]interview.Question(nil), iv.Questions...)
	return &copy
}

type fakeQuestionGenerator struct {
	set *QuestionSet
	err error
}

func (g *fakeQuestionGenerator) GenerateQuestions(ctx context.Context, role, jobDescription string) (*QuestionSet, error) {
	if g.err != nil {
		return nil, g.err
	}
	return g.set, nil
}

func startedInterview(t *testing.T, service *InterviewService, candidate common.UUID, questions ...string) *interview.Interview {
	t.Helper()
	iv, err := service.Start(context.Background(), candidate, "Backend Engineer", "Build APIs")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(questions) == 0 {
		return iv
	}
	repo := service.repo.(*fakeInterviewRepo)
	repo.mu.Lock()
	for _, q := range questions {
		repo.byID[iv.ID].Questions = append(repo.byID[iv.ID].Questions, interview.Question{Question: q})
	}
	repo.mu.Unlock()
	return iv
}

func TestInterviewServiceStart(t *testing.T) {
	service := NewInterviewService(newFakeInterviewRepo(), nil)

	iv := startedInterview(t, service, common.NewUUID())
	if iv.Status != interview.StatusScheduled {
		t.Fatalf("expected status scheduled, got %q", iv.Status)
	}
	if iv.Questions == nil || len(iv.Questions) != 0 {
		t.Fatalf("expected empty questions array, got %v", iv.Questions)
	}
}

func TestInterviewServiceSubmitAnswer(t *testing.T) {
	repo := newFakeInterviewRepo()
	service := NewInterviewService(repo, nil)
	candidate := common.NewUUID()

	iv := startedInterview(t, service, candidate, "Tell me about channels")

	answer := interview.Answer{Transcript: "They synchronize goroutines", Duration: 42}
	updated, err := service.SubmitAnswer(context.Background(), iv.ID, candidate, 0, answer)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if updated.Questions[0].Answer == nil || updated.Questions[0].Answer.Transcript != answer.Transcript {
		t.Fatalf("expected answer to be stored, got %+v", updated.Questions[0].Answer)
	}
}

func TestInterviewServiceSubmitAnswer_NotOwner(t *testing.T) {
	service := NewInterviewService(newFakeInterviewRepo(), nil)

	iv := startedInterview(t, service, common.NewUUID(), "Q1")
	_, err := service.SubmitAnswer(context.Background(), iv.ID, common.NewUUID(), 0, interview.Answer{})
	if !common.Is(err, common.CodeForbidden) {
		t.Fatalf("expected forbidden error, got %v", err)
	}
}

func TestInterviewServiceSubmitAnswer_IndexOutOfRange(t *testing.T) {
	service := NewInterviewService(newFakeInterviewRepo(), nil)
	candidate := common.NewUUID()

	iv := startedInterview(t, service, candidate, "Q1")
	for _, index := range []int{-1, 1} {
		_, err := service.SubmitAnswer(context.Background(), iv.ID, candidate, index, interview.Answer{})
		if !common.Is(err, common.CodeInternal) {
			t.Fatalf("index %d: expected internal error, got %v", index, err)
		}
	}
}

func TestInterviewServiceTotalScore_RecalculatedOnSave(t *testing.T) {
	repo := newFakeInterviewRepo()
	service := NewInterviewService(repo, nil)
	candidate := common.NewUUID()

	iv := startedInterview(t, service, candidate, "Q1", "Q2")
	repo.mu.Lock()
	repo.byID[iv.ID].Questions[0].AIFeedback = &interview.AIFeedback{OverallScore: 8}
	repo.mu.Unlock()

	updated, err := service.SubmitAnswer(context.Background(), iv.ID, candidate, 1, interview.Answer{Transcript: "answer"})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if updated.TotalScore != 4 {
		t.Fatalf("expected total score 4 (missing feedback counts as zero), got %v", updated.TotalScore)
	}
}

func TestInterviewServiceGet_Visibility(t *testing.T) {
	repo := newFakeInterviewRepo()
	service := NewInterviewService(repo, nil)
	candidate := common.NewUUID()
	recruiter := common.NewUUID()

	iv := startedInterview(t, service, candidate)
	repo.mu.Lock()
	repo.byID[iv.ID].RecruiterID = &recruiter
	repo.mu.Unlock()

	if _, err := service.Get(context.Background(), iv.ID, candidate, user.RoleCandidate); err != nil {
		t.Fatalf("candidate: expected nil error, got %v", err)
	}
	if _, err := service.Get(context.Background(), iv.ID, recruiter, user.RoleRecruiter); err != nil {
		t.Fatalf("assigned recruiter: expected nil error, got %v", err)
	}
	if _, err := service.Get(context.Background(), iv.ID, common.NewUUID(), user.RoleAdmin); err != nil {
		t.Fatalf("admin: expected nil error, got %v", err)
	}
	if _, err := service.Get(context.Background(), iv.ID, common.NewUUID(), user.RoleRecruiter); !common.Is(err, common.CodeForbidden) {
		t.Fatalf("stranger: expected forbidden error, got %v", err)
	}
}

func TestInterviewServiceSubmitFeedback(t *testing.T) {
	service := NewInterviewService(newFakeInterviewRepo(), nil)
	recruiter := common.NewUUID()

	iv := startedInterview(t, service, common.NewUUID())
	feedback := interview.RecruiterFeedback{Shortlisted: true, Comments: "strong candidate", Rating: 5}
	updated, err := service.SubmitFeedback(context.Background(), iv.ID, recruiter, feedback)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if updated.Status != interview.StatusReviewed {
		t.Fatalf("expected status reviewed, got %q", updated.Status)
	}
	if updated.RecruiterID == nil || *updated.RecruiterID != recruiter {
		t.Fatalf("expected recruiter to be assigned, got %v", updated.RecruiterID)
	}
	if updated.RecruiterFeedback == nil || *updated.RecruiterFeedback != feedback {
		t.Fatalf("expected feedback stored verbatim, got %+v", updated.RecruiterFeedback)
	}
}

func TestInterviewServiceSubmitFeedback_KeepsExistingRecruiter(t *testing.T) {
	repo := newFakeInterviewRepo()
	service := NewInterviewService(repo, nil)
	first := common.NewUUID()

	iv := startedInterview(t, service, common.NewUUID())
	repo.mu.Lock()
	repo.byID[iv.ID].RecruiterID = &first
	repo.mu.Unlock()

	updated, err := service.SubmitFeedback(context.Background(), iv.ID, common.NewUUID(), interview.RecruiterFeedback{Rating: 2})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if updated.RecruiterID == nil || *updated.RecruiterID != first {
		t.Fatalf("expected original recruiter to be kept, got %v", updated.RecruiterID)
	}
}

func TestInterviewServiceGenerateQuestions(t *testing.T) {
	generator := &fakeQuestionGenerator{set: &QuestionSet{
		TechnicalQuestions:  []string{"T1", "T2"},
		BehavioralQuestions: []string{"B1"},
	}}
	service := NewInterviewService(newFakeInterviewRepo(), generator)
	candidate := common.NewUUID()

	iv := startedInterview(t, service, candidate)
	updated, err := service.GenerateQuestions(context.Background(), iv.ID, candidate)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(updated.Questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(updated.Questions))
	}
	if updated.Questions[0].Question != "T1" || updated.Questions[2].Question != "B1" {
		t.Fatalf("expected technical questions first, got %+v", updated.Questions)
	}
	if updated.Status != interview.StatusInProgress {
		t.Fatalf("expected status in-progress, got %q", updated.Status)
	}

	_, err = service.GenerateQuestions(context.Background(), iv.ID, candidate)
	if !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error on second generation, got %v", err)
	}
}

func TestInterviewServiceGenerateQuestions_NotOwner(t *testing.T) {
	generator := &fakeQuestionGenerator{set: &QuestionSet{TechnicalQuestions: []string{"T1"}}}
	service := NewInterviewService(newFakeInterviewRepo(), generator)

	iv := startedInterview(t, service, common.NewUUID())
	_, err := service.GenerateQuestions(context.Background(), iv.ID, common.NewUUID())
	if !common.Is(err, common.CodeForbidden) {
		t.Fatalf("expected forbidden error, got %v", err)
	}
}

func TestInterviewServiceListByUser(t *testing.T) {
	service := NewInterviewService(newFakeInterviewRepo(), nil)
	candidate := common.NewUUID()

	startedInterview(t, service, candidate)
	startedInterview(t, service, candidate)
	startedInterview(t, service, common.NewUUID())

	list, err := service.ListByUser(context.Background(), candidate)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 interviews, got %d", len(list))
	}
}
