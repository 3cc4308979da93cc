package app

import (
	"context"
	"strings"

	"hirepulse/internal/common"
	"hirepulse/internal/domain/job"
	"hirepulse/internal/domain/user"
)

type JobService struct {
	repo         job.Repository
	applications job.ApplicationRepository
}

func NewJobService(repo job.Repository, applications job.ApplicationRepository) *JobService {
	return &JobService{repo: repo, applications: applications}
}

// JobPatch carries the fields of a shallow-merge update. Nil means the
// caller did not send the field.
type JobPatch struct {
	Title        *string
	Company      *string
	Description  *string
	Requirements []string
	Skills       []string
	Status       *job.Status
	Location     *string
	Type         *job.Type
	Experience   *job.ExperienceRange
	Salary       *job.SalaryRange
}

func (s *JobService) Create(ctx context.Context, j job.Job) (*job.Job, error) {
	if j.Status == "" {
		j.Status = job.StatusActive
	}
	if err := validateJobEnums(j.Status, j.Type); err != nil {
		return nil, err
	}
	if j.Salary.Currency == "" {
		j.Salary.Currency = "USD"
	}
	return s.repo.Create(ctx, j)
}

func (s *JobService) List(ctx context.Context) ([]job.Job, error) {
	return s.repo.ListActive(ctx)
}

func (s *JobService) Get(ctx context.Context, id common.UUID) (*job.Job, error) {
	j, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	apps, err := s.applications.ListByJob(ctx, id)
	if err != nil {
		return nil, err
	}
	j.Applications = apps
	return j, nil
}

func (s *JobService) Update(ctx context.Context, id common.UUID, patch JobPatch, callerID common.UUID, callerRole user.Role) (*job.Job, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.PostedBy != callerID && callerRole != user.RoleAdmin {
		return nil, common.NewError(common.CodeForbidden, "Not authorized to update this job", nil)
	}
	merged := applyJobPatch(*current, patch)
	if err := validateJobEnums(merged.Status, merged.Type); err != nil {
		return nil, err
	}
	updated, err := s.repo.Update(ctx, merged)
	if err != nil {
		return nil, err
	}
	updated.Poster = current.Poster
	return updated, nil
}

func (s *JobService) Delete(ctx context.Context, id common.UUID, callerID common.UUID, callerRole user.Role) error {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current.PostedBy != callerID && callerRole != user.RoleAdmin {
		return common.NewError(common.CodeForbidden, "Not authorized to delete this job", nil)
	}
	return s.repo.Delete(ctx, id)
}

// Apply appends an application for the candidate. The duplicate check is a
// read followed by an insert; two concurrent applies for the same pair can
// both pass the read. See the schema comment on job_applications.
func (s *JobService) Apply(ctx context.Context, jobID, candidateID common.UUID) (*job.Application, error) {
	if _, err := s.repo.GetByID(ctx, jobID); err != nil {
		return nil, err
	}
	if _, err := s.applications.FindByJobAndCandidate(ctx, jobID, candidateID); err == nil {
		return nil, common.NewError(common.CodeConflict, "Already applied for this job", nil)
	} else if !common.Is(err, common.CodeNotFound) {
		return nil, err
	}
	return s.applications.Create(ctx, job.Application{
		JobID:     jobID,
		Candidate: candidateID,
		Status:    job.ApplicationApplied,
	})
}

func applyJobPatch(j job.Job, patch JobPatch) job.Job {
	if patch.Title != nil {
		j.Title = *patch.Title
	}
	if patch.Company != nil {
		j.Company = *patch.Company
	}
	if patch.Description != nil {
		j.Description = *patch.Description
	}
	if patch.Requirements != nil {
		j.Requirements = patch.Requirements
	}
	if patch.Skills != nil {
		j.Skills = patch.Skills
	}
	if patch.Status != nil {
		j.Status = *patch.Status
	}
	if patch.Location != nil {
		j.Location = *patch.Location
	}
	if patch.Type != nil {
		j.Type = *patch.Type
	}
	if patch.Experience != nil {
		j.Experience = *patch.Experience
	}
	if patch.Salary != nil {
		j.Salary = *patch.Salary
	}
	return j
}

func validateJobEnums(status job.Status, jobType job.Type) error {
	normalizedStatus := job.Status(strings.ToLower(strings.TrimSpace(string(status))))
	if !job.ValidStatus(normalizedStatus) {
		return common.NewValidationError("invalid job status", map[string]string{"status": "status must be active, closed, or draft"})
	}
	normalizedType := job.Type(strings.ToLower(strings.TrimSpace(string(jobType))))
	if !job.ValidType(normalizedType) {
		return common.NewValidationError("invalid job type", map[string]string{"type": "type must be full-time, part-time, contract, or internship"})
	}
	return nil
}
