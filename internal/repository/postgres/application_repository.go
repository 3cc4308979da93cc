package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"hirepulse/internal/common"
	"hirepulse/internal/domain/job"
)

type ApplicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, a job.Application) (*job.Application, error) {
	a.ID = common.NewUUID()
	a.AppliedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `INSERT INTO job_applications (id, job_id, candidate_id, status, applied_at)
		VALUES ($1, $2, $3, $4, $5)`,
		a.ID, a.JobID, a.Candidate, a.Status, a.AppliedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create application", err)
	}
	return &a, nil
}

func (r *ApplicationRepository) FindByJobAndCandidate(ctx context.Context, jobID, candidateID common.UUID) (*job.Application, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, job_id, candidate_id, status, applied_at FROM job_applications WHERE job_id = $1 AND candidate_id = $2`, jobID, candidateID)
	var a job.Application
	if err := row.Scan(&a.ID, &a.JobID, &a.Candidate, &a.Status, &a.AppliedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "application not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load application", err)
	}
	return &a, nil
}

func (r *ApplicationRepository) ListByJob(ctx context.Context, jobID common.UUID) ([]job.Application, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, job_id, candidate_id, status, applied_at FROM job_applications WHERE job_id = $1 ORDER BY applied_at ASC`, jobID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list applications", err)
	}
	defer rows.Close()
	var items []job.Application
	for rows.Next() {
		var a job.Application
		if err := rows.Scan(&a.ID, &a.JobID, &a.Candidate, &a.Status, &a.AppliedAt); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan application", err)
		}
		items = append(items, a)
	}
	return items, nil
}
