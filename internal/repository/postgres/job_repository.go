package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"hirepulse/internal/common"
	"hirepulse/internal/domain/job"
	"hirepulse/internal/domain/user"
)

type JobRepository struct {
	db *sql.DB
}

func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) Create(ctx context.Context, j job.Job) (*job.Job, error) {
	j.ID = common.NewUUID()
	now := time.Now().UTC()
	j.CreatedAt = now
	j.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, `INSERT INTO jobs (id, title, company, description, requirements, skills, posted_by, status, location, job_type, experience_min, experience_max, salary_min, salary_max, salary_currency, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		j.ID, j.Title, j.Company, j.Description, pq.Array(j.Requirements), pq.Array(j.Skills), j.PostedBy, j.Status, j.Location, j.Type,
		j.Experience.Min, j.Experience.Max, j.Salary.Min, j.Salary.Max, j.Salary.Currency, j.CreatedAt, j.UpdatedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create job", err)
	}
	return &j, nil
}

func (r *JobRepository) Update(ctx context.Context, j job.Job) (*job.Job, error) {
	j.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx, `UPDATE jobs SET title = $1, company = $2, description = $3, requirements = $4, skills = $5, status = $6, location = $7, job_type = $8, experience_min = $9, experience_max = $10, salary_min = $11, salary_max = $12, salary_currency = $13, updated_at = $14
		WHERE id = $15`,
		j.Title, j.Company, j.Description, pq.Array(j.Requirements), pq.Array(j.Skills), j.Status, j.Location, j.Type,
		j.Experience.Min, j.Experience.Max, j.Salary.Min, j.Salary.Max, j.Salary.Currency, j.UpdatedAt, j.ID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update job", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "Job not found", sql.ErrNoRows)
	}
	return &j, nil
}

const jobSelect = `SELECT j.id, j.title, j.company, j.description, j.requirements, j.skills, j.posted_by, j.status, j.location, j.job_type,
	j.experience_min, j.experience_max, j.salary_min, j.salary_max, j.salary_currency, j.created_at, j.updated_at,
	u.email, u.profile
	FROM jobs j JOIN users u ON u.id = j.posted_by`

func scanJob(row interface{ Scan(...interface{}) error }) (*job.Job, error) {
	var j job.Job
	var poster user.Summary
	if err := row.Scan(&j.ID, &j.Title, &j.Company, &j.Description, pq.Array(&j.Requirements), pq.Array(&j.Skills), &j.PostedBy, &j.Status, &j.Location, &j.Type,
		&j.Experience.Min, &j.Experience.Max, &j.Salary.Min, &j.Salary.Max, &j.Salary.Currency, &j.CreatedAt, &j.UpdatedAt,
		&poster.Email, asJSONB(&poster.Profile)); err != nil {
		return nil, err
	}
	poster.ID = j.PostedBy
	j.Poster = &poster
	return &j, nil
}

func (r *JobRepository) GetByID(ctx context.Context, id common.UUID) (*job.Job, error) {
	row := r.db.QueryRowContext(ctx, jobSelect+` WHERE j.id = $1`, id)
	j, err := scanJob(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "Job not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load job", err)
	}
	return j, nil
}

func (r *JobRepository) ListActive(ctx context.Context) ([]job.Job, error) {
	rows, err := r.db.QueryContext(ctx, jobSelect+` WHERE j.status = $1 ORDER BY j.created_at DESC`, job.StatusActive)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list jobs", err)
	}
	defer rows.Close()
	var items []job.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan job", err)
		}
		items = append(items, *j)
	}
	return items, nil
}

func (r *JobRepository) Delete(ctx context.Context, id common.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to delete job", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "Job not found", sql.ErrNoRows)
	}
	return nil
}
