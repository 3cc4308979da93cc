package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"hirepulse/internal/common"
	"hirepulse/internal/domain/interview"
	"hirepulse/internal/domain/user"
)

type InterviewRepository struct {
	db *sql.DB
}

func NewInterviewRepository(db *sql.DB) *InterviewRepository {
	return &InterviewRepository{db: db}
}

func (r *InterviewRepository) Create(ctx context.Context, iv interview.Interview) (*interview.Interview, error) {
	iv.ID = common.NewUUID()
	iv.CreatedAt = time.Now().UTC()
	if iv.Questions == nil {
		iv.Questions = []interview.Question{}
	}
	iv.RecalculateTotalScore()
	_, err := r.db.ExecContext(ctx, `INSERT INTO interviews (id, candidate_id, job_role, job_description, questions, status, recruiter_id, recruiter_feedback, total_score, ai_analysis, created_at, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		iv.ID, iv.CandidateID, iv.JobRole, iv.JobDescription, asJSONB(iv.Questions), iv.Status, nullableUUID(iv.RecruiterID),
		asJSONB(iv.RecruiterFeedback), iv.TotalScore, asJSONB(iv.AIAnalysis), iv.CreatedAt, nullableTime(iv.CompletedAt))
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create interview", err)
	}
	return &iv, nil
}

// Save persists the full document. The derived total score is refreshed
// here on every write so it cannot drift from the questions.
func (r *InterviewRepository) Save(ctx context.Context, iv interview.Interview) (*interview.Interview, error) {
	iv.RecalculateTotalScore()
	result, err := r.db.ExecContext(ctx, `UPDATE interviews SET questions = $1, status = $2, recruiter_id = $3, recruiter_feedback = $4, total_score = $5, ai_analysis = $6, completed_at = $7
		WHERE id = $8`,
		asJSONB(iv.Questions), iv.Status, nullableUUID(iv.RecruiterID), asJSONB(iv.RecruiterFeedback), iv.TotalScore,
		asJSONB(iv.AIAnalysis), nullableTime(iv.CompletedAt), iv.ID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to save interview", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "Interview not found", sql.ErrNoRows)
	}
	return &iv, nil
}

const interviewSelect = `SELECT i.id, i.candidate_id, i.job_role, i.job_description, i.questions, i.status, i.recruiter_id, i.recruiter_feedback, i.total_score, i.ai_analysis, i.created_at, i.completed_at,
	c.email, c.profile, ru.email, ru.profile
	FROM interviews i
	JOIN users c ON c.id = i.candidate_id
	LEFT JOIN users ru ON ru.id = i.recruiter_id`

func scanInterview(row interface{ Scan(...interface{}) error }) (*interview.Interview, error) {
	var iv interview.Interview
	var candidate user.Summary
	var recruiterID uuid.NullUUID
	var completedAt sql.NullTime
	var recruiterEmail sql.NullString
	var recruiterProfile user.Profile
	if err := row.Scan(&iv.ID, &iv.CandidateID, &iv.JobRole, &iv.JobDescription, asJSONB(&iv.Questions), &iv.Status, &recruiterID,
		asJSONB(&iv.RecruiterFeedback), &iv.TotalScore, asJSONB(&iv.AIAnalysis), &iv.CreatedAt, &completedAt,
		&candidate.Email, asJSONB(&candidate.Profile), &recruiterEmail, asJSONB(&recruiterProfile)); err != nil {
		return nil, err
	}
	candidate.ID = iv.CandidateID
	iv.Candidate = &candidate
	if recruiterID.Valid {
		id := recruiterID.UUID
		iv.RecruiterID = &id
		iv.Recruiter = &user.Summary{ID: id, Email: recruiterEmail.String, Profile: recruiterProfile}
	}
	if completedAt.Valid {
		t := completedAt.Time
		iv.CompletedAt = &t
	}
	return &iv, nil
}

func (r *InterviewRepository) GetByID(ctx context.Context, id common.UUID) (*interview.Interview, error) {
	row := r.db.QueryRowContext(ctx, interviewSelect+` WHERE i.id = $1`, id)
	iv, err := scanInterview(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "Interview not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load interview", err)
	}
	return iv, nil
}

func (r *InterviewRepository) ListByUser(ctx context.Context, userID common.UUID) ([]interview.Interview, error) {
	rows, err := r.db.QueryContext(ctx, interviewSelect+` WHERE i.candidate_id = $1 OR i.recruiter_id = $1 ORDER BY i.created_at DESC`, userID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list interviews", err)
	}
	defer rows.Close()
	var items []interview.Interview
	for rows.Next() {
		iv, err := scanInterview(rows)
		if err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan interview", err)
		}
		items = append(items, *iv)
	}
	return items, nil
}

func nullableUUID(id *common.UUID) interface{} {
	if id == nil {
		return nil
	}
	return *id
}

func nullableTime(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return *t
}
