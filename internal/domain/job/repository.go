package job

import (
	"context"

	"hirepulse/internal/common"
)

type Repository interface {
	Create(ctx context.Context, j Job) (*Job, error)
	Update(ctx context.Context, j Job) (*Job, error)
	GetByID(ctx context.Context, id common.UUID) (*Job, error)
	ListActive(ctx context.Context) ([]Job, error)
	Delete(ctx context.Context, id common.UUID) error
}

type ApplicationRepository interface {
	Create(ctx context.Context, a Application) (*Application, error)
	FindByJobAndCandidate(ctx context.Context, jobID, candidateID common.UUID) (*Application, error)
	ListByJob(ctx context.Context, jobID common.UUID) ([]Application, error)
}
