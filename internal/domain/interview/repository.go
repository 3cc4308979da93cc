package interview

import (
	"context"

	"hirepulse/internal/common"
)

type Repository interface {
	Create(ctx context.Context, iv Interview) (*Interview, error)
	Save(ctx context.Context, iv Interview) (*Interview, error)
	GetByID(ctx context.Context, id common.UUID) (*Interview, error)
	ListByUser(ctx context.Context, userID common.UUID) ([]Interview, error)
}
