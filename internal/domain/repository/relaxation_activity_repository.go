package repository

import (
	"context"

	"mindsync-server/internal/domain/entity"

	"github.com/google/uuid"
)

// ActivityFilter narrows the relaxation catalog listing.
type ActivityFilter struct {
	Category   string
	Difficulty string
}

type RelaxationActivityRepository interface {
	Create(ctx context.Context, activity *entity.RelaxationActivity) error
	FindAll(ctx context.Context, filter ActivityFilter, limit, offset int) ([]entity.RelaxationActivity, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RelaxationActivity, error)
}
