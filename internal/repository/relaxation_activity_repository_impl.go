package repository

import (
	"context"
	"errors"

	"mindsync-server/internal/domain/entity"
	domainRepo "mindsync-server/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type relaxationActivityRepository struct {
	db *gorm.DB
}

func NewRelaxationActivityRepository(db *gorm.DB) domainRepo.RelaxationActivityRepository {
	return &relaxationActivityRepository{db: db}
}

func (r *relaxationActivityRepository) Create(ctx context.Context, activity *entity.RelaxationActivity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *relaxationActivityRepository) FindAll(ctx context.Context, filter domainRepo.ActivityFilter, limit, offset int) ([]entity.RelaxationActivity, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.RelaxationActivity{})

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Difficulty != "" {
		query = query.Where("difficulty = ?", filter.Difficulty)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var activities []entity.RelaxationActivity
	if err := query.Limit(limit).Offset(offset).Order("title ASC").Find(&activities).Error; err != nil {
		return nil, 0, err
	}

	return activities, total, nil
}

func (r *relaxationActivityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RelaxationActivity, error) {
	var activity entity.RelaxationActivity
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&activity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &activity, nil
}
