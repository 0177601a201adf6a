package usecase

import (
	"context"
	"errors"

	"mindsync-server/internal/converter"
	"mindsync-server/internal/delivery/dto"
	"mindsync-server/internal/domain/repository"

	"github.com/google/uuid"
)

var (
	ErrActivityNotFound = errors.New("relaxation activity not found")
)

type RelaxationUsecase interface {
	GetActivities(ctx context.Context, req *dto.ListActivitiesRequest) (*dto.RelaxationActivityListResponse, error)
	GetActivity(ctx context.Context, id uuid.UUID) (*dto.RelaxationActivityResponse, error)
}

type relaxationUsecase struct {
	activityRepo repository.RelaxationActivityRepository
}

func NewRelaxationUsecase(activityRepo repository.RelaxationActivityRepository) RelaxationUsecase {
	return &relaxationUsecase{activityRepo: activityRepo}
}

func (u *relaxationUsecase) GetActivities(ctx context.Context, req *dto.ListActivitiesRequest) (*dto.RelaxationActivityListResponse, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit < 1 {
		limit = 20
	}

	filter := repository.ActivityFilter{
		Category:   req.Category,
		Difficulty: req.Difficulty,
	}

	activities, total, err := u.activityRepo.FindAll(ctx, filter, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	return &dto.RelaxationActivityListResponse{
		Activities: converter.RelaxationActivitiesToResponses(activities),
		Total:      total,
	}, nil
}

func (u *relaxationUsecase) GetActivity(ctx context.Context, id uuid.UUID) (*dto.RelaxationActivityResponse, error) {
	activity, err := u.activityRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if activity == nil {
		return nil, ErrActivityNotFound
	}

	return converter.RelaxationActivityToResponse(activity), nil
}
