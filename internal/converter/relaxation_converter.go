package converter

import (
	"mindsync-server/internal/delivery/dto"
	"mindsync-server/internal/domain/entity"
)

// RelaxationActivityToResponse converts a RelaxationActivity entity to its response DTO
func RelaxationActivityToResponse(activity *entity.RelaxationActivity) *dto.RelaxationActivityResponse {
	if activity == nil {
		return nil
	}

	return &dto.RelaxationActivityResponse{
		ID:              activity.ID,
		Title:           activity.Title,
		Description:     activity.Description,
		Category:        activity.Category,
		Difficulty:      activity.Difficulty,
		DurationMinutes: activity.DurationMinutes,
		AudioURL:        activity.AudioURL,
		CreatedAt:       activity.CreatedAt,
		UpdatedAt:       activity.UpdatedAt,
	}
}

// RelaxationActivitiesToResponses converts a slice of RelaxationActivity entities to response DTOs
func RelaxationActivitiesToResponses(activities []entity.RelaxationActivity) []dto.RelaxationActivityResponse {
	responses := make([]dto.RelaxationActivityResponse, len(activities))
	for i, activity := range activities {
		resp := RelaxationActivityToResponse(&activity)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
