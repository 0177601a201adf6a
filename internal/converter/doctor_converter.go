package converter

import (
	"mindsync-server/internal/delivery/dto"
	"mindsync-server/internal/domain/entity"
)

// DoctorToResponse converts a DoctorProfile entity to DoctorResponse DTO.
// The User relation must be preloaded for the display name.
func DoctorToResponse(profile *entity.DoctorProfile) *dto.DoctorResponse {
	if profile == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:                     profile.UserID,
		FullName:               profile.User.FullName(),
		Avatar:                 profile.User.Avatar,
		Specializations:        profile.Specializations,
		YearsOfExperience:      profile.YearsOfExperience,
		Biography:              profile.Biography,
		ConsultationFee:        profile.ConsultationFee,
		Currency:               profile.Currency,
		SessionDurationMinutes: profile.SessionDurationMinutes,
		RatingAverage:          profile.RatingAverage,
		RatingCount:            profile.RatingCount,
	}
}

// DoctorsToResponses converts a slice of DoctorProfile entities to slice of DoctorResponse DTOs
func DoctorsToResponses(profiles []entity.DoctorProfile) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(profiles))
	for i, profile := range profiles {
		resp := DoctorToResponse(&profile)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// AvailabilityToResponse converts the jsonb availability template to its DTO form
func AvailabilityToResponse(avail entity.Availability) *dto.AvailabilityResponse {
	slots := make([]dto.AvailabilitySlotRequest, len(avail.Slots))
	for i, slot := range avail.Slots {
		slots[i] = dto.AvailabilitySlotRequest{
			DayOfWeek: slot.DayOfWeek,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
		}
	}

	return &dto.AvailabilityResponse{
		WorkingDays: avail.WorkingDays,
		Slots:       slots,
	}
}

// AvailabilityFromRequest builds the availability template entity from its request DTO
func AvailabilityFromRequest(req *dto.UpdateAvailabilityRequest) entity.Availability {
	slots := make([]entity.TemplateSlot, len(req.Slots))
	for i, slot := range req.Slots {
		slots[i] = entity.TemplateSlot{
			DayOfWeek: slot.DayOfWeek,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
		}
	}

	return entity.Availability{
		WorkingDays: req.WorkingDays,
		Slots:       slots,
	}
}
