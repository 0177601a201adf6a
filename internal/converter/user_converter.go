package converter

import (
	"mindsync-server/internal/delivery/dto"
	"mindsync-server/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO
// Includes DoctorProfile and PatientProfile if they are loaded
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	response := &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName(),
		Avatar:    user.Avatar,
		Bio:       user.Bio,
		Role:      user.Role.RoleName,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	// Include DoctorProfile if exists
	if user.DoctorProfile != nil {
		response.DoctorProfile = &dto.DoctorProfileResponse{
			LicenseNumber:          user.DoctorProfile.LicenseNumber,
			Specializations:        user.DoctorProfile.Specializations,
			YearsOfExperience:      user.DoctorProfile.YearsOfExperience,
			ConsultationFee:        user.DoctorProfile.ConsultationFee,
			Currency:               user.DoctorProfile.Currency,
			SessionDurationMinutes: user.DoctorProfile.SessionDurationMinutes,
			VerificationStatus:     string(user.DoctorProfile.VerificationStatus),
			RatingAverage:          user.DoctorProfile.RatingAverage,
			RatingCount:            user.DoctorProfile.RatingCount,
		}
	}

	// Include PatientProfile if exists
	if user.PatientProfile != nil {
		response.PatientProfile = &dto.PatientProfileResponse{
			PhoneNumber:      user.PatientProfile.PhoneNumber,
			DateOfBirth:      user.PatientProfile.DateOfBirth.Format("2006-01-02"),
			Gender:           user.PatientProfile.Gender,
			EmergencyContact: user.PatientProfile.EmergencyContact,
		}
	}

	return response
}
