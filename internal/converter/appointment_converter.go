package converter

import (
	"mindsync-server/internal/delivery/dto"
	"mindsync-server/internal/domain/entity"

	"github.com/google/uuid"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:                 appointment.ID,
		PatientID:          appointment.PatientID,
		DoctorID:           appointment.DoctorID,
		ScheduleTime:       appointment.ScheduleTime,
		EndTime:            appointment.EndTime,
		DurationMinutes:    appointment.DurationMinutes,
		Status:             string(appointment.Status),
		Reason:             appointment.Reason,
		Mode:               string(appointment.Mode),
		ConfirmationCode:   appointment.ConfirmationCode,
		Fee:                appointment.Fee,
		Currency:           appointment.Currency,
		RescheduleCount:    appointment.RescheduleCount,
		LastRescheduledAt:  appointment.LastRescheduledAt,
		CancelledAt:        appointment.CancelledAt,
		CancellationReason: appointment.CancellationReason,
		CancelledBy:        string(appointment.CancelledBy),
		RefundStatus:       string(appointment.RefundStatus),
		CreatedAt:          appointment.CreatedAt,
		UpdatedAt:          appointment.UpdatedAt,
	}

	// Include doctor name if the relation was preloaded
	if appointment.Doctor.ID != uuid.Nil {
		response.DoctorName = appointment.Doctor.FullName()
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		resp := AppointmentToResponse(&appointment)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
