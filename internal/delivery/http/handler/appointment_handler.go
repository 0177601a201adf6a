package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"mindsync-server/internal/delivery/dto"
	"mindsync-server/internal/usecase"
	"mindsync-server/pkg/response"
	"mindsync-server/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) GetMyAppointments(w http.ResponseWriter, r *http.Request) {
	req := dto.ListAppointmentsRequest{
		Status: r.URL.Query().Get("status"),
	}
	req.Page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	req.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))

	if upcoming := r.URL.Query().Get("upcoming"); upcoming != "" {
		parsed, err := strconv.ParseBool(upcoming)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid upcoming filter", nil)
			return
		}
		req.Upcoming = &parsed
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointments, err := h.appointmentUsecase.GetMyAppointments(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	appointment, err := h.appointmentUsecase.GetAppointment(r.Context(), appointmentID)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrAppointmentNotOwned:
			response.Forbidden(w, "Appointment does not belong to you")
		default:
			response.InternalServerError(w, "Failed to get appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}

func (h *AppointmentHandler) BookAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.BookAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.BookAppointment(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidSlot:
			response.Error(w, http.StatusBadRequest, "Slot does not exist in the doctor's availability", nil)
		case usecase.ErrLeadTimeViolation:
			response.Error(w, http.StatusUnprocessableEntity, "Appointments must be booked at least 24 hours in advance", nil)
		case usecase.ErrHorizonViolation:
			response.Error(w, http.StatusUnprocessableEntity, "Appointments cannot be booked more than 30 days in advance", nil)
		case usecase.ErrSlotConflict:
			response.Conflict(w, "Slot is already booked")
		default:
			response.InternalServerError(w, "Failed to book appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment booked successfully", appointment)
}

func (h *AppointmentHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	var req dto.CancelAppointmentRequest
	if r.Body != nil && r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
			return
		}
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.CancelAppointment(r.Context(), appointmentID, &req)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrAppointmentNotOwned:
			response.Forbidden(w, "Appointment does not belong to you")
		case usecase.ErrAppointmentNotActive:
			response.Conflict(w, "Appointment is no longer active")
		case usecase.ErrCancellationWindowClosed:
			response.Error(w, http.StatusUnprocessableEntity, "Appointments can only be cancelled up to 24 hours before the start", nil)
		default:
			response.InternalServerError(w, "Failed to cancel appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment cancelled successfully", appointment)
}

func (h *AppointmentHandler) RescheduleAppointment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	var req dto.RescheduleAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.RescheduleAppointment(r.Context(), appointmentID, &req)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrAppointmentNotOwned:
			response.Forbidden(w, "Appointment does not belong to you")
		case usecase.ErrAppointmentNotActive:
			response.Conflict(w, "Appointment is no longer active")
		case usecase.ErrRescheduleWindowClosed:
			response.Error(w, http.StatusUnprocessableEntity, "Appointments can only be rescheduled up to 48 hours before the start", nil)
		case usecase.ErrInvalidSlot:
			response.Error(w, http.StatusBadRequest, "Slot does not exist in the doctor's availability", nil)
		case usecase.ErrLeadTimeViolation:
			response.Error(w, http.StatusUnprocessableEntity, "Appointments must be booked at least 24 hours in advance", nil)
		case usecase.ErrHorizonViolation:
			response.Error(w, http.StatusUnprocessableEntity, "Appointments cannot be booked more than 30 days in advance", nil)
		case usecase.ErrSlotConflict:
			response.Conflict(w, "Slot is already booked")
		default:
			response.InternalServerError(w, "Failed to reschedule appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment rescheduled successfully", appointment)
}
