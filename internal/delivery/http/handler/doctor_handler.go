package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"mindsync-server/internal/delivery/dto"
	"mindsync-server/internal/domain/entity"
	"mindsync-server/internal/usecase"
	"mindsync-server/pkg/response"
	"mindsync-server/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type DoctorHandler struct {
	doctorUsecase       usecase.DoctorUsecase
	availabilityUsecase usecase.AvailabilityUsecase
	validator           *validator.CustomValidator
}

func NewDoctorHandler(
	doctorUsecase usecase.DoctorUsecase,
	availabilityUsecase usecase.AvailabilityUsecase,
	validator *validator.CustomValidator,
) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase:       doctorUsecase,
		availabilityUsecase: availabilityUsecase,
		validator:           validator,
	}
}

// ListDoctors handles the public doctor directory
// @Summary List verified doctors
// @Description List verified doctors with optional specialty, rating and name filters
// @Tags Doctors
// @Produce json
// @Param specialty query string false "Specialization filter"
// @Param min_rating query number false "Minimum average rating"
// @Param search query string false "Name search"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} response.Response
// @Router /doctors [get]
func (h *DoctorHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	req := dto.ListDoctorsRequest{
		Specialty: r.URL.Query().Get("specialty"),
		Search:    r.URL.Query().Get("search"),
	}
	req.MinRating, _ = strconv.ParseFloat(r.URL.Query().Get("min_rating"), 64)
	req.Page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	req.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctors, err := h.doctorUsecase.ListDoctors(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to list doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

// GetDoctorSlots handles slot generation for a doctor
// @Summary Get a doctor's bookable slots
// @Description Expand the doctor's weekly availability into dated slots for the window
// @Tags Doctors
// @Produce json
// @Param doctorId path string true "Doctor ID"
// @Param date query string false "Window start date (YYYY-MM-DD), defaults to today"
// @Param days query int false "Window length in days" default(7)
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /doctors/{doctorId}/slots [get]
func (h *DoctorHandler) GetDoctorSlots(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["doctorId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	req := dto.GetDoctorSlotsRequest{
		DoctorID: doctorID,
		Date:     r.URL.Query().Get("date"),
	}
	req.Days, _ = strconv.Atoi(r.URL.Query().Get("days"))

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	slots, err := h.doctorUsecase.GetDoctorSlots(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrInvalidDate:
			response.Error(w, http.StatusBadRequest, "Date must be in YYYY-MM-DD format", nil)
		default:
			response.InternalServerError(w, "Failed to get doctor slots")
		}
		return
	}

	response.Success(w, http.StatusOK, "Slots retrieved successfully", slots)
}

// GetMyAvailability returns the logged-in doctor's weekly template
func (h *DoctorHandler) GetMyAvailability(w http.ResponseWriter, r *http.Request) {
	availability, err := h.availabilityUsecase.GetMyAvailability(r.Context())
	if err != nil {
		if err == usecase.ErrDoctorProfileMissing {
			response.NotFound(w, "Doctor profile not found")
			return
		}
		response.InternalServerError(w, "Failed to get availability")
		return
	}

	response.Success(w, http.StatusOK, "Availability retrieved successfully", availability)
}

// UpdateMyAvailability replaces the logged-in doctor's weekly template
func (h *DoctorHandler) UpdateMyAvailability(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	availability, err := h.availabilityUsecase.UpdateMyAvailability(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorProfileMissing:
			response.NotFound(w, "Doctor profile not found")
		case entity.ErrInvalidWorkingDay, entity.ErrInvalidSlotTime, entity.ErrSlotOutsideWorkDays, entity.ErrSlotTimeOrder:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to update availability")
		}
		return
	}

	response.Success(w, http.StatusOK, "Availability updated successfully", availability)
}
