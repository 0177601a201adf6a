package handler

import (
	"net/http"
	"strconv"

	"mindsync-server/internal/delivery/dto"
	"mindsync-server/internal/usecase"
	"mindsync-server/pkg/response"
	"mindsync-server/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type RelaxationHandler struct {
	relaxationUsecase usecase.RelaxationUsecase
	validator         *validator.CustomValidator
}

func NewRelaxationHandler(relaxationUsecase usecase.RelaxationUsecase, validator *validator.CustomValidator) *RelaxationHandler {
	return &RelaxationHandler{
		relaxationUsecase: relaxationUsecase,
		validator:         validator,
	}
}

// GetActivities handles listing the relaxation catalog
// @Summary List relaxation activities
// @Description List relaxation activities with optional category and difficulty filters
// @Tags Relaxation
// @Produce json
// @Param category query string false "Category filter"
// @Param difficulty query string false "Difficulty filter"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} response.Response
// @Router /relaxation/activities [get]
func (h *RelaxationHandler) GetActivities(w http.ResponseWriter, r *http.Request) {
	req := dto.ListActivitiesRequest{
		Category:   r.URL.Query().Get("category"),
		Difficulty: r.URL.Query().Get("difficulty"),
	}
	req.Page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	req.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	activities, err := h.relaxationUsecase.GetActivities(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to get activities")
		return
	}

	response.Success(w, http.StatusOK, "Activities retrieved successfully", activities)
}

// GetActivity handles getting one catalog entry
func (h *RelaxationHandler) GetActivity(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	activityID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid activity ID", nil)
		return
	}

	activity, err := h.relaxationUsecase.GetActivity(r.Context(), activityID)
	if err != nil {
		if err == usecase.ErrActivityNotFound {
			response.NotFound(w, "Activity not found")
			return
		}
		response.InternalServerError(w, "Failed to get activity")
		return
	}

	response.Success(w, http.StatusOK, "Activity retrieved successfully", activity)
}
