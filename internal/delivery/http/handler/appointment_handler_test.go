package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mindsync-server/internal/delivery/dto"
	"mindsync-server/internal/usecase"
	"mindsync-server/pkg/response"
	"mindsync-server/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// stubAppointmentUsecase returns canned results per method
type stubAppointmentUsecase struct {
	bookErr       error
	cancelErr     error
	rescheduleErr error
	resp          *dto.AppointmentResponse
}

func (s *stubAppointmentUsecase) GetMyAppointments(ctx context.Context, req *dto.ListAppointmentsRequest) (*dto.AppointmentListResponse, error) {
	return &dto.AppointmentListResponse{}, nil
}

func (s *stubAppointmentUsecase) GetAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	return s.resp, nil
}

func (s *stubAppointmentUsecase) BookAppointment(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	if s.bookErr != nil {
		return nil, s.bookErr
	}
	return s.resp, nil
}

func (s *stubAppointmentUsecase) CancelAppointment(ctx context.Context, appointmentID uuid.UUID, req *dto.CancelAppointmentRequest) (*dto.AppointmentResponse, error) {
	if s.cancelErr != nil {
		return nil, s.cancelErr
	}
	return s.resp, nil
}

func (s *stubAppointmentUsecase) RescheduleAppointment(ctx context.Context, appointmentID uuid.UUID, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error) {
	if s.rescheduleErr != nil {
		return nil, s.rescheduleErr
	}
	return s.resp, nil
}

func bookBody() string {
	return `{"doctor_id":"` + uuid.NewString() + `","slot_id":"slot_1767603600000","reason":"checkup"}`
}

func TestBookAppointmentStatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"Created", nil, http.StatusCreated},
		{"InvalidSlot", usecase.ErrInvalidSlot, http.StatusBadRequest},
		{"LeadTime", usecase.ErrLeadTimeViolation, http.StatusUnprocessableEntity},
		{"Horizon", usecase.ErrHorizonViolation, http.StatusUnprocessableEntity},
		{"Conflict", usecase.ErrSlotConflict, http.StatusConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubAppointmentUsecase{bookErr: tc.err, resp: &dto.AppointmentResponse{ID: uuid.New()}}
			h := NewAppointmentHandler(stub, validator.NewValidator())

			req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(bookBody()))
			rec := httptest.NewRecorder()
			h.BookAppointment(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, rec.Code)
			}

			var body response.Response
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if tc.err == nil && !body.Success {
				t.Error("expected success envelope")
			}
			if tc.err != nil && body.Success {
				t.Error("expected error envelope")
			}
		})
	}
}

func TestBookAppointmentRejectsBadRequests(t *testing.T) {
	h := NewAppointmentHandler(&stubAppointmentUsecase{}, validator.NewValidator())

	t.Run("MalformedJSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader("{"))
		rec := httptest.NewRecorder()
		h.BookAppointment(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("MissingFields", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(`{"slot_id":"slot_1"}`))
		rec := httptest.NewRecorder()
		h.BookAppointment(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected validation failure, got %d", rec.Code)
		}
	})
}

func TestCancelAppointmentStatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"OK", nil, http.StatusOK},
		{"NotFound", usecase.ErrAppointmentNotFound, http.StatusNotFound},
		{"NotOwned", usecase.ErrAppointmentNotOwned, http.StatusForbidden},
		{"NotActive", usecase.ErrAppointmentNotActive, http.StatusConflict},
		{"WindowClosed", usecase.ErrCancellationWindowClosed, http.StatusUnprocessableEntity},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubAppointmentUsecase{cancelErr: tc.err, resp: &dto.AppointmentResponse{ID: uuid.New()}}
			h := NewAppointmentHandler(stub, validator.NewValidator())

			req := httptest.NewRequest(http.MethodPut, "/api/v1/appointments/"+uuid.NewString()+"/cancel", nil)
			req = mux.SetURLVars(req, map[string]string{"id": uuid.NewString()})
			rec := httptest.NewRecorder()
			h.CancelAppointment(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, rec.Code)
			}
		})
	}

	t.Run("InvalidID", func(t *testing.T) {
		h := NewAppointmentHandler(&stubAppointmentUsecase{}, validator.NewValidator())
		req := httptest.NewRequest(http.MethodPut, "/api/v1/appointments/nope/cancel", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "nope"})
		rec := httptest.NewRecorder()
		h.CancelAppointment(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestRescheduleAppointmentStatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"OK", nil, http.StatusOK},
		{"WindowClosed", usecase.ErrRescheduleWindowClosed, http.StatusUnprocessableEntity},
		{"Conflict", usecase.ErrSlotConflict, http.StatusConflict},
		{"InvalidSlot", usecase.ErrInvalidSlot, http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubAppointmentUsecase{rescheduleErr: tc.err, resp: &dto.AppointmentResponse{ID: uuid.New()}}
			h := NewAppointmentHandler(stub, validator.NewValidator())

			body := `{"slot_id":"slot_1767603600000"}`
			req := httptest.NewRequest(http.MethodPut, "/api/v1/appointments/"+uuid.NewString()+"/reschedule", strings.NewReader(body))
			req = mux.SetURLVars(req, map[string]string{"id": uuid.NewString()})
			rec := httptest.NewRecorder()
			h.RescheduleAppointment(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, rec.Code)
			}
		})
	}
}
