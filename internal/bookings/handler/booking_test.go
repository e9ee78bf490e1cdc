package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"

	"classroom/pkg/config"
	apperrors "classroom/pkg/errors"
	"classroom/pkg/logger"
	"classroom/pkg/model"
)

type mockBookingService struct {
	AdmitFunc        func(ctx context.Context, req *model.BookingRequest) (*model.Booking, error)
	ApproveFunc      func(ctx context.Context, id string) (*model.Booking, error)
	RejectFunc       func(ctx context.Context, id string) (*model.Booking, error)
	GetByIDFunc      func(ctx context.Context, id string) (*model.Booking, error)
	GetAllFunc       func(ctx context.Context, limit int, offset int64) ([]*model.Booking, int64, error)
	GetByFacultyFunc func(ctx context.Context, facultyID, status, dateRange string, now time.Time) ([]*model.Booking, error)
}

func (m *mockBookingService) Admit(ctx context.Context, req *model.BookingRequest) (*model.Booking, error) {
	return m.AdmitFunc(ctx, req)
}

func (m *mockBookingService) Approve(ctx context.Context, id string) (*model.Booking, error) {
	return m.ApproveFunc(ctx, id)
}

func (m *mockBookingService) Reject(ctx context.Context, id string) (*model.Booking, error) {
	return m.RejectFunc(ctx, id)
}

func (m *mockBookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockBookingService) GetAll(ctx context.Context, limit int, offset int64) ([]*model.Booking, int64, error) {
	return m.GetAllFunc(ctx, limit, offset)
}

func (m *mockBookingService) GetByFaculty(ctx context.Context, facultyID, status, dateRange string, now time.Time) ([]*model.Booking, error) {
	return m.GetByFacultyFunc(ctx, facultyID, status, dateRange, now)
}

func newTestRouter(svc *mockBookingService) *httprouter.Router {
	cfg := &config.Config{
		Log: logger.New(logger.Config{Level: "error", Format: logger.JSON, Service: "test"}),
	}
	router := httprouter.New()
	NewBookingHandler(cfg, svc).RegisterRoutes(router)
	return router
}

func TestCreate_RequiresIdentityHeaders(t *testing.T) {
	router := newTestRouter(&mockBookingService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("expected %d, got %d", http.StatusForbidden, rec.Code)
	}
}

func TestCreate_FacultyRoleGrantsBookingCapability(t *testing.T) {
	var captured *model.BookingRequest
	svc := &mockBookingService{
		AdmitFunc: func(ctx context.Context, req *model.BookingRequest) (*model.Booking, error) {
			captured = req
			return &model.Booking{ID: "66f1a2b3c4d5e6f7a8b9c0aa", Status: model.StatusApproved}, nil
		},
	}
	router := newTestRouter(svc)

	body := `{"room_id":"66f1a2b3c4d5e6f7a8b9c0d1","start_time":"2025-03-10T09:00:00Z","end_time":"2025-03-10T10:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	req.Header.Set(HeaderUserID, "66f1a2b3c4d5e6f7a8b9c0d2")
	req.Header.Set(HeaderUserRole, model.RoleFaculty)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected %d, got %d: %s", http.StatusCreated, rec.Code, rec.Body.String())
	}
	if captured == nil {
		t.Fatal("service was not called")
	}
	if !captured.CanBookRooms {
		t.Error("faculty role must grant the booking capability")
	}
	if captured.RequesterID != "66f1a2b3c4d5e6f7a8b9c0d2" {
		t.Errorf("requester ID not taken from header, got %q", captured.RequesterID)
	}
}

func TestCreate_StudentRoleLacksBookingCapability(t *testing.T) {
	var captured *model.BookingRequest
	svc := &mockBookingService{
		AdmitFunc: func(ctx context.Context, req *model.BookingRequest) (*model.Booking, error) {
			captured = req
			return nil, apperrors.Forbidden("requester is not permitted to book rooms")
		},
	}
	router := newTestRouter(svc)

	body := `{"room_id":"66f1a2b3c4d5e6f7a8b9c0d1","start_time":"2025-03-10T09:00:00Z","end_time":"2025-03-10T10:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	req.Header.Set(HeaderUserID, "66f1a2b3c4d5e6f7a8b9c0d3")
	req.Header.Set(HeaderUserRole, model.RoleStudent)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("expected %d, got %d", http.StatusForbidden, rec.Code)
	}
	if captured != nil && captured.CanBookRooms {
		t.Error("student role must not grant the booking capability")
	}
}

func TestCreate_ConflictMapsTo409(t *testing.T) {
	svc := &mockBookingService{
		AdmitFunc: func(ctx context.Context, req *model.BookingRequest) (*model.Booking, error) {
			return nil, apperrors.Conflict("booking window conflicts with an existing booking")
		},
	}
	router := newTestRouter(svc)

	body := `{"room_id":"66f1a2b3c4d5e6f7a8b9c0d1","start_time":"2025-03-10T09:00:00Z","end_time":"2025-03-10T10:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	req.Header.Set(HeaderUserID, "66f1a2b3c4d5e6f7a8b9c0d2")
	req.Header.Set(HeaderUserRole, model.RoleFaculty)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Errorf("expected %d, got %d", http.StatusConflict, rec.Code)
	}
}

func TestApprove_RequiresAdminRole(t *testing.T) {
	svc := &mockBookingService{
		ApproveFunc: func(ctx context.Context, id string) (*model.Booking, error) {
			t.Error("service must not be called without admin role")
			return nil, nil
		},
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/id/66f1a2b3c4d5e6f7a8b9c0aa/approve", nil)
	req.Header.Set(HeaderUserID, "66f1a2b3c4d5e6f7a8b9c0d2")
	req.Header.Set(HeaderUserRole, model.RoleFaculty)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("expected %d, got %d", http.StatusForbidden, rec.Code)
	}
}

func TestApprove_AdminSucceeds(t *testing.T) {
	svc := &mockBookingService{
		ApproveFunc: func(ctx context.Context, id string) (*model.Booking, error) {
			return &model.Booking{ID: id, Status: model.StatusApproved}, nil
		},
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/id/66f1a2b3c4d5e6f7a8b9c0aa/approve", nil)
	req.Header.Set(HeaderUserID, "66f1a2b3c4d5e6f7a8b9c0d9")
	req.Header.Set(HeaderUserRole, model.RoleAdmin)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
}
