package service

import (
	"context"
	"testing"
	"time"

	bookingserrors "classroom/internal/bookings/errors"
	apperrors "classroom/pkg/errors"
	"classroom/pkg/model"
)

func pendingBooking() *model.Booking {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	return &model.Booking{
		ID:        "66f1a2b3c4d5e6f7a8b9c0aa",
		RoomID:    "66f1a2b3c4d5e6f7a8b9c0d1",
		FacultyID: "66f1a2b3c4d5e6f7a8b9c0d2",
		TimeWindow: model.TimeWindow{
			Start: start,
			End:   start.Add(time.Hour),
		},
		PriorityExempt: true,
		Status:         model.StatusPending,
	}
}

func TestApprove_SchedulesNotifications(t *testing.T) {
	f := newServiceFixture()
	f.repo.FindByIDFunc = func(ctx context.Context, id string) (*model.Booking, error) {
		return pendingBooking(), nil
	}

	var updatedStatus string
	f.repo.UpdateStatusFunc = func(ctx context.Context, id, status string) error {
		updatedStatus = status
		return nil
	}

	booking, err := f.service.Approve(context.Background(), "66f1a2b3c4d5e6f7a8b9c0aa")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updatedStatus != model.StatusApproved {
		t.Errorf("expected status update to Approved, got %q", updatedStatus)
	}
	if booking.Status != model.StatusApproved {
		t.Errorf("expected returned booking to be Approved, got %s", booking.Status)
	}
	if len(f.scheduler.scheduled) != 1 {
		t.Errorf("expected notifications to be scheduled on approval, got %d", len(f.scheduler.scheduled))
	}
}

func TestReject_DoesNotSchedule(t *testing.T) {
	f := newServiceFixture()
	f.repo.FindByIDFunc = func(ctx context.Context, id string) (*model.Booking, error) {
		return pendingBooking(), nil
	}

	booking, err := f.service.Reject(context.Background(), "66f1a2b3c4d5e6f7a8b9c0aa")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if booking.Status != model.StatusRejected {
		t.Errorf("expected Rejected, got %s", booking.Status)
	}
	if len(f.scheduler.scheduled) != 0 {
		t.Errorf("rejection must not schedule notifications")
	}
}

func TestApprove_NonPendingIsConflict(t *testing.T) {
	f := newServiceFixture()
	f.repo.FindByIDFunc = func(ctx context.Context, id string) (*model.Booking, error) {
		b := pendingBooking()
		b.Status = model.StatusApproved
		return b, nil
	}
	f.repo.UpdateStatusFunc = func(ctx context.Context, id, status string) error {
		t.Error("status must not be updated for non-pending bookings")
		return nil
	}

	_, err := f.service.Approve(context.Background(), "66f1a2b3c4d5e6f7a8b9c0aa")
	if err == nil {
		t.Fatal("expected conflict error")
	}
	if appErr := apperrors.AsAppError(err); appErr.Code != apperrors.CodeConflict {
		t.Errorf("expected %s, got %s", apperrors.CodeConflict, appErr.Code)
	}
}

func TestApprove_NotFound(t *testing.T) {
	f := newServiceFixture()
	f.repo.FindByIDFunc = func(ctx context.Context, id string) (*model.Booking, error) {
		return nil, bookingserrors.ErrNotFound
	}

	_, err := f.service.Approve(context.Background(), "66f1a2b3c4d5e6f7a8b9c0aa")
	if err == nil {
		t.Fatal("expected not found error")
	}
	if appErr := apperrors.AsAppError(err); appErr.Code != apperrors.CodeNotFound {
		t.Errorf("expected %s, got %s", apperrors.CodeNotFound, appErr.Code)
	}
}
