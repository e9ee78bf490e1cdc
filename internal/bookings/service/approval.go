package service

import (
	"context"
	"errors"

	bookingserrors "classroom/internal/bookings/errors"
	apperrors "classroom/pkg/errors"
	"classroom/pkg/model"
)

// Approve moves a pending booking to Approved and schedules its
// notifications. Only Pending bookings can transition.
func (s *bookingService) Approve(ctx context.Context, id string) (*model.Booking, error) {
	booking, err := s.transition(ctx, id, model.StatusApproved)
	if err != nil {
		return nil, err
	}

	s.scheduleNotifications(ctx, booking)

	if err := s.events.BookingApproved(ctx, booking); err != nil {
		s.cfg.Log.Warn("failed to publish booking approved event", "booking_id", booking.ID, "error", err)
	}

	return booking, nil
}

// Reject moves a pending booking to Rejected. Any notifications already
// queued for it are dropped at dispatch time by the status gate.
func (s *bookingService) Reject(ctx context.Context, id string) (*model.Booking, error) {
	booking, err := s.transition(ctx, id, model.StatusRejected)
	if err != nil {
		return nil, err
	}

	if err := s.events.BookingRejected(ctx, booking); err != nil {
		s.cfg.Log.Warn("failed to publish booking rejected event", "booking_id", booking.ID, "error", err)
	}

	return booking, nil
}

func (s *bookingService) transition(ctx context.Context, id, status string) (*model.Booking, error) {
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, bookingserrors.ErrNotFound):
			return nil, apperrors.NotFoundWithID("Booking", id)
		case errors.Is(err, bookingserrors.ErrInvalidID):
			return nil, apperrors.InvalidInput(err.Error())
		default:
			return nil, apperrors.Internal("failed to fetch booking", err)
		}
	}

	if booking.Status != model.StatusPending {
		return nil, apperrors.Conflict(bookingserrors.ErrNotPending.Error()).WithDetails(map[string]any{
			"booking_id": id,
			"status":     booking.Status,
		})
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Booking", id)
		}
		return nil, apperrors.Internal("failed to update booking status", err)
	}
	booking.Status = status

	s.cfg.Log.Info("booking status updated", "booking_id", id, "status", status)
	return booking, nil
}
