package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingserrors "classroom/internal/bookings/errors"
	"classroom/internal/bookings/repository"
	bookingvalidator "classroom/internal/bookings/validator"
	directoryerrors "classroom/internal/directory/errors"
	"classroom/internal/events"
	"classroom/pkg/config"
	apperrors "classroom/pkg/errors"
	"classroom/pkg/model"
	"classroom/pkg/sanitizer"
)

// lockTTL bounds how long an admission request may hold a room lock.
const lockTTL = 10 * time.Second

// RoomDirectory is the slice of the directory the admission engine needs.
type RoomDirectory interface {
	FindByID(ctx context.Context, id string) (*model.Room, error)
}

type BatchDirectory interface {
	FindByName(ctx context.Context, name string) (*model.Batch, error)
}

// NotificationScheduler plans the time-based notifications for a booking.
// Scheduling runs after the booking is committed; a scheduling failure
// never rolls back an admitted booking.
type NotificationScheduler interface {
	Schedule(ctx context.Context, booking *model.Booking) error
}

type BookingService interface {
	Admit(ctx context.Context, req *model.BookingRequest) (*model.Booking, error)
	Approve(ctx context.Context, id string) (*model.Booking, error)
	Reject(ctx context.Context, id string) (*model.Booking, error)
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	GetAll(ctx context.Context, limit int, offset int64) ([]*model.Booking, int64, error)
	GetByFaculty(ctx context.Context, facultyID, status, dateRange string, now time.Time) ([]*model.Booking, error)
}

type bookingService struct {
	cfg       *config.Config
	repo      repository.BookingRepository
	lockRepo  repository.BookingLockRepository
	rooms     RoomDirectory
	batches   BatchDirectory
	validator *bookingvalidator.BookingValidator
	scheduler NotificationScheduler
	events    events.Publisher
}

func NewBookingService(
	cfg *config.Config,
	repo repository.BookingRepository,
	lockRepo repository.BookingLockRepository,
	rooms RoomDirectory,
	batches BatchDirectory,
	validator *bookingvalidator.BookingValidator,
	scheduler NotificationScheduler,
	publisher events.Publisher,
) BookingService {
	return &bookingService{
		cfg:       cfg,
		repo:      repo,
		lockRepo:  lockRepo,
		rooms:     rooms,
		batches:   batches,
		validator: validator,
		scheduler: scheduler,
		events:    publisher,
	}
}

// Admit runs the admission decision for a booking request. Regular
// requests are rejected on any overlap with an approved booking and
// otherwise enter as Approved. Priority-exempt requests skip the overlap
// check and always enter as Pending for manual review.
//
// The overlap check and insert run inside a transaction under a per-room
// advisory lock, so two concurrent requests for the same window cannot
// both be approved.
func (s *bookingService) Admit(ctx context.Context, req *model.BookingRequest) (*model.Booking, error) {
	req.BatchName = sanitizer.NormalizeBatchName(req.BatchName)

	if err := s.validator.ValidateRequest(req); err != nil {
		var validationErrs bookingvalidator.ValidationErrors
		if errors.As(err, &validationErrs) {
			details := make(map[string]any, len(validationErrs))
			for _, ve := range validationErrs {
				details[ve.Field] = ve.Message
			}
			return nil, apperrors.Validation("booking request validation failed", details)
		}
		return nil, apperrors.InvalidInput(err.Error())
	}

	if !req.CanBookRooms {
		return nil, apperrors.Forbidden("requester is not permitted to book rooms")
	}

	if _, err := s.rooms.FindByID(ctx, req.RoomID); err != nil {
		if errors.Is(err, directoryerrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Room", req.RoomID)
		}
		return nil, apperrors.Internal("failed to resolve room", err)
	}

	if req.BatchName != "" {
		if _, err := s.batches.FindByName(ctx, req.BatchName); err != nil {
			if errors.Is(err, directoryerrors.ErrNotFound) {
				return nil, apperrors.NotFoundWithID("Batch", req.BatchName)
			}
			return nil, apperrors.Internal("failed to resolve batch", err)
		}
	}

	lockID := fmt.Sprintf("room_booking_%s", req.RoomID)
	lock := &model.BookingLock{
		ID:        lockID,
		ExpiresAt: time.Now().Add(lockTTL),
	}
	if _, err := s.lockRepo.Create(ctx, lock); err != nil {
		s.cfg.Log.Warn("room lock contention", "room_id", req.RoomID, "error", err)
		return nil, apperrors.Conflict("another booking for this room is in progress, please retry")
	}
	defer func() {
		if err := s.lockRepo.Delete(context.WithoutCancel(ctx), lockID); err != nil {
			s.cfg.Log.Warn("failed to release room lock", "lock_id", lockID, "error", err)
		}
	}()

	booking := &model.Booking{
		RoomID:         req.RoomID,
		FacultyID:      req.RequesterID,
		BatchName:      req.BatchName,
		TimeWindow:     req.TimeWindow,
		PriorityExempt: req.PriorityExempt,
		Status:         model.StatusApproved,
	}
	if req.PriorityExempt {
		booking.Status = model.StatusPending
	}

	err := s.repo.ExecuteTransaction(ctx, func(sc context.Context) error {
		if !req.PriorityExempt {
			overlapping, err := s.repo.HasOverlapping(sc, req.RoomID, req.TimeWindow, model.StatusApproved)
			if err != nil {
				return apperrors.Internal("failed to check booking conflicts", err)
			}
			if overlapping {
				return apperrors.Conflict(bookingserrors.ErrTimeConflict.Error())
			}
		}

		return s.repo.Create(sc, booking)
	})
	if err != nil {
		if apperrors.IsAppError(err) {
			return nil, err
		}
		return nil, apperrors.Internal("failed to admit booking", err)
	}

	s.cfg.Log.Info("booking admitted",
		"booking_id", booking.ID,
		"room_id", booking.RoomID,
		"faculty_id", booking.FacultyID,
		"status", booking.Status,
		"priority_exempt", booking.PriorityExempt,
	)

	if booking.Status == model.StatusApproved {
		s.scheduleNotifications(ctx, booking)
	}
	if err := s.events.BookingCreated(ctx, booking); err != nil {
		s.cfg.Log.Warn("failed to publish booking created event", "booking_id", booking.ID, "error", err)
	}

	return booking, nil
}

// scheduleNotifications hands the booking to the scheduler. The booking
// is already committed; failures here are logged and the admission still
// succeeds, the sweep covers the completion notice.
func (s *bookingService) scheduleNotifications(ctx context.Context, booking *model.Booking) {
	if err := s.scheduler.Schedule(ctx, booking); err != nil {
		s.cfg.Log.Warn("failed to schedule notifications",
			"booking_id", booking.ID,
			"error", err,
		)
	}
}

func (s *bookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
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
	return booking, nil
}

func (s *bookingService) GetAll(ctx context.Context, limit int, offset int64) ([]*model.Booking, int64, error) {
	limit = config.NormalizePaginationLimit(limit)
	offset = config.NormalizeOffset(offset)

	bookings, err := s.repo.FindAll(ctx, limit, offset)
	if err != nil {
		return nil, 0, apperrors.Internal("failed to list bookings", err)
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, apperrors.Internal("failed to count bookings", err)
	}

	return bookings, total, nil
}

func (s *bookingService) GetByFaculty(ctx context.Context, facultyID, status, dateRange string, now time.Time) ([]*model.Booking, error) {
	if status != "" &&
		status != model.StatusPending &&
		status != model.StatusApproved &&
		status != model.StatusRejected {
		return nil, apperrors.InvalidInput(fmt.Sprintf("unknown status filter: %s", status))
	}
	if dateRange != "" &&
		dateRange != repository.DateRangePast &&
		dateRange != repository.DateRangeUpcoming {
		return nil, apperrors.InvalidInput(fmt.Sprintf("unknown date range filter: %s", dateRange))
	}

	bookings, err := s.repo.FindByFaculty(ctx, facultyID, status, dateRange, now)
	if err != nil {
		return nil, apperrors.Internal("failed to list bookings by faculty", err)
	}
	return bookings, nil
}
