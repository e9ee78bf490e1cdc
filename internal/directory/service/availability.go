package service

import (
	"context"
	"errors"
	"time"

	bookingserrors "classroom/internal/bookings/errors"
	"classroom/internal/directory/repository"
	"classroom/pkg/config"
	apperrors "classroom/pkg/errors"
	"classroom/pkg/model"
	"classroom/pkg/sanitizer"
)

const (
	RoomStatusAvailable = "Available"
	RoomStatusOccupied  = "Occupied"

	upcomingLimit = 3
)

// BookingSchedule is the slice of the booking store the availability
// listing needs.
type BookingSchedule interface {
	FindCurrent(ctx context.Context, roomID string, now time.Time) (*model.Booking, error)
	FindUpcoming(ctx context.Context, roomID string, now time.Time, limit int) ([]*model.Booking, error)
}

// RoomAvailability is a room annotated with its live occupancy.
type RoomAvailability struct {
	Room             *model.Room      `json:"room"`
	Status           string           `json:"status"`
	CurrentBooking   *model.Booking   `json:"current_booking,omitempty"`
	UpcomingBookings []*model.Booking `json:"upcoming_bookings,omitempty"`
}

type AvailabilityService interface {
	ListRooms(ctx context.Context, filter model.RoomFilter, now time.Time) ([]*RoomAvailability, error)
}

type availabilityService struct {
	cfg      *config.Config
	rooms    repository.RoomRepository
	schedule BookingSchedule
}

func NewAvailabilityService(cfg *config.Config, rooms repository.RoomRepository, schedule BookingSchedule) AvailabilityService {
	return &availabilityService{
		cfg:      cfg,
		rooms:    rooms,
		schedule: schedule,
	}
}

// ListRooms returns every room matching the filter with its occupancy at
// the given instant. A room holding an approved booking whose window
// covers now is Occupied, otherwise Available.
func (s *availabilityService) ListRooms(ctx context.Context, filter model.RoomFilter, now time.Time) ([]*RoomAvailability, error) {
	filter.Campus = sanitizer.NormalizeCampus(filter.Campus)

	rooms, err := s.rooms.FindAll(ctx, filter)
	if err != nil {
		return nil, apperrors.Internal("failed to list rooms", err)
	}

	result := make([]*RoomAvailability, 0, len(rooms))
	for _, room := range rooms {
		availability := &RoomAvailability{
			Room:   room,
			Status: RoomStatusAvailable,
		}

		current, err := s.schedule.FindCurrent(ctx, room.ID, now)
		switch {
		case err == nil:
			availability.Status = RoomStatusOccupied
			availability.CurrentBooking = current
		case errors.Is(err, bookingserrors.ErrNotFound):
			// room is free right now
		default:
			return nil, apperrors.Internal("failed to resolve current booking", err)
		}

		upcoming, err := s.schedule.FindUpcoming(ctx, room.ID, now, upcomingLimit)
		if err != nil {
			return nil, apperrors.Internal("failed to resolve upcoming bookings", err)
		}
		availability.UpcomingBookings = upcoming

		result = append(result, availability)
	}

	return result, nil
}
