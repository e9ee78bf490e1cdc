package service

import (
	"context"
	"testing"
	"time"

	bookingserrors "classroom/internal/bookings/errors"
	"classroom/pkg/config"
	"classroom/pkg/logger"
	"classroom/pkg/model"
)

type mockRoomRepository struct {
	FindByIDFunc func(ctx context.Context, id string) (*model.Room, error)
	FindAllFunc  func(ctx context.Context, filter model.RoomFilter) ([]*model.Room, error)
}

func (m *mockRoomRepository) FindByID(ctx context.Context, id string) (*model.Room, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockRoomRepository) FindAll(ctx context.Context, filter model.RoomFilter) ([]*model.Room, error) {
	return m.FindAllFunc(ctx, filter)
}

type mockBookingSchedule struct {
	FindCurrentFunc  func(ctx context.Context, roomID string, now time.Time) (*model.Booking, error)
	FindUpcomingFunc func(ctx context.Context, roomID string, now time.Time, limit int) ([]*model.Booking, error)
}

func (m *mockBookingSchedule) FindCurrent(ctx context.Context, roomID string, now time.Time) (*model.Booking, error) {
	if m.FindCurrentFunc != nil {
		return m.FindCurrentFunc(ctx, roomID, now)
	}
	return nil, bookingserrors.ErrNotFound
}

func (m *mockBookingSchedule) FindUpcoming(ctx context.Context, roomID string, now time.Time, limit int) ([]*model.Booking, error) {
	if m.FindUpcomingFunc != nil {
		return m.FindUpcomingFunc(ctx, roomID, now, limit)
	}
	return nil, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Log: logger.New(logger.Config{Level: "error", Format: logger.JSON, Service: "test"}),
	}
}

func TestListRooms_OccupiedAndAvailable(t *testing.T) {
	now := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

	rooms := &mockRoomRepository{
		FindAllFunc: func(ctx context.Context, filter model.RoomFilter) ([]*model.Room, error) {
			return []*model.Room{
				{ID: "room-busy", Name: "A-101"},
				{ID: "room-free", Name: "A-102"},
			}, nil
		},
	}
	schedule := &mockBookingSchedule{
		FindCurrentFunc: func(ctx context.Context, roomID string, at time.Time) (*model.Booking, error) {
			if roomID == "room-busy" {
				return &model.Booking{
					ID:     "66f1a2b3c4d5e6f7a8b9c0aa",
					RoomID: roomID,
					TimeWindow: model.TimeWindow{
						Start: now.Add(-30 * time.Minute),
						End:   now.Add(30 * time.Minute),
					},
					Status: model.StatusApproved,
				}, nil
			}
			return nil, bookingserrors.ErrNotFound
		},
	}

	svc := NewAvailabilityService(testConfig(), rooms, schedule)
	result, err := svc.ListRooms(context.Background(), model.RoomFilter{}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("expected 2 rooms, got %d", len(result))
	}

	if result[0].Status != RoomStatusOccupied {
		t.Errorf("expected %s, got %s", RoomStatusOccupied, result[0].Status)
	}
	if result[0].CurrentBooking == nil {
		t.Error("occupied room must carry its current booking")
	}
	if result[1].Status != RoomStatusAvailable {
		t.Errorf("expected %s, got %s", RoomStatusAvailable, result[1].Status)
	}
	if result[1].CurrentBooking != nil {
		t.Error("available room must not carry a current booking")
	}
}

func TestListRooms_CampusFilterIsNormalized(t *testing.T) {
	var gotFilter model.RoomFilter
	rooms := &mockRoomRepository{
		FindAllFunc: func(ctx context.Context, filter model.RoomFilter) ([]*model.Room, error) {
			gotFilter = filter
			return nil, nil
		},
	}

	svc := NewAvailabilityService(testConfig(), rooms, &mockBookingSchedule{})
	_, err := svc.ListRooms(context.Background(), model.RoomFilter{Campus: "  North   Campus "}, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotFilter.Campus != "North Campus" {
		t.Errorf("expected normalized campus, got %q", gotFilter.Campus)
	}
}

func TestListRooms_IncludesUpcoming(t *testing.T) {
	now := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

	rooms := &mockRoomRepository{
		FindAllFunc: func(ctx context.Context, filter model.RoomFilter) ([]*model.Room, error) {
			return []*model.Room{{ID: "room-1", Name: "A-101"}}, nil
		},
	}
	schedule := &mockBookingSchedule{
		FindUpcomingFunc: func(ctx context.Context, roomID string, at time.Time, limit int) ([]*model.Booking, error) {
			return []*model.Booking{
				{ID: "66f1a2b3c4d5e6f7a8b9c0ab", RoomID: roomID},
				{ID: "66f1a2b3c4d5e6f7a8b9c0ac", RoomID: roomID},
			}, nil
		},
	}

	svc := NewAvailabilityService(testConfig(), rooms, schedule)
	result, err := svc.ListRooms(context.Background(), model.RoomFilter{}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result[0].UpcomingBookings) != 2 {
		t.Errorf("expected 2 upcoming bookings, got %d", len(result[0].UpcomingBookings))
	}
}
