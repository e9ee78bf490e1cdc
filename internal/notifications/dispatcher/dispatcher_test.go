package dispatcher

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	bookingserrors "classroom/internal/bookings/errors"
	"classroom/pkg/config"
	"classroom/pkg/logger"
	"classroom/pkg/mail"
	"classroom/pkg/model"
)

type mockBookingSource struct {
	FindByIDFunc func(ctx context.Context, id string) (*model.Booking, error)
}

func (m *mockBookingSource) FindByID(ctx context.Context, id string) (*model.Booking, error) {
	return m.FindByIDFunc(ctx, id)
}

type mockRoomSource struct {
	FindByIDFunc func(ctx context.Context, id string) (*model.Room, error)
}

func (m *mockRoomSource) FindByID(ctx context.Context, id string) (*model.Room, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return &model.Room{ID: id, Name: "A-101", Campus: "North Campus"}, nil
}

type mockUserSource struct {
	FindByIDFunc          func(ctx context.Context, id string) (*model.User, error)
	FindStudentEmailsFunc func(ctx context.Context, batchName string) ([]string, error)
}

func (m *mockUserSource) FindByID(ctx context.Context, id string) (*model.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return &model.User{ID: id, Username: "Dr. Rao", Email: "rao@example.edu", Role: model.RoleFaculty}, nil
}

func (m *mockUserSource) FindStudentEmails(ctx context.Context, batchName string) ([]string, error) {
	if m.FindStudentEmailsFunc != nil {
		return m.FindStudentEmailsFunc(ctx, batchName)
	}
	return []string{"s1@example.edu", "s2@example.edu"}, nil
}

type mockSender struct {
	SendBatchFunc func(ctx context.Context, messages []mail.Message) error

	batches [][]mail.Message
}

func (m *mockSender) SendBatch(ctx context.Context, messages []mail.Message) error {
	m.batches = append(m.batches, messages)
	if m.SendBatchFunc != nil {
		return m.SendBatchFunc(ctx, messages)
	}
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		MailFrom:    "no-reply@classroom.local",
		FeedbackURL: "https://classroom.local/feedback",
		Log:         logger.New(logger.Config{Level: "error", Format: logger.JSON, Service: "test"}),
	}
}

func approvedBooking() *model.Booking {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	return &model.Booking{
		ID:        "66f1a2b3c4d5e6f7a8b9c0aa",
		RoomID:    "66f1a2b3c4d5e6f7a8b9c0d1",
		FacultyID: "66f1a2b3c4d5e6f7a8b9c0d2",
		BatchName: "CS 2024",
		TimeWindow: model.TimeWindow{
			Start: start,
			End:   start.Add(time.Hour),
		},
		Status: model.StatusApproved,
	}
}

func newDispatcherFixture(booking *model.Booking, err error) (*Dispatcher, *mockSender) {
	bookings := &mockBookingSource{
		FindByIDFunc: func(ctx context.Context, id string) (*model.Booking, error) {
			return booking, err
		},
	}
	sender := &mockSender{}
	d := New(testConfig(), bookings, &mockRoomSource{}, &mockUserSource{}, sender)
	return d, sender
}

func TestDispatch_SendsFacultyAndStudentMessages(t *testing.T) {
	d, sender := newDispatcherFixture(approvedBooking(), nil)

	if err := d.Dispatch(context.Background(), "66f1a2b3c4d5e6f7a8b9c0aa", model.KindPreStart); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sender.batches) != 1 {
		t.Fatalf("expected one batch, got %d", len(sender.batches))
	}
	batch := sender.batches[0]
	if len(batch) != 2 {
		t.Fatalf("expected faculty and student messages, got %d", len(batch))
	}

	faculty := batch[0]
	if faculty.To[0] != "rao@example.edu" {
		t.Errorf("faculty message went to %v", faculty.To)
	}
	if !strings.Contains(faculty.Subject, "Upcoming Class in A-101") {
		t.Errorf("unexpected subject %q", faculty.Subject)
	}
	if !strings.Contains(faculty.Body, "09:00 AM - 10:00 AM") {
		t.Errorf("body must carry the class time range, got %q", faculty.Body)
	}
	if !strings.Contains(faculty.Body, "Campus: North Campus") {
		t.Errorf("body must carry the campus, got %q", faculty.Body)
	}

	students := batch[1]
	if len(students.To) != 2 {
		t.Errorf("expected 2 student recipients, got %d", len(students.To))
	}
	if !strings.Contains(students.Body, "09:00 AM - 10:00 AM") {
		t.Errorf("student body must carry the class time range, got %q", students.Body)
	}
	if !strings.Contains(students.Body, "Campus: North Campus") {
		t.Errorf("student body must carry the campus, got %q", students.Body)
	}
}

func TestDispatch_CompletionCarriesFeedbackPrompt(t *testing.T) {
	d, sender := newDispatcherFixture(approvedBooking(), nil)

	if err := d.Dispatch(context.Background(), "66f1a2b3c4d5e6f7a8b9c0aa", model.KindCompletion); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	batch := sender.batches[0]
	if !strings.Contains(batch[0].Subject, "Feedback Required") {
		t.Errorf("unexpected subject %q", batch[0].Subject)
	}
	students := batch[1]
	if !strings.Contains(students.Body, "feedback") {
		t.Errorf("student completion body must prompt for feedback, got %q", students.Body)
	}
	if !strings.Contains(students.Body, "https://classroom.local/feedback") {
		t.Errorf("student completion body must carry the feedback link, got %q", students.Body)
	}
}

func TestDispatch_MissingBookingIsDropped(t *testing.T) {
	d, sender := newDispatcherFixture(nil, bookingserrors.ErrNotFound)

	if err := d.Dispatch(context.Background(), "66f1a2b3c4d5e6f7a8b9c0aa", model.KindStart); err != nil {
		t.Fatalf("missing booking must not be an error: %v", err)
	}
	if len(sender.batches) != 0 {
		t.Error("no mail must be sent for a missing booking")
	}
}

func TestDispatch_NonApprovedBookingIsDropped(t *testing.T) {
	booking := approvedBooking()
	booking.Status = model.StatusRejected
	d, sender := newDispatcherFixture(booking, nil)

	if err := d.Dispatch(context.Background(), booking.ID, model.KindStart); err != nil {
		t.Fatalf("non-approved booking must not be an error: %v", err)
	}
	if len(sender.batches) != 0 {
		t.Error("no mail must be sent for a non-approved booking")
	}
}

func TestDispatch_NoBatchSkipsStudentMessage(t *testing.T) {
	booking := approvedBooking()
	booking.BatchName = ""
	d, sender := newDispatcherFixture(booking, nil)

	if err := d.Dispatch(context.Background(), booking.ID, model.KindStart); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	batch := sender.batches[0]
	if len(batch) != 1 {
		t.Fatalf("expected only the faculty message, got %d", len(batch))
	}
	if !strings.Contains(batch[0].Body, "N/A") {
		t.Errorf("faculty body must fall back to N/A for the batch, got %q", batch[0].Body)
	}
}

func TestDispatch_SendFailureIsReturned(t *testing.T) {
	d, sender := newDispatcherFixture(approvedBooking(), nil)
	sender.SendBatchFunc = func(ctx context.Context, messages []mail.Message) error {
		return errors.New("smtp unreachable")
	}

	if err := d.Dispatch(context.Background(), "66f1a2b3c4d5e6f7a8b9c0aa", model.KindStart); err == nil {
		t.Fatal("delivery failure must be returned for retry")
	}
}
