// Package dispatcher turns a due notification job into outbound mail.
// The booking's status is re-checked at dispatch time, so jobs queued for
// bookings that were since rejected or deleted are silently dropped.
package dispatcher

import (
	"context"
	"errors"
	"fmt"

	bookingserrors "classroom/internal/bookings/errors"
	directoryerrors "classroom/internal/directory/errors"
	"classroom/pkg/config"
	"classroom/pkg/mail"
	"classroom/pkg/model"
)

type BookingSource interface {
	FindByID(ctx context.Context, id string) (*model.Booking, error)
}

type RoomSource interface {
	FindByID(ctx context.Context, id string) (*model.Room, error)
}

type UserSource interface {
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindStudentEmails(ctx context.Context, batchName string) ([]string, error)
}

type Dispatcher struct {
	cfg      *config.Config
	bookings BookingSource
	rooms    RoomSource
	users    UserSource
	sender   mail.Sender
}

func New(cfg *config.Config, bookings BookingSource, rooms RoomSource, users UserSource, sender mail.Sender) *Dispatcher {
	return &Dispatcher{
		cfg:      cfg,
		bookings: bookings,
		rooms:    rooms,
		users:    users,
		sender:   sender,
	}
}

// Dispatch sends the notification for the booking. A missing booking or
// one no longer approved is not an error; the job is simply consumed.
// A delivery failure is returned so the job can be retried.
func (d *Dispatcher) Dispatch(ctx context.Context, bookingID string, kind model.NotificationKind) error {
	booking, err := d.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) || errors.Is(err, bookingserrors.ErrInvalidID) {
			d.cfg.Log.Info("dropping notification for missing booking",
				"booking_id", bookingID,
				"kind", kind,
			)
			return nil
		}
		return fmt.Errorf("failed to load booking %s: %w", bookingID, err)
	}

	if booking.Status != model.StatusApproved {
		d.cfg.Log.Info("dropping notification for non-approved booking",
			"booking_id", bookingID,
			"kind", kind,
			"status", booking.Status,
		)
		return nil
	}

	room, err := d.rooms.FindByID(ctx, booking.RoomID)
	if err != nil {
		if errors.Is(err, directoryerrors.ErrNotFound) {
			d.cfg.Log.Warn("dropping notification for booking with missing room",
				"booking_id", bookingID,
				"room_id", booking.RoomID,
			)
			return nil
		}
		return fmt.Errorf("failed to load room %s: %w", booking.RoomID, err)
	}

	faculty, err := d.users.FindByID(ctx, booking.FacultyID)
	if err != nil {
		if errors.Is(err, directoryerrors.ErrNotFound) {
			d.cfg.Log.Warn("dropping notification for booking with missing faculty",
				"booking_id", bookingID,
				"faculty_id", booking.FacultyID,
			)
			return nil
		}
		return fmt.Errorf("failed to load faculty %s: %w", booking.FacultyID, err)
	}

	rc := renderContext{
		booking:     booking,
		room:        room,
		facultyName: faculty.Username,
		batchName:   booking.BatchName,
		feedbackURL: d.cfg.FeedbackURL,
	}
	subject := renderSubject(kind, rc)

	messages := []mail.Message{
		{
			Subject: subject,
			Body:    renderFacultyBody(kind, rc),
			From:    d.cfg.MailFrom,
			To:      []string{faculty.Email},
		},
	}

	if booking.BatchName != "" {
		studentEmails, err := d.users.FindStudentEmails(ctx, booking.BatchName)
		if err != nil {
			return fmt.Errorf("failed to load students for batch %s: %w", booking.BatchName, err)
		}
		if len(studentEmails) > 0 {
			messages = append(messages, mail.Message{
				Subject: subject,
				Body:    renderStudentBody(kind, rc),
				From:    d.cfg.MailFrom,
				To:      studentEmails,
			})
		}
	}

	if err := d.sender.SendBatch(ctx, messages); err != nil {
		d.cfg.Log.Error("failed to send notification mail",
			"booking_id", bookingID,
			"kind", kind,
			"error", err,
		)
		return err
	}

	d.cfg.Log.Info("notification dispatched",
		"booking_id", bookingID,
		"kind", kind,
		"recipients", len(messages),
	)
	return nil
}
