package dispatcher

import (
	"fmt"

	"classroom/pkg/model"
)

// clockFormat renders instants the way recipients read a timetable.
const clockFormat = "03:04 PM"

type renderContext struct {
	booking     *model.Booking
	room        *model.Room
	facultyName string
	batchName   string
	feedbackURL string
}

func (rc renderContext) batch() string {
	if rc.batchName == "" {
		return "N/A"
	}
	return rc.batchName
}

func (rc renderContext) timeRange() string {
	return fmt.Sprintf("%s - %s",
		rc.booking.Start.Format(clockFormat),
		rc.booking.End.Format(clockFormat),
	)
}

func renderSubject(kind model.NotificationKind, rc renderContext) string {
	switch kind {
	case model.KindPreStart:
		return fmt.Sprintf("Upcoming Class in %s - Starting in 10 minutes", rc.room.Name)
	case model.KindStart:
		return fmt.Sprintf("Class Started in %s", rc.room.Name)
	case model.KindCompletion:
		return fmt.Sprintf("Class Completed in %s - Feedback Required", rc.room.Name)
	}
	return ""
}

func renderFacultyBody(kind model.NotificationKind, rc renderContext) string {
	switch kind {
	case model.KindPreStart:
		return fmt.Sprintf(
			"Dear %s,\nYour class in %s will start in 10 minutes.\n\nDetails:\n- Time: %s\n- Batch: %s\n- Campus: %s\n\nPlease ensure you reach the classroom on time.",
			rc.facultyName, rc.room.Name, rc.timeRange(), rc.batch(), rc.room.Campus,
		)
	case model.KindStart:
		return fmt.Sprintf(
			"Dear %s,\nYour class in %s has started.\n\nDetails:\n- Duration: %s\n- Batch: %s\n- Campus: %s",
			rc.facultyName, rc.room.Name, rc.timeRange(), rc.batch(), rc.room.Campus,
		)
	case model.KindCompletion:
		return fmt.Sprintf(
			"Dear %s,\nYour class in %s has been completed.\n\nThank you for using our classroom booking system.",
			rc.facultyName, rc.room.Name,
		)
	}
	return ""
}

func renderStudentBody(kind model.NotificationKind, rc renderContext) string {
	switch kind {
	case model.KindPreStart:
		return fmt.Sprintf(
			"Dear Student,\nYour class in %s will start in 10 minutes.\n\nDetails:\n- Faculty: %s\n- Time: %s\n- Campus: %s\n\nPlease reach the classroom on time.",
			rc.room.Name, rc.facultyName, rc.timeRange(), rc.room.Campus,
		)
	case model.KindStart:
		return fmt.Sprintf(
			"Dear Student,\nYour class in %s has started.\n\nDetails:\n- Faculty: %s\n- Duration: %s\n- Campus: %s",
			rc.room.Name, rc.facultyName, rc.timeRange(), rc.room.Campus,
		)
	case model.KindCompletion:
		body := fmt.Sprintf(
			"Dear Student,\nYour class in %s has been completed.\n\nPlease take a moment to provide feedback about the classroom:",
			rc.room.Name,
		)
		if rc.feedbackURL != "" {
			body += fmt.Sprintf("\n%s", rc.feedbackURL)
		}
		body += "\n\nYour feedback helps us maintain and improve our facilities.\nThank you!"
		return body
	}
	return ""
}
