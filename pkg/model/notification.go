package model

import "time"

// NotificationKind is the closed set of lifecycle notifications tied to
// a booking's time window.
type NotificationKind string

const (
	KindPreStart   NotificationKind = "pre_start"
	KindStart      NotificationKind = "start"
	KindCompletion NotificationKind = "completion"
)

func (k NotificationKind) Valid() bool {
	switch k {
	case KindPreStart, KindStart, KindCompletion:
		return true
	}
	return false
}

const (
	JobPending    = "pending"
	JobProcessing = "processing"
	JobSent       = "sent"
)

// ScheduledNotification is a deferred dispatch job. It exists only in the
// queue collection; jobs are claimed at or after DueAt and consumed once.
type ScheduledNotification struct {
	ID        string           `json:"id,omitempty" bson:"_id,omitempty"`
	BookingID string           `json:"booking_id" bson:"booking_id"`
	Kind      NotificationKind `json:"kind" bson:"kind"`
	DueAt     time.Time        `json:"due_at" bson:"due_at"`
	Status    string           `json:"status" bson:"status"`
	Attempts  int              `json:"attempts" bson:"attempts"`
	ClaimedAt time.Time        `json:"claimed_at,omitempty" bson:"claimed_at,omitempty"`
	CreatedAt time.Time        `json:"created_at" bson:"created_at"`
}
