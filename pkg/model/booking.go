package model

import "time"

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

type Booking struct {
	ID         string `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	RoomID     string `json:"room_id" bson:"room_id" validate:"required,mongodb"`
	FacultyID  string `json:"faculty_id" bson:"faculty_id" validate:"required,mongodb"`
	BatchName  string `json:"batch,omitempty" bson:"batch,omitempty" validate:"omitempty,min=1,max=100"`
	TimeWindow `bson:",inline"`
	// PriorityExempt bookings bypass the overlap rejection and enter as
	// Pending; they hold no room until approved.
	PriorityExempt bool      `json:"is_priority_exempt" bson:"is_priority_exempt"`
	Status         string    `json:"status" bson:"status" validate:"required,oneof=Pending Approved Rejected"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at" validate:"omitempty"`
}

// BookingRequest is the admission input. Requester identity and the
// booking capability are resolved by the caller; this engine trusts them.
type BookingRequest struct {
	RoomID       string `json:"room_id" validate:"required,mongodb"`
	RequesterID  string `json:"-" validate:"required,mongodb"`
	CanBookRooms bool   `json:"-"`
	BatchName    string `json:"batch,omitempty" validate:"omitempty,min=1,max=100"`
	TimeWindow
	PriorityExempt bool `json:"is_priority_exempt"`
}
