package model

import "time"

// BookingLock is an advisory lock serializing the overlap-check-then-insert
// sequence per room. Locks auto-expire so a crashed request cannot wedge
// a room.
type BookingLock struct {
	ID        string    `bson:"_id" json:"id"`
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
