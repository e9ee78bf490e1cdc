package model

import "time"

// TimeWindow is a half-open interval [Start, End). Two windows that only
// touch at an edge do not overlap.
type TimeWindow struct {
	Start time.Time `json:"start_time" bson:"start_time" validate:"required"`
	End   time.Time `json:"end_time" bson:"end_time" validate:"required,gtfield=Start"`
}

func (w TimeWindow) IsValid() bool {
	return w.Start.Before(w.End)
}

func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.Start.Before(other.End) && other.Start.Before(w.End)
}

func (w TimeWindow) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// Contains reports whether t falls inside the window, start inclusive,
// end exclusive.
func (w TimeWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}
