package model

import (
	"testing"
	"time"
)

func window(startOffset, endOffset time.Duration) TimeWindow {
	base := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	return TimeWindow{Start: base.Add(startOffset), End: base.Add(endOffset)}
}

func TestTimeWindow_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a    TimeWindow
		b    TimeWindow
		want bool
	}{
		{
			name: "partial overlap",
			a:    window(0, time.Hour),
			b:    window(30*time.Minute, 90*time.Minute),
			want: true,
		},
		{
			name: "contained window",
			a:    window(0, 2*time.Hour),
			b:    window(30*time.Minute, time.Hour),
			want: true,
		},
		{
			name: "identical windows",
			a:    window(0, time.Hour),
			b:    window(0, time.Hour),
			want: true,
		},
		{
			name: "touching edges do not overlap",
			a:    window(0, time.Hour),
			b:    window(time.Hour, 2*time.Hour),
			want: false,
		},
		{
			name: "disjoint windows",
			a:    window(0, time.Hour),
			b:    window(3*time.Hour, 4*time.Hour),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps(a, b) = %v, want %v", got, tt.want)
			}
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("Overlaps(b, a) = %v, want %v (must be symmetric)", got, tt.want)
			}
		})
	}
}

func TestTimeWindow_OverlapsSelf(t *testing.T) {
	w := window(0, time.Hour)
	if !w.Overlaps(w) {
		t.Error("a window with positive duration must overlap itself")
	}
}

func TestTimeWindow_IsValid(t *testing.T) {
	if !window(0, time.Hour).IsValid() {
		t.Error("expected valid window")
	}
	if window(time.Hour, time.Hour).IsValid() {
		t.Error("zero-length window must be invalid")
	}
	if window(time.Hour, 0).IsValid() {
		t.Error("reversed window must be invalid")
	}
}

func TestTimeWindow_Duration(t *testing.T) {
	if d := window(0, 90*time.Minute).Duration(); d != 90*time.Minute {
		t.Errorf("expected 90m duration, got %s", d)
	}
}

func TestTimeWindow_Contains(t *testing.T) {
	w := window(0, time.Hour)

	if !w.Contains(w.Start) {
		t.Error("start instant must be contained")
	}
	if !w.Contains(w.Start.Add(30 * time.Minute)) {
		t.Error("interior instant must be contained")
	}
	if w.Contains(w.End) {
		t.Error("end instant must not be contained")
	}
	if w.Contains(w.Start.Add(-time.Second)) {
		t.Error("instant before start must not be contained")
	}
}
