package errors

import (
	"errors"
	"net/http"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(CodeValidation, "validation failed", http.StatusUnprocessableEntity)

	if err.Code != CodeValidation {
		t.Errorf("expected code %s, got %s", CodeValidation, err.Code)
	}
	if err.Message != "validation failed" {
		t.Errorf("expected message 'validation failed', got %s", err.Message)
	}
	if err.HTTPStatus != http.StatusUnprocessableEntity {
		t.Errorf("expected status %d, got %d", http.StatusUnprocessableEntity, err.HTTPStatus)
	}
}

func TestWrap(t *testing.T) {
	originalErr := errors.New("database connection failed")
	wrapped := Wrap(originalErr, CodeInternal, "internal error", http.StatusInternalServerError)

	if wrapped.Err != originalErr {
		t.Errorf("expected wrapped error to contain original error")
	}
	if !errors.Is(wrapped, originalErr) {
		t.Errorf("expected errors.Is to unwrap to original error")
	}
	if wrapped.Code != CodeInternal {
		t.Errorf("expected code %s, got %s", CodeInternal, wrapped.Code)
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without cause",
			appErr:   Conflict("room already booked"),
			expected: "CONFLICT: room already booked",
		},
		{
			name:     "with cause",
			appErr:   Internal("query failed", errors.New("timeout")),
			expected: "INTERNAL_ERROR: query failed (caused by: timeout)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.appErr.Error(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestNotFoundWithID(t *testing.T) {
	err := NotFoundWithID("Room", "66f1a2b3c4d5e6f7a8b9c0d1")

	if err.Code != CodeNotFound {
		t.Errorf("expected code %s, got %s", CodeNotFound, err.Code)
	}
	if err.Details["resource"] != "Room" {
		t.Errorf("expected resource detail 'Room', got %v", err.Details["resource"])
	}
	if err.Details["id"] != "66f1a2b3c4d5e6f7a8b9c0d1" {
		t.Errorf("expected id detail, got %v", err.Details["id"])
	}
}

func TestIsAppError(t *testing.T) {
	if !IsAppError(Forbidden("no booking capability")) {
		t.Error("expected AppError to be recognized")
	}
	if IsAppError(errors.New("plain error")) {
		t.Error("expected plain error to not be recognized")
	}
}

func TestAsAppError(t *testing.T) {
	appErr := Conflict("conflict")
	if AsAppError(appErr) != appErr {
		t.Error("expected same AppError back")
	}

	converted := AsAppError(errors.New("plain"))
	if converted.Code != CodeInternal {
		t.Errorf("expected plain error to convert to internal, got %s", converted.Code)
	}
}
