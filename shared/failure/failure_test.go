package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"shareit/shared/failure"
	"testing"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
		message string
	}{
		{
			name:    "InvalidFromParam",
			failure: failure.InvalidFromParam,
			code:    http.StatusBadRequest,
			message: "invalid from parameter",
		},
		{
			name:    "InvalidSizeParam",
			failure: failure.InvalidSizeParam,
			code:    http.StatusBadRequest,
			message: "invalid size parameter",
		},
		{
			name:    "MissingUserHeader",
			failure: failure.MissingUserHeader,
			code:    http.StatusBadRequest,
			message: "missing or invalid X-Sharer-User-Id header",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, tt.failure.Code)
			}
			if tt.failure.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, tt.failure.Message)
			}
			if tt.failure.Kind != failure.KindInvalidInput {
				t.Errorf("expected kind to be %s, got %s", failure.KindInvalidInput, tt.failure.Kind)
			}
		})
	}
}

func TestBadRequest(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{
			name:     "with error",
			input:    errors.New("validation failed"),
			expected: &failure.Failure{Code: http.StatusBadRequest, Kind: failure.KindInvalidInput, Message: "validation failed"},
		},
		{
			name:     "with nil error",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.BadRequest(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", result)
				}
			} else {
				f, ok := result.(*failure.Failure)
				if !ok {
					t.Errorf("expected result to be *failure.Failure, got %T", result)
				} else {
					expectedF := tt.expected.(*failure.Failure)
					if *f != *expectedF {
						t.Errorf("expected %+v, got %+v", expectedF, f)
					}
				}
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		kind    failure.Kind
		message string
	}{
		{"BadRequestFromString", failure.BadRequestFromString("custom bad request"), http.StatusBadRequest, failure.KindInvalidInput, "custom bad request"},
		{"ItemUnavailable", failure.ItemUnavailable("item not available"), http.StatusBadRequest, failure.KindItemUnavailable, "item not available"},
		{"InternalError", failure.InternalError(errors.New("database connection failed")), http.StatusInternalServerError, failure.KindInternal, "database connection failed"},
		{"Unimplemented", failure.Unimplemented("GetUserByID"), http.StatusNotImplemented, failure.KindUnimplemented, "GetUserByID"},
		{"NotFound", failure.NotFound("user not found"), http.StatusNotFound, failure.KindNotFound, "user not found"},
		{"Conflict", failure.Conflict("booking already APPROVED"), http.StatusConflict, failure.KindConflict, "booking already APPROVED"},
		{"Forbidden", failure.Forbidden("booker is owner"), http.StatusForbidden, failure.KindForbidden, "booker is owner"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := tt.err.(*failure.Failure)
			if !ok {
				t.Fatalf("expected result to be *failure.Failure, got %T", tt.err)
			}
			if f.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, f.Code)
			}
			if f.Kind != tt.kind {
				t.Errorf("expected kind to be %s, got %s", tt.kind, f.Kind)
			}
			if f.Message != tt.message {
				t.Errorf("expected message to be %q, got %q", tt.message, f.Message)
			}
		})
	}
}

func TestInternalError_Nil(t *testing.T) {
	if failure.InternalError(nil) != nil {
		t.Error("expected nil for nil input")
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    &failure.Failure{Code: http.StatusBadRequest, Message: "test"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped failure error",
			input:    fmt.Errorf("create booking: %w", failure.Forbidden("test")),
			expected: http.StatusForbidden,
		},
		{
			name:     "regular error",
			input:    errors.New("regular error"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.GetCode(tt.input)
			if result != tt.expected {
				t.Errorf("expected code to be %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestIsKind(t *testing.T) {
	wrapped := fmt.Errorf("approve: %w", failure.Conflict("booking already APPROVED"))

	if !failure.IsKind(wrapped, failure.KindConflict) {
		t.Error("expected wrapped conflict to be recognised")
	}

	if failure.IsKind(wrapped, failure.KindForbidden) {
		t.Error("conflict must not be reported as forbidden")
	}

	if failure.IsKind(nil, failure.KindInternal) {
		t.Error("nil error must not match any kind")
	}

	if failure.GetKind(errors.New("plain")) != failure.KindInternal {
		t.Error("foreign errors are internal")
	}
}
