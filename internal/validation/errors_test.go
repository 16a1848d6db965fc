package validation

import (
	"fmt"
	"strings"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name        string
		errors      []FieldError
		expectError string
	}{
		{"No errors", []FieldError{}, "validation error"},
		{"Single error", []FieldError{{Field: "client", Message: "client is required"}}, "validation error for field 'client': client is required"},
		{"Multiple errors", []FieldError{
			{Field: "client", Message: "client is required"},
			{Field: "duration", Message: "duration has invalid format"},
		}, "multiple validation errors"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ve := &ValidationError{Errors: tt.errors}
			result := ve.Error()

			if tt.name == "Multiple errors" {
				if !strings.Contains(result, tt.expectError) {
					t.Errorf("ValidationError.Error() = %v, expected to contain %v", result, tt.expectError)
				}
			} else if result != tt.expectError {
				t.Errorf("ValidationError.Error() = %v, expected %v", result, tt.expectError)
			}
		})
	}
}

func TestValidationError_ErrorOrNil(t *testing.T) {
	ve := NewValidationError()
	if ve.ErrorOrNil() != nil {
		t.Errorf("ErrorOrNil() should return nil without errors")
	}

	ve.AddRequiredError("task")
	if ve.ErrorOrNil() == nil {
		t.Errorf("ErrorOrNil() should return the error once populated")
	}
}

func TestValidationError_AddHelpers(t *testing.T) {
	ve := NewValidationError()
	ve.AddRequiredError("client")
	ve.AddInvalidFormatError("timestamp", "yesterday", "ISO-8601 instant")
	ve.AddInvalidTypeError("duration", 30, "string")
	ve.AddInvalidValueError("duration", "-PT1H", "must not be negative")
	ve.AddUnknownFieldError("priority", "high")

	expected := []struct {
		field     string
		errorType ValidationErrorType
		message   string
	}{
		{"client", ErrorTypeRequired, "client is required"},
		{"timestamp", ErrorTypeInvalidFormat, "timestamp has invalid format, expected: ISO-8601 instant"},
		{"duration", ErrorTypeInvalidType, "duration must be a string, got int"},
		{"duration", ErrorTypeInvalidValue, "duration has invalid value: must not be negative"},
		{"priority", ErrorTypeUnknownField, "priority is not a recognized field"},
	}

	if len(ve.Errors) != len(expected) {
		t.Fatalf("expected %d errors, got %d", len(expected), len(ve.Errors))
	}
	for i, want := range expected {
		got := ve.Errors[i]
		if got.Field != want.field || got.Type != want.errorType || got.Message != want.message {
			t.Errorf("error %d = %+v, want field=%s type=%s message=%q", i, got, want.field, want.errorType, want.message)
		}
	}

	if n := len(ve.GetFieldErrors("duration")); n != 2 {
		t.Errorf("GetFieldErrors(duration) returned %d errors, want 2", n)
	}
}

func TestIsValidationError(t *testing.T) {
	ve := NewValidationError()
	ve.AddRequiredError("task")

	if !IsValidationError(ve) {
		t.Errorf("IsValidationError should return true for ValidationError")
	}
	if !IsValidationError(fmt.Errorf("record 2: %w", ve)) {
		t.Errorf("IsValidationError should see through wrapping")
	}
	if IsValidationError(fmt.Errorf("plain")) {
		t.Errorf("IsValidationError should return false for other errors")
	}
}

func TestValidationError_GetUserFriendlyMessage(t *testing.T) {
	ve := NewValidationError()
	if msg := ve.GetUserFriendlyMessage(); msg != "Input validation failed" {
		t.Errorf("GetUserFriendlyMessage() = %q", msg)
	}

	ve.AddRequiredError("client")
	if msg := ve.GetUserFriendlyMessage(); msg != "client is required" {
		t.Errorf("GetUserFriendlyMessage() = %q", msg)
	}

	ve.AddRequiredError("task")
	expected := "Multiple validation errors occurred:\n- client is required\n- task is required"
	if msg := ve.GetUserFriendlyMessage(); msg != expected {
		t.Errorf("GetUserFriendlyMessage() = %q, want %q", msg, expected)
	}
}
