package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestNewValidationError(t *testing.T) {
	cause := errors.New("timestamp has invalid format")
	err := NewValidationError("activity record 3 is invalid", cause)

	if err.Type != ErrorTypeValidation {
		t.Errorf("NewValidationError type = %v, want %v", err.Type, ErrorTypeValidation)
	}
	if err.Code != "VALIDATION_FAILED" {
		t.Errorf("NewValidationError code = %v, want %v", err.Code, "VALIDATION_FAILED")
	}
	if err.Cause != cause {
		t.Errorf("NewValidationError cause = %v, want %v", err.Cause, cause)
	}
	if !errors.Is(err, cause) {
		t.Errorf("NewValidationError should unwrap to its cause")
	}
}

func TestNewInvalidRecordError(t *testing.T) {
	cause := errors.New("duration is required")
	err := NewInvalidRecordError(3, cause)

	if err.Type != ErrorTypeValidation {
		t.Errorf("NewInvalidRecordError type = %v, want %v", err.Type, ErrorTypeValidation)
	}
	if err.Message != "activity record 3 is invalid" {
		t.Errorf("NewInvalidRecordError message = %v", err.Message)
	}
	if !errors.Is(err, cause) {
		t.Errorf("NewInvalidRecordError should unwrap to its cause")
	}
}

func TestRecordIndex(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
		found    bool
	}{
		{"Invalid record", NewInvalidRecordError(7, nil), 7, true},
		{"Wrapped invalid record", fmt.Errorf("query: %w", NewInvalidRecordError(0, nil)), 0, true},
		{"Validation error without record", NewValidationError("bad activity", nil), 0, false},
		{"Regular error", errors.New("regular error"), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, found := RecordIndex(tt.err)
			if index != tt.expected || found != tt.found {
				t.Errorf("RecordIndex() = %v, %v, want %v, %v", index, found, tt.expected, tt.found)
			}
		})
	}
}

func TestNewStorageError(t *testing.T) {
	cause := errors.New("disk full")
	err := NewStorageError("record activity", cause)

	if err.Type != ErrorTypeStorage {
		t.Errorf("NewStorageError type = %v, want %v", err.Type, ErrorTypeStorage)
	}
	if err.Message != "storage operation failed: record activity" {
		t.Errorf("NewStorageError message = %v", err.Message)
	}
	if err.Code != "STORAGE_ERROR" {
		t.Errorf("NewStorageError code = %v, want %v", err.Code, "STORAGE_ERROR")
	}

	operation, ok := err.GetContext("operation")
	if !ok || operation != "record activity" {
		t.Errorf("NewStorageError should set operation context")
	}
}

func TestNewInvalidInputError(t *testing.T) {
	err := NewInvalidInputError("scope", "Teams", "unknown report scope")

	if err.Type != ErrorTypeInvalidInput {
		t.Errorf("NewInvalidInputError type = %v, want %v", err.Type, ErrorTypeInvalidInput)
	}
	if err.Message != "invalid input for scope: unknown report scope" {
		t.Errorf("NewInvalidInputError message = %v", err.Message)
	}

	value, ok := err.GetContext("value")
	if !ok || value != "Teams" {
		t.Errorf("NewInvalidInputError should set value context")
	}
}

func TestNewConfigurationError(t *testing.T) {
	cause := errors.New("time.zone: unknown time zone Mars/Olympus")
	err := NewConfigurationError("time.zone", cause)

	if err.Type != ErrorTypeConfiguration {
		t.Errorf("NewConfigurationError type = %v, want %v", err.Type, ErrorTypeConfiguration)
	}
	if field, _ := err.GetContext("field"); field != "time.zone" {
		t.Errorf("NewConfigurationError field = %v, want %v", field, "time.zone")
	}
	if !errors.Is(err, cause) {
		t.Errorf("NewConfigurationError should unwrap to its cause")
	}
	if msg := GetUserMessage(err); msg != "invalid configuration: time.zone: unknown time zone Mars/Olympus" {
		t.Errorf("GetUserMessage() = %v", msg)
	}
}

func TestNewTimeoutError(t *testing.T) {
	err := NewTimeoutError("replay activity log", context.DeadlineExceeded)

	if err.Type != ErrorTypeTimeout {
		t.Errorf("NewTimeoutError type = %v, want %v", err.Type, ErrorTypeTimeout)
	}
	if err.Code != "TIMEOUT" {
		t.Errorf("NewTimeoutError code = %v, want %v", err.Code, "TIMEOUT")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("NewTimeoutError should unwrap to its cause")
	}
}

func TestStoreFailure(t *testing.T) {
	invalid := NewInvalidRecordError(2, nil)

	tests := []struct {
		name     string
		err      error
		expected ErrorType
	}{
		{"Passed deadline", context.DeadlineExceeded, ErrorTypeTimeout},
		{"Deadline inside a storage error", NewStorageError("query activity events", fmt.Errorf("read: %w", context.DeadlineExceeded)), ErrorTypeTimeout},
		{"Plain failure", errors.New("disk full"), ErrorTypeStorage},
		{"Application error", invalid, ErrorTypeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := StoreFailure("replay activity log", tt.err); !IsErrorType(result, tt.expected) {
				t.Errorf("StoreFailure() = %v, want type %v", result, tt.expected)
			}
		})
	}

	if StoreFailure("replay activity log", invalid) != error(invalid) {
		t.Errorf("StoreFailure should pass application errors through")
	}
	if StoreFailure("replay activity log", nil) != nil {
		t.Errorf("StoreFailure(nil) should return nil")
	}
}

func TestIsErrorType(t *testing.T) {
	appError := NewValidationError("bad record", nil)
	wrapped := errors.Join(errors.New("query failed"), appError)
	regularError := errors.New("regular error")

	if !IsErrorType(appError, ErrorTypeValidation) {
		t.Errorf("IsErrorType should return true for matching type")
	}
	if !IsErrorType(wrapped, ErrorTypeValidation) {
		t.Errorf("IsErrorType should see through wrapping")
	}
	if IsErrorType(appError, ErrorTypeStorage) {
		t.Errorf("IsErrorType should return false for different type")
	}
	if IsErrorType(regularError, ErrorTypeValidation) {
		t.Errorf("IsErrorType should return false for regular error")
	}
	if IsAppError(nil) {
		t.Errorf("IsAppError should return false for nil")
	}
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Validation error",
			err:      NewValidationError("invalid activity", nil),
			expected: "invalid activity",
		},
		{
			name:     "Validation error with cause",
			err:      NewValidationError("invalid activity", errors.New("client is required")),
			expected: "invalid activity: client is required",
		},
		{
			name:     "Storage error",
			err:      NewStorageError("replay", errors.New("permission denied")),
			expected: "The activity log could not be read or written. Please try again.",
		},
		{
			name:     "Timeout error",
			err:      NewTimeoutError("replay", context.DeadlineExceeded),
			expected: "The operation timed out. Please try again.",
		},
		{
			name:     "Regular error",
			err:      errors.New("regular error"),
			expected: "regular error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GetUserMessage(tt.err)
			if result != tt.expected {
				t.Errorf("GetUserMessage() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestShouldLogError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"Validation error", NewValidationError("bad record", nil), true},
		{"Configuration error", NewConfigurationError("store.driver", errors.New("unsupported")), false},
		{"Timeout error", NewTimeoutError("replay", nil), true},
		{"Invalid input error", NewInvalidInputError("scope", "x", "unknown"), false},
		{"Storage error", NewStorageError("replay", errors.New("io")), true},
		{"Regular error", errors.New("regular error"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := ShouldLogError(tt.err); result != tt.expected {
				t.Errorf("ShouldLogError() = %v, want %v", result, tt.expected)
			}
		})
	}
}
