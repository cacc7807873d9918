package domain

import "errors"

type ResultCode string

const (
	CodeNotFound           ResultCode = "not_found"
	CodeInfrastructure     ResultCode = "infrastructure"
	CodePermissionDenied   ResultCode = "permission_denied"
	CodeRegistrationFailed ResultCode = "registration_failed"
	CodeSettingsUnresolved ResultCode = "settings_unresolved"
	CodeInvalidReminder    ResultCode = "invalid_reminder"
	CodeConflict           ResultCode = "conflict"
)

var codeSentinels = map[ResultCode]error{
	CodeNotFound:           ErrReminderNotFound,
	CodePermissionDenied:   ErrPermissionDenied,
	CodeRegistrationFailed: ErrRegistrationFailed,
	CodeSettingsUnresolved: ErrSettingsResolutionRequired,
	CodeConflict:           ErrRegistrationInProgress,
}

// Result is the outcome of a store or registry operation: either a value or
// a human readable failure message with an optional machine code.
type Result[T any] struct {
	value   T
	message string
	code    ResultCode
	failed  bool
}

func Success[T any](value T) Result[T] {
	return Result[T]{value: value}
}

func Failure[T any](message string, code ResultCode) Result[T] {
	return Result[T]{message: message, code: code, failed: true}
}

func (r Result[T]) IsSuccess() bool {
	return !r.failed
}

// Value returns the zero value of T for a failed result.
func (r Result[T]) Value() T {
	return r.value
}

func (r Result[T]) Get() (T, bool) {
	return r.value, !r.failed
}

func (r Result[T]) Message() string {
	return r.message
}

func (r Result[T]) Code() ResultCode {
	return r.code
}

// Err is nil for a successful result. The returned error matches the
// sentinel associated with the result code under errors.Is.
func (r Result[T]) Err() error {
	if !r.failed {
		return nil
	}

	return &ResultError{Code: r.code, Message: r.message}
}

type ResultError struct {
	Code    ResultCode
	Message string
}

func (e *ResultError) Error() string {
	return e.Message
}

func (e *ResultError) Is(target error) bool {
	sentinel, ok := codeSentinels[e.Code]

	return ok && errors.Is(sentinel, target)
}
