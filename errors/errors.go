package errors

import (
	stderrors "errors"
	"fmt"
)

// KitError is the unified testkit error type.
type KitError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *KitError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *KitError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *KitError) WithCause(cause error) *KitError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *KitError) WithDetail(key string, value any) *KitError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new KitError with the given code and message.
func New(code ErrorCode, message string) *KitError {
	return &KitError{Code: code, Message: message}
}

// IsCode reports whether err is (or wraps) a KitError with the given code.
func IsCode(err error, code ErrorCode) bool {
	var ke *KitError
	if stderrors.As(err, &ke) {
		return ke.Code == code
	}
	return false
}

// CodeOf returns the error code of err, or "" if err is not a KitError.
func CodeOf(err error) ErrorCode {
	var ke *KitError
	if stderrors.As(err, &ke) {
		return ke.Code
	}
	return ""
}

// --- Common Error Constructors ---

// MemberNotFound creates a new KitError for a missing field or method.
// kind is "field" or "method"; typeName is the target type's name.
func MemberNotFound(kind, typeName, member string) *KitError {
	return &KitError{
		Code:    ErrCodeMemberNotFound,
		Message: fmt.Sprintf("%s %q not found on type %s", kind, member, typeName),
		Details: map[string]any{"kind": kind, "type": typeName, "member": member},
	}
}

// MemberInaccessible creates a new KitError for a member that exists but
// cannot be reached through reflection.
func MemberInaccessible(kind, typeName, member, reason string) *KitError {
	return &KitError{
		Code:    ErrCodeMemberInaccessible,
		Message: fmt.Sprintf("%s %q on type %s is inaccessible: %s", kind, member, typeName, reason),
		Details: map[string]any{"kind": kind, "type": typeName, "member": member},
	}
}

// InvalidTarget creates a new KitError for an unusable accessor target.
func InvalidTarget(reason string) *KitError {
	return &KitError{
		Code:    ErrCodeInvalidTarget,
		Message: fmt.Sprintf("invalid target: %s", reason),
	}
}

// TypeMismatch creates a new KitError for an unassignable value.
func TypeMismatch(member, want, got string) *KitError {
	return &KitError{
		Code:    ErrCodeTypeMismatch,
		Message: fmt.Sprintf("cannot assign %s to %q (want %s)", got, member, want),
		Details: map[string]any{"member": member, "want": want, "got": got},
	}
}

// InvalidArgument creates a new KitError for a bad method invocation.
func InvalidArgument(method, reason string) *KitError {
	return &KitError{
		Code:    ErrCodeInvalidArgument,
		Message: fmt.Sprintf("invalid arguments for %q: %s", method, reason),
		Details: map[string]any{"method": method},
	}
}

// SnapshotHeld creates a new KitError for a snapshot that is already held.
func SnapshotHeld(id string) *KitError {
	return &KitError{
		Code:    ErrCodeSnapshotHeld,
		Message: "a registry snapshot is already held; restore it before taking another",
		Details: map[string]any{"snapshot_id": id},
	}
}

// NoSnapshot creates a new KitError for an operation that requires a held
// snapshot.
func NoSnapshot(op string) *KitError {
	return &KitError{
		Code:    ErrCodeNoSnapshot,
		Message: fmt.Sprintf("no registry snapshot held; %s requires a snapshot", op),
		Details: map[string]any{"operation": op},
	}
}

// InvalidConfig creates a new KitError for configuration that failed
// validation.
func InvalidConfig(message string) *KitError {
	return &KitError{
		Code:    ErrCodeInvalidConfig,
		Message: message,
	}
}
