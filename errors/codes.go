package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Reflective member access errors
const (
	// ErrCodeMemberNotFound indicates the named field or method does not
	// exist on the target type.
	ErrCodeMemberNotFound ErrorCode = "MEMBER_NOT_FOUND"
	// ErrCodeMemberInaccessible indicates the member exists but cannot be
	// reached through reflection (unexported methods, unaddressable fields).
	ErrCodeMemberInaccessible ErrorCode = "MEMBER_INACCESSIBLE"
	// ErrCodeInvalidTarget indicates the accessor target is not usable
	// (nil, not a struct, or not addressable where a write was requested).
	ErrCodeInvalidTarget ErrorCode = "INVALID_TARGET"
	// ErrCodeTypeMismatch indicates a value is not assignable to the member.
	ErrCodeTypeMismatch ErrorCode = "TYPE_MISMATCH"
	// ErrCodeInvalidArgument indicates a method invocation received the
	// wrong number or type of arguments.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
)

// Registry snapshot precondition errors
const (
	// ErrCodeSnapshotHeld indicates a snapshot is already held and would be
	// silently overwritten.
	ErrCodeSnapshotHeld ErrorCode = "SNAPSHOT_HELD"
	// ErrCodeNoSnapshot indicates an operation required a held snapshot.
	ErrCodeNoSnapshot ErrorCode = "NO_SNAPSHOT"
)

// Configuration errors
const (
	// ErrCodeInvalidConfig indicates toolkit configuration failed validation.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
)
