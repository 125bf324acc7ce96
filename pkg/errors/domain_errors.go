package errors

var (
	// Property lifecycle
	ErrPropertyNotFound  = NotFound("property not found")
	ErrNoPotentialBuyer  = InvalidArg("no such potential buyer")
	ErrUnknownStatus     = InvalidArg("unknown target status")
	ErrInvalidTransition = FailedPrecondition("status change not permitted from current state")
	ErrPropertyConflict  = FailedPrecondition("property was modified concurrently")

	// Maintenance requests
	ErrRequestNotFound     = NotFound("maintenance request not found")
	ErrTitleRequired       = InvalidArg("title is required")
	ErrDescriptionTooShort = InvalidArg("description must be at least 10 characters")
	ErrUnknownPriority     = InvalidArg("unknown priority")
	ErrNotPropertyManager  = Forbidden("actor does not manage this property")

	// Presence
	ErrPresenceNotFound = NotFound("presence record not found")
	ErrPresenceConflict = FailedPrecondition("presence record was modified concurrently")

	// Users
	ErrUserNotFound = NotFound("user not found")
)

func ErrTransitionFailed(cause error) error {
	return Wrap(CodeInternal, "status transition failed", cause)
}

func ErrSweepQueryFailed(cause error) error {
	return Wrap(CodeInternal, "sweep candidate query failed", cause)
}
