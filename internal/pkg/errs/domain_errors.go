package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase layers. NotFound
// sentinels deliberately cover unauthorized access too: a requester with no
// relationship to a booking is told it does not exist.
var (
	// User errors
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailAlreadyInUse = errors.New("email already in use")

	// Item errors
	ErrItemNotFound    = errors.New("item not found")
	ErrItemUnavailable = errors.New("item is not available")

	// Booking errors
	ErrBookingNotFound         = errors.New("booking not found")
	ErrInvalidBookingPeriod    = errors.New("invalid booking period")
	ErrBookingAlreadyProcessed = errors.New("booking already processed")

	// Comment errors
	ErrCommentNotAllowed = errors.New("access error")
	ErrBlankComment      = errors.New("comment is empty")

	// Request errors
	ErrRequestNotFound = errors.New("item request not found")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
