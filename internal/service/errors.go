package service

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrUsernameTaken   = errors.New("username is already taken")
	ErrListingNotFound = errors.New("listing not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrReviewNotFound  = errors.New("review not found")

	ErrNotHost        = errors.New("only the listing's host may perform this action")
	ErrNotParticipant = errors.New("only the booking's guest or host may perform this action")
	ErrNotAuthor      = errors.New("only the review's author may perform this action")

	ErrOwnListing         = errors.New("hosts cannot book their own listing")
	ErrListingUnavailable = errors.New("listing is not available")
	ErrDatesUnavailable   = errors.New("listing is already booked for the selected dates")
	ErrInvalidTransition  = errors.New("booking status transition is not allowed")
	ErrNotStayed          = errors.New("only guests with a completed stay may review this listing")
	ErrAlreadyReviewed    = errors.New("listing has already been reviewed by this guest")
)

// ValidationError reports a constraint violation on a single field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalidField(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
