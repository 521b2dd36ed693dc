package service

import "errors"

var (
	ErrEventNotFound      = errors.New("event not found")
	ErrEventInactive      = errors.New("event is not open for registration")
	ErrAttendeeNotFound   = errors.New("attendee not found")
	ErrEmailMismatch      = errors.New("email addresses do not match")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
