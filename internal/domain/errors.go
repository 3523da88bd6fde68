package domain

import "errors"

var (
	ErrInvalidTimeZone        = errors.New("invalid time zone")
	ErrIndexOutOfRange        = errors.New("index out of range")
	ErrSizeOutOfBounds        = errors.New("size out of bounds")
	ErrUnknownOption          = errors.New("unknown option")
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrDuplicateCredential    = errors.New("username or email already exists")
	ErrUserNotFound           = errors.New("user not found")
	ErrMissingField           = errors.New("missing required field")
	ErrInvalidEmail           = errors.New("invalid email address")
	ErrPasswordTooShort       = errors.New("password must be at least 6 characters")
	ErrInvalidPassword        = errors.New("invalid password")
	ErrSessionExpired         = errors.New("session expired")
	ErrSyncInProgress         = errors.New("sync already in progress")
	ErrSurfaceClosed          = errors.New("surface closed")
)
