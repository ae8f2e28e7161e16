package util

import "errors"

// Application errors. Handlers map these to HTTP status codes.
var (
	ErrInvalidInput       = errors.New("invalid input provided")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrTokenMissing       = errors.New("missing or invalid token")
	ErrTokenExpired       = errors.New("token has expired")
	ErrTokenInvalid       = errors.New("token is invalid")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidAuthor      = errors.New("invalid author")
	ErrPostNotFound       = errors.New("post not found")
	ErrStorageDisabled    = errors.New("image storage is not configured")
)

// IsError reports whether err wraps target.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}
