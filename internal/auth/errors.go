package auth

import "errors"

var (
	// ErrInvalidPassword is returned when the provided password is incorrect during authentication.
	ErrInvalidPassword = errors.New("invalid password")

	// ErrUserNotFound is returned when a user cannot be found in the database.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserNameExists is returned when attempting to create a user with a username that already exists.
	ErrUserNameExists = errors.New("user with username already exists")

	// ErrTokenMissing is returned when a request carries no token.
	ErrTokenMissing = errors.New("token missing")

	// ErrTokenExpired is returned for a correctly signed token past its expiry.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenInvalid is returned for a malformed token or a bad signature.
	ErrTokenInvalid = errors.New("invalid token")

	// ErrEmptySecret is returned when a token service is created without signing key.
	ErrEmptySecret = errors.New("token secret is empty")
)
