package services

import "errors"

var (
	// ErrInvalidCredentials is returned for unknown emails and wrong
	// passwords alike, so the response never reveals which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrUserExists          = errors.New("user with this email or username already exists")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")

	// ErrNotFound covers entities that are absent or inactive; callers
	// cannot distinguish the two.
	ErrNotFound = errors.New("not found")
)
