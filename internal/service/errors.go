package service

import "errors"

var (
	// ErrInvalidCredentials is returned on signin with an unknown email or a
	// wrong password. Both cases share one error so signin never reveals
	// whether the email exists.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailTaken is returned on signup with an already registered email.
	ErrEmailTaken = errors.New("user already exists")
	// ErrUserNotFound is returned when the authenticated user's row is gone.
	ErrUserNotFound = errors.New("user not found")
	// ErrForbidden is returned when a resource is missing or not owned by the
	// caller. The two cases are deliberately indistinguishable.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound is returned when a requested resource does not exist.
	ErrNotFound = errors.New("not found")
)
