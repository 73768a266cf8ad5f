// Package app holds the application services and business logic.
package app

import "errors"

var (
	// ErrInvalidInput indicates a blank or unparseable field caught before
	// any write.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDuplicateUsername indicates a registration conflict.
	ErrDuplicateUsername = errors.New("username already exists")
	// ErrInvalidCredentials indicates that the provided username or password
	// was incorrect. Unknown users and wrong passwords are deliberately
	// indistinguishable.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrSessionNotFound indicates that the requested session does not exist.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired indicates that the session has expired.
	ErrSessionExpired = errors.New("session expired")
)
