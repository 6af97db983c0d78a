// Package errs defines the closed set of application error kinds and the
// classification predicates callers use to map them onto responses.
package errs

import (
	"errors"
	"fmt"
)

// Kind enumerates every error the application can produce.
type Kind int

const (
	KindDatabase Kind = iota + 1
	KindTaskNotFound
	KindUserNotFound
	KindUsernameExists
	KindInvalidCredentials
	KindValidation
	KindUnauthorized
	KindInternal
)

// Error carries a Kind plus the detail relevant to it. Repositories and
// services only ever return this type (or nil), so upstream layers never
// need to inspect raw storage errors.
type Error struct {
	Kind Kind
	ID   int64  // TaskNotFound, UserNotFound
	Name string // UsernameExists, UserNotFound by username
	Msg  string // Validation, Unauthorized, Internal
	Err  error  // Database cause
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindDatabase:
		return fmt.Sprintf("database error: %v", e.Err)
	case KindTaskNotFound:
		return fmt.Sprintf("task not found with id: %d", e.ID)
	case KindUserNotFound:
		if e.Name != "" {
			return fmt.Sprintf("user not found with username: %s", e.Name)
		}
		return fmt.Sprintf("user not found with id: %d", e.ID)
	case KindUsernameExists:
		return fmt.Sprintf("username already exists: %s", e.Name)
	case KindInvalidCredentials:
		return "invalid username or password"
	case KindValidation:
		return fmt.Sprintf("validation error: %s", e.Msg)
	case KindUnauthorized:
		return fmt.Sprintf("unauthorized: %s", e.Msg)
	default:
		return fmt.Sprintf("internal server error: %s", e.Msg)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Database wraps an underlying storage failure.
func Database(err error) error {
	return &Error{Kind: KindDatabase, Err: err}
}

func TaskNotFound(id int64) error {
	return &Error{Kind: KindTaskNotFound, ID: id}
}

func UserNotFound(id int64) error {
	return &Error{Kind: KindUserNotFound, ID: id}
}

// UserNotFoundByName is the lookup-by-username variant of UserNotFound.
func UserNotFoundByName(username string) error {
	return &Error{Kind: KindUserNotFound, Name: username}
}

func UsernameExists(username string) error {
	return &Error{Kind: KindUsernameExists, Name: username}
}

func InvalidCredentials() error {
	return &Error{Kind: KindInvalidCredentials}
}

func Validation(msg string) error {
	return &Error{Kind: KindValidation, Msg: msg}
}

func Unauthorized(msg string) error {
	return &Error{Kind: KindUnauthorized, Msg: msg}
}

func Internal(msg string) error {
	return &Error{Kind: KindInternal, Msg: msg}
}

// KindOf extracts the Kind from err, or 0 if err is not an application error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// IsNotFound reports whether err is a task- or user-not-found error.
// Transport layers map these to 404-class responses.
func IsNotFound(err error) bool {
	k := KindOf(err)
	return k == KindTaskNotFound || k == KindUserNotFound
}

// IsValidation reports whether err is an input validation error (400-class).
func IsValidation(err error) bool {
	return KindOf(err) == KindValidation
}

// IsAuth reports whether err is an authentication/authorization error
// (401-class).
func IsAuth(err error) bool {
	k := KindOf(err)
	return k == KindInvalidCredentials || k == KindUnauthorized
}
