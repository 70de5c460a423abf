// Package apperror defines request-rejection errors. Each carries the HTTP
// status it maps to and a fixed client-facing message.
package apperror

import (
	"errors"
	"net/http"
)

// Error is a request-scoped rejection. It is never retried.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches another *Error with the same status and message, so errors.Is
// works against the sentinels below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Status == t.Status && e.Message == t.Message
}

var (
	// Article errors
	ErrUserNotFound    = &Error{Status: http.StatusBadRequest, Message: "No user found"}
	ErrAuthorNotFound  = &Error{Status: http.StatusBadRequest, Message: "Author not found"}
	ErrArticleNotFound = &Error{Status: http.StatusBadRequest, Message: "No article found"}
	ErrArticleMissing  = &Error{Status: http.StatusBadRequest, Message: "Article not found"}
	ErrAccessDenied    = &Error{Status: http.StatusUnauthorized, Message: "Access not allowed"}
	ErrInvalidDate     = &Error{Status: http.StatusBadRequest, Message: "Invalid date format (dd-mm-yyyy) or missing date parameter."}

	// Auth errors
	ErrUserExists          = &Error{Status: http.StatusBadRequest, Message: "User already exists"}
	ErrUserNotExists       = &Error{Status: http.StatusBadRequest, Message: "User not exists"}
	ErrCredentialsMismatch = &Error{Status: http.StatusBadRequest, Message: "Failed to match credentials"}
)

// StatusOf returns the status carried by err, or 500 when err is not a
// request rejection.
func StatusOf(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return http.StatusInternalServerError
}
