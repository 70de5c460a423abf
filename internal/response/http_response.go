package response

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"article-service/internal/apperror"
)

// Standard response codes mapping
const (
	CodeSuccess            = "000" // Success
	CodeUnknownError       = "002" // Unknown error
	CodeInvalidRequest     = "003" // Invalid request
	CodeNotFound           = "005" // Not found
	CodePermissionDenied   = "007" // Permission denied
	CodeInternalError      = "013" // Internal error
	CodeUnauthenticated    = "014" // Authentication required
	CodeServiceUnavailable = "015" // Service unavailable
)

const StatusOK = "OK"

// Envelope is the success payload: {status, message, body}.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Body    any    `json:"body,omitempty"`

	httpStatus int
}

func (e *Envelope) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.httpStatus)
	return nil
}

// OK wraps body in a 200 envelope.
func OK(message string, body any) *Envelope {
	return &Envelope{Status: StatusOK, Message: message, Body: body, httpStatus: http.StatusOK}
}

// Created wraps body in a 201 envelope.
func Created(message string, body any) *Envelope {
	return &Envelope{Status: StatusOK, Message: message, Body: body, httpStatus: http.StatusCreated}
}

// ErrResponse renderer type for handling all sorts of errors.
type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

// ErrFrom maps an error returned by a service. Request rejections keep their
// status and message; anything else becomes an opaque 500.
func ErrFrom(err error) *ErrResponse {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return &ErrResponse{
			Err:            err,
			HTTPStatusCode: appErr.Status,
			Code:           MapHTTPStatusToCode(appErr.Status),
			Message:        appErr.Message,
		}
	}
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusInternalServerError,
		Code:           CodeInternalError,
		Message:        "Internal server error",
	}
}

// ErrInvalidRequest is a 400 with a client-facing message.
func ErrInvalidRequest(message string) *ErrResponse {
	return &ErrResponse{
		HTTPStatusCode: http.StatusBadRequest,
		Code:           CodeInvalidRequest,
		Message:        message,
	}
}

// ErrUnauthorized is returned when the bearer token is missing or invalid.
func ErrUnauthorized(err error) *ErrResponse {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusUnauthorized,
		Code:           CodeUnauthenticated,
		Message:        "Unauthorized",
	}
}

// ErrUnavailable is returned by the health check.
func ErrUnavailable(err error) *ErrResponse {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusServiceUnavailable,
		Code:           CodeServiceUnavailable,
		Message:        err.Error(),
	}
}

// MapHTTPStatusToCode converts an HTTP status to the string code
func MapHTTPStatusToCode(status int) string {
	switch status {
	case http.StatusOK, http.StatusCreated:
		return CodeSuccess
	case http.StatusBadRequest:
		return CodeInvalidRequest
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusForbidden:
		return CodePermissionDenied
	case http.StatusUnauthorized:
		return CodeUnauthenticated
	case http.StatusServiceUnavailable:
		return CodeServiceUnavailable
	case http.StatusInternalServerError:
		return CodeInternalError
	default:
		return CodeUnknownError
	}
}
