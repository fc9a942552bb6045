package httpapi

import (
	"errors"
	"fmt"
)

// Error carries a user-facing message, the code that selects the HTTP
// status, and the underlying cause.
type Error struct {
	orig error
	msg  string
	code error
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.orig
}

// Code returns one of the Err* codes below.
func (e *Error) Code() error {
	return e.code
}

// WrapErrorf builds an *Error with code and a formatted message.
func WrapErrorf(orig error, code error, format string, a ...any) error {
	return &Error{
		code: code,
		orig: orig,
		msg:  fmt.Sprintf(format, a...),
	}
}

// Error codes.
var (
	ErrInternalServerError = errors.New("internal server error")
	ErrBadParamInput       = errors.New("given param is not valid")
	ErrTooManyRequests     = errors.New("rate limit exceeded")
	ErrUnavailable         = errors.New("server is busy")
)

const messageInternalServerError = "the server encountered a problem and could not process your request"
