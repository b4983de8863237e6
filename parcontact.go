// Package parcontact extracts institutional contact emails from Parcoursup
// program listing pages. It locates the "Contacter et échanger" section of a
// listing, classifies the emails found there by role, and falls back to the
// institution's own website when the listing has none.
//
// This package contains domain types, interfaces and the pure heuristics,
// following Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// sqlite/, http/).
package parcontact

import (
	"errors"
	"fmt"
)

// Error codes.
const (
	EINTERNAL = "internal"
	EINVALID  = "invalid"
	ENETWORK  = "network"
	ENOTFOUND = "not_found"
	EPARSE    = "parse"
)

// Error represents an application-specific error.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error"
}
