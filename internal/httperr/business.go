package httperr

import (
	"context"
	"errors"
	"fmt"
)

// Kind is the stable, machine-readable class of a business error.
type Kind string

const (
	KindValidation    Kind = "validation"
	KindPermission    Kind = "permission"
	KindConfiguration Kind = "configuration"
	KindConflict      Kind = "conflict"
	KindNotFound      Kind = "not_found"
	KindUnavailable   Kind = "service_unavailable"
	KindUnauthorized  Kind = "unauthorized"
	KindInternal      Kind = "internal"
)

type BusinessError struct {
	Kind    Kind
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newBusiness(kind Kind, code, message string) error {
	return BusinessError{Kind: kind, Code: code, Message: message}
}

func ErrValidation(code, message string) error {
	return newBusiness(KindValidation, code, message)
}

func ErrPermission(code, message string) error {
	return newBusiness(KindPermission, code, message)
}

func ErrConfiguration(code, message string) error {
	return newBusiness(KindConfiguration, code, message)
}

func ErrConflict(code, message string) error {
	return newBusiness(KindConflict, code, message)
}

func ErrNotFound(code, message string) error {
	return newBusiness(KindNotFound, code, message)
}

func ErrUnavailable(code, message string) error {
	return newBusiness(KindUnavailable, code, message)
}

// ErrBusiness keeps the short form used by domain rules that only carry a code.
func ErrBusiness(code string) error {
	return BusinessError{Kind: KindValidation, Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// KindOf returns KindInternal for anything that is not a BusinessError.
func KindOf(err error) Kind {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindUnavailable
	}
	return KindInternal
}
