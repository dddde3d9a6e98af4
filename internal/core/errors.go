package core

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by Store implementations when a key has no
// record. Callers must be able to tell a miss apart from a backend error.
var ErrNotFound = errors.New("record not found")

type ErrKind int

const (
	ErrKindGeneric ErrKind = iota
	ErrKindAuth
	ErrKindOverloaded
	ErrKindContent
	ErrKindStorage
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindAuth:
		return "auth"
	case ErrKindOverloaded:
		return "overloaded"
	case ErrKindContent:
		return "content"
	case ErrKindStorage:
		return "storage"
	default:
		return "generic"
	}
}

// CapabilityError is the uniform failure shape for downstream capability
// and content-extraction calls. The kind is assigned where the failure is
// first understood (HTTP status, API error code, empty extraction), so
// the router switches on a typed kind instead of inspecting error text.
type CapabilityError struct {
	Kind    ErrKind
	Message string
	Err     error
}

func (e *CapabilityError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CapabilityError) Unwrap() error {
	return e.Err
}

func NewCapabilityError(kind ErrKind, message string) *CapabilityError {
	return &CapabilityError{Kind: kind, Message: message}
}

func WrapCapabilityError(kind ErrKind, message string, err error) *CapabilityError {
	return &CapabilityError{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the error kind from an error chain, defaulting to
// ErrKindGeneric for plain errors.
func KindOf(err error) ErrKind {
	var capErr *CapabilityError
	if errors.As(err, &capErr) {
		return capErr.Kind
	}
	return ErrKindGeneric
}
