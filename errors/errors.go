// Package errors provides error handling for galois.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Hints and details for user-facing messages
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrMalformedRelation) {
//	    // handle invalid input
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is            = crdb.Is
	IsAny         = crdb.IsAny
	As            = crdb.As
	Unwrap        = crdb.Unwrap
	UnwrapOnce    = crdb.UnwrapOnce
	UnwrapAll     = crdb.UnwrapAll
	GetAllHints   = crdb.GetAllHints
	GetAllDetails = crdb.GetAllDetails
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Common sentinel errors for use across galois.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrMalformedRelation indicates a formal context whose entity rows are
	// not proper attribute sets (for example, a duplicate attribute).
	ErrMalformedRelation = New("malformed relation")

	// ErrTooManyAttributes indicates the attribute universe exceeds the
	// configured bound. Concept lattices grow exponentially with the number
	// of attributes, so construction refuses oversized universes.
	ErrTooManyAttributes = New("too many attributes")

	// ErrArityMismatch indicates a predicate or function applied to the
	// wrong number of arguments.
	ErrArityMismatch = New("arity mismatch")

	// ErrUnknownFormat indicates an unrecognized output format name.
	ErrUnknownFormat = New("unknown output format")
)

// IsMalformedRelationError checks if an error is or wraps ErrMalformedRelation.
func IsMalformedRelationError(err error) bool {
	return err != nil && Is(err, ErrMalformedRelation)
}

// IsArityMismatchError checks if an error is or wraps ErrArityMismatch.
func IsArityMismatchError(err error) bool {
	return err != nil && Is(err, ErrArityMismatch)
}

// NewMalformedRelationError creates a malformed-relation error with a formatted message.
func NewMalformedRelationError(format string, args ...interface{}) error {
	return Wrap(ErrMalformedRelation, Newf(format, args...).Error())
}

// NewArityMismatchError creates an arity-mismatch error with a formatted message.
func NewArityMismatchError(format string, args ...interface{}) error {
	return Wrap(ErrArityMismatch, Newf(format, args...).Error())
}
