// SPDX-License-Identifier: MIT
// Package matrix: error value (closed kind set + free-form message).
//
// Every fallible operation in this package returns a *Error. The kind set is
// closed; callers match kinds with errors.Is against the package sentinels
// below, or read the kind directly via KindOf.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil operand -> shape/index -> dimension mismatch -> numeric failure
// (zero pivot during elimination, zero diagonal during back substitution).

package matrix

import (
	"errors"
	"fmt"
)

// ErrorKind enumerates the failure classes produced by this package.
type ErrorKind int

const (
	// FailedToInitialize: malformed shape or data at construction.
	FailedToInitialize ErrorKind = iota + 1
	// OutOfBoundary: index outside the half-open range [0, dim).
	OutOfBoundary
	// SizeMismatch: incompatible dimensions for a binary operation or row/column write.
	SizeMismatch
	// FailedToDecompose: zero pivot met during elimination (no pivoting fallback).
	FailedToDecompose
	// OperationNotPermitted: operation not defined for the operand (non-square LU, nil matrix).
	OperationNotPermitted
	// Singular: zero diagonal entry of U met during back substitution.
	Singular
)

// kindNames is indexed by ErrorKind; index 0 is the invalid zero value.
var kindNames = [...]string{
	"Unknown",
	"FailedToInitialize",
	"OutOfBoundary",
	"SizeMismatch",
	"FailedToDecompose",
	"OperationNotPermitted",
	"Singular",
}

// String returns the kind name used in error text.
func (k ErrorKind) String() string {
	if k <= 0 || int(k) >= len(kindNames) {
		return kindNames[0]
	}

	return kindNames[k]
}

// Error is the package error value: a kind plus a message.
// Error() renders as "<kind> error: <message>".
type Error struct {
	Kind    ErrorKind
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

// Is reports whether target is a *Error of the same kind.
// Sentinels carry no message, so any message matches.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}

	return t.Kind == e.Kind
}

// Sentinels for errors.Is. DO NOT return these directly from kernels;
// kernels build a fresh *Error with a message via newError.
var (
	// ErrFailedToInitialize matches construction failures.
	ErrFailedToInitialize = &Error{Kind: FailedToInitialize}

	// ErrOutOfBoundary matches At/Set/Row/Column index failures.
	ErrOutOfBoundary = &Error{Kind: OutOfBoundary}

	// ErrSizeMismatch matches Add/Sub/Mul shape failures and SetRow/SetColumn length failures.
	ErrSizeMismatch = &Error{Kind: SizeMismatch}

	// ErrFailedToDecompose matches zero-pivot failures in Decompose.
	ErrFailedToDecompose = &Error{Kind: FailedToDecompose}

	// ErrOperationNotPermitted matches non-square Decompose/Invert and nil operands.
	ErrOperationNotPermitted = &Error{Kind: OperationNotPermitted}

	// ErrSingular matches a zero U diagonal met during back substitution in Invert.
	ErrSingular = &Error{Kind: Singular}
)

// newError builds a *Error with a formatted message.
func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the ErrorKind carried by err (looking through wraps),
// or 0 when err is nil or not produced by this package.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return 0
}
