// SPDX-License-Identifier: BSL-1.1
// Copyright (c) 2026 MuVeraAI Corporation

package types

import "fmt"

// ErrInvalidFormat is returned when a did:key identifier or its multibase
// payload cannot be decoded, or carries an unknown type code.
type ErrInvalidFormat struct {
	Input  string
	Reason string
}

func (e *ErrInvalidFormat) Error() string {
	return fmt.Sprintf("invalid key id format %q: %s", e.Input, e.Reason)
}

// ErrUnknownCurve is returned when a curve name is absent from the registry.
type ErrUnknownCurve struct {
	Curve string
}

func (e *ErrUnknownCurve) Error() string {
	return fmt.Sprintf("unknown curve: %s", e.Curve)
}

// ErrUnsupportedCurve is returned when a registered curve cannot perform the
// requested operation, e.g. signing with an X25519 key.
type ErrUnsupportedCurve struct {
	Curve     string
	Operation string
}

func (e *ErrUnsupportedCurve) Error() string {
	return fmt.Sprintf("curve %s does not support %s", e.Curve, e.Operation)
}

// ErrAlgorithmMismatch is returned when a token's declared alg differs from
// the algorithm of the verification key.
type ErrAlgorithmMismatch struct {
	Expected string
	Got      string
}

func (e *ErrAlgorithmMismatch) Error() string {
	return fmt.Sprintf("invalid signature algorithm %q (expected %q)", e.Got, e.Expected)
}

// ErrInvalidSignatureFormat is returned when a detached JWS does not have the
// fixed header.."signature" shape.
type ErrInvalidSignatureFormat struct {
	Reason string
}

func (e *ErrInvalidSignatureFormat) Error() string {
	return fmt.Sprintf("invalid signature format: %s", e.Reason)
}

// ErrPrimitive wraps a failure reported by an underlying cryptographic library.
type ErrPrimitive struct {
	Curve     string
	Operation string
	Err       error
}

func (e *ErrPrimitive) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Curve, e.Operation, e.Err)
}

func (e *ErrPrimitive) Unwrap() error {
	return e.Err
}

// ErrUnsupportedDIDMethod is returned when a DID uses a method this package does not implement.
type ErrUnsupportedDIDMethod struct {
	Method string
}

func (e *ErrUnsupportedDIDMethod) Error() string {
	return fmt.Sprintf("unsupported DID method: %s", e.Method)
}

// ErrInvalidDID is returned when a DID string is malformed.
type ErrInvalidDID struct {
	DID    string
	Reason string
}

func (e *ErrInvalidDID) Error() string {
	return fmt.Sprintf("invalid DID %q: %s", e.DID, e.Reason)
}

// ErrMethodNotFound is returned when a DID URL names a verification method the
// resolved document does not contain.
type ErrMethodNotFound struct {
	ID string
}

func (e *ErrMethodNotFound) Error() string {
	return fmt.Sprintf("verification method not found: %s", e.ID)
}
