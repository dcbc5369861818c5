// SPDX-License-Identifier: MIT
// Package: lvfuzzy/config
//
// errors.go — sentinels and the DocumentError carrier.

package config

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDocument classifies every mapping or decoding failure.
	ErrInvalidDocument = errors.New("config: invalid document")

	// ErrUnknownKind marks a set kind that no constructor handles.
	ErrUnknownKind = errors.New("config: unknown set kind")
)

// DocumentError wraps an underlying error with the operation, file path
// and field path that produced it.
type DocumentError struct {
	Op    string
	Path  string // optional: source file
	Field string // optional: e.g. "sets[1].params"
	Err   error
}

func (e *DocumentError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := e.Op
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Field != "" {
		base += ": field " + e.Field
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}

	return base
}

func (e *DocumentError) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.Err
}

// invalidField builds a mapping error for field with a plain message.
func invalidField(path, field, msg string) error {
	return &DocumentError{
		Op:    opMap,
		Path:  path,
		Field: field,
		Err:   fmt.Errorf("%s: %w", msg, ErrInvalidDocument),
	}
}

// fieldCause builds a mapping error for field that wraps both
// ErrInvalidDocument and cause.
func fieldCause(path, field string, cause error) error {
	return &DocumentError{
		Op:    opMap,
		Path:  path,
		Field: field,
		Err:   fmt.Errorf("%w: %w", ErrInvalidDocument, cause),
	}
}

const (
	opMap   = "config.map"
	opParse = "config.parse"
	opLoad  = "config.load"
)
