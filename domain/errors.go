// SPDX-License-Identifier: MIT
// Package: lvfuzzy/domain
//
// errors.go — sentinel errors for the domain package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Context is attached with domainErrorf(method, err, format, args...).
//   • Option constructors panic on programmer error instead (WithX...).

package domain

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates a point count below one or above the configured cap.
// Usage: if errors.Is(err, ErrBadSize) { /* fix n */ }.
var ErrBadSize = errors.New("domain: invalid size")

// ErrBadStep indicates a zero, non-finite or wrongly signed Arange step.
var ErrBadStep = errors.New("domain: invalid step")

// ErrNonFinite indicates a NaN or ±Inf bound.
var ErrNonFinite = errors.New("domain: non-finite bound")

// Method tags used as error prefixes.
const (
	methodLinspace = "Linspace"
	methodArange   = "Arange"
)

// domainErrorf returns "<method>: <message>: <sentinel>" keeping err
// reachable through errors.Is.
func domainErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
