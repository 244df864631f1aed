// SPDX-License-Identifier: MIT
// Package: linetsp/linepath
//
// errors.go — sentinel errors shared by every package of the module.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w, prefixed by the method name:
//       fmt.Errorf("%s: points[%d]=%v: %w", methodSolve, i, v, ErrNonFiniteValue)
//   • No silent garbage: an empty fold or a NaN never escapes as a float result.

package linepath

import "errors"

// ErrInvalidInput indicates a structurally invalid argument: an empty point
// set, a non-positive count or an empty/inverted sampling range.
// Usage: if errors.Is(err, ErrInvalidInput) { /* fix the arguments */ }.
var ErrInvalidInput = errors.New("linepath: invalid input")

// ErrNonFiniteValue indicates that a point, a starting position or a range
// bound is NaN or ±Inf, or that a derived span overflowed to +Inf.
// Usage: if errors.Is(err, ErrNonFiniteValue) { /* sanitize the numbers */ }.
var ErrNonFiniteValue = errors.New("linepath: non-finite value")
