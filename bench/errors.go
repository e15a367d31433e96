// SPDX-License-Identifier: MIT
// Package bench: sentinel error set.

package bench

import "errors"

var (
	// ErrInvalidInput is returned by Prompter for empty, non-numeric or
	// non-positive answers.
	ErrInvalidInput = errors.New("bench: input must be a positive integer")

	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("bench: invalid configuration")
)
