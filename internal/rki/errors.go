// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package rki

import (
	"errors"
	"fmt"
)

// ErrRemote is the kind behind every RemoteError. The cache layer's fallback
// set matches against it with errors.Is.
var ErrRemote = errors.New("remote error")

// ErrValidation is the kind behind every ValidationError. Not in the default
// fallback set: a malformed payload is our bug or theirs, not an outage.
var ErrValidation = errors.New("validation error")

// RemoteError reports a non-success response or an API-reported error.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("remote returned status %d", e.Status)
	}
	return fmt.Sprintf("remote returned status %d: %s", e.Status, e.Message)
}

func (e *RemoteError) Unwrap() error {
	return ErrRemote
}

// ValidationError reports a payload that does not match the expected shape.
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string {
	return "unexpected payload: " + e.Detail
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
