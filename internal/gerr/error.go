//----------------------------------------------------------------------
// This file is part of Gospel.
// Copyright (C) 2011-present, Bernd Fix  >Y<
//
// Gospel is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License,
// or (at your option) any later version.
//
// Gospel is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
//
// SPDX-License-Identifier: AGPL3.0-or-later
//----------------------------------------------------------------------

// Package gerr provides the error taxonomy used across the bound engine:
// a context-carrying wrapper around a small set of sentinel errors so
// callers can both errors.Is() against a category and read a human
// readable context string.
package gerr

import "fmt"

// Sentinel errors, one per category of the error taxonomy.
var (
	// ErrDomainViolation marks an (N, t) pair outside the supported envelope.
	ErrDomainViolation = New0("domain violation")
	// ErrResourceBound marks a run that needs larger tables than the
	// standard engine variant can support.
	ErrResourceBound = New0("resource bound exceeded")
	// ErrInvariantBreach marks a violated engine invariant (E[i] < 0,
	// a factorization record out of range, or a factor below t).
	ErrInvariantBreach = New0("internal invariant breach")
	// ErrHintGap marks a hint file with a gap, regression, or
	// under-coverage between consecutive records.
	ErrHintGap = New0("hint file inconsistency")
)

// Error is a wrapper for errors produced by (parts of) the bound engine
// where variable error context is required for defined errors.
type Error struct {
	Err error  // base error (for errors.Is() and errors.As() calls)
	Ctx string // error context
}

// Unwrap error to standard type.
func (e *Error) Unwrap() error {
	return e.Err
}

// Error returns a human-readable error description.
func (e *Error) Error() string {
	if e.Ctx == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + " [" + e.Ctx + "]"
}

// New creates a new Error instance with formatted context.
func New(err error, format string, args ...interface{}) *Error {
	return &Error{
		Err: err,
		Ctx: fmt.Sprintf(format, args...),
	}
}

// New0 creates a bare sentinel error with no context; used to declare the
// taxonomy's sentinel values themselves.
func New0(msg string) error {
	return &sentinel{msg: msg}
}

type sentinel struct{ msg string }

func (s *sentinel) Error() string { return s.msg }
