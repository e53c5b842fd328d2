// seehuhn.de/go/bill - generate multi-page PDF bills
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package bill

import (
	"fmt"
)

// Kind classifies the errors returned by this package.
type Kind int

// These are the possible values for [Error.Kind].
const (
	// KindInput indicates invalid input data or options.
	KindInput Kind = iota + 1

	// KindEncoding indicates that a page could not be encoded, for example
	// because of text which cannot be shown in the standard font.
	KindEncoding

	// KindSerialization indicates that the object graph could not be written.
	KindSerialization

	// KindState indicates a method call which is not allowed in the current
	// state of an [Assembler].  The wrapped error is a [*StateError].
	KindState
)

func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input error"
	case KindEncoding:
		return "encoding error"
	case KindSerialization:
		return "serialization error"
	case KindState:
		return "state error"
	default:
		return fmt.Sprintf("bill.Kind(%d)", int(k))
	}
}

// Error is the error type returned by this package.
// The underlying cause can be accessed using [errors.As] and [errors.Is].
type Error struct {
	Kind Kind
	Err  error
}

func (err *Error) Error() string {
	return "bill: " + err.Kind.String() + ": " + err.Err.Error()
}

func (err *Error) Unwrap() error {
	return err.Err
}

// StateError is returned when an [Assembler] method is called out of order.
type StateError struct {
	Op    string
	State Step
}

func (err *StateError) Error() string {
	return fmt.Sprintf("%s not allowed in state %s", err.Op, err.State)
}
