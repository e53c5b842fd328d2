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

package pdf

import (
	"errors"
	"strconv"
)

var (
	// ErrUnknownReference is returned by [Store.Set] and [Store.Get] for
	// references which were not allocated by the store.
	ErrUnknownReference = errors.New("unknown object reference")

	// ErrAlreadySet is returned by [Store.Set] if the object has already been
	// stored.
	ErrAlreadySet = errors.New("object already set")

	// ErrUnset indicates a reserved object number which was never filled in.
	ErrUnset = errors.New("reserved object was never set")

	// ErrNilObject is returned when trying to store a nil object.
	ErrNilObject = errors.New("nil object")

	errVersion = errors.New("unsupported PDF version")
)

// ReferenceError indicates a reference in the object graph which does not
// resolve to a stored object.
type ReferenceError struct {
	// Ref is the reference which could not be resolved.
	Ref Reference

	// From is the object containing the reference.  This is the zero
	// reference if Ref was passed to the trailer.
	From Reference

	Err error
}

func (err *ReferenceError) Error() string {
	msg := "dangling reference to " + err.Ref.String()
	if !err.From.IsZero() {
		msg += " in " + err.From.String()
	}
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *ReferenceError) Unwrap() error {
	return err.Err
}

// MalformedFileError indicates that a PDF file could not be parsed.
type MalformedFileError struct {
	Pos int64
	Err error
}

func (err *MalformedFileError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	tail := ""
	if err.Pos > 0 {
		tail = " (at byte " + strconv.FormatInt(err.Pos, 10) + ")"
	}
	return "not a valid PDF file" + middle + tail
}

func (err *MalformedFileError) Unwrap() error {
	return err.Err
}
