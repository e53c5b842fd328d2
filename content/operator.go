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

// Package content builds and reads PDF content streams.
//
// A content stream is the sequence of operators which describes the
// appearance of a page.  This package supports the subset of operators
// needed to place lines of text in a standard font and to draw images:
//
//	BT ET          begin and end a text object
//	Tf             set font and size
//	Td             move the text position
//	Tj             show a string
//	q Q            save and restore the graphics state
//	cm             modify the current transformation matrix
//	Do             draw an XObject
package content

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/bill/pdf"
)

// OpName is the name of a content stream operator.
type OpName string

// The operators supported by this package.
const (
	OpTextBegin         OpName = "BT"
	OpTextEnd           OpName = "ET"
	OpTextSetFont       OpName = "Tf"
	OpTextMoveOffset    OpName = "Td"
	OpTextShow          OpName = "Tj"
	OpPushGraphicsState OpName = "q"
	OpPopGraphicsState  OpName = "Q"
	OpTransform         OpName = "cm"
	OpXObject           OpName = "Do"
)

var (
	// ErrUnknown is returned when an operator is not recognized.
	ErrUnknown = errors.New("unknown operator")

	// ErrArgs is returned when the operands do not match the operator.
	ErrArgs = errors.New("invalid operands")
)

type argKind int

const (
	argName argKind = iota
	argNumber
	argString
)

// signatures gives the operand types of each supported operator.
var signatures = map[OpName][]argKind{
	OpTextBegin:         nil,
	OpTextEnd:           nil,
	OpTextSetFont:       {argName, argNumber},
	OpTextMoveOffset:    {argNumber, argNumber},
	OpTextShow:          {argString},
	OpPushGraphicsState: nil,
	OpPopGraphicsState:  nil,
	OpTransform:         {argNumber, argNumber, argNumber, argNumber, argNumber, argNumber},
	OpXObject:           {argName},
}

// Operator represents a content stream operator with its arguments.
type Operator struct {
	Name OpName
	Args []pdf.Object
}

// check verifies that the operator is known and that the operands have the
// expected number and types.
func (o Operator) check() error {
	sig, ok := signatures[o.Name]
	if !ok {
		return ErrUnknown
	}
	if len(o.Args) != len(sig) {
		return fmt.Errorf("%w: expected %d operands, got %d", ErrArgs, len(sig), len(o.Args))
	}
	for i, kind := range sig {
		arg := o.Args[i]
		var ok bool
		switch kind {
		case argName:
			_, ok = arg.(pdf.Name)
		case argString:
			_, ok = arg.(pdf.String)
		case argNumber:
			switch x := arg.(type) {
			case pdf.Integer:
				ok = true
			case pdf.Real:
				ok = !math.IsInf(float64(x), 0) && !math.IsNaN(float64(x))
			}
		}
		if !ok {
			return fmt.Errorf("%w: operand %d is %s", ErrArgs, i, pdf.Format(arg))
		}
	}
	return nil
}

// EncodeError is returned when a content stream cannot be encoded.
type EncodeError struct {
	// Index is the position of the offending operator in the stream.
	Index int
	Op    OpName
	Err   error
}

func (err *EncodeError) Error() string {
	return fmt.Sprintf("content: operator %d (%s): %v", err.Index, err.Op, err.Err)
}

func (err *EncodeError) Unwrap() error {
	return err.Err
}
