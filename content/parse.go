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

package content

import (
	"fmt"
	"io"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/bill/pdf"
)

// Parse decodes a content stream.  All operators must be among the ones
// supported by this package.
func Parse(data []byte) (Stream, error) {
	s := pdf.NewScanner(data)
	var res Stream
	var args []pdf.Object
	for {
		obj, err := s.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		name, isOp := obj.(pdf.Operator)
		if !isOp {
			args = append(args, obj)
			continue
		}
		op := Operator{Name: OpName(name), Args: args}
		if err := op.check(); err != nil {
			return nil, &pdf.MalformedFileError{
				Pos: s.Pos(),
				Err: &EncodeError{Index: len(res), Op: op.Name, Err: err},
			}
		}
		res = append(res, op)
		args = nil
	}
	if len(args) > 0 {
		return nil, &pdf.MalformedFileError{
			Pos: s.Pos(),
			Err: fmt.Errorf("%d trailing operands", len(args)),
		}
	}
	return res, nil
}

// TextLine is a string shown by a Tj operator, together with the text state
// in effect at the time.
type TextLine struct {
	X, Y float64
	Font pdf.Name
	Size float64
	Text string
}

// Placement records an XObject drawn by a Do operator.
type Placement struct {
	Name pdf.Name

	// CTM is the current transformation matrix at the time of drawing.
	CTM matrix.Matrix
}

// Interpretation summarizes what a content stream draws.
type Interpretation struct {
	Lines  []TextLine
	Images []Placement
}

// Interpret runs through the stream and records all text and images in
// drawing order.  The stream is assumed to be valid (see [Stream.Validate]).
// Text positions are given in text space; the current transformation matrix
// is not applied to text.
func (s Stream) Interpret() *Interpretation {
	res := &Interpretation{}

	ctm := matrix.Identity
	var stack []matrix.Matrix

	var font pdf.Name
	var size float64
	var lineX, lineY float64

	for _, op := range s {
		switch op.Name {
		case OpTextBegin:
			lineX, lineY = 0, 0
		case OpTextSetFont:
			font = op.Args[0].(pdf.Name)
			size = getNumber(op.Args[1])
		case OpTextMoveOffset:
			lineX += getNumber(op.Args[0])
			lineY += getNumber(op.Args[1])
		case OpTextShow:
			res.Lines = append(res.Lines, TextLine{
				X:    lineX,
				Y:    lineY,
				Font: font,
				Size: size,
				Text: DecodeText(op.Args[0].(pdf.String)),
			})
		case OpPushGraphicsState:
			stack = append(stack, ctm)
		case OpPopGraphicsState:
			if k := len(stack); k > 0 {
				ctm = stack[k-1]
				stack = stack[:k-1]
			}
		case OpTransform:
			var M matrix.Matrix
			for i := range M {
				M[i] = getNumber(op.Args[i])
			}
			ctm = M.Mul(ctm)
		case OpXObject:
			res.Images = append(res.Images, Placement{
				Name: op.Args[0].(pdf.Name),
				CTM:  ctm,
			})
		}
	}
	return res
}

func getNumber(obj pdf.Object) float64 {
	switch x := obj.(type) {
	case pdf.Integer:
		return float64(x)
	case pdf.Real:
		return float64(x)
	}
	return 0
}
