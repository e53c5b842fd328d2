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
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/bill/internal/float"
	"seehuhn.de/go/bill/pdf"
)

// Builder collects content stream operators.
//
// The methods of Builder do not return errors.  Instead, the first error
// encountered is stored in Err and all later calls are ignored.
type Builder struct {
	ops Stream
	Err error
}

// NewBuilder returns a Builder with an empty operator list.
func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) emit(name OpName, args ...pdf.Object) {
	if b.Err != nil {
		return
	}
	op := Operator{Name: name, Args: args}
	if err := op.check(); err != nil {
		b.Err = &EncodeError{Index: len(b.ops), Op: name, Err: err}
		return
	}
	b.ops = append(b.ops, op)
}

// Append adds operators to the stream.
func (b *Builder) Append(ops ...Operator) {
	for _, op := range ops {
		b.emit(op.Name, op.Args...)
	}
}

// TextBegin starts a new text object.
// The text position is reset to the origin at the start of every text object.
//
// This implements the PDF operator "BT".
func (b *Builder) TextBegin() {
	b.emit(OpTextBegin)
}

// TextEnd ends the current text object.
//
// This implements the PDF operator "ET".
func (b *Builder) TextEnd() {
	b.emit(OpTextEnd)
}

// TextSetFont sets the font and the font size.
// The font is given by its name in the resource dictionary.
//
// This implements the PDF operator "Tf".
func (b *Builder) TextSetFont(font pdf.Name, size float64) {
	b.emit(OpTextSetFont, font, number(size))
}

// TextMoveTo moves the text position.
// Directly after [Builder.TextBegin], this sets the absolute position.
//
// This implements the PDF operator "Td".
func (b *Builder) TextMoveTo(x, y float64) {
	b.emit(OpTextMoveOffset, number(x), number(y))
}

// TextShow shows a string at the current text position.
// The string is encoded using WinAnsiEncoding.
//
// This implements the PDF operator "Tj".
func (b *Builder) TextShow(s string) {
	if b.Err != nil {
		return
	}
	str, err := EncodeText(s)
	if err != nil {
		b.Err = &EncodeError{Index: len(b.ops), Op: OpTextShow, Err: err}
		return
	}
	b.emit(OpTextShow, str)
}

// TextLine writes a complete single-line text object: the text s is shown in
// the given font and size, with the start of the baseline at (x, y).
func (b *Builder) TextLine(font pdf.Name, size, x, y float64, s string) {
	b.TextBegin()
	b.TextSetFont(font, size)
	b.TextMoveTo(x, y)
	b.TextShow(s)
	b.TextEnd()
}

// PushGraphicsState saves the current graphics state.
//
// This implements the PDF operator "q".
func (b *Builder) PushGraphicsState() {
	b.emit(OpPushGraphicsState)
}

// PopGraphicsState restores the previous graphics state.
//
// This implements the PDF operator "Q".
func (b *Builder) PopGraphicsState() {
	b.emit(OpPopGraphicsState)
}

// Transform applies M to the current transformation matrix.
// Matrix entries are rounded to three decimal places.
//
// This implements the PDF operator "cm".
func (b *Builder) Transform(M matrix.Matrix) {
	args := make([]pdf.Object, 6)
	for i, x := range M {
		args[i] = number(float.Round(x, 3))
	}
	b.emit(OpTransform, args...)
}

// DrawXObject draws the XObject with the given resource name.
//
// This implements the PDF operator "Do".
func (b *Builder) DrawXObject(name pdf.Name) {
	b.emit(OpXObject, name)
}

// Stream returns the operators collected so far, or the first error.
func (b *Builder) Stream() (Stream, error) {
	if b.Err != nil {
		return nil, b.Err
	}
	return b.ops, nil
}

// number returns x as an Integer if it is integral, and as a Real otherwise.
func number(x float64) pdf.Object {
	if x == float64(int64(x)) && x >= -1<<53 && x <= 1<<53 {
		return pdf.Integer(x)
	}
	return pdf.Real(x)
}
