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
	"bytes"
	"errors"
	"fmt"

	"seehuhn.de/go/bill/pdf"
)

// Stream represents a PDF content stream.
type Stream []Operator

// Encode returns the content stream in PDF syntax, one operator per line.
// If any operator is unknown or has invalid operands, an [*EncodeError] is
// returned and no data.
func (s Stream) Encode() ([]byte, error) {
	buf := &bytes.Buffer{}
	for i, op := range s {
		if err := op.check(); err != nil {
			return nil, &EncodeError{Index: i, Op: op.Name, Err: err}
		}
		for _, arg := range op.Args {
			if err := arg.PDF(buf); err != nil {
				return nil, &EncodeError{Index: i, Op: op.Name, Err: err}
			}
			buf.WriteByte(' ')
		}
		buf.WriteString(string(op.Name))
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// Resources lists the named resources available to a content stream.
type Resources struct {
	Font    pdf.Dict
	XObject pdf.Dict
}

// Validate checks the structure of the content stream:
// text objects and saved graphics states must be balanced, text objects
// cannot be nested, text operators may only appear inside text objects,
// graphics state operators only outside, and all fonts and XObjects used
// must be listed in res.
func (s Stream) Validate(res *Resources) error {
	if res == nil {
		res = &Resources{}
	}

	inText := false
	depth := 0
	for i, op := range s {
		fail := func(err error) error {
			return &EncodeError{Index: i, Op: op.Name, Err: err}
		}
		if err := op.check(); err != nil {
			return fail(err)
		}

		switch op.Name {
		case OpTextBegin:
			if inText {
				return fail(errors.New("nested text object"))
			}
			inText = true
		case OpTextEnd:
			if !inText {
				return fail(errors.New("no text object to end"))
			}
			inText = false
		case OpTextMoveOffset, OpTextShow:
			if !inText {
				return fail(errors.New("not inside a text object"))
			}
		case OpTextSetFont:
			name := op.Args[0].(pdf.Name)
			if _, exists := res.Font[name]; !exists {
				return fail(fmt.Errorf("font %q not in resources", name))
			}
		case OpPushGraphicsState:
			if inText {
				return fail(errors.New("not allowed inside a text object"))
			}
			depth++
		case OpPopGraphicsState:
			if inText {
				return fail(errors.New("not allowed inside a text object"))
			}
			if depth == 0 {
				return fail(errors.New("no matching q"))
			}
			depth--
		case OpTransform:
			if inText {
				return fail(errors.New("not allowed inside a text object"))
			}
		case OpXObject:
			if inText {
				return fail(errors.New("not allowed inside a text object"))
			}
			name := op.Args[0].(pdf.Name)
			if _, exists := res.XObject[name]; !exists {
				return fail(fmt.Errorf("XObject %q not in resources", name))
			}
		}
	}

	if inText {
		return &EncodeError{Index: len(s), Op: OpTextEnd, Err: errors.New("unterminated text object")}
	}
	if depth > 0 {
		return &EncodeError{Index: len(s), Op: OpPopGraphicsState, Err: fmt.Errorf("%d unmatched q", depth)}
	}
	return nil
}
