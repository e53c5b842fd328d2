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
	"fmt"
	"io"
	"math"
	"strconv"
)

// Scanner breaks PDF data into objects.
//
// The scanner understands the PDF object syntax shared by file bodies and
// content streams.  Bare keywords like "obj", "R" or "Tj" are returned as
// [Operator] values.  Inside arrays and dictionaries, the sequence "a b R" is
// folded into a [Reference]; at the top level this is left to the caller.
type Scanner struct {
	data []byte
	pos  int
}

// NewScanner returns a scanner which reads objects from data.
func NewScanner(data []byte) *Scanner {
	return &Scanner{data: data}
}

// Pos returns the current read position, as an offset into the data.
func (s *Scanner) Pos() int64 {
	return int64(s.pos)
}

// Next returns the next object from the input.  At the end of the input,
// io.EOF is returned.  A PDF null is returned as (nil, nil).
func (s *Scanner) Next() (Object, error) {
	s.skipWhiteSpace()
	if s.pos >= len(s.data) {
		return nil, io.EOF
	}

	c := s.data[s.pos]
	switch {
	case c == '/':
		s.pos++
		return s.readName(), nil
	case c == '(':
		s.pos++
		return s.readString()
	case c == '<' && s.hasPrefix("<<"):
		s.pos += 2
		return s.readDict()
	case c == '<':
		s.pos++
		return s.readHexString()
	case c == '[':
		s.pos++
		return s.readArray()
	case c == ']' || c == '>' || c == ')' || c == '{' || c == '}':
		s.pos++
		if c == '>' && s.pos < len(s.data) && s.data[s.pos] == '>' {
			s.pos++
			return Operator(">>"), nil
		}
		return Operator([]byte{c}), nil
	}

	start := s.pos
	for s.pos < len(s.data) && !isSpace(s.data[s.pos]) && !isDelimiter(s.data[s.pos]) {
		s.pos++
	}
	word := s.data[start:s.pos]
	if x, ok := parseNumber(word); ok {
		return x, nil
	}
	switch string(word) {
	case "true":
		return Bool(true), nil
	case "false":
		return Bool(false), nil
	case "null":
		return nil, nil
	}
	return Operator(word), nil
}

// SkipEOL skips a single end-of-line marker (LF or CR LF).  This is used
// after the "stream" keyword.
func (s *Scanner) SkipEOL() error {
	switch {
	case s.hasPrefix("\r\n"):
		s.pos += 2
	case s.hasPrefix("\n"):
		s.pos++
	default:
		return s.errorf("missing end of line after stream keyword")
	}
	return nil
}

// Seek moves the read position to the given offset.
func (s *Scanner) Seek(pos int64) error {
	if pos < 0 || pos > int64(len(s.data)) {
		return s.errorf("offset %d out of range", pos)
	}
	s.pos = int(pos)
	return nil
}

func (s *Scanner) hasPrefix(pfx string) bool {
	return len(s.data)-s.pos >= len(pfx) && string(s.data[s.pos:s.pos+len(pfx)]) == pfx
}

func (s *Scanner) errorf(format string, args ...any) error {
	return &MalformedFileError{
		Pos: int64(s.pos),
		Err: fmt.Errorf(format, args...),
	}
}

func (s *Scanner) skipWhiteSpace() {
	for s.pos < len(s.data) {
		c := s.data[s.pos]
		if c == '%' {
			for s.pos < len(s.data) && s.data[s.pos] != '\n' && s.data[s.pos] != '\r' {
				s.pos++
			}
		} else if isSpace(c) {
			s.pos++
		} else {
			return
		}
	}
}

// readSequence reads objects until the closing keyword is found.  References
// are folded.
func (s *Scanner) readSequence(closing Operator) ([]Object, error) {
	var seq []Object
	for {
		obj, err := s.Next()
		if err == io.EOF {
			return nil, s.errorf("unexpected end of input, expected %q", closing)
		} else if err != nil {
			return nil, err
		}

		if op, isOp := obj.(Operator); isOp {
			if op == closing {
				return seq, nil
			}
			k := len(seq)
			if op == "R" && k >= 2 {
				num, ok1 := seq[k-2].(Integer)
				gen, ok2 := seq[k-1].(Integer)
				if ok1 && ok2 && num > 0 && num <= math.MaxUint32 && gen >= 0 && gen <= math.MaxUint16 {
					seq = append(seq[:k-2], Reference{Number: uint32(num), Generation: uint16(gen)})
					continue
				}
			}
			return nil, s.errorf("unexpected %q", op)
		}
		seq = append(seq, obj)
	}
}

func (s *Scanner) readArray() (Array, error) {
	seq, err := s.readSequence("]")
	if err != nil {
		return nil, err
	}
	return Array(seq), nil
}

func (s *Scanner) readDict() (Dict, error) {
	seq, err := s.readSequence(">>")
	if err != nil {
		return nil, err
	}
	if len(seq)%2 != 0 {
		return nil, s.errorf("odd number of dictionary elements")
	}
	dict := make(Dict, len(seq)/2)
	for i := 0; i < len(seq); i += 2 {
		key, ok := seq[i].(Name)
		if !ok {
			return nil, s.errorf("dictionary key %s is not a name", Format(seq[i]))
		}
		if seq[i+1] != nil {
			dict[key] = seq[i+1]
		}
	}
	return dict, nil
}

func (s *Scanner) readName() Name {
	var name []byte
	for s.pos < len(s.data) {
		c := s.data[s.pos]
		if isSpace(c) || isDelimiter(c) {
			break
		}
		s.pos++
		if c == '#' && s.pos+2 <= len(s.data) {
			hi, ok1 := hexDigit(s.data[s.pos])
			lo, ok2 := hexDigit(s.data[s.pos+1])
			if ok1 && ok2 {
				s.pos += 2
				c = hi<<4 | lo
			}
		}
		name = append(name, c)
	}
	return Name(name)
}

// readString reads a ()-delimited string, starting after the opening
// bracket.
func (s *Scanner) readString() (String, error) {
	var res []byte
	level := 0
	for s.pos < len(s.data) {
		c := s.data[s.pos]
		s.pos++
		switch c {
		case '(':
			level++
		case ')':
			if level == 0 {
				return String(res), nil
			}
			level--
		case '\r':
			// CR and CR LF both mean LF
			if s.hasPrefix("\n") {
				s.pos++
			}
			c = '\n'
		case '\\':
			if s.pos >= len(s.data) {
				break
			}
			c = s.data[s.pos]
			s.pos++
			switch c {
			case 'n':
				c = '\n'
			case 'r':
				c = '\r'
			case 't':
				c = '\t'
			case 'b':
				c = '\b'
			case 'f':
				c = '\f'
			case '\r':
				if s.hasPrefix("\n") {
					s.pos++
				}
				continue
			case '\n':
				continue
			case '0', '1', '2', '3', '4', '5', '6', '7':
				oct := c - '0'
				for i := 0; i < 2 && s.pos < len(s.data); i++ {
					d := s.data[s.pos]
					if d < '0' || d > '7' {
						break
					}
					oct = oct*8 + (d - '0')
					s.pos++
				}
				c = oct
			}
		}
		res = append(res, c)
	}
	return nil, s.errorf("unterminated string")
}

// readHexString reads a <>-delimited string, starting after the opening
// angle bracket.
func (s *Scanner) readHexString() (String, error) {
	var res []byte
	first := true
	var hi byte
	for s.pos < len(s.data) {
		c := s.data[s.pos]
		s.pos++
		if c == '>' {
			if !first {
				res = append(res, hi)
			}
			return String(res), nil
		}
		if isSpace(c) {
			continue
		}
		d, ok := hexDigit(c)
		if !ok {
			return nil, s.errorf("invalid hex digit %q", c)
		}
		if first {
			hi = d << 4
		} else {
			res = append(res, hi|d)
		}
		first = !first
	}
	return nil, s.errorf("unterminated hex string")
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}

func parseNumber(word []byte) (Object, bool) {
	if len(word) == 0 {
		return nil, false
	}
	hasDigit := false
	hasDot := false
	for i, c := range word {
		switch {
		case c >= '0' && c <= '9':
			hasDigit = true
		case c == '.' && !hasDot:
			hasDot = true
		case (c == '+' || c == '-') && i == 0:
		default:
			return nil, false
		}
	}
	if !hasDigit {
		return nil, false
	}

	if !hasDot {
		x, err := strconv.ParseInt(string(word), 10, 64)
		if err == nil {
			return Integer(x), true
		}
	}
	y, err := strconv.ParseFloat(string(word), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, false
	}
	return Real(y), true
}
