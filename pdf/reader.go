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
	"bytes"
	"errors"
	"fmt"
)

// Getter is implemented by types which can look up indirect objects.
type Getter interface {
	Get(ref Reference) (Object, error)
}

var (
	_ Getter = (*Store)(nil)
	_ Getter = (*Reader)(nil)
)

// Reader reads objects from a complete PDF file held in memory.
//
// Only files with classic cross-reference tables are supported;
// cross-reference streams, object streams and encryption are not.
type Reader struct {
	data    []byte
	version Version
	xref    map[uint32]int64
	trailer Dict
	cache   map[Reference]Object
}

// NewReader parses the header, the cross-reference table and the trailer of
// the PDF file contained in data.
func NewReader(data []byte) (*Reader, error) {
	r := &Reader{
		data:  data,
		xref:  make(map[uint32]int64),
		cache: make(map[Reference]Object),
	}

	ver, err := readHeaderVersion(data)
	if err != nil {
		return nil, err
	}
	r.version = ver

	start, err := r.findXRef()
	if err != nil {
		return nil, err
	}
	err = r.readXRefTable(start)
	if err != nil {
		return nil, err
	}

	if _, isRef := r.trailer["Root"].(Reference); !isRef {
		return nil, &MalformedFileError{Err: errors.New("missing /Root in trailer")}
	}
	return r, nil
}

// Version returns the PDF version given in the file header.
func (r *Reader) Version() Version {
	return r.version
}

// Trailer returns the trailer dictionary.
func (r *Reader) Trailer() Dict {
	return r.trailer
}

// Root returns the reference to the document catalog.
func (r *Reader) Root() Reference {
	return r.trailer["Root"].(Reference)
}

// NumObjects returns the number of in-use objects in the cross-reference
// table.
func (r *Reader) NumObjects() int {
	return len(r.xref)
}

func readHeaderVersion(data []byte) (Version, error) {
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		return 0, &MalformedFileError{Err: errors.New("PDF header not found")}
	}
	end := bytes.IndexAny(data, "\r\n")
	if end < 0 {
		return 0, &MalformedFileError{Err: errors.New("PDF header not found")}
	}
	ver, err := ParseVersion(string(data[5:end]))
	if err != nil {
		return 0, &MalformedFileError{Pos: 5, Err: err}
	}
	return ver, nil
}

func (r *Reader) findXRef() (int64, error) {
	idx := bytes.LastIndex(r.data, []byte("startxref"))
	if idx < 0 {
		return 0, &MalformedFileError{Err: errors.New("startxref not found")}
	}
	s := NewScanner(r.data)
	s.Seek(int64(idx + len("startxref")))
	obj, err := s.Next()
	if err != nil {
		return 0, &MalformedFileError{Pos: s.Pos(), Err: err}
	}
	pos, ok := obj.(Integer)
	if !ok || pos <= 0 || int64(pos) >= int64(len(r.data)) {
		return 0, &MalformedFileError{
			Pos: s.Pos(),
			Err: errors.New("invalid xref position"),
		}
	}
	return int64(pos), nil
}

func (r *Reader) readXRefTable(start int64) error {
	s := NewScanner(r.data)
	err := s.Seek(start)
	if err != nil {
		return err
	}
	if obj, err := s.Next(); err != nil || obj != Operator("xref") {
		return s.errorf("xref table not found")
	}

	for {
		obj, err := s.Next()
		if err != nil {
			return s.errorf("truncated xref table")
		}
		if obj == Operator("trailer") {
			break
		}
		first, ok1 := obj.(Integer)
		obj, err = s.Next()
		count, ok2 := obj.(Integer)
		if err != nil || !ok1 || !ok2 || first < 0 || count < 0 {
			return s.errorf("malformed xref subsection header")
		}

		for i := Integer(0); i < count; i++ {
			offset, err1 := s.Next()
			_, err2 := s.Next()
			kind, err3 := s.Next()
			if err := errors.Join(err1, err2, err3); err != nil {
				return s.errorf("malformed xref entry: %v", err)
			}
			pos, ok := offset.(Integer)
			if !ok {
				return s.errorf("malformed xref entry")
			}
			switch kind {
			case Operator("n"):
				r.xref[uint32(first+i)] = int64(pos)
			case Operator("f"):
				// free entry
			default:
				return s.errorf("malformed xref entry type %s", Format(kind))
			}
		}
	}

	obj, err := s.Next()
	if err != nil {
		return s.errorf("missing trailer dictionary")
	}
	trailer, ok := obj.(Dict)
	if !ok {
		return s.errorf("trailer is not a dictionary")
	}
	r.trailer = trailer
	return nil
}

// Get reads the indirect object ref from the file.
// References to objects not present in the cross-reference table resolve to
// null, as required by the PDF specification.
func (r *Reader) Get(ref Reference) (Object, error) {
	if obj, ok := r.cache[ref]; ok {
		return obj, nil
	}
	pos, ok := r.xref[ref.Number]
	if !ok {
		return nil, nil
	}

	s := NewScanner(r.data)
	if err := s.Seek(pos); err != nil {
		return nil, err
	}
	num, err1 := s.Next()
	gen, err2 := s.Next()
	kw, err3 := s.Next()
	if err := errors.Join(err1, err2, err3); err != nil {
		return nil, &MalformedFileError{Pos: pos, Err: err}
	}
	if num != Integer(ref.Number) || gen != Integer(ref.Generation) || kw != Operator("obj") {
		return nil, &MalformedFileError{
			Pos: pos,
			Err: fmt.Errorf("expected %s but found %s %s %s", ref,
				Format(num), Format(gen), Format(kw)),
		}
	}

	var seq []Object
	isStream := false
	for {
		obj, err := s.Next()
		if err != nil {
			return nil, &MalformedFileError{Pos: s.Pos(), Err: err}
		}
		if obj == Operator("endobj") || obj == Operator("stream") {
			isStream = obj == Operator("stream")
			if len(seq) == 3 && seq[2] == Operator("R") {
				num, ok1 := seq[0].(Integer)
				gen, ok2 := seq[1].(Integer)
				if ok1 && ok2 {
					seq = []Object{Reference{Number: uint32(num), Generation: uint16(gen)}}
				}
			}
			if len(seq) != 1 {
				return nil, &MalformedFileError{
					Pos: pos,
					Err: fmt.Errorf("object %s: expected one object, found %d", ref, len(seq)),
				}
			}
			break
		}
		seq = append(seq, obj)
	}

	res := seq[0]
	if isStream {
		dict, isDict := res.(Dict)
		if !isDict {
			return nil, &MalformedFileError{Pos: pos, Err: errors.New("stream without dictionary")}
		}
		stm, err := r.readStreamData(s, dict)
		if err != nil {
			return nil, err
		}
		res = stm
	}

	r.cache[ref] = res
	return res, nil
}

func (r *Reader) readStreamData(s *Scanner, dict Dict) (*Stream, error) {
	length, err := GetInt(r, dict["Length"])
	if err != nil {
		return nil, err
	}
	if length < 0 {
		return nil, s.errorf("stream with negative length")
	}
	err = s.SkipEOL()
	if err != nil {
		return nil, err
	}
	start := s.Pos()
	end := start + int64(length)
	if end > int64(len(s.data)) {
		return nil, s.errorf("stream data extends beyond end of file")
	}
	s.Seek(end)
	if obj, err := s.Next(); err != nil || obj != Operator("endstream") {
		return nil, s.errorf("missing endstream")
	}

	data := make([]byte, length)
	copy(data, s.data[start:end])
	return &Stream{Dict: dict, Data: data}, nil
}

// Resolve resolves references to indirect objects.
//
// If obj is a [Reference], the function reads the corresponding object and
// returns the result.  Chains of references are followed.  If obj is not a
// [Reference], it is returned unchanged.
func Resolve(r Getter, obj Object) (Object, error) {
	for count := 0; ; count++ {
		ref, isReference := obj.(Reference)
		if !isReference {
			return obj, nil
		}
		if count >= 16 {
			return nil, &MalformedFileError{
				Err: errors.New("too many levels of indirection"),
			}
		}
		var err error
		obj, err = r.Get(ref)
		if err != nil {
			return nil, err
		}
	}
}

func resolveAndCast[T Object](r Getter, obj Object) (x T, err error) {
	obj, err = Resolve(r, obj)
	if err != nil {
		return x, err
	}
	if obj == nil {
		return x, nil
	}

	x, isCorrectType := obj.(T)
	if isCorrectType {
		return x, nil
	}
	return x, &MalformedFileError{
		Err: fmt.Errorf("expected %T but got %T", x, obj),
	}
}

// Helper functions for getting objects of a specific type.  Each of these
// functions calls Resolve on the object before attempting to convert it to the
// desired type.  If the object is null, a zero object is returned without
// error.  If the object is of the wrong type, an error is returned.
var (
	GetArray  = resolveAndCast[Array]
	GetDict   = resolveAndCast[Dict]
	GetInt    = resolveAndCast[Integer]
	GetName   = resolveAndCast[Name]
	GetReal   = resolveAndCast[Real]
	GetStream = resolveAndCast[*Stream]
	GetString = resolveAndCast[String]
)

// GetNumber resolves obj and returns its value as a float64.  Both [Integer]
// and [Real] objects are accepted.
func GetNumber(r Getter, obj Object) (float64, error) {
	obj, err := Resolve(r, obj)
	if err != nil {
		return 0, err
	}
	switch x := obj.(type) {
	case Integer:
		return float64(x), nil
	case Real:
		return float64(x), nil
	default:
		return 0, &MalformedFileError{
			Err: fmt.Errorf("expected number but got %T", obj),
		}
	}
}
