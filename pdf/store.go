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

// Store holds the indirect objects of one PDF document while the document is
// being assembled.
//
// Object numbers are assigned sequentially, starting at 1, and are never
// reused.  A number can be reserved with [Store.NewID] before the object is
// known, and filled in later using [Store.Set].  This allows objects to refer
// to each other in both directions, for example a page and its parent page
// tree node.  Objects are never removed from a store.
//
// A Store is not safe for concurrent use.  Independent documents should use
// independent stores.
type Store struct {
	// objects[i] holds the object with number i+1.  Reserved but not yet
	// filled slots are nil.
	objects []Object
}

// NewStore returns a new, empty object store.
func NewStore() *Store {
	return &Store{}
}

// NewID reserves a new object number.
func (s *Store) NewID() Reference {
	s.objects = append(s.objects, nil)
	return Reference{Number: uint32(len(s.objects))}
}

// Add stores obj under a new object number and returns the reference.
//
// Add panics if obj is nil.  Callers of Add construct obj themselves, so a
// nil value is a programming error.  [Store.Set] instead reports
// [ErrNilObject], since it fills in placeholders whose objects are often
// computed from caller data.
func (s *Store) Add(obj Object) Reference {
	if obj == nil {
		panic("pdf: Store.Add called with nil object")
	}
	s.objects = append(s.objects, obj)
	return Reference{Number: uint32(len(s.objects))}
}

// Set stores obj under a reference previously reserved by [Store.NewID].
// It returns [ErrNilObject] if obj is nil, [ErrUnknownReference] if ref
// was not allocated by s, and [ErrAlreadySet] if ref already has a value.
func (s *Store) Set(ref Reference, obj Object) error {
	if obj == nil {
		return ErrNilObject
	}
	idx, ok := s.index(ref)
	if !ok {
		return ErrUnknownReference
	}
	if s.objects[idx] != nil {
		return ErrAlreadySet
	}
	s.objects[idx] = obj
	return nil
}

// Get returns the object stored under ref.
func (s *Store) Get(ref Reference) (Object, error) {
	idx, ok := s.index(ref)
	if !ok {
		return nil, ErrUnknownReference
	}
	obj := s.objects[idx]
	if obj == nil {
		return nil, ErrUnset
	}
	return obj, nil
}

// Len returns the number of object numbers allocated so far.
func (s *Store) Len() int {
	return len(s.objects)
}

func (s *Store) index(ref Reference) (int, bool) {
	if ref.Number == 0 || ref.Generation != 0 || int(ref.Number) > len(s.objects) {
		return 0, false
	}
	return int(ref.Number) - 1, true
}

// Check verifies that the object graph is complete: every reserved object
// number must have been filled in, and every reference contained in a stored
// object, or given in roots, must resolve to a stored object.
func (s *Store) Check(roots ...Reference) error {
	for i, obj := range s.objects {
		if obj == nil {
			ref := Reference{Number: uint32(i + 1)}
			return &ReferenceError{Ref: ref, Err: ErrUnset}
		}
	}

	for _, ref := range roots {
		if _, err := s.Get(ref); err != nil {
			return &ReferenceError{Ref: ref, Err: err}
		}
	}

	for i, obj := range s.objects {
		from := Reference{Number: uint32(i + 1)}
		err := walkRefs(obj, func(ref Reference) error {
			if _, err := s.Get(ref); err != nil {
				return &ReferenceError{Ref: ref, From: from, Err: err}
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// walkRefs calls fn for every reference contained in obj, recursing into
// arrays, dictionaries and stream dictionaries.
func walkRefs(obj Object, fn func(Reference) error) error {
	switch obj := obj.(type) {
	case Reference:
		return fn(obj)
	case Array:
		for _, elem := range obj {
			if err := walkRefs(elem, fn); err != nil {
				return err
			}
		}
	case Dict:
		for _, key := range obj.keys() {
			if err := walkRefs(obj[key], fn); err != nil {
				return err
			}
		}
	case *Stream:
		return walkRefs(obj.Dict, fn)
	}
	return nil
}
