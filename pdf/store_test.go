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
	"testing"
)

func TestStoreIDs(t *testing.T) {
	s := NewStore()
	a := s.NewID()
	b := s.Add(Integer(2))
	c := s.NewID()

	for i, ref := range []Reference{a, b, c} {
		if ref.Number != uint32(i+1) || ref.Generation != 0 {
			t.Errorf("ref %d: got %s", i, ref)
		}
	}
	if s.Len() != 3 {
		t.Errorf("Len: got %d, want 3", s.Len())
	}

	if _, err := s.Get(a); !errors.Is(err, ErrUnset) {
		t.Errorf("Get of placeholder: got %v", err)
	}
	if err := s.Set(a, Name("x")); err != nil {
		t.Fatal(err)
	}
	obj, err := s.Get(a)
	if err != nil || obj != Name("x") {
		t.Errorf("Get after Set: got %v, %v", obj, err)
	}
}

func TestStoreSetErrors(t *testing.T) {
	s := NewStore()
	ref := s.NewID()

	if err := s.Set(ref, nil); !errors.Is(err, ErrNilObject) {
		t.Errorf("nil object: got %v", err)
	}
	if err := s.Set(Reference{Number: 2}, Integer(1)); !errors.Is(err, ErrUnknownReference) {
		t.Errorf("unknown reference: got %v", err)
	}
	if err := s.Set(Reference{}, Integer(1)); !errors.Is(err, ErrUnknownReference) {
		t.Errorf("zero reference: got %v", err)
	}
	if err := s.Set(ref, Integer(1)); err != nil {
		t.Fatal(err)
	}
	if err := s.Set(ref, Integer(2)); !errors.Is(err, ErrAlreadySet) {
		t.Errorf("second Set: got %v", err)
	}
	added := s.Add(Integer(3))
	if err := s.Set(added, Integer(4)); !errors.Is(err, ErrAlreadySet) {
		t.Errorf("Set after Add: got %v", err)
	}
}

func TestStoreAddNil(t *testing.T) {
	s := NewStore()
	s.Add(Integer(1))

	defer func() {
		if recover() == nil {
			t.Error("Add(nil) did not panic")
		}
		if s.Len() != 1 {
			t.Errorf("Len after failed Add: got %d, want 1", s.Len())
		}
	}()
	s.Add(nil)
}

func TestStoreCheck(t *testing.T) {
	s := NewStore()
	pages := s.NewID()
	page := s.Add(Dict{"Type": Name("Page"), "Parent": pages})

	err := s.Check(page)
	var refErr *ReferenceError
	if !errors.As(err, &refErr) || refErr.Ref != pages || !errors.Is(err, ErrUnset) {
		t.Fatalf("unfilled placeholder: got %v", err)
	}

	s.Set(pages, Dict{"Type": Name("Pages"), "Kids": Array{page}})
	if err := s.Check(page); err != nil {
		t.Fatal(err)
	}

	dangling := Reference{Number: 99}
	s.Add(&Stream{Dict: Dict{"SMask": dangling}})
	err = s.Check()
	if !errors.As(err, &refErr) || refErr.Ref != dangling || refErr.From.Number != 3 {
		t.Errorf("dangling reference: got %v", err)
	}

	s2 := NewStore()
	if err := s2.Check(Reference{Number: 1}); !errors.As(err, &refErr) {
		t.Errorf("dangling root: got %v", err)
	}
}
