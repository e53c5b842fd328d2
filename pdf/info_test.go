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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTextString(t *testing.T) {
	for _, s := range []string{"", "Alice", "Zoë", "日本"} {
		enc := TextString(s)
		if got := DecodeTextString(enc); got != s {
			t.Errorf("%q: round trip gave %q", s, got)
		}
	}
	if got := TextString("Zoë"); string(got[:2]) != "\xfe\xff" {
		t.Errorf("missing byte order mark in %x", got)
	}
}

func TestInfo(t *testing.T) {
	s := NewStore()
	info := &Info{Title: "Fake Bill for: Zoë", Producer: "test"}
	ref := s.Add(info.AsDict())

	dict, _ := s.Get(ref)
	if _, hasSubject := dict.(Dict)["Subject"]; hasSubject {
		t.Error("empty field written")
	}

	got, err := ExtractInfo(s, ref)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(info, got); d != "" {
		t.Errorf("info mismatch (-want +got):\n%s", d)
	}

	got, err = ExtractInfo(s, nil)
	if got != nil || err != nil {
		t.Errorf("nil info: got %v, %v", got, err)
	}
}
