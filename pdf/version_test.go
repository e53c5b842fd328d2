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

func TestVersion(t *testing.T) {
	cases := []struct {
		in  string
		ver Version
	}{
		{"1.0", V1_0},
		{"1.4", V1_4},
		{"1.7", V1_7},
	}
	for _, c := range cases {
		ver, err := ParseVersion(c.in)
		if err != nil || ver != c.ver {
			t.Errorf("ParseVersion(%q): got %d, %v", c.in, ver, err)
		}
		if got := c.ver.String(); got != c.in {
			t.Errorf("String: got %q, want %q", got, c.in)
		}
	}

	for _, s := range []string{"", "1.8", "2.0", "1.", "1.10"} {
		if _, err := ParseVersion(s); !errors.Is(err, errVersion) {
			t.Errorf("ParseVersion(%q): got %v", s, err)
		}
	}
	if got := Version(0).String(); got != "pdf.Version(0)" {
		t.Errorf("zero Version: got %q", got)
	}
}
