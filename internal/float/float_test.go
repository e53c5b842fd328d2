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

package float

import (
	"math"
	"testing"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		x    float64
		prec int
		want string
	}{
		{0, 3, "0"},
		{1, 3, "1"},
		{-0.0001, 3, "0"},
		{271.3333333, 3, "271.333"},
		{1.5, 3, "1.5"},
		{-2.25, 1, "-2.2"},
		{100, 0, "100"},
		{1230, 2, "1230"},
	}
	for _, c := range cases {
		got := Format(c.x, c.prec)
		if got != c.want {
			t.Errorf("Format(%g, %d) = %q, want %q", c.x, c.prec, got, c.want)
		}
	}
}

func TestRound(t *testing.T) {
	if got := Round(613.0/3, 3); got != 204.333 {
		t.Errorf("Round = %g", got)
	}
	if got := Round(math.Inf(1), 2); !math.IsInf(got, 1) {
		t.Errorf("Round(+Inf) = %g", got)
	}
}
