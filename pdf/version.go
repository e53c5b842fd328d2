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

import "strconv"

// Version represents a version of the PDF standard.
type Version int

// PDF versions supported by this package.
// The zero Version is not a valid PDF version.
const (
	V1_0 Version = iota + 1
	V1_1
	V1_2
	V1_3
	V1_4
	V1_5
	V1_6
	V1_7
	tooHighVersion
)

// ParseVersion parses a PDF version string like "1.5".
func ParseVersion(s string) (Version, error) {
	if len(s) != 3 || s[:2] != "1." || s[2] < '0' || s[2] > '7' {
		return 0, errVersion
	}
	return V1_0 + Version(s[2]-'0'), nil
}

// String returns the version in the form "1.x".
func (ver Version) String() string {
	if ver < V1_0 || ver >= tooHighVersion {
		return "pdf.Version(" + strconv.Itoa(int(ver)) + ")"
	}
	return "1." + strconv.Itoa(int(ver-V1_0))
}
