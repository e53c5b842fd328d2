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
	"golang.org/x/text/encoding/charmap"

	"seehuhn.de/go/bill/pdf"
)

// EncodeText converts s to a PDF string using WinAnsiEncoding, the
// encoding declared for the standard fonts used in this module.  Runes which
// have no representation in WinAnsiEncoding cause an error.
func EncodeText(s string) (pdf.String, error) {
	b, err := charmap.Windows1252.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, err
	}
	return pdf.String(b), nil
}

// DecodeText converts a WinAnsiEncoding PDF string to a Go string.
func DecodeText(s pdf.String) string {
	b, err := charmap.Windows1252.NewDecoder().Bytes(s)
	if err != nil {
		// Windows-1252 decoding does not fail
		return string(s)
	}
	return string(b)
}
