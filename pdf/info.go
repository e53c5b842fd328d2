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

	"golang.org/x/text/encoding/unicode"
)

// Info represents a PDF Document Information Dictionary.
//
// All fields are optional.  The zero value represents an empty
// information dictionary.
type Info struct {
	Title    string
	Subject  string
	Producer string
}

// AsDict returns the information dictionary.  Empty fields are omitted.
func (info *Info) AsDict() Dict {
	dict := Dict{}
	for key, val := range map[Name]string{
		"Title":    info.Title,
		"Subject":  info.Subject,
		"Producer": info.Producer,
	} {
		if val != "" {
			dict[key] = TextString(val)
		}
	}
	return dict
}

// ExtractInfo reads an information dictionary.
// If obj is nil, the function returns nil.
func ExtractInfo(r Getter, obj Object) (*Info, error) {
	dict, err := GetDict(r, obj)
	if err != nil || dict == nil {
		return nil, err
	}

	info := &Info{}
	for key, field := range map[Name]*string{
		"Title":    &info.Title,
		"Subject":  &info.Subject,
		"Producer": &info.Producer,
	} {
		s, err := GetString(r, dict[key])
		if err != nil {
			return nil, err
		}
		*field = DecodeTextString(s)
	}
	return info, nil
}

var utf16 = unicode.UTF16(unicode.BigEndian, unicode.UseBOM)

// TextString encodes a string for use in text fields outside content
// streams.  ASCII strings are stored as-is, everything else as UTF-16BE with
// a byte order mark.
func TextString(s string) String {
	ascii := true
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			ascii = false
			break
		}
	}
	if ascii {
		return String(s)
	}
	b, err := utf16.NewEncoder().Bytes([]byte(s))
	if err != nil {
		// invalid UTF-8 is replaced by U+FFFD, so this does not happen
		return String(s)
	}
	return String(b)
}

// DecodeTextString reverses [TextString].
func DecodeTextString(s String) string {
	if !bytes.HasPrefix(s, []byte{0xFE, 0xFF}) {
		return string(s)
	}
	b, err := utf16.NewDecoder().Bytes(s)
	if err != nil {
		return string(s)
	}
	return string(b)
}
