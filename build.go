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

package bill

import (
	"bytes"
	"io"

	"seehuhn.de/go/bill/pages"
)

// Build generates the PDF file for a bill.
//
// The items are split into pages of Layout.ItemsPerPage items each.  An
// empty item list still gives one page.  For identical input and a
// deterministic image source, the output is identical byte for byte.
// On error, no data is returned.
func Build(in *Input, opt *Options) ([]byte, error) {
	buf := &bytes.Buffer{}
	err := build(buf, in, opt)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write generates the PDF file for a bill and writes it to w.
// Nothing is written to w if the bill cannot be generated.
func Write(w io.Writer, in *Input, opt *Options) error {
	data, err := Build(in, opt)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	if err != nil {
		return &Error{Kind: KindSerialization, Err: err}
	}
	return nil
}

func build(w io.Writer, in *Input, opt *Options) error {
	err := in.Check()
	if err != nil {
		return err
	}

	a, err := NewAssembler(in.Subject, opt)
	if err != nil {
		return err
	}

	chunks, err := pages.Chunks(in.Items, a.opt.Layout.ItemsPerPage)
	if err != nil {
		return &Error{Kind: KindInput, Err: err}
	}
	for _, chunk := range chunks {
		_, err = a.AddPage(chunk)
		if err != nil {
			return err
		}
	}

	err = a.SealTree()
	if err != nil {
		return err
	}
	err = a.LinkCatalog()
	if err != nil {
		return err
	}
	return a.Serialize(w)
}
