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

// Package bill generates multi-page PDF bills.
//
// A bill consists of a subject name and a list of items with prices.  The
// items are split into pages of a fixed capacity; every page repeats the
// header for the subject, shows one image and lists the items of this page.
//
// The simplest way to generate a bill is [Build]:
//
//	in, err := bill.NewInput("Alice", []string{"Widget", "Gadget"}, []float64{9.99, 19.995})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	data, err := bill.Build(in, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For finer control, an [Assembler] exposes the individual steps of the
// construction.  The generated files use only the PDF features needed for
// a bill: a standard font, JPEG images, a flat page tree and an uncompressed
// cross-reference table.
package bill
