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

// Package image embeds raster images into PDF files as image XObjects.
package image

import (
	"errors"
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/bill/content"
	"seehuhn.de/go/bill/pdf"
)

// ErrInvalid is returned by [Embed] for images which cannot be embedded.
var ErrInvalid = errors.New("invalid image")

// Source produces the encoded pixel data for an image of the given size.
// The format of the data must match the Filter used for the embedded image.
type Source func(width, height int) ([]byte, error)

// Raster describes an image together with its encoded pixel data.
//
// The metadata is written to the image dictionary as given.  Consistency
// between the metadata and Data is not verified.
type Raster struct {
	Width, Height    int
	BitsPerComponent int
	ColorSpace       pdf.Name
	Filter           pdf.Name
	Data             []byte
}

// Embedded is an image which has been added to a PDF store.
type Embedded struct {
	Ref  pdf.Reference
	Name pdf.Name

	Width, Height int
}

// Embed adds the image to the store, as an image XObject.
// The resource name of the image is "X" followed by the object number.
func Embed(store *pdf.Store, r *Raster) (*Embedded, error) {
	if r.Width <= 0 || r.Height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalid, r.Width, r.Height)
	}
	if len(r.Data) == 0 {
		return nil, fmt.Errorf("%w: no pixel data", ErrInvalid)
	}
	if r.BitsPerComponent <= 0 || r.ColorSpace == "" {
		return nil, fmt.Errorf("%w: missing color information", ErrInvalid)
	}

	dict := pdf.Dict{
		"Type":             pdf.Name("XObject"),
		"Subtype":          pdf.Name("Image"),
		"Width":            pdf.Integer(r.Width),
		"Height":           pdf.Integer(r.Height),
		"ColorSpace":       r.ColorSpace,
		"BitsPerComponent": pdf.Integer(r.BitsPerComponent),
	}
	if r.Filter != "" {
		dict["Filter"] = r.Filter
	}
	ref := store.Add(&pdf.Stream{Dict: dict, Data: r.Data})

	return &Embedded{
		Ref:    ref,
		Name:   pdf.Name(fmt.Sprintf("X%d", ref.Number)),
		Width:  r.Width,
		Height: r.Height,
	}, nil
}

// Place returns the content stream operators which draw the image so that it
// fills box.
func (im *Embedded) Place(box rect.Rect) content.Stream {
	M := matrix.Scale(box.Dx(), box.Dy()).Mul(matrix.Translate(box.LLx, box.LLy))

	b := content.NewBuilder()
	b.PushGraphicsState()
	b.Transform(M)
	b.DrawXObject(im.Name)
	b.PopGraphicsState()

	// The operands are always valid, so b.Err is nil here.
	stm, _ := b.Stream()
	return stm
}
