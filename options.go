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
	stdimage "image"
	"image/color"

	"seehuhn.de/go/bill/image"
	"seehuhn.de/go/bill/pages"
	"seehuhn.de/go/bill/pdf"
)

// Options control the generation of a bill.
// A nil *Options is equivalent to the zero value, and zero fields are
// replaced by their defaults.
type Options struct {
	// Layout gives the page geometry.  The default is
	// [pages.DefaultLayout].
	Layout *pages.Layout

	// Images generates the JPEG data for the image on every page.
	// The default is a plain white image.
	Images image.Source

	// BaseFont is the name of the standard font used for all text.
	// The default is Courier.
	BaseFont pdf.Name

	// Compress enables FlateDecode compression of the content streams.
	Compress bool

	// Version is the PDF version written into the file header.
	// The zero value selects PDF 1.5.
	Version pdf.Version

	// Producer is recorded in the document information dictionary.
	Producer string
}

const defaultProducer = "seehuhn.de/go/bill"

// fontName is the resource name of the font on every page.
const fontName pdf.Name = "F1"

func (opt *Options) withDefaults() *Options {
	res := &Options{}
	if opt != nil {
		*res = *opt
	}
	if res.Layout == nil {
		res.Layout = pages.DefaultLayout()
	}
	if res.Images == nil {
		res.Images = whiteImage
	}
	if res.BaseFont == "" {
		res.BaseFont = "Courier"
	}
	if res.Version == 0 {
		res.Version = pdf.V1_5
	}
	if res.Producer == "" {
		res.Producer = defaultProducer
	}
	return res
}

func whiteImage(width, height int) ([]byte, error) {
	img := &croppedImage{
		Uniform: stdimage.NewUniform(color.White),
		bounds:  stdimage.Rect(0, 0, width, height),
	}
	r, err := image.EncodeJPEG(img, nil)
	if err != nil {
		return nil, err
	}
	return r.Data, nil
}

type croppedImage struct {
	*stdimage.Uniform
	bounds stdimage.Rectangle
}

func (im *croppedImage) Bounds() stdimage.Rectangle {
	return im.bounds
}
