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

package image

import (
	"bytes"
	"image"
	"image/draw"
	"image/jpeg"

	"seehuhn.de/go/bill/pdf"
)

// JPEG returns a Raster for JPEG-encoded RGB data of the given size.
func JPEG(width, height int, data []byte) *Raster {
	return &Raster{
		Width:            width,
		Height:           height,
		BitsPerComponent: 8,
		ColorSpace:       "DeviceRGB",
		Filter:           pdf.DCTDecode,
		Data:             data,
	}
}

// EncodeJPEG converts src to a JPEG Raster, using lossy compression.
func EncodeJPEG(src image.Image, opts *jpeg.Options) (*Raster, error) {
	// convert to NRGBA format
	b := src.Bounds()
	img := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(img, img.Bounds(), src, b.Min, draw.Src)

	buf := &bytes.Buffer{}
	err := jpeg.Encode(buf, img, opts)
	if err != nil {
		return nil, err
	}
	return JPEG(b.Dx(), b.Dy(), buf.Bytes()), nil
}
