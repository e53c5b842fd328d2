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

// Package fakedata generates random purchases and images for test bills.
package fakedata

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"math/rand/v2"

	"golang.org/x/image/draw"

	bimage "seehuhn.de/go/bill/image"
	"seehuhn.de/go/bill/pages"
)

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Purchases returns n items.  Item i (counting from 1) is labelled
// "<i> item <20 random letters and digits>" and costs i*1.23.
func Purchases(rng *rand.Rand, n int) []pages.Item {
	res := make([]pages.Item, n)
	buf := make([]byte, 20)
	for i := range res {
		for j := range buf {
			buf[j] = alphanumeric[rng.IntN(len(alphanumeric))]
		}
		res[i] = pages.Item{
			Label: fmt.Sprintf("%d item %s", i+1, buf),
			Price: float64(i+1) * 1.23,
		}
	}
	return res
}

// Noise generates JPEG images filled with light random colors.
type Noise struct {
	rng *rand.Rand

	// Grain is the side length of the squares of constant color.
	// Values less than 2 give independent random pixels.
	Grain int

	// Quality is the JPEG quality, from 1 to 100.
	Quality int
}

// NewNoise returns a noise generator using the given seed.
func NewNoise(seed uint64) *Noise {
	return &Noise{
		rng:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		Grain:   1,
		Quality: 80,
	}
}

// Image returns a JPEG image of the given size.  Each color channel is
// chosen uniformly from 200 to 250.  The method has the type
// [bimage.Source].
func (n *Noise) Image(width, height int) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", width, height)
	}

	grain := max(n.Grain, 1)
	tw := (width + grain - 1) / grain
	th := (height + grain - 1) / grain
	tile := image.NewRGBA(image.Rect(0, 0, tw, th))
	for y := 0; y < th; y++ {
		for x := 0; x < tw; x++ {
			tile.SetRGBA(x, y, color.RGBA{
				R: uint8(200 + n.rng.IntN(51)),
				G: uint8(200 + n.rng.IntN(51)),
				B: uint8(200 + n.rng.IntN(51)),
				A: 255,
			})
		}
	}

	var img image.Image = tile
	if grain > 1 {
		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), tile, tile.Bounds(), draw.Src, nil)
		img = dst
	}

	r, err := bimage.EncodeJPEG(img, &jpeg.Options{Quality: n.Quality})
	if err != nil {
		return nil, err
	}
	return r.Data, nil
}
