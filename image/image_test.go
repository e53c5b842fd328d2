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
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/bill/content"
	"seehuhn.de/go/bill/pdf"
)

func TestEmbed(t *testing.T) {
	store := pdf.NewStore()
	store.NewID() // occupy object 1

	im, err := Embed(store, JPEG(814, 613, []byte{0xFF, 0xD8, 0xFF, 0xD9}))
	if err != nil {
		t.Fatal(err)
	}
	if im.Ref.Number != 2 || im.Name != "X2" {
		t.Errorf("unexpected reference %s / name %s", im.Ref, im.Name)
	}

	obj, err := store.Get(im.Ref)
	if err != nil {
		t.Fatal(err)
	}
	stm, ok := obj.(*pdf.Stream)
	if !ok {
		t.Fatalf("expected stream, got %T", obj)
	}
	wantDict := pdf.Dict{
		"Type":             pdf.Name("XObject"),
		"Subtype":          pdf.Name("Image"),
		"Width":            pdf.Integer(814),
		"Height":           pdf.Integer(613),
		"ColorSpace":       pdf.Name("DeviceRGB"),
		"BitsPerComponent": pdf.Integer(8),
		"Filter":           pdf.Name("DCTDecode"),
	}
	if d := cmp.Diff(wantDict, stm.Dict); d != "" {
		t.Errorf("image dict mismatch (-want +got):\n%s", d)
	}
}

func TestEmbedInvalid(t *testing.T) {
	cases := []*Raster{
		JPEG(0, 10, []byte{1}),
		JPEG(10, -1, []byte{1}),
		JPEG(10, 10, nil),
		{Width: 1, Height: 1, Data: []byte{1}},
	}
	for i, r := range cases {
		store := pdf.NewStore()
		_, err := Embed(store, r)
		if !errors.Is(err, ErrInvalid) {
			t.Errorf("%d: expected ErrInvalid, got %v", i, err)
		}
		if store.Len() != 0 {
			t.Errorf("%d: store modified on error", i)
		}
	}
}

func TestPlace(t *testing.T) {
	im := &Embedded{Name: "X7"}
	got := im.Place(rect.Rect{LLx: 100, LLy: 210, URx: 300, URy: 310})

	want := content.Stream{
		{Name: content.OpPushGraphicsState},
		{Name: content.OpTransform, Args: []pdf.Object{
			pdf.Integer(200), pdf.Integer(0), pdf.Integer(0),
			pdf.Integer(100), pdf.Integer(100), pdf.Integer(210),
		}},
		{Name: content.OpXObject, Args: []pdf.Object{pdf.Name("X7")}},
		{Name: content.OpPopGraphicsState},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("placement mismatch (-want +got):\n%s", d)
	}

	res := &content.Resources{XObject: pdf.Dict{"X7": pdf.Reference{Number: 7}}}
	if err := got.Validate(res); err != nil {
		t.Error(err)
	}
}

func TestEncodeJPEG(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 20, 42, 36))
	for y := 20; y < 36; y++ {
		for x := 10; x < 42; x++ {
			src.Set(x, y, color.RGBA{R: 220, G: 230, B: 240, A: 255})
		}
	}

	r, err := EncodeJPEG(src, &jpeg.Options{Quality: 80})
	if err != nil {
		t.Fatal(err)
	}
	if r.Width != 32 || r.Height != 16 || r.Filter != pdf.DCTDecode {
		t.Errorf("unexpected raster metadata %dx%d %s", r.Width, r.Height, r.Filter)
	}

	cfg, err := jpeg.DecodeConfig(bytes.NewReader(r.Data))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 32 || cfg.Height != 16 {
		t.Errorf("encoded size %dx%d", cfg.Width, cfg.Height)
	}
}
