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

package fakedata

import (
	"bytes"
	"image/jpeg"
	"math/rand/v2"
	"regexp"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPurchases(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	items := Purchases(rng, 500)
	if len(items) != 500 {
		t.Fatalf("got %d items", len(items))
	}

	label := regexp.MustCompile(`^(\d+) item [A-Za-z0-9]{20}$`)
	for i, item := range items {
		m := label.FindStringSubmatch(item.Label)
		if m == nil {
			t.Fatalf("unexpected label %q", item.Label)
		}
		if want := float64(i+1) * 1.23; item.Price != want {
			t.Errorf("item %d: price %g, want %g", i, item.Price, want)
		}
	}

	again := Purchases(rand.New(rand.NewPCG(1, 2)), 500)
	if d := cmp.Diff(items, again); d != "" {
		t.Errorf("same seed gave different items (-first +second):\n%s", d)
	}
}

func TestNoise(t *testing.T) {
	for _, grain := range []int{1, 8} {
		n := NewNoise(7)
		n.Grain = grain

		data, err := n.Image(81, 61)
		if err != nil {
			t.Fatal(err)
		}
		img, err := jpeg.Decode(bytes.NewReader(data))
		if err != nil {
			t.Fatal(err)
		}
		b := img.Bounds()
		if b.Dx() != 81 || b.Dy() != 61 {
			t.Errorf("grain %d: size %dx%d", grain, b.Dx(), b.Dy())
		}

		// JPEG is lossy, so allow some slack around the 200-250 range.
		r, g, bl, _ := img.At(40, 30).RGBA()
		for _, c := range []uint32{r >> 8, g >> 8, bl >> 8} {
			if c < 180 || c > 255 {
				t.Errorf("grain %d: color component %d out of range", grain, c)
			}
		}

		other, err := NewNoise(7).Image(81, 61)
		if err != nil {
			t.Fatal(err)
		}
		if grain == 1 && !bytes.Equal(data, other) {
			t.Error("same seed gave different images")
		}
	}

	if _, err := NewNoise(1).Image(0, 10); err == nil {
		t.Error("missing error for empty image")
	}
}
