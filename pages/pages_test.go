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

package pages

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/bill/content"
	"seehuhn.de/go/bill/pdf"
)

func makeItems(n int) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{Label: fmt.Sprintf("item %d", i), Price: float64(i)}
	}
	return items
}

func TestChunks(t *testing.T) {
	cases := []struct {
		n, capacity int
		sizes       []int
	}{
		{0, 50, []int{0}},
		{1, 50, []int{1}},
		{50, 50, []int{50}},
		{51, 50, []int{50, 1}},
		{120, 50, []int{50, 50, 20}},
		{3, 1, []int{1, 1, 1}},
	}
	for _, c := range cases {
		items := makeItems(c.n)
		chunks, err := Chunks(items, c.capacity)
		if err != nil {
			t.Fatal(err)
		}
		var sizes []int
		var all []Item
		for _, chunk := range chunks {
			sizes = append(sizes, len(chunk))
			all = append(all, chunk...)
		}
		if d := cmp.Diff(c.sizes, sizes); d != "" {
			t.Errorf("n=%d: chunk sizes (-want +got):\n%s", c.n, d)
		}
		if c.n > 0 {
			if d := cmp.Diff(items, all); d != "" {
				t.Errorf("n=%d: items not preserved (-want +got):\n%s", c.n, d)
			}
		}
	}

	if _, err := Chunks(makeItems(3), 0); !errors.Is(err, ErrCapacity) {
		t.Errorf("expected ErrCapacity, got %v", err)
	}
}

func TestChunksIndependent(t *testing.T) {
	chunks, err := Chunks(makeItems(4), 2)
	if err != nil {
		t.Fatal(err)
	}
	chunks[0] = append(chunks[0], Item{Label: "extra"})
	if chunks[1][0].Label != "item 2" {
		t.Error("appending to a chunk modified the next chunk")
	}
}

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		x    float64
		want string
	}{
		{0, "$0.00"},
		{9.99, "$9.99"},
		{19.995, "$20.00"},
		{1.005, "$1.01"},
		{1.004, "$1.00"},
		{0.5, "$0.50"},
		{0.001, "$0.00"},
		{1.23, "$1.23"},
		{61.5, "$61.50"},
		{1234567.891, "$1234567.89"},
		{-2.345, "$-2.35"},
		{-0.001, "$0.00"},
	}
	for _, c := range cases {
		if got := FormatPrice(c.x); got != c.want {
			t.Errorf("FormatPrice(%g) = %q, want %q", c.x, got, c.want)
		}
	}
}

func TestItemLine(t *testing.T) {
	line := ItemLine("Widget", 9.99, 34)
	want := "Widget" + strings.Repeat(" ", 34) + "$9.99"
	if line != want {
		t.Errorf("got %q, want %q", line, want)
	}

	item, err := ParseItemLine(line, 34)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(Item{Label: "Widget", Price: 9.99}, item); d != "" {
		t.Errorf("parsed item mismatch (-want +got):\n%s", d)
	}

	item, err = ParseItemLine(ItemLine("two  words $", 3, 34), 34)
	if err != nil {
		t.Fatal(err)
	}
	if item.Label != "two  words $" || item.Price != 3 {
		t.Errorf("parsed %v", item)
	}

	for _, bad := range []string{"Purchases:", "Widget $9.99", "Widget" + strings.Repeat(" ", 34) + "$x"} {
		if _, err := ParseItemLine(bad, 34); !errors.Is(err, ErrNotItemLine) {
			t.Errorf("%q: expected ErrNotItemLine, got %v", bad, err)
		}
	}
}

func TestLayout(t *testing.T) {
	l := DefaultLayout()
	if err := l.Check(); err != nil {
		t.Fatal(err)
	}
	if y := l.LineY(0); y != 688 {
		t.Errorf("first line at %g", y)
	}
	if y := l.LineY(49); y != 100 {
		t.Errorf("last line at %g", y)
	}
	if d := cmp.Diff(rect.Rect{URx: 595, URy: 842}, l.MediaBox()); d != "" {
		t.Errorf("media box (-want +got):\n%s", d)
	}
	box := l.ImageBox()
	if box.LLx != 100 || box.LLy != 210 ||
		math.Abs(box.Dx()-814.0/3) > 1e-9 || math.Abs(box.Dy()-613.0/3) > 1e-9 {
		t.Errorf("unexpected image box %v", box)
	}

	broken := []func(*Layout){
		func(l *Layout) { l.ItemsPerPage = 0 },
		func(l *Layout) { l.PageWidth = -1 },
		func(l *Layout) { l.LineHeight = 0 },
		func(l *Layout) { l.ImageScale = 0 },
		func(l *Layout) { l.ImageWidth = 0 },
		func(l *Layout) { l.PriceGap = -1 },
	}
	for i, modify := range broken {
		l := DefaultLayout()
		modify(l)
		if err := l.Check(); !errors.Is(err, ErrLayout) {
			t.Errorf("%d: expected ErrLayout, got %v", i, err)
		}
	}
}

func fixedImage(w, h int) ([]byte, error) {
	return []byte{0xFF, 0xD8, 0xFF, 0xD9}, nil
}

func newTestPaginator(compress bool) *Paginator {
	store := pdf.NewStore()
	parent := store.NewID()
	fontRef := store.Add(pdf.Dict{"Type": pdf.Name("Font")})
	fontMap := store.Add(pdf.Dict{"F1": fontRef})
	return &Paginator{
		Store:    store,
		Parent:   parent,
		Font:     "F1",
		FontMap:  fontMap,
		Layout:   DefaultLayout(),
		Images:   fixedImage,
		Subject:  "Alice",
		Compress: compress,
	}
}

func pageContent(t *testing.T, p *Paginator, pageRef pdf.Reference) (pdf.Dict, *content.Interpretation) {
	t.Helper()
	obj, err := p.Store.Get(pageRef)
	if err != nil {
		t.Fatal(err)
	}
	page := obj.(pdf.Dict)
	obj, err = p.Store.Get(page["Contents"].(pdf.Reference))
	if err != nil {
		t.Fatal(err)
	}
	data, err := pdf.DecodeStream(p.Store, obj.(*pdf.Stream))
	if err != nil {
		t.Fatal(err)
	}
	stm, err := content.Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	return page, stm.Interpret()
}

func TestAddPage(t *testing.T) {
	for _, compress := range []bool{false, true} {
		p := newTestPaginator(compress)
		items := []Item{{"Widget", 9.99}, {"Gadget", 19.995}}
		ref, err := p.AddPage(items)
		if err != nil {
			t.Fatal(err)
		}
		if ref.Number != 6 {
			t.Errorf("page has object number %d", ref.Number)
		}

		page, got := pageContent(t, p, ref)
		if page["Parent"] != p.Parent {
			t.Error("wrong parent")
		}

		gap := strings.Repeat(" ", 34)
		wantLines := []content.TextLine{
			{X: 50, Y: 800, Font: "F1", Size: 24, Text: "Fake Bill for: Alice"},
			{X: 50, Y: 720, Font: "F1", Size: 12, Text: strings.Repeat("-", 67)},
			{X: 50, Y: 700, Font: "F1", Size: 12, Text: "Purchases:"},
			{X: 50, Y: 688, Font: "F1", Size: 12, Text: "Widget" + gap + "$9.99"},
			{X: 50, Y: 676, Font: "F1", Size: 12, Text: "Gadget" + gap + "$20.00"},
		}
		if d := cmp.Diff(wantLines, got.Lines); d != "" {
			t.Errorf("compress=%t: lines (-want +got):\n%s", compress, d)
		}

		if len(got.Images) != 1 || got.Images[0].Name != "X4" {
			t.Fatalf("unexpected images %v", got.Images)
		}
		res := page["Resources"].(pdf.Dict)
		xobj := res["XObject"].(pdf.Dict)
		if xobj["X4"] != (pdf.Reference{Number: 4}) {
			t.Errorf("XObject resources %v", xobj)
		}
		if res["Font"] != p.FontMap {
			t.Error("page does not use the shared font map")
		}
	}
}

func TestAddPageErrors(t *testing.T) {
	p := newTestPaginator(false)
	if _, err := p.AddPage(makeItems(51)); !errors.Is(err, ErrTooManyItems) {
		t.Errorf("expected ErrTooManyItems, got %v", err)
	}

	var encErr *content.EncodeError
	_, err := p.AddPage([]Item{{Label: "☃", Price: 1}})
	if !errors.As(err, &encErr) {
		t.Errorf("expected *content.EncodeError, got %v", err)
	}

	errSource := errors.New("no pixels")
	p = newTestPaginator(false)
	p.Images = func(w, h int) ([]byte, error) { return nil, errSource }
	if _, err := p.AddPage(nil); !errors.Is(err, errSource) {
		t.Errorf("expected image source error, got %v", err)
	}
}

func TestSeal(t *testing.T) {
	p := newTestPaginator(false)
	var refs []pdf.Reference
	for _, chunk := range [][]Item{makeItems(3), nil, makeItems(1)} {
		ref, err := p.AddPage(chunk)
		if err != nil {
			t.Fatal(err)
		}
		refs = append(refs, ref)
	}
	if p.NumPages() != 3 {
		t.Errorf("%d pages", p.NumPages())
	}

	if err := p.Seal(pdf.Dict{"Font": p.FontMap}); err != nil {
		t.Fatal(err)
	}
	obj, err := p.Store.Get(p.Parent)
	if err != nil {
		t.Fatal(err)
	}
	node := obj.(pdf.Dict)
	want := pdf.Dict{
		"Type":      pdf.Name("Pages"),
		"Kids":      pdf.Array{refs[0], refs[1], refs[2]},
		"Count":     pdf.Integer(3),
		"Resources": pdf.Dict{"Font": p.FontMap},
		"MediaBox":  pdf.Array{pdf.Integer(0), pdf.Integer(0), pdf.Integer(595), pdf.Integer(842)},
	}
	if d := cmp.Diff(want, node); d != "" {
		t.Errorf("page tree node (-want +got):\n%s", d)
	}
	if err := p.Store.Check(p.Parent); err != nil {
		t.Error(err)
	}

	if err := p.Seal(nil); !errors.Is(err, pdf.ErrAlreadySet) {
		t.Errorf("expected ErrAlreadySet, got %v", err)
	}
}
