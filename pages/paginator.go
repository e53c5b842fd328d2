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

	"seehuhn.de/go/bill/content"
	"seehuhn.de/go/bill/image"
	"seehuhn.de/go/bill/pdf"
)

// ErrTooManyItems is returned by [Paginator.AddPage] if more items are given
// than fit on a page.
var ErrTooManyItems = errors.New("too many items for one page")

// Paginator adds bill pages to a PDF store.
//
// Every page shows the header for the subject, one image, and the items for
// this page.  Pages are independent of each other.
type Paginator struct {
	Store *pdf.Store

	// Parent is the reference of the page tree node the pages belong to.
	// The node itself is written by [Paginator.Seal].
	Parent pdf.Reference

	// Font is the resource name of the font used for all text, and FontMap
	// refers to the font resource dictionary which defines it.
	Font    pdf.Name
	FontMap pdf.Reference

	Layout  *Layout
	Images  image.Source
	Subject string

	// Compress enables FlateDecode compression for content streams.
	Compress bool

	kids []pdf.Reference
}

// AddPage adds a page showing the given items.  The image, the content
// stream and the page dictionary are added to the store, in this order, and
// the reference of the page dictionary is returned.
func (p *Paginator) AddPage(items []Item) (pdf.Reference, error) {
	l := p.Layout
	if len(items) > l.ItemsPerPage {
		return pdf.Reference{}, fmt.Errorf("%w: %d > %d", ErrTooManyItems, len(items), l.ItemsPerPage)
	}

	data, err := p.Images(l.ImageWidth, l.ImageHeight)
	if err != nil {
		return pdf.Reference{}, fmt.Errorf("image source: %w", err)
	}
	im, err := image.Embed(p.Store, image.JPEG(l.ImageWidth, l.ImageHeight, data))
	if err != nil {
		return pdf.Reference{}, err
	}

	b := content.NewBuilder()
	b.TextLine(p.Font, l.TitleSize, l.TextX, l.TitleY, Title(p.Subject))
	b.TextLine(p.Font, l.BodySize, l.TextX, l.RuleY, l.rule())
	b.TextLine(p.Font, l.BodySize, l.TextX, l.HeadingY, Heading)
	b.Append(im.Place(l.ImageBox())...)
	for i, item := range items {
		line := ItemLine(item.Label, item.Price, l.PriceGap)
		b.TextLine(p.Font, l.BodySize, l.TextX, l.LineY(i), line)
	}
	stm, err := b.Stream()
	if err != nil {
		return pdf.Reference{}, err
	}

	res := &content.Resources{
		Font:    pdf.Dict{p.Font: p.FontMap},
		XObject: pdf.Dict{im.Name: im.Ref},
	}
	err = stm.Validate(res)
	if err != nil {
		return pdf.Reference{}, err
	}
	body, err := stm.Encode()
	if err != nil {
		return pdf.Reference{}, err
	}

	contents := &pdf.Stream{Dict: pdf.Dict{}, Data: body}
	if p.Compress {
		zData, err := pdf.FlateEncode(body)
		if err != nil {
			return pdf.Reference{}, err
		}
		contents = &pdf.Stream{
			Dict: pdf.Dict{"Filter": pdf.FlateDecode},
			Data: zData,
		}
	}
	contentsRef := p.Store.Add(contents)

	pageRef := p.Store.Add(pdf.Dict{
		"Type":     pdf.Name("Page"),
		"Parent":   p.Parent,
		"Contents": contentsRef,
		"Resources": pdf.Dict{
			"Font":    p.FontMap,
			"XObject": res.XObject,
		},
	})
	p.kids = append(p.kids, pageRef)
	return pageRef, nil
}

// NumPages returns the number of pages added so far.
func (p *Paginator) NumPages() int {
	return len(p.kids)
}

// Seal writes the page tree node to the placeholder p.Parent.  The node
// lists all pages added so far, in order.  resources, if set, is stored as
// the inherited resource dictionary of the tree.
func (p *Paginator) Seal(resources pdf.Object) error {
	kids := make(pdf.Array, len(p.kids))
	for i, ref := range p.kids {
		kids[i] = ref
	}
	box := p.Layout.MediaBox()
	node := pdf.Dict{
		"Type":      pdf.Name("Pages"),
		"Kids":      kids,
		"Count":     pdf.Integer(len(p.kids)),
		"Resources": resources,
		"MediaBox": pdf.Array{
			number(box.LLx), number(box.LLy), number(box.URx), number(box.URy),
		},
	}
	return p.Store.Set(p.Parent, node)
}

func number(x float64) pdf.Object {
	if x == float64(int64(x)) {
		return pdf.Integer(x)
	}
	return pdf.Real(x)
}
