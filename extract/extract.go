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

package extract

import (
	"fmt"

	"seehuhn.de/go/bill/content"
	"seehuhn.de/go/bill/pages"
	"seehuhn.de/go/bill/pdf"
)

// Page describes what is shown on a page.
type Page struct {
	Ref    pdf.Reference
	Lines  []content.TextLine
	Images []*Image
}

// Image is an image XObject drawn on a page.
type Image struct {
	Name          pdf.Name
	Ref           pdf.Reference
	Width, Height int
	Filter        pdf.Name
	Size          int // length of the encoded data
}

// Pages reads all pages of a bill.
//
// An error is returned if a content stream cannot be parsed, or if it draws
// an XObject which is missing from the page resources.
func Pages(r pdf.Getter, catalog pdf.Reference) ([]*Page, error) {
	refs, err := FindPages(r, catalog)
	if err != nil {
		return nil, err
	}

	res := make([]*Page, len(refs))
	for i, ref := range refs {
		page, err := readPage(r, ref)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i+1, err)
		}
		res[i] = page
	}
	return res, nil
}

func readPage(r pdf.Getter, ref pdf.Reference) (*Page, error) {
	dict, err := pdf.GetDict(r, ref)
	if err != nil {
		return nil, err
	}
	stmObj, err := pdf.GetStream(r, dict["Contents"])
	if err != nil {
		return nil, err
	}
	if stmObj == nil {
		return &Page{Ref: ref}, nil
	}
	data, err := pdf.DecodeStream(r, stmObj)
	if err != nil {
		return nil, err
	}
	stm, err := content.Parse(data)
	if err != nil {
		return nil, err
	}
	drawn := stm.Interpret()

	resources, err := pdf.GetDict(r, dict["Resources"])
	if err != nil {
		return nil, err
	}
	xobjects, err := pdf.GetDict(r, resources["XObject"])
	if err != nil {
		return nil, err
	}

	page := &Page{
		Ref:   ref,
		Lines: drawn.Lines,
	}
	for _, placement := range drawn.Images {
		imRef, ok := xobjects[placement.Name].(pdf.Reference)
		if !ok {
			return nil, &pdf.MalformedFileError{
				Err: fmt.Errorf("XObject %q not in page resources", placement.Name),
			}
		}
		im, err := readImage(r, imRef)
		if err != nil {
			return nil, err
		}
		im.Name = placement.Name
		page.Images = append(page.Images, im)
	}
	return page, nil
}

func readImage(r pdf.Getter, ref pdf.Reference) (*Image, error) {
	stm, err := pdf.GetStream(r, ref)
	if err != nil {
		return nil, err
	}
	if stm == nil {
		return nil, &pdf.MalformedFileError{
			Err: fmt.Errorf("missing image %s", ref),
		}
	}
	subtype, err := pdf.GetName(r, stm.Dict["Subtype"])
	if err != nil {
		return nil, err
	}
	if subtype != "Image" {
		return nil, &pdf.MalformedFileError{
			Err: fmt.Errorf("XObject %s has subtype %q", ref, subtype),
		}
	}
	width, err := pdf.GetInt(r, stm.Dict["Width"])
	if err != nil {
		return nil, err
	}
	height, err := pdf.GetInt(r, stm.Dict["Height"])
	if err != nil {
		return nil, err
	}
	filter, err := pdf.GetName(r, stm.Dict["Filter"])
	if err != nil {
		return nil, err
	}
	return &Image{
		Ref:    ref,
		Width:  int(width),
		Height: int(height),
		Filter: filter,
		Size:   len(stm.Data),
	}, nil
}

// Items recovers the bill items from the text lines of the pages.  Lines
// which do not have the form produced by [pages.ItemLine] are skipped.
func Items(pp []*Page, gap int) []pages.Item {
	var res []pages.Item
	for _, page := range pp {
		for _, line := range page.Lines {
			item, err := pages.ParseItemLine(line.Text, gap)
			if err != nil {
				continue
			}
			res = append(res, item)
		}
	}
	return res
}
