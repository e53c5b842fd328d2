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
	"strings"

	"seehuhn.de/go/geom/rect"
)

// Layout describes the geometry of a bill page.  All lengths are in PDF
// units (1/72 inch), with the origin in the bottom-left corner of the page.
type Layout struct {
	// ItemsPerPage is the maximum number of items on a page.
	ItemsPerPage int

	PageWidth, PageHeight float64

	// TextX is the left margin for all text.
	TextX float64

	TitleY, RuleY, HeadingY float64
	TitleSize, BodySize     float64

	// LineHeight is the vertical distance between item lines.  The first
	// item is placed one line below the heading.
	LineHeight float64

	// RuleLength is the number of dashes in the rule below the title.
	RuleLength int

	// ImageWidth and ImageHeight give the size of the image in pixels.
	// The image is drawn at 1/ImageScale of this size, with the bottom-left
	// corner at (ImageX, ImageY).
	ImageWidth, ImageHeight int
	ImageScale              float64
	ImageX, ImageY          float64

	// PriceGap is the number of spaces between label and price.
	PriceGap int
}

// DefaultLayout returns the layout used when no layout is given:
// 50 items on an A4 page.
func DefaultLayout() *Layout {
	return &Layout{
		ItemsPerPage: 50,
		PageWidth:    595,
		PageHeight:   842,
		TextX:        50,
		TitleY:       800,
		RuleY:        720,
		HeadingY:     700,
		TitleSize:    24,
		BodySize:     12,
		LineHeight:   12,
		RuleLength:   67,
		ImageWidth:   814,
		ImageHeight:  613,
		ImageScale:   3,
		ImageX:       100,
		ImageY:       210,
		PriceGap:     34,
	}
}

// ErrLayout is wrapped by the errors returned from [Layout.Check].
var ErrLayout = errors.New("invalid layout")

// Check verifies that the layout can be used to generate pages.
func (l *Layout) Check() error {
	if l.ItemsPerPage < 1 {
		return fmt.Errorf("%w: %d items per page", ErrLayout, l.ItemsPerPage)
	}
	positive := []struct {
		name string
		val  float64
	}{
		{"page width", l.PageWidth},
		{"page height", l.PageHeight},
		{"title size", l.TitleSize},
		{"body size", l.BodySize},
		{"line height", l.LineHeight},
		{"image scale", l.ImageScale},
	}
	for _, p := range positive {
		if !(p.val > 0) || p.val > 1e9 {
			return fmt.Errorf("%w: %s %g", ErrLayout, p.name, p.val)
		}
	}
	if l.ImageWidth < 1 || l.ImageHeight < 1 {
		return fmt.Errorf("%w: image size %dx%d", ErrLayout, l.ImageWidth, l.ImageHeight)
	}
	if l.RuleLength < 0 || l.PriceGap < 0 {
		return fmt.Errorf("%w: negative rule length or price gap", ErrLayout)
	}
	return nil
}

// MediaBox returns the page boundaries.
func (l *Layout) MediaBox() rect.Rect {
	return rect.Rect{URx: l.PageWidth, URy: l.PageHeight}
}

// ImageBox returns the area covered by the image.
func (l *Layout) ImageBox() rect.Rect {
	return rect.Rect{
		LLx: l.ImageX,
		LLy: l.ImageY,
		URx: l.ImageX + float64(l.ImageWidth)/l.ImageScale,
		URy: l.ImageY + float64(l.ImageHeight)/l.ImageScale,
	}
}

// LineY returns the baseline of the i-th item on a page, counting from 0.
func (l *Layout) LineY(i int) float64 {
	return l.HeadingY - float64(i+1)*l.LineHeight
}

// Title returns the first line of every page.
func Title(subject string) string {
	return "Fake Bill for: " + subject
}

// Heading is shown above the list of items.
const Heading = "Purchases:"

func (l *Layout) rule() string {
	return strings.Repeat("-", l.RuleLength)
}
