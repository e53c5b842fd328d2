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

// Package extract reads back the contents of generated bills.
package extract

import (
	"errors"

	"seehuhn.de/go/bill/pdf"
)

var errInvalidPageTree = errors.New("invalid page tree")

// FindPages returns the references of all pages in the page tree rooted at
// the catalog's /Pages entry, in document order.
func FindPages(r pdf.Getter, catalog pdf.Reference) ([]pdf.Reference, error) {
	cat, err := pdf.GetDict(r, catalog)
	if err != nil {
		return nil, err
	}
	root, ok := cat["Pages"].(pdf.Reference)
	if !ok {
		return nil, &pdf.MalformedFileError{Err: errInvalidPageTree}
	}

	var res []pdf.Reference
	todo := []pdf.Reference{root}
	seen := map[pdf.Reference]bool{
		root: true,
	}
	for len(todo) > 0 {
		k := len(todo) - 1
		ref := todo[k]
		todo = todo[:k]

		node, err := pdf.GetDict(r, ref)
		if err != nil {
			return nil, err
		}
		tp, err := pdf.GetName(r, node["Type"])
		if err != nil {
			return nil, err
		}
		switch tp {
		case "Page":
			res = append(res, ref)
		case "Pages":
			kids, err := pdf.GetArray(r, node["Kids"])
			if err != nil {
				return nil, err
			}
			for i := len(kids) - 1; i >= 0; i-- {
				kidRef, ok := kids[i].(pdf.Reference)
				if !ok || seen[kidRef] {
					return nil, &pdf.MalformedFileError{Err: errInvalidPageTree}
				}
				todo = append(todo, kidRef)
				seen[kidRef] = true
			}
		default:
			return nil, &pdf.MalformedFileError{Err: errInvalidPageTree}
		}
	}

	return res, nil
}
