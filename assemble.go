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
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"hash"
	"io"
	"math"

	"github.com/google/uuid"

	"seehuhn.de/go/bill/content"
	"seehuhn.de/go/bill/image"
	"seehuhn.de/go/bill/pages"
	"seehuhn.de/go/bill/pdf"
)

// Step is the construction stage of an [Assembler].
type Step int

// The stages of an [Assembler], in order.
const (
	Empty Step = iota
	PagesBuilding
	TreeSealed
	CatalogLinked
	Serialized
)

func (s Step) String() string {
	switch s {
	case Empty:
		return "Empty"
	case PagesBuilding:
		return "PagesBuilding"
	case TreeSealed:
		return "TreeSealed"
	case CatalogLinked:
		return "CatalogLinked"
	case Serialized:
		return "Serialized"
	default:
		return fmt.Sprintf("bill.Step(%d)", int(s))
	}
}

// idNamespace is used to derive the file identifiers.
var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://seehuhn.de/go/bill"))

// Assembler builds the object graph for one bill.
//
// The methods must be called in order: [Assembler.AddPage] once for every
// page, then [Assembler.SealTree], [Assembler.LinkCatalog] and finally
// [Assembler.Serialize].  Calls out of order return an [*Error] of kind
// [KindState].  After an error from AddPage, the Assembler cannot be used any
// more.
type Assembler struct {
	opt   *Options
	step  Step
	err   error
	store *pdf.Store
	pager *pages.Paginator

	resources pdf.Reference
	trailer   pdf.Trailer

	// digest accumulates everything shown on the pages, for the file
	// identifier.
	digest hash.Hash
}

// NewAssembler starts a new bill for the given subject.
//
// The page tree node is reserved first, so that pages can refer to it before
// it is written.  The font and the shared resource dictionaries are added
// next.
func NewAssembler(subject string, opt *Options) (*Assembler, error) {
	if subject == "" {
		return nil, &Error{Kind: KindInput, Err: errors.New("empty subject")}
	}
	opt = opt.withDefaults()
	if err := opt.Layout.Check(); err != nil {
		return nil, &Error{Kind: KindInput, Err: err}
	}
	if _, err := content.EncodeText(pages.Title(subject)); err != nil {
		return nil, &Error{Kind: KindEncoding, Err: fmt.Errorf("subject %q: %w", subject, err)}
	}

	a := &Assembler{
		opt:    opt,
		store:  pdf.NewStore(),
		digest: sha256.New(),
	}
	tree := a.store.NewID()
	font := a.store.Add(pdf.Dict{
		"Type":     pdf.Name("Font"),
		"Subtype":  pdf.Name("Type1"),
		"BaseFont": opt.BaseFont,
		"Encoding": pdf.Name("WinAnsiEncoding"),
	})
	fontMap := a.store.Add(pdf.Dict{fontName: font})
	a.resources = a.store.Add(pdf.Dict{"Font": fontMap})

	a.pager = &pages.Paginator{
		Store:    a.store,
		Parent:   tree,
		Font:     fontName,
		FontMap:  fontMap,
		Layout:   opt.Layout,
		Images:   a.recordImage,
		Subject:  subject,
		Compress: opt.Compress,
	}

	io.WriteString(a.digest, subject)
	return a, nil
}

// recordImage calls the image source and adds the result to the digest.
func (a *Assembler) recordImage(width, height int) ([]byte, error) {
	data, err := a.opt.Images(width, height)
	if err != nil {
		return nil, err
	}
	a.digest.Write(data)
	return data, nil
}

// State returns the current construction stage.
func (a *Assembler) State() Step {
	return a.step
}

// NumPages returns the number of pages added so far.
func (a *Assembler) NumPages() int {
	return a.pager.NumPages()
}

func (a *Assembler) expect(op string, allowed ...Step) error {
	if a.err != nil {
		return a.err
	}
	for _, s := range allowed {
		if a.step == s {
			return nil
		}
	}
	return &Error{Kind: KindState, Err: &StateError{Op: op, State: a.step}}
}

// AddPage adds a page showing the given items, and returns the reference of
// the page dictionary.  At most Layout.ItemsPerPage items can be shown on a
// page.
func (a *Assembler) AddPage(items []Item) (pdf.Reference, error) {
	if err := a.expect("AddPage", Empty, PagesBuilding); err != nil {
		return pdf.Reference{}, err
	}
	for i, item := range items {
		if err := checkItem(item); err != nil {
			return pdf.Reference{}, &Error{Kind: KindInput, Err: fmt.Errorf("item %d: %w", i, err)}
		}
	}

	ref, err := a.pager.AddPage(items)
	if err != nil {
		kind := KindEncoding
		if errors.Is(err, pages.ErrTooManyItems) || errors.Is(err, image.ErrInvalid) {
			kind = KindInput
		}
		a.err = &Error{Kind: kind, Err: err}
		return pdf.Reference{}, a.err
	}

	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(len(items)))
	a.digest.Write(buf[:])
	for _, item := range items {
		io.WriteString(a.digest, item.Label)
		binary.BigEndian.PutUint64(buf[:], math.Float64bits(item.Price))
		a.digest.Write(buf[:])
	}

	a.step = PagesBuilding
	return ref, nil
}

// SealTree writes the page tree node, listing all pages in the order they
// were added.  At least one page must have been added.
func (a *Assembler) SealTree() error {
	if err := a.expect("SealTree", PagesBuilding); err != nil {
		return err
	}
	err := a.pager.Seal(a.resources)
	if err != nil {
		return &Error{Kind: KindSerialization, Err: err}
	}
	a.step = TreeSealed
	return nil
}

// LinkCatalog adds the document information dictionary and the document
// catalog, and fills in the trailer.
func (a *Assembler) LinkCatalog() error {
	if err := a.expect("LinkCatalog", TreeSealed); err != nil {
		return err
	}

	info := &pdf.Info{
		Title:    pages.Title(a.pager.Subject),
		Subject:  a.pager.Subject,
		Producer: a.opt.Producer,
	}
	a.trailer.Info = a.store.Add(info.AsDict())
	a.trailer.Root = a.store.Add(pdf.Dict{
		"Type":  pdf.Name("Catalog"),
		"Pages": a.pager.Parent,
	})

	id := uuid.NewSHA1(idNamespace, a.digest.Sum(nil))
	a.trailer.ID = [2]pdf.String{pdf.String(id[:]), pdf.String(id[:])}

	a.step = CatalogLinked
	return nil
}

// Serialize writes the PDF file to w.
//
// The object graph is checked before anything is written.  If the check
// fails, w is not touched.
func (a *Assembler) Serialize(w io.Writer) error {
	if err := a.expect("Serialize", CatalogLinked); err != nil {
		return err
	}
	err := pdf.Write(w, a.store, &a.trailer, a.opt.Version)
	if err != nil {
		return &Error{Kind: KindSerialization, Err: err}
	}
	a.step = Serialized
	return nil
}
