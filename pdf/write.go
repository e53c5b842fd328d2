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

package pdf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Trailer contains the information written into the file trailer.
type Trailer struct {
	// Root is the document catalog.  This is required.
	Root Reference

	// Info optionally points to the document information dictionary.
	Info Reference

	// ID optionally gives the two parts of the file identifier.
	ID [2]String
}

func (t *Trailer) dict(size int) Dict {
	dict := Dict{
		"Size": Integer(size),
		"Root": t.Root,
	}
	if !t.Info.IsZero() {
		dict["Info"] = t.Info
	}
	if t.ID[0] != nil || t.ID[1] != nil {
		dict["ID"] = Array{t.ID[0], t.ID[1]}
	}
	return dict
}

// Write serializes all objects in s to w, as a complete PDF file.
//
// Objects are written in order of their object numbers, followed by a
// cross-reference table and the trailer.  Before anything is written, the
// object graph is checked using [Store.Check]; if this fails, the returned
// error is a [*ReferenceError] and nothing has been written to w.
func Write(w io.Writer, s *Store, trailer *Trailer, ver Version) error {
	if ver < V1_0 || ver >= tooHighVersion {
		return errVersion
	}
	if trailer == nil || trailer.Root.IsZero() {
		return errors.New("missing /Root in trailer")
	}
	roots := []Reference{trailer.Root}
	if !trailer.Info.IsZero() {
		roots = append(roots, trailer.Info)
	}
	err := s.Check(roots...)
	if err != nil {
		return err
	}

	buf := bufio.NewWriter(w)
	out := &posWriter{w: buf}

	_, err = fmt.Fprintf(out, "%%PDF-%s\n%%\x80\x80\x80\x80\n", ver)
	if err != nil {
		return err
	}

	offsets := make([]int64, len(s.objects))
	for i, obj := range s.objects {
		offsets[i] = out.pos
		_, err = fmt.Fprintf(out, "%d 0 obj\n", i+1)
		if err != nil {
			return err
		}
		err = obj.PDF(out)
		if err != nil {
			return fmt.Errorf("object %d: %w", i+1, err)
		}
		_, err = io.WriteString(out, "\nendobj\n")
		if err != nil {
			return err
		}
	}

	xRefPos := out.pos
	err = writeXRefTable(out, offsets)
	if err != nil {
		return err
	}

	_, err = io.WriteString(out, "trailer\n")
	if err != nil {
		return err
	}
	err = trailer.dict(len(offsets) + 1).PDF(out)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "\nstartxref\n%d\n%%%%EOF\n", xRefPos)
	if err != nil {
		return err
	}

	return buf.Flush()
}

// writeXRefTable writes a single cross-reference subsection covering object
// numbers 0 to len(offsets).  Object 0 is the head of the free list.
// Every entry is exactly 20 bytes long.
func writeXRefTable(w io.Writer, offsets []int64) error {
	_, err := fmt.Fprintf(w, "xref\n0 %d\n0000000000 65535 f\r\n", len(offsets)+1)
	if err != nil {
		return err
	}
	for _, pos := range offsets {
		_, err = fmt.Fprintf(w, "%010d 00000 n\r\n", pos)
		if err != nil {
			return err
		}
	}
	return nil
}

type posWriter struct {
	w   io.Writer
	pos int64
}

func (w *posWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	return n, err
}
