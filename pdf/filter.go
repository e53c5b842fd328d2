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
	"bytes"
	"compress/zlib"
	"errors"
	"fmt"
	"io"
)

// Filter names used in this package.
const (
	FlateDecode Name = "FlateDecode"
	DCTDecode   Name = "DCTDecode"
)

// ErrUnsupportedFilter is returned by [DecodeStream] for filters other than
// FlateDecode.
var ErrUnsupportedFilter = errors.New("unsupported filter")

// FlateEncode compresses data using the zlib format, as required for the
// FlateDecode filter.
func FlateEncode(data []byte) ([]byte, error) {
	buf := &bytes.Buffer{}
	zw, err := zlib.NewWriterLevel(buf, zlib.BestCompression)
	if err != nil {
		return nil, err
	}
	_, err = zw.Write(data)
	if err != nil {
		return nil, err
	}
	err = zw.Close()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeStream returns the decoded data of the stream x.
// Only FlateDecode (without predictors) is supported.  Image filters like
// DCTDecode are reported as [ErrUnsupportedFilter], since their output is
// not a byte stream.
func DecodeStream(r Getter, x *Stream) ([]byte, error) {
	filter, err := Resolve(r, x.Dict["Filter"])
	if err != nil {
		return nil, err
	}

	var names []Name
	switch f := filter.(type) {
	case nil:
		// pass
	case Name:
		names = append(names, f)
	case Array:
		for _, elem := range f {
			name, err := GetName(r, elem)
			if err != nil {
				return nil, err
			}
			names = append(names, name)
		}
	default:
		return nil, fmt.Errorf("invalid /Filter %s", Format(filter))
	}

	data := x.Data
	for _, name := range names {
		if name != FlateDecode {
			return nil, fmt.Errorf("%w %q", ErrUnsupportedFilter, name)
		}
		zr, err := zlib.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		data, err = io.ReadAll(zr)
		if err != nil {
			return nil, err
		}
	}
	return data, nil
}
