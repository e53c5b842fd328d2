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
	"math/big"
	"strconv"
	"strings"
)

// Item is a single line on a bill.
type Item struct {
	Label string
	Price float64
}

// ErrCapacity is returned by [Chunks] for a page capacity less than one.
var ErrCapacity = errors.New("page capacity must be at least 1")

// Chunks splits items into consecutive groups of at most capacity items, one
// group per page.  The result always contains at least one group, so that
// an empty bill still has a page.
func Chunks(items []Item, capacity int) ([][]Item, error) {
	if capacity < 1 {
		return nil, ErrCapacity
	}
	if len(items) == 0 {
		return [][]Item{nil}, nil
	}

	n := (len(items) + capacity - 1) / capacity
	res := make([][]Item, 0, n)
	for start := 0; start < len(items); start += capacity {
		end := min(start+capacity, len(items))
		res = append(res, items[start:end:end])
	}
	return res, nil
}

// FormatPrice formats x as a dollar amount with two decimal places.
//
// Rounding uses the shortest decimal representation of x and rounds halves
// away from zero, so that 19.995 becomes "$20.00" even though the nearest
// float64 is slightly below 19.995.  Negative amounts are written as "$-1.50".
func FormatPrice(x float64) string {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return "$" + strconv.FormatFloat(x, 'f', -1, 64)
	}

	r, _ := new(big.Rat).SetString(strconv.FormatFloat(x, 'f', -1, 64))
	r.Mul(r, big.NewRat(100, 1))

	num := new(big.Int).Abs(r.Num())
	den := r.Denom()
	cents, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	if rem.Lsh(rem, 1).Cmp(den) >= 0 {
		cents.Add(cents, big.NewInt(1))
	}

	s := cents.String()
	if len(s) < 3 {
		s = strings.Repeat("0", 3-len(s)) + s
	}
	sign := ""
	if r.Sign() < 0 && cents.Sign() != 0 {
		sign = "-"
	}
	return "$" + sign + s[:len(s)-2] + "." + s[len(s)-2:]
}

// ItemLine returns the text shown for one item: the label, gap spaces and
// the formatted price.
func ItemLine(label string, price float64, gap int) string {
	return label + strings.Repeat(" ", gap) + FormatPrice(price)
}

// ErrNotItemLine is returned by [ParseItemLine] for text which was not
// produced by [ItemLine].
var ErrNotItemLine = errors.New("not an item line")

// ParseItemLine recovers label and price from a line produced by
// [ItemLine] with the same gap.  The price is only accurate to two decimal
// places.
func ParseItemLine(line string, gap int) (Item, error) {
	sep := strings.Repeat(" ", gap) + "$"
	idx := strings.LastIndex(line, sep)
	if idx < 0 {
		return Item{}, fmt.Errorf("%w: %q", ErrNotItemLine, line)
	}
	label := line[:idx]
	price, err := strconv.ParseFloat(line[idx+len(sep):], 64)
	if err != nil {
		return Item{}, fmt.Errorf("%w: %q", ErrNotItemLine, line)
	}
	return Item{Label: label, Price: price}, nil
}
