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
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/bill/pages"
)

// Item is a single line on a bill.
type Item = pages.Item

// Input contains the data shown on a bill.
type Input struct {
	// Subject is the name of the person the bill is for.
	Subject string

	Items []Item
}

// NewInput combines parallel lists of labels and prices into an Input.
func NewInput(subject string, labels []string, prices []float64) (*Input, error) {
	if len(labels) != len(prices) {
		return nil, &Error{
			Kind: KindInput,
			Err:  fmt.Errorf("%d labels but %d prices", len(labels), len(prices)),
		}
	}
	in := &Input{
		Subject: subject,
		Items:   make([]Item, len(labels)),
	}
	for i, label := range labels {
		in.Items[i] = Item{Label: label, Price: prices[i]}
	}
	if err := in.Check(); err != nil {
		return nil, err
	}
	return in, nil
}

// Check verifies that the input can be used to generate a bill.
func (in *Input) Check() error {
	if in.Subject == "" {
		return &Error{Kind: KindInput, Err: errors.New("empty subject")}
	}
	for i, item := range in.Items {
		err := checkItem(item)
		if err != nil {
			return &Error{Kind: KindInput, Err: fmt.Errorf("item %d: %w", i, err)}
		}
	}
	return nil
}

func checkItem(item Item) error {
	if math.IsInf(item.Price, 0) || math.IsNaN(item.Price) {
		return fmt.Errorf("invalid price %g for %q", item.Price, item.Label)
	}
	return nil
}
