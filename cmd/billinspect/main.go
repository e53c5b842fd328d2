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

// Billinspect prints the contents of a generated bill.
//
// Usage:
//
//	billinspect file.pdf [pages|items|catalog|info|<number> [<generation>]]
//
// The default is "pages", which lists the text lines and images of every
// page.  A number prints the indirect object with this number.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	_ "go.uber.org/automaxprocs"

	"seehuhn.de/go/bill/extract"
	"seehuhn.de/go/bill/pages"
	"seehuhn.de/go/bill/pdf"
)

func main() {
	gap := flag.Int("gap", pages.DefaultLayout().PriceGap, "number of spaces between label and price")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] file.pdf [pages|items|catalog|info|number [generation]]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	err := run(args, *gap)
	if err != nil {
		slog.Error("failed", "file", args[0], "reason", err)
		os.Exit(1)
	}
}

func run(args []string, gap int) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	r, err := pdf.NewReader(data)
	if err != nil {
		return err
	}

	cmd := "pages"
	if len(args) > 1 {
		cmd = args[1]
	}

	switch cmd {
	case "pages":
		pp, err := extract.Pages(r, r.Root())
		if err != nil {
			return err
		}
		fmt.Printf("PDF-%s, %d objects, %d pages\n", r.Version(), r.NumObjects(), len(pp))
		for i, page := range pp {
			fmt.Printf("\npage %d (%s)\n", i+1, page.Ref)
			for _, line := range page.Lines {
				fmt.Printf("  %6.1f %6.1f /%s %g %q\n", line.X, line.Y, line.Font, line.Size, line.Text)
			}
			for _, im := range page.Images {
				fmt.Printf("  image /%s %s: %dx%d %s, %d bytes\n",
					im.Name, im.Ref, im.Width, im.Height, im.Filter, im.Size)
			}
		}
		return nil

	case "items":
		pp, err := extract.Pages(r, r.Root())
		if err != nil {
			return err
		}
		total := 0.0
		for _, item := range extract.Items(pp, gap) {
			fmt.Printf("%-40s %12s\n", item.Label, pages.FormatPrice(item.Price))
			total += item.Price
		}
		fmt.Printf("%-40s %12s\n", "total", pages.FormatPrice(total))
		return nil

	case "catalog":
		return printObject(r, r.Root())

	case "info":
		info, err := pdf.ExtractInfo(r, r.Trailer()["Info"])
		if err != nil {
			return err
		}
		if info == nil {
			fmt.Println("no document information dictionary")
			return nil
		}
		fmt.Printf("Title:    %s\nSubject:  %s\nProducer: %s\n", info.Title, info.Subject, info.Producer)
		return nil
	}

	number, err := strconv.ParseUint(cmd, 10, 32)
	if err != nil {
		return fmt.Errorf("unknown command %q", cmd)
	}
	var generation uint64
	if len(args) > 2 {
		generation, err = strconv.ParseUint(args[2], 10, 16)
		if err != nil {
			return err
		}
	}
	return printObject(r, pdf.Reference{
		Number:     uint32(number),
		Generation: uint16(generation),
	})
}

func printObject(r *pdf.Reader, ref pdf.Reference) error {
	obj, err := r.Get(ref)
	if err != nil {
		return err
	}
	if stm, isStream := obj.(*pdf.Stream); isStream {
		fmt.Println(pdf.Format(stm.Dict))
		data, err := pdf.DecodeStream(r, stm)
		if err != nil {
			fmt.Printf("%d bytes of encoded data\n", len(stm.Data))
			return nil
		}
		os.Stdout.Write(data)
		return nil
	}
	fmt.Println(pdf.Format(obj))
	return nil
}
