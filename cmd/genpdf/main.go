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

// Genpdf writes a bill with random purchases to a PDF file.
//
// The bill contents are configured using environment variables:
//
//	LOG_LEVEL       "debug" or "info" (default)
//	BILL_SUBJECT    name shown in the title (default "test.pdf")
//	BILL_ITEMS      number of purchases (default 500)
//	BILL_SEED       seed for the random data (default 1)
//	BILL_COMPRESS   compress content streams (default false)
//
// With -repeat N, the bill is generated N times in parallel and the timing
// is logged.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	_ "go.uber.org/automaxprocs"
	"golang.org/x/term"

	"seehuhn.de/go/bill"
	"seehuhn.de/go/bill/internal/fakedata"
)

type config struct {
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`
	Subject  string `env:"BILL_SUBJECT" env-default:"test.pdf"`
	NumItems int    `env:"BILL_ITEMS" env-default:"500"`
	Seed     uint64 `env:"BILL_SEED" env-default:"1"`
	Compress bool   `env:"BILL_COMPRESS" env-default:"false"`
}

// InitLogger installs a text logger on stderr as the default logger, since
// stdout may carry the PDF.
func InitLogger(logLevel string) {
	level := slog.LevelInfo
	if logLevel == "debug" {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func main() {
	out := flag.String("o", "bill.pdf", "output file name, or \"-\" for stdout")
	repeat := flag.Int("repeat", 1, "number of bills to generate in parallel")
	flag.Parse()

	cfg := &config{}
	err := cleanenv.ReadEnv(cfg)
	InitLogger(cfg.LogLevel)
	if err != nil {
		slog.Error("cannot read configuration", "reason", err)
		os.Exit(1)
	}

	err = run(cfg, *out, *repeat)
	if err != nil {
		slog.Error("failed", "reason", err)
		os.Exit(1)
	}
}

func run(cfg *config, out string, repeat int) error {
	if repeat < 1 {
		return fmt.Errorf("invalid repeat count %d", repeat)
	}
	if out == "-" && term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("refusing to write binary data to a terminal")
	}

	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	in := &bill.Input{
		Subject: cfg.Subject,
		Items:   fakedata.Purchases(rng, cfg.NumItems),
	}
	slog.Debug("generated purchases", "items", len(in.Items), "seed", cfg.Seed)

	results := make([][]byte, repeat)
	errs := make([]error, repeat)
	start := time.Now()
	var wg sync.WaitGroup
	for i := range repeat {
		wg.Add(1)
		go func() {
			defer wg.Done()
			t0 := time.Now()
			opt := &bill.Options{
				Images:   fakedata.NewNoise(cfg.Seed + uint64(i)).Image,
				Compress: cfg.Compress,
			}
			results[i], errs[i] = bill.Build(in, opt)
			slog.Debug("bill generated", "run", i, "bytes", len(results[i]), "duration", time.Since(t0))
		}()
	}
	wg.Wait()
	elapsed := time.Since(start)

	err := errors.Join(errs...)
	if err != nil {
		return err
	}
	slog.Info("GENPDF executed",
		"runs", repeat,
		"bytes", len(results[0]),
		"duration", elapsed,
		"perRun", elapsed/time.Duration(repeat))

	if out == "-" {
		_, err = os.Stdout.Write(results[0])
		return err
	}
	return os.WriteFile(out, results[0], 0o644)
}
