package main

import (
	"fmt"

	"github.com/consensys/bavard"
	"golang.org/x/sync/errgroup"

	"github.com/consensys/bigint/logger"
)

const copyrightHolder = "Consensys Software Inc."

var bgen = bavard.NewBatchGenerator(copyrightHolder, 2025, "bigint")

// templateData describes one width of the enumerated table. A width with a
// Double gains Concat and MulFull; a width with a Half gains Split.
type templateData struct {
	Name       string
	Bits       int
	Limbs      int
	Bytes      int
	HexDigits  int
	TwiceBits  int
	TwiceLimbs int
	HalfBits   int
	HalfLimbs  int
	Double     string
	Half       string
}

// widths is the enumerated table: bit width, double width (0 if the table
// holds no type twice as wide), half width (0 if none half as wide).
var widths = []struct{ bits, double, half int }{
	{64, 128, 0},
	{128, 256, 64},
	{192, 384, 0},
	{256, 512, 128},
	{320, 0, 0},
	{384, 768, 192},
	{512, 1024, 256},
	{768, 1536, 384},
	{1024, 2048, 512},
	{1536, 3072, 768},
	{2048, 4096, 1024},
	{3072, 0, 1536},
	{4096, 0, 2048},
}

//go:generate go run main.go
func main() {
	log := logger.Logger().With().Str("component", "generator").Logger()

	var g errgroup.Group
	for _, w := range widths {
		w := w
		g.Go(func() error {
			d := templateData{
				Name:       fmt.Sprintf("U%d", w.bits),
				Bits:       w.bits,
				Limbs:      w.bits / 64,
				Bytes:      w.bits / 8,
				HexDigits:  w.bits / 4,
				TwiceBits:  2 * w.bits,
				TwiceLimbs: w.bits / 32,
				HalfBits:   w.bits / 2,
			}
			if w.double != 0 {
				d.Double = fmt.Sprintf("U%d", w.double)
			}
			if w.half != 0 {
				d.Half = fmt.Sprintf("U%d", w.half)
				d.HalfLimbs = w.half / 64
			}
			entry := bavard.Entry{
				File:      fmt.Sprintf("../../u%d.go", w.bits),
				Templates: []string{"uint.go.tmpl"},
			}
			return bgen.Generate(d, "bigint", "./template/", entry)
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("generating width types")
	}
	log.Info().Int("widths", len(widths)).Msg("generated width types")
}
