// Command pdgrid renders the Porter-Duff operator chart: one tile per mode,
// each compositing a translucent disc over a translucent square.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/alphablend"
)

func main() {
	var (
		tile    = flag.Int("tile", 128, "tile size in pixels")
		cols    = flag.Int("cols", 5, "tiles per row")
		modes   = flag.String("modes", "", "comma-separated modes to draw (default all)")
		output  = flag.String("output", "pdgrid.png", "output file")
		workers = flag.Int("workers", 1, "goroutines per tile (0 = GOMAXPROCS)")
		fast    = flag.Bool("fast", true, "use the zero-copy batch path")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		alphablend.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	selected, err := parseModes(*modes)
	if err != nil {
		log.Fatalf("Invalid -modes: %v", err)
	}

	opts := []alphablend.BufferOption{alphablend.WithWorkers(*workers)}
	if *fast {
		opts = append(opts, alphablend.WithFastPath())
	}

	img, err := renderGrid(selected, *tile, *cols, opts)
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	if err := savePNG(*output, img); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Chart of %d modes saved to %s (%dx%d)\n", len(selected), *output, img.Bounds().Dx(), img.Bounds().Dy())
}

func parseModes(list string) ([]alphablend.Mode, error) {
	if list == "" {
		return alphablend.Modes(), nil
	}
	var modes []alphablend.Mode
	for _, name := range strings.Split(list, ",") {
		m, err := alphablend.ParseMode(name)
		if err != nil {
			return nil, err
		}
		modes = append(modes, m)
	}
	return modes, nil
}

// renderGrid composites every mode into its own tile of one image.
func renderGrid(modes []alphablend.Mode, tile, cols int, opts []alphablend.BufferOption) (*image.RGBA, error) {
	if tile <= 0 || cols <= 0 {
		return nil, errors.New("tile and cols must be positive")
	}
	rows := (len(modes) + cols - 1) / cols
	out := image.NewRGBA(image.Rect(0, 0, cols*tile, rows*tile))

	src := disc(tile)
	dst := square(tile)
	result := make([]alphablend.RGBA8, tile*tile)

	for i, m := range modes {
		if err := alphablend.BlendBufferInto(result, src, dst, m, opts...); err != nil {
			return nil, fmt.Errorf("%v: %w", m, err)
		}
		x0, y0 := (i%cols)*tile, (i/cols)*tile
		for y := 0; y < tile; y++ {
			row := out.PixOffset(x0, y0+y)
			copy(out.Pix[row:row+tile*4], alphablend.Pix(result[y*tile:(y+1)*tile]))
		}
	}
	return out, nil
}

// disc is a translucent red circle in the lower right of a tile.
func disc(n int) []alphablend.RGBA8 {
	red := alphablend.Convert[alphablend.U8](alphablend.RGBAF32{R: 1, A: 0.8}.Premultiply())
	buf := make([]alphablend.RGBA8, n*n)
	cx, cy, r := float64(n)*0.6, float64(n)*0.6, float64(n)*0.35
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			dx, dy := float64(x)+0.5-cx, float64(y)+0.5-cy
			if dx*dx+dy*dy <= r*r {
				buf[y*n+x] = red
			}
		}
	}
	return buf
}

// square is a translucent blue square in the upper left of a tile.
func square(n int) []alphablend.RGBA8 {
	blue := alphablend.Convert[alphablend.U8](alphablend.RGBAF32{B: 1, A: 0.8}.Premultiply())
	buf := make([]alphablend.RGBA8, n*n)
	lo, hi := n/8, n*5/8
	for y := lo; y < hi; y++ {
		for x := lo; x < hi; x++ {
			buf[y*n+x] = blue
		}
	}
	return buf
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
