package main

import (
	"bufio"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"strings"

	"github.com/fieldglass/sdf2d"
)

func main() {
	engine := flag.String("engine", "linear", "Distance field engine: linear, brushfire, brute")
	variant := flag.String("variant", "single", "Brushfire queue variant: single, multiqueue")
	threads := flag.Int("threads", 0, "Worker thread count (0 = hardware concurrency)")
	serial := flag.Bool("serial", false, "Disable parallel dispatch")
	boundary := flag.Float64("boundary", 0.71, "Boundary band half-width for visualization")
	out := flag.String("out", "sdf.png", "Output PNG path")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: sdfgen [options] raster.txt")
		flag.PrintDefaults()
		os.Exit(2)
	}

	rasterPath := flag.Arg(0)
	grid, err := readRaster(rasterPath)
	if err != nil {
		log.Fatalf("read raster %s: %v", rasterPath, err)
	}

	cfg := sdf.DefaultConfig()
	cfg.Parallel = !*serial
	cfg.ThreadCount = *threads
	switch strings.ToLower(*engine) {
	case "linear":
		cfg.Engine = sdf.EngineLinear
	case "brushfire":
		cfg.Engine = sdf.EngineBrushfire
	case "brute":
		cfg.Engine = sdf.EngineBrute
	default:
		log.Fatalf("unknown engine %q", *engine)
	}
	switch strings.ToLower(*variant) {
	case "single":
		cfg.BrushfireVariant = sdf.SingleQueue
	case "multiqueue":
		cfg.BrushfireVariant = sdf.MultiQueuePolar
	default:
		log.Fatalf("unknown brushfire variant %q", *variant)
	}

	field, err := sdf.Compute(grid, cfg)
	if err != nil {
		log.Fatalf("compute: %v", err)
	}

	img := sdf.Visualize(field, *boundary)
	if err := writePNG(*out, img); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
}

// readRaster parses an ASCII-art raster: '#' marks an interior cell,
// anything else (typically '.') marks exterior. All lines must share the
// first line's width.
func readRaster(path string) (*sdf.BooleanGrid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rows []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty raster")
	}

	w := len(rows[0])
	grid := sdf.NewBooleanGrid(w, len(rows))
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("line %d: width %d, want %d", y+1, len(row), w)
		}
		for x, r := range row {
			grid.Set(x, y, r == '#')
		}
	}
	return grid, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
