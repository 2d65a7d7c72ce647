// Command mazegen carves a maze and writes it as an SVG or PNG image.
//
//	mazegen -shape hexagon -width 12 -height 9 -algorithm wilsons -solve -o maze.png
//
// Flag defaults come from MAZEGEN_* environment variables, optionally
// loaded from a .env file in the working directory.
package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvmaze/algorithms"
	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/surface"
)

func main() {
	log := logrus.New()
	env := loadEnv(log)

	shape := flag.String("shape", env.Shape, "cell shape: square, triangle, hexagon or circle")
	width := flag.Int("width", env.Width, "width in cells")
	height := flag.Int("height", env.Height, "height in cells")
	layers := flag.Int("layers", env.Layers, "number of rings for circle grids")
	algorithm := flag.String("algorithm", env.Algorithm, "one of: "+strings.Join(algorithms.Names(), ", "))
	exits := flag.String("exits", env.Exits, "exit placement: vertical, horizontal or hardest")
	seed := flag.Int64("seed", 0, "random seed; 0 seeds from the clock")
	mask := flag.String("mask", "", `cells to remove, as "x,y;x,y"`)
	lineWidth := flag.Float64("line-width", 1, "line width adjustment")
	openColour := flag.String("open-colour", grid.DefaultOpenColour, "cell colour")
	closedColour := flag.String("closed-colour", grid.DefaultClosedColour, "wall colour")
	pathColour := flag.String("path-colour", grid.DefaultPathColour, "solution colour")
	output := flag.String("o", env.Output, "output file, .svg or .png")
	size := flag.Int("size", env.Size, "image edge in pixels")
	solve := flag.Bool("solve", false, "draw the solution path")
	flag.Parse()

	if level, err := logrus.ParseLevel(env.LogLevel); err == nil {
		log.SetLevel(level)
	}

	cfg := maze.Config{
		Grid: maze.GridConfig{
			CellShape:   grid.Shape(*shape),
			Width:       *width,
			Height:      *height,
			Layers:      *layers,
			OpenColor:   *openColour,
			ClosedColor: *closedColour,
			PathColor:   *pathColour,
		},
		Algorithm:  *algorithm,
		ExitConfig: grid.ExitConfig(*exits),
		LineWidth:  *lineWidth,
	}
	if *seed != 0 {
		cfg.RandomSeed = seed
	}
	if *mask != "" {
		m, err := parseMask(*mask)
		if err != nil {
			log.WithError(err).Fatal("invalid -mask")
		}
		cfg.Mask = m
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, log, cfg, *output, *size, *solve); err != nil {
		log.WithError(err).Fatal("mazegen failed")
	}
}

// run builds, carves and writes one maze.
func run(ctx context.Context, log logrus.FieldLogger, cfg maze.Config, output string, size int, solve bool) error {
	write, err := attachSurface(&cfg, output, size)
	if err != nil {
		return err
	}

	m, err := maze.Build(cfg, maze.WithLogger(log))
	if err != nil {
		return err
	}
	defer m.Dispose()

	if err := m.Run.ToCompletion(ctx); err != nil {
		return err
	}
	if solve {
		path, err := m.Solve()
		if err != nil {
			return err
		}
		log.WithField("length", len(path)).Info("solved")
	}
	m.Render(nil)

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	start, end := m.Exits()
	log.WithFields(logrus.Fields{
		"output": output,
		"seed":   m.Random().Seed(),
		"steps":  m.Run.Steps(),
		"start":  start.Coords.String(),
		"end":    end.Coords.String(),
	}).Info("maze written")
	return nil
}

// attachSurface picks a surface from the output extension and returns the
// function that encodes it once rendered.
func attachSurface(cfg *maze.Config, output string, size int) (func(io.Writer) error, error) {
	if size <= 0 {
		return nil, fmt.Errorf("mazegen: image size must be positive, got %d", size)
	}
	background := cfg.Grid.OpenColor
	if background == "" {
		background = grid.DefaultOpenColour
	}

	switch ext := strings.ToLower(filepath.Ext(output)); ext {
	case ".svg":
		svg := surface.NewSVG(size, size, background)
		cfg.Surface = svg
		return func(w io.Writer) error {
			_, err := svg.WriteTo(w)
			return err
		}, nil
	case ".png":
		raster := surface.NewRaster(size, size, background)
		cfg.Surface = raster
		return func(w io.Writer) error {
			return png.Encode(w, raster.Image())
		}, nil
	default:
		return nil, fmt.Errorf("mazegen: unsupported output extension %q", ext)
	}
}
