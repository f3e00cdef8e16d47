package main

import (
	"flag"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"drawbot/plot"
)

func main() {
	inputFile := flag.String("input", "", "Path to the input image (png, jpg or svg)")
	outputFile := flag.String("output", "output.gcode", "Path to the output G-code file")
	width := flag.Float64("width", 135.0, "Maximum printed width (mm)")
	height := flag.Float64("height", 210.0, "Maximum printed height (mm)")
	feed := flag.Float64("feed", 2000, "Feed rate for drawing moves (mm/min)")
	spacing := flag.Float64("spacing", 0.35, "Fill line spacing (mm)")
	threshold := flag.Float64("threshold", 0.5, "Ink threshold (0-1)")
	penDown := flag.String("pen-down", "M3;S0", "Pen down command, emitted verbatim")
	penUp := flag.String("pen-up", "M5;S180", "Pen up command, emitted verbatim")
	strategy := flag.String("strategy", "outline,scanline", "Comma separated passes: outline, scanline, hatch, blocks")
	blockSize := flag.Int("block-size", 4, "Block size for the blocks strategy (px)")
	maxLines := flag.Int("max-lines", 4, "Maximum hatch lines per block")
	diagonal := flag.Bool("diagonal", false, "Diagonal orientation for the blocks strategy")
	tinyMove := flag.Float64("tiny-move", 0.01, "Skip drawing moves shorter than this (mm)")
	maxDim := flag.Int("max-dim", 0, "Downscale so the longest image side is at most this many pixels (0 disables)")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if *inputFile == "" {
		flag.Usage()
		os.Exit(1)
	}

	strategies, err := parseStrategies(*strategy)
	if err != nil {
		log.Fatal().Err(err).Msg("bad strategy list")
	}

	img, err := LoadImage(*inputFile)
	if err != nil {
		log.Fatal().Err(err).Str("path", *inputFile).Msg("failed to load image")
	}

	gray := toGray(img)
	if gray.Bounds().Dx() > gray.Bounds().Dy() && *width < *height {
		gray = rotate90(gray)
	}
	gray = downscale(gray, *maxDim)

	tf, err := toneField(gray)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build tone field")
	}

	cfg := plot.Config{
		PageWidth:   *width,
		PageHeight:  *height,
		FeedRate:    *feed,
		FillSpacing: *spacing,
		Threshold:   *threshold,
		PenDown:     *penDown,
		PenUp:       *penUp,
		TinyMove:    *tinyMove,
		BlockSize:   *blockSize,
		MaxLines:    *maxLines,
		Diagonal:    *diagonal,
		Strategies:  strategies,
	}

	res, err := plot.Run(tf, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to convert image to G-code")
	}

	if err := os.WriteFile(*outputFile, []byte(res.GCode), 0644); err != nil {
		log.Fatal().Err(err).Str("path", *outputFile).Msg("failed to write output file")
	}

	log.Info().
		Str("output", *outputFile).
		Float64("width_mm", res.PrintedW).
		Float64("height_mm", res.PrintedH).
		Int("segments", res.Segments).
		Msg("G-code written")
}

func parseStrategies(list string) ([]plot.Strategy, error) {
	var out []plot.Strategy
	for _, name := range strings.Split(list, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		s, err := plot.ParseStrategy(name)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
