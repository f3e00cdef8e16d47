package main

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	xdraw "golang.org/x/image/draw"

	"drawbot/plot"
)

// LoadImage reads a PNG, JPEG or SVG file. SVG input is rasterized at its
// view box size.
func LoadImage(filePath string) (image.Image, error) {
	ext := strings.ToLower(filepath.Ext(filePath))

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	switch ext {
	case ".svg":
		return loadSVG(data)
	case ".png":
		return png.Decode(bytes.NewReader(data))
	case ".jpg", ".jpeg":
		return jpeg.Decode(bytes.NewReader(data))
	}
	return nil, errors.New("unsupported image format: " + ext)
}

func loadSVG(data []byte) (image.Image, error) {
	svgIcon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	viewBoxW := float64(svgIcon.ViewBox.W)
	viewBoxH := float64(svgIcon.ViewBox.H)

	svgIcon.SetTarget(0, 0, viewBoxW, viewBoxH)
	width := int(viewBoxW)
	height := int(viewBoxH)
	if width < 1 || height < 1 {
		return nil, errors.New("svg has an empty view box")
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.White}, image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	scanner.SetClip(img.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)

	svgIcon.Draw(raster, 1.0)
	return img, nil
}

// toGray converts to 8-bit grayscale with the usual luma weights.
// Transparent pixels count as paper.
func toGray(src image.Image) *image.Gray {
	bounds := src.Bounds()
	dst := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := src.At(x, y).RGBA()
			if a < 0x8000 {
				dst.SetGray(x-bounds.Min.X, y-bounds.Min.Y, color.Gray{255})
				continue
			}
			r = r * 0xffff / a
			g = g * 0xffff / a
			b = b * 0xffff / a
			gray := uint8(((299*r + 587*g + 114*b) / 1000) >> 8)
			dst.SetGray(x-bounds.Min.X, y-bounds.Min.Y, color.Gray{gray})
		}
	}

	return dst
}

// rotate90 turns the image a quarter turn counter-clockwise, used to put a
// landscape image onto a portrait page.
func rotate90(src *image.Gray) *image.Gray {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	dst := image.NewGray(image.Rect(0, 0, h, w))
	for y := 0; y < w; y++ {
		for x := 0; x < h; x++ {
			dst.SetGray(x, y, src.GrayAt(w-1-y, x))
		}
	}
	return dst
}

// downscale caps the longest image side at maxDim pixels, preserving
// aspect ratio. maxDim <= 0 disables it.
func downscale(src *image.Gray, maxDim int) *image.Gray {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	longest := w
	if h > longest {
		longest = h
	}
	if maxDim <= 0 || longest <= maxDim {
		return src
	}
	scale := float64(maxDim) / float64(longest)
	dw := int(float64(w) * scale)
	dh := int(float64(h) * scale)
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}
	dst := image.NewGray(image.Rect(0, 0, dw, dh))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// toneField maps grayscale to normalized ink intensity. The inversion
// happens exactly once, here: dark pixels carry more ink, and every
// downstream strategy tests tone >= threshold against that convention.
func toneField(g *image.Gray) (*plot.ToneField, error) {
	w, h := g.Bounds().Dx(), g.Bounds().Dy()
	v := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v[y*w+x] = 1 - float64(g.GrayAt(x, y).Y)/255
		}
	}
	return plot.NewToneField(w, h, v)
}
