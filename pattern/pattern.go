// seehuhn.de/go/pdf-fixture - generate sample PDF files for testing
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

// Package pattern generates small raster images from closed-form formulas.
//
// The images are fully deterministic: the same width, height and kind
// always give byte-identical pixel data.  This makes them suitable as
// reference images when testing image extraction from PDF files.
package pattern

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"image"
	"math"
)

// Kind selects one of the available pattern formulas.
type Kind string

// These are the supported pattern kinds.
const (
	// Gradient is a linear color gradient: red increases from left to
	// right, green from top to bottom and blue decreases from left to
	// right.
	Gradient Kind = "gradient"

	// Checker is a checkerboard with eight cells along the longer side.
	Checker Kind = "checker"

	// Circles consists of concentric rings around the image center,
	// cycling through three colors.
	Circles Kind = "circles"
)

// All lists the supported pattern kinds.
var All = []Kind{Gradient, Checker, Circles}

func (k Kind) String() string {
	return string(k)
}

// ParseKind converts a pattern name into a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range All {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownKind, s)
}

// Limits for the image dimensions, in pixels.
const (
	MinSize = 8
	MaxSize = 16384
)

// ErrUnknownKind is returned when an unsupported pattern kind is requested.
var ErrUnknownKind = errors.New("unknown pattern")

// SizeError is returned when the requested image dimensions are outside
// the range [MinSize, MaxSize].
type SizeError struct {
	Width, Height int
}

func (err *SizeError) Error() string {
	return fmt.Sprintf("invalid pattern size %dx%d (sizes must be between %d and %d)",
		err.Width, err.Height, MinSize, MaxSize)
}

// Check verifies that an image of the given size and kind can be
// generated, without allocating the image.
func Check(width, height int, kind Kind) error {
	if width < MinSize || height < MinSize || width > MaxSize || height > MaxSize {
		return &SizeError{Width: width, Height: height}
	}
	switch kind {
	case Gradient, Checker, Circles:
		return nil
	default:
		return fmt.Errorf("%w %q", ErrUnknownKind, string(kind))
	}
}

// New generates an image of the given size, using the formula for the given
// kind.  All pixels of the resulting image are opaque.
func New(width, height int, kind Kind) (*image.RGBA, error) {
	err := Check(width, height, kind)
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	var pixel func(x, y int) rgb
	switch kind {
	case Gradient:
		pixel = gradient(width, height)
	case Checker:
		pixel = checker(width, height)
	case Circles:
		pixel = circles(width, height)
	}

	for y := range height {
		row := img.Pix[y*img.Stride:]
		for x := range width {
			c := pixel(x, y)
			row[4*x+0] = c.R
			row[4*x+1] = c.G
			row[4*x+2] = c.B
			row[4*x+3] = 255
		}
	}
	return img, nil
}

// Fingerprint returns the hex-encoded SHA-256 hash of the RGB values of
// all pixels, in row-major order.  Images with identical pixel colors have
// identical fingerprints, independent of their memory layout.
func Fingerprint(img image.Image) string {
	h := sha256.New()
	bounds := img.Bounds()
	row := make([]byte, 0, 3*bounds.Dx())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row = row[:0]
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			row = append(row, byte(r>>8), byte(g>>8), byte(b>>8))
		}
		h.Write(row)
	}
	return hex.EncodeToString(h.Sum(nil))
}

type rgb struct {
	R, G, B uint8
}

// The fixed colors used by the patterns.
var (
	checkerEven = rgb{200, 50, 50}
	checkerOdd  = rgb{50, 50, 200}

	ringColors = [3]rgb{
		{255, 100, 100},
		{100, 255, 100},
		{100, 100, 255},
	}
)

func gradient(width, height int) func(x, y int) rgb {
	return func(x, y int) rgb {
		return rgb{
			R: uint8(255 * x / width),
			G: uint8(255 * y / height),
			B: uint8(255 * (width - x) / width),
		}
	}
}

// CellSize returns the edge length of the checkerboard cells for an image
// of the given size.
func CellSize(width, height int) int {
	return max(max(width, height)/8, 1)
}

func checker(width, height int) func(x, y int) rgb {
	cell := CellSize(width, height)
	return func(x, y int) rgb {
		if (x/cell+y/cell)%2 == 0 {
			return checkerEven
		}
		return checkerOdd
	}
}

// Ring returns the index of the ring containing pixel (x, y) in a circles
// pattern of the given size, before reduction modulo 3.
func Ring(width, height, x, y int) int {
	cx, cy := width/2, height/2
	ringWidth := float64(min(width, height)/2) / 5
	dx, dy := x-cx, y-cy
	dist := math.Sqrt(float64(dx*dx + dy*dy))
	return int(dist / ringWidth)
}

func circles(width, height int) func(x, y int) rgb {
	return func(x, y int) rgb {
		return ringColors[Ring(width, height, x, y)%3]
	}
}
