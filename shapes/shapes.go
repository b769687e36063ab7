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

// Package shapes draws the vector graphics used in the fixture document.
//
// Each drawer places its graphics inside a rectangle, given in PDF user
// space units.  All positions and sizes are proportional to the rectangle,
// except for a few offsets which are given in centimetres.
package shapes

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"golang.org/x/image/colornames"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdf/font/standard"

	"seehuhn.de/go/pdf-fixture/canvas"
)

const cm = 72 / 2.54

// Painter is the drawing surface used by the drawers.
// This is implemented by [*canvas.Canvas].
type Painter interface {
	SaveState()
	RestoreState()

	SetFillColor(col color.Color)
	SetStrokeColor(col color.Color)
	SetLineWidth(width float64)
	SetFont(f standard.Font, size float64) error

	Rect(x, y, width, height float64, mode canvas.PaintMode)
	Circle(x, y, radius float64, mode canvas.PaintMode)
	Polygon(points []vec.Vec2, mode canvas.PaintMode)
	Line(x1, y1, x2, y2 float64)

	DrawCentredString(x, y float64, s string)
}

// A Drawer draws a figure into the rectangle r.
type Drawer func(p Painter, r rect.Rect) error

// ErrEmptyRect is returned when a figure is placed in a rectangle
// which cannot hold it.
var ErrEmptyRect = errors.New("empty placement rectangle")

// CheckRect verifies that r can be used with [Logo] and [Shapes].
func CheckRect(r rect.Rect) error {
	for _, v := range []float64{r.LLx, r.LLy, r.URx, r.URy} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite coordinate in %v", ErrEmptyRect, r)
		}
	}
	if r.Dx() <= 0 || r.Dy() <= 0 {
		return fmt.Errorf("%w: size %gx%g", ErrEmptyRect, r.Dx(), r.Dy())
	}
	return nil
}

// CheckChartRect verifies that r can be used with [Chart].
// In addition to the conditions of [CheckRect], the rectangle must leave
// room for the axis offsets.
func CheckChartRect(r rect.Rect) error {
	err := CheckRect(r)
	if err != nil {
		return err
	}
	if r.Dx() <= 2*cm || r.Dy() <= 1*cm {
		return fmt.Errorf("%w: size %gx%g is too small for a chart",
			ErrEmptyRect, r.Dx(), r.Dy())
	}
	return nil
}

// Logo draws a gray panel with three overlapping colored disks and
// a "TEST LOGO" label.
func Logo(p Painter, r rect.Rect) error {
	err := CheckRect(r)
	if err != nil {
		return err
	}

	p.SaveState()
	defer p.RestoreState()

	x, y, w, h := r.LLx, r.LLy, r.Dx(), r.Dy()

	p.SetFillColor(colornames.Gray)
	p.Rect(x, y, w, h, canvas.Fill)

	disks := []struct {
		col color.Color
		pos float64
	}{
		{colornames.Red, 0.3},
		{colornames.Green, 0.5},
		{colornames.Blue, 0.7},
	}
	for _, d := range disks {
		p.SetFillColor(d.col)
		p.Circle(x+w*d.pos, y+h*0.5, h*0.3, canvas.Fill)
	}

	p.SetFillColor(colornames.White)
	err = p.SetFont(standard.HelveticaBold, 10)
	if err != nil {
		return err
	}
	p.DrawCentredString(x+w/2, y+0.3*cm, "TEST LOGO")

	return nil
}

// Shapes draws a rectangle, a triangle, a disk, a second rectangle and
// a diamond.  All shapes are filled and outlined.
func Shapes(p Painter, r rect.Rect) error {
	err := CheckRect(r)
	if err != nil {
		return err
	}

	p.SaveState()
	defer p.RestoreState()

	x, y, w, h := r.LLx, r.LLy, r.Dx(), r.Dy()

	p.SetFillColor(colornames.Orange)
	p.Rect(x, y+h*0.6, w*0.3, h*0.35, canvas.FillAndStroke)

	p.SetFillColor(colornames.Purple)
	p.Polygon([]vec.Vec2{
		{X: x + w*0.5, Y: y + h*0.95},
		{X: x + w*0.35, Y: y + h*0.6},
		{X: x + w*0.65, Y: y + h*0.6},
	}, canvas.FillAndStroke)

	p.SetFillColor(colornames.Green)
	p.Circle(x+w*0.85, y+h*0.77, h*0.17, canvas.FillAndStroke)

	p.SetFillColor(colornames.Blue)
	p.Rect(x+w*0.1, y+h*0.1, w*0.25, h*0.35, canvas.FillAndStroke)

	p.SetFillColor(colornames.Red)
	cx, cy := x+w*0.6, y+h*0.27
	size := h * 0.2
	p.Polygon([]vec.Vec2{
		{X: cx, Y: cy + size},
		{X: cx - size, Y: cy},
		{X: cx, Y: cy - size},
		{X: cx + size, Y: cy},
	}, canvas.FillAndStroke)

	return nil
}

// The bars of the sample chart.
var chartBars = []struct {
	col   color.Color
	ratio float64
	label string
}{
	{colornames.Red, 0.7, "A"},
	{colornames.Green, 0.5, "B"},
	{colornames.Blue, 0.9, "C"},
	{colornames.Orange, 0.4, "D"},
	{colornames.Purple, 0.6, "E"},
}

// Chart draws a labelled bar chart with five bars.
func Chart(p Painter, r rect.Rect) error {
	err := CheckChartRect(r)
	if err != nil {
		return err
	}

	p.SaveState()
	defer p.RestoreState()

	x, y, w, h := r.LLx, r.LLy, r.Dx(), r.Dy()

	p.SetStrokeColor(colornames.Black)
	p.SetLineWidth(1)

	// axes
	p.Line(x+1*cm, y, x+1*cm, y+h-0.5*cm)
	p.Line(x+1*cm, y, x+w-0.5*cm, y)

	barWidth := (w - 2*cm) / float64(len(chartBars))
	for i, bar := range chartBars {
		barX := x + 1.2*cm + float64(i)*barWidth
		barHeight := (h - 1*cm) * bar.ratio
		p.SetFillColor(bar.col)
		p.Rect(barX, y+0.2*cm, barWidth*0.8, barHeight, canvas.FillAndStroke)

		p.SetFillColor(colornames.Black)
		err = p.SetFont(standard.Helvetica, 8)
		if err != nil {
			return err
		}
		p.DrawCentredString(barX+barWidth*0.4, y-0.3*cm, bar.label)
	}

	err = p.SetFont(standard.HelveticaBold, 10)
	if err != nil {
		return err
	}
	p.DrawCentredString(x+w/2, y+h-0.3*cm, "Sample Chart")

	return nil
}
