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

package fixture

import (
	"image"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pdf/font/standard"

	"seehuhn.de/go/pdf-fixture/canvas"
	"seehuhn.de/go/pdf-fixture/pattern"
	"seehuhn.de/go/pdf-fixture/shapes"
)

const cm = 72 / 2.54

// pagePlan describes the contents of one page.
type pagePlan struct {
	title string // bookmark title
	key   string // bookmark key
	level int    // bookmark level

	elements []element
}

// element is one item on a page.
// prepare is called for all elements of the document before the
// output is started.
type element interface {
	prepare() error
	draw(c *canvas.Canvas) error
}

// text is a block of lines in a single font.
type text struct {
	font    standard.Font
	size    float64
	x, y    float64
	leading float64
	centre  bool
	lines   []string
}

func (t *text) prepare() error {
	return canvas.CheckFont(t.font, t.size)
}

func (t *text) draw(c *canvas.Canvas) error {
	err := c.SetFont(t.font, t.size)
	if err != nil {
		return err
	}
	y := t.y
	for _, line := range t.lines {
		if t.centre {
			c.DrawCentredString(t.x, y, line)
		} else {
			c.DrawString(t.x, y, line)
		}
		y -= t.leading
	}
	return c.Err()
}

// bottom returns the baseline position below the last line, where the
// next line would go.
func (t *text) bottom() float64 {
	y := t.y
	for range t.lines {
		y -= t.leading
	}
	return y
}

// figure is a vector drawing.
type figure struct {
	paint shapes.Drawer
	check func(rect.Rect) error
	box   rect.Rect
}

func (f *figure) prepare() error {
	return f.check(f.box)
}

func (f *figure) draw(c *canvas.Canvas) error {
	err := f.paint(c, f.box)
	if err != nil {
		return err
	}
	return c.Err()
}

// raster is an image generated from a pattern.
type raster struct {
	kind          pattern.Kind
	width, height int
	box           rect.Rect

	img *image.RGBA
}

func (p *raster) prepare() error {
	err := shapes.CheckRect(p.box)
	if err != nil {
		return err
	}
	p.img, err = pattern.New(p.width, p.height, p.kind)
	return err
}

func (p *raster) draw(c *canvas.Canvas) error {
	return c.DrawImage(p.img, p.box)
}

func picture(kind pattern.Kind, width, height int, r rect.Rect) *raster {
	return &raster{kind: kind, width: width, height: height, box: r}
}

func box(x, y, w, h float64) rect.Rect {
	return rect.Rect{LLx: x, LLy: y, URx: x + w, URy: y + h}
}

func logo(r rect.Rect) *figure {
	return &figure{paint: shapes.Logo, check: shapes.CheckRect, box: r}
}

func drawing(r rect.Rect) *figure {
	return &figure{paint: shapes.Shapes, check: shapes.CheckRect, box: r}
}

func chart(r rect.Rect) *figure {
	return &figure{paint: shapes.Chart, check: shapes.CheckChartRect, box: r}
}

func heading(size, height float64, s string) *text {
	return &text{
		font:  standard.HelveticaBold,
		size:  size,
		x:     2 * cm,
		y:     height - 3*cm,
		lines: []string{s},
	}
}

func body(size, y, leading float64, lines ...string) *text {
	return &text{
		font:    standard.Helvetica,
		size:    size,
		x:       2 * cm,
		y:       y,
		leading: leading,
		lines:   lines,
	}
}

func centred(f standard.Font, size, x, y, leading float64, lines ...string) *text {
	return &text{
		font:    f,
		size:    size,
		x:       x,
		y:       y,
		leading: leading,
		centre:  true,
		lines:   lines,
	}
}

func caption(x, y float64, s string) *text {
	return &text{
		font:  standard.Helvetica,
		size:  12,
		x:     x,
		y:     y,
		lines: []string{s},
	}
}

// documentPages returns the page plan for a page of the given size.
func documentPages(width, height float64) []*pagePlan {
	var pages []*pagePlan

	// title page
	pages = append(pages, &pagePlan{
		title: "Title Page",
		key:   "title",
		level: 0,
		elements: []element{
			centred(standard.HelveticaBold, 24, width/2, height-5*cm, 0,
				"MuPDF Test Document"),
			centred(standard.Helvetica, 14, width/2, height-7*cm, 1*cm,
				"A CC0 Public Domain PDF for Testing",
				"Contains: Outlines, Images, and Text"),
			logo(box(width/2-3*cm, height-15*cm, 6*cm, 4*cm)),
			picture(pattern.Gradient, 200, 100,
				box(width/2-3*cm, height-20*cm, 6*cm, 3*cm)),
			centred(standard.Helvetica, 10, width/2, 3*cm, 1*cm,
				"This document is released under CC0 1.0 Universal (Public Domain)",
				"https://creativecommons.org/publicdomain/zero/1.0/"),
		},
	})

	// chapter 1
	intro := body(12, height-5*cm, 0.6*cm,
		"This is a test PDF document created for testing PDF reading capabilities.",
		"The document contains multiple features commonly found in real-world PDFs:",
		"",
		"• Hierarchical bookmarks (outlines) for navigation",
		"• Embedded images and graphics",
		"• Multiple pages with different content types",
		"• Various text formatting and layouts",
		"",
		"This file is specifically designed to test MuPDF-based PDF processing tools.",
	)
	pages = append(pages, &pagePlan{
		title: "Chapter 1: Introduction",
		key:   "chapter1",
		level: 0,
		elements: []element{
			heading(20, height, "Chapter 1: Introduction"),
			intro,
			drawing(box(2*cm, intro.bottom()-5*cm, 8*cm, 4*cm)),
		},
	})

	// section 1.1
	pages = append(pages, &pagePlan{
		title: "1.1 Background",
		key:   "section1_1",
		level: 1,
		elements: []element{
			heading(18, height, "1.1 Background"),
			body(12, height-5*cm, 0.6*cm,
				"PDF (Portable Document Format) was developed by Adobe in the early 1990s.",
				"It has become the de facto standard for document exchange.",
				"",
				"Key features of PDF include:",
				"• Device-independent rendering",
				"• Font embedding",
				"• Vector graphics support",
				"• Document security features",
			),
		},
	})

	// section 1.2
	features := body(12, height-5*cm, 0.6*cm,
		"MuPDF is a lightweight PDF, XPS, and E-book viewer.",
		"It is developed by Artifex Software.",
		"",
		"Features:",
		"• Fast rendering engine",
		"• Small memory footprint",
		"• Support for PDF, XPS, EPUB, and other formats",
		"• Extensive API for document manipulation",
	)
	pages = append(pages, &pagePlan{
		title: "1.2 MuPDF Library",
		key:   "section1_2",
		level: 1,
		elements: []element{
			heading(18, height, "1.2 MuPDF Library"),
			features,
			chart(box(2*cm, features.bottom()-6*cm, 10*cm, 5*cm)),
		},
	})

	// chapter 2
	gallery := []element{
		heading(20, height, "Chapter 2: Image Gallery"),
		body(12, height-5*cm, 0, "This page contains various graphical elements:"),
	}
	images := []struct {
		kind  pattern.Kind
		x     float64
		label string
	}{
		{pattern.Gradient, 2 * cm, "Gradient Image"},
		{pattern.Checker, 8 * cm, "Checkerboard Image"},
		{pattern.Circles, 14 * cm, "Circles Image"},
	}
	for _, im := range images {
		gallery = append(gallery,
			picture(im.kind, 150, 100, box(im.x, height-10*cm, 5*cm, 3*cm)),
			caption(im.x, height-10.5*cm, im.label),
		)
	}
	gallery = append(gallery,
		logo(box(2*cm, height-17*cm, 5*cm, 4*cm)),
		drawing(box(8*cm, height-17*cm, 5*cm, 4*cm)),
		chart(box(2*cm, height-25*cm, 11*cm, 6*cm)),
	)
	pages = append(pages, &pagePlan{
		title:    "Chapter 2: Image Gallery",
		key:      "chapter2",
		level:    0,
		elements: gallery,
	})

	// appendix
	pages = append(pages, &pagePlan{
		title: "Appendix: License",
		key:   "appendix",
		level: 0,
		elements: []element{
			heading(20, height, "Appendix: License"),
			body(11, height-5*cm, 0.5*cm,
				"CC0 1.0 Universal (CC0 1.0) Public Domain Dedication",
				"",
				"The person who associated a work with this deed has dedicated the work",
				"to the public domain by waiving all of his or her rights to the work",
				"worldwide under copyright law, including all related and neighboring",
				"rights, to the extent allowed by law.",
				"",
				"You can copy, modify, distribute and perform the work, even for",
				"commercial purposes, all without asking permission.",
				"",
				"For more information:",
				"https://creativecommons.org/publicdomain/zero/1.0/",
			),
		},
	})

	return pages
}
